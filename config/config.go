package config

import (
	"fmt"
	"log"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

var (
	AppConfig Config
	envLoaded bool
)

type RedisConfig struct {
	Enabled  bool   `json:"enabled"`
	Address  string `json:"address"`
	Password string `json:"-"`
	DB       int    `json:"db"`
}

type Config struct {
	Environment    string        `json:"environment"`
	ServerPort     string        `json:"server_port"`
	DatabaseURL    string        `json:"-"`
	DatabaseName   string        `json:"database_name"`
	SentryDSN      string        `json:"-"`
	RateLimitParse int           `json:"rate_limit_parse"`
	SweepInterval  time.Duration `json:"sweep_interval"`
	Redis          RedisConfig   `json:"redis"`
}

func init() {
	// Try to load .env file, but don't fail if it doesn't exist
	_ = godotenv.Load()
	envLoaded = true
}

func LoadConfig() error {
	AppConfig = Config{
		Environment:    getEnv("ENVIRONMENT", "development"),
		ServerPort:     getEnv("SERVER_PORT", "8000"),
		DatabaseURL:    getEnv("DATABASE_URL", ""),
		DatabaseName:   getEnv("DATABASE_NAME", ""),
		SentryDSN:      getEnv("SENTRY_DSN", ""),
		RateLimitParse: getEnvAsInt("RATE_LIMIT_PARSE", 30),
		SweepInterval:  getEnvAsDuration("DEADLINE_SWEEP_INTERVAL", 10*time.Minute),
		Redis: RedisConfig{
			Enabled:  getEnv("REDIS_ENABLED", "") == "true",
			Address:  getEnv("REDIS_ADDRESS", "localhost:6379"),
			Password: getEnv("REDIS_PASSWORD", ""),
			DB:       getEnvAsInt("REDIS_DB", 0),
		},
	}

	if AppConfig.RateLimitParse <= 0 {
		return fmt.Errorf("RATE_LIMIT_PARSE must be positive")
	}

	// A missing database configuration is not fatal: the store degrades to
	// an unavailable state surfaced through GET /test.
	if AppConfig.DatabaseURL == "" {
		log.Println("⚠️ DATABASE_URL not set, store will run in degraded mode")
	}

	logConfig()
	return nil
}

// Helper functions
func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	if !envLoaded && fallback == "" {
		log.Printf("⚠️ Environment variable %s not found and no fallback provided", key)
	}
	return fallback
}

func getEnvAsInt(key string, fallback int) int {
	valueStr := getEnv(key, "")
	if valueStr == "" {
		return fallback
	}
	var value int
	_, err := fmt.Sscanf(valueStr, "%d", &value)
	if err != nil {
		return fallback
	}
	return value
}

func getEnvAsDuration(key string, fallback time.Duration) time.Duration {
	valueStr := getEnv(key, "")
	if valueStr == "" {
		return fallback
	}
	value, err := time.ParseDuration(valueStr)
	if err != nil {
		return fallback
	}
	return value
}

// MaskURI hides the password portion of a connection URI for logging.
func MaskURI(uri string) string {
	schemeIdx := strings.Index(uri, "://")
	if schemeIdx == -1 {
		return uri
	}
	atIdx := strings.Index(uri[schemeIdx+3:], "@")
	if atIdx == -1 {
		return uri
	}
	credentials := uri[schemeIdx+3 : schemeIdx+3+atIdx]
	colonIdx := strings.Index(credentials, ":")
	if colonIdx == -1 {
		return uri
	}
	return uri[:schemeIdx+3+colonIdx+1] + "*****" + uri[schemeIdx+3+atIdx:]
}

func logConfig() {
	log.Println("🔧 Loaded configuration:")
	log.Printf("Environment: %s", AppConfig.Environment)
	log.Printf("Server Port: %s", AppConfig.ServerPort)
	log.Printf("Database: %s (%s)", maskEmpty(AppConfig.DatabaseName), boolLabel(AppConfig.DatabaseURL != ""))
	log.Printf("Redis: enabled=%t address=%s", AppConfig.Redis.Enabled, AppConfig.Redis.Address)
	log.Printf("Sentry: %s", boolLabel(AppConfig.SentryDSN != ""))
}

func maskEmpty(s string) string {
	if s == "" {
		return "<unset>"
	}
	return s
}

func boolLabel(configured bool) string {
	if configured {
		return "configured"
	}
	return "not configured"
}
