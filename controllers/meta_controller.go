package controller

import (
	"log"

	"github.com/gofiber/fiber/v2"

	"pitchbox/config"
	"pitchbox/models"
)

type MetaController struct {
	Store  DocumentStore
	Logger *log.Logger
}

func NewMetaController(st DocumentStore, logger *log.Logger) *MetaController {
	return &MetaController{
		Store:  st,
		Logger: logger,
	}
}

// Root is the API banner.
func (mc *MetaController) Root(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"message": "Newsletter Parser API running",
	})
}

// GetSchema exposes the collection schemas to the UI/database viewer.
func (mc *MetaController) GetSchema(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"collections": models.CollectionSchemas(),
	})
}

// TestDatabase reports a diagnostic connectivity map. This is the only
// endpoint that surfaces a degraded store; everything else just fails with
// a persistence error.
func (mc *MetaController) TestDatabase(c *fiber.Ctx) error {
	response := fiber.Map{
		"backend":           "✅ Running",
		"database":          "❌ Not Available",
		"database_url":      "❌ Not Set",
		"database_name":     "❌ Not Set",
		"connection_status": "Not Connected",
		"collections":       []string{},
	}

	if config.AppConfig.DatabaseURL != "" {
		response["database_url"] = "✅ Set"
	}
	if config.AppConfig.DatabaseName != "" {
		response["database_name"] = "✅ Set"
	}

	if !mc.Store.Available() {
		return c.JSON(response)
	}

	response["database"] = "✅ Available"
	if err := mc.Store.Ping(c.Context()); err != nil {
		response["database"] = "⚠️ Connected but Error: " + truncateDetail(err.Error())
		return c.JSON(response)
	}
	response["connection_status"] = "Connected"

	names, err := mc.Store.ListCollections(c.Context())
	if err != nil {
		mc.Logger.Printf("Failed to list collections: %v", err)
		response["database"] = "⚠️ Connected but Error: " + truncateDetail(err.Error())
		return c.JSON(response)
	}
	if len(names) > 10 {
		names = names[:10]
	}
	response["collections"] = names
	response["database"] = "✅ Connected & Working"

	return c.JSON(response)
}

func truncateDetail(detail string) string {
	if len(detail) > 50 {
		return detail[:50]
	}
	return detail
}
