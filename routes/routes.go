package routes

import (
	"log"
	"os"

	controller "pitchbox/controllers"
	"pitchbox/middleware"
	"pitchbox/store"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/logger"
)

func SetupRoutes(app *fiber.App, st *store.Store) {
	// Initialize controllers with their respective loggers
	metaController := controller.NewMetaController(st, log.New(os.Stdout, "META: ", log.LstdFlags))
	queryController := controller.NewQueryController(st, log.New(os.Stdout, "QUERY: ", log.LstdFlags))
	pitchController := controller.NewPitchController(st, log.New(os.Stdout, "PITCH: ", log.LstdFlags))
	draftController := controller.NewDraftController(st, log.New(os.Stdout, "DRAFT: ", log.LstdFlags))
	sendController := controller.NewSendController(st, log.New(os.Stdout, "SEND: ", log.LstdFlags))
	settingsController := controller.NewSettingsController(st, log.New(os.Stdout, "SETTINGS: ", log.LstdFlags))

	// Meta endpoints stay outside the access-logged group; /test is polled
	// by the viewer UI and would flood the log.
	app.Get("/", metaController.Root)
	app.Get("/schema", metaController.GetSchema)
	app.Get("/test", metaController.TestDatabase)

	api := app.Group("", logger.New(logger.Config{
		Format: "[${time}] ${status} - ${latency} ${method} ${path}\n",
	}))

	api.Post("/parse", middleware.ParseRateLimiter(), queryController.ParseNewsletters)
	api.Get("/queries", queryController.ListQueries)
	api.Post("/pitch", pitchController.GeneratePitch)
	api.Post("/draft", draftController.DraftEmail)
	api.Post("/approve", draftController.ApproveDraft)
	api.Post("/send", sendController.SendEmail)
	api.Get("/settings", settingsController.GetSettings)
	api.Put("/settings", settingsController.UpdateSettings)

	// Setup 404 handler
	app.Use(func(c *fiber.Ctx) error {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error":   "Not Found",
			"message": "The requested resource was not found",
		})
	})

	log.Println("API routes initialized successfully")
}
