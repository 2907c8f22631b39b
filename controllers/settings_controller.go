package controller

import (
	"log"

	"github.com/gofiber/fiber/v2"
	"go.mongodb.org/mongo-driver/bson"

	"pitchbox/models"
	"pitchbox/utils"
)

type SettingsController struct {
	Store  DocumentStore
	Logger *log.Logger
}

func NewSettingsController(st DocumentStore, logger *log.Logger) *SettingsController {
	return &SettingsController{
		Store:  st,
		Logger: logger,
	}
}

// GetSettings returns the effective style sheet. The stored flag tells the
// caller whether a settings document exists or the embedded defaults are
// in effect; defaults are never written back automatically.
func (stc *SettingsController) GetSettings(c *fiber.Ctx) error {
	stored, err := stc.Store.FirstSettings(c.Context())
	if err != nil {
		stc.Logger.Printf("Failed to load settings: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	return c.JSON(fiber.Map{
		"settings": models.ResolveSettings(stored),
		"stored":   stored != nil,
	})
}

// UpdateSettings upserts the singleton settings document keyed by the
// fixed owner identifier.
func (stc *SettingsController) UpdateSettings(c *fiber.Ctx) error {
	var input models.Settings

	if err := c.BodyParser(&input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}
	if err := utils.ValidateStruct(input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": err.Error(),
		})
	}
	input.OwnerID = models.SettingsOwnerID
	if input.Keywords == nil {
		// A PUT without keywords keeps the default set; an explicit empty
		// list is honored as-is. Never persist a null keywords field.
		input.Keywords = models.DefaultSettings().Keywords
	}

	filter := bson.M{"owner_id": models.SettingsOwnerID}
	if err := stc.Store.Upsert(c.Context(), models.CollectionSettings, filter, input); err != nil {
		stc.Logger.Printf("Failed to upsert settings: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	return c.JSON(fiber.Map{
		"settings": models.ResolveSettings(&input),
		"stored":   true,
	})
}
