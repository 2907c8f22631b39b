package controller

import (
	"errors"
	"log"
	"time"

	"github.com/gofiber/fiber/v2"

	"pitchbox/models"
	"pitchbox/utils"
)

type PitchController struct {
	Store  DocumentStore
	Logger *log.Logger
}

func NewPitchController(st DocumentStore, logger *log.Logger) *PitchController {
	return &PitchController{
		Store:  st,
		Logger: logger,
	}
}

// GeneratePitch composes pitch text for a query using the stored settings
// as a style sheet and persists it with a snapshot of the style used. The
// query itself is not mutated.
func (pc *PitchController) GeneratePitch(c *fiber.Ctx) error {
	var input struct {
		QueryID    string                 `json:"query_id" validate:"required"`
		Parameters map[string]interface{} `json:"parameters"`
	}

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

	stored, err := pc.Store.FirstSettings(c.Context())
	if err != nil {
		pc.Logger.Printf("Failed to load settings: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": err.Error(),
		})
	}
	settings := models.ResolveSettings(stored)

	query, err := pc.Store.FindQueryByID(c.Context(), input.QueryID)
	if err != nil {
		if errors.Is(err, models.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"error": "Query not found",
			})
		}
		pc.Logger.Printf("Failed to look up query %s: %v", input.QueryID, err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	content := utils.ComposePitchContent(*query, settings)

	pitch := models.Pitch{
		QueryID: input.QueryID,
		Content: content,
		StyleUsed: models.StyleUsed{
			Tone:  settings.Tone,
			Voice: settings.Voice,
		},
		CreatedAt: time.Now().UTC(),
	}

	id, err := pc.Store.Insert(c.Context(), models.CollectionPitch, pitch)
	if err != nil {
		pc.Logger.Printf("Failed to insert pitch: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	return c.JSON(fiber.Map{
		"pitch_id": id.Hex(),
		"content":  content,
	})
}
