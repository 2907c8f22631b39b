package controller

import (
	"errors"
	"log"
	"time"

	"github.com/gofiber/fiber/v2"
	"go.mongodb.org/mongo-driver/bson"

	"pitchbox/models"
	"pitchbox/utils"
)

type DraftController struct {
	Store  DocumentStore
	Logger *log.Logger
}

func NewDraftController(st DocumentStore, logger *log.Logger) *DraftController {
	return &DraftController{
		Store:  st,
		Logger: logger,
	}
}

// DraftEmail builds an email draft combining intro + latest pitch +
// signature. A query without a pitch gets a fixed placeholder sentence
// rather than failing; an unknown template placeholder surfaces as 422.
func (dc *DraftController) DraftEmail(c *fiber.Ctx) error {
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

	stored, err := dc.Store.FirstSettings(c.Context())
	if err != nil {
		dc.Logger.Printf("Failed to load settings: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": err.Error(),
		})
	}
	settings := models.ResolveSettings(stored)

	query, err := dc.Store.FindQueryByID(c.Context(), input.QueryID)
	if err != nil {
		if errors.Is(err, models.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"error": "Query not found",
			})
		}
		dc.Logger.Printf("Failed to look up query %s: %v", input.QueryID, err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	pitch, err := dc.Store.LatestPitch(c.Context(), input.QueryID)
	if err != nil {
		dc.Logger.Printf("Failed to look up pitch for query %s: %v", input.QueryID, err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": err.Error(),
		})
	}
	pitchContent := ""
	if pitch != nil {
		pitchContent = pitch.Content
	}

	body, err := utils.ComposeDraftBody(*query, pitchContent, settings)
	if err != nil {
		var templateErr *models.TemplateError
		if errors.As(err, &templateErr) {
			return c.Status(fiber.StatusUnprocessableEntity).JSON(fiber.Map{
				"error": templateErr.Error(),
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	draft := models.EmailDraft{
		QueryID:   input.QueryID,
		ToEmail:   query.SenderEmail,
		Subject:   query.Subject,
		Body:      body,
		Approved:  false,
		CreatedAt: time.Now().UTC(),
	}

	id, err := dc.Store.Insert(c.Context(), models.CollectionEmailDraft, draft)
	if err != nil {
		dc.Logger.Printf("Failed to insert draft: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	return c.JSON(fiber.Map{
		"draft_id": id.Hex(),
		"body":     body,
	})
}

// ApproveDraft flips the approved flag and refreshes updated_at. Setting
// the same value twice still succeeds; "updated" reflects whether the
// stored value actually changed.
func (dc *DraftController) ApproveDraft(c *fiber.Ctx) error {
	var input struct {
		DraftID  string `json:"draft_id" validate:"required"`
		Approved *bool  `json:"approved" validate:"required"`
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

	draft, err := dc.Store.FindDraftByID(c.Context(), input.DraftID)
	if err != nil {
		if errors.Is(err, models.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"error": "Draft not found",
			})
		}
		dc.Logger.Printf("Failed to look up draft %s: %v", input.DraftID, err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	// updated reports whether the approved flag itself changed; the
	// timestamp refresh alone does not count. Read-then-write can race
	// with a concurrent approval, last write wins.
	changed := draft.Approved != *input.Approved

	if _, _, err := dc.Store.UpdateByID(c.Context(), models.CollectionEmailDraft, draft.ID, bson.M{
		"approved":   *input.Approved,
		"updated_at": time.Now().UTC(),
	}); err != nil {
		dc.Logger.Printf("Failed to update draft %s: %v", input.DraftID, err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	return c.JSON(fiber.Map{
		"updated": changed,
	})
}
