package controller

import (
	"errors"
	"log"
	"time"

	"github.com/badoux/checkmail"
	"github.com/getsentry/sentry-go"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"pitchbox/models"
	"pitchbox/utils"
)

type SendController struct {
	Store  DocumentStore
	Logger *log.Logger
}

func NewSendController(st DocumentStore, logger *log.Logger) *SendController {
	return &SendController{
		Store:  st,
		Logger: logger,
	}
}

// SendEmail simulates sending an approved draft. No network email goes
// out: a durable SentRecord stands in for the delivery side effect, then
// the source query is moved to status sent. A query update failure after
// the record is written leaves the record in place; there is no
// compensating rollback.
func (sc *SendController) SendEmail(c *fiber.Ctx) error {
	var input struct {
		DraftID string `json:"draft_id" validate:"required"`
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

	draft, err := sc.Store.FindDraftByID(c.Context(), input.DraftID)
	if err != nil {
		if errors.Is(err, models.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"error": "Draft not found",
			})
		}
		sc.Logger.Printf("Failed to look up draft %s: %v", input.DraftID, err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	if !draft.Approved {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": models.ErrNotApproved.Error(),
		})
	}

	if err := checkmail.ValidateFormat(draft.ToEmail); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid recipient address: " + draft.ToEmail,
		})
	}

	now := time.Now().UTC()
	record := models.SentRecord{
		DraftID:   draft.ID.Hex(),
		To:        draft.ToEmail,
		Subject:   draft.Subject,
		Body:      draft.Body,
		MessageID: "sim-" + uuid.NewString(),
		SentAt:    now,
	}

	sentID, err := sc.Store.Insert(c.Context(), models.CollectionSent, record)
	if err != nil {
		logrus.WithFields(logrus.Fields{
			"draft_id": input.DraftID,
			"to":       draft.ToEmail,
		}).Errorf("failed to record send: %v", err)
		sentry.CaptureException(err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	if err := sc.markQuerySent(c, draft.QueryID, now); err != nil {
		// The sent record already exists; this is the accepted
		// inconsistency window, surfaced rather than masked.
		logrus.WithFields(logrus.Fields{
			"draft_id": input.DraftID,
			"query_id": draft.QueryID,
			"sent_id":  sentID.Hex(),
		}).Errorf("sent record written but query status update failed: %v", err)
		sentry.CaptureException(err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	return c.JSON(fiber.Map{
		"sent_id": sentID.Hex(),
	})
}

func (sc *SendController) markQuerySent(c *fiber.Ctx, queryID string, now time.Time) error {
	objID, err := primitive.ObjectIDFromHex(queryID)
	if err != nil {
		// Drafts hold soft references; a malformed query id means the
		// status transition is simply unreachable.
		sc.Logger.Printf("Draft references malformed query id %q, skipping status update", queryID)
		return nil
	}
	_, _, err = sc.Store.UpdateByID(c.Context(), models.CollectionQuery, objID, bson.M{
		"status":     models.QueryStatusSent,
		"updated_at": now,
	})
	return err
}
