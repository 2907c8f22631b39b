package controller

import (
	"log"
	"time"

	"github.com/gofiber/fiber/v2"
	"go.mongodb.org/mongo-driver/bson"

	"pitchbox/models"
	"pitchbox/store"
	"pitchbox/utils"
)

const defaultParseLimit = 20

type QueryController struct {
	Store  DocumentStore
	Logger *log.Logger
}

func NewQueryController(st DocumentStore, logger *log.Logger) *QueryController {
	return &QueryController{
		Store:  st,
		Logger: logger,
	}
}

// ParseNewsletters simulates parsing recent emails and extracting
// psych-relevant queries. Inserts are individual and non-transactional:
// the first failure aborts the call, documents already written stay.
func (qc *QueryController) ParseNewsletters(c *fiber.Ctx) error {
	var input struct {
		Limit *int `json:"limit" validate:"omitempty,min=0"`
	}

	if len(c.Body()) > 0 {
		if err := c.BodyParser(&input); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": "Invalid request body",
			})
		}
	}
	if err := utils.ValidateStruct(input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	limit := defaultParseLimit
	if input.Limit != nil {
		limit = *input.Limit
	}

	now := time.Now().UTC()
	ids := make([]string, 0, limit)
	for _, item := range utils.SampleQueries(limit, now) {
		id, err := qc.Store.Insert(c.Context(), models.CollectionQuery, item)
		if err != nil {
			qc.Logger.Printf("Failed to insert query: %v", err)
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"error": err.Error(),
			})
		}
		ids = append(ids, id.Hex())
	}

	return c.JSON(fiber.Map{
		"inserted": len(ids),
		"ids":      ids,
	})
}

// ListQueries returns up to 200 queries, optionally filtered by status.
func (qc *QueryController) ListQueries(c *fiber.Ctx) error {
	filter := bson.M{}
	if status := c.Query("status"); status != "" {
		filter["status"] = status
	}

	var items []models.Query
	if err := qc.Store.Find(c.Context(), models.CollectionQuery, filter, store.QueryScanLimit, &items); err != nil {
		qc.Logger.Printf("Failed to list queries: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": err.Error(),
		})
	}
	if items == nil {
		items = []models.Query{}
	}

	return c.JSON(fiber.Map{
		"items": items,
	})
}
