package worker

import (
	"context"
	"log"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"pitchbox/models"
	"pitchbox/store"
)

const startupDelay = 5 * time.Second

// QueryStore is the slice of the store adapter the sweeper needs.
type QueryStore interface {
	Available() bool
	Find(ctx context.Context, collection string, filter interface{}, limit int64, out interface{}) error
	UpdateByID(ctx context.Context, collection string, id primitive.ObjectID, set bson.M) (matched, modified int64, err error)
}

// DeadlineWorker periodically marks new queries whose deadline has passed
// as ignored, so stale requests drop out of the working set. It only ever
// touches queries still in status new; everything further along the
// pipeline is left alone.
type DeadlineWorker struct {
	Store    QueryStore
	Interval time.Duration
	Logger   *log.Logger
}

func NewDeadlineWorker(st QueryStore, interval time.Duration, logger *log.Logger) *DeadlineWorker {
	return &DeadlineWorker{
		Store:    st,
		Interval: interval,
		Logger:   logger,
	}
}

func (dw *DeadlineWorker) Start(ctx context.Context) {
	if !dw.Store.Available() {
		dw.Logger.Println("Store unavailable, deadline worker not starting")
		return
	}

	// Initial delay to let the server start up, still responsive to
	// shutdown.
	select {
	case <-ctx.Done():
		return
	case <-time.After(startupDelay):
	}

	dw.Logger.Println("Deadline worker started")

	ticker := time.NewTicker(dw.Interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			dw.Logger.Println("Deadline worker shutting down...")
			return
		case <-ticker.C:
			dw.sweep(ctx)
		}
	}
}

func (dw *DeadlineWorker) sweep(ctx context.Context) {
	var queries []models.Query
	filter := bson.M{"status": models.QueryStatusNew}
	if err := dw.Store.Find(ctx, models.CollectionQuery, filter, store.QueryScanLimit, &queries); err != nil {
		dw.Logger.Printf("Error fetching new queries: %v", err)
		return
	}

	now := time.Now().UTC()
	swept := 0
	for _, query := range queries {
		if !query.DeadlineExpired(now) {
			continue
		}
		_, _, err := dw.Store.UpdateByID(ctx, models.CollectionQuery, query.ID, bson.M{
			"status":     models.QueryStatusIgnored,
			"updated_at": now,
		})
		if err != nil {
			dw.Logger.Printf("Error ignoring expired query %s: %v", query.ID.Hex(), err)
			continue
		}
		swept++
	}

	if swept > 0 {
		dw.Logger.Printf("Marked %d expired queries as ignored", swept)
	}
}
