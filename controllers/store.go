package controller

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"pitchbox/models"
)

// DocumentStore is the slice of the store adapter the controllers use,
// declared here so handler behavior can be exercised against an in-memory
// implementation.
type DocumentStore interface {
	Available() bool
	Ping(ctx context.Context) error
	ListCollections(ctx context.Context) ([]string, error)
	Insert(ctx context.Context, collection string, doc interface{}) (primitive.ObjectID, error)
	Find(ctx context.Context, collection string, filter interface{}, limit int64, out interface{}) error
	UpdateByID(ctx context.Context, collection string, id primitive.ObjectID, set bson.M) (matched, modified int64, err error)
	Upsert(ctx context.Context, collection string, filter bson.M, doc interface{}) error
	FirstSettings(ctx context.Context) (*models.Settings, error)
	FindQueryByID(ctx context.Context, id string) (*models.Query, error)
	LatestPitch(ctx context.Context, queryID string) (*models.Pitch, error)
	FindDraftByID(ctx context.Context, id string) (*models.EmailDraft, error)
}
