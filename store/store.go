package store

import (
	"context"
	"fmt"
	"log"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"pitchbox/config"
	"pitchbox/models"
)

const connectTimeout = 10 * time.Second

// Store is a thin adapter over a MongoDB database: generic create/read plus
// the two update primitives the pipeline needs. A zero Store is valid and
// reports every operation as unavailable; GET /test is the only place that
// surfaces the degraded state.
type Store struct {
	client *mongo.Client
	db     *mongo.Database
}

// Connect opens the document store from configuration. A missing
// DATABASE_URL or DATABASE_NAME yields a degraded (but usable) store
// rather than an error.
func Connect(cfg config.Config) (*Store, error) {
	if cfg.DatabaseURL == "" || cfg.DatabaseName == "" {
		return &Store{}, nil
	}

	log.Println("Attempting to connect to database...")
	log.Println("Using connection string:", config.MaskURI(cfg.DatabaseURL))

	ctx, cancel := context.WithTimeout(context.Background(), connectTimeout)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(cfg.DatabaseURL))
	if err != nil {
		return &Store{}, fmt.Errorf("failed to connect to database: %w", err)
	}

	log.Println("✅ Document store client initialized")
	return &Store{client: client, db: client.Database(cfg.DatabaseName)}, nil
}

// Available reports whether a database connection is configured.
func (s *Store) Available() bool {
	return s.db != nil
}

// DatabaseName returns the target database name, empty when degraded.
func (s *Store) DatabaseName() string {
	if s.db == nil {
		return ""
	}
	return s.db.Name()
}

// Ping verifies connectivity against the live server.
func (s *Store) Ping(ctx context.Context) error {
	if s.client == nil {
		return models.ErrStoreUnavailable
	}
	return s.client.Ping(ctx, nil)
}

// ListCollections returns the collection names present in the database.
func (s *Store) ListCollections(ctx context.Context) ([]string, error) {
	if s.db == nil {
		return nil, models.ErrStoreUnavailable
	}
	return s.db.ListCollectionNames(ctx, bson.M{})
}

// Insert creates a single document and returns its store-assigned id.
func (s *Store) Insert(ctx context.Context, collection string, doc interface{}) (primitive.ObjectID, error) {
	if s.db == nil {
		return primitive.NilObjectID, &models.PersistenceError{Collection: collection, Op: "insert", Err: models.ErrStoreUnavailable}
	}
	res, err := s.db.Collection(collection).InsertOne(ctx, doc)
	if err != nil {
		return primitive.NilObjectID, &models.PersistenceError{Collection: collection, Op: "insert", Err: err}
	}
	id, ok := res.InsertedID.(primitive.ObjectID)
	if !ok {
		return primitive.NilObjectID, &models.PersistenceError{Collection: collection, Op: "insert", Err: fmt.Errorf("unexpected id type %T", res.InsertedID)}
	}
	return id, nil
}

// Find reads up to limit documents matching filter, in the store's default
// ordering, decoding them into out (a pointer to a slice).
func (s *Store) Find(ctx context.Context, collection string, filter interface{}, limit int64, out interface{}) error {
	if s.db == nil {
		return &models.PersistenceError{Collection: collection, Op: "find", Err: models.ErrStoreUnavailable}
	}
	cursor, err := s.db.Collection(collection).Find(ctx, filter, options.Find().SetLimit(limit))
	if err != nil {
		return &models.PersistenceError{Collection: collection, Op: "find", Err: err}
	}
	if err := cursor.All(ctx, out); err != nil {
		return &models.PersistenceError{Collection: collection, Op: "find", Err: err}
	}
	return nil
}

// UpdateByID applies a $set to one document. Callers distinguish a missing
// document (matched == 0) from a no-op write (modified == 0).
func (s *Store) UpdateByID(ctx context.Context, collection string, id primitive.ObjectID, set bson.M) (matched, modified int64, err error) {
	if s.db == nil {
		return 0, 0, &models.PersistenceError{Collection: collection, Op: "update", Err: models.ErrStoreUnavailable}
	}
	res, err := s.db.Collection(collection).UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$set": set})
	if err != nil {
		return 0, 0, &models.PersistenceError{Collection: collection, Op: "update", Err: err}
	}
	return res.MatchedCount, res.ModifiedCount, nil
}

// Upsert applies a $set to the first document matching filter, creating it
// when absent. Used for the singleton settings document.
func (s *Store) Upsert(ctx context.Context, collection string, filter bson.M, doc interface{}) error {
	if s.db == nil {
		return &models.PersistenceError{Collection: collection, Op: "upsert", Err: models.ErrStoreUnavailable}
	}
	_, err := s.db.Collection(collection).UpdateOne(ctx, filter, bson.M{"$set": doc}, options.Update().SetUpsert(true))
	if err != nil {
		return &models.PersistenceError{Collection: collection, Op: "upsert", Err: err}
	}
	return nil
}

// Close releases the underlying client.
func (s *Store) Close(ctx context.Context) error {
	if s.client == nil {
		return nil
	}
	return s.client.Disconnect(ctx)
}
