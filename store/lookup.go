package store

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"pitchbox/models"
)

// QueryScanLimit caps the linear id scan used to resolve a query. Queries
// beyond the first 200 returned by the store's default ordering are not
// addressable for pitch or draft generation; a known scalability ceiling.
const QueryScanLimit = 200

// FirstSettings returns the first settings document, or nil when none is
// stored. Absence is not an error.
func (s *Store) FirstSettings(ctx context.Context) (*models.Settings, error) {
	var docs []models.Settings
	if err := s.Find(ctx, models.CollectionSettings, bson.M{}, 1, &docs); err != nil {
		return nil, err
	}
	if len(docs) == 0 {
		return nil, nil
	}
	return &docs[0], nil
}

// FindQueryByID resolves a query by scanning up to QueryScanLimit documents
// for a string-equal id match. Returns models.ErrNotFound when the id is
// absent from the scanned window.
func (s *Store) FindQueryByID(ctx context.Context, id string) (*models.Query, error) {
	var queries []models.Query
	if err := s.Find(ctx, models.CollectionQuery, bson.M{"_id": bson.M{"$exists": true}}, QueryScanLimit, &queries); err != nil {
		return nil, err
	}
	if q := matchQueryID(queries, id); q != nil {
		return q, nil
	}
	return nil, models.ErrNotFound
}

// matchQueryID scans a fetched window for a string-equal id match. Ids of
// documents outside the window are unreachable here even when they exist
// in the collection.
func matchQueryID(queries []models.Query, id string) *models.Query {
	for i := range queries {
		if queries[i].ID.Hex() == id {
			return &queries[i]
		}
	}
	return nil
}

// LatestPitch returns the most recent retrievable pitch for a query by the
// store's default ordering, or nil when the query has none.
func (s *Store) LatestPitch(ctx context.Context, queryID string) (*models.Pitch, error) {
	var pitches []models.Pitch
	if err := s.Find(ctx, models.CollectionPitch, bson.M{"query_id": queryID}, 1, &pitches); err != nil {
		return nil, err
	}
	if len(pitches) == 0 {
		return nil, nil
	}
	return &pitches[0], nil
}

// FindDraftByID fetches an email draft directly by its store-assigned id.
// Malformed ids are reported as not found, same as absent ones.
func (s *Store) FindDraftByID(ctx context.Context, id string) (*models.EmailDraft, error) {
	objID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, models.ErrNotFound
	}
	if s.db == nil {
		return nil, &models.PersistenceError{Collection: models.CollectionEmailDraft, Op: "find", Err: models.ErrStoreUnavailable}
	}
	var draft models.EmailDraft
	if err := s.db.Collection(models.CollectionEmailDraft).FindOne(ctx, bson.M{"_id": objID}).Decode(&draft); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, models.ErrNotFound
		}
		return nil, &models.PersistenceError{Collection: models.CollectionEmailDraft, Op: "find", Err: err}
	}
	return &draft, nil
}
