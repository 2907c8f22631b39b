package controller_test

import (
	"context"
	"fmt"
	"io"
	"log"
	"net/http"
	"strings"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	controller "pitchbox/controllers"
	"pitchbox/models"
)

// memStore is an in-memory DocumentStore, enough to exercise the
// pitch/draft/approve/send flow without a live database.
type memStore struct {
	settings *models.Settings
	queries  []*models.Query
	pitches  []*models.Pitch
	drafts   map[string]*models.EmailDraft
	sent     []*models.SentRecord
}

func newMemStore() *memStore {
	return &memStore{drafts: map[string]*models.EmailDraft{}}
}

func (m *memStore) Available() bool { return true }

func (m *memStore) Ping(context.Context) error { return nil }

func (m *memStore) ListCollections(context.Context) ([]string, error) {
	return []string{models.CollectionQuery}, nil
}

func (m *memStore) Insert(_ context.Context, _ string, doc interface{}) (primitive.ObjectID, error) {
	id := primitive.NewObjectID()
	switch d := doc.(type) {
	case models.Query:
		q := d
		q.ID = id
		m.queries = append(m.queries, &q)
	case models.Pitch:
		p := d
		p.ID = id
		m.pitches = append(m.pitches, &p)
	case models.EmailDraft:
		dr := d
		dr.ID = id
		m.drafts[id.Hex()] = &dr
	case models.SentRecord:
		r := d
		r.ID = id
		m.sent = append(m.sent, &r)
	default:
		return primitive.NilObjectID, fmt.Errorf("unexpected document type %T", doc)
	}
	return id, nil
}

func (m *memStore) Find(_ context.Context, _ string, _ interface{}, _ int64, out interface{}) error {
	dst, ok := out.(*[]models.Query)
	if !ok {
		return fmt.Errorf("unexpected find target %T", out)
	}
	for _, q := range m.queries {
		*dst = append(*dst, *q)
	}
	return nil
}

func (m *memStore) UpdateByID(_ context.Context, collection string, id primitive.ObjectID, set bson.M) (int64, int64, error) {
	switch collection {
	case models.CollectionEmailDraft:
		draft, ok := m.drafts[id.Hex()]
		if !ok {
			return 0, 0, nil
		}
		modified := int64(0)
		if approved, ok := set["approved"].(bool); ok && draft.Approved != approved {
			draft.Approved = approved
			modified = 1
		}
		if ts, ok := set["updated_at"].(time.Time); ok {
			draft.UpdatedAt = &ts
		}
		return 1, modified, nil
	case models.CollectionQuery:
		for _, q := range m.queries {
			if q.ID != id {
				continue
			}
			if status, ok := set["status"].(string); ok {
				q.Status = status
			}
			if ts, ok := set["updated_at"].(time.Time); ok {
				q.UpdatedAt = &ts
			}
			return 1, 1, nil
		}
		return 0, 0, nil
	}
	return 0, 0, nil
}

func (m *memStore) Upsert(_ context.Context, _ string, _ bson.M, doc interface{}) error {
	s, ok := doc.(models.Settings)
	if !ok {
		return fmt.Errorf("unexpected settings document %T", doc)
	}
	m.settings = &s
	return nil
}

func (m *memStore) FirstSettings(context.Context) (*models.Settings, error) {
	return m.settings, nil
}

func (m *memStore) FindQueryByID(_ context.Context, id string) (*models.Query, error) {
	for _, q := range m.queries {
		if q.ID.Hex() == id {
			found := *q
			return &found, nil
		}
	}
	return nil, models.ErrNotFound
}

func (m *memStore) LatestPitch(_ context.Context, queryID string) (*models.Pitch, error) {
	for _, p := range m.pitches {
		if p.QueryID == queryID {
			found := *p
			return &found, nil
		}
	}
	return nil, nil
}

func (m *memStore) FindDraftByID(_ context.Context, id string) (*models.EmailDraft, error) {
	if _, err := primitive.ObjectIDFromHex(id); err != nil {
		return nil, models.ErrNotFound
	}
	draft, ok := m.drafts[id]
	if !ok {
		return nil, models.ErrNotFound
	}
	found := *draft
	return &found, nil
}

func newPipelineApp(st *memStore) *fiber.App {
	discard := log.New(io.Discard, "", 0)
	app := fiber.New()

	pitchController := controller.NewPitchController(st, discard)
	draftController := controller.NewDraftController(st, discard)
	sendController := controller.NewSendController(st, discard)
	settingsController := controller.NewSettingsController(st, discard)

	app.Post("/pitch", pitchController.GeneratePitch)
	app.Post("/draft", draftController.DraftEmail)
	app.Post("/approve", draftController.ApproveDraft)
	app.Post("/send", sendController.SendEmail)
	app.Put("/settings", settingsController.UpdateSettings)
	return app
}

func seedQuery(st *memStore) *models.Query {
	q := &models.Query{
		ID:          primitive.NewObjectID(),
		Subject:     "Looking for a psychology expert",
		SenderEmail: "jane.doe@example.com",
		SenderName:  "Jane",
		Status:      models.QueryStatusNew,
	}
	st.queries = append(st.queries, q)
	return q
}

func createDraft(t *testing.T, app *fiber.App, queryID string) string {
	t.Helper()

	resp, payload := doJSON(t, app, http.MethodPost, "/draft", fmt.Sprintf(`{"query_id": %q}`, queryID))
	require.Equal(t, http.StatusOK, resp.StatusCode)
	draftID, ok := payload["draft_id"].(string)
	require.True(t, ok)
	require.NotEmpty(t, draftID)
	return draftID
}

func TestApproveReportsFlagChanges(t *testing.T) {
	st := newMemStore()
	app := newPipelineApp(st)
	query := seedQuery(st)
	draftID := createDraft(t, app, query.ID.Hex())

	approve := func(approved bool) map[string]interface{} {
		body := fmt.Sprintf(`{"draft_id": %q, "approved": %t}`, draftID, approved)
		resp, payload := doJSON(t, app, http.MethodPost, "/approve", body)
		require.Equal(t, http.StatusOK, resp.StatusCode)
		return payload
	}

	assert.Equal(t, true, approve(true)["updated"])
	assert.True(t, st.drafts[draftID].Approved)

	// Repeating the same decision succeeds but changes nothing.
	assert.Equal(t, false, approve(true)["updated"])
	assert.True(t, st.drafts[draftID].Approved)

	// Revoking after approval is a real change again.
	assert.Equal(t, true, approve(false)["updated"])
	assert.False(t, st.drafts[draftID].Approved)
}

func TestSendRejectsUnapprovedDraft(t *testing.T) {
	st := newMemStore()
	app := newPipelineApp(st)
	query := seedQuery(st)
	draftID := createDraft(t, app, query.ID.Hex())

	resp, payload := doJSON(t, app, http.MethodPost, "/send", fmt.Sprintf(`{"draft_id": %q}`, draftID))
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "draft not approved", payload["error"])

	assert.Empty(t, st.sent, "rejected send must not write a sent record")
	assert.Equal(t, models.QueryStatusNew, query.Status)
}

func TestSendRecordsOnceAndMarksQuerySent(t *testing.T) {
	st := newMemStore()
	app := newPipelineApp(st)
	query := seedQuery(st)
	draftID := createDraft(t, app, query.ID.Hex())

	body := fmt.Sprintf(`{"draft_id": %q, "approved": true}`, draftID)
	resp, _ := doJSON(t, app, http.MethodPost, "/approve", body)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	resp, payload := doJSON(t, app, http.MethodPost, "/send", fmt.Sprintf(`{"draft_id": %q}`, draftID))
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.NotEmpty(t, payload["sent_id"])

	require.Len(t, st.sent, 1)
	record := st.sent[0]
	assert.Equal(t, draftID, record.DraftID)
	assert.Equal(t, "jane.doe@example.com", record.To)
	assert.Equal(t, st.drafts[draftID].Body, record.Body)
	assert.True(t, strings.HasPrefix(record.MessageID, "sim-"))

	assert.Equal(t, models.QueryStatusSent, query.Status)
}

func TestDraftUnknownQueryReturnsNotFound(t *testing.T) {
	st := newMemStore()
	app := newPipelineApp(st)
	seedQuery(st)

	body := fmt.Sprintf(`{"query_id": %q}`, primitive.NewObjectID().Hex())
	resp, payload := doJSON(t, app, http.MethodPost, "/draft", body)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	assert.Equal(t, "Query not found", payload["error"])
}

func TestUpdateSettingsKeywords(t *testing.T) {
	t.Run("omitted keywords fall back to defaults", func(t *testing.T) {
		st := newMemStore()
		app := newPipelineApp(st)

		resp, _ := doJSON(t, app, http.MethodPut, "/settings", `{"tone": "formal"}`)
		require.Equal(t, http.StatusOK, resp.StatusCode)

		require.NotNil(t, st.settings)
		assert.Equal(t, models.DefaultSettings().Keywords, st.settings.Keywords)
		assert.Equal(t, models.ToneFormal, st.settings.Tone)
	})

	t.Run("explicit empty list is kept", func(t *testing.T) {
		st := newMemStore()
		app := newPipelineApp(st)

		resp, _ := doJSON(t, app, http.MethodPut, "/settings", `{"keywords": []}`)
		require.Equal(t, http.StatusOK, resp.StatusCode)

		require.NotNil(t, st.settings)
		require.NotNil(t, st.settings.Keywords)
		assert.Empty(t, st.settings.Keywords)
	})
}
