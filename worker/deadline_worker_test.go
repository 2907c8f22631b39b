package worker

import (
	"context"
	"io"
	"log"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"pitchbox/models"
)

type fakeQueryStore struct {
	queries []models.Query
	updated map[string]bson.M
}

func newFakeQueryStore(queries ...models.Query) *fakeQueryStore {
	return &fakeQueryStore{
		queries: queries,
		updated: map[string]bson.M{},
	}
}

func (f *fakeQueryStore) Available() bool { return true }

func (f *fakeQueryStore) Find(_ context.Context, _ string, _ interface{}, _ int64, out interface{}) error {
	dst := out.(*[]models.Query)
	*dst = append(*dst, f.queries...)
	return nil
}

func (f *fakeQueryStore) UpdateByID(_ context.Context, _ string, id primitive.ObjectID, set bson.M) (int64, int64, error) {
	f.updated[id.Hex()] = set
	return 1, 1, nil
}

func discardLogger() *log.Logger {
	return log.New(io.Discard, "", 0)
}

func TestStartReturnsWhenCancelledDuringStartupDelay(t *testing.T) {
	dw := NewDeadlineWorker(newFakeQueryStore(), time.Minute, discardLogger())

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	done := make(chan struct{})
	go func() {
		dw.Start(ctx)
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("worker did not shut down during the startup delay")
	}
}

func TestSweepIgnoresOnlyExpiredQueries(t *testing.T) {
	now := time.Now().UTC()
	past := now.Add(-time.Hour)
	future := now.Add(time.Hour)

	expired := models.Query{ID: primitive.NewObjectID(), Status: models.QueryStatusNew, Deadline: &past}
	fresh := models.Query{ID: primitive.NewObjectID(), Status: models.QueryStatusNew, Deadline: &future}
	open := models.Query{ID: primitive.NewObjectID(), Status: models.QueryStatusNew}

	st := newFakeQueryStore(expired, fresh, open)
	dw := NewDeadlineWorker(st, time.Minute, discardLogger())

	dw.sweep(context.Background())

	require.Len(t, st.updated, 1)
	set, ok := st.updated[expired.ID.Hex()]
	require.True(t, ok, "expected the expired query to be updated")
	assert.Equal(t, models.QueryStatusIgnored, set["status"])
	assert.NotNil(t, set["updated_at"])
}
