package job

import (
	"context"
	"encoding/json"
	"strings"
	"testing"

	"lumina-storefront/internal/domains/book/model"
	"lumina-storefront/internal/shared"

	"github.com/hibiken/asynq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeStore struct{ deleted []string }

func (f *fakeStore) KeyFromURL(url string) (string, bool) {
	const base = "http://minio:9000/lumina/"
	if !strings.HasPrefix(url, base) {
		return "", false
	}
	return strings.TrimPrefix(url, base), true
}

func (f *fakeStore) DeleteByURL(ctx context.Context, url string) error {
	f.deleted = append(f.deleted, url)
	return nil
}

type fakeQueue struct {
	types    []string
	payloads []interface{}
}

func (f *fakeQueue) EnqueueJSON(ctx context.Context, taskType string, payload interface{}, opts ...asynq.Option) error {
	f.types = append(f.types, taskType)
	f.payloads = append(f.payloads, payload)
	return nil
}

func TestScheduleCoverCleanup_OnlyOwnedCovers(t *testing.T) {
	q := &fakeQueue{}
	s := NewCoverCleanupScheduler(q, &fakeStore{})
	ctx := context.Background()

	require.NoError(t, s.ScheduleCoverCleanup(ctx, "b1", "https://picsum.photos/seed/1/400/600"))
	require.NoError(t, s.ScheduleCoverCleanup(ctx, "b1", "data:image/jpeg;base64,AAAA"))
	assert.Empty(t, q.types)

	require.NoError(t, s.ScheduleCoverCleanup(ctx, "b1", "http://minio:9000/lumina/covers/b1.jpg"))
	assert.Equal(t, []string{shared.TypeDeleteBookCover}, q.types)
	assert.Equal(t, model.DeleteCoverPayload{BookID: "b1", CoverURL: "http://minio:9000/lumina/covers/b1.jpg"}, q.payloads[0])
}

func TestDeleteCoverHandler(t *testing.T) {
	store := &fakeStore{}
	h := NewDeleteCoverHandler(store)

	data, _ := json.Marshal(model.DeleteCoverPayload{BookID: "b1", CoverURL: "http://minio:9000/lumina/covers/b1.jpg"})
	require.NoError(t, h.ProcessTask(context.Background(), asynq.NewTask(shared.TypeDeleteBookCover, data)))
	assert.Equal(t, []string{"http://minio:9000/lumina/covers/b1.jpg"}, store.deleted)

	err := h.ProcessTask(context.Background(), asynq.NewTask(shared.TypeDeleteBookCover, []byte("{")))
	assert.ErrorIs(t, err, asynq.SkipRetry)
}
