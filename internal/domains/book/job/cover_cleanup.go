package job

import (
	"context"
	"fmt"
	"time"

	"lumina-storefront/internal/domains/book/model"
	"lumina-storefront/internal/infrastructure/queue"
	"lumina-storefront/internal/shared"

	"github.com/hibiken/asynq"
	"github.com/rs/zerolog/log"
)

// ObjectStore is the part of storage.MinIOStorage used for covers
type ObjectStore interface {
	KeyFromURL(url string) (string, bool)
	DeleteByURL(ctx context.Context, url string) error
}

// CoverCleanupScheduler enqueues deletion of covers hosted in our bucket.
// It implements the book service CoverCleaner.
type CoverCleanupScheduler struct {
	queue queue.Enqueuer
	store ObjectStore
}

func NewCoverCleanupScheduler(q queue.Enqueuer, store ObjectStore) *CoverCleanupScheduler {
	return &CoverCleanupScheduler{queue: q, store: store}
}

func (s *CoverCleanupScheduler) ScheduleCoverCleanup(ctx context.Context, bookID, coverURL string) error {
	if _, ours := s.store.KeyFromURL(coverURL); !ours {
		return nil
	}

	return s.queue.EnqueueJSON(ctx, shared.TypeDeleteBookCover,
		model.DeleteCoverPayload{BookID: bookID, CoverURL: coverURL},
		asynq.Queue(shared.QueueLow),
		asynq.MaxRetry(3),
		asynq.Timeout(30*time.Second),
	)
}

// DeleteCoverHandler removes the stored object (worker side)
type DeleteCoverHandler struct {
	store ObjectStore
}

func NewDeleteCoverHandler(store ObjectStore) *DeleteCoverHandler {
	return &DeleteCoverHandler{store: store}
}

func (h *DeleteCoverHandler) ProcessTask(ctx context.Context, task *asynq.Task) error {
	var payload model.DeleteCoverPayload
	if err := queue.UnmarshalTask(task, &payload); err != nil {
		return err
	}

	if err := h.store.DeleteByURL(ctx, payload.CoverURL); err != nil {
		log.Error().
			Err(err).
			Str("book_id", payload.BookID).
			Msg("Failed to delete book cover")
		return fmt.Errorf("delete cover: %w", err)
	}

	log.Info().
		Str("book_id", payload.BookID).
		Str("cover_url", payload.CoverURL).
		Msg("Book cover deleted")
	return nil
}
