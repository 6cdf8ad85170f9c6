package repository

import (
	"context"
	"errors"
	"fmt"

	"lumina-storefront/internal/domains/review/model"
	"lumina-storefront/internal/shared"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

const (
	reviewColumns = `id::text, book_id::text, user_name, rating, COALESCE(comment, ''), created_at`

	pgForeignKeyViolation = "23503"
)

type postgresRepository struct {
	pool *pgxpool.Pool
}

func NewPostgresRepository(pool *pgxpool.Pool) RepositoryInterface {
	return &postgresRepository{pool: pool}
}

func (r *postgresRepository) List(ctx context.Context) ([]model.Review, error) {
	return r.query(ctx, `SELECT `+reviewColumns+` FROM reviews ORDER BY created_at DESC`)
}

func (r *postgresRepository) ListByBook(ctx context.Context, bookID string) ([]model.Review, error) {
	if _, err := uuid.Parse(bookID); err != nil {
		return []model.Review{}, nil
	}
	return r.query(ctx,
		`SELECT `+reviewColumns+` FROM reviews WHERE book_id = $1 ORDER BY created_at DESC`,
		bookID,
	)
}

func (r *postgresRepository) query(ctx context.Context, query string, args ...interface{}) ([]model.Review, error) {
	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list reviews: %w", err)
	}
	defer rows.Close()

	reviews := make([]model.Review, 0)
	for rows.Next() {
		var rv model.Review
		if err := scanReview(rows, &rv); err != nil {
			return nil, err
		}
		reviews = append(reviews, rv)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows error: %w", err)
	}

	return reviews, nil
}

func scanReview(row pgx.Row, rv *model.Review) error {
	err := row.Scan(&rv.ID, &rv.BookID, &rv.UserName, &rv.Rating, &rv.Comment, &rv.Date)
	if err != nil {
		return fmt.Errorf("scan review: %w", err)
	}
	if err := rv.CheckStored(); err != nil {
		return fmt.Errorf("%w: %v", shared.ErrMalformedRow, err)
	}
	return nil
}

func (r *postgresRepository) Create(ctx context.Context, review *model.Review) error {
	query := `
		INSERT INTO reviews (book_id, user_name, rating, comment)
		VALUES ($1::uuid, $2, $3, $4)
		RETURNING id::text, created_at
	`

	err := r.pool.QueryRow(ctx, query,
		review.BookID,
		review.UserName,
		review.Rating,
		review.Comment,
	).Scan(&review.ID, &review.Date)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgForeignKeyViolation {
			return model.NewBookNotFoundError(review.BookID)
		}
		return fmt.Errorf("create review: %w", err)
	}

	return nil
}

func (r *postgresRepository) Delete(ctx context.Context, id string) error {
	if _, err := uuid.Parse(id); err != nil {
		return model.NewReviewNotFoundError()
	}

	result, err := r.pool.Exec(ctx, `DELETE FROM reviews WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete review: %w", err)
	}

	if result.RowsAffected() == 0 {
		return model.NewReviewNotFoundError()
	}

	return nil
}

func (r *postgresRepository) Count(ctx context.Context) (int, error) {
	var n int
	if err := r.pool.QueryRow(ctx, `SELECT COUNT(*) FROM reviews`).Scan(&n); err != nil {
		return 0, fmt.Errorf("count reviews: %w", err)
	}
	return n, nil
}
