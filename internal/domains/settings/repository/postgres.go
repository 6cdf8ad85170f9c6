package repository

import (
	"context"
	"errors"
	"fmt"

	"lumina-storefront/internal/domains/settings/model"
	"lumina-storefront/pkg/database"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/lib/pq"
)

type postgresRepository struct {
	pool *pgxpool.Pool
}

func NewPostgresRepository(pool *pgxpool.Pool) Repository {
	return &postgresRepository{pool: pool}
}

func (r *postgresRepository) Get(ctx context.Context) (*model.Settings, error) {
	query := `
		SELECT
			COALESCE(whatsapp_number, ''),
			COALESCE(author_name, ''),
			COALESCE(author_bio, ''),
			COALESCE(author_image, ''),
			categories,
			hero_book_id::text
		FROM settings
		ORDER BY created_at
		LIMIT 1
	`

	var (
		s          model.Settings
		categories []string
		heroBookID *string
	)
	err := r.pool.QueryRow(ctx, query).Scan(
		&s.WhatsappNumber,
		&s.AuthorName,
		&s.AuthorBio,
		&s.AuthorImage,
		&categories,
		&heroBookID,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get settings: %w", err)
	}

	s.Categories = categories
	if s.Categories == nil {
		s.Categories = []string{}
	}
	if heroBookID != nil {
		s.HeroBookID = *heroBookID
	}

	return &s, nil
}

func (r *postgresRepository) Save(ctx context.Context, s *model.Settings) error {
	var heroBookID *string
	if s.HeroBookID != "" {
		heroBookID = &s.HeroBookID
	}

	return database.WithTransaction(ctx, r.pool, func(tx pgx.Tx) error {
		var id string
		err := tx.QueryRow(ctx,
			`SELECT id::text FROM settings ORDER BY created_at LIMIT 1 FOR UPDATE`,
		).Scan(&id)

		switch {
		case errors.Is(err, pgx.ErrNoRows):
			_, err = tx.Exec(ctx, `
				INSERT INTO settings (
					whatsapp_number, author_name, author_bio, author_image,
					categories, hero_book_id
				) VALUES ($1, $2, $3, $4, $5, $6::uuid)
			`,
				s.WhatsappNumber, s.AuthorName, s.AuthorBio, s.AuthorImage,
				pq.Array(s.Categories), heroBookID,
			)
			if err != nil {
				return fmt.Errorf("insert settings: %w", err)
			}
			return nil

		case err != nil:
			return fmt.Errorf("lock settings: %w", err)
		}

		_, err = tx.Exec(ctx, `
			UPDATE settings SET
				whatsapp_number = $2,
				author_name = $3,
				author_bio = $4,
				author_image = $5,
				categories = $6,
				hero_book_id = $7::uuid,
				updated_at = NOW()
			WHERE id = $1
		`,
			id, s.WhatsappNumber, s.AuthorName, s.AuthorBio, s.AuthorImage,
			pq.Array(s.Categories), heroBookID,
		)
		if err != nil {
			return fmt.Errorf("update settings: %w", err)
		}
		return nil
	})
}
