package repository

import (
	"context"
	"errors"
	"fmt"

	"lumina-storefront/internal/domains/book/model"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type postgresRepository struct {
	pool *pgxpool.Pool
}

// NewPostgresRepository - Constructor
func NewPostgresRepository(pool *pgxpool.Pool) RepositoryInterface {
	return &postgresRepository{pool: pool}
}

// List returns every book, newest first
func (r *postgresRepository) List(ctx context.Context) ([]model.Book, error) {
	query := `SELECT ` + bookColumns + ` FROM books ORDER BY created_at DESC`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list books: %w", err)
	}
	defer rows.Close()

	books := make([]model.Book, 0)
	for rows.Next() {
		row, err := scanBookRow(rows)
		if err != nil {
			return nil, fmt.Errorf("scan book: %w", err)
		}
		b, err := row.decode()
		if err != nil {
			return nil, err
		}
		books = append(books, b)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows error: %w", err)
	}

	return books, nil
}

func (r *postgresRepository) GetByID(ctx context.Context, id string) (*model.Book, error) {
	// ids are uuid in the table, anything else can't exist
	if _, err := uuid.Parse(id); err != nil {
		return nil, model.ErrBookNotFound
	}

	query := `SELECT ` + bookColumns + ` FROM books WHERE id = $1`

	row, err := scanBookRow(r.pool.QueryRow(ctx, query, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, model.ErrBookNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get book: %w", err)
	}

	b, err := row.decode()
	if err != nil {
		return nil, err
	}
	return &b, nil
}

func (r *postgresRepository) Create(ctx context.Context, book *model.Book) error {
	query := `
		INSERT INTO books (
			title, author, price, description, category,
			cover_image, pdf_preview_url, stock, is_featured
		) VALUES ($1, $2, $3::numeric, $4, $5, $6, $7, $8, $9)
		RETURNING id::text, created_at
	`

	err := r.pool.QueryRow(ctx, query,
		book.Title,
		book.Author,
		book.Price.String(),
		book.Description,
		book.Category,
		book.CoverImage,
		nullable(book.PdfPreviewURL),
		book.Stock,
		book.IsFeatured,
	).Scan(&book.ID, &book.CreatedAt)
	if err != nil {
		return fmt.Errorf("create book: %w", err)
	}

	return nil
}

func (r *postgresRepository) Update(ctx context.Context, book *model.Book) error {
	if _, err := uuid.Parse(book.ID); err != nil {
		return model.ErrBookNotFound
	}

	query := `
		UPDATE books SET
			title = $2,
			author = $3,
			price = $4::numeric,
			description = $5,
			category = $6,
			cover_image = $7,
			pdf_preview_url = $8,
			stock = $9,
			is_featured = $10
		WHERE id = $1
	`

	result, err := r.pool.Exec(ctx, query,
		book.ID,
		book.Title,
		book.Author,
		book.Price.String(),
		book.Description,
		book.Category,
		book.CoverImage,
		nullable(book.PdfPreviewURL),
		book.Stock,
		book.IsFeatured,
	)
	if err != nil {
		return fmt.Errorf("update book: %w", err)
	}

	if result.RowsAffected() == 0 {
		return model.ErrBookNotFound
	}

	return nil
}

func (r *postgresRepository) Delete(ctx context.Context, id string) error {
	if _, err := uuid.Parse(id); err != nil {
		return model.ErrBookNotFound
	}

	result, err := r.pool.Exec(ctx, `DELETE FROM books WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete book: %w", err)
	}

	if result.RowsAffected() == 0 {
		return model.ErrBookNotFound
	}

	return nil
}

func (r *postgresRepository) Count(ctx context.Context) (int, error) {
	var n int
	if err := r.pool.QueryRow(ctx, `SELECT COUNT(*) FROM books`).Scan(&n); err != nil {
		return 0, fmt.Errorf("count books: %w", err)
	}
	return n, nil
}
