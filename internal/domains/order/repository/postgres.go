package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"lumina-storefront/internal/domains/order/model"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type postgresOrderRepository struct {
	pool *pgxpool.Pool
}

func NewPostgresOrderRepository(pool *pgxpool.Pool) Repository {
	return &postgresOrderRepository{pool: pool}
}

func (r *postgresOrderRepository) List(ctx context.Context) ([]model.Order, error) {
	return r.query(ctx, `SELECT `+orderColumns+` FROM orders ORDER BY date DESC`)
}

func (r *postgresOrderRepository) ListByStatus(ctx context.Context, status model.Status) ([]model.Order, error) {
	return r.query(ctx,
		`SELECT `+orderColumns+` FROM orders WHERE status = $1 ORDER BY date DESC`,
		status.String(),
	)
}

func (r *postgresOrderRepository) query(ctx context.Context, query string, args ...interface{}) ([]model.Order, error) {
	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list orders: %w", err)
	}
	defer rows.Close()

	orders := make([]model.Order, 0)
	for rows.Next() {
		row, err := scanOrderRow(rows)
		if err != nil {
			return nil, fmt.Errorf("scan order: %w", err)
		}
		o, err := row.decode()
		if err != nil {
			return nil, err
		}
		orders = append(orders, o)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows error: %w", err)
	}

	return orders, nil
}

// Create inserts the order with the id and date chosen by the caller
func (r *postgresOrderRepository) Create(ctx context.Context, order *model.Order) error {
	items, err := json.Marshal(order.Items)
	if err != nil {
		return fmt.Errorf("encode order items: %w", err)
	}

	query := `
		INSERT INTO orders (id, items, total, status, customer_name, date)
		VALUES ($1::uuid, $2::jsonb, $3::numeric, $4, $5, $6)
	`

	_, err = r.pool.Exec(ctx, query,
		order.ID,
		string(items),
		order.Total.String(),
		order.Status.String(),
		order.CustomerName,
		order.Date,
	)
	if err != nil {
		return fmt.Errorf("create order: %w", err)
	}

	return nil
}

func (r *postgresOrderRepository) UpdateStatus(ctx context.Context, id string, status model.Status) error {
	if _, err := uuid.Parse(id); err != nil {
		return model.ErrOrderNotFound
	}

	result, err := r.pool.Exec(ctx,
		`UPDATE orders SET status = $2, updated_at = NOW() WHERE id = $1`,
		id, status.String(),
	)
	if err != nil {
		return fmt.Errorf("update order status: %w", err)
	}

	if result.RowsAffected() == 0 {
		return model.ErrOrderNotFound
	}

	return nil
}

// Summary counts orders and pending ones. Revenue is the gross sum of all totals.
func (r *postgresOrderRepository) Summary(ctx context.Context) (*model.Summary, error) {
	query := `
		SELECT
			COUNT(*),
			COUNT(*) FILTER (WHERE status = 'pending'),
			COALESCE(SUM(total), 0)::text
		FROM orders
	`

	var (
		s       model.Summary
		revenue string
	)
	err := r.pool.QueryRow(ctx, query).Scan(&s.Count, &s.Pending, &revenue)
	if err != nil && !errors.Is(err, pgx.ErrNoRows) {
		return nil, fmt.Errorf("order summary: %w", err)
	}

	if revenue != "" {
		if s.Revenue, err = decimalFromText(revenue); err != nil {
			return nil, err
		}
	}

	return &s, nil
}
