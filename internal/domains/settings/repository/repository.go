package repository

import (
	"context"

	"lumina-storefront/internal/domains/settings/model"
)

type Repository interface {
	// Get returns (nil, nil) when no settings row exists yet
	Get(ctx context.Context) (*model.Settings, error)
	// Save updates the single row or inserts it when absent
	Save(ctx context.Context, settings *model.Settings) error
}
