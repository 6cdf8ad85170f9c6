package service

import (
	"context"

	"lumina-storefront/internal/domains/settings/model"
)

type ServiceInterface interface {
	// GetSettings falls back to model.Defaults without writing them
	GetSettings(ctx context.Context) (*model.Settings, error)
	SaveSettings(ctx context.Context, req model.UpdateSettingsRequest) (*model.Settings, error)
	AddCategory(ctx context.Context, name string) (*model.Settings, error)
	RemoveCategory(ctx context.Context, name string) (*model.Settings, error)
}
