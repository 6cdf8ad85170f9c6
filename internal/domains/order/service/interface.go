package service

import (
	"context"

	"lumina-storefront/internal/domains/order/model"

	"github.com/xuri/excelize/v2"
)

// ServiceInterface - admin order management
type ServiceInterface interface {
	ListOrders(ctx context.Context) ([]model.Order, error)
	UpdateOrderStatus(ctx context.Context, id string, status model.Status) error
	Summary(ctx context.Context) (*model.Summary, error)
	ExportOrdersToExcel(ctx context.Context, status model.Status) (*excelize.File, int, error)
}
