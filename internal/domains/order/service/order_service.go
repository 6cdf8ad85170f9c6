package service

import (
	"context"
	"fmt"
	"strings"

	"lumina-storefront/internal/domains/order/model"
	"lumina-storefront/internal/domains/order/repository"

	"github.com/rs/zerolog/log"
	"github.com/xuri/excelize/v2"
)

const ordersSheet = "Orders"

type OrderService struct {
	repo repository.Repository
}

func NewOrderService(repo repository.Repository) ServiceInterface {
	return &OrderService{repo: repo}
}

func (s *OrderService) ListOrders(ctx context.Context) ([]model.Order, error) {
	return s.repo.List(ctx)
}

// UpdateOrderStatus accepts any known status regardless of the current one
func (s *OrderService) UpdateOrderStatus(ctx context.Context, id string, status model.Status) error {
	if !status.IsValid() {
		return fmt.Errorf("%w: %q", model.ErrInvalidStatus, status)
	}

	if err := s.repo.UpdateStatus(ctx, id, status); err != nil {
		return err
	}

	log.Info().Str("order_id", id).Str("status", status.String()).Msg("Order status updated")
	return nil
}

func (s *OrderService) Summary(ctx context.Context) (*model.Summary, error) {
	return s.repo.Summary(ctx)
}

// ExportOrdersToExcel builds a workbook of orders, all of them when status is empty
func (s *OrderService) ExportOrdersToExcel(ctx context.Context, status model.Status) (*excelize.File, int, error) {
	var (
		orders []model.Order
		err    error
	)
	if status == "" {
		orders, err = s.repo.List(ctx)
	} else {
		if !status.IsValid() {
			return nil, 0, fmt.Errorf("%w: %q", model.ErrInvalidStatus, status)
		}
		orders, err = s.repo.ListByStatus(ctx, status)
	}
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list orders: %w", err)
	}

	f, err := buildOrdersExcelFile(orders)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to build excel file: %w", err)
	}

	return f, len(orders), nil
}

func buildOrdersExcelFile(orders []model.Order) (*excelize.File, error) {
	f := excelize.NewFile()
	if err := f.SetSheetName("Sheet1", ordersSheet); err != nil {
		return nil, err
	}

	headers := []string{"ID", "Date", "Customer", "Status", "Items", "Item Count", "Total"}
	for colIdx, header := range headers {
		cell, _ := excelize.CoordinatesToCellName(colIdx+1, 1)
		f.SetCellValue(ordersSheet, cell, header)
	}

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true},
	})
	if err == nil {
		f.SetCellStyle(ordersSheet, "A1", "G1", headerStyle)
	}

	for i, o := range orders {
		rowNum := i + 2
		cell := func(col int) string {
			name, _ := excelize.CoordinatesToCellName(col, rowNum)
			return name
		}

		lines := make([]string, 0, len(o.Items))
		for _, item := range o.Items {
			lines = append(lines, fmt.Sprintf("%s (x%d)", item.Book.Title, item.Quantity))
		}

		f.SetCellValue(ordersSheet, cell(1), o.ID)
		f.SetCellValue(ordersSheet, cell(2), o.Date.Format("2006-01-02 15:04:05"))
		f.SetCellValue(ordersSheet, cell(3), o.CustomerName)
		f.SetCellValue(ordersSheet, cell(4), o.Status.String())
		f.SetCellValue(ordersSheet, cell(5), strings.Join(lines, "; "))
		f.SetCellValue(ordersSheet, cell(6), o.ItemCount())
		// StringFixed keeps the cents exact in the sheet
		f.SetCellValue(ordersSheet, cell(7), o.Total.StringFixed(2))
	}

	return f, nil
}
