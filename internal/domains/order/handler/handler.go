package handler

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"lumina-storefront/internal/domains/order/model"
	"lumina-storefront/internal/domains/order/service"
	"lumina-storefront/internal/shared/response"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

type OrderHandler struct {
	service service.ServiceInterface
}

func NewOrderHandler(service service.ServiceInterface) *OrderHandler {
	return &OrderHandler{service: service}
}

// ListOrders - GET /admin/orders
func (h *OrderHandler) ListOrders(c *gin.Context) {
	orders, err := h.service.ListOrders(c.Request.Context())
	if err != nil {
		handleError(c, err)
		return
	}
	response.SuccessWithMeta(c, http.StatusOK, orders, &response.Meta{Total: len(orders)})
}

// UpdateOrderStatus - PATCH /admin/orders/:id/status
func (h *OrderHandler) UpdateOrderStatus(c *gin.Context) {
	// Step 1: bind
	var req model.UpdateStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	// Step 2: update
	id := c.Param("id")
	if err := h.service.UpdateOrderStatus(c.Request.Context(), id, req.Status); err != nil {
		handleError(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"id": id, "status": req.Status})
}

// ExportOrders - GET /admin/orders/export?status=pending
func (h *OrderHandler) ExportOrders(c *gin.Context) {
	status := model.Status(c.Query("status"))

	f, n, err := h.service.ExportOrdersToExcel(c.Request.Context(), status)
	if err != nil {
		handleError(c, err)
		return
	}
	defer func() {
		if err := f.Close(); err != nil {
			log.Warn().Err(err).Msg("Failed to close workbook")
		}
	}()

	filename := fmt.Sprintf("orders-%s.xlsx", time.Now().Format("20060102-150405"))
	c.Header("Content-Type", xlsxContentType)
	c.Header("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, filename))
	c.Header("X-Total-Count", strconv.Itoa(n))
	c.Status(http.StatusOK)

	if err := f.Write(c.Writer); err != nil {
		log.Error().Err(err).Msg("Failed to write orders workbook")
	}
}

func handleError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, model.ErrInvalidStatus):
		response.BadRequest(c, err.Error())
	case errors.Is(err, model.ErrOrderNotFound):
		response.NotFound(c, err.Error())
	default:
		response.InternalServerError(c, err.Error())
	}
}
