package handler

import (
	"errors"
	"net/http"

	bookModel "lumina-storefront/internal/domains/book/model"
	"lumina-storefront/internal/domains/cart/model"
	"lumina-storefront/internal/domains/cart/service"
	"lumina-storefront/internal/session"
	"lumina-storefront/internal/shared/middleware"
	"lumina-storefront/internal/shared/response"

	"github.com/gin-gonic/gin"
)

type CartHandler struct {
	service service.ServiceInterface
}

func NewCartHandler(service service.ServiceInterface) *CartHandler {
	return &CartHandler{service: service}
}

// GetCart - GET /cart
func (h *CartHandler) GetCart(c *gin.Context) {
	items, err := h.service.GetCart(c.Request.Context(), middleware.GetSessionID(c))
	if err != nil {
		handleError(c, err)
		return
	}
	response.Success(c, http.StatusOK, model.NewCartResponse(items))
}

// AddItem - POST /cart/items
func (h *CartHandler) AddItem(c *gin.Context) {
	// Step 1: bind
	var req model.AddToCartRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	// Step 2: add and write through
	items, err := h.service.AddItem(c.Request.Context(), middleware.GetSessionID(c), req.BookID)
	if err != nil {
		handleError(c, err)
		return
	}
	response.Success(c, http.StatusOK, model.NewCartResponse(items))
}

// RemoveItem - DELETE /cart/items/:book_id
func (h *CartHandler) RemoveItem(c *gin.Context) {
	items, err := h.service.RemoveItem(c.Request.Context(), middleware.GetSessionID(c), c.Param("book_id"))
	if err != nil {
		handleError(c, err)
		return
	}
	response.Success(c, http.StatusOK, model.NewCartResponse(items))
}

type checkoutResponse struct {
	*service.CheckoutResult
	Page session.Page `json:"page"`
}

// Checkout - POST /cart/checkout
func (h *CartHandler) Checkout(c *gin.Context) {
	result, err := h.service.Checkout(c.Request.Context(), middleware.GetSessionID(c))
	if err != nil {
		handleError(c, err)
		return
	}
	response.Success(c, http.StatusCreated, checkoutResponse{
		CheckoutResult: result,
		Page:           session.PageHome,
	})
}

func handleError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, bookModel.ErrBookNotFound):
		response.NotFound(c, err.Error())
	case errors.Is(err, model.ErrEmptyCart), errors.Is(err, model.ErrOutOfStock):
		response.Conflict(c, err.Error())
	default:
		response.ServiceUnavailable(c, err.Error())
	}
}
