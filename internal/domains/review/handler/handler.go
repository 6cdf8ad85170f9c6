package handler

import (
	"errors"
	"net/http"

	"lumina-storefront/internal/domains/review/model"
	"lumina-storefront/internal/domains/review/service"
	"lumina-storefront/internal/shared/response"

	"github.com/gin-gonic/gin"
)

type ReviewHandler struct {
	service service.ServiceInterface
}

func NewReviewHandler(service service.ServiceInterface) *ReviewHandler {
	return &ReviewHandler{service: service}
}

// ListReviews - GET /admin/reviews
func (h *ReviewHandler) ListReviews(c *gin.Context) {
	reviews, err := h.service.ListReviews(c.Request.Context())
	if err != nil {
		handleError(c, err)
		return
	}
	response.SuccessWithMeta(c, http.StatusOK, reviews, &response.Meta{Total: len(reviews)})
}

// CreateReview - POST /admin/reviews
func (h *ReviewHandler) CreateReview(c *gin.Context) {
	var req model.CreateReviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	review, err := h.service.CreateReview(c.Request.Context(), req)
	if err != nil {
		handleError(c, err)
		return
	}
	response.Success(c, http.StatusCreated, review)
}

// DeleteReview - DELETE /admin/reviews/:id
func (h *ReviewHandler) DeleteReview(c *gin.Context) {
	if err := h.service.DeleteReview(c.Request.Context(), c.Param("id")); err != nil {
		handleError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func handleError(c *gin.Context, err error) {
	if response.IsValidationError(err) {
		response.ValidationFailed(c, err)
		return
	}

	var reviewErr *model.ReviewError
	if errors.As(err, &reviewErr) {
		status := http.StatusBadRequest
		if errors.Is(err, model.ErrReviewNotFound) {
			status = http.StatusNotFound
		}
		response.ErrorResponse(c, status, reviewErr.Code, reviewErr.Message)
		return
	}

	response.InternalServerError(c, err.Error())
}
