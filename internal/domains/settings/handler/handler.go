package handler

import (
	"errors"
	"net/http"

	"lumina-storefront/internal/domains/settings/model"
	"lumina-storefront/internal/domains/settings/service"
	"lumina-storefront/internal/shared/response"

	"github.com/gin-gonic/gin"
)

type SettingsHandler struct {
	service service.ServiceInterface
}

func NewSettingsHandler(service service.ServiceInterface) *SettingsHandler {
	return &SettingsHandler{service: service}
}

// GetSettings - GET /admin/settings
func (h *SettingsHandler) GetSettings(c *gin.Context) {
	settings, err := h.service.GetSettings(c.Request.Context())
	if err != nil {
		handleError(c, err)
		return
	}
	response.Success(c, http.StatusOK, settings)
}

// UpdateSettings - PUT /admin/settings
func (h *SettingsHandler) UpdateSettings(c *gin.Context) {
	var req model.UpdateSettingsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	settings, err := h.service.SaveSettings(c.Request.Context(), req)
	if err != nil {
		handleError(c, err)
		return
	}
	response.Success(c, http.StatusOK, settings)
}

// AddCategory - POST /admin/settings/categories
func (h *SettingsHandler) AddCategory(c *gin.Context) {
	var req model.CategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, model.ErrCategoryBlank.Error())
		return
	}

	settings, err := h.service.AddCategory(c.Request.Context(), req.Name)
	if err != nil {
		handleError(c, err)
		return
	}
	response.Success(c, http.StatusCreated, settings)
}

// RemoveCategory - DELETE /admin/settings/categories/:name
func (h *SettingsHandler) RemoveCategory(c *gin.Context) {
	settings, err := h.service.RemoveCategory(c.Request.Context(), c.Param("name"))
	if err != nil {
		handleError(c, err)
		return
	}
	response.Success(c, http.StatusOK, settings)
}

func handleError(c *gin.Context, err error) {
	switch {
	case response.IsValidationError(err):
		response.ValidationFailed(c, err)
	case errors.Is(err, model.ErrCategoryBlank):
		response.BadRequest(c, err.Error())
	case errors.Is(err, model.ErrCategoryExists):
		response.Conflict(c, err.Error())
	case errors.Is(err, model.ErrCategoryNotFound):
		response.NotFound(c, err.Error())
	case errors.Is(err, model.ErrHeroBookNotFound):
		response.ErrorResponse(c, http.StatusUnprocessableEntity, "HERO_BOOK_NOT_FOUND", err.Error())
	default:
		response.InternalServerError(c, err.Error())
	}
}
