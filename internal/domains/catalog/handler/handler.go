package handler

import (
	"net/http"

	"lumina-storefront/internal/domains/catalog/service"
	"lumina-storefront/internal/shared/response"

	"github.com/gin-gonic/gin"
)

type CatalogHandler struct {
	service service.ServiceInterface
}

func NewCatalogHandler(service service.ServiceInterface) *CatalogHandler {
	return &CatalogHandler{service: service}
}

// Home - GET /catalog?category=&q=
func (h *CatalogHandler) Home(c *gin.Context) {
	view, err := h.service.Home(c.Request.Context(), c.Query("category"), c.Query("q"))
	if err != nil {
		response.ServiceUnavailable(c, err.Error())
		return
	}
	response.Success(c, http.StatusOK, view)
}

// Detail - GET /catalog/books/:id
// An unknown id answers 200 with the home view.
func (h *CatalogHandler) Detail(c *gin.Context) {
	detail, home, err := h.service.Detail(c.Request.Context(), c.Param("id"))
	if err != nil {
		response.ServiceUnavailable(c, err.Error())
		return
	}
	if detail == nil {
		response.Success(c, http.StatusOK, home)
		return
	}
	response.Success(c, http.StatusOK, detail)
}
