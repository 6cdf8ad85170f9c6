package session

import (
	"net/http"

	"lumina-storefront/internal/shared/middleware"
	"lumina-storefront/internal/shared/response"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	loader *Loader
}

func NewHandler(loader *Loader) *Handler {
	return &Handler{loader: loader}
}

// Bootstrap - GET /bootstrap
// Any load failure is a blocking error carrying the raw message.
func (h *Handler) Bootstrap(c *gin.Context) {
	state, err := h.loader.Load(c.Request.Context(), middleware.GetSessionID(c), middleware.IsAuthenticated(c))
	if err != nil {
		response.ServiceUnavailable(c, err.Error())
		return
	}
	response.Success(c, http.StatusOK, state.Public())
}

type viewResponse struct {
	Page           Page   `json:"page"`
	SelectedBookID string `json:"selected_book_id,omitempty"`
	Anchor         string `json:"anchor,omitempty"`
}

// View - GET /view?page=&book_id=
func (h *Handler) View(c *gin.Context) {
	state, err := h.loader.Load(c.Request.Context(), middleware.GetSessionID(c), middleware.IsAuthenticated(c))
	if err != nil {
		response.ServiceUnavailable(c, err.Error())
		return
	}

	next := Navigate(*state, Page(c.Query("page")), c.Query("book_id"))
	response.Success(c, http.StatusOK, viewResponse{
		Page:           next.Page,
		SelectedBookID: next.SelectedBookID,
		Anchor:         next.Anchor,
	})
}
