package handler

import (
	"errors"
	"io"
	"net/http"

	"lumina-storefront/internal/domains/admin/model"
	"lumina-storefront/internal/domains/admin/service"
	"lumina-storefront/internal/infrastructure/storage"
	"lumina-storefront/internal/shared/response"

	"github.com/gin-gonic/gin"
)

const (
	codeInvalidCredentials = "AUTH_INVALID"

	// multipart overhead on top of the image limit
	maxUploadBytes = 6 << 20
)

var uploadFolders = map[string]bool{"covers": true, "authors": true}

type AdminHandler struct {
	service service.ServiceInterface
}

func NewAdminHandler(service service.ServiceInterface) *AdminHandler {
	return &AdminHandler{service: service}
}

// Login - POST /admin/login
func (h *AdminHandler) Login(c *gin.Context) {
	var req model.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	resp, err := h.service.Login(c.Request.Context(), req)
	switch {
	case errors.Is(err, model.ErrInvalidCredentials):
		// the form clears its input on this error
		response.ErrorWithDetails(c, http.StatusUnauthorized, codeInvalidCredentials, err.Error(),
			gin.H{"clear_input": true})
		return
	case errors.Is(err, model.ErrAuthUnavailable):
		response.ServiceUnavailable(c, err.Error())
		return
	case err != nil:
		response.InternalServerError(c, err.Error())
		return
	}

	response.Success(c, http.StatusOK, resp)
}

// Stats - GET /admin/stats
func (h *AdminHandler) Stats(c *gin.Context) {
	stats, err := h.service.Stats(c.Request.Context())
	if err != nil {
		response.ServiceUnavailable(c, err.Error())
		return
	}
	response.Success(c, http.StatusOK, stats)
}

// UploadImage - POST /admin/uploads/image?folder=covers (multipart field "file")
func (h *AdminHandler) UploadImage(c *gin.Context) {
	// Step 1: folder
	folder := c.DefaultQuery("folder", "covers")
	if !uploadFolders[folder] {
		response.BadRequest(c, "folder must be covers or authors")
		return
	}

	// Step 2: read file
	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, maxUploadBytes)
	file, _, err := c.Request.FormFile("file")
	if err != nil {
		response.BadRequest(c, model.ErrNoImage.Error())
		return
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	// Step 3: process and store
	img, err := h.service.UploadImage(c.Request.Context(), folder, data)
	switch {
	case errors.Is(err, model.ErrNoImage),
		errors.Is(err, storage.ErrImageTooLarge),
		errors.Is(err, storage.ErrInvalidImageFormat):
		response.BadRequest(c, err.Error())
		return
	case err != nil:
		response.InternalServerError(c, err.Error())
		return
	}

	response.Success(c, http.StatusCreated, img)
}
