package handler

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"lumina-storefront/internal/domains/book/model"

	"github.com/gin-gonic/gin"
	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/stretchr/testify/assert"
)

type stubService struct{}

func (stubService) ListBooks(ctx context.Context) ([]model.Book, error) {
	return []model.Book{{ID: "b1", Title: "Cenizas de Oro"}}, nil
}

func (stubService) GetBook(ctx context.Context, id string) (*model.Book, error) {
	return nil, model.ErrBookNotFound
}

func (stubService) CreateBook(ctx context.Context, req model.CreateBookRequest) (*model.Book, error) {
	if req.Title == "" {
		return nil, validation.Errors{"title": errors.New("cannot be blank")}
	}
	book := req.ToBook()
	book.ID = "b2"
	return book, nil
}

func (stubService) UpdateBook(ctx context.Context, id string, req model.UpdateBookRequest) (*model.Book, error) {
	return nil, model.ErrBookNotFound
}

func (stubService) DeleteBook(ctx context.Context, id string) error {
	if id != "b1" {
		return model.ErrBookNotFound
	}
	return nil
}

func newRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	h := NewHandler(stubService{})
	r := gin.New()
	r.GET("/admin/books", h.ListBooks)
	r.POST("/admin/books", h.CreateBook)
	r.PUT("/admin/books/:id", h.UpdateBook)
	r.DELETE("/admin/books/:id", h.DeleteBook)
	return r
}

func do(r *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)
	return w
}

func TestListBooks_IncludesTotal(t *testing.T) {
	w := do(newRouter(), http.MethodGet, "/admin/books", "")

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"meta":{"total":1}`)
}

func TestBookHandler_StatusMapping(t *testing.T) {
	tests := []struct {
		name   string
		method string
		path   string
		body   string
		want   int
		code   string
	}{
		{"create", http.MethodPost, "/admin/books", `{"title":"La Ultima Brujula","price":"12.50","category":"General"}`, http.StatusCreated, ""},
		{"create invalid", http.MethodPost, "/admin/books", `{"price":"1"}`, http.StatusBadRequest, "VALIDATION_ERROR"},
		{"create malformed json", http.MethodPost, "/admin/books", `{"title":`, http.StatusBadRequest, "BAD_REQUEST"},
		{"update unknown", http.MethodPut, "/admin/books/nope", `{"stock":3}`, http.StatusNotFound, "NOT_FOUND"},
		{"delete", http.MethodDelete, "/admin/books/b1", "", http.StatusNoContent, ""},
		{"delete unknown", http.MethodDelete, "/admin/books/nope", "", http.StatusNotFound, "NOT_FOUND"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := do(newRouter(), tt.method, tt.path, tt.body)
			assert.Equal(t, tt.want, w.Code)
			if tt.code != "" {
				assert.Contains(t, w.Body.String(), tt.code)
			}
		})
	}
}
