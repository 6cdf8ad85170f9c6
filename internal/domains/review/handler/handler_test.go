package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"lumina-storefront/internal/domains/review/model"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubService struct{}

func (stubService) ListReviews(ctx context.Context) ([]model.Review, error) {
	return []model.Review{{ID: "r1", Rating: 5}}, nil
}

func (stubService) ListBookReviews(ctx context.Context, bookID string) ([]model.Review, error) {
	return nil, nil
}

func (stubService) CreateReview(ctx context.Context, req model.CreateReviewRequest) (*model.Review, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}
	return nil, model.NewBookNotFoundError(req.BookID)
}

func (stubService) DeleteReview(ctx context.Context, id string) error {
	if id != "r1" {
		return model.NewReviewNotFoundError()
	}
	return nil
}

func newRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	h := NewReviewHandler(stubService{})
	r := gin.New()
	r.GET("/admin/reviews", h.ListReviews)
	r.POST("/admin/reviews", h.CreateReview)
	r.DELETE("/admin/reviews/:id", h.DeleteReview)
	return r
}

func do(r *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)
	return w
}

func TestDeleteReview(t *testing.T) {
	r := newRouter()

	assert.Equal(t, http.StatusNoContent, do(r, http.MethodDelete, "/admin/reviews/r1", "").Code)

	w := do(r, http.MethodDelete, "/admin/reviews/r2", "")
	assert.Equal(t, http.StatusNotFound, w.Code)

	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, model.ErrCodeReviewNotFound, body["error"].(map[string]interface{})["code"])
}

func TestCreateReview_Errors(t *testing.T) {
	r := newRouter()

	w := do(r, http.MethodPost, "/admin/reviews", `{"book_id":"x","user_name":"","rating":7}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "VALIDATION_ERROR")

	w = do(r, http.MethodPost, "/admin/reviews",
		`{"book_id":"0190a6c4-0000-7000-8000-000000000001","user_name":"Marta","rating":4}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), model.ErrCodeBookNotFound)
}

func TestListReviews(t *testing.T) {
	w := do(newRouter(), http.MethodGet, "/admin/reviews", "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"total":1`)
}
