package brand

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/eduolivag5/backmarket-api/internal/apperr"
	"github.com/eduolivag5/backmarket-api/internal/web"
)

type stubService struct {
	brands []*Brand
	err    error

	gotCategory *int64
}

func (s *stubService) List(_ context.Context, category *int64) ([]*Brand, error) {
	s.gotCategory = category
	return s.brands, s.err
}

func (s *stubService) Create(context.Context, SaveBrandRequest) (*Brand, error) {
	return &Brand{ID: 3, Name: "Apple"}, s.err
}

func (s *stubService) Update(context.Context, int64, SaveBrandRequest) error { return s.err }

func (s *stubService) Delete(context.Context, int64) error { return s.err }

func serve(t *testing.T, svc Service, method, target, body string) *httptest.ResponseRecorder {
	t.Helper()
	router := chi.NewRouter()
	NewHandler(svc).RegisterRoutes(router)

	req := httptest.NewRequest(method, target, strings.NewReader(body))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func TestListByCategory(t *testing.T) {
	svc := &stubService{brands: []*Brand{{ID: 1, Name: "Apple", Category: 2}}}

	rec := serve(t, svc, http.MethodGet, "/brands?category=2", "")

	assert.Equal(t, http.StatusOK, rec.Code)
	require.NotNil(t, svc.gotCategory)
	assert.Equal(t, int64(2), *svc.gotCategory)
}

func TestListEmptyCategoryIsListNot404(t *testing.T) {
	svc := &stubService{brands: []*Brand{}}

	rec := serve(t, svc, http.MethodGet, "/brands?category=99", "")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"data":[]`)
}

func TestCreateReturnsGeneratedID(t *testing.T) {
	rec := serve(t, &stubService{}, http.MethodPost, "/brands", `{"name":"Apple"}`)

	assert.Equal(t, http.StatusCreated, rec.Code)
	var env web.Envelope
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env))
	data := env.Data.(map[string]interface{})
	assert.Equal(t, float64(3), data["id"])
}

func TestUpdateMissingBrand(t *testing.T) {
	svc := &stubService{err: apperr.NotFound("brand not found")}

	rec := serve(t, svc, http.MethodPut, "/brands?id=42", `{"name":"Nokia"}`)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestDeleteRequiresNumericID(t *testing.T) {
	rec := serve(t, &stubService{}, http.MethodDelete, "/brands?id=abc", "")

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
