package status

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/eduolivag5/backmarket-api/internal/apperr"
	"github.com/eduolivag5/backmarket-api/internal/web"
)

type fakeRepo struct {
	byID map[int64]*Status
	all  []*Status
}

func (f *fakeRepo) List(context.Context) ([]*Status, error) { return f.all, nil }

func (f *fakeRepo) GetByID(_ context.Context, id int64) (*Status, error) {
	if s, ok := f.byID[id]; ok {
		return s, nil
	}
	return nil, apperr.NotFound("phone status not found")
}

func newRouter(phone, battery Repository) *chi.Mux {
	router := chi.NewRouter()
	NewHandler(phone, battery).RegisterRoutes(router)
	return router
}

func TestBothTablesRouted(t *testing.T) {
	phone := &fakeRepo{all: []*Status{{ID: 1, State: "nuevo"}}}
	battery := &fakeRepo{all: []*Status{{ID: 1, State: "excelente"}, {ID: 2, State: "buena"}}}
	router := newRouter(phone, battery)

	for path, want := range map[string]int{"/phone_status": 1, "/battery_status": 2} {
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, path, nil))

		assert.Equal(t, http.StatusOK, rec.Code)
		var env web.Envelope
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env))
		assert.Len(t, env.Data, want)
	}
}

func TestGetByIDSingleEntity(t *testing.T) {
	phone := &fakeRepo{byID: map[int64]*Status{3: {ID: 3, State: "usado", Description: "signos de uso"}}}
	router := newRouter(phone, &fakeRepo{})

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/phone_status?id=3", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	var env web.Envelope
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env))
	data := env.Data.(map[string]interface{})
	assert.Equal(t, "usado", data["state"])
}

func TestGetByIDNotFound(t *testing.T) {
	router := newRouter(&fakeRepo{}, &fakeRepo{})

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/phone_status?id=77", nil))

	assert.Equal(t, http.StatusNotFound, rec.Code)
}
