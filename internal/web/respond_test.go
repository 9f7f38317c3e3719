package web

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/eduolivag5/backmarket-api/internal/apperr"
)

func decode(t *testing.T, rec *httptest.ResponseRecorder) Envelope {
	t.Helper()
	var env Envelope
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env))
	return env
}

func TestOK(t *testing.T) {
	rec := httptest.NewRecorder()
	OK(rec, []string{"a"})

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
	env := decode(t, rec)
	assert.False(t, env.Error)
	assert.Equal(t, "OK", env.Message)
	assert.Equal(t, []interface{}{"a"}, env.Data)
}

func TestConfirmHasNullData(t *testing.T) {
	rec := httptest.NewRecorder()
	Confirm(rec, "brand updated")

	env := decode(t, rec)
	assert.False(t, env.Error)
	assert.Equal(t, "brand updated", env.Message)
	assert.Nil(t, env.Data)
	// data must be present in the JSON, not omitted
	assert.Contains(t, rec.Body.String(), `"data":null`)
}

func TestCreated(t *testing.T) {
	rec := httptest.NewRecorder()
	Created(rec, "color created", map[string]int{"id": 7})

	assert.Equal(t, http.StatusCreated, rec.Code)
	env := decode(t, rec)
	assert.False(t, env.Error)
	assert.NotNil(t, env.Data)
}

func TestFailStatusMapping(t *testing.T) {
	cases := []struct {
		err     error
		status  int
		message string
	}{
		{apperr.NotFound("product not found"), http.StatusNotFound, "product not found"},
		{apperr.Conflict("duplicate"), http.StatusFailedDependency, "duplicate"},
		{apperr.BadRequest("missing id"), http.StatusBadRequest, "missing id"},
		{apperr.Internal(errors.New("pq: boom")), http.StatusInternalServerError, "internal server error"},
		{errors.New("pq: boom"), http.StatusInternalServerError, "internal server error"},
	}
	for _, tc := range cases {
		rec := httptest.NewRecorder()
		Fail(rec, tc.err)

		assert.Equal(t, tc.status, rec.Code)
		env := decode(t, rec)
		assert.True(t, env.Error)
		assert.Equal(t, tc.message, env.Message)
		assert.Nil(t, env.Data)
	}
}

func TestFailNeverLeaksInternalDetail(t *testing.T) {
	rec := httptest.NewRecorder()
	Fail(rec, errors.New("dial tcp 10.0.0.1:5432: connection refused"))

	assert.NotContains(t, rec.Body.String(), "10.0.0.1")
}
