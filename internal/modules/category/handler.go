package category

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/eduolivag5/backmarket-api/internal/apperr"
	"github.com/eduolivag5/backmarket-api/internal/web"
)

// Handler exposes category HTTP endpoints. Categories are read-only,
// so the handler talks to the repository directly.
type Handler struct{ repo Repository }

func NewHandler(repo Repository) *Handler { return &Handler{repo: repo} }

func (h *Handler) RegisterRoutes(r *chi.Mux) {
	r.Get("/categories", h.get)
}

func (h *Handler) get(w http.ResponseWriter, r *http.Request) {
	if raw := r.URL.Query().Get("id"); raw != "" {
		id, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			web.Fail(w, apperr.BadRequest("invalid category id"))
			return
		}
		c, err := h.repo.GetByID(r.Context(), id)
		if err != nil {
			web.Fail(w, err)
			return
		}
		web.OK(w, c)
		return
	}

	categories, err := h.repo.List(r.Context())
	if err != nil {
		web.Fail(w, err)
		return
	}
	web.OK(w, categories)
}
