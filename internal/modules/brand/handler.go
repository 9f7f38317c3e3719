package brand

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/eduolivag5/backmarket-api/internal/apperr"
	"github.com/eduolivag5/backmarket-api/internal/web"
)

// Handler exposes brand HTTP endpoints.
type Handler struct{ service Service }

func NewHandler(service Service) *Handler { return &Handler{service: service} }

func (h *Handler) RegisterRoutes(r *chi.Mux) {
	r.Route("/brands", func(r chi.Router) {
		r.Get("/", h.list)
		r.Post("/", h.create)
		r.Put("/", h.update)
		r.Delete("/", h.delete)
	})
}

func (h *Handler) list(w http.ResponseWriter, r *http.Request) {
	var category *int64
	if raw := r.URL.Query().Get("category"); raw != "" {
		v, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			web.Fail(w, apperr.BadRequest("invalid category"))
			return
		}
		category = &v
	}
	brands, err := h.service.List(r.Context(), category)
	if err != nil {
		web.Fail(w, err)
		return
	}
	web.OK(w, brands)
}

func (h *Handler) create(w http.ResponseWriter, r *http.Request) {
	var req SaveBrandRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		web.Fail(w, apperr.BadRequest("invalid request body"))
		return
	}
	b, err := h.service.Create(r.Context(), req)
	if err != nil {
		web.Fail(w, err)
		return
	}
	web.Created(w, "brand created", b)
}

func (h *Handler) update(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(r.URL.Query().Get("id"), 10, 64)
	if err != nil {
		web.Fail(w, apperr.BadRequest("invalid brand id"))
		return
	}
	var req SaveBrandRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		web.Fail(w, apperr.BadRequest("invalid request body"))
		return
	}
	if err := h.service.Update(r.Context(), id, req); err != nil {
		web.Fail(w, err)
		return
	}
	web.Confirm(w, "brand updated")
}

func (h *Handler) delete(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(r.URL.Query().Get("id"), 10, 64)
	if err != nil {
		web.Fail(w, apperr.BadRequest("invalid brand id"))
		return
	}
	if err := h.service.Delete(r.Context(), id); err != nil {
		web.Fail(w, err)
		return
	}
	web.Confirm(w, "brand deleted")
}
