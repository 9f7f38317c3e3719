package product

import (
	"encoding/json"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/eduolivag5/backmarket-api/internal/apperr"
	"github.com/eduolivag5/backmarket-api/internal/web"
)

// Handler exposes product HTTP endpoints. Identifiers and filters
// arrive as query parameters, bodies as JSON.
type Handler struct{ service Service }

func NewHandler(service Service) *Handler { return &Handler{service: service} }

func (h *Handler) RegisterRoutes(r *chi.Mux) {
	r.Route("/products", func(r chi.Router) {
		r.Get("/", h.get)
		r.Post("/", h.create)
		r.Put("/", h.update)
		r.Delete("/", h.delete)
	})
}

func (h *Handler) get(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	if raw := q.Get("id"); raw != "" {
		id, err := uuid.Parse(raw)
		if err != nil {
			web.Fail(w, apperr.BadRequest("invalid product id"))
			return
		}
		p, err := h.service.Get(r.Context(), id)
		if err != nil {
			web.Fail(w, err)
			return
		}
		web.OK(w, p)
		return
	}

	var f Filter
	if raw := q.Get("category"); raw != "" {
		category, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			web.Fail(w, apperr.BadRequest("invalid category"))
			return
		}
		f.Category = &category
	}
	if raw := q.Get("tags"); raw != "" {
		for _, tag := range strings.Split(raw, ",") {
			if tag = strings.TrimSpace(tag); tag != "" {
				f.Tags = append(f.Tags, tag)
			}
		}
	}

	products, err := h.service.List(r.Context(), f)
	if err != nil {
		web.Fail(w, err)
		return
	}
	web.OK(w, products)
}

func (h *Handler) create(w http.ResponseWriter, r *http.Request) {
	var req SaveProductRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		web.Fail(w, apperr.BadRequest("invalid request body"))
		return
	}
	p, err := h.service.Create(r.Context(), req)
	if err != nil {
		web.Fail(w, err)
		return
	}
	web.Created(w, "product created", p)
}

func (h *Handler) update(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(r.URL.Query().Get("id"))
	if err != nil {
		web.Fail(w, apperr.BadRequest("invalid product id"))
		return
	}
	var req SaveProductRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		web.Fail(w, apperr.BadRequest("invalid request body"))
		return
	}
	if err := h.service.Update(r.Context(), id, req); err != nil {
		web.Fail(w, err)
		return
	}
	web.Confirm(w, "product updated")
}

func (h *Handler) delete(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(r.URL.Query().Get("id"))
	if err != nil {
		web.Fail(w, apperr.BadRequest("invalid product id"))
		return
	}
	if err := h.service.Delete(r.Context(), id); err != nil {
		web.Fail(w, err)
		return
	}
	web.Confirm(w, "product deleted")
}
