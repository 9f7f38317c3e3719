package price

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/eduolivag5/backmarket-api/internal/apperr"
	"github.com/eduolivag5/backmarket-api/internal/web"
)

// Handler exposes price HTTP endpoints.
type Handler struct{ service Service }

func NewHandler(service Service) *Handler { return &Handler{service: service} }

func (h *Handler) RegisterRoutes(r *chi.Mux) {
	r.Route("/prices", func(r chi.Router) {
		r.Get("/", h.list)
		r.Post("/", h.create)
		r.Put("/", h.update)
		r.Delete("/", h.delete)
	})
}

// list returns all prices, or the prices of one product when the "id"
// query parameter carries a product id.
func (h *Handler) list(w http.ResponseWriter, r *http.Request) {
	var productID *uuid.UUID
	if raw := r.URL.Query().Get("id"); raw != "" {
		id, err := uuid.Parse(raw)
		if err != nil {
			web.Fail(w, apperr.BadRequest("invalid product id"))
			return
		}
		productID = &id
	}
	prices, err := h.service.List(r.Context(), productID)
	if err != nil {
		web.Fail(w, err)
		return
	}
	web.OK(w, prices)
}

func (h *Handler) create(w http.ResponseWriter, r *http.Request) {
	var req SavePriceRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		web.Fail(w, apperr.BadRequest("invalid request body"))
		return
	}
	p, err := h.service.Create(r.Context(), req)
	if err != nil {
		web.Fail(w, err)
		return
	}
	web.Created(w, "price created", p)
}

func (h *Handler) update(w http.ResponseWriter, r *http.Request) {
	var req SavePriceRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		web.Fail(w, apperr.BadRequest("invalid request body"))
		return
	}
	if err := h.service.Update(r.Context(), req); err != nil {
		web.Fail(w, err)
		return
	}
	web.Confirm(w, "price updated")
}

func (h *Handler) delete(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	var id, productID *uuid.UUID

	if raw := q.Get("id"); raw != "" {
		v, err := uuid.Parse(raw)
		if err != nil {
			web.Fail(w, apperr.BadRequest("invalid price id"))
			return
		}
		id = &v
	}
	if raw := q.Get("id_product"); raw != "" {
		v, err := uuid.Parse(raw)
		if err != nil {
			web.Fail(w, apperr.BadRequest("invalid product id"))
			return
		}
		productID = &v
	}

	if err := h.service.Delete(r.Context(), id, productID); err != nil {
		web.Fail(w, err)
		return
	}
	web.Confirm(w, "price deleted")
}
