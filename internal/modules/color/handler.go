package color

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/eduolivag5/backmarket-api/internal/apperr"
	"github.com/eduolivag5/backmarket-api/internal/web"
)

// Handler exposes color HTTP endpoints.
type Handler struct{ service Service }

func NewHandler(service Service) *Handler { return &Handler{service: service} }

func (h *Handler) RegisterRoutes(r *chi.Mux) {
	r.Route("/colors", func(r chi.Router) {
		r.Get("/", h.get)
		r.Post("/", h.create)
	})
}

func (h *Handler) get(w http.ResponseWriter, r *http.Request) {
	if raw := r.URL.Query().Get("id"); raw != "" {
		id, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			web.Fail(w, apperr.BadRequest("invalid color id"))
			return
		}
		c, err := h.service.Get(r.Context(), id)
		if err != nil {
			web.Fail(w, err)
			return
		}
		web.OK(w, c)
		return
	}

	colors, err := h.service.List(r.Context())
	if err != nil {
		web.Fail(w, err)
		return
	}
	web.OK(w, colors)
}

func (h *Handler) create(w http.ResponseWriter, r *http.Request) {
	var req CreateColorRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		web.Fail(w, apperr.BadRequest("invalid request body"))
		return
	}
	c, err := h.service.Create(r.Context(), req)
	if err != nil {
		web.Fail(w, err)
		return
	}
	web.Created(w, "color created", c)
}
