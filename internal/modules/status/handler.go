package status

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/eduolivag5/backmarket-api/internal/apperr"
	"github.com/eduolivag5/backmarket-api/internal/web"
)

// Handler exposes the phone and battery status endpoints.
type Handler struct {
	phone   Repository
	battery Repository
}

func NewHandler(phone, battery Repository) *Handler {
	return &Handler{phone: phone, battery: battery}
}

func (h *Handler) RegisterRoutes(r *chi.Mux) {
	r.Get("/phone_status", h.serve(h.phone))
	r.Get("/battery_status", h.serve(h.battery))
}

func (h *Handler) serve(repo Repository) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if raw := r.URL.Query().Get("id"); raw != "" {
			id, err := strconv.ParseInt(raw, 10, 64)
			if err != nil {
				web.Fail(w, apperr.BadRequest("invalid status id"))
				return
			}
			s, err := repo.GetByID(r.Context(), id)
			if err != nil {
				web.Fail(w, err)
				return
			}
			web.OK(w, s)
			return
		}

		statuses, err := repo.List(r.Context())
		if err != nil {
			web.Fail(w, err)
			return
		}
		web.OK(w, statuses)
	}
}
