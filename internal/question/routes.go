package question

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

func Routes(h *Handler) http.Handler {
	r := chi.NewRouter()

	r.Get("/", h.List)
	r.Post("/", h.CreateOrSearch)
	r.Delete("/{id:[0-9]+}", h.Delete)
	return r
}
