package category

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

// Routes serves /categories. The per-category question listing is owned by
// the question package and passed in to keep both routes in one subtree.
func Routes(h *Handler, listQuestions http.HandlerFunc) http.Handler {
	r := chi.NewRouter()

	r.Get("/", h.List)
	r.Get("/{categoryId:[0-9]+}/questions", listQuestions)
	return r
}
