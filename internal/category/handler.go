package category

import (
	"net/http"

	"github.com/saulo-duarte/trivia-lambda/internal/apperror"
	"github.com/saulo-duarte/trivia-lambda/internal/config"
)

type Handler struct {
	service CategoryService
}

func NewHandler(service CategoryService) *Handler {
	return &Handler{service: service}
}

// List godoc
// @Summary  List categories
// @Tags     categories
// @Produce  json
// @Success  200 {object} ListCategoriesResponse
// @Failure  404 {object} apperror.Body
// @Router   /categories [get]
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	response, err := h.service.List(r.Context())
	if err != nil {
		apperror.Respond(w, r, err, http.StatusNotFound)
		return
	}

	config.JSON(w, http.StatusOK, response)
}
