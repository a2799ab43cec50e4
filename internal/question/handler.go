package question

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/saulo-duarte/trivia-lambda/internal/apperror"
	"github.com/saulo-duarte/trivia-lambda/internal/config"
	"github.com/saulo-duarte/trivia-lambda/internal/pagination"
)

type Handler struct {
	service QuestionService
}

func NewHandler(s QuestionService) *Handler {
	return &Handler{service: s}
}

// List godoc
// @Summary  List questions, ten per page
// @Tags     questions
// @Produce  json
// @Param    page query int false "1-based page number"
// @Success  200 {object} ListQuestionsResponse
// @Failure  404 {object} apperror.Body
// @Router   /questions [get]
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	page := pagination.ParsePage(r.URL.Query().Get("page"))

	response, err := h.service.List(r.Context(), page)
	if err != nil {
		apperror.Respond(w, r, err, http.StatusNotFound)
		return
	}

	config.JSON(w, http.StatusOK, response)
}

// Delete godoc
// @Summary  Delete a question
// @Tags     questions
// @Produce  json
// @Param    id path int true "question id"
// @Success  200 {object} DeleteQuestionResponse
// @Failure  404 {object} apperror.Body
// @Failure  422 {object} apperror.Body
// @Router   /questions/{id} [delete]
func (h *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		config.WithContext(r.Context()).WithError(err).Warn("Question id out of range")
		apperror.NotFound(w, r)
		return
	}

	response, err := h.service.Delete(r.Context(), id)
	if err != nil {
		apperror.Respond(w, r, err, http.StatusUnprocessableEntity)
		return
	}

	config.JSON(w, http.StatusOK, response)
}

// CreateOrSearch godoc
// @Summary  Create a question, or search when searchTerm is set
// @Tags     questions
// @Accept   json
// @Produce  json
// @Param    page query int false "page of search results"
// @Param    body body QuestionBody true "question fields or searchTerm"
// @Success  200 {object} CreateQuestionResponse
// @Success  200 {object} SearchQuestionsResponse
// @Failure  422 {object} apperror.Body
// @Router   /questions [post]
func (h *Handler) CreateOrSearch(w http.ResponseWriter, r *http.Request) {
	var body QuestionBody
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		apperror.Respond(w, r, fmt.Errorf("%w: decode question body: %v", apperror.ErrValidation, err), http.StatusUnprocessableEntity)
		return
	}

	if body.SearchTerm != nil {
		page := pagination.ParsePage(r.URL.Query().Get("page"))
		response, err := h.service.Search(r.Context(), *body.SearchTerm, page)
		if err != nil {
			apperror.Respond(w, r, err, http.StatusUnprocessableEntity)
			return
		}
		config.JSON(w, http.StatusOK, response)
		return
	}

	response, err := h.service.Create(r.Context(), body.ToCreateDTO())
	if err != nil {
		apperror.Respond(w, r, err, http.StatusUnprocessableEntity)
		return
	}

	config.JSON(w, http.StatusOK, response)
}

// ListByCategory godoc
// @Summary  List every question of a category
// @Tags     categories
// @Produce  json
// @Param    categoryId path int true "category id"
// @Success  200 {object} CategoryQuestionsResponse
// @Failure  404 {object} apperror.Body
// @Router   /categories/{categoryId}/questions [get]
func (h *Handler) ListByCategory(w http.ResponseWriter, r *http.Request) {
	categoryID, err := strconv.Atoi(chi.URLParam(r, "categoryId"))
	if err != nil {
		config.WithContext(r.Context()).WithError(err).Warn("Category id out of range")
		apperror.NotFound(w, r)
		return
	}

	response, err := h.service.ListByCategory(r.Context(), categoryID)
	if err != nil {
		apperror.Respond(w, r, err, http.StatusNotFound)
		return
	}

	config.JSON(w, http.StatusOK, response)
}
