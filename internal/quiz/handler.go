package quiz

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/saulo-duarte/trivia-lambda/internal/apperror"
	"github.com/saulo-duarte/trivia-lambda/internal/config"
)

type Handler struct {
	service  QuizService
	validate *validator.Validate
}

func NewHandler(s QuizService) *Handler {
	return &Handler{
		service:  s,
		validate: validator.New(),
	}
}

// NextQuestion godoc
// @Summary  Draw a random question that has not been asked yet
// @Tags     quizzes
// @Accept   json
// @Produce  json
// @Param    body body NextQuestionRequest true "quiz category and asked ids"
// @Success  200 {object} NextQuestionResponse
// @Failure  422 {object} apperror.Body
// @Router   /quizzes [post]
func (h *Handler) NextQuestion(w http.ResponseWriter, r *http.Request) {
	var req NextQuestionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		apperror.Respond(w, r, fmt.Errorf("%w: decode quiz body: %v", apperror.ErrValidation, err), http.StatusUnprocessableEntity)
		return
	}

	if err := h.validate.Struct(req); err != nil {
		apperror.Respond(w, r, fmt.Errorf("%w: %v", apperror.ErrValidation, err), http.StatusUnprocessableEntity)
		return
	}

	response, err := h.service.NextQuestion(r.Context(), req)
	if err != nil {
		apperror.Respond(w, r, err, http.StatusUnprocessableEntity)
		return
	}

	config.JSON(w, http.StatusOK, response)
}
