package quiz

import (
	"github.com/saulo-duarte/trivia-lambda/internal/question"
	util "github.com/saulo-duarte/trivia-lambda/internal/utils"
)

// AnyCategory in quiz_category.id draws from every category.
const AnyCategory = 0

type QuizCategory struct {
	ID   util.LooseInt `json:"id"`
	Type string        `json:"type,omitempty"`
}

type NextQuestionRequest struct {
	QuizCategory      *QuizCategory `json:"quiz_category" validate:"required"`
	PreviousQuestions []int         `json:"previous_questions" validate:"required"`
}

// NextQuestionResponse carries a nil Question once every candidate has been asked.
type NextQuestionResponse struct {
	Success  bool                       `json:"success"`
	Question *question.QuestionResponse `json:"question"`
}
