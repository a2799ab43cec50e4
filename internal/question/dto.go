package question

import (
	"github.com/saulo-duarte/trivia-lambda/internal/category"
	util "github.com/saulo-duarte/trivia-lambda/internal/utils"
)

// QuestionBody is the POST /questions payload. A non-null searchTerm selects
// the search branch; otherwise the remaining fields create a question.
type QuestionBody struct {
	SearchTerm *string          `json:"searchTerm"`
	Question   util.LooseString `json:"question"`
	Answer     util.LooseString `json:"answer"`
	Category   util.LooseString `json:"category"`
	Difficulty util.LooseInt    `json:"difficulty"`
}

type CreateQuestionDTO struct {
	Question   string
	Answer     string
	Category   string
	Difficulty int
}

func (b QuestionBody) ToCreateDTO() CreateQuestionDTO {
	return CreateQuestionDTO{
		Question:   b.Question.String(),
		Answer:     b.Answer.String(),
		Category:   b.Category.String(),
		Difficulty: b.Difficulty.Int(),
	}
}

type QuestionResponse struct {
	ID         int    `json:"id"`
	Question   string `json:"question"`
	Answer     string `json:"answer"`
	Category   string `json:"category"`
	Difficulty int    `json:"difficulty"`
}

type ListQuestionsResponse struct {
	Success         bool               `json:"success"`
	Questions       []QuestionResponse `json:"questions"`
	TotalQuestions  int64              `json:"total_questions"`
	Categories      category.Lookup    `json:"categories"`
	CurrentCategory *int               `json:"currentCategory"`
}

type DeleteQuestionResponse struct {
	Success   bool               `json:"success"`
	Deleted   int                `json:"deleted"`
	Questions []QuestionResponse `json:"questions"`
}

type CreateQuestionResponse struct {
	Success        bool               `json:"success"`
	Created        int                `json:"created"`
	Questions      []QuestionResponse `json:"questions"`
	TotalQuestions int64              `json:"total_questions"`
}

type SearchQuestionsResponse struct {
	Success         bool               `json:"success"`
	Questions       []QuestionResponse `json:"questions"`
	CurrentCategory *int               `json:"current_category"`
}

type CategoryQuestionsResponse struct {
	Success         bool               `json:"success"`
	Questions       []QuestionResponse `json:"questions"`
	TotalQuestions  int                `json:"total_questions"`
	CurrentCategory int                `json:"current_category"`
}

func ToResponse(q *Question) QuestionResponse {
	return QuestionResponse{
		ID:         q.ID,
		Question:   q.Question,
		Answer:     q.Answer,
		Category:   q.Category,
		Difficulty: q.Difficulty,
	}
}

func toResponses(questions []Question) []QuestionResponse {
	responses := make([]QuestionResponse, 0, len(questions))
	for i := range questions {
		responses = append(responses, ToResponse(&questions[i]))
	}
	return responses
}
