package question

import (
	"github.com/saulo-duarte/trivia-lambda/internal/category"
	"gorm.io/gorm"
)

type QuestionContainer struct {
	Handler *Handler
	Service QuestionService
}

func NewQuestionContainer(db *gorm.DB, categoryRepo category.CategoryRepository) *QuestionContainer {
	repo := NewRepository(db)
	service := NewService(repo, categoryRepo)
	handler := NewHandler(service)

	return &QuestionContainer{
		Handler: handler,
		Service: service,
	}
}
