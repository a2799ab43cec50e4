package quiz

import (
	"context"
	"fmt"

	"github.com/saulo-duarte/trivia-lambda/internal/apperror"
	"github.com/saulo-duarte/trivia-lambda/internal/question"
	"gorm.io/gorm"
)

type QuizRepository interface {
	// ListCandidates returns questions not in excludeIDs, restricted to
	// category unless it is empty.
	ListCandidates(ctx context.Context, excludeIDs []int, category string) ([]question.Question, error)
}

type quizRepository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) QuizRepository {
	return &quizRepository{db: db}
}

func (r *quizRepository) ListCandidates(ctx context.Context, excludeIDs []int, category string) ([]question.Question, error) {
	query := r.db.WithContext(ctx).Model(&question.Question{})

	// NOT IN with an empty list renders as NOT IN (NULL), which matches nothing.
	if len(excludeIDs) > 0 {
		query = query.Where("id NOT IN ?", excludeIDs)
	}
	if category != "" {
		query = query.Where("category = ?", category)
	}

	var candidates []question.Question
	if err := query.Order("id ASC").Find(&candidates).Error; err != nil {
		return nil, fmt.Errorf("%w: list quiz candidates: %v", apperror.ErrStorage, err)
	}
	return candidates, nil
}
