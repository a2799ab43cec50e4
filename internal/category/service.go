package category

import (
	"context"
	"fmt"

	"github.com/saulo-duarte/trivia-lambda/internal/apperror"
	"github.com/saulo-duarte/trivia-lambda/internal/config"
)

var ErrNoCategories = fmt.Errorf("no categories available: %w", apperror.ErrNotFound)

type CategoryService interface {
	List(ctx context.Context) (*ListCategoriesResponse, error)
}

type categoryService struct {
	repo CategoryRepository
}

func NewService(repo CategoryRepository) CategoryService {
	return &categoryService{repo: repo}
}

func (s *categoryService) List(ctx context.Context) (*ListCategoriesResponse, error) {
	log := config.WithContext(ctx)

	categories, err := s.repo.ListByType(ctx)
	if err != nil {
		log.WithError(err).Error("Failed to list categories")
		return nil, err
	}
	if len(categories) == 0 {
		log.Warn("Category table is empty")
		return nil, ErrNoCategories
	}

	return &ListCategoriesResponse{
		Success:    true,
		Categories: NewLookup(categories),
	}, nil
}
