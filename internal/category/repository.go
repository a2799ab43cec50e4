package category

import (
	"context"
	"fmt"

	"github.com/saulo-duarte/trivia-lambda/internal/apperror"
	"gorm.io/gorm"
)

type CategoryRepository interface {
	ListByType(ctx context.Context) ([]Category, error)
	ListByID(ctx context.Context) ([]Category, error)
}

type categoryRepository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) CategoryRepository {
	return &categoryRepository{db: db}
}

func (r *categoryRepository) ListByType(ctx context.Context) ([]Category, error) {
	return r.list(ctx, "type ASC")
}

func (r *categoryRepository) ListByID(ctx context.Context) ([]Category, error) {
	return r.list(ctx, "id ASC")
}

func (r *categoryRepository) list(ctx context.Context, order string) ([]Category, error) {
	var categories []Category
	if err := r.db.WithContext(ctx).Order(order).Find(&categories).Error; err != nil {
		return nil, fmt.Errorf("%w: list categories: %v", apperror.ErrStorage, err)
	}
	return categories, nil
}
