package question

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/saulo-duarte/trivia-lambda/internal/apperror"
	"github.com/saulo-duarte/trivia-lambda/internal/config"
	"gorm.io/gorm"
)

type QuestionRepository interface {
	Create(ctx context.Context, q *Question) error
	GetByID(ctx context.Context, id int) (*Question, error)
	Delete(ctx context.Context, id int) error
	ListAll(ctx context.Context) ([]Question, error)
	Count(ctx context.Context) (int64, error)
	Search(ctx context.Context, term string) ([]Question, error)
	ListByCategory(ctx context.Context, category string) ([]Question, error)
}

type questionRepository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) QuestionRepository {
	return &questionRepository{db: db}
}

func storageError(op string, err error) error {
	return fmt.Errorf("%w: %s: %v", apperror.ErrStorage, op, err)
}

func (r *questionRepository) Create(ctx context.Context, q *Question) error {
	if err := r.db.WithContext(ctx).Create(q).Error; err != nil {
		return storageError("create question", err)
	}
	return nil
}

func (r *questionRepository) GetByID(ctx context.Context, id int) (*Question, error) {
	var q Question
	if err := r.db.WithContext(ctx).First(&q, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrQuestionNotFound
		}
		return nil, storageError("get question", err)
	}
	return &q, nil
}

func (r *questionRepository) Delete(ctx context.Context, id int) error {
	result := r.db.WithContext(ctx).Delete(&Question{}, "id = ?", id)
	if result.Error != nil {
		return storageError("delete question", result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrQuestionNotFound
	}
	return nil
}

func (r *questionRepository) ListAll(ctx context.Context) ([]Question, error) {
	var questions []Question
	if err := r.db.WithContext(ctx).Order("id ASC").Find(&questions).Error; err != nil {
		return nil, storageError("list questions", err)
	}
	return questions, nil
}

func (r *questionRepository) Count(ctx context.Context) (int64, error) {
	var total int64
	if err := r.db.WithContext(ctx).Model(&Question{}).Count(&total).Error; err != nil {
		return 0, storageError("count questions", err)
	}
	return total, nil
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// searchCondition builds the WHERE clause and argument for a literal,
// case-insensitive substring match. SQLite's LOWER only folds ASCII, so
// postgres gets ILIKE.
func searchCondition(dialect, term string) (string, string) {
	pattern := "%" + likeEscaper.Replace(term) + "%"
	if dialect == config.DriverPostgres {
		return `question ILIKE ? ESCAPE '\'`, pattern
	}
	return `LOWER(question) LIKE ? ESCAPE '\'`, strings.ToLower(pattern)
}

// Search matches term as a case-insensitive literal substring of the
// question text.
func (r *questionRepository) Search(ctx context.Context, term string) ([]Question, error) {
	clause, pattern := searchCondition(r.db.Dialector.Name(), term)

	var questions []Question
	if err := r.db.WithContext(ctx).
		Where(clause, pattern).
		Order("id ASC").
		Find(&questions).Error; err != nil {
		return nil, storageError("search questions", err)
	}
	return questions, nil
}

func (r *questionRepository) ListByCategory(ctx context.Context, category string) ([]Question, error) {
	var questions []Question
	if err := r.db.WithContext(ctx).
		Where("category = ?", category).
		Order("id ASC").
		Find(&questions).Error; err != nil {
		return nil, storageError("list questions by category", err)
	}
	return questions, nil
}
