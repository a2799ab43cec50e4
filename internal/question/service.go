package question

import (
	"context"
	"fmt"
	"strconv"

	"github.com/saulo-duarte/trivia-lambda/internal/apperror"
	"github.com/saulo-duarte/trivia-lambda/internal/category"
	"github.com/saulo-duarte/trivia-lambda/internal/config"
	"github.com/saulo-duarte/trivia-lambda/internal/pagination"
	"github.com/sirupsen/logrus"
)

var (
	ErrQuestionNotFound = fmt.Errorf("question not found: %w", apperror.ErrNotFound)
	ErrPageEmpty        = fmt.Errorf("requested page has no questions: %w", apperror.ErrNotFound)
)

type QuestionService interface {
	List(ctx context.Context, page int) (*ListQuestionsResponse, error)
	Delete(ctx context.Context, id int) (*DeleteQuestionResponse, error)
	Create(ctx context.Context, dto CreateQuestionDTO) (*CreateQuestionResponse, error)
	Search(ctx context.Context, term string, page int) (*SearchQuestionsResponse, error)
	ListByCategory(ctx context.Context, categoryID int) (*CategoryQuestionsResponse, error)
}

type questionService struct {
	repo         QuestionRepository
	categoryRepo category.CategoryRepository
}

func NewService(repo QuestionRepository, categoryRepo category.CategoryRepository) QuestionService {
	return &questionService{
		repo:         repo,
		categoryRepo: categoryRepo,
	}
}

func (s *questionService) List(ctx context.Context, page int) (*ListQuestionsResponse, error) {
	log := config.WithContext(ctx).WithField("page", page)

	questions, err := s.repo.ListAll(ctx)
	if err != nil {
		log.WithError(err).Error("Failed to list questions")
		return nil, err
	}

	current := pagination.Paginate(questions, page)
	if len(current) == 0 {
		log.Info("Requested page is empty")
		return nil, ErrPageEmpty
	}

	total, err := s.repo.Count(ctx)
	if err != nil {
		log.WithError(err).Error("Failed to count questions")
		return nil, err
	}

	categories, err := s.categoryRepo.ListByID(ctx)
	if err != nil {
		log.WithError(err).Error("Failed to load category lookup")
		return nil, err
	}

	return &ListQuestionsResponse{
		Success:        true,
		Questions:      toResponses(current),
		TotalQuestions: total,
		Categories:     category.NewLookup(categories),
	}, nil
}

func (s *questionService) Delete(ctx context.Context, id int) (*DeleteQuestionResponse, error) {
	log := config.WithContext(ctx).WithField("question_id", id)
	log.Info("Deleting question...")

	if _, err := s.repo.GetByID(ctx, id); err != nil {
		log.WithError(err).Warn("Question lookup failed")
		return nil, err
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		log.WithError(err).Error("Failed to delete question")
		return nil, err
	}

	firstPage, _, err := s.firstPage(ctx, log)
	if err != nil {
		return nil, err
	}

	log.Info("Question deleted")
	return &DeleteQuestionResponse{
		Success:   true,
		Deleted:   id,
		Questions: firstPage,
	}, nil
}

func (s *questionService) Create(ctx context.Context, dto CreateQuestionDTO) (*CreateQuestionResponse, error) {
	log := config.WithContext(ctx)
	log.Info("Creating question...")

	q := Question{
		Question:   dto.Question,
		Answer:     dto.Answer,
		Category:   dto.Category,
		Difficulty: dto.Difficulty,
	}
	if err := s.repo.Create(ctx, &q); err != nil {
		log.WithError(err).Error("Failed to create question")
		return nil, err
	}

	firstPage, total, err := s.firstPage(ctx, log)
	if err != nil {
		return nil, err
	}

	log.WithField("question_id", q.ID).Info("Question created")
	return &CreateQuestionResponse{
		Success:        true,
		Created:        q.ID,
		Questions:      firstPage,
		TotalQuestions: total,
	}, nil
}

func (s *questionService) Search(ctx context.Context, term string, page int) (*SearchQuestionsResponse, error) {
	log := config.WithContext(ctx).WithFields(logrus.Fields{"search_term": term, "page": page})

	matches, err := s.repo.Search(ctx, term)
	if err != nil {
		log.WithError(err).Error("Failed to search questions")
		return nil, err
	}

	log.WithField("matches", len(matches)).Debug("Search completed")
	return &SearchQuestionsResponse{
		Success:   true,
		Questions: toResponses(pagination.Paginate(matches, page)),
	}, nil
}

func (s *questionService) ListByCategory(ctx context.Context, categoryID int) (*CategoryQuestionsResponse, error) {
	log := config.WithContext(ctx).WithField("category_id", categoryID)

	questions, err := s.repo.ListByCategory(ctx, strconv.Itoa(categoryID))
	if err != nil {
		log.WithError(err).Error("Failed to list questions by category")
		return nil, err
	}

	return &CategoryQuestionsResponse{
		Success:         true,
		Questions:       toResponses(questions),
		TotalQuestions:  len(questions),
		CurrentCategory: categoryID,
	}, nil
}

// firstPage reloads every question and returns page 1 plus the total count.
func (s *questionService) firstPage(ctx context.Context, log logrus.FieldLogger) ([]QuestionResponse, int64, error) {
	questions, err := s.repo.ListAll(ctx)
	if err != nil {
		log.WithError(err).Error("Failed to reload questions")
		return nil, 0, err
	}
	return toResponses(pagination.Paginate(questions, 1)), int64(len(questions)), nil
}
