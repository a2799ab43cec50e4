package quiz

import (
	"context"
	"math/rand/v2"
	"strconv"

	"github.com/saulo-duarte/trivia-lambda/internal/config"
	"github.com/saulo-duarte/trivia-lambda/internal/question"
	"github.com/sirupsen/logrus"
)

type QuizService interface {
	NextQuestion(ctx context.Context, req NextQuestionRequest) (*NextQuestionResponse, error)
}

type quizService struct {
	repo QuizRepository
	pick func(n int) int
}

func NewService(repo QuizRepository) QuizService {
	return NewServiceWithPicker(repo, rand.IntN)
}

// NewServiceWithPicker lets callers control the random choice; pick must
// return a value in [0, n).
func NewServiceWithPicker(repo QuizRepository, pick func(n int) int) QuizService {
	return &quizService{
		repo: repo,
		pick: pick,
	}
}

func (s *quizService) NextQuestion(ctx context.Context, req NextQuestionRequest) (*NextQuestionResponse, error) {
	categoryID := AnyCategory
	if req.QuizCategory != nil {
		categoryID = req.QuizCategory.ID.Int()
	}

	log := config.WithContext(ctx).WithFields(logrus.Fields{
		"category_id": categoryID,
		"asked":       len(req.PreviousQuestions),
	})

	category := ""
	if categoryID != AnyCategory {
		category = strconv.Itoa(categoryID)
	}

	candidates, err := s.repo.ListCandidates(ctx, req.PreviousQuestions, category)
	if err != nil {
		log.WithError(err).Error("Failed to load quiz candidates")
		return nil, err
	}

	if len(candidates) == 0 {
		log.Info("No questions left for quiz")
		return &NextQuestionResponse{Success: true}, nil
	}

	chosen := question.ToResponse(&candidates[s.pick(len(candidates))])
	log.WithField("question_id", chosen.ID).Debug("Quiz question selected")

	return &NextQuestionResponse{
		Success:  true,
		Question: &chosen,
	}, nil
}
