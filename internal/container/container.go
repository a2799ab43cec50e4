package container

import (
	"context"
	"log"

	"github.com/saulo-duarte/trivia-lambda/internal/category"
	"github.com/saulo-duarte/trivia-lambda/internal/config"
	"github.com/saulo-duarte/trivia-lambda/internal/health"
	"github.com/saulo-duarte/trivia-lambda/internal/question"
	"github.com/saulo-duarte/trivia-lambda/internal/quiz"
	"github.com/saulo-duarte/trivia-lambda/internal/router"
	"gorm.io/gorm"
)

type Container struct {
	Settings          config.Settings
	CategoryContainer *category.CategoryContainer
	QuestionContainer *question.QuestionContainer
	QuizContainer     *quiz.QuizContainer
	HealthHandler     *health.Handler
}

func New() *Container {
	settings := config.Init()

	if err := config.Connect(context.Background(), settings.DatabaseDriver, settings.DatabaseDSN); err != nil {
		log.Fatalf("failed to connect to DB: %v", err)
	}

	c := NewWithDB(config.DB)
	c.Settings = settings
	return c
}

// NewWithDB wires every feature against an already opened database.
func NewWithDB(db *gorm.DB) *Container {
	categoryContainer := category.NewCategoryContainer(db)
	questionContainer := question.NewQuestionContainer(db, categoryContainer.Repo)
	quizContainer := quiz.NewQuizContainer(db)

	return &Container{
		CategoryContainer: categoryContainer,
		QuestionContainer: questionContainer,
		QuizContainer:     quizContainer,
		HealthHandler:     health.NewHandler(db),
	}
}

func (c *Container) RouterConfig() router.RouterConfig {
	return router.RouterConfig{
		CategoryHandler: c.CategoryContainer.Handler,
		QuestionHandler: c.QuestionContainer.Handler,
		QuizHandler:     c.QuizContainer.Handler,
		HealthHandler:   c.HealthHandler,
	}
}
