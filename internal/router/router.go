package router

import (
	"github.com/go-chi/chi/v5"
	httpSwagger "github.com/swaggo/http-swagger"

	_ "github.com/saulo-duarte/trivia-lambda/docs"
	"github.com/saulo-duarte/trivia-lambda/internal/apperror"
	"github.com/saulo-duarte/trivia-lambda/internal/category"
	"github.com/saulo-duarte/trivia-lambda/internal/health"
	"github.com/saulo-duarte/trivia-lambda/internal/middlewares"
	"github.com/saulo-duarte/trivia-lambda/internal/question"
	"github.com/saulo-duarte/trivia-lambda/internal/quiz"
)

type RouterConfig struct {
	CategoryHandler *category.Handler
	QuestionHandler *question.Handler
	QuizHandler     *quiz.Handler
	HealthHandler   *health.Handler
}

// New returns the concrete mux so the Lambda adapter can wrap it.
func New(cfg RouterConfig) *chi.Mux {
	r := chi.NewRouter()

	r.Use(middlewares.RequestID)
	r.Use(middlewares.RequestLogger)
	r.Use(middlewares.Recoverer)
	r.Use(middlewares.CorsMiddleware)

	// Must be set before mounting so sub-routers inherit them.
	r.NotFound(apperror.NotFound)
	r.MethodNotAllowed(apperror.MethodNotAllowed)

	r.Get("/health", cfg.HealthHandler.Check)
	r.Get("/swagger/*", httpSwagger.WrapHandler)

	r.Mount("/categories", category.Routes(cfg.CategoryHandler, cfg.QuestionHandler.ListByCategory))
	r.Mount("/questions", question.Routes(cfg.QuestionHandler))
	r.Mount("/quizzes", quiz.Routes(cfg.QuizHandler))

	return r
}
