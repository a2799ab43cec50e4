// Package testutil provides an in-memory SQLite database for package tests.
package testutil

import (
	"fmt"
	"testing"

	"github.com/google/uuid"
	"github.com/saulo-duarte/trivia-lambda/internal/category"
	"github.com/saulo-duarte/trivia-lambda/internal/config"
	"github.com/saulo-duarte/trivia-lambda/internal/question"
	"gorm.io/gorm"
)

// NewDB opens a private in-memory database with the trivia tables migrated.
func NewDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", uuid.NewString())
	db, err := config.Open(config.DriverSQLite, dsn)
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}

	if err := db.AutoMigrate(&category.Category{}, &question.Question{}); err != nil {
		t.Fatalf("failed to migrate test database: %v", err)
	}

	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			sqlDB.Close()
		}
	})
	return db
}

var defaultCategories = []string{"Science", "Art", "Geography", "History", "Entertainment", "Sports"}

// SeedCategories inserts the six standard categories with ids 1..6.
func SeedCategories(t *testing.T, db *gorm.DB) []category.Category {
	t.Helper()

	categories := make([]category.Category, 0, len(defaultCategories))
	for i, label := range defaultCategories {
		categories = append(categories, category.Category{ID: i + 1, Type: label})
	}
	if err := db.Create(&categories).Error; err != nil {
		t.Fatalf("failed to seed categories: %v", err)
	}
	return categories
}

// SeedQuestions inserts n questions; question i (1-based) gets category
// ((i-1) % 6) + 1 and the text "Question i?".
func SeedQuestions(t *testing.T, db *gorm.DB, n int) []question.Question {
	t.Helper()

	questions := make([]question.Question, 0, n)
	for i := 1; i <= n; i++ {
		questions = append(questions, question.Question{
			Question:   fmt.Sprintf("Question %d?", i),
			Answer:     fmt.Sprintf("Answer %d", i),
			Category:   fmt.Sprintf("%d", (i-1)%6+1),
			Difficulty: (i-1)%5 + 1,
		})
	}
	if n > 0 {
		if err := db.Create(&questions).Error; err != nil {
			t.Fatalf("failed to seed questions: %v", err)
		}
	}
	return questions
}
