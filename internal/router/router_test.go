package router_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strconv"
	"strings"
	"testing"

	"github.com/saulo-duarte/trivia-lambda/internal/container"
	"github.com/saulo-duarte/trivia-lambda/internal/router"
	"github.com/saulo-duarte/trivia-lambda/internal/testutil"
	"gorm.io/gorm"
)

func newServer(t *testing.T, db *gorm.DB) http.Handler {
	t.Helper()
	return router.New(container.NewWithDB(db).RouterConfig())
}

func request(t *testing.T, h http.Handler, method, target, body string) *httptest.ResponseRecorder {
	t.Helper()

	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, target, nil)
	} else {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	}
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func TestEmptyCategoryTable(t *testing.T) {
	h := newServer(t, testutil.NewDB(t))

	rec := request(t, h, http.MethodGet, "/categories", "")
	if rec.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want 404", rec.Code)
	}
	if got := strings.TrimSpace(rec.Body.String()); got != `{"success":false,"error":404,"message":"resource not found"}` {
		t.Errorf("unexpected body %s", got)
	}
}

func TestTriviaFlow(t *testing.T) {
	db := testutil.NewDB(t)
	testutil.SeedCategories(t, db)
	testutil.SeedQuestions(t, db, 12)
	h := newServer(t, db)

	t.Run("ListCategories", func(t *testing.T) {
		rec := request(t, h, http.MethodGet, "/categories", "")
		if rec.Code != http.StatusOK {
			t.Fatalf("status = %d, want 200", rec.Code)
		}
	})

	var createdID int
	t.Run("CreateQuestion", func(t *testing.T) {
		rec := request(t, h, http.MethodPost, "/questions", `{"question":"who","answer":"me","difficulty":"4","category":"5"}`)
		if rec.Code != http.StatusOK {
			t.Fatalf("status = %d, want 200", rec.Code)
		}
		var body struct {
			Success bool `json:"success"`
			Created int  `json:"created"`
		}
		if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
			t.Fatalf("invalid JSON: %v", err)
		}
		if !body.Success || body.Created == 0 {
			t.Fatalf("unexpected body %s", rec.Body.String())
		}
		createdID = body.Created
	})

	t.Run("CreatedQuestionIsListed", func(t *testing.T) {
		rec := request(t, h, http.MethodGet, "/questions?page=2", "")
		if rec.Code != http.StatusOK {
			t.Fatalf("status = %d, want 200", rec.Code)
		}
		if !containsID(t, rec, createdID) {
			t.Errorf("question %d not listed on page 2", createdID)
		}
	})

	t.Run("CategoryFilterCoercesID", func(t *testing.T) {
		rec := request(t, h, http.MethodGet, "/categories/5/questions", "")
		if rec.Code != http.StatusOK {
			t.Fatalf("status = %d, want 200", rec.Code)
		}
		var body struct {
			Questions []struct {
				ID       int    `json:"id"`
				Category string `json:"category"`
			} `json:"questions"`
			TotalQuestions  int `json:"total_questions"`
			CurrentCategory int `json:"current_category"`
		}
		if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
			t.Fatalf("invalid JSON: %v", err)
		}
		if body.CurrentCategory != 5 || body.TotalQuestions != 3 || len(body.Questions) != 3 {
			t.Fatalf("unexpected body %s", rec.Body.String())
		}
		for _, q := range body.Questions {
			if q.Category != "5" {
				t.Errorf("question %d has category %q", q.ID, q.Category)
			}
		}
	})

	t.Run("EmptyCategoryIsNotAnError", func(t *testing.T) {
		rec := request(t, h, http.MethodGet, "/categories/20000/questions", "")
		if rec.Code != http.StatusOK {
			t.Fatalf("status = %d, want 200", rec.Code)
		}
	})

	t.Run("DeleteQuestion", func(t *testing.T) {
		rec := request(t, h, http.MethodDelete, "/questions/"+strconv.Itoa(createdID), "")
		if rec.Code != http.StatusOK {
			t.Fatalf("status = %d, want 200", rec.Code)
		}
		var body struct {
			Deleted int `json:"deleted"`
		}
		if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil || body.Deleted != createdID {
			t.Fatalf("unexpected body %s", rec.Body.String())
		}

		rec = request(t, h, http.MethodGet, "/questions?page=2", "")
		if containsID(t, rec, createdID) {
			t.Errorf("deleted question %d still listed", createdID)
		}

		rec = request(t, h, http.MethodDelete, "/questions/"+strconv.Itoa(createdID), "")
		if rec.Code != http.StatusNotFound {
			t.Errorf("second delete status = %d, want 404", rec.Code)
		}
	})

	t.Run("SearchWithoutMatches", func(t *testing.T) {
		rec := request(t, h, http.MethodPost, "/questions", `{"searchTerm":"zzzznomatch"}`)
		if rec.Code != http.StatusOK || !strings.Contains(rec.Body.String(), `"questions":[]`) {
			t.Errorf("unexpected response %d %s", rec.Code, rec.Body.String())
		}
	})

	t.Run("Quiz", func(t *testing.T) {
		rec := request(t, h, http.MethodPost, "/quizzes", `{"previous_questions":[4,6],"quiz_category":{"id":5}}`)
		if rec.Code != http.StatusOK {
			t.Fatalf("status = %d, want 200", rec.Code)
		}
		var body struct {
			Question *struct {
				ID       int    `json:"id"`
				Category string `json:"category"`
			} `json:"question"`
		}
		if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil || body.Question == nil {
			t.Fatalf("unexpected body %s", rec.Body.String())
		}
		if body.Question.ID == 4 || body.Question.ID == 6 || body.Question.Category != "5" {
			t.Errorf("unexpected question %+v", *body.Question)
		}
	})
}

func TestRoutingErrors(t *testing.T) {
	h := newServer(t, testutil.NewDB(t))

	cases := []struct {
		name    string
		method  string
		target  string
		status  int
		message string
	}{
		{"PostToQuestionID", http.MethodPost, "/questions/455", http.StatusMethodNotAllowed, "method not allowed"},
		{"PostToCategoryQuestions", http.MethodPost, "/categories/20000/questions", http.StatusMethodNotAllowed, "method not allowed"},
		{"GetQuizzes", http.MethodGet, "/quizzes", http.StatusMethodNotAllowed, "method not allowed"},
		{"UnknownRoute", http.MethodGet, "/nope", http.StatusNotFound, "resource not found"},
		{"NonIntegerQuestionID", http.MethodDelete, "/questions/abc", http.StatusNotFound, "resource not found"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			rec := request(t, h, tc.method, tc.target, `{}`)
			if rec.Code != tc.status {
				t.Fatalf("status = %d, want %d", rec.Code, tc.status)
			}
			var body struct {
				Success bool   `json:"success"`
				Error   int    `json:"error"`
				Message string `json:"message"`
			}
			if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
				t.Fatalf("invalid JSON %q: %v", rec.Body.String(), err)
			}
			if body.Success || body.Error != tc.status || body.Message != tc.message {
				t.Errorf("unexpected body %+v", body)
			}
		})
	}
}

func TestCORS(t *testing.T) {
	h := newServer(t, testutil.NewDB(t))

	t.Run("Preflight", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodOptions, "/questions/1", nil)
		req.Header.Set("Origin", "http://localhost:3000")
		req.Header.Set("Access-Control-Request-Method", http.MethodDelete)
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, req)

		if got := rec.Header().Get("Access-Control-Allow-Origin"); got != "*" {
			t.Errorf("Access-Control-Allow-Origin = %q, want *", got)
		}
		if got := rec.Header().Get("Access-Control-Allow-Methods"); !strings.Contains(got, http.MethodDelete) {
			t.Errorf("Access-Control-Allow-Methods = %q", got)
		}
	})

	t.Run("SimpleRequest", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/categories", nil)
		req.Header.Set("Origin", "http://localhost:3000")
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, req)

		if got := rec.Header().Get("Access-Control-Allow-Origin"); got != "*" {
			t.Errorf("Access-Control-Allow-Origin = %q, want *", got)
		}
	})
}

func TestHealth(t *testing.T) {
	h := newServer(t, testutil.NewDB(t))

	rec := request(t, h, http.MethodGet, "/health", "")
	if rec.Code != http.StatusOK || !strings.Contains(rec.Body.String(), `"ok"`) {
		t.Errorf("unexpected health response %d %s", rec.Code, rec.Body.String())
	}
	if rec.Header().Get("X-Request-Id") == "" {
		t.Error("expected X-Request-Id header")
	}
}

func TestSwaggerDoc(t *testing.T) {
	h := newServer(t, testutil.NewDB(t))

	rec := request(t, h, http.MethodGet, "/swagger/doc.json", "")
	if rec.Code != http.StatusOK || !strings.Contains(rec.Body.String(), "/quizzes") {
		t.Errorf("unexpected swagger response %d", rec.Code)
	}
}

func containsID(t *testing.T, rec *httptest.ResponseRecorder, id int) bool {
	t.Helper()
	var body struct {
		Questions []struct {
			ID int `json:"id"`
		} `json:"questions"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("invalid JSON: %v", err)
	}
	for _, q := range body.Questions {
		if q.ID == id {
			return true
		}
	}
	return false
}
