// Package apperror defines the error kinds surfaced by the API and the fixed
// JSON bodies they map to.
package apperror

import (
	"errors"
	"net/http"

	"github.com/saulo-duarte/trivia-lambda/internal/config"
)

var (
	ErrNotFound   = errors.New("not found")
	ErrValidation = errors.New("validation failed")
	ErrStorage    = errors.New("storage unavailable")
)

type Body struct {
	Success bool   `json:"success"`
	Error   int    `json:"error"`
	Message string `json:"message"`
}

var messages = map[int]string{
	http.StatusBadRequest:          "Bad request",
	http.StatusNotFound:            "resource not found",
	http.StatusMethodNotAllowed:    "method not allowed",
	http.StatusUnprocessableEntity: "unprocessable",
	http.StatusInternalServerError: "Internal error, Wait a while and try again later",
}

func Message(status int) string {
	if msg, ok := messages[status]; ok {
		return msg
	}
	return http.StatusText(status)
}

// Write sends the fixed error body for status, with status as the transport code.
func Write(w http.ResponseWriter, status int) {
	config.JSON(w, status, Body{
		Success: false,
		Error:   status,
		Message: Message(status),
	})
}

// Status maps an error kind to its HTTP status. Storage and unclassified
// errors take the endpoint's fallback.
func Status(err error, fallback int) int {
	switch {
	case errors.Is(err, ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, ErrValidation):
		return http.StatusUnprocessableEntity
	default:
		return fallback
	}
}

func Respond(w http.ResponseWriter, r *http.Request, err error, fallback int) {
	status := Status(err, fallback)

	entry := config.WithContext(r.Context()).WithError(err).WithField("status", status)
	if errors.Is(err, ErrStorage) || status >= http.StatusInternalServerError {
		entry.Error("Request failed")
	} else {
		entry.Warn("Request rejected")
	}

	Write(w, status)
}

func NotFound(w http.ResponseWriter, r *http.Request) {
	Write(w, http.StatusNotFound)
}

func MethodNotAllowed(w http.ResponseWriter, r *http.Request) {
	Write(w, http.StatusMethodNotAllowed)
}
