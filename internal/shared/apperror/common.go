package apperror

import (
	"fmt"
	"net/http"
)

var (
	// ErrRouteNotFound is raised for any request no route matched.
	ErrRouteNotFound = New(
		CodeNotFound,
		"Not Found",
		http.StatusNotFound,
	)

	ErrInvalidInput = New(
		CodeInvalidInput,
		"The provided input is invalid",
		http.StatusBadRequest,
	)

	ErrTooManyRequests = New(
		CodeTooManyRequests,
		"Too many requests",
		http.StatusTooManyRequests,
	)

	ErrInternal = New(
		CodeInternalError,
		"An unexpected error occurred",
		http.StatusInternalServerError,
	)
)

// NotFound builds a 404 with a custom message.
func NotFound(message string) *AppError {
	return New(CodeNotFound, message, http.StatusNotFound)
}

// BadRequest builds a 400 with a custom message.
func BadRequest(message string) *AppError {
	return New(CodeInvalidInput, message, http.StatusBadRequest)
}

func RequiredField(field string) *AppError {
	return BadRequest(fmt.Sprintf("%s is required", field))
}

func InvalidField(field string) *AppError {
	return BadRequest(fmt.Sprintf("%s is invalid", field))
}
