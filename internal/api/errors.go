package api

import (
	"errors"
	"fmt"
)

// Common API errors that can be checked with errors.Is.
var (
	// ErrUnauthorized indicates the API key is invalid or expired.
	ErrUnauthorized = errors.New("invalid or expired API key")
	// ErrNotFound indicates the requested resource does not exist.
	ErrNotFound = errors.New("resource not found")
	// ErrRateLimited indicates the rate limit has been exceeded.
	ErrRateLimited = errors.New("rate limit exceeded")
)

// APIError is the error envelope returned by the TorchPay API.
type APIError struct {
	// Status is the numeric status reported in the error body. For
	// synthetic errors it equals the HTTP status.
	Status int `json:"status"`
	// Code is a stable machine-readable error identifier.
	Code string `json:"code"`
	// Message is a human-readable description.
	Message string `json:"message"`
}

func (e *APIError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("API error %d [%s]: %s", e.Status, e.Code, e.Message)
	}
	return fmt.Sprintf("API error %d [%s]", e.Status, e.Code)
}

// Is implements errors.Is for sentinel error matching.
func (e *APIError) Is(target error) bool {
	switch e.Status {
	case 401:
		return target == ErrUnauthorized
	case 404:
		return target == ErrNotFound
	case 429:
		return target == ErrRateLimited
	}
	return false
}

// RequestError is returned from calls when ThrowOnError is set. It wraps the
// API error so errors.Is and errors.As keep working through it.
type RequestError struct {
	Err *APIError
}

func (e *RequestError) Error() string {
	return fmt.Sprintf("request failed: %s", e.Err.Error())
}

// Unwrap returns the wrapped API error.
func (e *RequestError) Unwrap() error {
	return e.Err
}
