package model

import (
	"errors"
	"fmt"
)

// Error codes
const (
	ErrCodeReviewNotFound = "REV001"
	ErrCodeBookNotFound   = "REV002"
)

var (
	ErrReviewNotFound = errors.New("review not found")
	ErrBookNotFound   = errors.New("reviewed book does not exist")
)

// ReviewError pairs a sentinel with a stable code for the API
type ReviewError struct {
	Code    string
	Message string
	Err     error
}

func (e *ReviewError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *ReviewError) Unwrap() error {
	return e.Err
}

func NewReviewNotFoundError() *ReviewError {
	return &ReviewError{
		Code:    ErrCodeReviewNotFound,
		Message: "Review not found",
		Err:     ErrReviewNotFound,
	}
}

func NewBookNotFoundError(bookID string) *ReviewError {
	return &ReviewError{
		Code:    ErrCodeBookNotFound,
		Message: fmt.Sprintf("Book %s not found", bookID),
		Err:     ErrBookNotFound,
	}
}
