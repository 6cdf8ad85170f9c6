package model

import (
	"fmt"
	"strings"
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/go-ozzo/ozzo-validation/v4/is"
)

const (
	MinRating = 1
	MaxRating = 5

	MaxUserNameLength = 100
	MaxCommentLength  = 2000
)

// Review of a book. Displayed read-only, only the admin deletes.
type Review struct {
	ID       string    `json:"id"`
	BookID   string    `json:"book_id"`
	UserName string    `json:"user_name"`
	Rating   int       `json:"rating"`
	Comment  string    `json:"comment"`
	Date     time.Time `json:"date"`
}

// CheckStored rejects rows outside the rating range
func (r *Review) CheckStored() error {
	if r.Rating < MinRating || r.Rating > MaxRating {
		return fmt.Errorf("review %s has rating %d", r.ID, r.Rating)
	}
	return nil
}

// CreateReviewRequest - POST /admin/reviews
type CreateReviewRequest struct {
	BookID   string `json:"book_id"`
	UserName string `json:"user_name"`
	Rating   int    `json:"rating"`
	Comment  string `json:"comment"`
}

func (r *CreateReviewRequest) Normalize() {
	r.BookID = strings.TrimSpace(r.BookID)
	r.UserName = strings.TrimSpace(r.UserName)
	r.Comment = strings.TrimSpace(r.Comment)
}

func (r CreateReviewRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.BookID, validation.Required, is.UUID),
		validation.Field(&r.UserName, validation.Required, validation.Length(1, MaxUserNameLength)),
		validation.Field(&r.Rating, validation.Required, validation.Min(MinRating), validation.Max(MaxRating)),
		validation.Field(&r.Comment, validation.Length(0, MaxCommentLength)),
	)
}

func (r CreateReviewRequest) ToReview() *Review {
	return &Review{
		BookID:   r.BookID,
		UserName: r.UserName,
		Rating:   r.Rating,
		Comment:  r.Comment,
	}
}
