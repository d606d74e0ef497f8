package validator // import "github.com/Xunop/amana-bookstore/internal/validator"

import (
	"strings"

	"github.com/Xunop/amana-bookstore/internal/model"
	"github.com/pkg/errors"
)

// ErrValidation is matched by every ValidationError.
var ErrValidation = errors.New("validation error")

// ValidationError lists the required fields missing from a request.
type ValidationError struct {
	Message string
	Fields  []string
}

func (e *ValidationError) Error() string {
	return e.Message
}

func (e *ValidationError) Is(target error) bool {
	return target == ErrValidation
}

// ValidateBookCreateRequest requires a title and an author.
func ValidateBookCreateRequest(book *model.BookCreateRequest) error {
	if book == nil {
		return &ValidationError{Message: "Book is empty"}
	}
	var missing []string
	if blank(book.Title) {
		missing = append(missing, "title")
	}
	if blank(book.Author) {
		missing = append(missing, "author")
	}
	if len(missing) > 0 {
		return &ValidationError{Message: "Title and author are required", Fields: missing}
	}
	return nil
}

// ValidateReviewCreateRequest requires every field but verified. Rating is
// only checked for presence, so a rating of 0 is accepted.
func ValidateReviewCreateRequest(review *model.ReviewCreateRequest) error {
	if review == nil {
		return &ValidationError{Message: "Review is empty"}
	}
	var missing []string
	if review.BookID == nil || strings.TrimSpace(review.BookID.String()) == "" {
		missing = append(missing, "bookId")
	}
	if blank(review.Author) {
		missing = append(missing, "author")
	}
	if blank(review.Title) {
		missing = append(missing, "title")
	}
	if blank(review.Comment) {
		missing = append(missing, "comment")
	}
	if review.Rating == nil {
		missing = append(missing, "rating")
	}
	if len(missing) > 0 {
		return &ValidationError{Message: "All fields are required", Fields: missing}
	}
	return nil
}

func blank(s *string) bool {
	return s == nil || strings.TrimSpace(*s) == ""
}
