package catalog

import (
	"math/big"
	"strconv"
	"strings"
	"time"

	"github.com/Xunop/amana-bookstore/internal/model"
)

const (
	reviewIDPrefix = "review-"
	// maxIDBits bounds identifiers written with an exponent, such as 1e9999.
	maxIDBits = 1024
	unknown   = "Unknown"
	// TimestampLayout is the layout of review timestamps.
	TimestampLayout = "2006-01-02T15:04:05.000Z07:00"
)

// NextBookID returns the identifier following the highest numeric one, or
// "1" when there is none. Fractions are truncated. Identifiers are not bound
// to a machine integer, so the next one never wraps around.
func NextBookID(ids []model.ID) model.ID {
	highest := new(big.Int)
	for _, id := range ids {
		if n, ok := integerPart(id); ok && n.Cmp(highest) > 0 {
			highest = n
		}
	}
	return model.ID(highest.Add(highest, big.NewInt(1)).String())
}

// integerPart reads a decimal identifier of any size. Infinities and
// non-numbers are rejected.
func integerPart(id model.ID) (*big.Int, bool) {
	s := strings.TrimSpace(string(id))
	if s == "" {
		return nil, false
	}
	if n, ok := new(big.Int).SetString(s, 10); ok {
		return n, true
	}
	f, ok := new(big.Float).SetPrec(256).SetString(s)
	if !ok || f.IsInf() || f.MantExp(nil) > maxIDBits {
		return nil, false
	}
	n, _ := f.Int(nil)
	return n, true
}

// NextReviewID returns "review-N" where N follows both the number of
// reviews and the highest existing suffix.
func NextReviewID(ids []model.ID) string {
	highest := len(ids)
	for _, id := range ids {
		suffix, ok := strings.CutPrefix(string(id), reviewIDPrefix)
		if !ok {
			continue
		}
		if n, err := strconv.Atoi(suffix); err == nil && n > highest {
			highest = n
		}
	}
	return reviewIDPrefix + strconv.Itoa(highest+1)
}

// NewBook builds a book from a validated request, filling the defaults.
func NewBook(id model.ID, req *model.BookCreateRequest) model.Book {
	book := model.Book{
		ID:          id,
		Title:       deref(req.Title),
		Author:      deref(req.Author),
		Description: deref(req.Description),
		Image:       deref(req.Image),
		ISBN:        deref(req.ISBN),
		Genre:       req.Genre,
		Tags:        req.Tags,
		Language:    orUnknown(req.Language),
		Publisher:   orUnknown(req.Publisher),
		InStock:     true,
	}
	if book.Genre == nil {
		book.Genre = []string{}
	}
	if book.Tags == nil {
		book.Tags = []string{}
	}
	if req.Price != nil {
		book.Price = *req.Price
	}
	if req.DatePublished != nil && strings.TrimSpace(*req.DatePublished) != "" {
		date := *req.DatePublished
		book.DatePublished = &date
	}
	if req.Pages != nil {
		book.Pages = *req.Pages
	}
	if req.Rating != nil {
		book.Rating = *req.Rating
	}
	switch {
	case req.ReviewsCount != nil:
		book.ReviewsCount = *req.ReviewsCount
	case req.ReviewCount != nil:
		book.ReviewsCount = *req.ReviewCount
	}
	if req.InStock != nil {
		book.InStock = *req.InStock
	}
	if req.Featured != nil {
		book.Featured = *req.Featured
	}
	return book
}

// NewReview builds a review from a validated request.
func NewReview(id string, req *model.ReviewCreateRequest, now time.Time) model.Review {
	review := model.Review{
		ID:        model.ID(id),
		Author:    deref(req.Author),
		Title:     deref(req.Title),
		Comment:   deref(req.Comment),
		Timestamp: now.UTC().Format(TimestampLayout),
	}
	if req.BookID != nil {
		review.BookID = *req.BookID
	}
	if req.Rating != nil {
		review.Rating = *req.Rating
	}
	if req.Verified != nil {
		review.Verified = *req.Verified
	}
	return review
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

func orUnknown(s *string) string {
	if s == nil || *s == "" {
		return unknown
	}
	return *s
}
