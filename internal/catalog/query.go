package catalog

import (
	"sort"
	"strings"
	"time"

	"github.com/Xunop/amana-bookstore/internal/model"
)

// TopRatedLimit is the size of the top rated list.
const TopRatedLimit = 10

// Date layouts accepted for publication dates and range bounds. Values
// without a zone are UTC.
var dateLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05.999999999",
	"2006-01-02T15:04",
	"2006-01-02",
	"2006-01",
	"2006",
}

// FindByID returns the first book whose identifier is numerically equal to id.
func FindByID(books []model.Book, id model.ID) (*model.Book, error) {
	for i := range books {
		if books[i].ID.SameNumber(id) {
			return &books[i], nil
		}
	}
	return nil, ErrNotFound
}

// ParseDate parses a date in one of the accepted layouts.
func ParseDate(value string) (time.Time, bool) {
	value = strings.TrimSpace(value)
	if value == "" {
		return time.Time{}, false
	}
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, value); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// FilterByDateRange returns the books published between start and end, both
// inclusive. Bounds and publication dates are compared as full timestamps:
// "2020-12-31" is midnight, so a book published later that day is outside.
func FilterByDateRange(books []model.Book, start, end string) ([]model.Book, error) {
	if strings.TrimSpace(start) == "" || strings.TrimSpace(end) == "" {
		return nil, &ArgumentError{Message: "Start and end dates are required"}
	}
	startDate, ok := ParseDate(start)
	if !ok {
		return nil, &ArgumentError{Message: "Invalid start date: " + start}
	}
	endDate, ok := ParseDate(end)
	if !ok {
		return nil, &ArgumentError{Message: "Invalid end date: " + end}
	}

	filtered := make([]model.Book, 0)
	for _, b := range books {
		if b.DatePublished == nil {
			continue
		}
		published, ok := ParseDate(*b.DatePublished)
		if !ok {
			continue
		}
		if !published.Before(startDate) && !published.After(endDate) {
			filtered = append(filtered, b)
		}
	}
	return filtered, nil
}

// RankByScore returns at most TopRatedLimit books ordered by rating times
// review count, highest first. Ties keep their collection order.
func RankByScore(books []model.Book) []model.Book {
	ranked := make([]model.Book, len(books))
	copy(ranked, books)
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Score() > ranked[j].Score()
	})
	if len(ranked) > TopRatedLimit {
		ranked = ranked[:TopRatedLimit]
	}
	return ranked
}

func FilterFeatured(books []model.Book) []model.Book {
	featured := make([]model.Book, 0)
	for _, b := range books {
		if b.Featured {
			featured = append(featured, b)
		}
	}
	return featured
}

// FilterReviewsByBookID returns the reviews whose book identifier is
// numerically equal to bookID.
func FilterReviewsByBookID(reviews []model.Review, bookID model.ID) []model.Review {
	matched := make([]model.Review, 0)
	for _, r := range reviews {
		if r.BookID.SameNumber(bookID) {
			matched = append(matched, r)
		}
	}
	return matched
}
