package store

import (
	"context"
	"encoding/json"

	"github.com/Xunop/amana-bookstore/internal/catalog"
	"github.com/Xunop/amana-bookstore/internal/log"
	"github.com/Xunop/amana-bookstore/internal/model"
	"github.com/Xunop/amana-bookstore/internal/storage"
	"github.com/Xunop/amana-bookstore/internal/validator"
	"go.uber.org/zap"
)

func (s *Store) ListReviews(ctx context.Context) ([]model.Review, error) {
	entries, err := s.Load(ctx, storage.Reviews)
	if err != nil {
		return nil, err
	}
	return decode[model.Review](storage.Reviews, entries), nil
}

// ListBookReviews returns the reviews of a book, possibly none. The book
// itself is not looked up.
func (s *Store) ListBookReviews(ctx context.Context, bookID model.ID) ([]model.Review, error) {
	reviews, err := s.ListReviews(ctx)
	if err != nil {
		return nil, err
	}
	return catalog.FilterReviewsByBookID(reviews, bookID), nil
}

// CreateReview validates the request and persists the review. The book
// identifier is not checked against the books collection.
func (s *Store) CreateReview(ctx context.Context, create *model.ReviewCreateRequest) (*model.Review, error) {
	if err := validator.ValidateReviewCreateRequest(create); err != nil {
		return nil, err
	}

	var review model.Review
	err := s.Append(ctx, storage.Reviews, func(entries []json.RawMessage) (json.RawMessage, error) {
		ids := entryIDs(entries)
		// Entries without a usable id still count.
		for len(ids) < len(entries) {
			ids = append(ids, "")
		}
		review = catalog.NewReview(catalog.NextReviewID(ids), create, s.now())
		return encode(storage.Reviews, review)
	})
	if err != nil {
		return nil, err
	}

	log.Info("Created review", zap.String("review_id", review.ID.String()), zap.String("book_id", review.BookID.String()))
	return &review, nil
}
