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

// ListBooks returns every book of the collection, in stored order.
func (s *Store) ListBooks(ctx context.Context) ([]model.Book, error) {
	entries, err := s.Load(ctx, storage.Books)
	if err != nil {
		return nil, err
	}
	return decode[model.Book](storage.Books, entries), nil
}

// GetBook returns the book whose identifier is numerically equal to id.
func (s *Store) GetBook(ctx context.Context, id model.ID) (*model.Book, error) {
	books, err := s.ListBooks(ctx)
	if err != nil {
		return nil, err
	}
	return catalog.FindByID(books, id)
}

// CreateBook validates the request, assigns the next identifier and persists
// the book with the rest of the collection.
func (s *Store) CreateBook(ctx context.Context, create *model.BookCreateRequest) (*model.Book, error) {
	if err := validator.ValidateBookCreateRequest(create); err != nil {
		return nil, err
	}

	var book model.Book
	err := s.Append(ctx, storage.Books, func(entries []json.RawMessage) (json.RawMessage, error) {
		book = catalog.NewBook(catalog.NextBookID(entryIDs(entries)), create)
		return encode(storage.Books, book)
	})
	if err != nil {
		return nil, err
	}

	log.Info("Created book", zap.String("book_id", book.ID.String()), zap.String("title", book.Title))
	return &book, nil
}

// entryIDs collects the "id" of every entry, including entries that do not
// decode as a whole.
func entryIDs(entries []json.RawMessage) []model.ID {
	ids := make([]model.ID, 0, len(entries))
	for _, entry := range entries {
		var partial struct {
			ID json.RawMessage `json:"id"`
		}
		if err := json.Unmarshal(entry, &partial); err != nil || partial.ID == nil {
			continue
		}
		var id model.ID
		if err := json.Unmarshal(partial.ID, &id); err != nil {
			continue
		}
		ids = append(ids, id)
	}
	return ids
}
