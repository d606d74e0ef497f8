package v1

import (
	"encoding/json"
	"io"
	"net/http"

	"github.com/Xunop/amana-bookstore/internal/catalog"
	"github.com/Xunop/amana-bookstore/internal/http/response"
	"github.com/Xunop/amana-bookstore/internal/log"
	"github.com/Xunop/amana-bookstore/internal/store"
	"github.com/Xunop/amana-bookstore/internal/validator"
	"github.com/gorilla/mux"
	"github.com/pkg/errors"
	"go.uber.org/zap"
)

const (
	bookNotFoundMessage    = "Book not found"
	reviewsNotFoundMessage = "No reviews found for this book"
	invalidBodyMessage     = "Invalid JSON body"
)

type Handler struct {
	store *store.Store
}

// NewHandler is a constructor for the v1.Handler
func NewHandler(store *store.Store) *Handler {
	return &Handler{store: store}
}

// Server registers the catalog routes on router. The fixed /books/... paths
// come before /books/{id} so they are never taken for an identifier.
func Server(router *mux.Router, handler *Handler) {
	router.HandleFunc("/books", handler.listBooks).Methods(http.MethodGet)
	router.HandleFunc("/books", handler.createBook).Methods(http.MethodPost)
	router.HandleFunc("/books/range/published", handler.booksInRange).Methods(http.MethodGet)
	router.HandleFunc("/books/top/rated", handler.topRatedBooks).Methods(http.MethodGet)
	router.HandleFunc("/books/featured/list", handler.featuredBooks).Methods(http.MethodGet)
	router.HandleFunc("/books/{id}", handler.getBook).Methods(http.MethodGet)
	router.HandleFunc("/books/{id}/reviews", handler.bookReviews).Methods(http.MethodGet)

	router.HandleFunc("/reviews", handler.createReview).Methods(http.MethodPost)
	router.HandleFunc("/reviews/{bookId}", handler.reviewsByBook).Methods(http.MethodGet)
}

// decodeBody reads a single JSON value into v. An empty body leaves v
// untouched so that validation reports the missing fields; anything after
// the value is refused.
func decodeBody(w http.ResponseWriter, r *http.Request, v interface{}) bool {
	dec := json.NewDecoder(r.Body)
	err := dec.Decode(v)
	if errors.Is(err, io.EOF) {
		return true
	}
	if err == nil {
		if _, err = dec.Token(); errors.Is(err, io.EOF) {
			return true
		} else if err == nil {
			err = errors.New("unexpected data after the JSON value")
		}
	}

	var maxErr *http.MaxBytesError
	if errors.As(err, &maxErr) {
		response.RequestEntityTooLarge(w, r)
		return false
	}
	log.Debug("Failed to decode request body", zap.Error(err))
	response.BadRequest(w, r, errors.New(invalidBodyMessage))
	return false
}

// handleError maps domain errors to responses. notFound is the message used
// for catalog.ErrNotFound.
func handleError(w http.ResponseWriter, r *http.Request, err error, notFound string) {
	switch {
	case errors.Is(err, validator.ErrValidation), errors.Is(err, catalog.ErrInvalidArgument):
		response.BadRequest(w, r, err)
	case errors.Is(err, catalog.ErrNotFound):
		response.NotFound(w, r, notFound)
	default:
		response.ServerError(w, r, err)
	}
}
