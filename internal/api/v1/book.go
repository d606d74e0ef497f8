package v1

import (
	"net/http"

	"github.com/Xunop/amana-bookstore/internal/catalog"
	"github.com/Xunop/amana-bookstore/internal/http/request"
	"github.com/Xunop/amana-bookstore/internal/http/response"
	"github.com/Xunop/amana-bookstore/internal/model"
)

func (h *Handler) listBooks(w http.ResponseWriter, r *http.Request) {
	books, err := h.store.ListBooks(r.Context())
	if err != nil {
		handleError(w, r, err, bookNotFoundMessage)
		return
	}
	response.OK(w, r, books)
}

func (h *Handler) getBook(w http.ResponseWriter, r *http.Request) {
	id := model.ID(request.RouteStringParam(r, "id"))
	book, err := h.store.GetBook(r.Context(), id)
	if err != nil {
		handleError(w, r, err, bookNotFoundMessage)
		return
	}
	response.OK(w, r, book)
}

func (h *Handler) booksInRange(w http.ResponseWriter, r *http.Request) {
	start := request.QueryStringParam(r, "start")
	end := request.QueryStringParam(r, "end")

	books, err := h.store.ListBooks(r.Context())
	if err != nil {
		handleError(w, r, err, bookNotFoundMessage)
		return
	}
	filtered, err := catalog.FilterByDateRange(books, start, end)
	if err != nil {
		handleError(w, r, err, bookNotFoundMessage)
		return
	}
	response.OK(w, r, filtered)
}

func (h *Handler) topRatedBooks(w http.ResponseWriter, r *http.Request) {
	books, err := h.store.ListBooks(r.Context())
	if err != nil {
		handleError(w, r, err, bookNotFoundMessage)
		return
	}
	response.OK(w, r, catalog.RankByScore(books))
}

func (h *Handler) featuredBooks(w http.ResponseWriter, r *http.Request) {
	books, err := h.store.ListBooks(r.Context())
	if err != nil {
		handleError(w, r, err, bookNotFoundMessage)
		return
	}
	response.OK(w, r, catalog.FilterFeatured(books))
}

// bookReviews lists the reviews of an existing book. Unlike reviewsByBook,
// an empty list is a success.
func (h *Handler) bookReviews(w http.ResponseWriter, r *http.Request) {
	id := model.ID(request.RouteStringParam(r, "id"))
	if _, err := h.store.GetBook(r.Context(), id); err != nil {
		handleError(w, r, err, bookNotFoundMessage)
		return
	}

	reviews, err := h.store.ListBookReviews(r.Context(), id)
	if err != nil {
		handleError(w, r, err, bookNotFoundMessage)
		return
	}
	response.OK(w, r, reviews)
}

func (h *Handler) createBook(w http.ResponseWriter, r *http.Request) {
	var create model.BookCreateRequest
	if !decodeBody(w, r, &create) {
		return
	}

	book, err := h.store.CreateBook(r.Context(), &create)
	if err != nil {
		handleError(w, r, err, bookNotFoundMessage)
		return
	}
	response.Created(w, r, book)
}
