package v1

import (
	"net/http"

	"github.com/Xunop/amana-bookstore/internal/http/request"
	"github.com/Xunop/amana-bookstore/internal/http/response"
	"github.com/Xunop/amana-bookstore/internal/model"
)

func (h *Handler) reviewsByBook(w http.ResponseWriter, r *http.Request) {
	bookID := model.ID(request.RouteStringParam(r, "bookId"))
	reviews, err := h.store.ListBookReviews(r.Context(), bookID)
	if err != nil {
		handleError(w, r, err, reviewsNotFoundMessage)
		return
	}
	if len(reviews) == 0 {
		response.NotFound(w, r, reviewsNotFoundMessage)
		return
	}
	response.OK(w, r, reviews)
}

func (h *Handler) createReview(w http.ResponseWriter, r *http.Request) {
	var create model.ReviewCreateRequest
	if !decodeBody(w, r, &create) {
		return
	}

	review, err := h.store.CreateReview(r.Context(), &create)
	if err != nil {
		handleError(w, r, err, reviewsNotFoundMessage)
		return
	}
	response.Created(w, r, review)
}
