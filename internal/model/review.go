package model //import "github.com/Xunop/amana-bookstore/internal/model"

type Review struct {
	ID       ID      `json:"id"`
	BookID   ID      `json:"bookId"`
	Author   string  `json:"author"`
	Title    string  `json:"title"`
	Comment  string  `json:"comment"`
	Rating   float64 `json:"rating"`
	Verified bool    `json:"verified"`
	// Timestamp is set by the server when the review is created.
	Timestamp string `json:"timestamp"`
}

// UnmarshalJSON decodes a stored review field by field, like Book.
func (r *Review) UnmarshalJSON(data []byte) error {
	var review Review
	err := decodeObject(data, map[string]interface{}{
		"id":        &review.ID,
		"bookId":    &review.BookID,
		"author":    &review.Author,
		"title":     &review.Title,
		"comment":   &review.Comment,
		"rating":    &review.Rating,
		"verified":  &review.Verified,
		"timestamp": &review.Timestamp,
	})
	if err != nil {
		return err
	}
	*r = review
	return nil
}

type ReviewCreateRequest struct {
	BookID   *ID      `json:"bookId"`
	Author   *string  `json:"author"`
	Title    *string  `json:"title"`
	Comment  *string  `json:"comment"`
	Rating   *float64 `json:"rating"`
	Verified *bool    `json:"verified"`
}
