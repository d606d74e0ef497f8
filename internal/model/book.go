package model //import "github.com/Xunop/amana-bookstore/internal/model"

type Book struct {
	ID          ID       `json:"id"`
	Title       string   `json:"title"`
	Author      string   `json:"author"`
	Description string   `json:"description"`
	Price       float64  `json:"price"`
	Image       string   `json:"image"`
	ISBN        string   `json:"isbn"`
	Genre       []string `json:"genre"`
	Tags        []string `json:"tags"`
	// DatePublished is nil when the publication date is unknown.
	DatePublished *string `json:"datePublished"`
	Pages         int     `json:"pages"`
	Language      string  `json:"language"`
	Publisher     string  `json:"publisher"`
	Rating        float64 `json:"rating"`
	ReviewsCount  float64 `json:"reviewsCount"`
	InStock       bool    `json:"inStock"`
	Featured      bool    `json:"featured"`
}

// UnmarshalJSON decodes a stored book field by field, so that one off-type
// field does not hide the whole book. The legacy reviewCount key is accepted.
func (b *Book) UnmarshalJSON(data []byte) error {
	var book Book
	var reviewsCount, reviewCount *float64
	err := decodeObject(data, map[string]interface{}{
		"id":            &book.ID,
		"title":         &book.Title,
		"author":        &book.Author,
		"description":   &book.Description,
		"price":         &book.Price,
		"image":         &book.Image,
		"isbn":          &book.ISBN,
		"genre":         &book.Genre,
		"tags":          &book.Tags,
		"datePublished": &book.DatePublished,
		"pages":         &book.Pages,
		"language":      &book.Language,
		"publisher":     &book.Publisher,
		"rating":        &book.Rating,
		"reviewsCount":  &reviewsCount,
		"reviewCount":   &reviewCount,
		"inStock":       &book.InStock,
		"featured":      &book.Featured,
	})
	if err != nil {
		return err
	}
	switch {
	case reviewsCount != nil:
		book.ReviewsCount = *reviewsCount
	case reviewCount != nil:
		book.ReviewsCount = *reviewCount
	}
	*b = book
	return nil
}

// Score is the ranking score of a book.
func (b *Book) Score() float64 {
	return b.Rating * b.ReviewsCount
}

// BookCreateRequest is the payload of a book creation. Pointer fields tell
// an omitted field apart from a zero value.
type BookCreateRequest struct {
	Title         *string  `json:"title"`
	Author        *string  `json:"author"`
	Description   *string  `json:"description"`
	Price         *float64 `json:"price"`
	Image         *string  `json:"image"`
	ISBN          *string  `json:"isbn"`
	Genre         []string `json:"genre"`
	Tags          []string `json:"tags"`
	DatePublished *string  `json:"datePublished"`
	Pages         *int     `json:"pages"`
	Language      *string  `json:"language"`
	Publisher     *string  `json:"publisher"`
	Rating        *float64 `json:"rating"`
	ReviewsCount  *float64 `json:"reviewsCount"`
	ReviewCount   *float64 `json:"reviewCount"`
	InStock       *bool    `json:"inStock"`
	Featured      *bool    `json:"featured"`
}
