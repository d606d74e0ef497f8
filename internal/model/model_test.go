package model

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIDUnmarshal(t *testing.T) {
	cases := []struct {
		in   string
		want ID
	}{
		{`"12"`, "12"},
		{`12`, "12"},
		{`1.5`, "1.5"},
		{`null`, ""},
		{`"abc"`, "abc"},
	}
	for _, tc := range cases {
		var id ID
		require.NoError(t, json.Unmarshal([]byte(tc.in), &id), tc.in)
		assert.Equal(t, tc.want, id, tc.in)
	}

	var id ID
	assert.Error(t, json.Unmarshal([]byte(`true`), &id))
	assert.Error(t, json.Unmarshal([]byte(`{}`), &id))
}

func TestIDSameNumber(t *testing.T) {
	assert.True(t, ID("1").SameNumber("1"))
	assert.True(t, ID("01").SameNumber("1"))
	assert.True(t, ID(" 2 ").SameNumber("2.0"))
	assert.False(t, ID("1").SameNumber("2"))
	assert.False(t, ID("abc").SameNumber("abc"))
	assert.False(t, ID("").SameNumber(""))
	assert.False(t, ID("").SameNumber("0"))
	assert.True(t, ID("99999999999999999999").SameNumber(" 99999999999999999999"))
	assert.False(t, ID("99999999999999999999").SameNumber("100000000000000000000"))
	assert.True(t, ID("100000000000000000000").SameNumber("1e20"))
}

func TestBookLegacyReviewCount(t *testing.T) {
	var b Book
	require.NoError(t, json.Unmarshal([]byte(`{"id":"3","title":"T","rating":4.5,"reviewCount":10}`), &b))
	assert.Equal(t, ID("3"), b.ID)
	assert.Equal(t, "T", b.Title)
	assert.Equal(t, 10.0, b.ReviewsCount)
	assert.Equal(t, 45.0, b.Score())

	var both Book
	require.NoError(t, json.Unmarshal([]byte(`{"reviewsCount":7,"reviewCount":10}`), &both))
	assert.Equal(t, 7.0, both.ReviewsCount)
}

func TestBookMarshalUsesCanonicalKeys(t *testing.T) {
	date := "2020-05-01"
	out, err := json.Marshal(Book{ID: "1", Title: "T", Author: "A", DatePublished: &date, ReviewsCount: 3, InStock: true})
	require.NoError(t, err)

	var m map[string]any
	require.NoError(t, json.Unmarshal(out, &m))
	assert.Equal(t, "1", m["id"])
	assert.Equal(t, "2020-05-01", m["datePublished"])
	assert.Equal(t, 3.0, m["reviewsCount"])
	assert.NotContains(t, m, "reviewCount")
	assert.Equal(t, true, m["inStock"])
}

func TestReviewCreateRequestPresence(t *testing.T) {
	var req ReviewCreateRequest
	require.NoError(t, json.Unmarshal([]byte(`{"bookId":1,"rating":0,"author":null}`), &req))
	require.NotNil(t, req.BookID)
	assert.Equal(t, ID("1"), *req.BookID)
	require.NotNil(t, req.Rating)
	assert.Equal(t, 0.0, *req.Rating)
	assert.Nil(t, req.Author)
	assert.Nil(t, req.Title)
}

func TestBookOffTypeFields(t *testing.T) {
	var b Book
	require.NoError(t, json.Unmarshal([]byte(`{
		"id": 1,
		"title": 1984,
		"price": "12.99",
		"pages": "320",
		"genre": "Fiction",
		"tags": ["a", 2, {"x": 1}],
		"datePublished": 2020,
		"rating": "NaN",
		"reviewsCount": "7",
		"inStock": "false",
		"featured": "yes"
	}`), &b))

	assert.Equal(t, ID("1"), b.ID)
	assert.Equal(t, "1984", b.Title)
	assert.Equal(t, 12.99, b.Price)
	assert.Equal(t, 320, b.Pages)
	assert.Equal(t, []string{"Fiction"}, b.Genre)
	assert.Equal(t, []string{"a", "2"}, b.Tags)
	require.NotNil(t, b.DatePublished)
	assert.Equal(t, "2020", *b.DatePublished)
	assert.Equal(t, 0.0, b.Rating)
	assert.Equal(t, 7.0, b.ReviewsCount)
	assert.False(t, b.InStock)
	assert.False(t, b.Featured)

	_, err := json.Marshal(b)
	assert.NoError(t, err)
}

func TestReviewOffTypeFields(t *testing.T) {
	var r Review
	require.NoError(t, json.Unmarshal([]byte(`{"id":1,"bookId":1,"author":"x","rating":"4","verified":1,"timestamp":null}`), &r))
	assert.Equal(t, ID("1"), r.ID)
	assert.True(t, r.BookID.SameNumber("1"))
	assert.Equal(t, 4.0, r.Rating)
	assert.False(t, r.Verified)
	assert.Equal(t, "", r.Timestamp)
}

func TestNonObjectEntriesFail(t *testing.T) {
	for _, in := range []string{`null`, `"oops"`, `42`, `[1]`} {
		var b Book
		assert.Error(t, json.Unmarshal([]byte(in), &b), in)
		var r Review
		assert.Error(t, json.Unmarshal([]byte(in), &r), in)
	}
}
