// Package catalog holds the query and creation rules of the book catalog.
//
// Every function works on a collection that was already loaded and has no
// side effects; persistence belongs to package store.
package catalog // import "github.com/Xunop/amana-bookstore/internal/catalog"
