// Package storage persists whole collection documents.
//
// A collection is one JSON document holding every entity of a kind. Drivers
// read and replace complete documents; they never patch them in place.
package storage // import "github.com/Xunop/amana-bookstore/internal/storage"

import (
	"context"
	"fmt"

	"github.com/pkg/errors"
)

type Collection string

const (
	Books   Collection = "books"
	Reviews Collection = "reviews"
)

// Collections lists every collection the service owns.
var Collections = []Collection{Books, Reviews}

var (
	// ErrStorageRead is matched by every failure to read or parse a document.
	ErrStorageRead = errors.New("storage read error")
	// ErrStorageWrite is matched by every failure to persist a document.
	ErrStorageWrite = errors.New("storage write error")
)

// Driver stores one document per collection.
type Driver interface {
	// Read returns the complete document of the collection.
	Read(ctx context.Context, c Collection) ([]byte, error)
	// Write replaces the complete document of the collection.
	Write(ctx context.Context, c Collection, document []byte) error
	// Init stores an empty document unless one exists already.
	Init(ctx context.Context, c Collection) (bool, error)
	Ping(ctx context.Context) error
	Close() error
}

// Error describes a failed storage operation.
type Error struct {
	Collection Collection
	Err        error
	kind       error
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s: %s: %v", e.kind, e.Collection, e.Err)
}

func (e *Error) Unwrap() error {
	return e.Err
}

func (e *Error) Is(target error) bool {
	return target == e.kind
}

func readError(c Collection, err error) error {
	return &Error{Collection: c, Err: err, kind: ErrStorageRead}
}

func writeError(c Collection, err error) error {
	return &Error{Collection: c, Err: err, kind: ErrStorageWrite}
}
