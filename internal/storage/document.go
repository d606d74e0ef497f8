package storage

import (
	"bytes"
	"encoding/json"

	"github.com/pkg/errors"
)

// Normalize returns the entries of a collection document. A document is
// either a bare array or an object holding the array under the collection
// name; a missing or null field is an empty collection.
func Normalize(c Collection, document []byte) ([]json.RawMessage, error) {
	trimmed := bytes.TrimSpace(document)
	if len(trimmed) == 0 {
		return nil, readError(c, errors.New("empty document"))
	}

	var list json.RawMessage
	switch trimmed[0] {
	case '[':
		list = trimmed
	case '{':
		var wrapped map[string]json.RawMessage
		if err := json.Unmarshal(trimmed, &wrapped); err != nil {
			return nil, readError(c, errors.Wrap(err, "unable to parse document"))
		}
		list = wrapped[string(c)]
	default:
		return nil, readError(c, errors.New("document is neither an array nor an object"))
	}

	entries := make([]json.RawMessage, 0)
	if len(list) == 0 || bytes.Equal(bytes.TrimSpace(list), []byte("null")) {
		return entries, nil
	}
	if err := json.Unmarshal(list, &entries); err != nil {
		return nil, readError(c, errors.Wrapf(err, "field %q is not an array", c))
	}
	return entries, nil
}

// Wrap builds the canonical document of a collection: an object holding the
// entries under the collection name, indented by two spaces.
func Wrap(c Collection, entries []json.RawMessage) ([]byte, error) {
	if entries == nil {
		entries = []json.RawMessage{}
	}
	document, err := json.MarshalIndent(map[string][]json.RawMessage{string(c): entries}, "", "  ")
	if err != nil {
		return nil, writeError(c, errors.Wrap(err, "unable to encode document"))
	}
	return append(document, '\n'), nil
}
