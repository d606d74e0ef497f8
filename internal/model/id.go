package model //import "github.com/Xunop/amana-bookstore/internal/model"

import (
	"bytes"
	"encoding/json"
	"math/big"
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

// ID is a record identifier. Stored documents and clients use both JSON
// strings and JSON numbers for identifiers, so both decode into an ID.
type ID string

func (id *ID) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 {
		return errors.New("empty identifier")
	}
	switch data[0] {
	case '"':
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*id = ID(s)
		return nil
	case 'n':
		*id = ""
		return nil
	}

	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return errors.Wrapf(err, "identifier must be a string or a number, got %s", data)
	}
	*id = ID(n.String())
	return nil
}

func (id ID) String() string {
	return string(id)
}

// Number coerces the identifier to a number. Surrounding blanks are ignored
// and an empty identifier is not a number.
func (id ID) Number() (float64, bool) {
	s := strings.TrimSpace(string(id))
	if s == "" {
		return 0, false
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, false
	}
	return f, true
}

// SameNumber reports whether both identifiers coerce to the same number.
func (id ID) SameNumber(other ID) bool {
	a, ok := id.Number()
	if !ok {
		return false
	}
	b, ok := other.Number()
	if !ok || a != b {
		return false
	}
	// float64 rounds integers above 2^53, compare those exactly.
	x, xok := new(big.Int).SetString(strings.TrimSpace(string(id)), 10)
	y, yok := new(big.Int).SetString(strings.TrimSpace(string(other)), 10)
	if xok && yok {
		return x.Cmp(y) == 0
	}
	return true
}
