package model

import (
	"bytes"
	"encoding/json"
	"math"
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

// maxExactInt is the largest integer a float64 holds exactly.
const maxExactInt = 1 << 53

// decodeObject decodes the members of a JSON object into targets, keyed by
// member name. A member of the wrong JSON type is converted when it has an
// obvious scalar reading ("12.99" for a number, 5 for a string) and is left
// at its zero value otherwise. Only a value that is not an object fails.
func decodeObject(data []byte, targets map[string]interface{}) error {
	var members map[string]json.RawMessage
	if err := json.Unmarshal(data, &members); err != nil {
		return err
	}
	if members == nil {
		return errors.New("entry is not an object")
	}

	for name, target := range targets {
		raw, ok := members[name]
		if !ok {
			continue
		}
		if err := json.Unmarshal(raw, target); err != nil {
			coerce(raw, target)
		}
	}
	return nil
}

func coerce(raw json.RawMessage, target interface{}) {
	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.UseNumber()
	var v interface{}
	if err := dec.Decode(&v); err != nil {
		v = nil
	}

	switch t := target.(type) {
	case *string:
		*t, _ = scalarString(v)
	case **string:
		*t = nil
		if s, ok := scalarString(v); ok {
			*t = &s
		}
	case *float64:
		*t, _ = scalarNumber(v)
	case **float64:
		*t = nil
		if f, ok := scalarNumber(v); ok {
			*t = &f
		}
	case *int:
		*t = 0
		if f, ok := scalarNumber(v); ok && math.Abs(f) <= maxExactInt {
			*t = int(f)
		}
	case *bool:
		*t = false
		switch b := v.(type) {
		case bool:
			*t = b
		case string:
			*t, _ = strconv.ParseBool(strings.TrimSpace(b))
		}
	case *[]string:
		*t = nil
		switch list := v.(type) {
		case []interface{}:
			values := make([]string, 0, len(list))
			for _, item := range list {
				if s, ok := scalarString(item); ok {
					values = append(values, s)
				}
			}
			*t = values
		default:
			if s, ok := scalarString(v); ok {
				*t = []string{s}
			}
		}
	case *ID:
		*t = ""
	}
}

func scalarString(v interface{}) (string, bool) {
	switch s := v.(type) {
	case string:
		return s, true
	case json.Number:
		return s.String(), true
	case bool:
		return strconv.FormatBool(s), true
	}
	return "", false
}

// scalarNumber only returns finite numbers, which are the ones JSON can
// encode back.
func scalarNumber(v interface{}) (float64, bool) {
	var s string
	switch n := v.(type) {
	case json.Number:
		s = n.String()
	case string:
		s = strings.TrimSpace(n)
	default:
		return 0, false
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, false
	}
	return f, true
}
