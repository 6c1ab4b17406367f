// Package jsonx holds request field types that take a value the way the
// client sent it instead of rejecting a mismatched JSON type.
package jsonx

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"math/big"
	"strings"
)

var ErrNotScalar = errors.New("value is not a scalar")

// Text accepts any JSON scalar. Numbers and booleans keep their literal
// spelling; null is the empty string.
type Text string

func (t *Text) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	switch {
	case len(b) == 0 || string(b) == "null":
		*t = ""
	case b[0] == '"':
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		*t = Text(s)
	case b[0] == '{' || b[0] == '[':
		return fmt.Errorf("text: %w", ErrNotScalar)
	default:
		*t = Text(b)
	}
	return nil
}

// Int accepts a JSON number or a numeric string with an integral value
// (5, 5.0, 1e2, "5"). null and "" are zero.
type Int int

func (n *Int) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if len(b) == 0 || string(b) == "null" {
		*n = 0
		return nil
	}
	raw := string(b)
	if b[0] == '"' {
		if err := json.Unmarshal(b, &raw); err != nil {
			return err
		}
		raw = strings.TrimSpace(raw)
		if raw == "" {
			*n = 0
			return nil
		}
	} else if b[0] == '{' || b[0] == '[' {
		return fmt.Errorf("integer: %w", ErrNotScalar)
	}

	r, ok := new(big.Rat).SetString(raw)
	if !ok {
		return fmt.Errorf("integer: %q is not a number", raw)
	}
	if !r.IsInt() || !r.Num().IsInt64() {
		return fmt.Errorf("integer: %q is not a whole number", raw)
	}
	v := r.Num().Int64()
	if int64(int(v)) != v {
		return fmt.Errorf("integer: %q out of range", raw)
	}
	*n = Int(v)
	return nil
}
