package martindb

import (
	"encoding/json"
	"fmt"
	"strconv"
)

// ValueKind tags the variant stored in a Value.
type ValueKind uint

const (
	// NullValue is the zero Value.
	NullValue ValueKind = iota
	// IntValue holds a 32-bit signed integer.
	IntValue
	// TextValue holds a string.
	TextValue
)

func (k ValueKind) String() string {
	switch k {
	case IntValue:
		return "integer"
	case TextValue:
		return "text"
	default:
		return "null"
	}
}

// Value is a typed unit of stored data: Integer, Text, or Null. It is
// a comparable struct, so equality is structural and variant-aware and
// a Value can key a map directly. Values of different kinds are simply
// unequal; payloads are never compared across kinds.
type Value struct {
	Kind ValueKind
	Int  int32
	Text string
}

// Null is the null Value.
var Null = Value{}

// NewInt returns an integer Value.
func NewInt(i int32) Value {
	return Value{Kind: IntValue, Int: i}
}

// NewText returns a text Value.
func NewText(s string) Value {
	return Value{Kind: TextValue, Text: s}
}

func (v Value) String() string {
	switch v.Kind {
	case IntValue:
		return strconv.FormatInt(int64(v.Int), 10)
	case TextValue:
		return v.Text
	default:
		return ""
	}
}

type valueJSON struct {
	Int  *int32  `json:"int,omitempty"`
	Text *string `json:"text,omitempty"`
}

// MarshalJSON encodes the tagged union as {"int": n}, {"text": "s"},
// or null. The encoding carries the variant explicitly rather than
// relying on JSON's own number/string distinction.
func (v Value) MarshalJSON() ([]byte, error) {
	switch v.Kind {
	case IntValue:
		return json.Marshal(valueJSON{Int: &v.Int})
	case TextValue:
		return json.Marshal(valueJSON{Text: &v.Text})
	default:
		return []byte("null"), nil
	}
}

func (v *Value) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		*v = Null
		return nil
	}

	var raw valueJSON
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	switch {
	case raw.Int != nil && raw.Text != nil:
		return fmt.Errorf("value carries both int and text payloads")
	case raw.Int != nil:
		*v = NewInt(*raw.Int)
	case raw.Text != nil:
		*v = NewText(*raw.Text)
	default:
		*v = Null
	}

	return nil
}
