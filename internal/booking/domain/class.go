package domain

import (
	"encoding/json"
	"errors"
	"fmt"
)

// Class is the travel class. Closed set: first or second. Wire tokens are
// lowercase and unknown tokens fail to decode; there is no default.
type Class struct {
	value string
}

var (
	ClassFirst  = Class{value: "first"}
	ClassSecond = Class{value: "second"}
)

// ErrUnknownClass indicates a class token outside the closed set.
var ErrUnknownClass = errors.New(`unknown class: expected "first" or "second"`)

// NewClass creates a validated Class from its wire token.
func NewClass(value string) (Class, error) {
	switch value {
	case ClassFirst.value:
		return ClassFirst, nil
	case ClassSecond.value:
		return ClassSecond, nil
	default:
		return Class{}, ErrUnknownClass
	}
}

// MustClass creates a Class, panicking on an unknown token.
func MustClass(value string) Class {
	c, err := NewClass(value)
	if err != nil {
		panic(err)
	}
	return c
}

// String returns the lowercase wire token.
func (c Class) String() string {
	return c.value
}

// IsZero returns true if this is the zero value.
func (c Class) IsZero() bool {
	return c.value == ""
}

func (c Class) MarshalJSON() ([]byte, error) {
	if c.IsZero() {
		return nil, fmt.Errorf("marshal class: %w", ErrUnknownClass)
	}
	return json.Marshal(c.value)
}

func (c *Class) UnmarshalJSON(data []byte) error {
	var raw string
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	parsed, err := NewClass(raw)
	if err != nil {
		return err
	}
	*c = parsed
	return nil
}
