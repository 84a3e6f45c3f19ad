package domain

import (
	"encoding/json"
	"errors"
)

// stations is the static allow-list of served stations. Matching is exact:
// case-sensitive, whitespace-sensitive, no normalization.
var stations = []string{
	"Amsterdam Centraal",
	"Paris Nord",
	"Berlin Hbf",
	"London Waterloo",
}

// ErrUnknownStation indicates the value is not a served station.
var ErrUnknownStation = errors.New("unknown station")

// Location is a validated station name.
//
// Invariants:
//   - Member of the fixed station allow-list
type Location struct {
	value string
}

// NewLocation creates a validated Location.
func NewLocation(value string) (Location, error) {
	for _, s := range stations {
		if s == value {
			return Location{value: value}, nil
		}
	}
	return Location{}, ErrUnknownStation
}

// MustLocation creates a Location, panicking if invalid.
// Use only in tests or when the value is known to be valid.
func MustLocation(value string) Location {
	l, err := NewLocation(value)
	if err != nil {
		panic(err)
	}
	return l
}

// String returns the station name.
func (l Location) String() string {
	return l.value
}

// IsZero returns true if this is the zero value (uninitialized).
func (l Location) IsZero() bool {
	return l.value == ""
}

// MarshalJSON encodes the location as its station name.
func (l Location) MarshalJSON() ([]byte, error) {
	return json.Marshal(l.value)
}

// UnmarshalJSON decodes and validates a station name.
func (l *Location) UnmarshalJSON(data []byte) error {
	var raw string
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	parsed, err := NewLocation(raw)
	if err != nil {
		return err
	}
	*l = parsed
	return nil
}
