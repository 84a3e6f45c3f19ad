package domain

import (
	"encoding/json"
	"errors"
	"fmt"
	"time"
)

// ErrTimeNotFuture indicates a timestamp that is not strictly in the future.
var ErrTimeNotFuture = errors.New("time is not in the future")

// FutureTimestamp is an instant strictly later than the clock at the moment
// it was constructed. The boundary is a strict >, so a timestamp equal to
// "now" is rejected, and a retry near the boundary can observe a different
// outcome. Re-reads are never re-validated.
type FutureTimestamp struct {
	value time.Time
}

// NewFutureTimestamp creates a validated FutureTimestamp, checked against
// time.Now() at the moment of the call.
func NewFutureTimestamp(t time.Time) (FutureTimestamp, error) {
	if !t.After(time.Now()) {
		return FutureTimestamp{}, ErrTimeNotFuture
	}
	return FutureTimestamp{value: t}, nil
}

// MustFutureTimestamp creates a FutureTimestamp, panicking if invalid.
func MustFutureTimestamp(t time.Time) FutureTimestamp {
	ft, err := NewFutureTimestamp(t)
	if err != nil {
		panic(err)
	}
	return ft
}

// Time returns the underlying instant.
func (f FutureTimestamp) Time() time.Time {
	return f.value
}

// IsZero returns true if this is the zero value.
func (f FutureTimestamp) IsZero() bool {
	return f.value.IsZero()
}

func (f FutureTimestamp) MarshalJSON() ([]byte, error) {
	return json.Marshal(f.value)
}

func (f *FutureTimestamp) UnmarshalJSON(data []byte) error {
	var raw time.Time
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	parsed, err := NewFutureTimestamp(raw)
	if err != nil {
		return err
	}
	*f = parsed
	return nil
}

// ErrAmbiguousTimeRole indicates a wire value that does not carry exactly one
// of the departure and arrival roles.
var ErrAmbiguousTimeRole = errors.New("expected exactly one of departure or arrival")

// DepartureOrArrival records which role the user gave the travel time:
// "leave no earlier than" (departure) or "be there by" (arrival). Exactly one
// of the two is set.
type DepartureOrArrival struct {
	departure *FutureTimestamp
	arrival   *FutureTimestamp
}

// NewDeparture wraps a timestamp in the departure role.
func NewDeparture(t FutureTimestamp) DepartureOrArrival {
	return DepartureOrArrival{departure: &t}
}

// NewArrival wraps a timestamp in the arrival role.
func NewArrival(t FutureTimestamp) DepartureOrArrival {
	return DepartureOrArrival{arrival: &t}
}

// Departure returns the timestamp and true when the departure role is set.
func (d DepartureOrArrival) Departure() (FutureTimestamp, bool) {
	if d.departure == nil {
		return FutureTimestamp{}, false
	}
	return *d.departure, true
}

// Arrival returns the timestamp and true when the arrival role is set.
func (d DepartureOrArrival) Arrival() (FutureTimestamp, bool) {
	if d.arrival == nil {
		return FutureTimestamp{}, false
	}
	return *d.arrival, true
}

// IsZero returns true if neither role is set.
func (d DepartureOrArrival) IsZero() bool {
	return d.departure == nil && d.arrival == nil
}

func (d DepartureOrArrival) MarshalJSON() ([]byte, error) {
	switch {
	case d.departure != nil:
		return json.Marshal(map[string]FutureTimestamp{"departure": *d.departure})
	case d.arrival != nil:
		return json.Marshal(map[string]FutureTimestamp{"arrival": *d.arrival})
	default:
		return nil, fmt.Errorf("marshal departure-or-arrival: %w", ErrAmbiguousTimeRole)
	}
}

func (d *DepartureOrArrival) UnmarshalJSON(data []byte) error {
	var raw map[string]FutureTimestamp
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	if len(raw) != 1 {
		return ErrAmbiguousTimeRole
	}
	departure, hasDeparture := raw["departure"]
	arrival, hasArrival := raw["arrival"]
	switch {
	case hasDeparture:
		*d = NewDeparture(departure)
	case hasArrival:
		*d = NewArrival(arrival)
	default:
		return ErrAmbiguousTimeRole
	}
	return nil
}
