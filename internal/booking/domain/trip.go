package domain

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

// TripID is an opaque trip identifier. The catalog generates them; callers
// only ever echo back a value a previous listing returned.
type TripID struct {
	value uuid.UUID
}

// NewTripID generates a fresh trip identifier.
func NewTripID() TripID {
	return TripID{value: uuid.New()}
}

// ParseTripID parses an identifier previously returned by the catalog.
func ParseTripID(value string) (TripID, error) {
	id, err := uuid.Parse(value)
	if err != nil {
		return TripID{}, err
	}
	return TripID{value: id}, nil
}

// String returns the canonical identifier form.
func (t TripID) String() string {
	return t.value.String()
}

// IsZero returns true if this is the zero value.
func (t TripID) IsZero() bool {
	return t.value == uuid.Nil
}

func (t TripID) MarshalJSON() ([]byte, error) {
	return json.Marshal(t.value.String())
}

func (t *TripID) UnmarshalJSON(data []byte) error {
	var raw string
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	parsed, err := ParseTripID(raw)
	if err != nil {
		return err
	}
	*t = parsed
	return nil
}

// Trip is one bookable journey. Trips are ephemeral query results: the
// catalog generates them on demand and only the identifier of a chosen trip
// is captured into the draft.
type Trip struct {
	ID          TripID    `json:"id"`
	Origin      Location  `json:"origin"`
	Destination Location  `json:"destination"`
	Departure   time.Time `json:"departure"`
	Arrival     time.Time `json:"arrival"`
}

const (
	// maxTrips caps how many candidates one listing returns.
	maxTrips = 10
	// tripDuration is the fixed journey time of every candidate.
	tripDuration = 2 * time.Hour
	// tripSpacing separates consecutive candidate departures.
	tripSpacing = time.Hour
)

// ListTrips produces candidate trips between origin and destination matching
// the time constraint, evaluated against now.
//
// The schedule geometry is deterministic relative to the constraint: the
// anchor departure is the requested departure time, or the requested arrival
// minus the journey duration; candidate i departs anchor + i hours and
// arrives two hours later. Candidates not strictly after now are dropped and
// at most ten are returned. Identifiers are fresh on every call, so repeating
// a query yields the same schedule but new identifiers.
func ListTrips(origin, destination Location, constraint DepartureOrArrival, now time.Time) []Trip {
	var anchor time.Time
	if departure, ok := constraint.Departure(); ok {
		anchor = departure.Time()
	} else if arrival, ok := constraint.Arrival(); ok {
		anchor = arrival.Time().Add(-tripDuration)
	} else {
		return nil
	}

	trips := make([]Trip, 0, maxTrips)
	for i := 0; len(trips) < maxTrips; i++ {
		departure := anchor.Add(time.Duration(i) * tripSpacing)
		if !departure.After(now) {
			continue
		}
		trips = append(trips, Trip{
			ID:          NewTripID(),
			Origin:      origin,
			Destination: destination,
			Departure:   departure,
			Arrival:     departure.Add(tripDuration),
		})
	}
	return trips
}
