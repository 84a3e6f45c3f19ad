// Package confirm emits booking confirmation records once a draft is
// finalized. The booking service treats the publisher as an external
// collaborator: a failed publish surfaces as a booking error while the
// finalized draft stays persisted, so finalize is safe to retry. Delivery is
// therefore at-least-once and consumers must dedupe on session id.
package confirm

import (
	"context"
	"log/slog"
	"time"
)

// Confirmation is the record emitted for a finalized booking. It carries
// everything a downstream fulfilment system needs and deliberately has no
// field for the payment token.
type Confirmation struct {
	SessionID   string    `json:"session_id"`
	TripID      string    `json:"trip_id"`
	Origin      string    `json:"origin"`
	Destination string    `json:"destination"`
	Class       string    `json:"class"`
	Name        string    `json:"name"`
	Email       string    `json:"email"`
	PhoneNumber string    `json:"phone_number"`
	BookedAt    time.Time `json:"booked_at"`
}

// Publisher emits confirmation records.
type Publisher interface {
	Publish(ctx context.Context, c Confirmation) error
}

// LogPublisher writes confirmations to the structured log. The default sink
// when no broker is configured.
type LogPublisher struct {
	logger *slog.Logger
}

func NewLogPublisher(logger *slog.Logger) *LogPublisher {
	return &LogPublisher{logger: logger}
}

func (p *LogPublisher) Publish(ctx context.Context, c Confirmation) error {
	p.logger.InfoContext(ctx, "booking confirmed",
		"session_id", c.SessionID,
		"trip_id", c.TripID,
		"origin", c.Origin,
		"destination", c.Destination,
		"class", c.Class,
		"booked_at", c.BookedAt,
	)
	return nil
}
