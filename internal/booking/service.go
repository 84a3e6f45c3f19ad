// Package booking orchestrates the progressive assembly of a draft booking.
//
// The state machine itself is pure: every transition is a method on
// domain.Draft that yields a new snapshot or an error without touching
// storage. The service wraps each transition in exactly one load-modify-store
// cycle against the session Store, so the only side-effecting boundary is the
// adapter's Load/Save plus the confirmation publish on finalize.
package booking

import (
	"context"
	"errors"
	"log/slog"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"railbook/internal/booking/confirm"
	"railbook/internal/booking/domain"
	"railbook/internal/platform/metrics"
	dErrors "railbook/pkg/domain-errors"
	"railbook/pkg/requestcontext"
	"railbook/pkg/sentinel"
)

// Service applies single-field mutations to per-session drafts.
type Service struct {
	store     Store
	publisher confirm.Publisher
	logger    *slog.Logger
	metrics   *metrics.Metrics
	tracer    trace.Tracer
}

// NewService wires the booking service.
func NewService(store Store, publisher confirm.Publisher, logger *slog.Logger, m *metrics.Metrics) *Service {
	return &Service{
		store:     store,
		publisher: publisher,
		logger:    logger,
		metrics:   m,
		tracer:    otel.Tracer("railbook/booking"),
	}
}

// InitOrGet returns the session's draft, creating and persisting an empty one
// when none exists yet. Idempotent.
func (s *Service) InitOrGet(ctx context.Context, sessionID string) (domain.Draft, error) {
	ctx, span := s.tracer.Start(ctx, "booking.InitOrGet")
	defer span.End()

	draft, err := s.store.Load(ctx, sessionID)
	if errors.Is(err, sentinel.ErrNotFound) {
		empty := domain.Draft{}
		if err := s.store.Save(ctx, sessionID, empty); err != nil {
			return domain.Draft{}, s.adapterError(ctx, "init draft", err)
		}
		s.metrics.RecordDraftCreated()
		return empty, nil
	}
	if err != nil {
		return domain.Draft{}, s.adapterError(ctx, "load draft", err)
	}
	return draft, nil
}

// SetOrigin sets the origin station, creating the draft when this is the
// session's first mutation.
func (s *Service) SetOrigin(ctx context.Context, sessionID string, origin domain.Location) (domain.Draft, error) {
	return s.update(ctx, sessionID, domain.SlotOrigin, func(d domain.Draft) (domain.Draft, error) {
		return d.WithOrigin(origin)
	})
}

// SetDestination sets the destination station.
func (s *Service) SetDestination(ctx context.Context, sessionID string, destination domain.Location) (domain.Draft, error) {
	return s.update(ctx, sessionID, domain.SlotDestination, func(d domain.Draft) (domain.Draft, error) {
		return d.WithDestination(destination)
	})
}

// SetDeparture records the travel time as a departure constraint.
func (s *Service) SetDeparture(ctx context.Context, sessionID string, t domain.FutureTimestamp) (domain.Draft, error) {
	return s.update(ctx, sessionID, domain.SlotTime, func(d domain.Draft) (domain.Draft, error) {
		return d.WithTime(domain.NewDeparture(t))
	})
}

// SetArrival records the travel time as an arrival constraint.
func (s *Service) SetArrival(ctx context.Context, sessionID string, t domain.FutureTimestamp) (domain.Draft, error) {
	return s.update(ctx, sessionID, domain.SlotTime, func(d domain.Draft) (domain.Draft, error) {
		return d.WithTime(domain.NewArrival(t))
	})
}

// SetTrip captures the chosen trip identifier.
func (s *Service) SetTrip(ctx context.Context, sessionID string, trip domain.TripID) (domain.Draft, error) {
	return s.update(ctx, sessionID, domain.SlotTrip, func(d domain.Draft) (domain.Draft, error) {
		return d.WithTrip(trip)
	})
}

// SetClass sets the travel class.
func (s *Service) SetClass(ctx context.Context, sessionID string, class domain.Class) (domain.Draft, error) {
	return s.update(ctx, sessionID, domain.SlotClass, func(d domain.Draft) (domain.Draft, error) {
		return d.WithClass(class)
	})
}

// SetName sets the passenger name.
func (s *Service) SetName(ctx context.Context, sessionID string, name domain.Name) (domain.Draft, error) {
	return s.update(ctx, sessionID, domain.SlotName, func(d domain.Draft) (domain.Draft, error) {
		return d.WithName(name)
	})
}

// SetEmail sets the contact email.
func (s *Service) SetEmail(ctx context.Context, sessionID string, email domain.Email) (domain.Draft, error) {
	return s.update(ctx, sessionID, domain.SlotEmail, func(d domain.Draft) (domain.Draft, error) {
		return d.WithEmail(email)
	})
}

// SetPhoneNumber sets the contact phone number.
func (s *Service) SetPhoneNumber(ctx context.Context, sessionID string, phone domain.PhoneNumber) (domain.Draft, error) {
	return s.update(ctx, sessionID, domain.SlotPhoneNumber, func(d domain.Draft) (domain.Draft, error) {
		return d.WithPhoneNumber(phone)
	})
}

// ListTrips lists candidate trips for the session's origin, destination and
// time constraint. Read-only; requires those three slots to be present.
func (s *Service) ListTrips(ctx context.Context, sessionID string) ([]domain.Trip, error) {
	ctx, span := s.tracer.Start(ctx, "booking.ListTrips")
	defer span.End()

	draft, err := s.store.Load(ctx, sessionID)
	if errors.Is(err, sentinel.ErrNotFound) {
		return nil, dErrors.New(dErrors.CodeOrdering, "set origin first")
	}
	if err != nil {
		return nil, s.adapterError(ctx, "load draft", err)
	}
	if err := draft.Require(domain.SlotOrigin, domain.SlotDestination, domain.SlotTime); err != nil {
		s.metrics.RecordRejection(string(dErrors.CodeOrdering))
		return nil, err
	}
	trips := domain.ListTrips(*draft.Origin, *draft.Destination, *draft.Time, requestcontext.Now(ctx))
	span.SetAttributes(attribute.Int("booking.trips", len(trips)))
	return trips, nil
}

// Finalize sets the payment slot and emits the booking confirmation. The
// draft is persisted before the confirmation is attempted: a failed publish
// returns a booking error but leaves the finalized draft in place, so
// Finalize is safe to retry.
func (s *Service) Finalize(ctx context.Context, sessionID string, payment domain.PaymentInfo) (domain.Draft, error) {
	ctx, span := s.tracer.Start(ctx, "booking.Finalize")
	defer span.End()

	draft, err := s.update(ctx, sessionID, domain.SlotPayment, func(d domain.Draft) (domain.Draft, error) {
		return d.WithPaymentInfo(payment)
	})
	if err != nil {
		return domain.Draft{}, err
	}

	confirmation := confirm.Confirmation{
		SessionID:   sessionID,
		TripID:      draft.Trip.String(),
		Origin:      draft.Origin.String(),
		Destination: draft.Destination.String(),
		Class:       draft.Class.String(),
		Name:        draft.Name.String(),
		Email:       draft.Email.String(),
		PhoneNumber: draft.PhoneNumber.String(),
		BookedAt:    requestcontext.Now(ctx),
	}
	if err := s.publisher.Publish(ctx, confirmation); err != nil {
		s.metrics.RecordConfirmFailure()
		s.logger.ErrorContext(ctx, "booking confirmation failed",
			"session_id", sessionID,
			"trip_id", confirmation.TripID,
			"error", err.Error(),
		)
		return domain.Draft{}, dErrors.Wrap(dErrors.CodeBooking, "booking confirmation failed, retry finalize", err)
	}
	s.metrics.RecordBookingConfirmed()
	s.logger.InfoContext(ctx, "booking finalized",
		"session_id", sessionID,
		"trip_id", confirmation.TripID,
	)
	return draft, nil
}

// update runs one load-modify-store cycle. A session without a draft starts
// from the empty draft; the slot-ordering check inside apply then rejects
// everything but the first slot, and nothing is persisted on rejection.
func (s *Service) update(ctx context.Context, sessionID string, slot domain.Slot, apply func(domain.Draft) (domain.Draft, error)) (domain.Draft, error) {
	ctx, span := s.tracer.Start(ctx, "booking.SetSlot",
		trace.WithAttributes(attribute.String("booking.slot", slot.String())))
	defer span.End()

	draft, err := s.store.Load(ctx, sessionID)
	created := false
	if errors.Is(err, sentinel.ErrNotFound) {
		draft = domain.Draft{}
		created = true
	} else if err != nil {
		return domain.Draft{}, s.adapterError(ctx, "load draft", err)
	}

	next, err := apply(draft)
	if err != nil {
		s.metrics.RecordRejection(string(dErrors.CodeOf(err)))
		return domain.Draft{}, err
	}
	if err := s.store.Save(ctx, sessionID, next); err != nil {
		return domain.Draft{}, s.adapterError(ctx, "save draft", err)
	}
	if created {
		s.metrics.RecordDraftCreated()
	}
	s.metrics.RecordSlotSet(slot.String())
	return next, nil
}

// adapterError logs a store failure and converts it to an opaque internal
// error. The store's own detail stays out of anything user-visible.
func (s *Service) adapterError(ctx context.Context, op string, err error) error {
	s.logger.ErrorContext(ctx, "session store failure",
		"op", op,
		"session_id", requestcontext.SessionID(ctx),
		"error", err.Error(),
	)
	return dErrors.Wrap(dErrors.CodeInternal, "session store unavailable", err)
}
