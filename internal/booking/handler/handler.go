package handler

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"railbook/internal/booking/domain"
	"railbook/internal/platform/metrics"
	"railbook/internal/platform/middleware"
	dErrors "railbook/pkg/domain-errors"
	"railbook/pkg/requestcontext"
)

// Service defines the booking operations the HTTP layer depends on.
type Service interface {
	InitOrGet(ctx context.Context, sessionID string) (domain.Draft, error)
	SetOrigin(ctx context.Context, sessionID string, origin domain.Location) (domain.Draft, error)
	SetDestination(ctx context.Context, sessionID string, destination domain.Location) (domain.Draft, error)
	SetDeparture(ctx context.Context, sessionID string, t domain.FutureTimestamp) (domain.Draft, error)
	SetArrival(ctx context.Context, sessionID string, t domain.FutureTimestamp) (domain.Draft, error)
	SetTrip(ctx context.Context, sessionID string, trip domain.TripID) (domain.Draft, error)
	SetClass(ctx context.Context, sessionID string, class domain.Class) (domain.Draft, error)
	SetName(ctx context.Context, sessionID string, name domain.Name) (domain.Draft, error)
	SetEmail(ctx context.Context, sessionID string, email domain.Email) (domain.Draft, error)
	SetPhoneNumber(ctx context.Context, sessionID string, phone domain.PhoneNumber) (domain.Draft, error)
	ListTrips(ctx context.Context, sessionID string) ([]domain.Trip, error)
	Finalize(ctx context.Context, sessionID string, payment domain.PaymentInfo) (domain.Draft, error)
}

// Handler is the thin HTTP layer over the booking service. It decodes one
// validated field per request and delegates; no business logic lives here.
type Handler struct {
	logger  *slog.Logger
	booking Service
	metrics *metrics.Metrics
}

// New creates a booking Handler.
func New(booking Service, logger *slog.Logger, m *metrics.Metrics) *Handler {
	return &Handler{
		logger:  logger,
		booking: booking,
		metrics: m,
	}
}

// Register registers the booking routes with the chi router.
func (h *Handler) Register(r chi.Router) {
	bookingRouter := chi.NewRouter()
	bookingRouter.Use(middleware.Recovery(h.logger))
	bookingRouter.Use(middleware.RequestID)
	bookingRouter.Use(middleware.Session)
	bookingRouter.Use(middleware.Logger(h.logger))
	bookingRouter.Use(middleware.Timeout(30 * time.Second))
	bookingRouter.Use(middleware.ContentTypeJSON)
	bookingRouter.Use(middleware.Latency(h.metrics))

	bookingRouter.Get("/draft", h.handleGetDraft)
	bookingRouter.Post("/origin", h.handleSetOrigin)
	bookingRouter.Post("/destination", h.handleSetDestination)
	bookingRouter.Post("/departure", h.handleSetDeparture)
	bookingRouter.Post("/arrival", h.handleSetArrival)
	bookingRouter.Get("/trips", h.handleListTrips)
	bookingRouter.Post("/trip", h.handleSetTrip)
	bookingRouter.Post("/class", h.handleSetClass)
	bookingRouter.Post("/name", h.handleSetName)
	bookingRouter.Post("/email", h.handleSetEmail)
	bookingRouter.Post("/phone_number", h.handleSetPhoneNumber)
	bookingRouter.Post("/book_trip", h.handleBookTrip)

	r.Mount("/", bookingRouter)
}

func (h *Handler) handleGetDraft(w http.ResponseWriter, r *http.Request) {
	sessionID, ok := h.session(w, r)
	if !ok {
		return
	}
	draft, err := h.booking.InitOrGet(r.Context(), sessionID)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, draft)
}

func (h *Handler) handleSetOrigin(w http.ResponseWriter, r *http.Request) {
	sessionID, ok := h.session(w, r)
	if !ok {
		return
	}
	var origin domain.Location
	if !h.decode(w, r, "origin", &origin) {
		return
	}
	draft, err := h.booking.SetOrigin(r.Context(), sessionID, origin)
	h.respond(w, r, draft, err)
}

func (h *Handler) handleSetDestination(w http.ResponseWriter, r *http.Request) {
	sessionID, ok := h.session(w, r)
	if !ok {
		return
	}
	var destination domain.Location
	if !h.decode(w, r, "destination", &destination) {
		return
	}
	draft, err := h.booking.SetDestination(r.Context(), sessionID, destination)
	h.respond(w, r, draft, err)
}

func (h *Handler) handleSetDeparture(w http.ResponseWriter, r *http.Request) {
	sessionID, ok := h.session(w, r)
	if !ok {
		return
	}
	var departure domain.FutureTimestamp
	if !h.decode(w, r, "departure", &departure) {
		return
	}
	draft, err := h.booking.SetDeparture(r.Context(), sessionID, departure)
	h.respond(w, r, draft, err)
}

func (h *Handler) handleSetArrival(w http.ResponseWriter, r *http.Request) {
	sessionID, ok := h.session(w, r)
	if !ok {
		return
	}
	var arrival domain.FutureTimestamp
	if !h.decode(w, r, "arrival", &arrival) {
		return
	}
	draft, err := h.booking.SetArrival(r.Context(), sessionID, arrival)
	h.respond(w, r, draft, err)
}

func (h *Handler) handleListTrips(w http.ResponseWriter, r *http.Request) {
	sessionID, ok := h.session(w, r)
	if !ok {
		return
	}
	trips, err := h.booking.ListTrips(r.Context(), sessionID)
	if err != nil {
		h.logRejection(r, "list trips", err)
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, trips)
}

func (h *Handler) handleSetTrip(w http.ResponseWriter, r *http.Request) {
	sessionID, ok := h.session(w, r)
	if !ok {
		return
	}
	var trip domain.TripID
	if !h.decode(w, r, "trip", &trip) {
		return
	}
	draft, err := h.booking.SetTrip(r.Context(), sessionID, trip)
	h.respond(w, r, draft, err)
}

func (h *Handler) handleSetClass(w http.ResponseWriter, r *http.Request) {
	sessionID, ok := h.session(w, r)
	if !ok {
		return
	}
	var class domain.Class
	if !h.decode(w, r, "class", &class) {
		return
	}
	draft, err := h.booking.SetClass(r.Context(), sessionID, class)
	h.respond(w, r, draft, err)
}

func (h *Handler) handleSetName(w http.ResponseWriter, r *http.Request) {
	sessionID, ok := h.session(w, r)
	if !ok {
		return
	}
	var name domain.Name
	if !h.decode(w, r, "name", &name) {
		return
	}
	draft, err := h.booking.SetName(r.Context(), sessionID, name)
	h.respond(w, r, draft, err)
}

func (h *Handler) handleSetEmail(w http.ResponseWriter, r *http.Request) {
	sessionID, ok := h.session(w, r)
	if !ok {
		return
	}
	var email domain.Email
	if !h.decode(w, r, "email", &email) {
		return
	}
	draft, err := h.booking.SetEmail(r.Context(), sessionID, email)
	h.respond(w, r, draft, err)
}

func (h *Handler) handleSetPhoneNumber(w http.ResponseWriter, r *http.Request) {
	sessionID, ok := h.session(w, r)
	if !ok {
		return
	}
	var phone domain.PhoneNumber
	if !h.decode(w, r, "phone_number", &phone) {
		return
	}
	draft, err := h.booking.SetPhoneNumber(r.Context(), sessionID, phone)
	h.respond(w, r, draft, err)
}

func (h *Handler) handleBookTrip(w http.ResponseWriter, r *http.Request) {
	sessionID, ok := h.session(w, r)
	if !ok {
		return
	}
	var payment domain.PaymentInfo
	if !h.decode(w, r, "payment_info", &payment) {
		return
	}
	draft, err := h.booking.Finalize(r.Context(), sessionID, payment)
	h.respond(w, r, draft, err)
}

// session extracts the session id the middleware put in context.
func (h *Handler) session(w http.ResponseWriter, r *http.Request) (string, bool) {
	sessionID := requestcontext.SessionID(r.Context())
	if sessionID == "" {
		// Should never happen if the Session middleware is mounted.
		h.logger.ErrorContext(r.Context(), "session id missing from context despite session middleware",
			"request_id", requestcontext.RequestID(r.Context()),
		)
		writeError(w, dErrors.New(dErrors.CodeInternal, "session context error"))
		return "", false
	}
	return sessionID, true
}

// decode unmarshals one field value, running the type's validation. The
// error message names the field but never echoes the submitted value.
func (h *Handler) decode(w http.ResponseWriter, r *http.Request, field string, v any) bool {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		h.logger.WarnContext(r.Context(), "invalid field value",
			"field", field,
			"request_id", requestcontext.RequestID(r.Context()),
			"error", err.Error(),
		)
		h.metrics.RecordRejection(string(dErrors.CodeValidation))
		writeError(w, dErrors.Wrap(dErrors.CodeValidation, fmt.Sprintf("invalid %s", field), err))
		return false
	}
	return true
}

func (h *Handler) respond(w http.ResponseWriter, r *http.Request, draft domain.Draft, err error) {
	if err != nil {
		h.logRejection(r, "set field", err)
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, draft)
}

func (h *Handler) logRejection(r *http.Request, op string, err error) {
	code := dErrors.CodeOf(err)
	if code == dErrors.CodeInternal || code == dErrors.CodeBooking {
		h.logger.ErrorContext(r.Context(), op+" failed",
			"request_id", requestcontext.RequestID(r.Context()),
			"error", err.Error(),
		)
		return
	}
	h.logger.WarnContext(r.Context(), op+" rejected",
		"request_id", requestcontext.RequestID(r.Context()),
		"error", err.Error(),
	)
}
