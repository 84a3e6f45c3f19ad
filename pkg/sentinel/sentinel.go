package sentinel

import "errors"

// Sentinel errors for infrastructure facts. Stores return these (optionally
// wrapped) so the booking service can translate them into domain errors.
//
// These represent factual states about resources, not validation failures:
// - ErrNotFound: no draft exists for the session
// - ErrUnavailable: the session store is unreachable
//
// For validation and ordering errors, use pkg/domain-errors directly.
var (
	ErrNotFound    = errors.New("not found")
	ErrUnavailable = errors.New("unavailable")
)
