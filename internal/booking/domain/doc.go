// Package domain holds the booking domain model: the validated value types a
// draft booking is assembled from, the draft itself with its slot-ordering
// rules, and the trip catalog generator.
//
// Every value type keeps its representation private and is obtainable only
// through its validating constructor or a successful JSON unmarshal, which
// runs the same validation. Invalid wire data fails to decode, never silently
// coerces.
//
// Domain purity: this package performs no I/O and takes time as a parameter
// wherever the current time matters, with one documented exception: the
// FutureTimestamp constructor checks against the clock at construction time,
// so a request can race the clock near the boundary. That non-determinism is
// part of the observable contract and is deliberately not smoothed over.
package domain
