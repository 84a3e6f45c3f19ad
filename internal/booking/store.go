package booking

import (
	"context"

	"railbook/internal/booking/domain"
)

// Store is the session adapter contract: session-keyed load/store of a draft.
// Every service operation performs exactly one load-modify-store cycle
// against it; the store must not tear reads or writes of a draft, and
// last-write-wins between operations is acceptable.
//
// Load returns sentinel.ErrNotFound (possibly wrapped) when no draft exists
// for the session. Drafts are passed and returned by value: the service never
// mutates a stored draft through an alias, and implementations must not hand
// out shared state.
type Store interface {
	Load(ctx context.Context, sessionID string) (domain.Draft, error)
	Save(ctx context.Context, sessionID string, draft domain.Draft) error
}
