package domain

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// PortfolioStore defines the interface for durable portfolio persistence
// The portfolio is persisted as a whole snapshot: the store never observes a
// partial collection.
type PortfolioStore interface {
	// Load retrieves the persisted portfolio
	// Malformed persisted data degrades to an empty portfolio; only I/O
	// failures surface as errors.
	Load(ctx context.Context) (Portfolio, error)

	// Save persists the full portfolio snapshot
	// Persistence is best-effort from the caller's point of view: failures
	// are logged and non-fatal.
	Save(ctx context.Context, p Portfolio) error
}

// Clock supplies the current moment
// Injectable so the due-date rollover loop and default payment dates are
// deterministic under test.
type Clock interface {
	Now() time.Time
}

// IDGenerator supplies fresh unique identities for investments and payments
// The engine treats identities as opaque.
type IDGenerator interface {
	NewID() uuid.UUID
}
