package portfolio

import (
	"time"

	"github.com/google/uuid"
)

// SystemClock reads the wall clock
type SystemClock struct{}

// Now returns the current moment
func (SystemClock) Now() time.Time { return time.Now() }

// UUIDGenerator issues random version-4 identities
type UUIDGenerator struct{}

// NewID returns a fresh identity
func (UUIDGenerator) NewID() uuid.UUID { return uuid.New() }
