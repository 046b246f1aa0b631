package domain

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Frequency represents how often an interest payment is expected
type Frequency string

const (
	FrequencyMonthly    Frequency = "monthly"
	FrequencyQuarterly  Frequency = "quarterly"
	FrequencyHalfYearly Frequency = "half-yearly"
	FrequencyYearly     Frequency = "yearly"
)

// PeriodsPerYear maps a frequency to its number of interest periods per year
// Fixed mapping: monthly=12, quarterly=4, half-yearly=2, yearly=1
// Every value evenly divides 12, which keeps month-based rollover arithmetic exact.
// An unrecognized frequency indicates a broken invariant elsewhere in the system,
// so this fails loudly instead of defaulting silently.
func PeriodsPerYear(f Frequency) int {
	switch f {
	case FrequencyMonthly:
		return 12
	case FrequencyQuarterly:
		return 4
	case FrequencyHalfYearly:
		return 2
	case FrequencyYearly:
		return 1
	default:
		panic(fmt.Sprintf("unknown interest frequency: %q", f))
	}
}

// Status represents the lifecycle state of an investment
type Status string

const (
	StatusActive Status = "active"
	StatusClosed Status = "closed"
)

// Payment represents a single received payment in an investment's ledger
// Payments are immutable once created and are never edited or removed
type Payment struct {
	ID     uuid.UUID
	Date   time.Time       // Calendar date, no meaningful time component
	Amount decimal.Decimal // Always positive
}

// Investment represents an informal lending/investment position
// Principal and InterestRate are fixed at creation; received payments do not
// reduce the principal used for interest calculations (simple interest).
type Investment struct {
	ID           uuid.UUID
	Name         string
	Principal    decimal.Decimal
	InterestRate decimal.Decimal // Annual percentage
	Frequency    Frequency
	StartDate    time.Time
	Payments     []Payment // Insertion order, not necessarily chronological
	Status       Status
}

// Validate ensures the investment adheres to domain rules
// Returns an error if validation fails
func (inv *Investment) Validate() error {
	if inv.Name == "" {
		return errors.New("investment name cannot be empty")
	}

	if inv.Principal.LessThanOrEqual(decimal.Zero) {
		return errors.New("principal must be positive")
	}

	if inv.InterestRate.LessThanOrEqual(decimal.Zero) {
		return errors.New("interest rate must be positive")
	}

	switch inv.Frequency {
	case FrequencyMonthly, FrequencyQuarterly, FrequencyHalfYearly, FrequencyYearly:
		// Recognized frequency
	default:
		return errors.New("frequency must be monthly, quarterly, half-yearly or yearly")
	}

	if inv.StartDate.IsZero() {
		return errors.New("start date is required")
	}

	return nil
}

// Clone returns a deep copy of the investment
// The payments slice is copied so a new portfolio value never shares ledger
// backing arrays with the original.
func (inv Investment) Clone() Investment {
	out := inv
	out.Payments = make([]Payment, len(inv.Payments))
	copy(out.Payments, inv.Payments)
	return out
}
