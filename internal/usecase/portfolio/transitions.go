// Package portfolio implements the investment lifecycle: pure transition
// functions over an immutable portfolio value, and a service that loads the
// collection at startup, applies transitions and persists the result.
package portfolio

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/dferrao/lendtrack-backend/internal/domain"
)

// The transitions below are pure functions (Portfolio, args) -> Portfolio.
// They never mutate the input collection. Operations targeting an identity
// absent from the collection return an unchanged portfolio rather than an
// error; callers who care about existence check it themselves.

// Add appends an investment to the portfolio
func Add(p domain.Portfolio, inv domain.Investment) domain.Portfolio {
	out := p.Clone()
	return append(out, inv.Clone())
}

// Update replaces an investment wholesale, matched by ID
// Identity is preserved by construction; payments and status carry whatever
// the replacement contains. An unknown ID leaves the portfolio unchanged.
func Update(p domain.Portfolio, replacement domain.Investment) domain.Portfolio {
	out := p.Clone()
	for i := range out {
		if out[i].ID == replacement.ID {
			out[i] = replacement.Clone()
		}
	}
	return out
}

// LogPayment appends a payment to the investment's ledger
// A non-positive amount is a no-op: pre-validating input is the caller's job,
// the engine just never appends an invalid entry. An unknown ID is also a
// no-op.
func LogPayment(p domain.Portfolio, investmentID uuid.UUID, payment domain.Payment) domain.Portfolio {
	if payment.Amount.LessThanOrEqual(decimal.Zero) {
		return p
	}

	out := p.Clone()
	for i := range out {
		if out[i].ID == investmentID {
			out[i].Payments = append(out[i].Payments, payment)
		}
	}
	return out
}

// Close marks an investment closed
// Closed is terminal: re-closing yields the same state. An unknown ID is a
// no-op.
func Close(p domain.Portfolio, investmentID uuid.UUID) domain.Portfolio {
	out := p.Clone()
	for i := range out {
		if out[i].ID == investmentID {
			out[i].Status = domain.StatusClosed
		}
	}
	return out
}
