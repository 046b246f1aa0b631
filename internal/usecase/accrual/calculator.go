// Package accrual implements the financial calculation core: per-period
// interest, payment ledger totals, due-date scheduling and multi-year
// earnings projection. Every function here is a pure computation over an
// investment snapshot; state and persistence live with the caller.
package accrual

import (
	"github.com/shopspring/decimal"

	"github.com/dferrao/lendtrack-backend/internal/domain"
)

var hundred = decimal.NewFromInt(100)

// InterestPerPeriod derives the simple interest earned in one payment period:
// principal * (annualRate/100) / periodsPerYear
// Interest is computed on the original principal only; received payments
// never reduce the base. No rounding is applied here, rounding for display is
// a presentation concern.
func InterestPerPeriod(inv domain.Investment) decimal.Decimal {
	periods := decimal.NewFromInt(int64(domain.PeriodsPerYear(inv.Frequency)))
	return inv.Principal.Mul(inv.InterestRate).Div(hundred).Div(periods)
}
