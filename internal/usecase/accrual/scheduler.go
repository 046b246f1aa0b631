package accrual

import (
	"time"

	"github.com/dferrao/lendtrack-backend/internal/domain"
)

// NextPaymentDate computes the next date a payment is expected for an active
// investment. For a closed investment it returns the start date as a
// "no next payment" sentinel; callers must check status before treating the
// result as a real due date.
//
// With an empty ledger the first due date is the start date plus one period,
// returned as-is: for an old investment with no logged payments it can
// legitimately fall in the past, and the scheduler does not self-correct.
// With a non-empty ledger the anchor is the latest payment date by value,
// advanced one period at a time until it is no longer strictly before now.
// The loop terminates because each step strictly increases the date while
// now stays fixed.
//
// Month arithmetic uses AddDate in both branches, so day-of-month overflow
// resolves with the same normalization everywhere (Jan 31 + 1 month rolls
// into early March).
func NextPaymentDate(inv domain.Investment, now time.Time) time.Time {
	if inv.Status == domain.StatusClosed {
		return inv.StartDate
	}

	monthsPerPeriod := 12 / domain.PeriodsPerYear(inv.Frequency)

	if len(inv.Payments) == 0 {
		return inv.StartDate.AddDate(0, monthsPerPeriod, 0)
	}

	next := LatestPaymentDate(inv.Payments).AddDate(0, monthsPerPeriod, 0)
	for next.Before(now) {
		next = next.AddDate(0, monthsPerPeriod, 0)
	}

	return next
}
