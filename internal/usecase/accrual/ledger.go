package accrual

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/dferrao/lendtrack-backend/internal/domain"
)

// TotalPaid sums every payment amount in the investment's ledger
// Returns zero for an empty ledger.
func TotalPaid(inv domain.Investment) decimal.Decimal {
	total := decimal.Zero
	for _, p := range inv.Payments {
		total = total.Add(p.Amount)
	}
	return total
}

// OutstandingBalance is principal minus total cash received
// This is a simplified balance: it deliberately ignores accrued interest.
func OutstandingBalance(inv domain.Investment) decimal.Decimal {
	return inv.Principal.Sub(TotalPaid(inv))
}

// LatestPaymentDate returns the maximum payment date by value
// The ledger keeps insertion order, so entries appended out of chronological
// order are expected. With equal dates any of the maximum records may win;
// only the date value is used downstream.
func LatestPaymentDate(payments []domain.Payment) time.Time {
	var latest time.Time
	for _, p := range payments {
		if p.Date.After(latest) {
			latest = p.Date
		}
	}
	return latest
}
