package accrual

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/dferrao/lendtrack-backend/internal/domain"
)

func TestNextPaymentDate_ClosedReturnsStartDateSentinel(t *testing.T) {
	inv := testInvestment(domain.FrequencyMonthly)
	inv.Status = domain.StatusClosed
	inv.Payments = []domain.Payment{
		payment(date(2024, time.February, 15), 120),
	}

	next := NextPaymentDate(inv, date(2024, time.June, 1))

	// The start date is a "no next payment" marker, not a real due date
	assert.Equal(t, inv.StartDate, next)
}

func TestNextPaymentDate_EmptyLedger(t *testing.T) {
	tests := []struct {
		name      string
		frequency domain.Frequency
		expected  time.Time
	}{
		{"Monthly", domain.FrequencyMonthly, date(2024, time.February, 15)},
		{"Quarterly", domain.FrequencyQuarterly, date(2024, time.April, 15)},
		{"HalfYearly", domain.FrequencyHalfYearly, date(2024, time.July, 15)},
		{"Yearly", domain.FrequencyYearly, date(2025, time.January, 15)},
	}

	now := date(2024, time.January, 20)

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			inv := testInvestment(tt.frequency) // starts 2024-01-15

			next := NextPaymentDate(inv, now)

			assert.Equal(t, tt.expected, next)
		})
	}
}

func TestNextPaymentDate_EmptyLedgerCanBeInThePast(t *testing.T) {
	// Documented asymmetry: with no logged payments the first due date is
	// start + one period, with no forward-rolling. An old never-paid-on
	// investment therefore reports a past due date.
	inv := testInvestment(domain.FrequencyMonthly) // starts 2024-01-15
	now := date(2025, time.June, 1)

	next := NextPaymentDate(inv, now)

	assert.Equal(t, date(2024, time.February, 15), next)
	assert.True(t, next.Before(now))
}

func TestNextPaymentDate_AnchorsOnLatestPayment(t *testing.T) {
	inv := testInvestment(domain.FrequencyMonthly)
	inv.Payments = []domain.Payment{
		payment(date(2024, time.March, 10), 120),
	}
	now := date(2024, time.March, 20)

	next := NextPaymentDate(inv, now)

	assert.Equal(t, date(2024, time.April, 10), next)
}

func TestNextPaymentDate_RollsForwardPastNow(t *testing.T) {
	// The anchor plus one period lies well in the past; the scheduler keeps
	// adding periods until the date is no longer strictly before now.
	inv := testInvestment(domain.FrequencyQuarterly)
	inv.Payments = []domain.Payment{
		payment(date(2023, time.January, 10), 360),
	}
	now := date(2024, time.March, 20)

	next := NextPaymentDate(inv, now)

	assert.Equal(t, date(2024, time.April, 10), next)
	assert.False(t, next.Before(now))
}

func TestNextPaymentDate_NeverBeforeNowWithNonEmptyLedger(t *testing.T) {
	frequencies := []domain.Frequency{
		domain.FrequencyMonthly,
		domain.FrequencyQuarterly,
		domain.FrequencyHalfYearly,
		domain.FrequencyYearly,
	}
	now := date(2026, time.August, 31)

	for _, f := range frequencies {
		t.Run(string(f), func(t *testing.T) {
			inv := testInvestment(f)
			inv.Payments = []domain.Payment{
				payment(date(2020, time.May, 3), 100),
			}

			next := NextPaymentDate(inv, now)

			assert.False(t, next.Before(now))
		})
	}
}

func TestNextPaymentDate_UsesLatestDateByValue(t *testing.T) {
	// Out-of-order ledger: the anchor is the maximum date, not the last entry
	inv := testInvestment(domain.FrequencyMonthly)
	inv.Payments = []domain.Payment{
		payment(date(2024, time.June, 1), 120),
		payment(date(2024, time.January, 1), 120),
		payment(date(2024, time.September, 1), 120),
	}
	now := date(2024, time.September, 15)

	next := NextPaymentDate(inv, now)

	assert.Equal(t, date(2024, time.October, 1), next)
}

func TestNextPaymentDate_EndOfMonthNormalization(t *testing.T) {
	// AddDate resolves day-of-month overflow by rolling into the next month:
	// Jan 31 + 1 month normalizes to Mar 3 in a non-leap February.
	inv := testInvestment(domain.FrequencyMonthly)
	inv.Payments = []domain.Payment{
		payment(date(2025, time.January, 31), 120),
	}
	now := date(2025, time.February, 1)

	next := NextPaymentDate(inv, now)

	assert.Equal(t, date(2025, time.March, 3), next)
}
