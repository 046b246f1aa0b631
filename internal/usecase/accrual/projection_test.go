package accrual

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/dferrao/lendtrack-backend/internal/domain"
)

func TestProjectEarnings_OneYearMonthly(t *testing.T) {
	inv := testInvestment(domain.FrequencyMonthly) // 12000 at 12%
	now := date(2026, time.August, 31)

	projections := ProjectEarnings(inv, 1, now)

	assert.Len(t, projections, 1)
	assert.Equal(t, 2027, projections[0].Year)
	assert.True(t, projections[0].Earnings.Equal(decimal.NewFromInt(1440)),
		"got %s", projections[0].Earnings)
}

func TestProjectEarnings_FrequencyIndependentAnnualTotals(t *testing.T) {
	// Frequency splits the year into periods but never changes the annual
	// total, since interest does not compound.
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

			projections := ProjectEarnings(inv, 3, now)

			assert.Len(t, projections, 3)
			for i, p := range projections {
				expected := decimal.NewFromInt(1440 * int64(i+1))
				assert.Equal(t, now.Year()+i+1, p.Year)
				assert.True(t, p.Earnings.Equal(expected),
					"year %d: expected %s, got %s", p.Year, expected, p.Earnings)
			}
		})
	}
}

func TestProjectEarnings_LengthMatchesHorizon(t *testing.T) {
	inv := testInvestment(domain.FrequencyQuarterly)
	now := date(2026, time.August, 31)

	for _, years := range []int{1, 5, 10} {
		assert.Len(t, ProjectEarnings(inv, years, now), years)
	}
}

func TestProjectEarnings_ClosedInvestmentIsEmpty(t *testing.T) {
	inv := testInvestment(domain.FrequencyMonthly)
	inv.Status = domain.StatusClosed

	projections := ProjectEarnings(inv, 5, date(2026, time.August, 31))

	assert.Empty(t, projections)
}

func TestProjectEarnings_NonPositiveHorizonIsEmpty(t *testing.T) {
	inv := testInvestment(domain.FrequencyMonthly)
	now := date(2026, time.August, 31)

	assert.Empty(t, ProjectEarnings(inv, 0, now))
	assert.Empty(t, ProjectEarnings(inv, -3, now))
}
