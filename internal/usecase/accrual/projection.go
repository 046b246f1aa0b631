package accrual

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/dferrao/lendtrack-backend/internal/domain"
)

// YearlyEarnings is one row of a cumulative earnings forecast
type YearlyEarnings struct {
	Year     int             `json:"year"`
	Earnings decimal.Decimal `json:"earnings"`
}

// ProjectEarnings forecasts cumulative simple-interest earnings for each of
// the next `years` calendar years. Closed investments and non-positive
// horizons yield an empty forecast.
//
// For year i the cumulative figure is interestPerPeriod * periodsPerYear * i,
// which reduces to principal * rate/100 * i: the frequency changes the
// per-period amount but never the annual total, since interest does not
// compound.
func ProjectEarnings(inv domain.Investment, years int, now time.Time) []YearlyEarnings {
	if inv.Status == domain.StatusClosed || years <= 0 {
		return []YearlyEarnings{}
	}

	perPeriod := InterestPerPeriod(inv)
	periods := decimal.NewFromInt(int64(domain.PeriodsPerYear(inv.Frequency)))

	out := make([]YearlyEarnings, 0, years)
	for i := 1; i <= years; i++ {
		cumulative := perPeriod.Mul(periods).Mul(decimal.NewFromInt(int64(i)))
		out = append(out, YearlyEarnings{
			Year:     now.Year() + i,
			Earnings: cumulative,
		})
	}

	return out
}
