// Package reminder runs the scheduled job that surfaces upcoming expected
// payments. It is a read-only consumer of the accrual engine: it never
// mutates the portfolio.
package reminder

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/dferrao/lendtrack-backend/internal/domain"
	"github.com/dferrao/lendtrack-backend/internal/usecase/accrual"
)

// PortfolioReader supplies the current portfolio snapshot
type PortfolioReader interface {
	Snapshot(ctx context.Context) domain.Portfolio
}

// Notice describes one upcoming expected payment
type Notice struct {
	InvestmentID uuid.UUID
	Name         string
	DueDate      time.Time
	Expected     decimal.Decimal // interest expected for the period
}

// Job scans the portfolio for active investments whose next expected payment
// falls within the configured window
type Job struct {
	portfolio PortfolioReader
	clock     domain.Clock
	window    time.Duration
	logger    *slog.Logger
}

// NewJob creates a reminder job with a window of the given number of days
func NewJob(portfolio PortfolioReader, clock domain.Clock, windowDays int, logger *slog.Logger) *Job {
	return &Job{
		portfolio: portfolio,
		clock:     clock,
		window:    time.Duration(windowDays) * 24 * time.Hour,
		logger:    logger,
	}
}

// Upcoming returns the notices due within the window as of now
// Investments whose computed due date already lies in the past are included:
// a never-paid-on position reports a past first due date, and that is exactly
// what a reminder should surface.
func (j *Job) Upcoming(ctx context.Context, now time.Time) []Notice {
	cutoff := now.Add(j.window)

	notices := make([]Notice, 0)
	for _, inv := range j.portfolio.Snapshot(ctx) {
		if inv.Status != domain.StatusActive {
			continue
		}

		due := accrual.NextPaymentDate(inv, now)
		if due.After(cutoff) {
			continue
		}

		notices = append(notices, Notice{
			InvestmentID: inv.ID,
			Name:         inv.Name,
			DueDate:      due,
			Expected:     accrual.InterestPerPeriod(inv),
		})
	}

	return notices
}

// Run executes one scan and logs every notice found
func (j *Job) Run() {
	ctx := context.Background()
	now := j.clock.Now()

	notices := j.Upcoming(ctx, now)
	for _, n := range notices {
		j.logger.Info("payment due soon",
			"investment_id", n.InvestmentID.String(),
			"name", n.Name,
			"due_date", n.DueDate.Format("2006-01-02"),
			"expected_amount", n.Expected.String(),
		)
	}

	j.logger.Info("reminder scan finished", "notices", len(notices))
}
