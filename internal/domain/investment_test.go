package domain

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func validInvestment() Investment {
	return Investment{
		ID:           uuid.New(),
		Name:         "Lending to Friend",
		Principal:    decimal.NewFromInt(5000),
		InterestRate: decimal.NewFromInt(8),
		Frequency:    FrequencyQuarterly,
		StartDate:    time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC),
		Payments:     []Payment{},
		Status:       StatusActive,
	}
}

func TestInvestment_Validate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(inv *Investment)
		wantErr bool
		errMsg  string
	}{
		{
			name:    "Valid investment should pass",
			mutate:  func(inv *Investment) {},
			wantErr: false,
		},
		{
			name:    "Empty name should fail",
			mutate:  func(inv *Investment) { inv.Name = "" },
			wantErr: true,
			errMsg:  "investment name cannot be empty",
		},
		{
			name:    "Zero principal should fail",
			mutate:  func(inv *Investment) { inv.Principal = decimal.Zero },
			wantErr: true,
			errMsg:  "principal must be positive",
		},
		{
			name:    "Negative principal should fail",
			mutate:  func(inv *Investment) { inv.Principal = decimal.NewFromInt(-100) },
			wantErr: true,
			errMsg:  "principal must be positive",
		},
		{
			name:    "Zero interest rate should fail",
			mutate:  func(inv *Investment) { inv.InterestRate = decimal.Zero },
			wantErr: true,
			errMsg:  "interest rate must be positive",
		},
		{
			name:    "Unrecognized frequency should fail",
			mutate:  func(inv *Investment) { inv.Frequency = "weekly" },
			wantErr: true,
			errMsg:  "frequency must be monthly, quarterly, half-yearly or yearly",
		},
		{
			name:    "Zero start date should fail",
			mutate:  func(inv *Investment) { inv.StartDate = time.Time{} },
			wantErr: true,
			errMsg:  "start date is required",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			inv := validInvestment()
			tt.mutate(&inv)

			err := inv.Validate()

			if tt.wantErr {
				assert.Error(t, err)
				assert.Equal(t, tt.errMsg, err.Error())
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestPeriodsPerYear(t *testing.T) {
	tests := []struct {
		frequency Frequency
		expected  int
	}{
		{FrequencyMonthly, 12},
		{FrequencyQuarterly, 4},
		{FrequencyHalfYearly, 2},
		{FrequencyYearly, 1},
	}

	for _, tt := range tests {
		t.Run(string(tt.frequency), func(t *testing.T) {
			periods := PeriodsPerYear(tt.frequency)

			assert.Equal(t, tt.expected, periods)
			// Rollover arithmetic relies on whole months per period
			assert.Equal(t, 0, 12%periods)
		})
	}
}

func TestPeriodsPerYear_UnknownFrequencyPanics(t *testing.T) {
	assert.Panics(t, func() {
		PeriodsPerYear("weekly")
	})
}

func TestInvestment_CloneDoesNotShareLedger(t *testing.T) {
	inv := validInvestment()
	inv.Payments = []Payment{
		{ID: uuid.New(), Date: time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC), Amount: decimal.NewFromInt(100)},
	}

	clone := inv.Clone()
	clone.Payments[0].Amount = decimal.NewFromInt(999)

	assert.True(t, inv.Payments[0].Amount.Equal(decimal.NewFromInt(100)))
}
