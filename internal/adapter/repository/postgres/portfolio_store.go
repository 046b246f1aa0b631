package postgres

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/dferrao/lendtrack-backend/internal/domain"
)

// portfolioStore implements domain.PortfolioStore over two tables,
// investments and payments. The whole portfolio is written as one snapshot in
// a single transaction, so the store never holds a partial collection.
type portfolioStore struct {
	db *DB
}

// NewPortfolioStore creates a new portfolio store
func NewPortfolioStore(db *DB) domain.PortfolioStore {
	return &portfolioStore{db: db}
}

// Load retrieves the persisted portfolio
// Malformed rows degrade the result to an empty portfolio per the store
// contract; only query failures surface as errors.
func (s *portfolioStore) Load(ctx context.Context) (domain.Portfolio, error) {
	invQuery := `
		SELECT id, name, principal, interest_rate, frequency, start_date, status
		FROM investments
		ORDER BY position
	`

	rows, err := s.db.QueryContext(ctx, invQuery)
	if err != nil {
		return nil, fmt.Errorf("failed to load investments: %w", err)
	}
	defer rows.Close()

	p := domain.Portfolio{}
	index := make(map[uuid.UUID]int)

	for rows.Next() {
		var inv domain.Investment
		var principalStr, rateStr string

		if err := rows.Scan(&inv.ID, &inv.Name, &principalStr, &rateStr, &inv.Frequency, &inv.StartDate, &inv.Status); err != nil {
			return domain.Portfolio{}, nil
		}

		inv.Principal, err = decimal.NewFromString(principalStr)
		if err != nil {
			return domain.Portfolio{}, nil
		}
		inv.InterestRate, err = decimal.NewFromString(rateStr)
		if err != nil {
			return domain.Portfolio{}, nil
		}

		inv.Payments = []domain.Payment{}
		index[inv.ID] = len(p)
		p = append(p, inv)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read investments: %w", err)
	}

	payQuery := `
		SELECT id, investment_id, date, amount
		FROM payments
		ORDER BY investment_id, position
	`

	payRows, err := s.db.QueryContext(ctx, payQuery)
	if err != nil {
		return nil, fmt.Errorf("failed to load payments: %w", err)
	}
	defer payRows.Close()

	for payRows.Next() {
		var payment domain.Payment
		var investmentID uuid.UUID
		var amountStr string

		if err := payRows.Scan(&payment.ID, &investmentID, &payment.Date, &amountStr); err != nil {
			return domain.Portfolio{}, nil
		}

		payment.Amount, err = decimal.NewFromString(amountStr)
		if err != nil {
			return domain.Portfolio{}, nil
		}

		// Payments for an investment that no longer exists are dropped
		if i, ok := index[investmentID]; ok {
			p[i].Payments = append(p[i].Payments, payment)
		}
	}
	if err := payRows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read payments: %w", err)
	}

	return p, nil
}

// Save persists the full portfolio snapshot in one transaction
func (s *portfolioStore) Save(ctx context.Context, p domain.Portfolio) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin snapshot transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, `DELETE FROM payments`); err != nil {
		return fmt.Errorf("failed to clear payments: %w", err)
	}
	if _, err := tx.ExecContext(ctx, `DELETE FROM investments`); err != nil {
		return fmt.Errorf("failed to clear investments: %w", err)
	}

	invInsert := `
		INSERT INTO investments (id, position, name, principal, interest_rate, frequency, start_date, status)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`
	payInsert := `
		INSERT INTO payments (id, investment_id, position, date, amount)
		VALUES ($1, $2, $3, $4, $5)
	`

	for i, inv := range p {
		_, err := tx.ExecContext(ctx, invInsert,
			inv.ID,
			i,
			inv.Name,
			inv.Principal.String(),
			inv.InterestRate.String(),
			string(inv.Frequency),
			inv.StartDate,
			string(inv.Status),
		)
		if err != nil {
			return fmt.Errorf("failed to insert investment: %w", err)
		}

		for j, payment := range inv.Payments {
			_, err := tx.ExecContext(ctx, payInsert,
				payment.ID,
				inv.ID,
				j,
				payment.Date,
				payment.Amount.String(),
			)
			if err != nil {
				return fmt.Errorf("failed to insert payment: %w", err)
			}
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit snapshot: %w", err)
	}

	return nil
}
