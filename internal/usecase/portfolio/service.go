package portfolio

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/dferrao/lendtrack-backend/internal/domain"
	"github.com/dferrao/lendtrack-backend/internal/metrics"
)

// CreateInput carries the caller-supplied fields for a new investment
type CreateInput struct {
	Name         string
	Principal    decimal.Decimal
	InterestRate decimal.Decimal
	Frequency    domain.Frequency
	StartDate    time.Time
}

// EditInput carries the replacement fields for an edit
// Identity, payments and status are never touched by an edit; they carry over
// from the existing record.
type EditInput struct {
	Name         string
	Principal    decimal.Decimal
	InterestRate decimal.Decimal
	Frequency    domain.Frequency
	StartDate    time.Time
}

// Service owns the in-memory portfolio and applies lifecycle transitions to it
// It is the calling layer the engine contract describes: it reads the
// collection at startup and persists a snapshot after each mutation. Saves are
// best-effort; a failure is logged and absorbed.
type Service struct {
	store  domain.PortfolioStore
	clock  domain.Clock
	ids    domain.IDGenerator
	logger *slog.Logger

	mu        sync.RWMutex
	portfolio domain.Portfolio
}

// NewService loads the persisted portfolio and returns a service owning it
// A load failure degrades to an empty portfolio rather than aborting startup.
func NewService(ctx context.Context, store domain.PortfolioStore, clock domain.Clock, ids domain.IDGenerator, logger *slog.Logger) *Service {
	p, err := store.Load(ctx)
	if err != nil {
		logger.Warn("failed to load portfolio, starting empty", "error", err)
		p = domain.Portfolio{}
	}

	return &Service{
		store:     store,
		clock:     clock,
		ids:       ids,
		logger:    logger,
		portfolio: p,
	}
}

// Snapshot returns a deep copy of the current portfolio
func (s *Service) Snapshot(ctx context.Context) domain.Portfolio {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.portfolio.Clone()
}

// Get returns a copy of the investment with the given ID
func (s *Service) Get(ctx context.Context, id uuid.UUID) (domain.Investment, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	inv := s.portfolio.FindByID(id)
	if inv == nil {
		return domain.Investment{}, false
	}
	return inv.Clone(), true
}

// Create adds a new investment with a fresh identity, active status and an
// empty payment ledger
func (s *Service) Create(ctx context.Context, in CreateInput) (domain.Investment, error) {
	inv := domain.Investment{
		ID:           s.ids.NewID(),
		Name:         in.Name,
		Principal:    in.Principal,
		InterestRate: in.InterestRate,
		Frequency:    in.Frequency,
		StartDate:    in.StartDate,
		Payments:     []domain.Payment{},
		Status:       domain.StatusActive,
	}

	if err := inv.Validate(); err != nil {
		metrics.LifecycleOperations.WithLabelValues("create", "invalid").Inc()
		return domain.Investment{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.persist(ctx, Add(s.portfolio, inv))
	metrics.LifecycleOperations.WithLabelValues("create", "ok").Inc()

	return inv, nil
}

// Edit replaces the editable fields of an existing investment
// Identity, payments and status are preserved. Returns false when the ID is
// unknown; the portfolio is left unchanged in that case.
func (s *Service) Edit(ctx context.Context, id uuid.UUID, in EditInput) (domain.Investment, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	existing := s.portfolio.FindByID(id)
	if existing == nil {
		metrics.LifecycleOperations.WithLabelValues("edit", "not_found").Inc()
		return domain.Investment{}, false, nil
	}

	replacement := existing.Clone()
	replacement.Name = in.Name
	replacement.Principal = in.Principal
	replacement.InterestRate = in.InterestRate
	replacement.Frequency = in.Frequency
	replacement.StartDate = in.StartDate

	if err := replacement.Validate(); err != nil {
		metrics.LifecycleOperations.WithLabelValues("edit", "invalid").Inc()
		return domain.Investment{}, true, err
	}

	s.persist(ctx, Update(s.portfolio, replacement))
	metrics.LifecycleOperations.WithLabelValues("edit", "ok").Inc()

	return replacement, true, nil
}

// LogPayment appends a payment to the investment's ledger
// A zero date defaults to today per the injected clock. Non-positive amounts
// and unknown IDs leave the portfolio unchanged; found reports whether the
// ID exists so transports can answer honestly.
func (s *Service) LogPayment(ctx context.Context, id uuid.UUID, amount decimal.Decimal, date time.Time) (domain.Investment, bool) {
	if date.IsZero() {
		now := s.clock.Now()
		date = time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	}

	payment := domain.Payment{
		ID:     s.ids.NewID(),
		Date:   date,
		Amount: amount,
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	existing := s.portfolio.FindByID(id)
	if existing == nil {
		metrics.LifecycleOperations.WithLabelValues("log_payment", "not_found").Inc()
		return domain.Investment{}, false
	}

	if amount.LessThanOrEqual(decimal.Zero) {
		metrics.LifecycleOperations.WithLabelValues("log_payment", "invalid").Inc()
		return existing.Clone(), true
	}

	next := LogPayment(s.portfolio, id, payment)
	s.persist(ctx, next)
	metrics.LifecycleOperations.WithLabelValues("log_payment", "ok").Inc()

	return next.FindByID(id).Clone(), true
}

// Close marks an investment closed; closing twice yields the same state
func (s *Service) Close(ctx context.Context, id uuid.UUID) (domain.Investment, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.portfolio.FindByID(id) == nil {
		metrics.LifecycleOperations.WithLabelValues("close", "not_found").Inc()
		return domain.Investment{}, false
	}

	next := Close(s.portfolio, id)
	s.persist(ctx, next)
	metrics.LifecycleOperations.WithLabelValues("close", "ok").Inc()

	return next.FindByID(id).Clone(), true
}

// persist swaps in the new portfolio value and saves it best-effort
// Callers must hold the write lock.
func (s *Service) persist(ctx context.Context, next domain.Portfolio) {
	s.portfolio = next

	if err := s.store.Save(ctx, next); err != nil {
		metrics.SnapshotSaveFailures.Inc()
		s.logger.Error("failed to persist portfolio snapshot", "error", err)
	}
}
