package domain

import "github.com/google/uuid"

// Portfolio is the ordered collection of investments persisted as one unit
// Transition functions treat it as an immutable value: they never mutate a
// portfolio in place, they return a new one.
type Portfolio []Investment

// FindByID returns the investment with the given ID, or nil if absent
func (p Portfolio) FindByID(id uuid.UUID) *Investment {
	for i := range p {
		if p[i].ID == id {
			return &p[i]
		}
	}
	return nil
}

// Clone returns a deep copy of the portfolio
func (p Portfolio) Clone() Portfolio {
	out := make(Portfolio, len(p))
	for i := range p {
		out[i] = p[i].Clone()
	}
	return out
}
