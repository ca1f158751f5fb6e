package model

import (
	"sync"
	"time"

	"github.com/google/uuid"
)

// Pattern is a saved garment record. Plan holds the generated cutting plan
// when one was produced for it.
type Pattern struct {
	ID            string       `json:"id"`
	Name          string       `json:"name,omitempty"`
	Category      string       `json:"category,omitempty"`
	Subcategory   string       `json:"subcategory,omitempty"`
	Fabric        string       `json:"fabric,omitempty"`
	Measurements  Measurements `json:"measurements,omitempty"`
	ImageFilename string       `json:"imageFilename,omitempty"`
	Notes         string       `json:"notes,omitempty"`
	Plan          *CuttingPlan `json:"plan,omitempty"`
	CreatedAt     string       `json:"createdAt"`
}

// NewPattern stamps a pattern with a fresh ID and creation time.
func NewPattern(p Pattern) Pattern {
	p.ID = uuid.New().String()
	p.CreatedAt = time.Now().UTC().Format(time.RFC3339)
	if p.Measurements != nil {
		p.Measurements = p.Measurements.Clone()
	}
	return p
}

// PatternStore holds saved patterns in insertion order. It is safe for
// concurrent use.
type PatternStore struct {
	mu       sync.RWMutex
	patterns []Pattern
}

// NewPatternStore creates a store seeded with the given patterns.
func NewPatternStore(patterns ...Pattern) *PatternStore {
	ps := &PatternStore{patterns: []Pattern{}}
	ps.patterns = append(ps.patterns, patterns...)
	return ps
}

// Add appends a pattern to the store.
func (ps *PatternStore) Add(p Pattern) {
	ps.mu.Lock()
	defer ps.mu.Unlock()
	ps.patterns = append(ps.patterns, p)
}

// List returns a copy of all patterns in insertion order.
func (ps *PatternStore) List() []Pattern {
	ps.mu.RLock()
	defer ps.mu.RUnlock()
	cp := make([]Pattern, len(ps.patterns))
	copy(cp, ps.patterns)
	return cp
}

// Len returns the number of stored patterns.
func (ps *PatternStore) Len() int {
	ps.mu.RLock()
	defer ps.mu.RUnlock()
	return len(ps.patterns)
}

// FindByID returns a copy of the pattern with the given ID.
func (ps *PatternStore) FindByID(id string) (Pattern, bool) {
	ps.mu.RLock()
	defer ps.mu.RUnlock()
	for _, p := range ps.patterns {
		if p.ID == id {
			return p, true
		}
	}
	return Pattern{}, false
}

// Remove deletes a pattern by ID and returns it. The boolean is false when
// no pattern had that ID.
func (ps *PatternStore) Remove(id string) (Pattern, bool) {
	ps.mu.Lock()
	defer ps.mu.Unlock()
	for i, p := range ps.patterns {
		if p.ID == id {
			ps.patterns = append(ps.patterns[:i], ps.patterns[i+1:]...)
			return p, true
		}
	}
	return Pattern{}, false
}
