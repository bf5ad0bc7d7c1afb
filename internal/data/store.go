package data

import (
	"fmt"
	"sort"
	"sync"

	"breakout-trader/internal/model"
)

// Store is a concurrency-safe in-memory registry of named market series.
// It lets API clients upload a series once and run several evaluations
// against it. Contents are process-local and lost on restart.
type Store struct {
	mu     sync.RWMutex
	series map[string]model.MarketData
}

// NewStore returns an empty registry.
func NewStore() *Store {
	return &Store{series: make(map[string]model.MarketData)}
}

// Put registers a series under name, replacing any previous entry.
func (s *Store) Put(name string, md model.MarketData) error {
	if name == "" {
		return fmt.Errorf("dataset name is required")
	}
	if md.Len() == 0 {
		return fmt.Errorf("dataset %q has no price data", name)
	}
	if !md.Aligned() {
		return fmt.Errorf("dataset %q: prices and volumes must be the same length", name)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.series[name] = md
	return nil
}

// Get looks up a series by name.
func (s *Store) Get(name string) (model.MarketData, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	md, ok := s.series[name]
	return md, ok
}

// Delete removes a series; removing an unknown name is a no-op.
func (s *Store) Delete(name string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.series, name)
}

// Names returns the registered dataset names in sorted order.
func (s *Store) Names() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	names := make([]string, 0, len(s.series))
	for name := range s.series {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
