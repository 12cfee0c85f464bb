// Package memstore is an in-memory resource.Store, used by tests and by
// callers that load small models directly into the process.
package memstore

import (
	"context"
	"sync"

	"github.com/cognicore/textflow/pkg/textflow/resource"
)

// Store is an in-memory implementation of resource.Store.
type Store struct {
	mu     sync.RWMutex
	models map[string]map[string][]float32
	dims   map[string]int
}

// New creates an empty in-memory store.
func New() *Store {
	return &Store{
		models: make(map[string]map[string][]float32),
		dims:   make(map[string]int),
	}
}

// Close implements resource.Store.
func (s *Store) Close() error { return nil }

// HasModel reports whether any vectors were loaded under model.
func (s *Store) HasModel(ctx context.Context, model string) (bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	_, ok := s.models[model]
	return ok, nil
}

// PutVector stores a copy of vec under (model, word).
func (s *Store) PutVector(ctx context.Context, model, word string, vec []float32) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.models[model] == nil {
		s.models[model] = make(map[string][]float32)
		s.dims[model] = len(vec)
	}
	cp := make([]float32, len(vec))
	copy(cp, vec)
	s.models[model][word] = cp
	return nil
}

// WordVector returns a copy of the vector for (model, word).
func (s *Store) WordVector(ctx context.Context, model, word string) ([]float32, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	vocab, ok := s.models[model]
	if !ok {
		return nil, false, resource.MissingModel(model)
	}
	vec, ok := vocab[word]
	if !ok {
		return nil, false, nil
	}
	cp := make([]float32, len(vec))
	copy(cp, vec)
	return cp, true, nil
}

// Dimensions returns the vector width of model.
func (s *Store) Dimensions(ctx context.Context, model string) (int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if _, ok := s.models[model]; !ok {
		return 0, resource.MissingModel(model)
	}
	return s.dims[model], nil
}
