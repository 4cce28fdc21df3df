// Package store holds the loaded inventory and its load status.
package store

import (
	"sync"
	"time"

	"github.com/fairyhunter13/inventory-dashboard/internal/model"
)

// Status is the lifecycle stage of the store.
type Status string

const (
	StatusLoading Status = "loading"
	StatusReady   Status = "ready"
	StatusFailed  Status = "failed"
)

// Store is an ordered, replace-only product list safe for concurrent readers.
type Store struct {
	mu       sync.RWMutex
	products []model.Product
	status   Status
	errMsg   string
	loadedAt time.Time
}

func New() *Store {
	return &Store{status: StatusLoading}
}

// Replace swaps in a freshly loaded product list and marks the store ready.
func (s *Store) Replace(ps []model.Product) {
	cp := append([]model.Product(nil), ps...)
	s.mu.Lock()
	defer s.mu.Unlock()
	s.products = cp
	s.status = StatusReady
	s.errMsg = ""
	s.loadedAt = time.Now().UTC()
}

// Fail records a user-visible load error. Products from an earlier
// successful load are kept.
func (s *Store) Fail(msg string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.status != StatusReady {
		s.status = StatusFailed
	}
	s.errMsg = msg
}

// Snapshot returns a copy of the products in load order.
func (s *Store) Snapshot() []model.Product {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]model.Product(nil), s.products...)
}

// Status returns the current status and the last load error, if any.
func (s *Store) Status() (Status, string) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.status, s.errMsg
}

func (s *Store) LoadedAt() time.Time {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.loadedAt
}

func (s *Store) Get(id model.ProductID) (model.Product, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, p := range s.products {
		if p.ID == id {
			return p, true
		}
	}
	return model.Product{}, false
}

func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.products)
}
