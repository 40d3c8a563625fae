// Package store holds the in-memory repositories backing the back office.
// Each collection is exclusively owned by its store: reads hand out deep
// copies and writes swap a freshly built slice under the lock, so no
// caller ever aliases store-owned data. Everything resets to the seed
// data on restart; there is no durable persistence by design.
package store

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"levoja-backoffice/internal/domain"
)

var (
	ErrOrderNotFound = errors.New("order not found")
)

// OrderStore defines the interface for order data access
type OrderStore interface {
	List(ctx context.Context) []domain.Order
	FindByID(ctx context.Context, id string) (domain.Order, error)
	Create(ctx context.Context, order domain.Order) (domain.Order, error)
	Update(ctx context.Context, order domain.Order) error
	Delete(ctx context.Context, id string) error
}

type orderStore struct {
	mu     sync.RWMutex
	orders []domain.Order
	seq    int
}

// NewOrderStore creates an order store pre-populated with the given
// orders. The id sequence continues after the seeded orders and is never
// rewound, so a deleted order's id is not reused within the session.
func NewOrderStore(seed []domain.Order) OrderStore {
	orders := make([]domain.Order, 0, len(seed))
	for _, o := range seed {
		orders = append(orders, o.Clone())
	}
	return &orderStore{orders: orders, seq: len(seed)}
}

// List returns a deep copy of all orders, newest first (creation order)
func (s *orderStore) List(ctx context.Context) []domain.Order {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]domain.Order, 0, len(s.orders))
	for _, o := range s.orders {
		out = append(out, o.Clone())
	}
	return out
}

// FindByID returns a deep copy of the order with the given id
func (s *orderStore) FindByID(ctx context.Context, id string) (domain.Order, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, o := range s.orders {
		if o.ID == id {
			return o.Clone(), nil
		}
	}
	return domain.Order{}, ErrOrderNotFound
}

// Create assigns the next sequential id (ORD001, ORD002, ...) and prepends
// the order, matching the newest-first listing of the dashboard
func (s *orderStore) Create(ctx context.Context, order domain.Order) (domain.Order, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.seq++
	order.ID = fmt.Sprintf("ORD%03d", s.seq)

	next := make([]domain.Order, 0, len(s.orders)+1)
	next = append(next, order.Clone())
	next = append(next, s.orders...)
	s.orders = next

	return order, nil
}

// Update replaces the stored order with the same id
func (s *orderStore) Update(ctx context.Context, order domain.Order) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i, o := range s.orders {
		if o.ID == order.ID {
			next := make([]domain.Order, len(s.orders))
			copy(next, s.orders)
			next[i] = order.Clone()
			s.orders = next
			return nil
		}
	}
	return ErrOrderNotFound
}

// Delete removes the order with the given id
func (s *orderStore) Delete(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	next := make([]domain.Order, 0, len(s.orders))
	found := false
	for _, o := range s.orders {
		if o.ID == id {
			found = true
			continue
		}
		next = append(next, o)
	}
	if !found {
		return ErrOrderNotFound
	}
	s.orders = next
	return nil
}
