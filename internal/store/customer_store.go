package store

import (
	"context"
	"errors"
	"sync"

	"levoja-backoffice/internal/domain"
)

var (
	ErrCustomerNotFound = errors.New("customer not found")
)

// CustomerStore defines the interface for customer data access
type CustomerStore interface {
	List(ctx context.Context) []domain.Customer
	FindByID(ctx context.Context, id string) (domain.Customer, error)
	Create(ctx context.Context, customer domain.Customer) error
	Update(ctx context.Context, customer domain.Customer) error
	Delete(ctx context.Context, id string) error
}

type customerStore struct {
	mu        sync.RWMutex
	customers []domain.Customer
}

// NewCustomerStore creates a customer store pre-populated with the given customers
func NewCustomerStore(seed []domain.Customer) CustomerStore {
	customers := make([]domain.Customer, len(seed))
	copy(customers, seed)
	return &customerStore{customers: customers}
}

func (s *customerStore) List(ctx context.Context) []domain.Customer {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]domain.Customer, len(s.customers))
	copy(out, s.customers)
	return out
}

func (s *customerStore) FindByID(ctx context.Context, id string) (domain.Customer, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, c := range s.customers {
		if c.ID == id {
			return c, nil
		}
	}
	return domain.Customer{}, ErrCustomerNotFound
}

// Create prepends the customer so the newest entry lists first
func (s *customerStore) Create(ctx context.Context, customer domain.Customer) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	next := make([]domain.Customer, 0, len(s.customers)+1)
	next = append(next, customer)
	next = append(next, s.customers...)
	s.customers = next
	return nil
}

func (s *customerStore) Update(ctx context.Context, customer domain.Customer) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i, c := range s.customers {
		if c.ID == customer.ID {
			next := make([]domain.Customer, len(s.customers))
			copy(next, s.customers)
			next[i] = customer
			s.customers = next
			return nil
		}
	}
	return ErrCustomerNotFound
}

func (s *customerStore) Delete(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	next := make([]domain.Customer, 0, len(s.customers))
	found := false
	for _, c := range s.customers {
		if c.ID == id {
			found = true
			continue
		}
		next = append(next, c)
	}
	if !found {
		return ErrCustomerNotFound
	}
	s.customers = next
	return nil
}
