package store

import (
	"context"
	"errors"
	"sync"

	"levoja-backoffice/internal/domain"
)

var (
	ErrProductNotFound = errors.New("product not found")
)

// ProductStore defines the interface for product data access
type ProductStore interface {
	List(ctx context.Context) []domain.Product
	FindByID(ctx context.Context, id string) (domain.Product, error)
	Create(ctx context.Context, product domain.Product) error
	Update(ctx context.Context, product domain.Product) error
	Delete(ctx context.Context, id string) error
}

type productStore struct {
	mu       sync.RWMutex
	products []domain.Product
}

// NewProductStore creates a product store pre-populated with the given products
func NewProductStore(seed []domain.Product) ProductStore {
	products := make([]domain.Product, len(seed))
	copy(products, seed)
	return &productStore{products: products}
}

func (s *productStore) List(ctx context.Context) []domain.Product {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]domain.Product, len(s.products))
	copy(out, s.products)
	return out
}

func (s *productStore) FindByID(ctx context.Context, id string) (domain.Product, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, p := range s.products {
		if p.ID == id {
			return p, nil
		}
	}
	return domain.Product{}, ErrProductNotFound
}

// Create prepends the product so the newest entry lists first
func (s *productStore) Create(ctx context.Context, product domain.Product) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	next := make([]domain.Product, 0, len(s.products)+1)
	next = append(next, product)
	next = append(next, s.products...)
	s.products = next
	return nil
}

func (s *productStore) Update(ctx context.Context, product domain.Product) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i, p := range s.products {
		if p.ID == product.ID {
			next := make([]domain.Product, len(s.products))
			copy(next, s.products)
			next[i] = product
			s.products = next
			return nil
		}
	}
	return ErrProductNotFound
}

func (s *productStore) Delete(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	next := make([]domain.Product, 0, len(s.products))
	found := false
	for _, p := range s.products {
		if p.ID == id {
			found = true
			continue
		}
		next = append(next, p)
	}
	if !found {
		return ErrProductNotFound
	}
	s.products = next
	return nil
}
