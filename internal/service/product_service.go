package service

import (
	"context"
	"errors"
	"io"

	"levoja-backoffice/internal/domain"
	"levoja-backoffice/internal/export"
	"levoja-backoffice/internal/filter"
	"levoja-backoffice/internal/store"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var (
	ErrInvalidProductStatus = errors.New("invalid product status")
	ErrInvalidUnitOfMeasure = errors.New("invalid unit of measure")
	ErrNegativePrice        = errors.New("price must not be negative")
	ErrNegativeStock        = errors.New("stock must not be negative")
)

// CreateProductInput carries a new catalog entry
type CreateProductInput struct {
	Name          string
	Price         decimal.Decimal
	Stock         int
	Category      string
	Brand         string
	UnitOfMeasure domain.UnitOfMeasure
	Description   string
	ImageURL      string
	ImageHint     string
}

// UpdateProductInput is a typed partial update; nil fields are untouched
type UpdateProductInput struct {
	Name          *string
	Status        *domain.ProductStatus
	Price         *decimal.Decimal
	Stock         *int
	Category      *string
	Brand         *string
	UnitOfMeasure *domain.UnitOfMeasure
	Description   *string
	ImageURL      *string
}

// ProductService defines the interface for catalog business logic
type ProductService interface {
	List(ctx context.Context, f filter.ProductFilter) []domain.Product
	Active(ctx context.Context) []domain.Product
	Get(ctx context.Context, id string) (domain.Product, error)
	Create(ctx context.Context, in CreateProductInput) (domain.Product, error)
	Update(ctx context.Context, id string, in UpdateProductInput) (domain.Product, error)
	Delete(ctx context.Context, id string) error
	ExportCSV(ctx context.Context, f filter.ProductFilter, w io.Writer) (int, error)
}

type productService struct {
	products store.ProductStore
}

// NewProductService creates a new instance of ProductService
func NewProductService(products store.ProductStore) ProductService {
	return &productService{products: products}
}

// List returns the products visible under the given filter
func (s *productService) List(ctx context.Context, f filter.ProductFilter) []domain.Product {
	return filter.Products(s.products.List(ctx), f)
}

// Active returns the products offered when composing a new order;
// archived products are excluded
func (s *productService) Active(ctx context.Context) []domain.Product {
	all := s.products.List(ctx)
	active := make([]domain.Product, 0, len(all))
	for _, p := range all {
		if p.Status == domain.ProductActive {
			active = append(active, p)
		}
	}
	return active
}

// Get retrieves one product by id
func (s *productService) Get(ctx context.Context, id string) (domain.Product, error) {
	return s.products.FindByID(ctx, id)
}

// Create adds a catalog entry with a fresh id, active status, and
// today's creation date
func (s *productService) Create(ctx context.Context, in CreateProductInput) (domain.Product, error) {
	if in.Price.IsNegative() {
		return domain.Product{}, ErrNegativePrice
	}
	if in.Stock < 0 {
		return domain.Product{}, ErrNegativeStock
	}
	if !domain.ValidUnitOfMeasure(in.UnitOfMeasure) {
		return domain.Product{}, ErrInvalidUnitOfMeasure
	}

	product := domain.Product{
		ID:            uuid.New().String(),
		Name:          in.Name,
		Status:        domain.ProductActive,
		Price:         in.Price,
		Stock:         in.Stock,
		CreatedAt:     domain.Today(),
		ImageURL:      in.ImageURL,
		ImageHint:     in.ImageHint,
		Category:      in.Category,
		Brand:         in.Brand,
		UnitOfMeasure: in.UnitOfMeasure,
		Description:   in.Description,
	}

	if err := s.products.Create(ctx, product); err != nil {
		return domain.Product{}, err
	}
	return product, nil
}

// Update applies a typed partial update to a catalog entry
func (s *productService) Update(ctx context.Context, id string, in UpdateProductInput) (domain.Product, error) {
	product, err := s.products.FindByID(ctx, id)
	if err != nil {
		return domain.Product{}, err
	}

	if in.Name != nil {
		product.Name = *in.Name
	}
	if in.Status != nil {
		if !domain.ValidProductStatus(*in.Status) {
			return domain.Product{}, ErrInvalidProductStatus
		}
		product.Status = *in.Status
	}
	if in.Price != nil {
		if in.Price.IsNegative() {
			return domain.Product{}, ErrNegativePrice
		}
		product.Price = *in.Price
	}
	if in.Stock != nil {
		if *in.Stock < 0 {
			return domain.Product{}, ErrNegativeStock
		}
		product.Stock = *in.Stock
	}
	if in.Category != nil {
		product.Category = *in.Category
	}
	if in.Brand != nil {
		product.Brand = *in.Brand
	}
	if in.UnitOfMeasure != nil {
		if !domain.ValidUnitOfMeasure(*in.UnitOfMeasure) {
			return domain.Product{}, ErrInvalidUnitOfMeasure
		}
		product.UnitOfMeasure = *in.UnitOfMeasure
	}
	if in.Description != nil {
		product.Description = *in.Description
	}
	if in.ImageURL != nil {
		product.ImageURL = *in.ImageURL
	}

	if err := s.products.Update(ctx, product); err != nil {
		return domain.Product{}, err
	}
	return product, nil
}

// Delete removes a product from the catalog. Orders referencing it keep
// their snapshotted name and price.
func (s *productService) Delete(ctx context.Context, id string) error {
	return s.products.Delete(ctx, id)
}

// ExportCSV writes the currently visible products as CSV and returns
// the row count
func (s *productService) ExportCSV(ctx context.Context, f filter.ProductFilter, w io.Writer) (int, error) {
	return export.ProductsCSV(w, s.List(ctx, f))
}
