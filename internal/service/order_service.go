package service

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"

	"levoja-backoffice/internal/domain"
	"levoja-backoffice/internal/export"
	"levoja-backoffice/internal/filter"
	"levoja-backoffice/internal/store"
)

var (
	ErrNoItems            = errors.New("order must contain at least one item")
	ErrInvalidStatus      = errors.New("invalid order status")
	ErrInvalidQuantity    = errors.New("item quantity must be at least 1")
	ErrProductUnavailable = errors.New("product is not available for sale")
)

// OrderLine is one product reference in an incoming order payload
type OrderLine struct {
	ProductID string
	Quantity  int
}

// CreateOrderInput carries everything needed to commit a draft order
type CreateOrderInput struct {
	CustomerID string
	Lines      []OrderLine
}

// UpdateOrderInput is a typed partial update. Nil fields are left
// untouched; the order date and the customer snapshots are immutable,
// and the total is always re-derived from the items.
type UpdateOrderInput struct {
	Status          *domain.OrderStatus
	ShippingAddress *string
	Lines           []OrderLine
}

// OrderService defines the interface for order business logic
type OrderService interface {
	List(ctx context.Context, f filter.OrderFilter) []domain.Order
	Get(ctx context.Context, id string) (domain.Order, error)
	Create(ctx context.Context, in CreateOrderInput) (domain.Order, error)
	Update(ctx context.Context, id string, in UpdateOrderInput) (domain.Order, error)
	Delete(ctx context.Context, id string) error
	ExportCSV(ctx context.Context, f filter.OrderFilter, w io.Writer) (int, error)
	ExportPDF(ctx context.Context, id string, w io.Writer) (string, error)
}

type orderService struct {
	orders    store.OrderStore
	customers store.CustomerStore
	products  store.ProductStore
}

// NewOrderService creates a new instance of OrderService
func NewOrderService(orders store.OrderStore, customers store.CustomerStore, products store.ProductStore) OrderService {
	return &orderService{orders: orders, customers: customers, products: products}
}

// List returns the orders visible under the given filter, newest first
func (s *orderService) List(ctx context.Context, f filter.OrderFilter) []domain.Order {
	return filter.Orders(s.orders.List(ctx), f)
}

// Get retrieves one order by id
func (s *orderService) Get(ctx context.Context, id string) (domain.Order, error) {
	return s.orders.FindByID(ctx, id)
}

// Create commits a draft order: the customer's name, email and shipping
// address are snapshotted, duplicate product lines are merged, and the
// total is derived from the item subtotals.
func (s *orderService) Create(ctx context.Context, in CreateOrderInput) (domain.Order, error) {
	customer, err := s.customers.FindByID(ctx, in.CustomerID)
	if err != nil {
		return domain.Order{}, err
	}

	if len(in.Lines) == 0 {
		return domain.Order{}, ErrNoItems
	}

	items, err := s.buildItems(ctx, in.Lines)
	if err != nil {
		return domain.Order{}, err
	}

	order := domain.Order{
		CustomerID:      customer.ID,
		CustomerName:    customer.Name,
		CustomerEmail:   customer.Email,
		Status:          domain.StatusConfirmed,
		OrderDate:       domain.Today(),
		Total:           domain.ItemsTotal(items),
		Items:           items,
		ShippingAddress: customer.Address.Format(),
	}

	created, err := s.orders.Create(ctx, order)
	if err != nil {
		return domain.Order{}, fmt.Errorf("failed to create order: %w", err)
	}
	return created, nil
}

// Update applies a typed partial update. Replacing the items rebuilds
// the line snapshots from the current catalog; the total is re-derived
// in every case.
func (s *orderService) Update(ctx context.Context, id string, in UpdateOrderInput) (domain.Order, error) {
	order, err := s.orders.FindByID(ctx, id)
	if err != nil {
		return domain.Order{}, err
	}

	if in.Status != nil {
		if !domain.ValidOrderStatus(*in.Status) {
			return domain.Order{}, ErrInvalidStatus
		}
		order.Status = *in.Status
	}
	if in.ShippingAddress != nil {
		order.ShippingAddress = *in.ShippingAddress
	}
	if in.Lines != nil {
		if len(in.Lines) == 0 {
			return domain.Order{}, ErrNoItems
		}
		items, err := s.buildItems(ctx, in.Lines)
		if err != nil {
			return domain.Order{}, err
		}
		order.Items = items
	}
	order.Total = domain.ItemsTotal(order.Items)

	if err := s.orders.Update(ctx, order); err != nil {
		return domain.Order{}, err
	}
	return order, nil
}

// Delete removes an order
func (s *orderService) Delete(ctx context.Context, id string) error {
	return s.orders.Delete(ctx, id)
}

// ExportCSV writes the currently visible orders as CSV and returns the
// row count. An empty visible set yields export.ErrEmptyExport and no
// output.
func (s *orderService) ExportCSV(ctx context.Context, f filter.OrderFilter, w io.Writer) (int, error) {
	return export.OrdersCSV(w, s.List(ctx, f))
}

// ExportPDF renders the printable document for one order. The document
// is buffered before anything reaches w, so a failed render produces no
// partial file. Returns the deterministic download filename.
func (s *orderService) ExportPDF(ctx context.Context, id string, w io.Writer) (string, error) {
	order, err := s.orders.FindByID(ctx, id)
	if err != nil {
		return "", err
	}

	// The order keeps only a weak customer reference; the document needs
	// the live record for the phone and structured address.
	customer, err := s.customers.FindByID(ctx, order.CustomerID)
	if err != nil {
		return "", err
	}

	var buf bytes.Buffer
	if err := export.OrderPDF(&buf, order, customer); err != nil {
		return "", err
	}
	if _, err := buf.WriteTo(w); err != nil {
		return "", fmt.Errorf("failed to write order document: %w", err)
	}
	return export.OrderPDFFilename(order.ID), nil
}

// buildItems resolves incoming lines against the catalog, snapshotting
// the product name and unit price and merging duplicate product lines.
// A zero quantity defaults to 1; negative quantities are rejected.
func (s *orderService) buildItems(ctx context.Context, lines []OrderLine) ([]domain.OrderItem, error) {
	var items []domain.OrderItem
	for _, line := range lines {
		qty := line.Quantity
		if qty == 0 {
			qty = 1
		}
		if qty < 0 {
			return nil, ErrInvalidQuantity
		}

		product, err := s.products.FindByID(ctx, line.ProductID)
		if err != nil {
			return nil, err
		}
		if product.Status != domain.ProductActive {
			return nil, fmt.Errorf("%w: %s", ErrProductUnavailable, product.Name)
		}

		items = domain.MergeItem(items, domain.OrderItem{
			ID:       product.ID,
			Name:     product.Name,
			Quantity: qty,
			Price:    product.Price,
		})
	}
	return items, nil
}
