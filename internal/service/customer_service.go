package service

import (
	"context"
	"errors"

	"levoja-backoffice/internal/domain"
	"levoja-backoffice/internal/filter"
	"levoja-backoffice/internal/store"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var (
	ErrInvalidCustomerType = errors.New("invalid customer type")
	ErrMissingFields       = errors.New("all required customer fields must be filled")
)

const defaultAvatar = "https://placehold.co/36x36.png"

// CreateCustomerInput carries a new customer registration. Every field
// except the address complement is required.
type CreateCustomerInput struct {
	Name    string
	Email   string
	Phone   string
	CPF     string
	Address domain.Address
}

// UpdateCustomerInput is a typed partial update; nil fields are untouched
type UpdateCustomerInput struct {
	Name    *string
	Email   *string
	Phone   *string
	CPF     *string
	Type    *domain.CustomerType
	Address *domain.Address
}

// CustomerService defines the interface for customer business logic
type CustomerService interface {
	List(ctx context.Context, query string) []domain.Customer
	Get(ctx context.Context, id string) (domain.Customer, error)
	Create(ctx context.Context, in CreateCustomerInput) (domain.Customer, error)
	Update(ctx context.Context, id string, in UpdateCustomerInput) (domain.Customer, error)
	Delete(ctx context.Context, id string) error
}

type customerService struct {
	customers store.CustomerStore
}

// NewCustomerService creates a new instance of CustomerService
func NewCustomerService(customers store.CustomerStore) CustomerService {
	return &customerService{customers: customers}
}

// List returns customers whose name or email matches the query
func (s *customerService) List(ctx context.Context, query string) []domain.Customer {
	return filter.Customers(s.customers.List(ctx), query)
}

// Get retrieves one customer by id
func (s *customerService) Get(ctx context.Context, id string) (domain.Customer, error) {
	return s.customers.FindByID(ctx, id)
}

// Create registers a new customer: type Novo, signed up today, nothing
// spent yet, avatar fallback derived from the name initials. A rejected
// registration leaves the collection unchanged.
func (s *customerService) Create(ctx context.Context, in CreateCustomerInput) (domain.Customer, error) {
	if in.Name == "" || in.Email == "" || in.Phone == "" || in.CPF == "" ||
		in.Address.Street == "" || in.Address.Number == "" || in.Address.ZipCode == "" ||
		in.Address.City == "" || in.Address.State == "" {
		return domain.Customer{}, ErrMissingFields
	}

	customer := domain.Customer{
		ID:             uuid.New().String(),
		Name:           in.Name,
		Email:          in.Email,
		Phone:          in.Phone,
		CPF:            in.CPF,
		Address:        in.Address,
		Type:           domain.CustomerNew,
		SignupDate:     domain.Today(),
		TotalSpent:     decimal.Zero,
		Avatar:         defaultAvatar,
		AvatarFallback: domain.Initials(in.Name),
		AvatarHint:     "person portrait",
	}

	if err := s.customers.Create(ctx, customer); err != nil {
		return domain.Customer{}, err
	}
	return customer, nil
}

// Update applies a typed partial update to a customer record. Orders
// keep their creation-time snapshots regardless.
func (s *customerService) Update(ctx context.Context, id string, in UpdateCustomerInput) (domain.Customer, error) {
	customer, err := s.customers.FindByID(ctx, id)
	if err != nil {
		return domain.Customer{}, err
	}

	if in.Name != nil {
		customer.Name = *in.Name
		customer.AvatarFallback = domain.Initials(*in.Name)
	}
	if in.Email != nil {
		customer.Email = *in.Email
	}
	if in.Phone != nil {
		customer.Phone = *in.Phone
	}
	if in.CPF != nil {
		customer.CPF = *in.CPF
	}
	if in.Type != nil {
		if !domain.ValidCustomerType(*in.Type) {
			return domain.Customer{}, ErrInvalidCustomerType
		}
		customer.Type = *in.Type
	}
	if in.Address != nil {
		customer.Address = *in.Address
	}

	if err := s.customers.Update(ctx, customer); err != nil {
		return domain.Customer{}, err
	}
	return customer, nil
}

// Delete removes a customer. Existing orders keep working through their
// denormalized snapshots; only the PDF document, which needs the live
// record, reports the missing reference.
func (s *customerService) Delete(ctx context.Context, id string) error {
	return s.customers.Delete(ctx, id)
}
