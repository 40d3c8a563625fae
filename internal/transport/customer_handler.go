package transport

import (
	"errors"
	"net/http"

	"levoja-backoffice/internal/domain"
	"levoja-backoffice/internal/middleware"
	"levoja-backoffice/internal/service"
	"levoja-backoffice/internal/store"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// AddressRequest is the structured address of a customer payload
type AddressRequest struct {
	Street     string `json:"street" validate:"required"`
	Number     string `json:"number" validate:"required"`
	Complement string `json:"complement"`
	ZipCode    string `json:"zip_code" validate:"required"`
	City       string `json:"city" validate:"required"`
	State      string `json:"state" validate:"required"`
}

// CreateCustomerRequest registers a new customer; a validation failure
// rejects the submit and leaves the collection unchanged
type CreateCustomerRequest struct {
	Name    string         `json:"name" validate:"required"`
	Email   string         `json:"email" validate:"required,email"`
	Phone   string         `json:"phone" validate:"required"`
	CPF     string         `json:"cpf" validate:"required"`
	Address AddressRequest `json:"address" validate:"required"`
}

// UpdateCustomerRequest is a partial customer update
type UpdateCustomerRequest struct {
	Name    *string         `json:"name,omitempty"`
	Email   *string         `json:"email,omitempty" validate:"omitempty,email"`
	Phone   *string         `json:"phone,omitempty"`
	CPF     *string         `json:"cpf,omitempty"`
	Type    *string         `json:"type,omitempty" validate:"omitempty,oneof=Ativo Novo Inativo"`
	Address *AddressRequest `json:"address,omitempty"`
}

// CustomerListResponse is the customer listing with visibility counts
type CustomerListResponse struct {
	Customers []domain.Customer `json:"customers"`
	Showing   int               `json:"showing"`
	Total     int               `json:"total"`
}

// CustomerHandler handles HTTP requests for customer operations
type CustomerHandler struct {
	customerService service.CustomerService
	logger          *zap.Logger
}

// NewCustomerHandler creates a new CustomerHandler
func NewCustomerHandler(customerService service.CustomerService, logger *zap.Logger) *CustomerHandler {
	return &CustomerHandler{customerService: customerService, logger: logger}
}

// RegisterRoutes registers all customer routes behind the auth
// middleware; deletion additionally requires the admin role
func (h *CustomerHandler) RegisterRoutes(r chi.Router, authMiddleware, adminMiddleware func(http.Handler) http.Handler) {
	r.Route("/api/customers", func(r chi.Router) {
		r.Use(authMiddleware)
		r.Get("/", h.List)
		r.Post("/", h.Create)
		r.Get("/{id}", h.Get)
		r.Put("/{id}", h.Update)

		r.Group(func(r chi.Router) {
			r.Use(adminMiddleware)
			r.Delete("/{id}", h.Delete)
		})
	})
}

// List returns customers whose name or email matches the query
func (h *CustomerHandler) List(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query().Get("query")
	visible := h.customerService.List(r.Context(), query)
	all := h.customerService.List(r.Context(), "")

	middleware.RespondWithJSON(w, http.StatusOK, CustomerListResponse{
		Customers: visible,
		Showing:   len(visible),
		Total:     len(all),
	})
}

// Get returns one customer
func (h *CustomerHandler) Get(w http.ResponseWriter, r *http.Request) {
	customer, err := h.customerService.Get(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		middleware.RespondWithError(w, http.StatusNotFound, "customer not found")
		return
	}
	middleware.RespondWithJSON(w, http.StatusOK, customer)
}

// Create registers a new customer
func (h *CustomerHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req CreateCustomerRequest
	if err := middleware.DecodeAndValidate(r, &req); err != nil {
		h.logger.Debug("Customer validation failed", zap.Error(err))
		if validationErrors := middleware.FormatValidationErrors(err); len(validationErrors) > 0 {
			middleware.RespondWithValidationErrors(w, validationErrors)
			return
		}
		middleware.RespondWithError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	customer, err := h.customerService.Create(r.Context(), service.CreateCustomerInput{
		Name:    req.Name,
		Email:   req.Email,
		Phone:   req.Phone,
		CPF:     req.CPF,
		Address: toAddress(req.Address),
	})
	if err != nil {
		h.respondCustomerError(w, err, "failed to create customer")
		return
	}

	h.logger.Info("Customer created", zap.String("customer_id", customer.ID))
	middleware.RespondWithJSON(w, http.StatusCreated, customer)
}

// Update applies a partial update to a customer record
func (h *CustomerHandler) Update(w http.ResponseWriter, r *http.Request) {
	var req UpdateCustomerRequest
	if err := middleware.DecodeAndValidate(r, &req); err != nil {
		h.logger.Debug("Customer update validation failed", zap.Error(err))
		if validationErrors := middleware.FormatValidationErrors(err); len(validationErrors) > 0 {
			middleware.RespondWithValidationErrors(w, validationErrors)
			return
		}
		middleware.RespondWithError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	in := service.UpdateCustomerInput{
		Name:  req.Name,
		Email: req.Email,
		Phone: req.Phone,
		CPF:   req.CPF,
	}
	if req.Type != nil {
		t := domain.CustomerType(*req.Type)
		in.Type = &t
	}
	if req.Address != nil {
		addr := toAddress(*req.Address)
		in.Address = &addr
	}

	customer, err := h.customerService.Update(r.Context(), chi.URLParam(r, "id"), in)
	if err != nil {
		h.respondCustomerError(w, err, "failed to update customer")
		return
	}

	h.logger.Info("Customer updated", zap.String("customer_id", customer.ID))
	middleware.RespondWithJSON(w, http.StatusOK, customer)
}

// Delete removes a customer; existing orders keep their snapshots
func (h *CustomerHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if err := h.customerService.Delete(r.Context(), id); err != nil {
		middleware.RespondWithError(w, http.StatusNotFound, "customer not found")
		return
	}

	h.logger.Info("Customer deleted", zap.String("customer_id", id))
	middleware.RespondWithJSON(w, http.StatusOK, map[string]string{"message": "customer deleted"})
}

func (h *CustomerHandler) respondCustomerError(w http.ResponseWriter, err error, fallback string) {
	switch {
	case errors.Is(err, store.ErrCustomerNotFound):
		middleware.RespondWithError(w, http.StatusNotFound, "customer not found")
	case errors.Is(err, service.ErrMissingFields),
		errors.Is(err, service.ErrInvalidCustomerType):
		middleware.RespondWithError(w, http.StatusBadRequest, err.Error())
	default:
		h.logger.Error(fallback, zap.Error(err))
		middleware.RespondWithError(w, http.StatusInternalServerError, fallback)
	}
}

func toAddress(a AddressRequest) domain.Address {
	return domain.Address{
		Street:     a.Street,
		Number:     a.Number,
		Complement: a.Complement,
		ZipCode:    a.ZipCode,
		City:       a.City,
		State:      a.State,
	}
}
