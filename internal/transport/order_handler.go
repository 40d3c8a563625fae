package transport

import (
	"bytes"
	"errors"
	"fmt"
	"net/http"

	"levoja-backoffice/internal/domain"
	"levoja-backoffice/internal/export"
	"levoja-backoffice/internal/filter"
	"levoja-backoffice/internal/middleware"
	"levoja-backoffice/internal/service"
	"levoja-backoffice/internal/store"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// OrderLineRequest is one product reference in an order payload.
// Quantity 0 (or absent) defaults to one unit; negatives are rejected.
type OrderLineRequest struct {
	ProductID string `json:"product_id" validate:"required"`
	Quantity  int    `json:"quantity" validate:"gte=0"`
}

// CreateOrderRequest commits a draft order
type CreateOrderRequest struct {
	CustomerID string             `json:"customer_id" validate:"required"`
	Items      []OrderLineRequest `json:"items" validate:"required,min=1,dive"`
}

// UpdateOrderRequest is a partial order update; omitted fields are untouched
type UpdateOrderRequest struct {
	Status          *string            `json:"status,omitempty"`
	ShippingAddress *string            `json:"shipping_address,omitempty"`
	Items           []OrderLineRequest `json:"items,omitempty" validate:"omitempty,min=1,dive"`
}

// OrderListResponse is the orders listing with visibility counts
type OrderListResponse struct {
	Orders  []domain.Order `json:"orders"`
	Showing int            `json:"showing"`
	Total   int            `json:"total"`
}

// OrderHandler handles HTTP requests for order operations
type OrderHandler struct {
	orderService service.OrderService
	logger       *zap.Logger
}

// NewOrderHandler creates a new OrderHandler
func NewOrderHandler(orderService service.OrderService, logger *zap.Logger) *OrderHandler {
	return &OrderHandler{orderService: orderService, logger: logger}
}

// RegisterRoutes registers all order routes behind the auth middleware;
// deletion additionally requires the admin role
func (h *OrderHandler) RegisterRoutes(r chi.Router, authMiddleware, adminMiddleware func(http.Handler) http.Handler) {
	r.Route("/api/orders", func(r chi.Router) {
		r.Use(authMiddleware)
		r.Get("/", h.List)
		r.Post("/", h.Create)
		r.Get("/export", h.ExportCSV)
		r.Get("/{id}", h.Get)
		r.Put("/{id}", h.Update)
		r.Get("/{id}/pdf", h.ExportPDF)

		r.Group(func(r chi.Router) {
			r.Use(adminMiddleware)
			r.Delete("/{id}", h.Delete)
		})
	})
}

// orderFilterFromQuery builds the visibility filter from the request.
// Malformed dates are ignored rather than rejected: the filter degrades
// to matching everything, mirroring the dashboard behavior.
func orderFilterFromQuery(r *http.Request) filter.OrderFilter {
	q := r.URL.Query()
	f := filter.OrderFilter{
		Query: q.Get("query"),
		Tab:   q.Get("status"),
	}
	if from, err := domain.ParseDate(q.Get("from")); err == nil {
		f.From = &from
	}
	if to, err := domain.ParseDate(q.Get("to")); err == nil {
		f.To = &to
	}
	return f
}

// List returns the orders visible under the request filter
func (h *OrderHandler) List(w http.ResponseWriter, r *http.Request) {
	f := orderFilterFromQuery(r)
	visible := h.orderService.List(r.Context(), f)
	all := h.orderService.List(r.Context(), filter.OrderFilter{})

	middleware.RespondWithJSON(w, http.StatusOK, OrderListResponse{
		Orders:  visible,
		Showing: len(visible),
		Total:   len(all),
	})
}

// Get returns one order
func (h *OrderHandler) Get(w http.ResponseWriter, r *http.Request) {
	order, err := h.orderService.Get(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		middleware.RespondWithError(w, http.StatusNotFound, "order not found")
		return
	}
	middleware.RespondWithJSON(w, http.StatusOK, order)
}

// Create commits a draft order
func (h *OrderHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req CreateOrderRequest
	if err := middleware.DecodeAndValidate(r, &req); err != nil {
		h.logger.Debug("Order validation failed", zap.Error(err))
		if validationErrors := middleware.FormatValidationErrors(err); len(validationErrors) > 0 {
			middleware.RespondWithValidationErrors(w, validationErrors)
			return
		}
		middleware.RespondWithError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	order, err := h.orderService.Create(r.Context(), service.CreateOrderInput{
		CustomerID: req.CustomerID,
		Lines:      toOrderLines(req.Items),
	})
	if err != nil {
		h.respondOrderError(w, err, "failed to create order")
		return
	}

	h.logger.Info("Order created",
		zap.String("order_id", order.ID),
		zap.String("customer_id", order.CustomerID),
		zap.String("total", order.Total.StringFixed(2)),
	)
	middleware.RespondWithJSON(w, http.StatusCreated, order)
}

// Update applies a partial update to an order
func (h *OrderHandler) Update(w http.ResponseWriter, r *http.Request) {
	var req UpdateOrderRequest
	if err := middleware.DecodeAndValidate(r, &req); err != nil {
		h.logger.Debug("Order update validation failed", zap.Error(err))
		if validationErrors := middleware.FormatValidationErrors(err); len(validationErrors) > 0 {
			middleware.RespondWithValidationErrors(w, validationErrors)
			return
		}
		middleware.RespondWithError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	in := service.UpdateOrderInput{
		ShippingAddress: req.ShippingAddress,
	}
	if req.Status != nil {
		status := domain.OrderStatus(*req.Status)
		in.Status = &status
	}
	if req.Items != nil {
		in.Lines = toOrderLines(req.Items)
	}

	order, err := h.orderService.Update(r.Context(), chi.URLParam(r, "id"), in)
	if err != nil {
		h.respondOrderError(w, err, "failed to update order")
		return
	}

	h.logger.Info("Order updated", zap.String("order_id", order.ID))
	middleware.RespondWithJSON(w, http.StatusOK, order)
}

// Delete removes an order
func (h *OrderHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if err := h.orderService.Delete(r.Context(), id); err != nil {
		middleware.RespondWithError(w, http.StatusNotFound, "order not found")
		return
	}

	h.logger.Info("Order deleted", zap.String("order_id", id))
	middleware.RespondWithJSON(w, http.StatusOK, map[string]string{"message": "order deleted"})
}

// ExportCSV downloads the currently visible orders as pedidos.csv.
// An empty visible set is refused and no file is produced.
func (h *OrderHandler) ExportCSV(w http.ResponseWriter, r *http.Request) {
	f := orderFilterFromQuery(r)

	var buf bytes.Buffer
	count, err := h.orderService.ExportCSV(r.Context(), f, &buf)
	if err != nil {
		if errors.Is(err, export.ErrEmptyExport) {
			middleware.RespondWithError(w, http.StatusUnprocessableEntity, "no orders in the current list to export")
			return
		}
		h.logger.Error("Order CSV export failed", zap.Error(err))
		middleware.RespondWithError(w, http.StatusInternalServerError, "failed to export orders")
		return
	}

	h.logger.Info("Orders exported", zap.Int("rows", count))
	w.Header().Set("Content-Type", "text/csv; charset=utf-8")
	w.Header().Set("Content-Disposition", `attachment; filename="pedidos.csv"`)
	w.Header().Set("X-Export-Count", fmt.Sprintf("%d", count))
	w.WriteHeader(http.StatusOK)
	w.Write(buf.Bytes())
}

// ExportPDF downloads the printable document for one order
func (h *OrderHandler) ExportPDF(w http.ResponseWriter, r *http.Request) {
	var buf bytes.Buffer
	filename, err := h.orderService.ExportPDF(r.Context(), chi.URLParam(r, "id"), &buf)
	if err != nil {
		switch {
		case errors.Is(err, store.ErrOrderNotFound):
			middleware.RespondWithError(w, http.StatusNotFound, "order not found")
		case errors.Is(err, store.ErrCustomerNotFound):
			middleware.RespondWithError(w, http.StatusNotFound, "customer for this order no longer exists")
		default:
			h.logger.Error("Order PDF export failed", zap.Error(err))
			middleware.RespondWithError(w, http.StatusInternalServerError, "failed to generate order document")
		}
		return
	}

	h.logger.Info("Order document generated", zap.String("filename", filename))
	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	w.WriteHeader(http.StatusOK)
	w.Write(buf.Bytes())
}

// respondOrderError maps service errors onto HTTP statuses
func (h *OrderHandler) respondOrderError(w http.ResponseWriter, err error, fallback string) {
	switch {
	case errors.Is(err, store.ErrOrderNotFound):
		middleware.RespondWithError(w, http.StatusNotFound, "order not found")
	case errors.Is(err, store.ErrCustomerNotFound):
		middleware.RespondWithError(w, http.StatusBadRequest, "customer not found")
	case errors.Is(err, store.ErrProductNotFound):
		middleware.RespondWithError(w, http.StatusBadRequest, "product not found")
	case errors.Is(err, service.ErrNoItems),
		errors.Is(err, service.ErrInvalidQuantity),
		errors.Is(err, service.ErrInvalidStatus),
		errors.Is(err, service.ErrProductUnavailable):
		middleware.RespondWithError(w, http.StatusBadRequest, err.Error())
	default:
		h.logger.Error(fallback, zap.Error(err))
		middleware.RespondWithError(w, http.StatusInternalServerError, fallback)
	}
}

func toOrderLines(items []OrderLineRequest) []service.OrderLine {
	lines := make([]service.OrderLine, 0, len(items))
	for _, it := range items {
		lines = append(lines, service.OrderLine{ProductID: it.ProductID, Quantity: it.Quantity})
	}
	return lines
}
