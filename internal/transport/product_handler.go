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
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

// CreateProductRequest adds a catalog entry
type CreateProductRequest struct {
	Name          string          `json:"name" validate:"required"`
	Price         decimal.Decimal `json:"price" validate:"required"`
	Stock         int             `json:"stock" validate:"gte=0"`
	Category      string          `json:"category" validate:"required"`
	Brand         string          `json:"brand" validate:"required"`
	UnitOfMeasure string          `json:"unit_of_measure" validate:"required,oneof=Unidade Par Kg Litro Caixa"`
	Description   string          `json:"description"`
	ImageURL      string          `json:"image_url"`
	ImageHint     string          `json:"image_hint"`
}

// UpdateProductRequest is a partial product update
type UpdateProductRequest struct {
	Name          *string          `json:"name,omitempty"`
	Status        *string          `json:"status,omitempty" validate:"omitempty,oneof=Ativo Arquivado"`
	Price         *decimal.Decimal `json:"price,omitempty"`
	Stock         *int             `json:"stock,omitempty" validate:"omitempty,gte=0"`
	Category      *string          `json:"category,omitempty"`
	Brand         *string          `json:"brand,omitempty"`
	UnitOfMeasure *string          `json:"unit_of_measure,omitempty" validate:"omitempty,oneof=Unidade Par Kg Litro Caixa"`
	Description   *string          `json:"description,omitempty"`
	ImageURL      *string          `json:"image_url,omitempty"`
}

// ProductListResponse is the product listing with visibility counts
type ProductListResponse struct {
	Products []domain.Product `json:"products"`
	Showing  int              `json:"showing"`
	Total    int              `json:"total"`
}

// ProductHandler handles HTTP requests for catalog operations
type ProductHandler struct {
	productService service.ProductService
	logger         *zap.Logger
}

// NewProductHandler creates a new ProductHandler
func NewProductHandler(productService service.ProductService, logger *zap.Logger) *ProductHandler {
	return &ProductHandler{productService: productService, logger: logger}
}

// RegisterRoutes registers all product routes behind the auth middleware;
// deletion additionally requires the admin role
func (h *ProductHandler) RegisterRoutes(r chi.Router, authMiddleware, adminMiddleware func(http.Handler) http.Handler) {
	r.Route("/api/products", func(r chi.Router) {
		r.Use(authMiddleware)
		r.Get("/", h.List)
		r.Post("/", h.Create)
		r.Get("/active", h.Active)
		r.Get("/export", h.ExportCSV)
		r.Get("/{id}", h.Get)
		r.Put("/{id}", h.Update)

		r.Group(func(r chi.Router) {
			r.Use(adminMiddleware)
			r.Delete("/{id}", h.Delete)
		})
	})
}

func productFilterFromQuery(r *http.Request) filter.ProductFilter {
	q := r.URL.Query()
	return filter.ProductFilter{
		Query: q.Get("query"),
		Tab:   q.Get("status"),
	}
}

// List returns the products visible under the request filter
func (h *ProductHandler) List(w http.ResponseWriter, r *http.Request) {
	f := productFilterFromQuery(r)
	visible := h.productService.List(r.Context(), f)
	all := h.productService.List(r.Context(), filter.ProductFilter{})

	middleware.RespondWithJSON(w, http.StatusOK, ProductListResponse{
		Products: visible,
		Showing:  len(visible),
		Total:    len(all),
	})
}

// Active returns the products offered when composing a new order
func (h *ProductHandler) Active(w http.ResponseWriter, r *http.Request) {
	middleware.RespondWithJSON(w, http.StatusOK, h.productService.Active(r.Context()))
}

// Get returns one product
func (h *ProductHandler) Get(w http.ResponseWriter, r *http.Request) {
	product, err := h.productService.Get(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		middleware.RespondWithError(w, http.StatusNotFound, "product not found")
		return
	}
	middleware.RespondWithJSON(w, http.StatusOK, product)
}

// Create adds a catalog entry
func (h *ProductHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req CreateProductRequest
	if err := middleware.DecodeAndValidate(r, &req); err != nil {
		h.logger.Debug("Product validation failed", zap.Error(err))
		if validationErrors := middleware.FormatValidationErrors(err); len(validationErrors) > 0 {
			middleware.RespondWithValidationErrors(w, validationErrors)
			return
		}
		middleware.RespondWithError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	product, err := h.productService.Create(r.Context(), service.CreateProductInput{
		Name:          req.Name,
		Price:         req.Price,
		Stock:         req.Stock,
		Category:      req.Category,
		Brand:         req.Brand,
		UnitOfMeasure: domain.UnitOfMeasure(req.UnitOfMeasure),
		Description:   req.Description,
		ImageURL:      req.ImageURL,
		ImageHint:     req.ImageHint,
	})
	if err != nil {
		h.respondProductError(w, err, "failed to create product")
		return
	}

	h.logger.Info("Product created", zap.String("product_id", product.ID), zap.String("name", product.Name))
	middleware.RespondWithJSON(w, http.StatusCreated, product)
}

// Update applies a partial update to a catalog entry
func (h *ProductHandler) Update(w http.ResponseWriter, r *http.Request) {
	var req UpdateProductRequest
	if err := middleware.DecodeAndValidate(r, &req); err != nil {
		h.logger.Debug("Product update validation failed", zap.Error(err))
		if validationErrors := middleware.FormatValidationErrors(err); len(validationErrors) > 0 {
			middleware.RespondWithValidationErrors(w, validationErrors)
			return
		}
		middleware.RespondWithError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	in := service.UpdateProductInput{
		Name:        req.Name,
		Price:       req.Price,
		Stock:       req.Stock,
		Category:    req.Category,
		Brand:       req.Brand,
		Description: req.Description,
		ImageURL:    req.ImageURL,
	}
	if req.Status != nil {
		status := domain.ProductStatus(*req.Status)
		in.Status = &status
	}
	if req.UnitOfMeasure != nil {
		unit := domain.UnitOfMeasure(*req.UnitOfMeasure)
		in.UnitOfMeasure = &unit
	}

	product, err := h.productService.Update(r.Context(), chi.URLParam(r, "id"), in)
	if err != nil {
		h.respondProductError(w, err, "failed to update product")
		return
	}

	h.logger.Info("Product updated", zap.String("product_id", product.ID))
	middleware.RespondWithJSON(w, http.StatusOK, product)
}

// Delete removes a product from the catalog
func (h *ProductHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if err := h.productService.Delete(r.Context(), id); err != nil {
		middleware.RespondWithError(w, http.StatusNotFound, "product not found")
		return
	}

	h.logger.Info("Product deleted", zap.String("product_id", id))
	middleware.RespondWithJSON(w, http.StatusOK, map[string]string{"message": "product deleted"})
}

// ExportCSV downloads the currently visible products as produtos.csv
func (h *ProductHandler) ExportCSV(w http.ResponseWriter, r *http.Request) {
	f := productFilterFromQuery(r)

	var buf bytes.Buffer
	count, err := h.productService.ExportCSV(r.Context(), f, &buf)
	if err != nil {
		if errors.Is(err, export.ErrEmptyExport) {
			middleware.RespondWithError(w, http.StatusUnprocessableEntity, "no products in the current list to export")
			return
		}
		h.logger.Error("Product CSV export failed", zap.Error(err))
		middleware.RespondWithError(w, http.StatusInternalServerError, "failed to export products")
		return
	}

	h.logger.Info("Products exported", zap.Int("rows", count))
	w.Header().Set("Content-Type", "text/csv; charset=utf-8")
	w.Header().Set("Content-Disposition", `attachment; filename="produtos.csv"`)
	w.Header().Set("X-Export-Count", fmt.Sprintf("%d", count))
	w.WriteHeader(http.StatusOK)
	w.Write(buf.Bytes())
}

func (h *ProductHandler) respondProductError(w http.ResponseWriter, err error, fallback string) {
	switch {
	case errors.Is(err, store.ErrProductNotFound):
		middleware.RespondWithError(w, http.StatusNotFound, "product not found")
	case errors.Is(err, service.ErrInvalidProductStatus),
		errors.Is(err, service.ErrInvalidUnitOfMeasure),
		errors.Is(err, service.ErrNegativePrice),
		errors.Is(err, service.ErrNegativeStock):
		middleware.RespondWithError(w, http.StatusBadRequest, err.Error())
	default:
		h.logger.Error(fallback, zap.Error(err))
		middleware.RespondWithError(w, http.StatusInternalServerError, fallback)
	}
}
