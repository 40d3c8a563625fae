package transport

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"levoja-backoffice/internal/service"
	"levoja-backoffice/internal/store"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// passthrough stands in for the auth middlewares; the middleware package
// has its own tests for token handling and role checks.
func passthrough(next http.Handler) http.Handler { return next }

type fixture struct {
	router    *chi.Mux
	orders    store.OrderStore
	customers store.CustomerStore
	products  store.ProductStore
}

func newFixture() fixture {
	logger, _ := zap.NewDevelopment()

	orders := store.NewOrderStore(store.SeedOrders())
	customers := store.NewCustomerStore(store.SeedCustomers())
	products := store.NewProductStore(store.SeedProducts())

	orderService := service.NewOrderService(orders, customers, products)
	productService := service.NewProductService(products)
	customerService := service.NewCustomerService(customers)

	r := chi.NewRouter()
	NewOrderHandler(orderService, logger).RegisterRoutes(r, passthrough, passthrough)
	NewProductHandler(productService, logger).RegisterRoutes(r, passthrough, passthrough)
	NewCustomerHandler(customerService, logger).RegisterRoutes(r, passthrough, passthrough)

	return fixture{router: r, orders: orders, customers: customers, products: products}
}

func doJSON(t *testing.T, router *chi.Mux, method, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("Failed to marshal request body: %v", err)
		}
		reader = bytes.NewReader(b)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder, v interface{}) {
	t.Helper()
	if err := json.Unmarshal(w.Body.Bytes(), v); err != nil {
		t.Fatalf("Failed to decode response body: %v\n%s", err, w.Body.String())
	}
}
