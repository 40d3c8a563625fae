package transport

import (
	"net/http"
	"strings"
	"testing"

	"levoja-backoffice/internal/domain"
)

func validCustomerRequest() CreateCustomerRequest {
	return CreateCustomerRequest{
		Name:  "Carla Mendes",
		Email: "carla@email.com",
		Phone: "31999887766",
		CPF:   "111.222.333-44",
		Address: AddressRequest{
			Street:  "Rua Aimorés",
			Number:  "500",
			ZipCode: "30140-070",
			City:    "Belo Horizonte",
			State:   "MG",
		},
	}
}

func TestCustomerListSearch(t *testing.T) {
	fx := newFixture()

	w := doJSON(t, fx.router, "GET", "/api/customers/?query=bruno", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("Code = %d, want 200", w.Code)
	}

	var resp CustomerListResponse
	decodeBody(t, w, &resp)
	if resp.Showing != 1 || resp.Total != 2 {
		t.Errorf("Showing/Total = %d/%d, want 1/2", resp.Showing, resp.Total)
	}
	if len(resp.Customers) != 1 || resp.Customers[0].Name != "Bruno Costa" {
		t.Errorf("Customers = %+v", resp.Customers)
	}
}

func TestCustomerCreate(t *testing.T) {
	fx := newFixture()

	w := doJSON(t, fx.router, "POST", "/api/customers/", validCustomerRequest())
	if w.Code != http.StatusCreated {
		t.Fatalf("Code = %d, want 201\n%s", w.Code, w.Body.String())
	}

	var customer domain.Customer
	decodeBody(t, w, &customer)
	if customer.Type != domain.CustomerNew {
		t.Errorf("Type = %q, want Novo", customer.Type)
	}
	if customer.AvatarFallback != "CM" {
		t.Errorf("AvatarFallback = %q, want CM", customer.AvatarFallback)
	}
}

func TestCustomerCreateValidationFailure(t *testing.T) {
	fx := newFixture()

	req := validCustomerRequest()
	req.Email = "nao-e-um-email"
	w := doJSON(t, fx.router, "POST", "/api/customers/", req)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("Code = %d, want 400", w.Code)
	}
	if !strings.Contains(w.Body.String(), "validation_errors") {
		t.Errorf("Expected validation error details, got %s", w.Body.String())
	}
}

func TestCustomerUpdate(t *testing.T) {
	fx := newFixture()

	name := "Ana Paula Rocha"
	w := doJSON(t, fx.router, "PUT", "/api/customers/1", UpdateCustomerRequest{Name: &name})
	if w.Code != http.StatusOK {
		t.Fatalf("Code = %d, want 200\n%s", w.Code, w.Body.String())
	}

	var customer domain.Customer
	decodeBody(t, w, &customer)
	if customer.AvatarFallback != "APR" {
		t.Errorf("AvatarFallback = %q, want APR", customer.AvatarFallback)
	}

	bad := "VIP"
	if w := doJSON(t, fx.router, "PUT", "/api/customers/1", UpdateCustomerRequest{Type: &bad}); w.Code != http.StatusBadRequest {
		t.Errorf("Unknown type: Code = %d, want 400", w.Code)
	}
}

func TestCustomerDeleteKeepsOrderSnapshots(t *testing.T) {
	fx := newFixture()

	if w := doJSON(t, fx.router, "DELETE", "/api/customers/1", nil); w.Code != http.StatusOK {
		t.Fatalf("Delete: Code = %d, want 200", w.Code)
	}

	w := doJSON(t, fx.router, "GET", "/api/orders/ORD001", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("Order lookup after customer deletion: Code = %d", w.Code)
	}

	var order domain.Order
	decodeBody(t, w, &order)
	if order.CustomerName != "Ana Silva" {
		t.Errorf("Snapshot lost after customer deletion: %q", order.CustomerName)
	}
}
