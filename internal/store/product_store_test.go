package store

import (
	"context"
	"errors"
	"testing"

	"levoja-backoffice/internal/domain"

	"github.com/shopspring/decimal"
)

func TestProductStoreCRUD(t *testing.T) {
	ctx := context.Background()
	store := NewProductStore(SeedProducts())

	if got := len(store.List(ctx)); got != 3 {
		t.Fatalf("Seeded list has %d products, want 3", got)
	}

	p := domain.Product{
		ID:            "novo-1",
		Name:          "Boné Estiloso",
		Status:        domain.ProductActive,
		Price:         decimal.RequireFromString("39.90"),
		Stock:         10,
		CreatedAt:     domain.Today(),
		Category:      "Acessórios",
		Brand:         "Hyper",
		UnitOfMeasure: domain.UnitUnit,
	}
	if err := store.Create(ctx, p); err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	list := store.List(ctx)
	if list[0].ID != "novo-1" {
		t.Errorf("New product should list first, got %q", list[0].ID)
	}

	p.Stock = 7
	if err := store.Update(ctx, p); err != nil {
		t.Fatalf("Update failed: %v", err)
	}
	got, err := store.FindByID(ctx, "novo-1")
	if err != nil {
		t.Fatalf("FindByID failed: %v", err)
	}
	if got.Stock != 7 {
		t.Errorf("Stock = %d, want 7", got.Stock)
	}

	if err := store.Delete(ctx, "novo-1"); err != nil {
		t.Fatalf("Delete failed: %v", err)
	}
	if _, err := store.FindByID(ctx, "novo-1"); !errors.Is(err, ErrProductNotFound) {
		t.Errorf("Expected ErrProductNotFound after delete, got %v", err)
	}
}

func TestProductStoreUnknownIDs(t *testing.T) {
	ctx := context.Background()
	store := NewProductStore(nil)

	if _, err := store.FindByID(ctx, "nope"); !errors.Is(err, ErrProductNotFound) {
		t.Errorf("FindByID: expected ErrProductNotFound, got %v", err)
	}
	if err := store.Update(ctx, domain.Product{ID: "nope"}); !errors.Is(err, ErrProductNotFound) {
		t.Errorf("Update: expected ErrProductNotFound, got %v", err)
	}
	if err := store.Delete(ctx, "nope"); !errors.Is(err, ErrProductNotFound) {
		t.Errorf("Delete: expected ErrProductNotFound, got %v", err)
	}
}

func TestProductStoreListIsACopy(t *testing.T) {
	ctx := context.Background()
	store := NewProductStore(SeedProducts())

	list := store.List(ctx)
	list[0].Name = "Adulterado"

	fresh := store.List(ctx)
	if fresh[0].Name == "Adulterado" {
		t.Error("Mutating a listed product leaked into the store")
	}
}

func TestCustomerStoreCRUD(t *testing.T) {
	ctx := context.Background()
	store := NewCustomerStore(SeedCustomers())

	if got := len(store.List(ctx)); got != 2 {
		t.Fatalf("Seeded list has %d customers, want 2", got)
	}

	c := domain.Customer{
		ID:         "novo-1",
		Name:       "Carla Mendes",
		Email:      "carla@email.com",
		Type:       domain.CustomerNew,
		SignupDate: domain.Today(),
		TotalSpent: decimal.Zero,
	}
	if err := store.Create(ctx, c); err != nil {
		t.Fatalf("Create failed: %v", err)
	}
	if list := store.List(ctx); list[0].ID != "novo-1" {
		t.Errorf("New customer should list first, got %q", list[0].ID)
	}

	c.Type = domain.CustomerActive
	if err := store.Update(ctx, c); err != nil {
		t.Fatalf("Update failed: %v", err)
	}
	got, _ := store.FindByID(ctx, "novo-1")
	if got.Type != domain.CustomerActive {
		t.Errorf("Type = %q, want Ativo", got.Type)
	}

	if err := store.Delete(ctx, "novo-1"); err != nil {
		t.Fatalf("Delete failed: %v", err)
	}
	if _, err := store.FindByID(ctx, "novo-1"); !errors.Is(err, ErrCustomerNotFound) {
		t.Errorf("Expected ErrCustomerNotFound after delete, got %v", err)
	}
}

func TestSeedDataIsConsistent(t *testing.T) {
	orders := SeedOrders()
	customers := SeedCustomers()
	products := SeedProducts()

	if len(orders) != 4 || len(customers) != 2 || len(products) != 3 {
		t.Fatalf("Unexpected seed sizes: %d orders, %d customers, %d products",
			len(orders), len(customers), len(products))
	}

	// Every seeded order references a seeded customer and seeded products
	customerIDs := map[string]bool{}
	for _, c := range customers {
		customerIDs[c.ID] = true
	}
	productIDs := map[string]bool{}
	for _, p := range products {
		productIDs[p.ID] = true
	}
	today := domain.Today()
	for _, o := range orders {
		if !customerIDs[o.CustomerID] {
			t.Errorf("Order %s references unknown customer %q", o.ID, o.CustomerID)
		}
		for _, it := range o.Items {
			if !productIDs[it.ID] {
				t.Errorf("Order %s references unknown product %q", o.ID, it.ID)
			}
		}
		if !o.OrderDate.SameDay(today) {
			t.Errorf("Order %s should be dated today", o.ID)
		}
	}
}
