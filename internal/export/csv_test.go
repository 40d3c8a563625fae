package export

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"levoja-backoffice/internal/domain"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEscapeField(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"plain", "plain"},
		{"with space", "with space"},
		{"O'Brien, Jr.", `"O'Brien, Jr."`},
		{`He said "hi"`, `"He said ""hi"""`},
		{"line\nbreak", "\"line\nbreak\""},
		{"", ""},
		{"ção", "ção"}, // accents alone never trigger quoting
	}
	for _, tc := range cases {
		if got := escapeField(tc.in); got != tc.want {
			t.Errorf("escapeField(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestOrdersCSVRefusesEmptyList(t *testing.T) {
	var buf bytes.Buffer
	count, err := OrdersCSV(&buf, nil)

	if !errors.Is(err, ErrEmptyExport) {
		t.Fatalf("Expected ErrEmptyExport, got %v", err)
	}
	if count != 0 {
		t.Errorf("Count = %d, want 0", count)
	}
	if buf.Len() != 0 {
		t.Errorf("Empty export must write nothing, wrote %d bytes", buf.Len())
	}
}

func TestOrdersCSVOutput(t *testing.T) {
	orders := []domain.Order{
		{
			ID:            "ORD001",
			CustomerName:  "O'Brien, Jr.",
			CustomerEmail: "obrien@email.com",
			Status:        domain.StatusConfirmed,
			OrderDate:     mustDate("2024-03-20"),
			Total:         decimal.RequireFromString("189.97"),
			Items: []domain.OrderItem{
				{ID: "1", Name: "Camiseta Hyper-Brilho Laser", Quantity: 2, Price: decimal.RequireFromString("49.99")},
				{ID: "2", Name: "Moletom com Capuz Eco-Conforto", Quantity: 1, Price: decimal.RequireFromString("89.99")},
			},
			ShippingAddress: "Rua das Flores, 123 - São Paulo, SP",
		},
	}

	var buf bytes.Buffer
	count, err := OrdersCSV(&buf, orders)
	require.NoError(t, err)
	assert.Equal(t, 1, count)

	out := buf.String()
	require.True(t, strings.HasPrefix(out, "\uFEFF"), "output must start with the UTF-8 BOM")

	lines := strings.Split(strings.TrimPrefix(out, "\uFEFF"), "\n")
	require.Len(t, lines, 2)

	assert.Equal(t,
		"ID do Pedido,Nome do Cliente,Email do Cliente,Status,Data do Pedido,Total,Endereço de Entrega,Itens",
		lines[0])
	assert.Equal(t,
		`ORD001,"O'Brien, Jr.",obrien@email.com,Confirmado,2024-03-20,189.97,"Rua das Flores, 123 - São Paulo, SP",2x Camiseta Hyper-Brilho Laser; 1x Moletom com Capuz Eco-Conforto`,
		lines[1])
}

func TestOrdersCSVQuotesEmbeddedQuotes(t *testing.T) {
	orders := []domain.Order{
		{
			ID:           "ORD001",
			CustomerName: `Loja "Central"`,
			Status:       domain.StatusCompleted,
			OrderDate:    mustDate("2024-01-02"),
			Total:        decimal.RequireFromString("10.00"),
		},
	}

	var buf bytes.Buffer
	_, err := OrdersCSV(&buf, orders)
	require.NoError(t, err)

	assert.Contains(t, buf.String(), `"Loja ""Central"""`)
}

func TestOrdersCSVTotalsHaveTwoDecimals(t *testing.T) {
	orders := []domain.Order{
		{ID: "ORD001", CustomerName: "Ana", Status: domain.StatusConfirmed, OrderDate: mustDate("2024-01-02"), Total: decimal.RequireFromString("150")},
		{ID: "ORD002", CustomerName: "Ana", Status: domain.StatusConfirmed, OrderDate: mustDate("2024-01-02"), Total: decimal.RequireFromString("99.9")},
	}

	var buf bytes.Buffer
	count, err := OrdersCSV(&buf, orders)
	require.NoError(t, err)
	assert.Equal(t, 2, count)

	assert.Contains(t, buf.String(), ",150.00,")
	assert.Contains(t, buf.String(), ",99.90,")
}

func TestProductsCSVOutput(t *testing.T) {
	products := []domain.Product{
		{
			ID:            "1",
			Name:          "Camiseta Hyper-Brilho Laser",
			Status:        domain.ProductActive,
			Price:         decimal.RequireFromString("49.99"),
			Stock:         25,
			CreatedAt:     mustDate("2023-07-12"),
			ImageURL:      "https://placehold.co/64x64.png",
			Category:      "Vestuário",
			Brand:         "Hyper",
			UnitOfMeasure: domain.UnitUnit,
			Description:   "Camiseta de algodão, estampa a laser.",
		},
	}

	var buf bytes.Buffer
	count, err := ProductsCSV(&buf, products)
	require.NoError(t, err)
	assert.Equal(t, 1, count)

	out := strings.TrimPrefix(buf.String(), "\uFEFF")
	lines := strings.Split(out, "\n")
	require.Len(t, lines, 2)

	assert.Equal(t,
		"ID,Nome,Status,Preço,Estoque,Criado em,URL da Imagem,Categoria,Marca,Unidade de Medida,Descrição",
		lines[0])
	// The description contains a comma, so it is the only quoted field
	assert.Equal(t,
		`1,Camiseta Hyper-Brilho Laser,Ativo,49.99,25,2023-07-12,https://placehold.co/64x64.png,Vestuário,Hyper,Unidade,"Camiseta de algodão, estampa a laser."`,
		lines[1])
}

func TestProductsCSVRefusesEmptyList(t *testing.T) {
	var buf bytes.Buffer
	count, err := ProductsCSV(&buf, []domain.Product{})

	assert.ErrorIs(t, err, ErrEmptyExport)
	assert.Equal(t, 0, count)
	assert.Zero(t, buf.Len())
}

func mustDate(s string) domain.Date {
	d, err := domain.ParseDate(s)
	if err != nil {
		panic(err)
	}
	return d
}
