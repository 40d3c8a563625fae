package store

import (
	"levoja-backoffice/internal/domain"

	"github.com/shopspring/decimal"
)

// Seed data for a fresh session. The collections are intentionally small:
// two customers, three products, four orders dated today. Note that the
// seeded order totals are the historical stored values and may differ
// from the exact sum of their items; any write through the services
// re-derives the total.

// SeedCustomers returns the initial customer collection
func SeedCustomers() []domain.Customer {
	return []domain.Customer{
		{
			ID:    "1",
			Name:  "Ana Silva",
			Email: "ana.silva@email.com",
			Phone: "11987654321",
			CPF:   "123.456.789-00",
			Address: domain.Address{
				Street:  "Rua das Flores",
				Number:  "123",
				ZipCode: "01000-000",
				City:    "São Paulo",
				State:   "SP",
			},
			Type:           domain.CustomerActive,
			SignupDate:     mustDate("2023-01-15"),
			TotalSpent:     decimal.RequireFromString("1250.50"),
			Avatar:         "https://placehold.co/36x36.png",
			AvatarFallback: "AS",
			AvatarHint:     "woman smiling",
		},
		{
			ID:    "2",
			Name:  "Bruno Costa",
			Email: "bruno.costa@email.com",
			Phone: "21912345678",
			CPF:   "987.654.321-00",
			Address: domain.Address{
				Street:  "Avenida Copacabana",
				Number:  "456",
				ZipCode: "22020-001",
				City:    "Rio de Janeiro",
				State:   "RJ",
			},
			Type:           domain.CustomerNew,
			SignupDate:     mustDate("2024-03-20"),
			TotalSpent:     decimal.RequireFromString("320.00"),
			Avatar:         "https://placehold.co/36x36.png",
			AvatarFallback: "BC",
			AvatarHint:     "man portrait",
		},
	}
}

// SeedProducts returns the initial product catalog
func SeedProducts() []domain.Product {
	return []domain.Product{
		{
			ID:            "1",
			Name:          "Camiseta Hyper-Brilho Laser",
			Status:        domain.ProductActive,
			Price:         decimal.RequireFromString("49.99"),
			Stock:         25,
			CreatedAt:     mustDate("2023-07-12"),
			ImageURL:      "https://placehold.co/64x64.png",
			ImageHint:     "tshirt product",
			Category:      "Vestuário",
			Brand:         "Hyper",
			UnitOfMeasure: domain.UnitUnit,
			Description:   "Camiseta de algodão com estampa a laser que brilha no escuro.",
		},
		{
			ID:            "2",
			Name:          "Moletom com Capuz Eco-Conforto",
			Status:        domain.ProductActive,
			Price:         decimal.RequireFromString("89.99"),
			Stock:         102,
			CreatedAt:     mustDate("2023-10-18"),
			ImageURL:      "https://placehold.co/64x64.png",
			ImageHint:     "hoodie product",
			Category:      "Vestuário",
			Brand:         "EcoWear",
			UnitOfMeasure: domain.UnitUnit,
			Description:   "Moletom sustentável feito com materiais reciclados.",
		},
		{
			ID:            "3",
			Name:          "Tênis de Corrida Zyon-Flex",
			Status:        domain.ProductArchived,
			Price:         decimal.RequireFromString("159.90"),
			Stock:         0,
			CreatedAt:     mustDate("2023-05-30"),
			ImageURL:      "https://placehold.co/64x64.png",
			ImageHint:     "sneaker product",
			Category:      "Calçados",
			Brand:         "Zyon",
			UnitOfMeasure: domain.UnitPair,
			Description:   "Tênis leve e flexível para corredores de todos os níveis.",
		},
	}
}

// SeedOrders returns the initial orders, all dated today so the default
// dashboard view is populated
func SeedOrders() []domain.Order {
	today := domain.Today()
	return []domain.Order{
		{
			ID:            "ORD001",
			CustomerID:    "1",
			CustomerName:  "Ana Silva",
			CustomerEmail: "ana.silva@email.com",
			Status:        domain.StatusConfirmed,
			OrderDate:     today,
			Total:         decimal.RequireFromString("190.00"),
			Items: []domain.OrderItem{
				{ID: "1", Name: "Camiseta Hyper-Brilho Laser", Quantity: 2, Price: decimal.RequireFromString("49.99")},
				{ID: "2", Name: "Moletom com Capuz Eco-Conforto", Quantity: 1, Price: decimal.RequireFromString("89.99")},
			},
			ShippingAddress: "Rua das Flores, 123, São Paulo, SP",
		},
		{
			ID:            "ORD002",
			CustomerID:    "2",
			CustomerName:  "Bruno Costa",
			CustomerEmail: "bruno.costa@email.com",
			Status:        domain.StatusInProgress,
			OrderDate:     today,
			Total:         decimal.RequireFromString("150.00"),
			Items: []domain.OrderItem{
				{ID: "1", Name: "Camiseta Hyper-Brilho Laser", Quantity: 3, Price: decimal.RequireFromString("49.99")},
			},
			ShippingAddress: "Avenida Copacabana, 456, Rio de Janeiro, RJ",
		},
		{
			ID:            "ORD003",
			CustomerID:    "1",
			CustomerName:  "Ana Silva",
			CustomerEmail: "ana.silva@email.com",
			Status:        domain.StatusOutForDelivery,
			OrderDate:     today,
			Total:         decimal.RequireFromString("340.00"),
			Items: []domain.OrderItem{
				{ID: "3", Name: "Tênis de Corrida Zyon-Flex", Quantity: 1, Price: decimal.RequireFromString("159.90")},
				{ID: "2", Name: "Moletom com Capuz Eco-Conforto", Quantity: 2, Price: decimal.RequireFromString("89.99")},
			},
			ShippingAddress: "Rua das Flores, 123, São Paulo, SP",
		},
		{
			ID:            "ORD004",
			CustomerID:    "2",
			CustomerName:  "Bruno Costa",
			CustomerEmail: "bruno.costa@email.com",
			Status:        domain.StatusCompleted,
			OrderDate:     today,
			Total:         decimal.RequireFromString("450.00"),
			Items: []domain.OrderItem{
				{ID: "1", Name: "Camiseta Hyper-Brilho Laser", Quantity: 9, Price: decimal.RequireFromString("49.99")},
			},
			ShippingAddress: "Avenida Copacabana, 456, Rio de Janeiro, RJ",
		},
	}
}

func mustDate(s string) domain.Date {
	d, err := domain.ParseDate(s)
	if err != nil {
		panic(err)
	}
	return d
}
