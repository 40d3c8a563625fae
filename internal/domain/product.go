package domain

import "github.com/shopspring/decimal"

// ProductStatus is the catalog lifecycle state of a product
type ProductStatus string

const (
	ProductActive   ProductStatus = "Ativo"
	ProductArchived ProductStatus = "Arquivado"
)

// ValidProductStatus reports whether s is a known product status
func ValidProductStatus(s ProductStatus) bool {
	return s == ProductActive || s == ProductArchived
}

// UnitOfMeasure is the selling unit of a product
type UnitOfMeasure string

const (
	UnitUnit  UnitOfMeasure = "Unidade"
	UnitPair  UnitOfMeasure = "Par"
	UnitKilo  UnitOfMeasure = "Kg"
	UnitLiter UnitOfMeasure = "Litro"
	UnitBox   UnitOfMeasure = "Caixa"
)

// ValidUnitOfMeasure reports whether u is a known unit of measure
func ValidUnitOfMeasure(u UnitOfMeasure) bool {
	switch u {
	case UnitUnit, UnitPair, UnitKilo, UnitLiter, UnitBox:
		return true
	}
	return false
}

// Product represents a product in the catalog. Archived products stay
// listed but are excluded from the set offered when composing orders.
type Product struct {
	ID            string          `json:"id"`
	Name          string          `json:"name"`
	Status        ProductStatus   `json:"status"`
	Price         decimal.Decimal `json:"price"`
	Stock         int             `json:"stock"`
	CreatedAt     Date            `json:"created_at"`
	ImageURL      string          `json:"image_url"`
	ImageHint     string          `json:"image_hint"`
	Category      string          `json:"category"`
	Brand         string          `json:"brand"`
	UnitOfMeasure UnitOfMeasure   `json:"unit_of_measure"`
	Description   string          `json:"description"`
}
