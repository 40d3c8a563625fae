package domain

import (
	"strings"

	"github.com/shopspring/decimal"
)

// CustomerType classifies a customer on the back-office listing
type CustomerType string

const (
	CustomerActive   CustomerType = "Ativo"
	CustomerNew      CustomerType = "Novo"
	CustomerInactive CustomerType = "Inativo"
)

// ValidCustomerType reports whether t is one of the known customer types
func ValidCustomerType(t CustomerType) bool {
	switch t {
	case CustomerActive, CustomerNew, CustomerInactive:
		return true
	}
	return false
}

// Address is a structured Brazilian postal address
type Address struct {
	Street     string `json:"street"`
	Number     string `json:"number"`
	Complement string `json:"complement,omitempty"`
	ZipCode    string `json:"zip_code"`
	City       string `json:"city"`
	State      string `json:"state"`
}

// Format renders the address as a single shipping line:
// "Street, Number[, Complement] - City, State"
func (a Address) Format() string {
	var b strings.Builder
	b.WriteString(a.Street)
	b.WriteString(", ")
	b.WriteString(a.Number)
	if a.Complement != "" {
		b.WriteString(", ")
		b.WriteString(a.Complement)
	}
	b.WriteString(" - ")
	b.WriteString(a.City)
	b.WriteString(", ")
	b.WriteString(a.State)
	return b.String()
}

// Customer represents a registered customer
type Customer struct {
	ID             string          `json:"id"`
	Name           string          `json:"name"`
	Email          string          `json:"email"`
	Phone          string          `json:"phone"`
	CPF            string          `json:"cpf"`
	Address        Address         `json:"address"`
	Type           CustomerType    `json:"type"`
	SignupDate     Date            `json:"signup_date"`
	TotalSpent     decimal.Decimal `json:"total_spent"`
	Avatar         string          `json:"avatar"`
	AvatarFallback string          `json:"avatar_fallback"`
	AvatarHint     string          `json:"avatar_hint"`
}

// Initials derives the avatar fallback from a customer name
// ("Ana Silva" -> "AS")
func Initials(name string) string {
	var b strings.Builder
	for _, part := range strings.Fields(name) {
		runes := []rune(part)
		if len(runes) > 0 {
			b.WriteRune(runes[0])
		}
	}
	return strings.ToUpper(b.String())
}
