// Package filter implements the pure visibility predicates used by the
// list views and exports: free-text search, status tab selection, and an
// optional calendar date range. Filtering is stable (the result is a
// subsequence of the input), deterministic, and never fails — malformed
// inputs degrade to matching everything.
package filter

import (
	"strings"

	"levoja-backoffice/internal/domain"
)

// TabAll is the tab value that matches every status
const TabAll = "todos"

// OrderFilter is the visibility context of the orders list
type OrderFilter struct {
	Query string
	Tab   string
	From  *domain.Date
	To    *domain.Date
}

// ProductFilter is the visibility context of the products list
type ProductFilter struct {
	Query string
	Tab   string
}

// Orders returns the visible subset of orders, preserving input order.
// Text search covers the order id, customer name, and customer email.
func Orders(orders []domain.Order, f OrderFilter) []domain.Order {
	out := make([]domain.Order, 0, len(orders))
	for _, o := range orders {
		if matchesOrder(o, f) {
			out = append(out, o)
		}
	}
	return out
}

func matchesOrder(o domain.Order, f OrderFilter) bool {
	return matchesTab(string(o.Status), f.Tab) &&
		matchesQuery(f.Query, o.ID, o.CustomerName, o.CustomerEmail) &&
		matchesDateRange(o.OrderDate, f.From, f.To)
}

// Products returns the visible subset of products, preserving input order.
// Text search covers the product name, category, and brand.
func Products(products []domain.Product, f ProductFilter) []domain.Product {
	out := make([]domain.Product, 0, len(products))
	for _, p := range products {
		if matchesTab(string(p.Status), f.Tab) && matchesQuery(f.Query, p.Name, p.Category, p.Brand) {
			out = append(out, p)
		}
	}
	return out
}

// Customers returns customers whose name or email contains the query,
// preserving input order.
func Customers(customers []domain.Customer, query string) []domain.Customer {
	out := make([]domain.Customer, 0, len(customers))
	for _, c := range customers {
		if matchesQuery(query, c.Name, c.Email) {
			out = append(out, c)
		}
	}
	return out
}

// matchesQuery is a case-insensitive substring test over the given fields.
// An empty query matches everything.
func matchesQuery(query string, fields ...string) bool {
	if query == "" {
		return true
	}
	q := strings.ToLower(query)
	for _, field := range fields {
		if strings.Contains(strings.ToLower(field), q) {
			return true
		}
	}
	return false
}

// matchesTab compares a status label against a tab key. Tab keys are
// hyphenated slugs of the labels ("em-andamento" selects "Em Andamento");
// an empty tab or TabAll matches everything.
func matchesTab(status, tab string) bool {
	if tab == "" || tab == TabAll {
		return true
	}
	return strings.EqualFold(status, strings.ReplaceAll(tab, "-", " "))
}

// matchesDateRange applies the calendar range semantics: no lower bound
// matches everything; a lone From matches only that calendar day; From+To
// matches the inclusive day span.
func matchesDateRange(d domain.Date, from, to *domain.Date) bool {
	if from == nil {
		return true
	}
	if to == nil {
		return d.SameDay(*from)
	}
	return d.Within(*from, *to)
}
