package domain

import "github.com/shopspring/decimal"

func init() {
	// Monetary values are plain JSON numbers on the wire, matching the
	// numeric totals the dashboard consumes.
	decimal.MarshalJSONWithoutQuotes = true
}

// OrderStatus is the fulfillment state of an order. There is no enforced
// transition order: any status can be set from any other via an edit.
type OrderStatus string

const (
	StatusConfirmed      OrderStatus = "Confirmado"
	StatusInProgress     OrderStatus = "Em Andamento"
	StatusOutForDelivery OrderStatus = "Saiu para Entrega"
	StatusCompleted      OrderStatus = "Finalizado"
)

// OrderStatuses lists all statuses in display order
var OrderStatuses = []OrderStatus{
	StatusConfirmed,
	StatusInProgress,
	StatusOutForDelivery,
	StatusCompleted,
}

// ValidOrderStatus reports whether s is a known order status
func ValidOrderStatus(s OrderStatus) bool {
	for _, known := range OrderStatuses {
		if s == known {
			return true
		}
	}
	return false
}

// OrderItem is one product line within an order. ID is the product id and
// acts as the line key; name and unit price are snapshots taken when the
// line was added, so the order survives later product edits.
type OrderItem struct {
	ID       string          `json:"id"`
	Name     string          `json:"name"`
	Quantity int             `json:"quantity"`
	Price    decimal.Decimal `json:"price"`
}

// Subtotal is quantity times the snapshotted unit price, exact
func (it OrderItem) Subtotal() decimal.Decimal {
	return it.Price.Mul(decimal.NewFromInt(int64(it.Quantity)))
}

// Order represents a customer order. CustomerID is a weak reference: the
// customer name, email and shipping address are denormalized snapshots
// taken at creation time, so the order survives customer deletion and
// keeps reflecting the customer's details at the time of purchase.
type Order struct {
	ID              string          `json:"id"`
	CustomerID      string          `json:"customer_id"`
	CustomerName    string          `json:"customer_name"`
	CustomerEmail   string          `json:"customer_email"`
	Status          OrderStatus     `json:"status"`
	OrderDate       Date            `json:"order_date"`
	Total           decimal.Decimal `json:"total"`
	Items           []OrderItem     `json:"items"`
	ShippingAddress string          `json:"shipping_address"`
}

// Clone returns a deep copy so callers can never alias store-owned items
func (o Order) Clone() Order {
	out := o
	out.Items = make([]OrderItem, len(o.Items))
	copy(out.Items, o.Items)
	return out
}

// ItemsTotal sums the line subtotals of all items, exact. Rounding to two
// decimals happens only at display time.
func ItemsTotal(items []OrderItem) decimal.Decimal {
	total := decimal.Zero
	for _, it := range items {
		total = total.Add(it.Subtotal())
	}
	return total
}

// MergeItem adds item to the line list. If a line for the same product id
// already exists, quantities are added onto that line instead of appending
// a duplicate. The input slice is not mutated; a new slice is returned.
func MergeItem(items []OrderItem, item OrderItem) []OrderItem {
	out := make([]OrderItem, len(items))
	copy(out, items)
	for i, existing := range out {
		if existing.ID == item.ID {
			out[i].Quantity += item.Quantity
			return out
		}
	}
	return append(out, item)
}
