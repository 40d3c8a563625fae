package export

import (
	"fmt"
	"io"
	"strings"

	"levoja-backoffice/internal/domain"

	"github.com/go-pdf/fpdf"
	"github.com/shopspring/decimal"
)

const issuerName = "Levo Já"

// OrderPDF renders a printable document for one order and writes it to w.
// Layout, top to bottom: issuer header, order id and date, customer block
// (name, phone, formatted address), itemized table with per-line
// subtotals, and the order's stored total. The customer record provides
// the contact details exactly as the order detail dialog did; nothing is
// written to w if rendering fails.
func OrderPDF(w io.Writer, order domain.Order, customer domain.Customer) error {
	pdf := fpdf.New("P", "mm", "A4", "")
	tr := pdf.UnicodeTranslatorFromDescriptor("")
	pdf.AddPage()
	y := 20.0

	pdf.SetFont("Helvetica", "B", 20)
	pdf.Text(20, y, tr(issuerName))
	y += 8

	pdf.SetFont("Helvetica", "", 12)
	pdf.Text(20, y, tr(fmt.Sprintf("Pedido: #%s", order.ID)))
	pdf.Text(140, y, tr(fmt.Sprintf("Data: %s", order.OrderDate.BR())))
	y += 10

	pdf.SetLineWidth(0.5)
	pdf.Line(20, y, 190, y)
	y += 10

	pdf.SetFont("Helvetica", "B", 14)
	pdf.Text(20, y, "Cliente")
	y += 7

	pdf.SetFont("Helvetica", "", 10)
	pdf.Text(20, y, tr(customer.Name))
	y += 5
	pdf.Text(20, y, tr(customer.Phone))
	y += 5
	pdf.Text(20, y, tr(customer.Address.Format()))
	y += 15

	pdf.SetFont("Helvetica", "B", 14)
	pdf.Text(20, y, "Itens do Pedido")
	y += 7

	pdf.SetFont("Helvetica", "B", 10)
	pdf.Text(20, y, "Produto")
	textRight(pdf, 130, y, "Qtd.")
	textRight(pdf, 160, y, tr("Preço Unit."))
	textRight(pdf, 190, y, "Subtotal")
	y += 3
	pdf.SetLineWidth(0.2)
	pdf.Line(20, y, 190, y)
	y += 5

	pdf.SetFont("Helvetica", "", 10)
	for _, item := range order.Items {
		if y > 270 {
			pdf.AddPage()
			y = 20
		}
		pdf.Text(20, y, tr(item.Name))
		textRight(pdf, 130, y, fmt.Sprintf("%d", item.Quantity))
		textRight(pdf, 160, y, tr(FormatBRL(item.Price)))
		textRight(pdf, 190, y, tr(FormatBRL(item.Subtotal())))
		y += 7
	}

	y += 5
	pdf.Line(130, y, 190, y)
	y += 7

	pdf.SetFont("Helvetica", "B", 12)
	pdf.Text(130, y, "Total:")
	textRight(pdf, 190, y, tr(FormatBRL(order.Total)))

	if err := pdf.Output(w); err != nil {
		return fmt.Errorf("failed to render order document: %w", err)
	}
	return nil
}

// OrderPDFFilename is the deterministic download name for an order document
func OrderPDFFilename(orderID string) string {
	return fmt.Sprintf("Pedido-%s.pdf", orderID)
}

func textRight(pdf *fpdf.Fpdf, x, y float64, s string) {
	pdf.Text(x-pdf.GetStringWidth(s), y, s)
}

// FormatBRL renders a monetary value the Brazilian way: R$ 1.234,56.
// Used only for display surfaces (PDF); CSV keeps plain decimals.
func FormatBRL(d decimal.Decimal) string {
	s := d.StringFixed(2)
	negative := strings.HasPrefix(s, "-")
	s = strings.TrimPrefix(s, "-")

	intPart, fracPart, _ := strings.Cut(s, ".")
	var groups []string
	for len(intPart) > 3 {
		groups = append([]string{intPart[len(intPart)-3:]}, groups...)
		intPart = intPart[:len(intPart)-3]
	}
	groups = append([]string{intPart}, groups...)

	out := "R$ " + strings.Join(groups, ".") + "," + fracPart
	if negative {
		out = "-" + out
	}
	return out
}
