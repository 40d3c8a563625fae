// Package export serializes order and product collections into the
// downloadable artifacts of the back office: CSV spreadsheets and
// printable PDF order documents.
package export

import (
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"levoja-backoffice/internal/domain"
)

// ErrEmptyExport is returned when an export is requested over zero
// visible rows; no bytes are written in that case.
var ErrEmptyExport = errors.New("no rows to export")

// utf8BOM makes spreadsheet tools detect the encoding correctly
const utf8BOM = "\uFEFF"

var orderCSVHeader = []string{
	"ID do Pedido",
	"Nome do Cliente",
	"Email do Cliente",
	"Status",
	"Data do Pedido",
	"Total",
	"Endereço de Entrega",
	"Itens",
}

var productCSVHeader = []string{
	"ID",
	"Nome",
	"Status",
	"Preço",
	"Estoque",
	"Criado em",
	"URL da Imagem",
	"Categoria",
	"Marca",
	"Unidade de Medida",
	"Descrição",
}

// OrdersCSV writes the given orders as CSV and returns the number of data
// rows written. Currency is plain 2-decimal (not locale formatted) and
// items are flattened into a single "2x Name; 1x Other" field.
func OrdersCSV(w io.Writer, orders []domain.Order) (int, error) {
	if len(orders) == 0 {
		return 0, ErrEmptyExport
	}

	rows := make([][]string, 0, len(orders))
	for _, o := range orders {
		items := make([]string, 0, len(o.Items))
		for _, it := range o.Items {
			items = append(items, fmt.Sprintf("%dx %s", it.Quantity, it.Name))
		}
		rows = append(rows, []string{
			o.ID,
			o.CustomerName,
			o.CustomerEmail,
			string(o.Status),
			o.OrderDate.String(),
			o.Total.StringFixed(2),
			o.ShippingAddress,
			strings.Join(items, "; "),
		})
	}

	if err := writeCSV(w, orderCSVHeader, rows); err != nil {
		return 0, err
	}
	return len(rows), nil
}

// ProductsCSV writes the given products as CSV and returns the number of
// data rows written.
func ProductsCSV(w io.Writer, products []domain.Product) (int, error) {
	if len(products) == 0 {
		return 0, ErrEmptyExport
	}

	rows := make([][]string, 0, len(products))
	for _, p := range products {
		rows = append(rows, []string{
			p.ID,
			p.Name,
			string(p.Status),
			p.Price.StringFixed(2),
			strconv.Itoa(p.Stock),
			p.CreatedAt.String(),
			p.ImageURL,
			p.Category,
			p.Brand,
			string(p.UnitOfMeasure),
			p.Description,
		})
	}

	if err := writeCSV(w, productCSVHeader, rows); err != nil {
		return 0, err
	}
	return len(rows), nil
}

func writeCSV(w io.Writer, header []string, rows [][]string) error {
	var b strings.Builder
	b.WriteString(utf8BOM)
	writeRecord(&b, header)
	for _, row := range rows {
		b.WriteByte('\n')
		writeRecord(&b, row)
	}
	if _, err := io.WriteString(w, b.String()); err != nil {
		return fmt.Errorf("failed to write csv: %w", err)
	}
	return nil
}

func writeRecord(b *strings.Builder, fields []string) {
	for i, field := range fields {
		if i > 0 {
			b.WriteByte(',')
		}
		b.WriteString(escapeField(field))
	}
}

// escapeField quotes a field if and only if it contains a comma, a double
// quote, or a newline, doubling any internal quotes. All other fields are
// emitted verbatim.
func escapeField(s string) string {
	if strings.ContainsAny(s, ",\"\n") {
		return `"` + strings.ReplaceAll(s, `"`, `""`) + `"`
	}
	return s
}
