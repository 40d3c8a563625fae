package main

import (
	"context"
	"fmt"
	"os"

	"levoja-backoffice/internal/domain"
	"levoja-backoffice/internal/filter"
	"levoja-backoffice/internal/service"
	"levoja-backoffice/internal/store"

	"github.com/spf13/cobra"
)

var (
	queryFlag  string
	statusFlag string
	fromFlag   string
	toFlag     string
	outFlag    string
)

var rootCmd = &cobra.Command{
	Use:   "backoffice",
	Short: "Levo Já back-office toolbox",
	Long: `Offline companion for the Levo Já back-office API.

Exports the seeded demo dataset as the same CSV and PDF documents the
dashboard produces, without starting the HTTP server. Useful for
inspecting the export formats and for smoke-testing document layout.`,
}

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export orders, products or a single order document",
}

var exportOrdersCmd = &cobra.Command{
	Use:   "orders",
	Short: "Write the filtered order list as CSV",
	Long: `Write the order list as pedidos.csv-style CSV, honoring the same
query/status/date filters the dashboard applies before exporting.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		svc := newOrderService()

		f := filter.OrderFilter{Query: queryFlag, Tab: statusFlag}
		if fromFlag != "" {
			from, err := domain.ParseDate(fromFlag)
			if err != nil {
				return fmt.Errorf("invalid --from date %q: %w", fromFlag, err)
			}
			f.From = &from
		}
		if toFlag != "" {
			to, err := domain.ParseDate(toFlag)
			if err != nil {
				return fmt.Errorf("invalid --to date %q: %w", toFlag, err)
			}
			f.To = &to
		}

		out, closeOut, err := openOutput()
		if err != nil {
			return err
		}
		defer closeOut()

		count, err := svc.ExportCSV(context.Background(), f, out)
		if err != nil {
			return err
		}
		fmt.Fprintf(os.Stderr, "exported %d orders\n", count)
		return nil
	},
}

var exportProductsCmd = &cobra.Command{
	Use:   "products",
	Short: "Write the filtered product list as CSV",
	RunE: func(cmd *cobra.Command, args []string) error {
		svc := service.NewProductService(store.NewProductStore(store.SeedProducts()))

		out, closeOut, err := openOutput()
		if err != nil {
			return err
		}
		defer closeOut()

		count, err := svc.ExportCSV(context.Background(), filter.ProductFilter{Query: queryFlag, Tab: statusFlag}, out)
		if err != nil {
			return err
		}
		fmt.Fprintf(os.Stderr, "exported %d products\n", count)
		return nil
	},
}

var exportPDFCmd = &cobra.Command{
	Use:   "pdf <order-id>",
	Short: "Render the printable document for one order",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		svc := newOrderService()

		out, closeOut, err := openOutput()
		if err != nil {
			return err
		}
		defer closeOut()

		filename, err := svc.ExportPDF(context.Background(), args[0], out)
		if err != nil {
			return err
		}
		fmt.Fprintf(os.Stderr, "wrote %s\n", filename)
		return nil
	},
}

func newOrderService() service.OrderService {
	return service.NewOrderService(
		store.NewOrderStore(store.SeedOrders()),
		store.NewCustomerStore(store.SeedCustomers()),
		store.NewProductStore(store.SeedProducts()),
	)
}

// openOutput resolves the --out flag: empty or "-" means stdout,
// anything else is created as a file
func openOutput() (*os.File, func(), error) {
	if outFlag == "" || outFlag == "-" {
		return os.Stdout, func() {}, nil
	}
	f, err := os.Create(outFlag)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to create %s: %w", outFlag, err)
	}
	return f, func() { f.Close() }, nil
}

func init() {
	exportCmd.PersistentFlags().StringVar(&queryFlag, "query", "", "Case-insensitive search text")
	exportCmd.PersistentFlags().StringVar(&statusFlag, "status", "", "Status tab (e.g. confirmado, em-andamento)")
	exportCmd.PersistentFlags().StringVar(&outFlag, "out", "", "Output file (default stdout)")
	exportOrdersCmd.Flags().StringVar(&fromFlag, "from", "", "Start date, YYYY-MM-DD")
	exportOrdersCmd.Flags().StringVar(&toFlag, "to", "", "End date, YYYY-MM-DD")

	exportCmd.AddCommand(exportOrdersCmd)
	exportCmd.AddCommand(exportProductsCmd)
	exportCmd.AddCommand(exportPDFCmd)
	rootCmd.AddCommand(exportCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
