package report

import (
	"bytes"
	"fmt"
	"time"

	"github.com/jung-kurt/gofpdf"

	"github.com/fxckxanaxx/gestorregmarketing/internal/inventory/usecase/query"
)

// SummaryPDF renders the dashboard statistics as a one-page PDF
func SummaryPDF(stats *query.DashboardStats, now time.Time) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetTitle(companyName+" - Inventory Report", false)
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 16)
	pdf.CellFormat(0, 10, companyName, "", 1, "C", false, 0, "")
	pdf.SetFont("Helvetica", "", 11)
	pdf.CellFormat(0, 8, "Inventory report - "+now.Format("2006-01-02 15:04"), "", 1, "C", false, 0, "")
	pdf.Ln(4)

	pdf.SetFont("Helvetica", "B", 12)
	pdf.CellFormat(0, 8, "General statistics", "", 1, "L", false, 0, "")
	pdf.SetFont("Helvetica", "", 10)

	line := func(label, value string) {
		pdf.CellFormat(70, 6, label, "", 0, "L", false, 0, "")
		pdf.CellFormat(0, 6, value, "", 1, "L", false, 0, "")
	}

	line("Total orders", fmt.Sprintf("%d", stats.TotalOrders))
	line("Total revenue", fmt.Sprintf("$%.2f", stats.TotalRevenue))
	line("Units ordered", fmt.Sprintf("%d", stats.TotalQuantity))
	line("Units completed", fmt.Sprintf("%d", stats.QuantityCompleted))
	line("Overall progress", fmt.Sprintf("%.1f%%", stats.CompletionRate))
	line("Average days to due date", fmt.Sprintf("%d", stats.AverageDaysToDue))
	line("Orders in process", fmt.Sprintf("%d", stats.InProcessOrders))
	line("Orders due within 7 days", fmt.Sprintf("%d", stats.DueSoonOrders))
	pdf.Ln(4)

	pdf.SetFont("Helvetica", "B", 12)
	pdf.CellFormat(0, 8, "Top clients by order value", "", 1, "L", false, 0, "")
	pdf.SetFont("Helvetica", "", 10)
	for i, c := range stats.TopClients {
		pdf.CellFormat(0, 6,
			fmt.Sprintf("#%d %s - %d orders, $%.2f", i+1, c.ClientName, c.Orders, c.TotalValue),
			"", 1, "L", false, 0, "")
	}
	pdf.Ln(4)

	pdf.SetFont("Helvetica", "B", 12)
	pdf.CellFormat(0, 8, "Top product types by quantity", "", 1, "L", false, 0, "")
	pdf.SetFont("Helvetica", "", 10)
	for i, t := range stats.TopProductTypes {
		pdf.CellFormat(0, 6,
			fmt.Sprintf("#%d %s - %d units, %.1f%% completed, avg price $%.2f",
				i+1, t.ProductType, t.TotalQuantity, t.CompletionRate, t.AveragePrice),
			"", 1, "L", false, 0, "")
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("failed to render PDF: %w", err)
	}
	return buf.Bytes(), nil
}
