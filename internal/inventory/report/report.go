// Package report renders the aggregation outputs into the downloadable
// CSV / JSON / plain-text / PDF formats.
package report

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"fmt"
	"math"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/fxckxanaxx/gestorregmarketing/internal/inventory/domain"
	"github.com/fxckxanaxx/gestorregmarketing/internal/inventory/usecase/query"
)

const companyName = "REG MARKETING S.A.S"

// InventoryCSV renders the live product set as CSV
func InventoryCSV(products []domain.Product) ([]byte, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	header := []string{
		"ID", "Client", "Product", "Quantity", "Completed", "Remaining",
		"Size", "Color", "Status", "Due Date", "Price", "Notes",
		"Created", "Updated",
	}
	if err := w.Write(header); err != nil {
		return nil, err
	}

	for i := range products {
		p := &products[i]
		record := []string{
			strconv.FormatUint(uint64(p.ID), 10),
			p.ClientName,
			p.ProductType,
			strconv.Itoa(p.Quantity),
			strconv.Itoa(p.QuantityCompleted),
			strconv.Itoa(p.Remaining()),
			p.Size,
			p.Color,
			p.Status,
			p.DueDate.Format("2006-01-02"),
			strconv.FormatFloat(p.Price, 'f', 2, 64),
			p.Notes,
			p.CreatedAt.Format(time.RFC3339),
			p.UpdatedAt.Format(time.RFC3339),
		}
		if err := w.Write(record); err != nil {
			return nil, err
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// Backup is the JSON snapshot of the live inventory
type Backup struct {
	Inventory  []domain.Product `json:"inventory"`
	ExportDate time.Time        `json:"export_date"`
	Version    string           `json:"version"`
}

// BackupJSON renders the live product set as a restorable JSON snapshot
func BackupJSON(products []domain.Product, now time.Time) ([]byte, error) {
	backup := Backup{
		Inventory:  products,
		ExportDate: now,
		Version:    "2.0",
	}
	return json.MarshalIndent(backup, "", "  ")
}

// SummaryText renders the general inventory report
func SummaryText(stats *query.DashboardStats, products []domain.Product, now time.Time) string {
	var b strings.Builder

	fmt.Fprintf(&b, "=== %s INVENTORY REPORT ===\n\n", companyName)
	fmt.Fprintf(&b, "Date: %s\n\n", now.Format("2006-01-02 15:04:05"))

	b.WriteString("GENERAL STATISTICS:\n")
	fmt.Fprintf(&b, "- Total orders: %d\n", stats.TotalOrders)
	fmt.Fprintf(&b, "- Completed orders: %d\n", stats.CompletedOrders)
	fmt.Fprintf(&b, "- Pending orders: %d\n", stats.PendingOrders)
	fmt.Fprintf(&b, "- Priority orders: %d\n", stats.PriorityOrders)
	fmt.Fprintf(&b, "- Total units ordered: %d\n", stats.TotalQuantity)
	fmt.Fprintf(&b, "- Units completed: %d\n", stats.QuantityCompleted)
	fmt.Fprintf(&b, "- Units pending: %d\n", stats.QuantityPending)
	fmt.Fprintf(&b, "- Overall progress: %.1f%%\n", stats.CompletionRate)
	fmt.Fprintf(&b, "- Total inventory value: $%.2f\n\n", stats.TotalRevenue)

	b.WriteString("ORDERS BY CLIENT:\n")
	for _, line := range clientLines(products) {
		b.WriteString(line)
		b.WriteByte('\n')
	}

	b.WriteString("\nMOST REQUESTED PRODUCT TYPES:\n")
	for _, line := range productTypeLines(products) {
		b.WriteString(line)
		b.WriteByte('\n')
	}

	return b.String()
}

func clientLines(products []domain.Product) []string {
	type agg struct {
		orders    int
		quantity  int
		completed int
		value     float64
	}
	byClient := make(map[string]*agg)
	var order []string
	for i := range products {
		p := &products[i]
		a := byClient[p.ClientName]
		if a == nil {
			a = &agg{}
			byClient[p.ClientName] = a
			order = append(order, p.ClientName)
		}
		a.orders++
		a.quantity += p.Quantity
		a.completed += p.QuantityCompleted
		a.value += p.OrderValue()
	}

	lines := make([]string, 0, len(order))
	for _, client := range order {
		a := byClient[client]
		lines = append(lines, fmt.Sprintf("- %s: %d orders, %d/%d units, $%.2f",
			client, a.orders, a.completed, a.quantity, a.value))
	}
	return lines
}

func productTypeLines(products []domain.Product) []string {
	byType := make(map[string]int)
	for i := range products {
		byType[products[i].ProductType] += products[i].Quantity
	}

	type entry struct {
		name string
		qty  int
	}
	entries := make([]entry, 0, len(byType))
	for name, qty := range byType {
		entries = append(entries, entry{name, qty})
	}
	sort.Slice(entries, func(i, j int) bool { return entries[i].qty > entries[j].qty })

	lines := make([]string, 0, len(entries))
	for _, e := range entries {
		lines = append(lines, fmt.Sprintf("- %s: %d units", e.name, e.qty))
	}
	return lines
}

// MonthlyText renders the monthly sales report
func MonthlyText(r *query.MonthlyReport, now time.Time) string {
	var b strings.Builder

	fmt.Fprintf(&b, "=== MONTHLY REPORT %d/%d ===\n%s\n\n", int(r.Month), r.Year, companyName)

	if len(r.Rows) == 0 {
		b.WriteString("No archived sales for this month.\n")
		b.WriteString("Complete some orders and generate the report again.\n")
		return b.String()
	}

	b.WriteString("FINANCIAL SUMMARY:\n")
	fmt.Fprintf(&b, "- Total revenue: $%.2f\n", r.TotalRevenue)
	fmt.Fprintf(&b, "- Units completed: %d\n", r.QuantityCompleted)
	fmt.Fprintf(&b, "- Clients served: %d\n", r.UniqueClients)
	fmt.Fprintf(&b, "- Average ticket: $%.2f\n\n", r.AverageTicket)

	b.WriteString("MONTH ACTIVITY:\n")
	fmt.Fprintf(&b, "- Completed orders: %d\n", r.CompletedOrders)
	fmt.Fprintf(&b, "- Deleted orders: %d\n", r.DeletedOrders)
	fmt.Fprintf(&b, "- Total processed: %d\n\n", len(r.Rows))

	b.WriteString("SALES BY CLIENT:\n")
	for _, c := range r.SalesByClient {
		fmt.Fprintf(&b, "- %s: $%.2f (%d units, %d orders)\n",
			c.ClientName, c.TotalValue, c.QuantityCompleted, c.Orders)
	}

	b.WriteString("\nBEST SELLING PRODUCTS:\n")
	for _, p := range r.TopProducts {
		fmt.Fprintf(&b, "- %s: %d units\n", p.ProductType, p.QuantityCompleted)
	}

	fmt.Fprintf(&b, "\nGenerated at: %s\n", now.Format("2006-01-02 15:04:05"))
	return b.String()
}

// ProductAnalytics is the per-product-type breakdown export
type ProductAnalytics struct {
	GeneratedAt time.Time            `json:"generated_at"`
	Company     string               `json:"company"`
	ReportType  string               `json:"report_type"`
	Summary     AnalyticsSummary     `json:"summary"`
	Products    []ProductTypeSummary `json:"product_analytics"`
}

// AnalyticsSummary summarizes the whole live set
type AnalyticsSummary struct {
	TotalProductTypes     int     `json:"total_product_types"`
	TotalOrders           int     `json:"total_orders"`
	TotalQuantity         int     `json:"total_quantity"`
	TotalValue            float64 `json:"total_value"`
	OverallCompletionRate float64 `json:"overall_completion_rate"`
}

// ProductTypeSummary is one ranked product type row
type ProductTypeSummary struct {
	Rank              int     `json:"rank"`
	ProductType       string  `json:"product_type"`
	Orders            int     `json:"orders"`
	TotalQuantity     int     `json:"total_quantity"`
	QuantityCompleted int     `json:"quantity_completed"`
	QuantityPending   int     `json:"quantity_pending"`
	CompletionRate    float64 `json:"completion_rate"`
	TotalValue        float64 `json:"total_value"`
	AveragePrice      float64 `json:"average_price"`
	UniqueClients     int     `json:"unique_clients"`
	ClientList        string  `json:"client_list"`
}

// ProductAnalyticsJSON renders the per-product-type analytics export
func ProductAnalyticsJSON(products []domain.Product, now time.Time) ([]byte, error) {
	type agg struct {
		orders    int
		quantity  int
		completed int
		value     float64
		clients   map[string]bool
	}
	byType := make(map[string]*agg)

	summary := AnalyticsSummary{TotalOrders: len(products)}
	for i := range products {
		p := &products[i]
		summary.TotalQuantity += p.Quantity
		summary.TotalValue += p.OrderValue()

		a := byType[p.ProductType]
		if a == nil {
			a = &agg{clients: make(map[string]bool)}
			byType[p.ProductType] = a
		}
		a.orders++
		a.quantity += p.Quantity
		a.completed += p.QuantityCompleted
		a.value += p.OrderValue()
		a.clients[p.ClientName] = true
	}
	summary.TotalProductTypes = len(byType)

	var totalCompleted int
	for i := range products {
		totalCompleted += products[i].QuantityCompleted
	}
	if summary.TotalQuantity > 0 {
		summary.OverallCompletionRate = round2(float64(totalCompleted) / float64(summary.TotalQuantity) * 100)
	}

	rows := make([]ProductTypeSummary, 0, len(byType))
	for productType, a := range byType {
		clients := make([]string, 0, len(a.clients))
		for c := range a.clients {
			clients = append(clients, c)
		}
		sort.Strings(clients)

		row := ProductTypeSummary{
			ProductType:       productType,
			Orders:            a.orders,
			TotalQuantity:     a.quantity,
			QuantityCompleted: a.completed,
			QuantityPending:   a.quantity - a.completed,
			TotalValue:        round2(a.value),
			UniqueClients:     len(a.clients),
			ClientList:        strings.Join(clients, ", "),
		}
		if a.quantity > 0 {
			row.CompletionRate = round2(float64(a.completed) / float64(a.quantity) * 100)
			row.AveragePrice = round2(a.value / float64(a.quantity))
		}
		rows = append(rows, row)
	}

	sort.Slice(rows, func(i, j int) bool { return rows[i].TotalQuantity > rows[j].TotalQuantity })
	for i := range rows {
		rows[i].Rank = i + 1
	}

	analytics := ProductAnalytics{
		GeneratedAt: now,
		Company:     companyName,
		ReportType:  "Product Analytics",
		Summary:     summary,
		Products:    rows,
	}
	return json.MarshalIndent(analytics, "", "  ")
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
