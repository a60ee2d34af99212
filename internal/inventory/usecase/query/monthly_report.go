package query

import (
	"fmt"
	"sort"
	"time"

	"github.com/fxckxanaxx/gestorregmarketing/internal/inventory/domain"
)

// MonthlyReportQuery represents the query for a month's archived activity
type MonthlyReportQuery struct {
	Year  int
	Month time.Month
}

// ClientSales aggregates a client's archived sales within the month
type ClientSales struct {
	ClientName        string  `json:"client_name"`
	Orders            int     `json:"orders"`
	QuantityCompleted int     `json:"quantity_completed"`
	TotalValue        float64 `json:"total_value"`
}

// ProductSales aggregates completed units per product type within the month
type ProductSales struct {
	ProductType       string `json:"product_type"`
	QuantityCompleted int    `json:"quantity_completed"`
}

// MonthlyReport represents a month's archived activity and its summary
type MonthlyReport struct {
	Year              int                   `json:"year"`
	Month             time.Month            `json:"month"`
	Rows              []domain.ArchivedSale `json:"rows"`
	TotalRevenue      float64               `json:"total_revenue"`
	QuantityCompleted int                   `json:"quantity_completed"`
	UniqueClients     int                   `json:"unique_clients"`
	CompletedOrders   int                   `json:"completed_orders"`
	DeletedOrders     int                   `json:"deleted_orders"`
	AverageTicket     float64               `json:"average_ticket"`
	SalesByClient     []ClientSales         `json:"sales_by_client"`
	TopProducts       []ProductSales        `json:"top_products"`
}

// MonthlyReportHandler handles monthly report query
type MonthlyReportHandler struct {
	repo domain.HistoryRepository
}

// NewMonthlyReportHandler creates a new monthly report handler
func NewMonthlyReportHandler(repo domain.HistoryRepository) *MonthlyReportHandler {
	return &MonthlyReportHandler{repo: repo}
}

// Handle executes the monthly report query. A month with no archived rows
// yields an empty report, not an error.
func (h *MonthlyReportHandler) Handle(q MonthlyReportQuery) (*MonthlyReport, error) {
	if q.Month < time.January || q.Month > time.December {
		return nil, fmt.Errorf("invalid month: %d", q.Month)
	}

	rows, err := h.repo.FindByMonth(q.Year, q.Month)
	if err != nil {
		return nil, fmt.Errorf("failed to load monthly history: %w", err)
	}

	return BuildMonthlyReport(q.Year, q.Month, rows), nil
}

// BuildMonthlyReport derives the month summary from its archived rows
func BuildMonthlyReport(year int, month time.Month, rows []domain.ArchivedSale) *MonthlyReport {
	report := &MonthlyReport{
		Year:          year,
		Month:         month,
		Rows:          rows,
		SalesByClient: []ClientSales{},
		TopProducts:   []ProductSales{},
	}

	clients := make(map[string]*ClientSales)
	products := make(map[string]int)

	for i := range rows {
		row := &rows[i]
		report.TotalRevenue += row.TotalValue
		report.QuantityCompleted += row.QuantityCompleted

		switch row.Action {
		case domain.ActionCompleted:
			report.CompletedOrders++
			// Only completed orders count as sold units
			products[row.ProductType] += row.QuantityCompleted
		case domain.ActionDeleted:
			report.DeletedOrders++
		}

		c := clients[row.ClientName]
		if c == nil {
			c = &ClientSales{ClientName: row.ClientName}
			clients[row.ClientName] = c
		}
		c.Orders++
		c.QuantityCompleted += row.QuantityCompleted
		c.TotalValue += row.TotalValue
	}

	report.UniqueClients = len(clients)
	if report.UniqueClients > 0 {
		report.AverageTicket = report.TotalRevenue / float64(report.UniqueClients)
	}

	for _, c := range clients {
		report.SalesByClient = append(report.SalesByClient, *c)
	}
	sort.Slice(report.SalesByClient, func(i, j int) bool {
		return report.SalesByClient[i].TotalValue > report.SalesByClient[j].TotalValue
	})

	for productType, qty := range products {
		report.TopProducts = append(report.TopProducts, ProductSales{
			ProductType:       productType,
			QuantityCompleted: qty,
		})
	}
	sort.Slice(report.TopProducts, func(i, j int) bool {
		return report.TopProducts[i].QuantityCompleted > report.TopProducts[j].QuantityCompleted
	})

	return report
}
