package query

import (
	"fmt"
	"math"
	"sort"
	"time"

	"github.com/fxckxanaxx/gestorregmarketing/internal/inventory/domain"
)

// GetStatsQuery represents the query to get dashboard statistics
type GetStatsQuery struct{}

// ClientRank aggregates orders for a single client
type ClientRank struct {
	ClientName        string  `json:"client_name"`
	Orders            int     `json:"orders"`
	TotalQuantity     int     `json:"total_quantity"`
	QuantityCompleted int     `json:"quantity_completed"`
	TotalValue        float64 `json:"total_value"`
}

// ProductTypeRank aggregates orders for a single product type
type ProductTypeRank struct {
	ProductType       string  `json:"product_type"`
	Orders            int     `json:"orders"`
	TotalQuantity     int     `json:"total_quantity"`
	QuantityCompleted int     `json:"quantity_completed"`
	TotalValue        float64 `json:"total_value"`
	AveragePrice      float64 `json:"average_price"`
	CompletionRate    float64 `json:"completion_rate"`
}

// DashboardStats represents the derived metrics rendered on the dashboard
type DashboardStats struct {
	TotalOrders       int               `json:"total_orders"`
	TotalRevenue      float64           `json:"total_revenue"`
	TotalQuantity     int               `json:"total_quantity"`
	QuantityCompleted int               `json:"quantity_completed"`
	QuantityPending   int               `json:"quantity_pending"`
	CompletionRate    float64           `json:"completion_rate"`
	AverageDaysToDue  int               `json:"average_days_to_due"`
	AverageTicket     float64           `json:"average_ticket"`
	PendingOrders     int               `json:"pending_orders"`
	PriorityOrders    int               `json:"priority_orders"`
	CompletedOrders   int               `json:"completed_orders"`
	InProcessOrders   int               `json:"in_process_orders"`
	DueSoonOrders     int               `json:"due_soon_orders"`
	TopClients        []ClientRank      `json:"top_clients"`
	TopProductTypes   []ProductTypeRank `json:"top_product_types"`
}

// GetStatsHandler handles the dashboard statistics query
type GetStatsHandler struct {
	repo domain.ProductRepository
}

// NewGetStatsHandler creates a new get stats handler
func NewGetStatsHandler(repo domain.ProductRepository) *GetStatsHandler {
	return &GetStatsHandler{repo: repo}
}

// Handle executes the get stats query
func (h *GetStatsHandler) Handle(q GetStatsQuery) (*DashboardStats, error) {
	products, err := h.repo.FindAll()
	if err != nil {
		return nil, fmt.Errorf("failed to load products: %w", err)
	}
	return ComputeStats(products, time.Now()), nil
}

// ComputeStats derives the dashboard metrics from a product snapshot. All
// ratios degrade to 0 on an empty set.
func ComputeStats(products []domain.Product, now time.Time) *DashboardStats {
	stats := &DashboardStats{
		TotalOrders:     len(products),
		TopClients:      []ClientRank{},
		TopProductTypes: []ProductTypeRank{},
	}

	clients := make(map[string]*ClientRank)
	types := make(map[string]*ProductTypeRank)
	totalDays := 0

	for i := range products {
		p := &products[i]

		stats.TotalRevenue += p.OrderValue()
		stats.TotalQuantity += p.Quantity
		stats.QuantityCompleted += p.QuantityCompleted

		switch p.Status {
		case domain.StatusPending:
			stats.PendingOrders++
		case domain.StatusPriority:
			stats.PriorityOrders++
		case domain.StatusCompleted:
			stats.CompletedOrders++
		}

		days := daysUntil(p.DueDate, now)
		if days > 0 {
			totalDays += days
		}
		if p.Status != domain.StatusCompleted {
			if p.QuantityCompleted > 0 {
				stats.InProcessOrders++
			}
			if days >= 0 && days <= 7 {
				stats.DueSoonOrders++
			}
		}

		c := clients[p.ClientName]
		if c == nil {
			c = &ClientRank{ClientName: p.ClientName}
			clients[p.ClientName] = c
		}
		c.Orders++
		c.TotalQuantity += p.Quantity
		c.QuantityCompleted += p.QuantityCompleted
		c.TotalValue += p.OrderValue()

		t := types[p.ProductType]
		if t == nil {
			t = &ProductTypeRank{ProductType: p.ProductType}
			types[p.ProductType] = t
		}
		t.Orders++
		t.TotalQuantity += p.Quantity
		t.QuantityCompleted += p.QuantityCompleted
		t.TotalValue += p.OrderValue()
	}

	stats.QuantityPending = stats.TotalQuantity - stats.QuantityCompleted
	if stats.TotalQuantity > 0 {
		stats.CompletionRate = float64(stats.QuantityCompleted) / float64(stats.TotalQuantity) * 100
	}
	if len(products) > 0 {
		stats.AverageDaysToDue = int(math.Round(float64(totalDays) / float64(len(products))))
		stats.AverageTicket = stats.TotalRevenue / float64(len(products))
	}

	for _, c := range clients {
		stats.TopClients = append(stats.TopClients, *c)
	}
	sort.Slice(stats.TopClients, func(i, j int) bool {
		return stats.TopClients[i].TotalValue > stats.TopClients[j].TotalValue
	})
	if len(stats.TopClients) > 5 {
		stats.TopClients = stats.TopClients[:5]
	}

	for _, t := range types {
		if t.TotalQuantity > 0 {
			t.AveragePrice = t.TotalValue / float64(t.TotalQuantity)
			t.CompletionRate = float64(t.QuantityCompleted) / float64(t.TotalQuantity) * 100
		}
		stats.TopProductTypes = append(stats.TopProductTypes, *t)
	}
	sort.Slice(stats.TopProductTypes, func(i, j int) bool {
		return stats.TopProductTypes[i].TotalQuantity > stats.TopProductTypes[j].TotalQuantity
	})
	if len(stats.TopProductTypes) > 5 {
		stats.TopProductTypes = stats.TopProductTypes[:5]
	}

	return stats
}

// daysUntil counts whole days from now to the due date, rounding up so a due
// date later today counts as 0 and tomorrow as 1. Overdue dates go negative.
func daysUntil(due, now time.Time) int {
	return int(math.Ceil(due.Sub(now).Hours() / 24))
}
