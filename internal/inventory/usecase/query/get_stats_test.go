package query

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fxckxanaxx/gestorregmarketing/internal/inventory/domain"
)

func TestComputeStatsEmptySet(t *testing.T) {
	stats := ComputeStats(nil, time.Now())

	assert.Equal(t, 0, stats.TotalOrders)
	assert.Zero(t, stats.TotalRevenue)
	assert.Zero(t, stats.CompletionRate, "no quantity means 0, never NaN")
	assert.Zero(t, stats.AverageTicket)
	assert.Zero(t, stats.AverageDaysToDue)
	assert.Empty(t, stats.TopClients)
	assert.Empty(t, stats.TopProductTypes)
}

func TestComputeStatsAggregates(t *testing.T) {
	now := time.Date(2026, time.May, 1, 10, 0, 0, 0, time.UTC)
	products := []domain.Product{
		{
			ClientName: "Maria", ProductType: "Camiseta",
			Quantity: 10, QuantityCompleted: 4,
			Status: domain.StatusPending, Price: 5,
			DueDate: now.AddDate(0, 0, 10),
		},
		{
			ClientName: "Carlos", ProductType: "Buzo",
			Quantity: 20, QuantityCompleted: 20,
			Status: domain.StatusCompleted, Price: 10,
			DueDate: now.AddDate(0, 0, 5),
		},
		{
			ClientName: "Maria", ProductType: "Camiseta",
			Quantity: 12, QuantityCompleted: 0,
			Status: domain.StatusPriority, Price: 3,
			DueDate: now.AddDate(0, 0, 3),
		},
	}

	stats := ComputeStats(products, now)

	assert.Equal(t, 3, stats.TotalOrders)
	assert.InDelta(t, 286.0, stats.TotalRevenue, 0.001, "revenue counts the full order value")
	assert.Equal(t, 42, stats.TotalQuantity)
	assert.Equal(t, 24, stats.QuantityCompleted)
	assert.Equal(t, 18, stats.QuantityPending)
	assert.InDelta(t, 100.0*24.0/42.0, stats.CompletionRate, 0.001)
	assert.Equal(t, 1, stats.PendingOrders)
	assert.Equal(t, 1, stats.PriorityOrders)
	assert.Equal(t, 1, stats.CompletedOrders)
	assert.Equal(t, 1, stats.InProcessOrders, "started but unfinished orders only")
	assert.Equal(t, 1, stats.DueSoonOrders, "due within a week and not completed")

	require.Len(t, stats.TopClients, 2)
	assert.Equal(t, "Carlos", stats.TopClients[0].ClientName, "ranked by total value")
	assert.InDelta(t, 200.0, stats.TopClients[0].TotalValue, 0.001)
	assert.Equal(t, 2, stats.TopClients[1].Orders)

	require.Len(t, stats.TopProductTypes, 2)
	assert.Equal(t, "Camiseta", stats.TopProductTypes[0].ProductType, "ranked by total quantity")
	assert.Equal(t, 22, stats.TopProductTypes[0].TotalQuantity)
	assert.InDelta(t, 86.0/22.0, stats.TopProductTypes[0].AveragePrice, 0.001, "value over units, not a price mean")
	assert.InDelta(t, 100.0*4.0/22.0, stats.TopProductTypes[0].CompletionRate, 0.001)
}

func TestComputeStatsRankingsCapAtFive(t *testing.T) {
	now := time.Now()
	var products []domain.Product
	for i := 0; i < 7; i++ {
		products = append(products, domain.Product{
			ClientName:  string(rune('A' + i)),
			ProductType: string(rune('a' + i)),
			Quantity:    i + 1,
			Status:      domain.StatusPending,
			Price:       float64(i + 1),
			DueDate:     now.AddDate(0, 1, 0),
		})
	}

	stats := ComputeStats(products, now)
	assert.Len(t, stats.TopClients, 5)
	assert.Len(t, stats.TopProductTypes, 5)
}

func TestComputeStatsDueSoonWindow(t *testing.T) {
	now := time.Date(2026, time.May, 1, 10, 0, 0, 0, time.UTC)
	products := []domain.Product{
		{ClientName: "a", ProductType: "t", Quantity: 1, Status: domain.StatusPending, DueDate: now.AddDate(0, 0, 3)},
		{ClientName: "b", ProductType: "t", Quantity: 1, Status: domain.StatusPending, DueDate: now.AddDate(0, 0, 10)},
		{ClientName: "c", ProductType: "t", Quantity: 1, Status: domain.StatusPending, DueDate: now.AddDate(0, 0, -2)},
		{ClientName: "d", ProductType: "t", Quantity: 1, QuantityCompleted: 1, Status: domain.StatusCompleted, DueDate: now.AddDate(0, 0, 2)},
	}

	stats := ComputeStats(products, now)
	assert.Equal(t, 1, stats.DueSoonOrders, "overdue, far-out and completed orders are excluded")
}

func TestMatchesTermIsCaseInsensitive(t *testing.T) {
	product := &domain.Product{
		ClientName:  "Maria Lopez",
		ProductType: "Camiseta",
		Status:      domain.StatusPending,
		Color:       "Rojo",
		Size:        "M",
	}

	assert.True(t, matchesTerm(product, "rojo"))
	assert.True(t, matchesTerm(product, "maria"))
	assert.True(t, matchesTerm(product, "camis"))
	assert.True(t, matchesTerm(product, "pend"))
	assert.False(t, matchesTerm(product, "azul"))
	assert.False(t, matchesTerm(product, "gorra"))
}
