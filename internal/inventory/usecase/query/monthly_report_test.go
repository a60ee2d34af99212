package query

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fxckxanaxx/gestorregmarketing/internal/inventory/domain"
)

type stubHistoryRepo struct {
	sales     []domain.ArchivedSale
	lastLimit int
}

func (s *stubHistoryRepo) FindRecent(limit int) ([]domain.ArchivedSale, error) {
	s.lastLimit = limit
	if limit < len(s.sales) {
		return s.sales[:limit], nil
	}
	return s.sales, nil
}

func (s *stubHistoryRepo) FindByMonth(year int, month time.Month) ([]domain.ArchivedSale, error) {
	return s.sales, nil
}

func (s *stubHistoryRepo) ClearAll() error { return nil }

func (s *stubHistoryRepo) Count() (int64, error) { return int64(len(s.sales)), nil }

func TestBuildMonthlyReportEmptyMonth(t *testing.T) {
	report := BuildMonthlyReport(2026, time.March, nil)

	assert.Equal(t, 2026, report.Year)
	assert.Equal(t, time.March, report.Month)
	assert.Empty(t, report.Rows)
	assert.Zero(t, report.TotalRevenue)
	assert.Zero(t, report.AverageTicket, "no clients means 0, never NaN")
	assert.Empty(t, report.SalesByClient)
	assert.Empty(t, report.TopProducts)
}

func TestBuildMonthlyReportAggregates(t *testing.T) {
	rows := []domain.ArchivedSale{
		{
			ClientName: "Maria", ProductType: "Camiseta",
			Quantity: 10, QuantityCompleted: 10,
			TotalValue: 50, Action: domain.ActionCompleted,
		},
		{
			ClientName: "Carlos", ProductType: "Buzo",
			Quantity: 20, QuantityCompleted: 20,
			TotalValue: 200, Action: domain.ActionCompleted,
		},
		{
			ClientName: "Maria", ProductType: "Gorra",
			Quantity: 8, QuantityCompleted: 3,
			TotalValue: 15, Action: domain.ActionDeleted,
		},
	}

	report := BuildMonthlyReport(2026, time.March, rows)

	assert.InDelta(t, 265.0, report.TotalRevenue, 0.001)
	assert.Equal(t, 33, report.QuantityCompleted)
	assert.Equal(t, 2, report.UniqueClients)
	assert.Equal(t, 2, report.CompletedOrders)
	assert.Equal(t, 1, report.DeletedOrders)
	assert.InDelta(t, 132.5, report.AverageTicket, 0.001, "revenue over unique clients")

	require.Len(t, report.SalesByClient, 2)
	assert.Equal(t, "Carlos", report.SalesByClient[0].ClientName, "ranked by value")
	assert.Equal(t, 2, report.SalesByClient[1].Orders)
	assert.InDelta(t, 65.0, report.SalesByClient[1].TotalValue, 0.001)

	require.Len(t, report.TopProducts, 2, "deleted rows do not count as sold product types")
	assert.Equal(t, "Buzo", report.TopProducts[0].ProductType)
	assert.Equal(t, 20, report.TopProducts[0].QuantityCompleted)
}

func TestMonthlyReportHandlerRejectsInvalidMonth(t *testing.T) {
	handler := NewMonthlyReportHandler(&stubHistoryRepo{})

	_, err := handler.Handle(MonthlyReportQuery{Year: 2026, Month: 0})
	assert.Error(t, err)

	_, err = handler.Handle(MonthlyReportQuery{Year: 2026, Month: 13})
	assert.Error(t, err)

	report, err := handler.Handle(MonthlyReportQuery{Year: 2026, Month: time.March})
	require.NoError(t, err)
	assert.Empty(t, report.Rows)
}

func TestSalesHistoryDefaultLimit(t *testing.T) {
	repo := &stubHistoryRepo{}
	handler := NewSalesHistoryHandler(repo)

	_, err := handler.Handle(SalesHistoryQuery{})
	require.NoError(t, err)
	assert.Equal(t, 50, repo.lastLimit)

	_, err = handler.Handle(SalesHistoryQuery{Limit: 10})
	require.NoError(t, err)
	assert.Equal(t, 10, repo.lastLimit)
}
