package service

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"

	"storefront/model"
)

func TestBuildDashboard(t *testing.T) {
	now := time.Date(2026, time.August, 15, 12, 0, 0, 0, time.UTC)

	orders := []model.Order{
		{Status: model.StatusDelivered, TotalPrice: decimal.NewFromInt(100), CreatedAt: now.AddDate(0, 0, -1)},
		{Status: model.StatusPending, TotalPrice: decimal.NewFromInt(50), CreatedAt: now.AddDate(0, -2, 0)},
		{Status: model.StatusCancelled, TotalPrice: decimal.NewFromInt(999), CreatedAt: now},
	}

	dash := BuildDashboard(orders, 7, now)

	require.Equal(t, int64(3), dash.TotalOrders)
	require.Equal(t, int64(1), dash.DeliveredCount)
	require.Equal(t, int64(7), dash.TotalProducts)

	// Cancelled orders are excluded from revenue.
	require.True(t, dash.RevenueTotal.Equal(decimal.NewFromInt(150)), "got %s", dash.RevenueTotal)
	require.True(t, dash.RevenueMonth.Equal(decimal.NewFromInt(100)), "got %s", dash.RevenueMonth)

	require.Len(t, dash.ChartLabels, 6)
	require.Len(t, dash.ChartData, 6)
	require.Equal(t, "Aug", dash.ChartLabels[5])
	require.Equal(t, "Jun", dash.ChartLabels[3])
	require.Equal(t, 100.0, dash.ChartData[5])
	require.Equal(t, 50.0, dash.ChartData[3])

	require.Len(t, dash.RecentOrders, 3)
}

func TestBuildDashboardRecentOrdersCapped(t *testing.T) {
	now := time.Now()
	orders := make([]model.Order, 25)
	for i := range orders {
		orders[i] = model.Order{Status: model.StatusPending, TotalPrice: decimal.NewFromInt(1), CreatedAt: now}
	}

	dash := BuildDashboard(orders, 0, now)
	require.Len(t, dash.RecentOrders, 10)
	require.Equal(t, int64(25), dash.TotalOrders)
}
