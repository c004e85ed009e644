package service

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"storefront/model"
)

// Dashboard is the admin overview: headline counts, revenue and a six-month
// revenue series for the sales chart.
type Dashboard struct {
	TotalOrders    int64           `json:"total_orders"`
	DeliveredCount int64           `json:"delivered_count"`
	RevenueTotal   decimal.Decimal `json:"revenue_total"`
	RevenueMonth   decimal.Decimal `json:"revenue_month"`
	TotalProducts  int64           `json:"total_products"`
	ChartLabels    []string        `json:"chart_labels"`
	ChartData      []float64       `json:"chart_data"`
	RecentOrders   []model.Order   `json:"recent_orders"`
}

type orderLister interface {
	All(ctx context.Context) ([]model.Order, error)
}

type productCounter interface {
	CountProducts(ctx context.Context) (int64, error)
}

type DashboardService struct {
	orders  orderLister
	catalog productCounter
}

func NewDashboardService(orders orderLister, catalog productCounter) *DashboardService {
	return &DashboardService{orders: orders, catalog: catalog}
}

func (s *DashboardService) Overview(ctx context.Context) (*Dashboard, error) {
	orders, err := s.orders.All(ctx)
	if err != nil {
		return nil, err
	}
	products, err := s.catalog.CountProducts(ctx)
	if err != nil {
		return nil, err
	}
	dash := BuildDashboard(orders, products, time.Now())
	return &dash, nil
}

// BuildDashboard aggregates already-loaded orders. Cancelled orders are
// excluded from revenue but still counted as orders. Revenue uses the
// persisted total snapshots, not a recomputation from line items.
func BuildDashboard(orders []model.Order, productCount int64, now time.Time) Dashboard {
	dash := Dashboard{
		TotalOrders:   int64(len(orders)),
		RevenueTotal:  decimal.Zero,
		RevenueMonth:  decimal.Zero,
		TotalProducts: productCount,
	}

	monthStart := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())

	type bucket struct {
		start, end time.Time
	}
	buckets := make([]bucket, 0, 6)
	for i := 5; i >= 0; i-- {
		start := monthStart.AddDate(0, -i, 0)
		buckets = append(buckets, bucket{start: start, end: start.AddDate(0, 1, 0)})
		dash.ChartLabels = append(dash.ChartLabels, start.Format("Jan"))
	}
	dash.ChartData = make([]float64, len(buckets))

	for _, order := range orders {
		if order.Status == model.StatusDelivered {
			dash.DeliveredCount++
		}
		if order.Status == model.StatusCancelled {
			continue
		}
		dash.RevenueTotal = dash.RevenueTotal.Add(order.TotalPrice)
		if !order.CreatedAt.Before(monthStart) {
			dash.RevenueMonth = dash.RevenueMonth.Add(order.TotalPrice)
		}
		for i, b := range buckets {
			if !order.CreatedAt.Before(b.start) && order.CreatedAt.Before(b.end) {
				total, _ := order.TotalPrice.Float64()
				dash.ChartData[i] += total
				break
			}
		}
	}

	limit := 10
	if len(orders) < limit {
		limit = len(orders)
	}
	dash.RecentOrders = orders[:limit]
	return dash
}
