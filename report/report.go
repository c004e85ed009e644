// Package report flattens historical orders into tabular exports. It only
// transforms already-loaded domain objects into rows; encoding is handled by
// the CSV and spreadsheet writers.
package report

import (
	"fmt"
	"sort"
	"time"

	"github.com/shopspring/decimal"

	"storefront/model"
)

// CustomerKey identifies a customer in the aggregation. It is currently the
// raw name, so distinct customers sharing a name collapse into one row; a
// real customer id would slot in here.
type CustomerKey string

// Table is an encoded-format-agnostic report: a header row plus data rows.
type Table struct {
	Title  string
	Header []string
	Rows   [][]any
}

type customerTotals struct {
	orders int
	spent  decimal.Decimal
	email  string
	phone  string
	city   string
}

// Customers groups orders by customer, with order count and lifetime spend.
// Contact fields keep the value from the customer's latest seen order.
func Customers(orders []model.Order) Table {
	totals := map[CustomerKey]*customerTotals{}
	for _, order := range orders {
		key := CustomerKey(order.FullName)
		agg, ok := totals[key]
		if !ok {
			agg = &customerTotals{spent: decimal.Zero}
			totals[key] = agg
		}
		agg.orders++
		agg.spent = agg.spent.Add(order.TotalPrice)
		agg.email = order.Email
		agg.phone = order.PhoneNumber
		agg.city = order.City
	}

	keys := make([]CustomerKey, 0, len(totals))
	for key := range totals {
		keys = append(keys, key)
	}
	sort.Slice(keys, func(i, j int) bool { return keys[i] < keys[j] })

	table := Table{
		Title:  "Customers",
		Header: []string{"Name", "Email", "Phone", "City", "Total Orders", "Total Spent (LE)"},
	}
	for _, key := range keys {
		agg := totals[key]
		spent, _ := agg.spent.Float64()
		table.Rows = append(table.Rows, []any{
			string(key), agg.email, agg.phone, agg.city, agg.orders, spent,
		})
	}
	return table
}

// Orders lists individual orders with their formatted line items, status
// label and payment method. Totals are the persisted snapshots.
func Orders(orders []model.Order) Table {
	table := Table{
		Title:  "Orders",
		Header: []string{"Order ID", "Customer", "Email", "Date", "Items", "Status", "Total (LE)", "Payment Method"},
	}
	for _, order := range orders {
		total, _ := order.TotalPrice.Float64()
		table.Rows = append(table.Rows, []any{
			order.TrackingID.String()[:8],
			order.FullName,
			order.Email,
			order.CreatedAt.Format("2006-01-02 15:04"),
			itemsSummary(order.Items),
			model.StatusLabel(order.Status),
			total,
			order.PaymentMethod(),
		})
	}
	return table
}

func itemsSummary(items []model.OrderItem) string {
	summary := ""
	for i, item := range items {
		if i > 0 {
			summary += "; "
		}
		if item.Variant == nil {
			summary += fmt.Sprintf("(unavailable) x%d", item.Quantity)
			continue
		}
		summary += fmt.Sprintf("%s (%s/%s) x%d",
			item.Variant.Product.Name,
			item.Variant.Color.Name,
			item.Variant.Size.Name,
			item.Quantity)
	}
	return summary
}

// Filename stamps an export file with the current date, e.g.
// orders_export_20260829.csv.
func Filename(kind, ext string, now time.Time) string {
	return fmt.Sprintf("%s_export_%s.%s", kind, now.Format("20060102"), ext)
}
