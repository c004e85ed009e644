package report

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"

	"storefront/model"
)

func sampleOrders() []model.Order {
	created := time.Date(2026, time.March, 5, 14, 30, 0, 0, time.UTC)
	variant := &model.ProductVariant{
		Product: model.Product{Name: "Romper"},
		Color:   model.Color{Name: "Sage Green"},
		Size:    model.Size{Name: "0-3M"},
	}
	return []model.Order{
		{
			TrackingID:  uuid.MustParse("aaaaaaaa-1111-2222-3333-444444444444"),
			FullName:    "Mona Ali",
			Email:       "mona@example.com",
			PhoneNumber: "0100",
			City:        "Giza",
			TotalPrice:  decimal.NewFromInt(140),
			Status:      model.StatusShipped,
			CreatedAt:   created,
			Items: []model.OrderItem{
				{Variant: variant, Price: decimal.NewFromInt(25), Quantity: 2},
				{Variant: nil, Price: decimal.NewFromInt(10), Quantity: 1},
			},
			PaymentMetadata: model.JSONMap{"payment_method": "card"},
		},
		{
			TrackingID: uuid.MustParse("bbbbbbbb-1111-2222-3333-444444444444"),
			FullName:   "Mona Ali",
			Email:      "mona@example.com",
			City:       "Giza",
			TotalPrice: decimal.NewFromInt(60),
			Status:     model.StatusPending,
			CreatedAt:  created,
		},
		{
			TrackingID: uuid.MustParse("cccccccc-1111-2222-3333-444444444444"),
			FullName:   "Ahmed Samir",
			Email:      "ahmed@example.com",
			City:       "Cairo",
			TotalPrice: decimal.NewFromInt(75),
			Status:     model.StatusDelivered,
			CreatedAt:  created,
		},
	}
}

func TestCustomersGroupsByName(t *testing.T) {
	table := Customers(sampleOrders())

	require.Equal(t, []string{"Name", "Email", "Phone", "City", "Total Orders", "Total Spent (LE)"}, table.Header)
	require.Len(t, table.Rows, 2)

	// Sorted by name.
	require.Equal(t, "Ahmed Samir", table.Rows[0][0])
	require.Equal(t, 1, table.Rows[0][4])
	require.Equal(t, 75.0, table.Rows[0][5])

	require.Equal(t, "Mona Ali", table.Rows[1][0])
	require.Equal(t, 2, table.Rows[1][4])
	require.Equal(t, 200.0, table.Rows[1][5])
}

func TestOrdersRows(t *testing.T) {
	table := Orders(sampleOrders())

	require.Len(t, table.Rows, 3)
	row := table.Rows[0]
	require.Equal(t, "aaaaaaaa", row[0], "token is shortened to 8 chars")
	require.Equal(t, "Mona Ali", row[1])
	require.Equal(t, "2026-03-05 14:30", row[3])
	require.Equal(t, "Romper (Sage Green/0-3M) x2; (unavailable) x1", row[4])
	require.Equal(t, "Shipped", row[5])
	require.Equal(t, 140.0, row[6])
	require.Equal(t, "CARD", row[7])

	require.Equal(t, "N/A", table.Rows[1][7], "missing payment metadata defaults")
}

func TestWriteCSV(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteCSV(&buf, Customers(sampleOrders())))

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 3)
	require.Equal(t, "Name,Email,Phone,City,Total Orders,Total Spent (LE)", lines[0])
	require.Contains(t, lines[2], "Mona Ali,mona@example.com")
	require.Contains(t, lines[2], ",2,200")
}

func TestWriteExcel(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteExcel(&buf, Orders(sampleOrders())))
	// xlsx files are zip archives.
	require.Equal(t, "PK", buf.String()[:2])
}

func TestFilename(t *testing.T) {
	now := time.Date(2026, time.August, 29, 10, 0, 0, 0, time.UTC)
	require.Equal(t, "orders_export_20260829.csv", Filename("orders", "csv", now))
	require.Equal(t, "customers_export_20260829.xlsx", Filename("customers", "xlsx", now))
}
