package model

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

func TestStatusLabel(t *testing.T) {
	require.Equal(t, "Pending", StatusLabel(StatusPending))
	require.Equal(t, "Delivered", StatusLabel(StatusDelivered))
	require.Equal(t, "limbo", StatusLabel("limbo"))

	require.True(t, ValidStatus(StatusCancelled))
	require.False(t, ValidStatus("limbo"))
}

func TestValidGovernorate(t *testing.T) {
	require.True(t, ValidGovernorate("Cairo"))
	require.True(t, ValidGovernorate("Kafr El Sheikh"))
	require.False(t, ValidGovernorate("Atlantis"))
	require.False(t, ValidGovernorate(""))
}

func TestOrderSubtotal(t *testing.T) {
	order := Order{Items: []OrderItem{
		{Price: decimal.NewFromInt(25), Quantity: 2},
		{Price: decimal.NewFromFloat(15.50), Quantity: 1},
	}}
	require.True(t, order.Subtotal().Equal(decimal.NewFromFloat(65.50)), "got %s", order.Subtotal())
}

func TestPaymentMethod(t *testing.T) {
	order := Order{}
	require.Equal(t, "N/A", order.PaymentMethod())

	order.PaymentMetadata = JSONMap{"payment_method": "wallet"}
	require.Equal(t, "WALLET", order.PaymentMethod())
}

func TestJSONMapScan(t *testing.T) {
	var m JSONMap
	require.NoError(t, m.Scan([]byte(`{"payment_method":"card"}`)))
	require.Equal(t, "card", m["payment_method"])

	value, err := JSONMap(nil).Value()
	require.NoError(t, err)
	require.Equal(t, []byte("{}"), value)
}

func TestVariantUnitPrice(t *testing.T) {
	variant := ProductVariant{
		Product:         Product{BasePrice: decimal.NewFromInt(25)},
		AdditionalPrice: decimal.NewFromInt(5),
	}
	require.True(t, variant.UnitPrice().Equal(decimal.NewFromInt(30)))
}
