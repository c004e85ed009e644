package pricing

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

func TestShippingPrice(t *testing.T) {
	tests := []struct {
		city string
		want int64
	}{
		{"Cairo", 50},
		{"Giza", 50},
		{"Alexandria", 75},
		{"Aswan", 75},
		{"Luxor", 75},
	}
	for _, tt := range tests {
		t.Run(tt.city, func(t *testing.T) {
			got := ShippingPrice(tt.city)
			require.True(t, got.Equal(decimal.NewFromInt(tt.want)), "got %s", got)
		})
	}
}

func TestDiscount(t *testing.T) {
	subtotal := decimal.NewFromInt(200)

	require.True(t, Discount("SAVE10", subtotal).Equal(decimal.NewFromInt(20)))
	require.True(t, Discount("", subtotal).IsZero())
	require.True(t, Discount("SAVE20", subtotal).IsZero())
	require.True(t, Discount("save10", subtotal).IsZero(), "coupon match is exact")
}

func TestQuoteExamples(t *testing.T) {
	q := NewQuote(decimal.NewFromInt(100), "Giza", "SAVE10")
	require.True(t, q.Shipping.Equal(decimal.NewFromInt(50)))
	require.True(t, q.Discount.Equal(decimal.NewFromInt(10)))
	require.True(t, q.Total.Equal(decimal.NewFromInt(140)), "got %s", q.Total)

	q = NewQuote(decimal.NewFromInt(200), "Alexandria", "")
	require.True(t, q.Shipping.Equal(decimal.NewFromInt(75)))
	require.True(t, q.Discount.IsZero())
	require.True(t, q.Total.Equal(decimal.NewFromInt(275)), "got %s", q.Total)
}

func TestQuoteTotalIsSubtotalPlusShippingMinusDiscount(t *testing.T) {
	subtotals := []float64{0, 0.01, 9.99, 100, 5000}
	for _, s := range subtotals {
		subtotal := decimal.NewFromFloat(s)
		q := NewQuote(subtotal, "Cairo", "SAVE10")
		require.True(t, q.Total.Equal(subtotal.Add(q.Shipping).Sub(q.Discount)))
		require.False(t, q.Total.IsNegative())
	}
}

func TestQuoteNeverNegative(t *testing.T) {
	// A zero-value cart with a percentage coupon must not go below zero.
	q := NewQuote(decimal.Zero, "", "SAVE10")
	require.True(t, q.Discount.IsZero())
	require.True(t, q.Total.IsZero())
	require.False(t, q.Total.IsNegative())
}
