// Package pricing computes shipping, discount and the final order total for a
// checkout, independent of persistence. The rules are intentionally a lookup
// table, not a rate engine.
package pricing

import "github.com/shopspring/decimal"

// CouponSave10 is the only recognized coupon code; exact match, no stacking.
const CouponSave10 = "SAVE10"

var (
	shippingNear = decimal.NewFromInt(50)
	shippingFar  = decimal.NewFromInt(75)
	save10Rate   = decimal.NewFromFloat(0.10)
)

// ShippingPrice is a flat rate: 50 for the two low-cost destinations, 75
// everywhere else. An empty city means no destination chosen yet and ships
// free in previews.
func ShippingPrice(city string) decimal.Decimal {
	switch city {
	case "":
		return decimal.Zero
	case "Cairo", "Giza":
		return shippingNear
	default:
		return shippingFar
	}
}

// Discount applies a recognized coupon to the pre-shipping subtotal.
// Unrecognized or absent codes discount nothing.
func Discount(couponCode string, subtotal decimal.Decimal) decimal.Decimal {
	if couponCode == CouponSave10 {
		return subtotal.Mul(save10Rate)
	}
	return decimal.Zero
}

// Quote is a priced checkout preview.
type Quote struct {
	Subtotal decimal.Decimal `json:"subtotal"`
	Shipping decimal.Decimal `json:"shipping_price"`
	Discount decimal.Decimal `json:"discount_amount"`
	Total    decimal.Decimal `json:"total_price"`
}

// NewQuote prices a cart subtotal for a destination and coupon. The discount
// is clamped so the total never goes negative.
func NewQuote(subtotal decimal.Decimal, city, couponCode string) Quote {
	shipping := ShippingPrice(city)
	discount := Discount(couponCode, subtotal)

	if max := subtotal.Add(shipping); discount.GreaterThan(max) {
		discount = max
	}

	return Quote{
		Subtotal: subtotal,
		Shipping: shipping,
		Discount: discount,
		Total:    subtotal.Add(shipping).Sub(discount),
	}
}
