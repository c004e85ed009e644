package service

import (
	"context"
	"net/mail"
	"sort"
	"strings"

	"storefront/cart"
	"storefront/model"
	"storefront/pricing"
	"storefront/repository"
)

// CheckoutForm is a checkout submission. PlaceOrder distinguishes a price
// preview from a commit.
type CheckoutForm struct {
	FullName    string `json:"full_name" form:"full_name"`
	Email       string `json:"email" form:"email"`
	PhoneNumber string `json:"phone_number" form:"phone_number"`
	Address     string `json:"address" form:"address"`
	City        string `json:"city" form:"city"`
	CouponCode  string `json:"coupon_code" form:"coupon_code"`
	PlaceOrder  bool   `json:"place_order" form:"place_order"`
}

// Validate checks the customer fields and reports every problem at once,
// keyed by field name.
func (f *CheckoutForm) Validate() ValidationError {
	errs := ValidationError{}

	if strings.TrimSpace(f.FullName) == "" {
		errs["full_name"] = "this field is required"
	}
	if strings.TrimSpace(f.Email) == "" {
		errs["email"] = "this field is required"
	} else if _, err := mail.ParseAddress(f.Email); err != nil {
		errs["email"] = "enter a valid email address"
	}
	if strings.TrimSpace(f.PhoneNumber) == "" {
		errs["phone_number"] = "this field is required"
	}
	if strings.TrimSpace(f.Address) == "" {
		errs["address"] = "this field is required"
	}
	if f.City == "" {
		errs["city"] = "this field is required"
	} else if !model.ValidGovernorate(f.City) {
		errs["city"] = "choose a valid destination"
	}

	if len(errs) == 0 {
		return nil
	}
	return errs
}

// VariantResolver loads the catalog variants backing cart entries. It may
// return fewer variants than ids; entries without a surviving variant are
// skipped.
type VariantResolver interface {
	VariantsByIDs(ctx context.Context, ids []uint) ([]model.ProductVariant, error)
}

// OrderWriter materializes an order and its stock decrements atomically.
type OrderWriter interface {
	CreateWithItems(ctx context.Context, order *model.Order, decrements []repository.StockDecrement) error
}

// EventPublisher announces order lifecycle changes. A nil publisher disables
// events.
type EventPublisher interface {
	OrderCreated(order *model.Order)
	OrderStatusChanged(order *model.Order)
}

// CheckoutResult is the outcome of a checkout submission. Order is nil for
// previews.
type CheckoutResult struct {
	Quote pricing.Quote `json:"quote"`
	Order *model.Order  `json:"order,omitempty"`
}

// CheckoutService turns a priced session cart into a persisted order.
type CheckoutService struct {
	carts   *cart.Manager
	catalog VariantResolver
	orders  OrderWriter
	events  EventPublisher
}

func NewCheckoutService(carts *cart.Manager, catalog VariantResolver, orders OrderWriter, events EventPublisher) *CheckoutService {
	return &CheckoutService{carts: carts, catalog: catalog, orders: orders, events: events}
}

// Checkout prices the session's cart for the submitted destination and
// coupon. When the form finalizes the purchase it validates the customer
// fields, persists the order with its items and stock decrements in one
// transaction, clears the cart and returns the new order with its tracking
// token. A preview submission returns the quote alone and persists nothing.
func (s *CheckoutService) Checkout(ctx context.Context, sessionID string, form CheckoutForm) (*CheckoutResult, error) {
	c, err := s.carts.Load(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if c.IsEmpty() {
		return nil, ErrEmptyCart
	}

	quote := pricing.NewQuote(c.Total(), form.City, form.CouponCode)
	if !form.PlaceOrder {
		return &CheckoutResult{Quote: quote}, nil
	}

	if errs := form.Validate(); errs != nil {
		return nil, errs
	}

	variants, err := s.catalog.VariantsByIDs(ctx, c.VariantIDs())
	if err != nil {
		return nil, err
	}
	items := c.Items(variants)
	// Stable item order keeps the persisted lines deterministic.
	sort.Slice(items, func(i, j int) bool { return items[i].Variant.ID < items[j].Variant.ID })

	order := &model.Order{
		FullName:       form.FullName,
		Email:          form.Email,
		PhoneNumber:    form.PhoneNumber,
		Address:        form.Address,
		City:           form.City,
		ShippingPrice:  quote.Shipping,
		DiscountAmount: quote.Discount,
		TotalPrice:     quote.Total,
		Status:         model.StatusPending,
		IsPaid:         false,
	}

	decrements := make([]repository.StockDecrement, 0, len(items))
	for _, item := range items {
		variantID := item.Variant.ID
		order.Items = append(order.Items, model.OrderItem{
			VariantID: &variantID,
			Price:     item.Price,
			Quantity:  item.Quantity,
		})
		decrements = append(decrements, repository.StockDecrement{
			VariantID: variantID,
			Quantity:  item.Quantity,
		})
	}

	if err := s.orders.CreateWithItems(ctx, order, decrements); err != nil {
		return nil, err
	}

	c.Clear()
	if err := s.carts.Persist(ctx, c); err != nil {
		return nil, err
	}

	if s.events != nil {
		s.events.OrderCreated(order)
	}
	return &CheckoutResult{Quote: quote, Order: order}, nil
}
