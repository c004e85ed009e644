package cart

import (
	"context"
	"strconv"

	"github.com/shopspring/decimal"

	"storefront/model"
)

// Line is one cart entry. Price is frozen when the variant is first added and
// never re-read from the catalog, so cart totals are stable against later
// price changes until the session cart is rebuilt.
type Line struct {
	Quantity int             `json:"quantity"`
	Price    decimal.Decimal `json:"price"`
}

// Cart is the per-session selection of variants. Keys are variant ids in
// string form so the state round-trips through JSON unchanged.
type Cart struct {
	sessionID string
	lines     map[string]Line
	dirty     bool
}

func New(sessionID string, lines map[string]Line) *Cart {
	if lines == nil {
		lines = map[string]Line{}
	}
	return &Cart{sessionID: sessionID, lines: lines}
}

func (c *Cart) SessionID() string { return c.sessionID }

// Dirty reports whether the cart has unsaved mutations.
func (c *Cart) Dirty() bool { return c.dirty }

// Add puts quantity of the variant in the cart. A new entry freezes the unit
// price at base price plus the variant's additional price. With replace the
// quantity is overwritten, otherwise it accumulates.
func (c *Cart) Add(variant *model.ProductVariant, quantity int, replace bool) {
	key := strconv.FormatUint(uint64(variant.ID), 10)
	line, ok := c.lines[key]
	if !ok {
		line = Line{Quantity: 0, Price: variant.UnitPrice()}
	}
	if replace {
		line.Quantity = quantity
	} else {
		line.Quantity += quantity
	}
	c.lines[key] = line
	c.dirty = true
}

// Remove drops the variant's entry. Removing a variant that is not in the
// cart is a no-op.
func (c *Cart) Remove(variantID uint) {
	key := strconv.FormatUint(uint64(variantID), 10)
	if _, ok := c.lines[key]; ok {
		delete(c.lines, key)
		c.dirty = true
	}
}

// Count is the sum of quantities across all entries.
func (c *Cart) Count() int {
	count := 0
	for _, line := range c.lines {
		count += line.Quantity
	}
	return count
}

// Total sums price x quantity over all entries using the frozen snapshot
// prices.
func (c *Cart) Total() decimal.Decimal {
	total := decimal.Zero
	for _, line := range c.lines {
		total = total.Add(line.Price.Mul(decimal.NewFromInt(int64(line.Quantity))))
	}
	return total
}

func (c *Cart) IsEmpty() bool { return len(c.lines) == 0 }

// Clear empties the cart.
func (c *Cart) Clear() {
	c.lines = map[string]Line{}
	c.dirty = true
}

// VariantIDs lists the variant ids currently in the cart, for resolving
// against the catalog.
func (c *Cart) VariantIDs() []uint {
	ids := make([]uint, 0, len(c.lines))
	for key := range c.lines {
		id, err := strconv.ParseUint(key, 10, 64)
		if err != nil {
			continue
		}
		ids = append(ids, uint(id))
	}
	return ids
}

// Item is a cart line enriched with its resolved variant.
type Item struct {
	Variant   model.ProductVariant `json:"variant"`
	Quantity  int                  `json:"quantity"`
	Price     decimal.Decimal      `json:"price"`
	LineTotal decimal.Decimal      `json:"line_total"`
}

// Items joins the cart lines with the resolved variants. Lines whose variant
// no longer exists in the catalog are skipped; the slice is rebuilt on every
// call so it can be walked repeatedly within one request.
func (c *Cart) Items(variants []model.ProductVariant) []Item {
	items := make([]Item, 0, len(c.lines))
	for _, v := range variants {
		key := strconv.FormatUint(uint64(v.ID), 10)
		line, ok := c.lines[key]
		if !ok {
			continue
		}
		items = append(items, Item{
			Variant:   v,
			Quantity:  line.Quantity,
			Price:     line.Price,
			LineTotal: line.Price.Mul(decimal.NewFromInt(int64(line.Quantity))),
		})
	}
	return items
}

// Store persists session cart state between requests.
type Store interface {
	Load(ctx context.Context, sessionID string) (map[string]Line, error)
	Save(ctx context.Context, sessionID string, lines map[string]Line) error
	Drop(ctx context.Context, sessionID string) error
}

// Manager loads and persists carts through a Store.
type Manager struct {
	store Store
}

func NewManager(store Store) *Manager {
	return &Manager{store: store}
}

// Load fetches the session's cart, starting a fresh one when no state exists.
func (m *Manager) Load(ctx context.Context, sessionID string) (*Cart, error) {
	lines, err := m.store.Load(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	return New(sessionID, lines), nil
}

// Persist writes the cart back when it has been mutated. An emptied cart
// drops the session key instead of storing an empty blob.
func (m *Manager) Persist(ctx context.Context, c *Cart) error {
	if !c.dirty {
		return nil
	}
	if c.IsEmpty() {
		if err := m.store.Drop(ctx, c.sessionID); err != nil {
			return err
		}
	} else if err := m.store.Save(ctx, c.sessionID, c.lines); err != nil {
		return err
	}
	c.dirty = false
	return nil
}
