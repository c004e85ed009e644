package cart

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"

	"storefront/model"
)

// memoryStore keeps cart state in a map, standing in for redis.
type memoryStore struct {
	carts map[string]map[string]Line
}

func newMemoryStore() *memoryStore {
	return &memoryStore{carts: map[string]map[string]Line{}}
}

func (s *memoryStore) Load(_ context.Context, sessionID string) (map[string]Line, error) {
	lines, ok := s.carts[sessionID]
	if !ok {
		return map[string]Line{}, nil
	}
	copied := make(map[string]Line, len(lines))
	for k, v := range lines {
		copied[k] = v
	}
	return copied, nil
}

func (s *memoryStore) Save(_ context.Context, sessionID string, lines map[string]Line) error {
	s.carts[sessionID] = lines
	return nil
}

func (s *memoryStore) Drop(_ context.Context, sessionID string) error {
	delete(s.carts, sessionID)
	return nil
}

func testVariant(id uint, base, additional float64) *model.ProductVariant {
	return &model.ProductVariant{
		ID:              id,
		Product:         model.Product{BasePrice: decimal.NewFromFloat(base)},
		AdditionalPrice: decimal.NewFromFloat(additional),
	}
}

func TestAddFreezesPrice(t *testing.T) {
	c := New("s1", nil)
	variant := testVariant(1, 25, 5)

	c.Add(variant, 2, false)

	// Later catalog price changes must not move the cart total.
	variant.Product.BasePrice = decimal.NewFromInt(100)
	c.Add(variant, 1, false)

	require.Equal(t, 3, c.Count())
	require.True(t, c.Total().Equal(decimal.NewFromInt(90)), "got %s", c.Total())
}

func TestAddAccumulatesAndReplaces(t *testing.T) {
	c := New("s1", nil)
	variant := testVariant(1, 10, 0)

	c.Add(variant, 2, false)
	c.Add(variant, 3, false)
	require.Equal(t, 5, c.Count())

	c.Add(variant, 1, true)
	require.Equal(t, 1, c.Count())
}

func TestTotalSumsLineTotals(t *testing.T) {
	c := New("s1", nil)
	c.Add(testVariant(1, 25, 0), 2, false)
	c.Add(testVariant(2, 15, 5), 3, false)

	require.True(t, c.Total().Equal(decimal.NewFromInt(110)), "got %s", c.Total())
	require.Equal(t, 5, c.Count())
}

func TestRemoveMissingVariantIsNoop(t *testing.T) {
	c := New("s1", nil)
	c.Add(testVariant(1, 10, 0), 1, false)
	before := c.Total()

	c.Remove(99)

	require.Equal(t, 1, c.Count())
	require.True(t, c.Total().Equal(before))
}

func TestItemsSkipsDeletedVariants(t *testing.T) {
	c := New("s1", nil)
	c.Add(testVariant(1, 10, 0), 1, false)
	c.Add(testVariant(2, 20, 0), 2, false)

	// The catalog only resolves variant 2; variant 1 was deleted.
	resolved := []model.ProductVariant{*testVariant(2, 20, 0)}

	items := c.Items(resolved)
	require.Len(t, items, 1)
	require.Equal(t, uint(2), items[0].Variant.ID)
	require.True(t, items[0].LineTotal.Equal(decimal.NewFromInt(40)))

	// Re-iterable: a second call yields the same items.
	require.Len(t, c.Items(resolved), 1)
}

func TestClearEmptiesCart(t *testing.T) {
	c := New("s1", nil)
	c.Add(testVariant(1, 10, 0), 4, false)

	c.Clear()

	require.Equal(t, 0, c.Count())
	require.True(t, c.IsEmpty())
	require.True(t, c.Total().IsZero())
}

func TestManagerRoundTrip(t *testing.T) {
	ctx := context.Background()
	manager := NewManager(newMemoryStore())

	c, err := manager.Load(ctx, "s1")
	require.NoError(t, err)
	require.True(t, c.IsEmpty())

	c.Add(testVariant(1, 25, 5), 2, false)
	require.NoError(t, manager.Persist(ctx, c))

	reloaded, err := manager.Load(ctx, "s1")
	require.NoError(t, err)
	require.Equal(t, 2, reloaded.Count())
	require.True(t, reloaded.Total().Equal(decimal.NewFromInt(60)))
}

func TestManagerDropsEmptiedCart(t *testing.T) {
	ctx := context.Background()
	store := newMemoryStore()
	manager := NewManager(store)

	c, err := manager.Load(ctx, "s1")
	require.NoError(t, err)
	c.Add(testVariant(1, 10, 0), 1, false)
	require.NoError(t, manager.Persist(ctx, c))
	require.Contains(t, store.carts, "s1")

	c.Clear()
	require.NoError(t, manager.Persist(ctx, c))
	require.NotContains(t, store.carts, "s1")
}

func TestManagerSkipsCleanCart(t *testing.T) {
	ctx := context.Background()
	store := newMemoryStore()
	manager := NewManager(store)

	c, err := manager.Load(ctx, "s1")
	require.NoError(t, err)
	require.NoError(t, manager.Persist(ctx, c))
	require.NotContains(t, store.carts, "s1")
}
