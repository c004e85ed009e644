package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"storefront/model"
)

// ErrStockUnavailable means a stock row exists for a purchased variant but
// cannot cover the requested quantity. The original storefront decremented
// unconditionally and could oversell; here the decrement is an atomic
// conditional update and an uncoverable quantity aborts the whole checkout.
var ErrStockUnavailable = errors.New("stock unavailable")

type OrderRepo struct {
	db *gorm.DB
}

func NewOrderRepo(db *gorm.DB) *OrderRepo {
	return &OrderRepo{db: db}
}

// StockDecrement is one variant's deduction applied during materialization.
type StockDecrement struct {
	VariantID uint
	Quantity  int
}

// CreateWithItems persists the order header and its items and applies the
// stock decrements in one transaction. Each decrement targets the variant's
// first stock row with "quantity = quantity - n only if quantity >= n";
// variants with no stock row at all are skipped, matching the storefront's
// historical behavior.
func (r *OrderRepo) CreateWithItems(ctx context.Context, order *model.Order, decrements []StockDecrement) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(order).Error; err != nil {
			return fmt.Errorf("create order: %w", err)
		}

		for _, dec := range decrements {
			result := tx.Exec(`
				UPDATE stocks SET quantity = quantity - ?
				WHERE id = (SELECT id FROM stocks WHERE variant_id = ? ORDER BY id LIMIT 1)
				AND quantity >= ?`,
				dec.Quantity, dec.VariantID, dec.Quantity)
			if result.Error != nil {
				return fmt.Errorf("decrement stock for variant %d: %w", dec.VariantID, result.Error)
			}
			if result.RowsAffected > 0 {
				continue
			}

			var rows int64
			if err := tx.Model(&model.Stock{}).Where("variant_id = ?", dec.VariantID).Count(&rows).Error; err != nil {
				return fmt.Errorf("check stock for variant %d: %w", dec.VariantID, err)
			}
			if rows > 0 {
				return fmt.Errorf("variant %d: %w", dec.VariantID, ErrStockUnavailable)
			}
			// No stock row for this variant; nothing to decrement.
		}
		return nil
	})
}

// ByTrackingID resolves the customer-facing token to its order with line
// items. The token is the only permitted order lookup key on the public
// surface.
func (r *OrderRepo) ByTrackingID(ctx context.Context, trackingID uuid.UUID) (*model.Order, error) {
	var order model.Order
	err := r.db.WithContext(ctx).
		Preload("Items.Variant.Product").
		Preload("Items.Variant.Color").
		Preload("Items.Variant.Size").
		Where("tracking_id = ?", trackingID).
		First(&order).Error
	if err != nil {
		return nil, err
	}
	return &order, nil
}

// All lists every order newest first, items included, for the reports.
func (r *OrderRepo) All(ctx context.Context) ([]model.Order, error) {
	var orders []model.Order
	err := r.db.WithContext(ctx).
		Preload("Items.Variant.Product").
		Preload("Items.Variant.Color").
		Preload("Items.Variant.Size").
		Order("created_at DESC").
		Find(&orders).Error
	return orders, err
}

// CreatedBetween lists orders in [from, to) newest first, items included, for
// time-bounded reports.
func (r *OrderRepo) CreatedBetween(ctx context.Context, from, to time.Time) ([]model.Order, error) {
	var orders []model.Order
	err := r.db.WithContext(ctx).
		Preload("Items.Variant.Product").
		Preload("Items.Variant.Color").
		Preload("Items.Variant.Size").
		Where("created_at >= ? AND created_at < ?", from, to).
		Order("created_at DESC").
		Find(&orders).Error
	return orders, err
}

// UpdateStatus moves an order to a new status and returns the updated order.
func (r *OrderRepo) UpdateStatus(ctx context.Context, trackingID uuid.UUID, status string) (*model.Order, error) {
	var order model.Order
	err := r.db.WithContext(ctx).Where("tracking_id = ?", trackingID).First(&order).Error
	if err != nil {
		return nil, err
	}
	order.Status = status
	if err := r.db.WithContext(ctx).Save(&order).Error; err != nil {
		return nil, err
	}
	return &order, nil
}
