package service

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"storefront/model"
)

// OrderReader is the order-side data access the tracking and admin services
// need.
type OrderReader interface {
	ByTrackingID(ctx context.Context, trackingID uuid.UUID) (*model.Order, error)
	UpdateStatus(ctx context.Context, trackingID uuid.UUID, status string) (*model.Order, error)
}

// TrackingService resolves customer-facing tracking tokens. The token is the
// only order lookup key exposed publicly; it is random, so outsiders cannot
// walk the order table.
type TrackingService struct {
	orders OrderReader
	events EventPublisher
}

func NewTrackingService(orders OrderReader, events EventPublisher) *TrackingService {
	return &TrackingService{orders: orders, events: events}
}

// Track returns the order behind a token, or ErrOrderNotFound. Unknown tokens
// are an expected outcome, never a failure.
func (s *TrackingService) Track(ctx context.Context, trackingID uuid.UUID) (*model.Order, error) {
	order, err := s.orders.ByTrackingID(ctx, trackingID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrOrderNotFound
	}
	if err != nil {
		return nil, err
	}
	return order, nil
}

// SetStatus moves an order to a new status (admin surface) and publishes the
// change.
func (s *TrackingService) SetStatus(ctx context.Context, trackingID uuid.UUID, status string) (*model.Order, error) {
	if !model.ValidStatus(status) {
		return nil, ErrInvalidStatus
	}
	order, err := s.orders.UpdateStatus(ctx, trackingID, status)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrOrderNotFound
	}
	if err != nil {
		return nil, err
	}
	if s.events != nil {
		s.events.OrderStatusChanged(order)
	}
	return order, nil
}
