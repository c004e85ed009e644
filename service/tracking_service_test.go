package service

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"storefront/model"
)

type fakeOrderReader struct {
	orders map[uuid.UUID]*model.Order
}

func (f *fakeOrderReader) ByTrackingID(_ context.Context, trackingID uuid.UUID) (*model.Order, error) {
	order, ok := f.orders[trackingID]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return order, nil
}

func (f *fakeOrderReader) UpdateStatus(_ context.Context, trackingID uuid.UUID, status string) (*model.Order, error) {
	order, ok := f.orders[trackingID]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	order.Status = status
	return order, nil
}

func TestTrackKnownToken(t *testing.T) {
	trackingID := uuid.New()
	reader := &fakeOrderReader{orders: map[uuid.UUID]*model.Order{
		trackingID: {TrackingID: trackingID, Status: model.StatusShipped},
	}}
	svc := NewTrackingService(reader, nil)

	order, err := svc.Track(context.Background(), trackingID)
	require.NoError(t, err)
	require.Equal(t, model.StatusShipped, order.Status)
}

func TestTrackUnknownToken(t *testing.T) {
	svc := NewTrackingService(&fakeOrderReader{orders: map[uuid.UUID]*model.Order{}}, nil)

	_, err := svc.Track(context.Background(), uuid.New())
	require.ErrorIs(t, err, ErrOrderNotFound)
}

func TestSetStatus(t *testing.T) {
	trackingID := uuid.New()
	reader := &fakeOrderReader{orders: map[uuid.UUID]*model.Order{
		trackingID: {TrackingID: trackingID, Status: model.StatusPending},
	}}
	events := &fakeEvents{}
	svc := NewTrackingService(reader, events)

	order, err := svc.SetStatus(context.Background(), trackingID, model.StatusShipped)
	require.NoError(t, err)
	require.Equal(t, model.StatusShipped, order.Status)
	require.Equal(t, []string{model.StatusShipped}, events.status)

	_, err = svc.SetStatus(context.Background(), trackingID, "teleported")
	require.ErrorIs(t, err, ErrInvalidStatus)

	_, err = svc.SetStatus(context.Background(), uuid.New(), model.StatusShipped)
	require.ErrorIs(t, err, ErrOrderNotFound)
}
