package service

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tourism/internal/model"
)

func TestHotelService_Occupancy(t *testing.T) {
	store := &fakeHotelStore{rows: []model.HotelOccupancy{
		{HotelID: 1, HotelName: "Grand", Month: "2024-07", Season: "High", Bookings: 3, AvgTourDifficulty: decimal.RequireFromString("2.67")},
	}}

	rows, err := NewHotelService(store).Occupancy(context.Background())
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, "Grand", rows[0].HotelName)
	assert.Equal(t, 3, rows[0].Bookings)
	assert.Equal(t, 2.67, rows[0].AvgTourDifficulty)
}

func TestSubscriptionService(t *testing.T) {
	ctx := context.Background()
	svc := NewSubscriptionService(&fakeSubscriptionStore{})

	require.NoError(t, svc.Subscribe(ctx, 100))
	require.NoError(t, svc.Subscribe(ctx, 100))
	require.NoError(t, svc.Subscribe(ctx, 200))
	require.NoError(t, svc.Unsubscribe(ctx, 200))

	ids, err := svc.Recipients(ctx)
	require.NoError(t, err)
	assert.Equal(t, []int64{100}, ids)
}
