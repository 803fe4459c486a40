package pms_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"

	"innkeep/config"
	"innkeep/infras/pms"
	"innkeep/shared/constant"
)

func mockConfig(failureRate float64) *config.Config {
	cfg := &config.Config{}
	cfg.PMS.Vendor = pms.VendorMock
	cfg.PMS.Mock.LatencyMS = 0
	cfg.PMS.Mock.FailureRate = failureRate

	return cfg
}

func TestNewSelectsVendor(t *testing.T) {
	adapter, err := pms.New(mockConfig(0))
	assert.NoError(t, err)
	assert.Equal(t, pms.VendorMock, adapter.Vendor())

	cfg := mockConfig(0)
	cfg.PMS.Vendor = "nonexistent"

	_, err = pms.New(cfg)
	assert.Error(t, err)
}

func TestMockAdapterRoundTrip(t *testing.T) {
	ctx := context.Background()
	adapter := pms.NewMock(mockConfig(0))
	adapter.SeedRoom("101", constant.RoomStatusAvailable)
	adapter.SeedRoom("102", constant.RoomStatusMaintenance)

	items, err := adapter.SyncInventory(ctx)
	assert.NoError(t, err)
	assert.Len(t, items, 2)

	status, err := adapter.GetRoomStatus(ctx, "101")
	assert.NoError(t, err)
	assert.Equal(t, constant.RoomStatusAvailable, status)

	_, err = adapter.GetRoomStatus(ctx, "999")
	assert.Error(t, err)

	result, err := adapter.PushBooking(ctx, pms.PushRequest{Reference: "BK-20260110-ABCDEF12", RoomNumber: "101"})
	assert.NoError(t, err)
	assert.True(t, result.Success)
	assert.NotEmpty(t, result.ExternalID)

	// Idempotent cancel: a second cancel of the same external id is not an
	// error.
	assert.NoError(t, adapter.CancelBooking(ctx, result.ExternalID))
	assert.NoError(t, adapter.CancelBooking(ctx, result.ExternalID))

	assert.True(t, adapter.IsConnected(ctx))
}

func TestMockAdapterFailureRate(t *testing.T) {
	ctx := context.Background()
	adapter := pms.NewMock(mockConfig(1.0))

	_, err := adapter.SyncInventory(ctx)
	assert.Error(t, err)

	_, err = adapter.PushBooking(ctx, pms.PushRequest{Reference: "BK-20260110-ABCDEF12"})
	assert.Error(t, err)

	assert.False(t, adapter.IsConnected(ctx))
}
