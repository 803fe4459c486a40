package pms

import (
	"context"
	"errors"
	"fmt"
	"math/rand/v2"
	"strings"
	"sync"
	"time"

	"innkeep/config"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

var errMockTransport = errors.New("mock pms: simulated transport failure")

// MockAdapter simulates a PMS vendor: configurable latency and a random
// transport failure rate so the reconciliation engine's retry path gets
// exercised without a live vendor. State is in-memory only.
type MockAdapter struct {
	latency     time.Duration
	failureRate float64

	mu       sync.Mutex
	rooms    map[string]string // room number -> status
	bookings map[string]PushRequest
	canceled map[string]bool
}

func NewMock(cfg *config.Config) *MockAdapter {
	return &MockAdapter{
		latency:     time.Duration(cfg.PMS.Mock.LatencyMS) * time.Millisecond,
		failureRate: cfg.PMS.Mock.FailureRate,
		rooms:       map[string]string{},
		bookings:    map[string]PushRequest{},
		canceled:    map[string]bool{},
	}
}

func (m *MockAdapter) Vendor() string {
	return VendorMock
}

// SeedRoom registers a room status on the simulated PMS side.
func (m *MockAdapter) SeedRoom(roomNumber, status string) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.rooms[roomNumber] = status
}

func (m *MockAdapter) simulate(ctx context.Context) error {
	if m.latency > 0 {
		select {
		case <-time.After(m.latency):
		case <-ctx.Done():
			return ctx.Err() //nolint:wrapcheck
		}
	}

	if m.failureRate > 0 && rand.Float64() < m.failureRate {
		return errMockTransport
	}

	return nil
}

func (m *MockAdapter) SyncInventory(ctx context.Context) ([]InventoryItem, error) {
	if err := m.simulate(ctx); err != nil {
		return nil, err
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	items := make([]InventoryItem, 0, len(m.rooms))
	for number, status := range m.rooms {
		items = append(items, InventoryItem{RoomNumber: number, Status: status})
	}

	return items, nil
}

func (m *MockAdapter) PushBooking(ctx context.Context, req PushRequest) (PushResult, error) {
	if err := m.simulate(ctx); err != nil {
		return PushResult{}, err
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	externalID := "PMS-" + strings.ToUpper(strings.ReplaceAll(uuid.NewString(), "-", ""))[:10]
	m.bookings[externalID] = req

	log.Debug().
		Str("reference", req.Reference).
		Str("externalID", externalID).
		Msg("mock pms accepted booking")

	return PushResult{
		Success:            true,
		ExternalID:         externalID,
		ConfirmationNumber: fmt.Sprintf("CNF-%s", req.Reference),
	}, nil
}

func (m *MockAdapter) CancelBooking(ctx context.Context, externalID string) error {
	if err := m.simulate(ctx); err != nil {
		return err
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	// Cancelling twice is fine; the adapter contract is idempotent.
	m.canceled[externalID] = true

	return nil
}

func (m *MockAdapter) GetRoomStatus(ctx context.Context, roomNumber string) (string, error) {
	if err := m.simulate(ctx); err != nil {
		return "", err
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	status, ok := m.rooms[roomNumber]
	if !ok {
		return "", fmt.Errorf("mock pms: unknown room %q", roomNumber)
	}

	return status, nil
}

func (m *MockAdapter) IsConnected(ctx context.Context) bool {
	return m.simulate(ctx) == nil
}
