package pms

//go:generate go run go.uber.org/mock/mockgen -source=./pms.go -destination=./mocks/pms_mock.go -package=mocks

import (
	"context"
	"fmt"
	"time"

	"innkeep/config"

	"github.com/rs/zerolog/log"
)

// InventoryItem is one room as reported by the PMS snapshot.
type InventoryItem struct {
	RoomNumber string         `json:"room_number"`
	Status     string         `json:"status"`
	Blocked    []BlockedRange `json:"blocked,omitempty"`
}

// BlockedRange is a PMS-side closed date range.
type BlockedRange struct {
	Start  time.Time `json:"start"`
	End    time.Time `json:"end"`
	Reason string    `json:"reason,omitempty"`
}

// PushRequest is the adapter-neutral shape of an outbound booking push.
type PushRequest struct {
	Reference  string    `json:"reference"`
	RoomNumber string    `json:"room_number"`
	GuestName  string    `json:"guest_name"`
	GuestEmail string    `json:"guest_email,omitempty"`
	GuestPhone string    `json:"guest_phone,omitempty"`
	CheckIn    time.Time `json:"check_in"`
	CheckOut   time.Time `json:"check_out"`
	GuestCount int       `json:"guest_count"`
}

// PushResult reports the PMS-side outcome of a booking push. A business
// rejection (room sold out upstream, rate mismatch) is Success=false with a
// populated Errors list and a nil error from PushBooking; only transport
// failures surface as errors.
type PushResult struct {
	Success            bool     `json:"success"`
	ExternalID         string   `json:"external_id,omitempty"`
	ConfirmationNumber string   `json:"confirmation_number,omitempty"`
	Errors             []string `json:"errors,omitempty"`
}

// Adapter is the capability seam between the reconciliation engine and any
// concrete Property Management System vendor. One implementation is selected
// per process at startup; the engine never knows which.
type Adapter interface {
	SyncInventory(ctx context.Context) ([]InventoryItem, error)
	PushBooking(ctx context.Context, req PushRequest) (PushResult, error)
	// CancelBooking is idempotent from the caller's perspective: cancelling
	// an already-cancelled external booking is not a hard failure.
	CancelBooking(ctx context.Context, externalID string) error
	GetRoomStatus(ctx context.Context, roomNumber string) (string, error)
	// IsConnected never returns an error; a broken adapter reports false.
	IsConnected(ctx context.Context) bool
	Vendor() string
}

const (
	VendorMock = "mock"
)

// New selects the adapter implementation for the configured vendor. This is
// the only place vendor names are interpreted.
func New(cfg *config.Config) (Adapter, error) {
	switch cfg.PMS.Vendor {
	case VendorMock, "":
		log.Info().
			Int("latency_ms", cfg.PMS.Mock.LatencyMS).
			Float64("failure_rate", cfg.PMS.Mock.FailureRate).
			Msg("Using mock PMS adapter")

		return NewMock(cfg), nil
	default:
		return nil, fmt.Errorf("unknown PMS vendor %q", cfg.PMS.Vendor)
	}
}
