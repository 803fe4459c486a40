package model

import (
	"encoding/json"
	"time"
)

const (
	TableName  = "sync_logs"
	EntityName = "sync_log"

	FieldID        = "id"
	FieldAction    = "action"
	FieldDirection = "direction"
	FieldOutcome   = "outcome"
	FieldBookingID = "booking_id"
	FieldCreatedAt = "created_at"
)

// SyncLog is an append-only audit row. Entries are never updated or deleted,
// so the model carries only created_at instead of the shared metadata.
type SyncLog struct {
	ID           string          `db:"id"`
	Action       string          `db:"action"`
	Direction    string          `db:"direction"`
	Outcome      string          `db:"outcome"`
	BookingID    *string         `db:"booking_id"`
	Payload      json.RawMessage `db:"payload"`
	ErrorMessage *string         `db:"error_message"`
	CreatedAt    time.Time       `db:"created_at"`
}
