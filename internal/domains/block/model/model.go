package model

import (
	"time"

	"innkeep/shared/model"
)

const (
	TableName  = "room_blocks"
	EntityName = "room_block"

	FieldID        = "id"
	FieldRoomID    = "room_id"
	FieldStartDate = "start_date"
	FieldEndDate   = "end_date"
	FieldReason    = "reason"
)

// RoomBlock is an administrative closure (renovation, owner use). It holds
// inventory exactly like a booking but carries no guest and never syncs
// outbound to the PMS.
type RoomBlock struct {
	ID        string    `db:"id"`
	RoomID    string    `db:"room_id"`
	StartDate time.Time `db:"start_date"`
	EndDate   time.Time `db:"end_date"`
	Reason    string    `db:"reason"`
	model.Metadata
}
