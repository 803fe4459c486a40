package model

import "innkeep/shared/model"

const (
	TableName  = "rooms"
	EntityName = "room"

	FieldID         = "id"
	FieldRoomNumber = "room_number"
	FieldRoomType   = "room_type"
	FieldStatus     = "status"
)

type Room struct {
	ID         string `db:"id"`
	RoomNumber string `db:"room_number"`
	RoomType   string `db:"room_type"`
	Status     string `db:"status"`
	model.Metadata
}
