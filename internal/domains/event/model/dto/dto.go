package dto

import "encoding/json"

// WebhookRequest is the envelope every PMS webhook delivers: an event name
// and an event-specific payload.
type WebhookRequest struct {
	Event string          `json:"event" validate:"required"`
	Data  json.RawMessage `json:"data"`
}

type BookingCancelledData struct {
	ExternalID string `json:"external_id" validate:"required"`
	Reason     string `json:"reason"`
}

type RoomStatusChangedData struct {
	RoomNumber string `json:"room_number" validate:"required"`
	Status     string `json:"status"      validate:"required,oneof=available occupied cleaning maintenance out_of_order"`
}

type BookingCreatedData struct {
	ExternalID string `json:"external_id"`
	RoomNumber string `json:"room_number"`
}
