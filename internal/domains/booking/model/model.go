package model

import (
	"time"

	"innkeep/shared/model"
)

const (
	TableName  = "room_bookings"
	EntityName = "booking"

	FieldID         = "id"
	FieldReference  = "reference"
	FieldRoomID     = "room_id"
	FieldGuestID    = "guest_id"
	FieldCheckIn    = "check_in"
	FieldCheckOut   = "check_out"
	FieldGuestCount = "guest_count"
	FieldStatus     = "status"
	FieldExternalID = "external_id"

	AddonTableName  = "booking_addons"
	AddonEntityName = "booking_addon"

	AddonFieldID        = "id"
	AddonFieldBookingID = "booking_id"
)

// Booking occupies the half-open stay range [check_in, check_out). All
// monetary amounts are integer cents. ExternalID is the PMS-side identifier
// and stays nil until an outbound push succeeds.
type Booking struct {
	ID               string    `db:"id"`
	Reference        string    `db:"reference"`
	RoomID           string    `db:"room_id"`
	GuestID          string    `db:"guest_id"`
	CheckIn          time.Time `db:"check_in"`
	CheckOut         time.Time `db:"check_out"`
	GuestCount       int       `db:"guest_count"`
	Status           string    `db:"status"`
	PaymentMethod    string    `db:"payment_method"`
	TotalAmountCents int64     `db:"total_amount_cents"`
	PaidAmountCents  int64     `db:"paid_amount_cents"`
	ExternalID       *string   `db:"external_id"`
	model.Metadata
}

type BookingAddon struct {
	ID         string `db:"id"`
	BookingID  string `db:"booking_id"`
	Name       string `db:"name"`
	Quantity   int    `db:"quantity"`
	PriceCents int64  `db:"price_cents"`
	model.Metadata
}
