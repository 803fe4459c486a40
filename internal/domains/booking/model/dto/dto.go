package dto

import (
	"time"

	"innkeep/internal/domains/booking/model"
	"innkeep/shared"
	"innkeep/shared/constant"
	gDto "innkeep/shared/dto"
	gModel "innkeep/shared/model"
	"innkeep/shared/timezone"

	"github.com/google/uuid"
)

type BookingAddonRequest struct {
	Name       string `json:"name"        validate:"required,max=100"`
	Quantity   int    `json:"quantity"    validate:"required,min=1"`
	PriceCents int64  `json:"price_cents" validate:"min=0"`
}

type CreateBookingRequest struct {
	RoomID           string                `json:"room_id"            validate:"required,uuid"`
	GuestName        string                `json:"guest_name"         validate:"required,max=100"`
	GuestEmail       string                `json:"guest_email"        validate:"omitempty,email,max=100"`
	GuestPhone       string                `json:"guest_phone"        validate:"omitempty,max=20"`
	CheckIn          string                `json:"check_in"           validate:"required,stay_date"`
	CheckOut         string                `json:"check_out"          validate:"required,stay_date"`
	GuestCount       int                   `json:"guest_count"        validate:"required,min=1"`
	PaymentMethod    string                `json:"payment_method"     validate:"omitempty,max=50"`
	TotalAmountCents int64                 `json:"total_amount_cents" validate:"min=0"`
	PaidAmountCents  int64                 `json:"paid_amount_cents"  validate:"min=0,ltefield=TotalAmountCents"`
	Addons           []BookingAddonRequest `json:"addons"             validate:"omitempty,dive"`
}

// ToModel assembles the booking after the serializer has resolved the guest
// and minted the reference. Stay dates come back parsed from ParseStayRange.
// A booking whose payment is already fully captured starts out confirmed
// instead of pending.
func (c *CreateBookingRequest) ToModel(guestID, reference string, checkIn, checkOut time.Time, user string) model.Booking {
	status := constant.BookingStatusPending
	if c.TotalAmountCents > 0 && c.PaidAmountCents >= c.TotalAmountCents {
		status = constant.BookingStatusConfirmed
	}

	return model.Booking{
		ID:               uuid.NewString(),
		Reference:        reference,
		RoomID:           c.RoomID,
		GuestID:          guestID,
		CheckIn:          checkIn,
		CheckOut:         checkOut,
		GuestCount:       c.GuestCount,
		Status:           status,
		PaymentMethod:    c.PaymentMethod,
		TotalAmountCents: c.TotalAmountCents,
		PaidAmountCents:  c.PaidAmountCents,
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
			CreatedBy:  user,
			ModifiedBy: user,
		},
	}
}

func (c *CreateBookingRequest) ToAddonModels(bookingID, user string) []model.BookingAddon {
	addons := make([]model.BookingAddon, len(c.Addons))
	for i, addon := range c.Addons {
		addons[i] = model.BookingAddon{
			ID:         uuid.NewString(),
			BookingID:  bookingID,
			Name:       addon.Name,
			Quantity:   addon.Quantity,
			PriceCents: addon.PriceCents,
			Metadata: gModel.Metadata{
				CreatedAt:  timezone.Now(),
				ModifiedAt: timezone.Now(),
				CreatedBy:  user,
				ModifiedBy: user,
			},
		}
	}

	return addons
}

type RecordPaymentRequest struct {
	AmountCents int64 `json:"amount_cents" validate:"required,min=1"`
}

type BookingAddonResponse struct {
	ID         string `json:"id"`
	Name       string `json:"name"`
	Quantity   int    `json:"quantity"`
	PriceCents int64  `json:"price_cents"`
}

func (r *BookingAddonResponse) FromModel(model model.BookingAddon) {
	r.ID = model.ID
	r.Name = model.Name
	r.Quantity = model.Quantity
	r.PriceCents = model.PriceCents
}

type BookingResponse struct {
	ID               string                 `json:"id"`
	Reference        string                 `json:"reference"`
	RoomID           string                 `json:"room_id"`
	GuestID          string                 `json:"guest_id"`
	CheckIn          string                 `json:"check_in"`
	CheckOut         string                 `json:"check_out"`
	GuestCount       int                    `json:"guest_count"`
	Status           string                 `json:"status"`
	PaymentMethod    string                 `json:"payment_method"`
	TotalAmountCents int64                  `json:"total_amount_cents"`
	PaidAmountCents  int64                  `json:"paid_amount_cents"`
	ExternalID       *string                `json:"external_id,omitempty"`
	Addons           []BookingAddonResponse `json:"addons,omitempty"`
	gDto.Metadata
}

func (r *BookingResponse) FromModel(model model.Booking) {
	r.ID = model.ID
	r.Reference = model.Reference
	r.RoomID = model.RoomID
	r.GuestID = model.GuestID
	r.CheckIn = model.CheckIn.Format(constant.StayDateFormat)
	r.CheckOut = model.CheckOut.Format(constant.StayDateFormat)
	r.GuestCount = model.GuestCount
	r.Status = model.Status
	r.PaymentMethod = model.PaymentMethod
	r.TotalAmountCents = model.TotalAmountCents
	r.PaidAmountCents = model.PaidAmountCents
	r.ExternalID = model.ExternalID
	r.Metadata.FromModel(model.Metadata)
}

func (r *BookingResponse) WithAddons(addons []model.BookingAddon) {
	r.Addons = make([]BookingAddonResponse, len(addons))
	for i, addon := range addons {
		r.Addons[i].FromModel(addon)
	}
}

type GetBookingsResponse struct {
	Bookings  []BookingResponse `json:"bookings"`
	TotalPage int               `json:"total_page"`
	TotalData int               `json:"total_data"`
}

func (r *GetBookingsResponse) FromModels(models []model.Booking, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Bookings = make([]BookingResponse, len(models))
	for i, mod := range models {
		r.Bookings[i].FromModel(mod)
	}
}
