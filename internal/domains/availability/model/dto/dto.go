package dto

import (
	roomModel "innkeep/internal/domains/room/model"
)

type AvailableRoomResponse struct {
	ID         string `json:"id"`
	RoomNumber string `json:"room_number"`
	RoomType   string `json:"room_type"`
	Status     string `json:"status"`
}

func (r *AvailableRoomResponse) FromModel(model roomModel.Room) {
	r.ID = model.ID
	r.RoomNumber = model.RoomNumber
	r.RoomType = model.RoomType
	r.Status = model.Status
}

type GetAvailableRoomsResponse struct {
	CheckIn  string                  `json:"check_in"`
	CheckOut string                  `json:"check_out"`
	Rooms    []AvailableRoomResponse `json:"rooms"`
}

func (r *GetAvailableRoomsResponse) FromModels(models []roomModel.Room, checkIn, checkOut string) {
	r.CheckIn = checkIn
	r.CheckOut = checkOut

	r.Rooms = make([]AvailableRoomResponse, len(models))
	for i, mod := range models {
		r.Rooms[i].FromModel(mod)
	}
}

type RoomAvailabilityResponse struct {
	RoomID    string `json:"room_id"`
	CheckIn   string `json:"check_in"`
	CheckOut  string `json:"check_out"`
	Available bool   `json:"available"`
	Reason    string `json:"reason,omitempty"`
}
