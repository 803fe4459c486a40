package dto

import (
	"time"

	"innkeep/internal/domains/block/model"
	"innkeep/shared"
	"innkeep/shared/constant"
	gModel "innkeep/shared/model"
	"innkeep/shared/timezone"

	"github.com/google/uuid"
)

type CreateRoomBlockRequest struct {
	RoomID    string `json:"room_id"    validate:"required,uuid"`
	StartDate string `json:"start_date" validate:"required,stay_date"`
	EndDate   string `json:"end_date"   validate:"required,stay_date"`
	Reason    string `json:"reason"     validate:"required,max=255"`
}

func (c *CreateRoomBlockRequest) ToModel(startDate, endDate time.Time, user string) model.RoomBlock {
	return model.RoomBlock{
		ID:        uuid.NewString(),
		RoomID:    c.RoomID,
		StartDate: startDate,
		EndDate:   endDate,
		Reason:    c.Reason,
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
			CreatedBy:  user,
			ModifiedBy: user,
		},
	}
}

type RoomBlockResponse struct {
	ID        string `json:"id"`
	RoomID    string `json:"room_id"`
	StartDate string `json:"start_date"`
	EndDate   string `json:"end_date"`
	Reason    string `json:"reason"`
	CreatedAt string `json:"created_at"`
}

func (r *RoomBlockResponse) FromModel(model model.RoomBlock) {
	r.ID = model.ID
	r.RoomID = model.RoomID
	r.StartDate = model.StartDate.Format(constant.StayDateFormat)
	r.EndDate = model.EndDate.Format(constant.StayDateFormat)
	r.Reason = model.Reason
	r.CreatedAt = model.CreatedAt.Format(time.RFC3339)
}

type GetRoomBlocksResponse struct {
	Blocks    []RoomBlockResponse `json:"blocks"`
	TotalPage int                 `json:"total_page"`
	TotalData int                 `json:"total_data"`
}

func (r *GetRoomBlocksResponse) FromModels(models []model.RoomBlock, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Blocks = make([]RoomBlockResponse, len(models))
	for i, mod := range models {
		r.Blocks[i].FromModel(mod)
	}
}
