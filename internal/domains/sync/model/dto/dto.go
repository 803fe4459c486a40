package dto

import (
	"time"

	synclogModel "innkeep/internal/domains/synclog/model"
	"innkeep/shared"
)

// InventoryAnomaly is a PMS room the local inventory does not know about.
// Anomalies are reported, never auto-created.
type InventoryAnomaly struct {
	RoomNumber string `json:"room_number"`
	PMSStatus  string `json:"pms_status"`
}

type SyncInventoryResponse struct {
	RoomsChecked int                `json:"rooms_checked"`
	RoomsUpdated int                `json:"rooms_updated"`
	Anomalies    []InventoryAnomaly `json:"anomalies,omitempty"`
}

type HealthResponse struct {
	Vendor    string `json:"vendor"`
	Connected bool   `json:"connected"`
}

type SyncLogResponse struct {
	ID           string  `json:"id"`
	Action       string  `json:"action"`
	Direction    string  `json:"direction"`
	Outcome      string  `json:"outcome"`
	BookingID    *string `json:"booking_id,omitempty"`
	Payload      string  `json:"payload,omitempty"`
	ErrorMessage *string `json:"error_message,omitempty"`
	CreatedAt    string  `json:"created_at"`
}

func (r *SyncLogResponse) FromModel(model synclogModel.SyncLog) {
	r.ID = model.ID
	r.Action = model.Action
	r.Direction = model.Direction
	r.Outcome = model.Outcome
	r.BookingID = model.BookingID
	r.Payload = string(model.Payload)
	r.ErrorMessage = model.ErrorMessage
	r.CreatedAt = model.CreatedAt.Format(time.RFC3339)
}

type GetSyncLogsResponse struct {
	Logs      []SyncLogResponse `json:"logs"`
	TotalPage int               `json:"total_page"`
	TotalData int               `json:"total_data"`
}

func (r *GetSyncLogsResponse) FromModels(models []synclogModel.SyncLog, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Logs = make([]SyncLogResponse, len(models))
	for i, mod := range models {
		r.Logs[i].FromModel(mod)
	}
}
