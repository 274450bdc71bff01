package response

import (
	"time"

	"slotbook/internal/usecase/queries"

	"github.com/jinzhu/copier"
)

type SlotResponse struct {
	ID        string    `json:"id"`
	StartTime time.Time `json:"startTime"`
	EndTime   time.Time `json:"endTime"`
	IsBooked  bool      `json:"isBooked"`
	IsPast    bool      `json:"isPast"`
	CreatedAt time.Time `json:"createdAt"`
}

func FromSlotView(view *queries.SlotView) *SlotResponse {
	var resp SlotResponse
	_ = copier.Copy(&resp, view)
	return &resp
}

func FromSlotViews(views []*queries.SlotView) []*SlotResponse {
	resp := make([]*SlotResponse, len(views))
	for i, v := range views {
		resp[i] = FromSlotView(v)
	}
	return resp
}
