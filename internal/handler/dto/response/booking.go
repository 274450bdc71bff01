package response

import (
	"time"

	"slotbook/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
)

type BookingResponse struct {
	ID           string    `json:"id"`
	CustomerName string    `json:"customerName"`
	PhoneNumber  string    `json:"phoneNumber"`
	Notes        string    `json:"notes,omitempty"`
	CreatedByID  uuid.UUID `json:"createdById"`
	TimeSlotID   string    `json:"timeSlotId"`
	StartTime    time.Time `json:"startTime"`
	EndTime      time.Time `json:"endTime"`
	Status       string    `json:"status"`
	CreatedAt    time.Time `json:"createdAt"`
}

func FromBookingView(view *queries.BookingView) *BookingResponse {
	var resp BookingResponse
	_ = copier.Copy(&resp, view)
	return &resp
}

func FromBookingViews(views []*queries.BookingView) []*BookingResponse {
	resp := make([]*BookingResponse, len(views))
	for i, v := range views {
		resp[i] = FromBookingView(v)
	}
	return resp
}
