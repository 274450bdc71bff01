package request

import (
	"strings"

	"slotbook/internal/usecase/commands"
)

type CreateBookingRequest struct {
	TimeSlotID   string `json:"timeSlotId" binding:"required"`
	CustomerName string `json:"customerName" binding:"required"`
	PhoneNumber  string `json:"phoneNumber" binding:"required"`
	Notes        string `json:"notes"`
}

func (r CreateBookingRequest) ToParams() commands.ReserveParams {
	return commands.ReserveParams{
		TimeSlotID:   strings.TrimSpace(r.TimeSlotID),
		CustomerName: r.CustomerName,
		PhoneNumber:  r.PhoneNumber,
		Notes:        r.Notes,
	}
}

type RescheduleBookingRequest struct {
	TimeSlotID string `json:"timeSlotId" binding:"required"`
}
