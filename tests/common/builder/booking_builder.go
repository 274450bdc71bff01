//go:build unit

package builder

import (
	"time"

	"slotbook/internal/usecase/commands"
	"slotbook/internal/usecase/queries"

	"github.com/google/uuid"
)

type BookingBuilder struct {
	ID           string
	CustomerName string
	PhoneNumber  string
	Notes        string
	CreatedByID  uuid.UUID
	TimeSlotID   string
	StartTime    time.Time
	EndTime      time.Time
	CreatedAt    time.Time
}

func NewBookingBuilder(now time.Time) *BookingBuilder {
	start := now.Add(24 * time.Hour)
	return &BookingBuilder{
		ID:           uuid.NewString(),
		CustomerName: "Alex Example",
		PhoneNumber:  "+1 555 0100",
		Notes:        "first visit",
		CreatedByID:  uuid.New(),
		TimeSlotID:   uuid.NewString(),
		StartTime:    start,
		EndTime:      start.Add(time.Hour),
		CreatedAt:    now,
	}
}

func (b *BookingBuilder) WithSlot(slotID string, start, end time.Time) *BookingBuilder {
	b.TimeSlotID = slotID
	b.StartTime = start
	b.EndTime = end
	return b
}

func (b *BookingBuilder) WithOwner(ownerID uuid.UUID) *BookingBuilder {
	b.CreatedByID = ownerID
	return b
}

func (b *BookingBuilder) BuildSnapshot() *commands.BookingSnapshot {
	return &commands.BookingSnapshot{
		ID:           b.ID,
		CustomerName: b.CustomerName,
		PhoneNumber:  b.PhoneNumber,
		Notes:        b.Notes,
		CreatedByID:  b.CreatedByID,
		TimeSlotID:   b.TimeSlotID,
		StartTime:    b.StartTime,
		EndTime:      b.EndTime,
		CreatedAt:    b.CreatedAt,
	}
}

func (b *BookingBuilder) BuildView(status string) *queries.BookingView {
	return &queries.BookingView{
		ID:           b.ID,
		CustomerName: b.CustomerName,
		PhoneNumber:  b.PhoneNumber,
		Notes:        b.Notes,
		CreatedByID:  b.CreatedByID,
		TimeSlotID:   b.TimeSlotID,
		StartTime:    b.StartTime,
		EndTime:      b.EndTime,
		Status:       status,
		CreatedAt:    b.CreatedAt,
	}
}
