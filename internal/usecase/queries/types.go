package queries

import (
	"time"

	"github.com/google/uuid"
)

type SlotView struct {
	ID        string
	StartTime time.Time
	EndTime   time.Time
	IsBooked  bool
	IsPast    bool
	CreatedAt time.Time
}

type BookingView struct {
	ID           string
	CustomerName string
	PhoneNumber  string
	Notes        string
	CreatedByID  uuid.UUID
	TimeSlotID   string
	StartTime    time.Time
	EndTime      time.Time
	Status       string
	CreatedAt    time.Time
}

type UserView struct {
	ID       uuid.UUID
	Username string
	FullName string
	Email    string
	Role     string
}
