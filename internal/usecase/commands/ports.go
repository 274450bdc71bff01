package commands

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// SlotSnapshot is the command-side record of an availability window as the
// store returned it. IsPast is intentionally absent: it is derived at read
// time by the query side, never carried through writes.
type SlotSnapshot struct {
	ID        string
	StartTime time.Time
	EndTime   time.Time
	IsBooked  bool
	CreatedAt time.Time
}

type BookingSnapshot struct {
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

// NewBooking carries everything needed to persist a booking. StartTime and
// EndTime are denormalized copies of the slot window so the booking stays
// displayable even if the slot record is deleted later.
type NewBooking struct {
	CustomerName string
	PhoneNumber  string
	Notes        string
	CreatedByID  uuid.UUID
	TimeSlotID   string
	StartTime    time.Time
	EndTime      time.Time
}

// SlotChange retargets an existing booking at a different slot, keeping the
// booking's identity and creation timestamp.
type SlotChange struct {
	TimeSlotID string
	StartTime  time.Time
	EndTime    time.Time
}

type SlotRepository interface {
	FindByID(ctx context.Context, id string) (*SlotSnapshot, error)
	// Create re-validates the window against the repository's own clock before
	// writing; the form layer's notion of "now" may be stale by the time the
	// request lands.
	Create(ctx context.Context, start, end time.Time) (*SlotSnapshot, error)
	Delete(ctx context.Context, id string) error
	MarkBooked(ctx context.Context, id string) error
	MarkAvailable(ctx context.Context, id string) error
}

type BookingRepository interface {
	FindByID(ctx context.Context, id string) (*BookingSnapshot, error)
	Create(ctx context.Context, b NewBooking) (*BookingSnapshot, error)
	ApplySlotChange(ctx context.Context, id string, change SlotChange) (*BookingSnapshot, error)
	Delete(ctx context.Context, id string) error
}
