package repository

import (
	"context"
	"log/slog"
	"time"

	"slotbook/internal/infra/store"
	"slotbook/internal/pkg/clock"
	"slotbook/internal/usecase/commands"

	"github.com/google/uuid"
)

const bookingsCollection = "bookings"

type bookingRecord struct {
	ID           string    `json:"id"`
	CustomerName string    `json:"customerName"`
	PhoneNumber  string    `json:"phoneNumber"`
	Notes        string    `json:"notes"`
	CreatedByID  uuid.UUID `json:"createdById"`
	TimeSlotID   string    `json:"timeSlotId"`
	StartTime    time.Time `json:"startTime"`
	EndTime      time.Time `json:"endTime"`
	CreatedAt    time.Time `json:"createdAt"`
}

// BookingRepository wraps the bookings collection. It never touches slot
// state: releasing or claiming slots is the orchestration layer's job, so this
// adapter stays free of hidden side effects on a different resource.
type BookingRepository struct {
	store  *store.Client
	clock  clock.Clock
	logger *slog.Logger
}

func NewBookingRepository(store *store.Client, clock clock.Clock, logger *slog.Logger) *BookingRepository {
	return &BookingRepository{
		store:  store,
		clock:  clock,
		logger: logger,
	}
}

func (r *BookingRepository) FindByID(ctx context.Context, id string) (*commands.BookingSnapshot, error) {
	var rec bookingRecord
	if err := r.store.Get(ctx, bookingsCollection, id, &rec); err != nil {
		return nil, err
	}
	return bookingSnapshotFromRecord(rec), nil
}

func (r *BookingRepository) Create(ctx context.Context, b commands.NewBooking) (*commands.BookingSnapshot, error) {
	payload := bookingRecord{
		CustomerName: b.CustomerName,
		PhoneNumber:  b.PhoneNumber,
		Notes:        b.Notes,
		CreatedByID:  b.CreatedByID,
		TimeSlotID:   b.TimeSlotID,
		StartTime:    b.StartTime,
		EndTime:      b.EndTime,
		CreatedAt:    r.clock.Now(),
	}
	var created bookingRecord
	if err := r.store.Create(ctx, bookingsCollection, payload, &created); err != nil {
		return nil, err
	}
	return bookingSnapshotFromRecord(created), nil
}

// ApplySlotChange rewrites only the slot reference and the denormalized window
// of an existing booking; identity and creation timestamp are preserved.
func (r *BookingRepository) ApplySlotChange(ctx context.Context, id string, change commands.SlotChange) (*commands.BookingSnapshot, error) {
	payload := map[string]any{
		"timeSlotId": change.TimeSlotID,
		"startTime":  change.StartTime,
		"endTime":    change.EndTime,
	}
	var updated bookingRecord
	if err := r.store.Update(ctx, bookingsCollection, id, payload, &updated); err != nil {
		return nil, err
	}
	return bookingSnapshotFromRecord(updated), nil
}

func (r *BookingRepository) Delete(ctx context.Context, id string) error {
	return r.store.Delete(ctx, bookingsCollection, id)
}

func bookingSnapshotFromRecord(rec bookingRecord) *commands.BookingSnapshot {
	return &commands.BookingSnapshot{
		ID:           rec.ID,
		CustomerName: rec.CustomerName,
		PhoneNumber:  rec.PhoneNumber,
		Notes:        rec.Notes,
		CreatedByID:  rec.CreatedByID,
		TimeSlotID:   rec.TimeSlotID,
		StartTime:    rec.StartTime,
		EndTime:      rec.EndTime,
		CreatedAt:    rec.CreatedAt,
	}
}

