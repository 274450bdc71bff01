package repository

import (
	"context"
	"log/slog"
	"time"

	"slotbook/internal/domain/slot"
	"slotbook/internal/infra/store"
	"slotbook/internal/pkg/clock"
	"slotbook/internal/usecase/commands"
)

const slotsCollection = "slots"

// slotRecord is the wire shape of a slot on the resource store. IsPast is
// never part of it; the flag is derived on every read because "now" moves.
type slotRecord struct {
	ID        string    `json:"id"`
	StartTime time.Time `json:"startTime"`
	EndTime   time.Time `json:"endTime"`
	IsBooked  bool      `json:"isBooked"`
	CreatedAt time.Time `json:"createdAt"`
}

// SlotRepository is the command side of the slots collection. The isBooked
// flag is only ever flipped here, on behalf of the booking orchestration.
type SlotRepository struct {
	store  *store.Client
	clock  clock.Clock
	logger *slog.Logger
}

func NewSlotRepository(store *store.Client, clock clock.Clock, logger *slog.Logger) *SlotRepository {
	return &SlotRepository{
		store:  store,
		clock:  clock,
		logger: logger,
	}
}

func (r *SlotRepository) FindByID(ctx context.Context, id string) (*commands.SlotSnapshot, error) {
	var rec slotRecord
	if err := r.store.Get(ctx, slotsCollection, id, &rec); err != nil {
		return nil, err
	}
	return snapshotFromRecord(rec), nil
}

// Create re-validates the window against this repository's clock before
// writing; it is the last line of defense behind the form layer.
func (r *SlotRepository) Create(ctx context.Context, start, end time.Time) (*commands.SlotSnapshot, error) {
	window, err := slot.NewWindow(start, end, r.clock.Now())
	if err != nil {
		return nil, err
	}

	payload := slotRecord{
		StartTime: window.Start(),
		EndTime:   window.End(),
		IsBooked:  false,
		CreatedAt: r.clock.Now(),
	}
	var created slotRecord
	if err := r.store.Create(ctx, slotsCollection, payload, &created); err != nil {
		return nil, err
	}
	return snapshotFromRecord(created), nil
}

// Delete is unconditional; callers guarantee the slot is unbooked first.
func (r *SlotRepository) Delete(ctx context.Context, id string) error {
	return r.store.Delete(ctx, slotsCollection, id)
}

// MarkBooked and MarkAvailable are deliberately narrow partial updates so the
// call site's intent stays auditable, instead of a general-purpose update.

func (r *SlotRepository) MarkBooked(ctx context.Context, id string) error {
	return r.setBookedFlag(ctx, id, true)
}

func (r *SlotRepository) MarkAvailable(ctx context.Context, id string) error {
	return r.setBookedFlag(ctx, id, false)
}

func (r *SlotRepository) setBookedFlag(ctx context.Context, id string, booked bool) error {
	payload := map[string]bool{"isBooked": booked}
	return r.store.Update(ctx, slotsCollection, id, payload, nil)
}

func snapshotFromRecord(rec slotRecord) *commands.SlotSnapshot {
	return &commands.SlotSnapshot{
		ID:        rec.ID,
		StartTime: rec.StartTime,
		EndTime:   rec.EndTime,
		IsBooked:  rec.IsBooked,
		CreatedAt: rec.CreatedAt,
	}
}
