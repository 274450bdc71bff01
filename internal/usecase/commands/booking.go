package commands

import (
	"context"
	"log/slog"

	"slotbook/internal/domain/booking"
	"slotbook/internal/domain/schedule"
	"slotbook/internal/infra"
	"slotbook/internal/pkg/clock"
	"slotbook/internal/pkg/errs"
	"slotbook/internal/usecase/queries"

	"github.com/google/uuid"
)

var (
	ErrSlotNotFound         = errs.New("time slot not found")
	ErrSlotUnavailable      = errs.New("time slot unavailable")
	ErrBookingNotFound      = errs.New("booking not found")
	ErrDomainValidation     = errs.New("domain validation error")
	ErrStoreOperationFailed = errs.New("store operation failed")
)

type ReserveParams struct {
	TimeSlotID   string
	CustomerName string
	PhoneNumber  string
	Notes        string
}

// BookingCommands coordinates the slot and booking collections. The store has
// no cross-resource transaction, so every operation is best-effort sequential:
// once the primary write succeeds, a failure in the dependent slot-flag write
// is logged and swallowed rather than reported as an operation failure.
type BookingCommands interface {
	Reserve(ctx context.Context, params ReserveParams, userID uuid.UUID) (*queries.BookingView, error)
	Cancel(ctx context.Context, bookingID string) error
	Reschedule(ctx context.Context, bookingID, newTimeSlotID string) (*queries.BookingView, error)
}

type bookingCommandsImpl struct {
	bookings BookingRepository
	slots    SlotRepository
	clock    clock.Clock
}

func NewBookingCommands(bookings BookingRepository, slots SlotRepository, clock clock.Clock) BookingCommands {
	return &bookingCommandsImpl{
		bookings: bookings,
		slots:    slots,
		clock:    clock,
	}
}

func (c *bookingCommandsImpl) Reserve(ctx context.Context, params ReserveParams, userID uuid.UUID) (*queries.BookingView, error) {
	snap, err := c.loadSlot(ctx, params.TimeSlotID)
	if err != nil {
		return nil, err
	}
	if snap.IsBooked || schedule.IsPast(snap.EndTime, c.clock.Now()) {
		return nil, ErrSlotUnavailable
	}

	customer, err := booking.NewCustomer(params.CustomerName, params.PhoneNumber, params.Notes)
	if err != nil {
		return nil, errs.Mark(err, ErrDomainValidation)
	}

	created, err := c.bookings.Create(ctx, NewBooking{
		CustomerName: customer.Name(),
		PhoneNumber:  customer.Phone(),
		Notes:        customer.Notes(),
		CreatedByID:  userID,
		TimeSlotID:   snap.ID,
		StartTime:    snap.StartTime,
		EndTime:      snap.EndTime,
	})
	if err != nil {
		return nil, errs.Mark(err, ErrStoreOperationFailed)
	}

	if err := c.slots.MarkBooked(ctx, snap.ID); err != nil {
		// The booking already exists; the reservation must not be reported as
		// failed. The slot will transiently read as available until reconciled,
		// so the drift has to be loud in logs.
		slog.Error("booking created but slot could not be marked booked",
			"booking_id", created.ID, "slot_id", snap.ID, "error", err.Error())
	}

	return c.toView(created), nil
}

func (c *bookingCommandsImpl) Cancel(ctx context.Context, bookingID string) error {
	// Load first: the slot reference is needed after the booking is gone, and a
	// cancel of an already-deleted id must surface as not-found.
	snap, err := c.bookings.FindByID(ctx, bookingID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return ErrBookingNotFound
		}
		return errs.Mark(err, ErrStoreOperationFailed)
	}

	if err := c.bookings.Delete(ctx, bookingID); err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return ErrBookingNotFound
		}
		return errs.Mark(err, ErrStoreOperationFailed)
	}

	if err := c.slots.MarkAvailable(ctx, snap.TimeSlotID); err != nil {
		slog.Error("booking cancelled but slot could not be released",
			"booking_id", bookingID, "slot_id", snap.TimeSlotID, "error", err.Error())
	}

	return nil
}

func (c *bookingCommandsImpl) Reschedule(ctx context.Context, bookingID, newTimeSlotID string) (*queries.BookingView, error) {
	current, err := c.bookings.FindByID(ctx, bookingID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrBookingNotFound
		}
		return nil, errs.Mark(err, ErrStoreOperationFailed)
	}

	next, err := c.loadSlot(ctx, newTimeSlotID)
	if err != nil {
		return nil, err
	}
	if next.IsBooked || schedule.IsPast(next.EndTime, c.clock.Now()) {
		return nil, ErrSlotUnavailable
	}

	// In-place update keeps the booking's identity and creation timestamp.
	updated, err := c.bookings.ApplySlotChange(ctx, current.ID, SlotChange{
		TimeSlotID: next.ID,
		StartTime:  next.StartTime,
		EndTime:    next.EndTime,
	})
	if err != nil {
		return nil, errs.Mark(err, ErrStoreOperationFailed)
	}

	// Release the old slot and claim the new one. Both flips are attempted even
	// if one fails; partial drift is logged, never surfaced.
	if err := c.slots.MarkAvailable(ctx, current.TimeSlotID); err != nil {
		slog.Error("booking rescheduled but old slot could not be released",
			"booking_id", bookingID, "slot_id", current.TimeSlotID, "error", err.Error())
	}
	if err := c.slots.MarkBooked(ctx, next.ID); err != nil {
		slog.Error("booking rescheduled but new slot could not be marked booked",
			"booking_id", bookingID, "slot_id", next.ID, "error", err.Error())
	}

	return c.toView(updated), nil
}

func (c *bookingCommandsImpl) loadSlot(ctx context.Context, id string) (*SlotSnapshot, error) {
	snap, err := c.slots.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrSlotNotFound
		}
		return nil, errs.Mark(err, ErrStoreOperationFailed)
	}
	return snap, nil
}

func (c *bookingCommandsImpl) toView(snap *BookingSnapshot) *queries.BookingView {
	return &queries.BookingView{
		ID:           snap.ID,
		CustomerName: snap.CustomerName,
		PhoneNumber:  snap.PhoneNumber,
		Notes:        snap.Notes,
		CreatedByID:  snap.CreatedByID,
		TimeSlotID:   snap.TimeSlotID,
		StartTime:    snap.StartTime,
		EndTime:      snap.EndTime,
		Status:       schedule.Classify(snap.StartTime, snap.EndTime, c.clock.Now()).String(),
		CreatedAt:    snap.CreatedAt,
	}
}
