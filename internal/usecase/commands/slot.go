package commands

import (
	"context"
	"errors"
	"time"

	"slotbook/internal/domain/schedule"
	"slotbook/internal/domain/slot"
	"slotbook/internal/infra"
	"slotbook/internal/pkg/clock"
	"slotbook/internal/pkg/errs"
	"slotbook/internal/usecase/queries"
)

var (
	ErrInvalidTimeSlot = errs.New("invalid time slot")
	ErrSlotBooked      = errs.New("time slot has an active booking")
)

type SlotCommands interface {
	Create(ctx context.Context, start, end time.Time) (*queries.SlotView, error)
	// Delete refuses to remove a slot while a booking still references it;
	// cancel the booking first.
	Delete(ctx context.Context, id string) error
}

type slotCommandsImpl struct {
	slots SlotRepository
	clock clock.Clock
}

func NewSlotCommands(slots SlotRepository, clock clock.Clock) SlotCommands {
	return &slotCommandsImpl{
		slots: slots,
		clock: clock,
	}
}

func (c *slotCommandsImpl) Create(ctx context.Context, start, end time.Time) (*queries.SlotView, error) {
	snap, err := c.slots.Create(ctx, start, end)
	if err != nil {
		if errors.Is(err, slot.ErrInvalidWindow) || errors.Is(err, slot.ErrStartInPast) {
			return nil, errs.Mark(err, ErrInvalidTimeSlot)
		}
		return nil, errs.Mark(err, ErrStoreOperationFailed)
	}

	return &queries.SlotView{
		ID:        snap.ID,
		StartTime: snap.StartTime,
		EndTime:   snap.EndTime,
		IsBooked:  snap.IsBooked,
		IsPast:    schedule.IsPast(snap.EndTime, c.clock.Now()),
		CreatedAt: snap.CreatedAt,
	}, nil
}

func (c *slotCommandsImpl) Delete(ctx context.Context, id string) error {
	snap, err := c.slots.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return ErrSlotNotFound
		}
		return errs.Mark(err, ErrStoreOperationFailed)
	}

	if snap.IsBooked {
		return ErrSlotBooked
	}

	if err := c.slots.Delete(ctx, id); err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return ErrSlotNotFound
		}
		return errs.Mark(err, ErrStoreOperationFailed)
	}
	return nil
}
