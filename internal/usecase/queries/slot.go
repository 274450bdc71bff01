package queries

import (
	"context"
	"time"
)

type SlotQueries interface {
	ListAll(ctx context.Context) ([]*SlotView, error)
	ListByRange(ctx context.Context, from, to time.Time) ([]*SlotView, error)
	// ListByDay is the calendar view: all slots starting on the given day.
	ListByDay(ctx context.Context, day time.Time) ([]*SlotView, error)
}

// SlotReadStore returns slots already annotated with IsPast and sorted by
// ascending start; a store-side "not found" for a filter is an empty list.
type SlotReadStore interface {
	ListAll(ctx context.Context) ([]*SlotView, error)
	ListByRange(ctx context.Context, from, to time.Time) ([]*SlotView, error)
}

type slotQueriesImpl struct {
	readStore SlotReadStore
}

func NewSlotQueries(readStore SlotReadStore) SlotQueries {
	return &slotQueriesImpl{
		readStore: readStore,
	}
}

func (q *slotQueriesImpl) ListAll(ctx context.Context) ([]*SlotView, error) {
	return q.readStore.ListAll(ctx)
}

func (q *slotQueriesImpl) ListByRange(ctx context.Context, from, to time.Time) ([]*SlotView, error) {
	return q.readStore.ListByRange(ctx, from, to)
}

func (q *slotQueriesImpl) ListByDay(ctx context.Context, day time.Time) ([]*SlotView, error) {
	dayStart := time.Date(day.Year(), day.Month(), day.Day(), 0, 0, 0, 0, day.Location())
	return q.readStore.ListByRange(ctx, dayStart, dayStart.AddDate(0, 0, 1).Add(-time.Nanosecond))
}
