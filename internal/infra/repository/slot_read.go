package repository

import (
	"context"
	"log/slog"
	"sort"
	"time"

	"slotbook/internal/domain/schedule"
	"slotbook/internal/infra"
	"slotbook/internal/infra/store"
	"slotbook/internal/pkg/clock"
	"slotbook/internal/usecase/queries"
)

// SlotReadStore is the query side of the slots collection. Every read path
// recomputes IsPast against the injected clock so the flag can never go stale.
type SlotReadStore struct {
	store  *store.Client
	clock  clock.Clock
	logger *slog.Logger
}

func NewSlotReadStore(store *store.Client, clock clock.Clock, logger *slog.Logger) *SlotReadStore {
	return &SlotReadStore{
		store:  store,
		clock:  clock,
		logger: logger,
	}
}

func (r *SlotReadStore) ListAll(ctx context.Context) ([]*queries.SlotView, error) {
	records, err := r.list(ctx)
	if err != nil {
		return nil, err
	}
	return r.annotate(records), nil
}

// ListByRange returns slots whose start falls within the bounds (inclusive),
// annotated and sorted by ascending start. The store has no range filter
// endpoint, so the narrowing happens client-side.
func (r *SlotReadStore) ListByRange(ctx context.Context, from, to time.Time) ([]*queries.SlotView, error) {
	records, err := r.list(ctx)
	if err != nil {
		return nil, err
	}

	inRange := make([]slotRecord, 0, len(records))
	for _, rec := range records {
		if !rec.StartTime.Before(from) && !rec.StartTime.After(to) {
			inRange = append(inRange, rec)
		}
	}
	return r.annotate(inRange), nil
}

func (r *SlotReadStore) list(ctx context.Context) ([]slotRecord, error) {
	var records []slotRecord
	if err := r.store.List(ctx, slotsCollection, nil, &records); err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			// An empty collection is a normal outcome for a list, not a fault.
			return nil, nil
		}
		return nil, err
	}
	return records, nil
}

func (r *SlotReadStore) annotate(records []slotRecord) []*queries.SlotView {
	now := r.clock.Now()
	views := make([]*queries.SlotView, len(records))
	for i, rec := range records {
		views[i] = &queries.SlotView{
			ID:        rec.ID,
			StartTime: rec.StartTime,
			EndTime:   rec.EndTime,
			IsBooked:  rec.IsBooked,
			IsPast:    schedule.IsPast(rec.EndTime, now),
			CreatedAt: rec.CreatedAt,
		}
	}
	sort.Slice(views, func(i, j int) bool {
		return views[i].StartTime.Before(views[j].StartTime)
	})
	return views
}
