package queries

import (
	"context"
	"sort"
	"time"

	"slotbook/internal/domain/schedule"
	"slotbook/internal/domain/user"
	"slotbook/internal/infra"
	"slotbook/internal/pkg/clock"
	"slotbook/internal/pkg/errs"

	"github.com/google/uuid"
)

var ErrBookingNotFound = errs.New("booking not found")

type BookingQueries interface {
	// ListForUser returns all bookings for providers and only the caller's own
	// for clients, status-enriched and sorted today < upcoming < past.
	ListForUser(ctx context.Context, userID uuid.UUID, role user.Role) ([]*BookingView, error)
	ListByDateRange(ctx context.Context, from, to time.Time) ([]*BookingView, error)
	GetByID(ctx context.Context, id string) (*BookingView, error)
}

type BookingReadStore interface {
	ListAll(ctx context.Context) ([]*BookingView, error)
	ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]*BookingView, error)
	FindByID(ctx context.Context, id string) (*BookingView, error)
}

type bookingQueriesImpl struct {
	readStore BookingReadStore
	clock     clock.Clock
}

func NewBookingQueries(readStore BookingReadStore, clock clock.Clock) BookingQueries {
	return &bookingQueriesImpl{
		readStore: readStore,
		clock:     clock,
	}
}

func (q *bookingQueriesImpl) ListForUser(ctx context.Context, userID uuid.UUID, role user.Role) ([]*BookingView, error) {
	var (
		views []*BookingView
		err   error
	)
	if role == user.RoleProvider {
		views, err = q.readStore.ListAll(ctx)
	} else {
		views, err = q.readStore.ListByOwner(ctx, userID)
	}
	if err != nil {
		return nil, err
	}

	return q.enrichAndSort(views), nil
}

// ListByDateRange filters client-side over the full list; the store has no
// range filter endpoint for bookings.
func (q *bookingQueriesImpl) ListByDateRange(ctx context.Context, from, to time.Time) ([]*BookingView, error) {
	views, err := q.readStore.ListAll(ctx)
	if err != nil {
		return nil, err
	}

	filtered := make([]*BookingView, 0, len(views))
	for _, v := range views {
		if !v.StartTime.Before(from) && !v.EndTime.After(to) {
			filtered = append(filtered, v)
		}
	}

	return q.enrichAndSort(filtered), nil
}

func (q *bookingQueriesImpl) GetByID(ctx context.Context, id string) (*BookingView, error) {
	view, err := q.readStore.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrBookingNotFound
		}
		return nil, err
	}

	view.Status = schedule.Classify(view.StartTime, view.EndTime, q.clock.Now()).String()
	return view, nil
}

// enrichAndSort recomputes every status against a single "now" and orders the
// list for display: today first, then upcoming, then past, earliest start
// first within each group.
func (q *bookingQueriesImpl) enrichAndSort(views []*BookingView) []*BookingView {
	now := q.clock.Now()
	for _, v := range views {
		v.Status = schedule.Classify(v.StartTime, v.EndTime, now).String()
	}

	sort.SliceStable(views, func(i, j int) bool {
		ri, rj := schedule.Rank(schedule.Status(views[i].Status)), schedule.Rank(schedule.Status(views[j].Status))
		if ri != rj {
			return ri < rj
		}
		return views[i].StartTime.Before(views[j].StartTime)
	})

	return views
}
