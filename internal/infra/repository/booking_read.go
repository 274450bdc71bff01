package repository

import (
	"context"
	"log/slog"
	"net/url"

	"slotbook/internal/infra"
	"slotbook/internal/infra/store"
	"slotbook/internal/usecase/queries"

	"github.com/google/uuid"
)

// BookingReadStore is the query side of the bookings collection. Status
// enrichment and sorting live in the query layer, which owns "now".
type BookingReadStore struct {
	store  *store.Client
	logger *slog.Logger
}

func NewBookingReadStore(store *store.Client, logger *slog.Logger) *BookingReadStore {
	return &BookingReadStore{
		store:  store,
		logger: logger,
	}
}

func (r *BookingReadStore) ListAll(ctx context.Context) ([]*queries.BookingView, error) {
	return r.list(ctx, nil)
}

// ListByOwner uses the store's field-equality filter. A "not found" response
// for the filter means the owner has no bookings, which is a normal state that
// must never surface as an error.
func (r *BookingReadStore) ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]*queries.BookingView, error) {
	filter := url.Values{}
	filter.Set("createdById", ownerID.String())
	return r.list(ctx, filter)
}

func (r *BookingReadStore) FindByID(ctx context.Context, id string) (*queries.BookingView, error) {
	var rec bookingRecord
	if err := r.store.Get(ctx, bookingsCollection, id, &rec); err != nil {
		return nil, err
	}
	return bookingViewFromRecord(rec), nil
}

func (r *BookingReadStore) list(ctx context.Context, filter url.Values) ([]*queries.BookingView, error) {
	var records []bookingRecord
	if err := r.store.List(ctx, bookingsCollection, filter, &records); err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return []*queries.BookingView{}, nil
		}
		return nil, err
	}

	views := make([]*queries.BookingView, len(records))
	for i, rec := range records {
		views[i] = bookingViewFromRecord(rec)
	}
	return views, nil
}

func bookingViewFromRecord(rec bookingRecord) *queries.BookingView {
	return &queries.BookingView{
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
