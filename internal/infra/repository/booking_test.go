//go:build unit

package repository_test

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"
	"time"

	"slotbook/internal/infra/repository"
	"slotbook/internal/pkg/clock"
	"slotbook/internal/usecase/commands"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBookingRepository_Create(t *testing.T) {
	t.Run("success: stamps createdAt from the injected clock", func(t *testing.T) {
		owner := uuid.New()
		var received map[string]any
		client := newStoreClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			require.Equal(t, "/bookings", r.URL.Path)
			require.NoError(t, json.NewDecoder(r.Body).Decode(&received))

			received["id"] = "booking-1"
			w.WriteHeader(http.StatusCreated)
			_ = json.NewEncoder(w).Encode(received)
		}))
		repo := repository.NewBookingRepository(client, clock.NewMockClock(testNow), discardLogger())

		start := testNow.Add(24 * time.Hour)
		snap, err := repo.Create(context.Background(), commands.NewBooking{
			CustomerName: "Alex Example",
			PhoneNumber:  "+1 555 0100",
			CreatedByID:  owner,
			TimeSlotID:   "slot-1",
			StartTime:    start,
			EndTime:      start.Add(time.Hour),
		})

		require.NoError(t, err)
		assert.Equal(t, "booking-1", snap.ID)
		assert.Equal(t, testNow, snap.CreatedAt)
		assert.Equal(t, testNow.Format(time.RFC3339), received["createdAt"])
		assert.Equal(t, owner.String(), received["createdById"])
	})
}

func TestBookingRepository_ApplySlotChange(t *testing.T) {
	t.Run("success: sends only the slot reference and window", func(t *testing.T) {
		var received map[string]any
		client := newStoreClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			require.Equal(t, http.MethodPut, r.Method)
			require.Equal(t, "/bookings/booking-1", r.URL.Path)
			require.NoError(t, json.NewDecoder(r.Body).Decode(&received))

			_ = json.NewEncoder(w).Encode(map[string]any{
				"id":         "booking-1",
				"timeSlotId": received["timeSlotId"],
				"startTime":  received["startTime"],
				"endTime":    received["endTime"],
			})
		}))
		repo := repository.NewBookingRepository(client, clock.NewMockClock(testNow), discardLogger())

		start := testNow.Add(48 * time.Hour)
		snap, err := repo.ApplySlotChange(context.Background(), "booking-1", commands.SlotChange{
			TimeSlotID: "slot-2",
			StartTime:  start,
			EndTime:    start.Add(time.Hour),
		})

		require.NoError(t, err)
		assert.Equal(t, "slot-2", snap.TimeSlotID)
		assert.Len(t, received, 3, "partial update must not carry other booking fields")
	})
}

func TestBookingReadStore_ListByOwner(t *testing.T) {
	t.Run("success: filters by createdById", func(t *testing.T) {
		owner := uuid.New()
		client := newStoreClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, owner.String(), r.URL.Query().Get("createdById"))
			_ = json.NewEncoder(w).Encode([]map[string]any{{"id": "booking-1", "createdById": owner.String()}})
		}))
		readStore := repository.NewBookingReadStore(client, discardLogger())

		views, err := readStore.ListByOwner(context.Background(), owner)

		require.NoError(t, err)
		require.Len(t, views, 1)
		assert.Equal(t, "booking-1", views[0].ID)
	})

	t.Run("success: a 404 for an owner with no bookings is an empty list", func(t *testing.T) {
		client := newStoreClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusNotFound)
		}))
		readStore := repository.NewBookingReadStore(client, discardLogger())

		views, err := readStore.ListByOwner(context.Background(), uuid.New())

		require.NoError(t, err)
		assert.NotNil(t, views)
		assert.Empty(t, views)
	})
}
