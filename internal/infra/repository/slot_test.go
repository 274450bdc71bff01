//go:build unit

package repository_test

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"slotbook/internal/domain/slot"
	"slotbook/internal/infra/repository"
	"slotbook/internal/infra/store"
	"slotbook/internal/pkg/clock"
	"slotbook/internal/pkg/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testNow = time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)

func newStoreClient(t *testing.T, handler http.Handler) *store.Client {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	return store.NewClient(config.StoreConfig{BaseURL: server.URL, Timeout: 5 * time.Second}, logger)
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestSlotRepository_Create(t *testing.T) {
	t.Run("success: persists an unbooked slot with a creation timestamp", func(t *testing.T) {
		var received map[string]any
		client := newStoreClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			require.Equal(t, http.MethodPost, r.Method)
			require.Equal(t, "/slots", r.URL.Path)
			require.NoError(t, json.NewDecoder(r.Body).Decode(&received))

			received["id"] = "slot-1"
			w.WriteHeader(http.StatusCreated)
			_ = json.NewEncoder(w).Encode(received)
		}))
		repo := repository.NewSlotRepository(client, clock.NewMockClock(testNow), discardLogger())

		start := testNow.Add(24 * time.Hour)
		snap, err := repo.Create(context.Background(), start, start.Add(time.Hour))

		require.NoError(t, err)
		assert.Equal(t, "slot-1", snap.ID)
		assert.False(t, snap.IsBooked)
		assert.Equal(t, false, received["isBooked"])
		assert.Equal(t, testNow.Format(time.RFC3339), received["createdAt"])
	})

	t.Run("error: a past start never reaches the store", func(t *testing.T) {
		var calls int32
		client := newStoreClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			atomic.AddInt32(&calls, 1)
		}))
		repo := repository.NewSlotRepository(client, clock.NewMockClock(testNow), discardLogger())

		start := testNow.Add(-time.Hour)
		snap, err := repo.Create(context.Background(), start, start.Add(2*time.Hour))

		require.Error(t, err)
		assert.ErrorIs(t, err, slot.ErrStartInPast)
		assert.Nil(t, snap)
		assert.Zero(t, atomic.LoadInt32(&calls), "no store request may be issued for an invalid window")
	})

	t.Run("error: a reversed window never reaches the store", func(t *testing.T) {
		var calls int32
		client := newStoreClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			atomic.AddInt32(&calls, 1)
		}))
		repo := repository.NewSlotRepository(client, clock.NewMockClock(testNow), discardLogger())

		start := testNow.Add(24 * time.Hour)
		_, err := repo.Create(context.Background(), start, start.Add(-time.Hour))

		require.ErrorIs(t, err, slot.ErrInvalidWindow)
		assert.Zero(t, atomic.LoadInt32(&calls))
	})
}

func TestSlotRepository_MarkBooked(t *testing.T) {
	t.Run("success: sends a partial update touching only the flag", func(t *testing.T) {
		client := newStoreClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, http.MethodPut, r.Method)
			assert.Equal(t, "/slots/slot-1", r.URL.Path)

			body, _ := io.ReadAll(r.Body)
			assert.JSONEq(t, `{"isBooked":true}`, string(body))
			_, _ = w.Write([]byte("{}"))
		}))
		repo := repository.NewSlotRepository(client, clock.NewMockClock(testNow), discardLogger())

		require.NoError(t, repo.MarkBooked(context.Background(), "slot-1"))
	})

	t.Run("success: MarkAvailable flips the flag off", func(t *testing.T) {
		client := newStoreClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			body, _ := io.ReadAll(r.Body)
			assert.JSONEq(t, `{"isBooked":false}`, string(body))
			_, _ = w.Write([]byte("{}"))
		}))
		repo := repository.NewSlotRepository(client, clock.NewMockClock(testNow), discardLogger())

		require.NoError(t, repo.MarkAvailable(context.Background(), "slot-1"))
	})
}
