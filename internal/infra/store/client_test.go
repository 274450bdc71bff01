//go:build unit

package store_test

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"slotbook/internal/infra"
	"slotbook/internal/infra/store"
	"slotbook/internal/pkg/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(t *testing.T, handler http.Handler) (*store.Client, *httptest.Server) {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	client := store.NewClient(config.StoreConfig{BaseURL: server.URL, Timeout: 5 * time.Second}, logger)
	return client, server
}

type item struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

func TestClient_List(t *testing.T) {
	t.Run("success: decodes the collection", func(t *testing.T) {
		client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/things", r.URL.Path)
			_ = json.NewEncoder(w).Encode([]item{{ID: "1", Name: "a"}, {ID: "2", Name: "b"}})
		}))

		var got []item
		err := client.List(context.Background(), "things", nil, &got)

		require.NoError(t, err)
		assert.Len(t, got, 2)
	})

	t.Run("success: filters are sent as query parameters", func(t *testing.T) {
		client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "owner-1", r.URL.Query().Get("createdById"))
			_ = json.NewEncoder(w).Encode([]item{})
		}))

		filter := map[string][]string{"createdById": {"owner-1"}}
		var got []item
		err := client.List(context.Background(), "things", filter, &got)

		require.NoError(t, err)
	})

	t.Run("error: 404 maps to not-found kind", func(t *testing.T) {
		client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusNotFound)
		}))

		var got []item
		err := client.List(context.Background(), "things", nil, &got)

		require.Error(t, err)
		assert.True(t, infra.IsKind(err, infra.KindNotFound))
	})

	t.Run("error: 500 maps to store-failure kind", func(t *testing.T) {
		client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusInternalServerError)
		}))

		var got []item
		err := client.List(context.Background(), "things", nil, &got)

		require.Error(t, err)
		assert.True(t, infra.IsKind(err, infra.KindStoreFailure))
	})

	t.Run("error: malformed body maps to decode kind", func(t *testing.T) {
		client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte("not json"))
		}))

		var got []item
		err := client.List(context.Background(), "things", nil, &got)

		require.Error(t, err)
		assert.True(t, infra.IsKind(err, infra.KindDecode))
	})

	t.Run("error: unreachable server maps to transport kind", func(t *testing.T) {
		client, server := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
		server.Close()

		var got []item
		err := client.List(context.Background(), "things", nil, &got)

		require.Error(t, err)
		assert.True(t, infra.IsKind(err, infra.KindTransport))
	})
}

func TestClient_Create(t *testing.T) {
	t.Run("success: posts JSON and decodes the echoed resource", func(t *testing.T) {
		client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, http.MethodPost, r.Method)
			assert.Equal(t, "application/json", r.Header.Get("Content-Type"))

			var in item
			require.NoError(t, json.NewDecoder(r.Body).Decode(&in))
			in.ID = "assigned-1"
			w.WriteHeader(http.StatusCreated)
			_ = json.NewEncoder(w).Encode(in)
		}))

		var created item
		err := client.Create(context.Background(), "things", item{Name: "new"}, &created)

		require.NoError(t, err)
		assert.Equal(t, "assigned-1", created.ID)
		assert.Equal(t, "new", created.Name)
	})
}

func TestClient_Update(t *testing.T) {
	t.Run("success: sends only the partial body", func(t *testing.T) {
		client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, http.MethodPut, r.Method)
			assert.Equal(t, "/things/42", r.URL.Path)

			body, _ := io.ReadAll(r.Body)
			assert.JSONEq(t, `{"isBooked":true}`, string(body))
			_, _ = w.Write([]byte("{}"))
		}))

		err := client.Update(context.Background(), "things", "42", map[string]bool{"isBooked": true}, nil)

		require.NoError(t, err)
	})
}

func TestClient_Delete(t *testing.T) {
	t.Run("error: deleting a missing resource is not found", func(t *testing.T) {
		client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusNotFound)
		}))

		err := client.Delete(context.Background(), "things", "42")

		require.Error(t, err)
		assert.True(t, infra.IsKind(err, infra.KindNotFound))
	})
}
