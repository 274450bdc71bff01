//go:build unit

package userdir_test

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"slotbook/internal/infra"
	"slotbook/internal/infra/userdir"
	"slotbook/internal/pkg/config"
	"slotbook/internal/pkg/password"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newDirectory(t *testing.T) *userdir.Directory {
	t.Helper()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	d, err := userdir.NewDirectory(config.NewTestConfig(), logger)
	require.NoError(t, err)
	return d
}

func TestDirectory_FindByUsername(t *testing.T) {
	cfg := config.NewTestConfig()
	d := newDirectory(t)

	t.Run("success: returns the view and a verifiable hash", func(t *testing.T) {
		view, hash, err := d.FindByUsername(context.Background(), cfg.Seed.ProviderUsername)

		require.NoError(t, err)
		assert.Equal(t, "provider", view.Role)
		assert.NoError(t, password.ComparePassword(hash, cfg.Seed.ProviderPassword))
	})

	t.Run("success: lookup is case-insensitive and trimmed", func(t *testing.T) {
		view, _, err := d.FindByUsername(context.Background(), "  "+cfg.Seed.ClientUsername+"  ")

		require.NoError(t, err)
		assert.Equal(t, "client", view.Role)
	})

	t.Run("error: unknown username is not found", func(t *testing.T) {
		_, _, err := d.FindByUsername(context.Background(), "nobody")

		require.Error(t, err)
		assert.True(t, infra.IsKind(err, infra.KindNotFound))
	})
}

func TestDirectory_FindByID(t *testing.T) {
	cfg := config.NewTestConfig()
	d := newDirectory(t)

	t.Run("success: ids are stable across lookups", func(t *testing.T) {
		view, _, err := d.FindByUsername(context.Background(), cfg.Seed.ProviderUsername)
		require.NoError(t, err)

		byID, err := d.FindByID(context.Background(), view.ID)

		require.NoError(t, err)
		assert.Equal(t, view.Username, byID.Username)
	})

	t.Run("error: unknown id is not found", func(t *testing.T) {
		_, err := d.FindByID(context.Background(), uuid.New())

		require.Error(t, err)
		assert.True(t, infra.IsKind(err, infra.KindNotFound))
	})
}
