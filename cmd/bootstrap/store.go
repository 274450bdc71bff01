package bootstrap

import (
	"log/slog"

	"slotbook/internal/infra/store"
	"slotbook/internal/pkg/config"

	"go.uber.org/fx"
)

var StoreModule = fx.Module("store",
	fx.Provide(
		NewStoreClient,
	),
)

func NewStoreClient(cfg config.Config, logger *slog.Logger) *store.Client {
	return store.NewClient(cfg.Store, logger)
}
