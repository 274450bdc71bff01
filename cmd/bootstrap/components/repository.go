package components

import (
	repo_impl "slotbook/internal/infra/repository"
	"slotbook/internal/infra/userdir"
	"slotbook/internal/usecase/commands"
	"slotbook/internal/usecase/queries"

	"go.uber.org/fx"
)

var RepositoryModule = fx.Module("repository",
	fx.Provide(
		// Command-side adapters over the resource store
		fx.Annotate(
			repo_impl.NewSlotRepository,
			fx.As(new(commands.SlotRepository)),
		),
		fx.Annotate(
			repo_impl.NewBookingRepository,
			fx.As(new(commands.BookingRepository)),
		),
		// Read-side stores for queries
		fx.Annotate(
			repo_impl.NewSlotReadStore,
			fx.As(new(queries.SlotReadStore)),
		),
		fx.Annotate(
			repo_impl.NewBookingReadStore,
			fx.As(new(queries.BookingReadStore)),
		),
		// Static credential directory
		fx.Annotate(
			userdir.NewDirectory,
			fx.As(new(queries.UserReadStore)),
		),
	),
)
