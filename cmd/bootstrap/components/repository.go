package components

import (
	"stayaccess/internal/infra/readstore"
	"stayaccess/internal/infra/repository"
	"stayaccess/internal/infra/tx"
	"stayaccess/internal/pkg/config"
	"stayaccess/internal/usecase/commands"
	"stayaccess/internal/usecase/queries"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/fx"
)

var RepositoryModule = fx.Module("repository",
	fx.Provide(
		NewCoordinator,
		fx.Annotate(
			repository.NewCredentialRepository,
			fx.As(new(commands.CredentialWriter)),
			fx.As(new(commands.CredentialSweeper)),
		),
		fx.Annotate(
			readstore.NewCredentialReadStore,
			fx.As(new(commands.CredentialReads)),
			fx.As(new(queries.CredentialReadStore)),
		),
		fx.Annotate(
			readstore.NewBookingReadStore,
			fx.As(new(commands.BookingReads)),
			fx.As(new(queries.BookingReadStore)),
		),
	),
)

func NewCoordinator(pool *pgxpool.Pool, cfg config.Config) *tx.Coordinator {
	return tx.NewCoordinator(pool, cfg.GuestAccess.MaxRetries)
}
