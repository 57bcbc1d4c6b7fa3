package bootstrap

import (
	"context"
	"log/slog"
	"time"

	"stayaccess/internal/pkg/config"
	"stayaccess/internal/usecase/commands"

	"go.uber.org/fx"
)

var SweeperModule = fx.Module("sweeper",
	fx.Invoke(
		StartSweeper,
	),
)

// StartSweeper runs the credential cleanup on a fixed interval for the
// process lifetime. Sweep failures are logged and swallowed here so one
// failed run never cancels the schedule.
func StartSweeper(lc fx.Lifecycle, cfg config.Config, cleanup commands.CleanupCommands, logger *slog.Logger) {
	done := make(chan struct{})
	stopped := make(chan struct{})

	lc.Append(fx.Hook{
		OnStart: func(_ context.Context) error {
			go func() {
				defer close(stopped)

				ticker := time.NewTicker(cfg.Sweep.Interval)
				defer ticker.Stop()

				for {
					select {
					case <-done:
						return
					case <-ticker.C:
						sweepOnce(cleanup, logger)
					}
				}
			}()
			logger.Info("credential sweeper started", "interval", cfg.Sweep.Interval.String())
			return nil
		},
		OnStop: func(ctx context.Context) error {
			close(done)
			select {
			case <-stopped:
			case <-ctx.Done():
			}
			return nil
		},
	})
}

func sweepOnce(cleanup commands.CleanupCommands, logger *slog.Logger) {
	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()

	if _, err := cleanup.Sweep(ctx); err != nil {
		logger.Error("credential sweep failed", "error", err.Error())
	}
}
