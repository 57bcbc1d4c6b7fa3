package bootstrap

import (
	"log/slog"

	"stayaccess/internal/handler/middleware"
	"stayaccess/internal/pkg/config"

	"go.uber.org/fx"
)

var LoggerModule = fx.Module("logger",
	fx.Provide(
		NewLogger,
	),
)

func NewLogger(cfg config.Config) *slog.Logger {
	logger := middleware.NewLogger(cfg.Log)
	slog.SetDefault(logger)
	return logger
}
