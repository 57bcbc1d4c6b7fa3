package bootstrap

import (
	"log/slog"

	"stayaccess/internal/infra/mailer"
	"stayaccess/internal/pkg/config"
	"stayaccess/internal/usecase/commands"

	"go.uber.org/fx"
)

var MailerModule = fx.Module("mailer",
	fx.Provide(
		NewNotifier,
	),
)

func NewNotifier(cfg config.Config) commands.Notifier {
	if cfg.Mailer.APIKey == "" || cfg.Mailer.FromEmail == "" {
		slog.Warn("mailer not configured, access links will be logged instead of sent")
		return mailer.NewDevNotifier(cfg.GuestAccess.LinkBase)
	}
	return mailer.NewMailerSendNotifier(cfg.Mailer, cfg.GuestAccess.LinkBase)
}
