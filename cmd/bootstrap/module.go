package bootstrap

import (
	"stayaccess/cmd/bootstrap/components"

	"go.uber.org/fx"
)

var Module = fx.Options(
	ConfigModule,
	LoggerModule,
	DBModule,
	TokenModule,
	MailerModule,
	components.RepositoryModule,
	components.UseCaseModule,
	components.HandlerModule,
	SweeperModule,
)
