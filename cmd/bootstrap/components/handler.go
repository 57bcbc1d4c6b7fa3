package components

import (
	"stayaccess/internal/handler"
	"stayaccess/internal/handler/api"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewGuestAccessHandler,
	),
	fx.Invoke(handler.NewRouter),
)
