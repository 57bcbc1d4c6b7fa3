package bootstrap

import (
	"stayaccess/internal/pkg/config"
	"stayaccess/internal/pkg/token"

	"go.uber.org/fx"
)

var TokenModule = fx.Module("token",
	fx.Provide(
		NewTokenSigner,
	),
)

func NewTokenSigner(cfg config.Config) *token.Signer {
	return token.NewSigner(cfg.GuestAccess.Secret, cfg.GuestAccess.TokenTTL)
}
