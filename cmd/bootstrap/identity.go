package bootstrap

import (
	"glass-dispatch/internal/infra/identity"
	"glass-dispatch/internal/usecase/commands"

	"go.uber.org/fx"
)

var IdentityModule = fx.Module("identity",
	fx.Provide(
		fx.Annotate(
			identity.NewClient,
			fx.As(new(commands.IdentityGateway)),
		),
	),
)
