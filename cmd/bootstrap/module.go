package bootstrap

import (
	"glass-dispatch/cmd/bootstrap/components"

	"go.uber.org/fx"
)

var Module = fx.Options(
	ConfigModule,
	DBModule,
	IdentityModule,
	PushModule,
	components.RepositoryModule,
	components.UseCaseModule,
	components.HandlerModule,
)
