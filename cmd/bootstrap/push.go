package bootstrap

import (
	"context"

	"glass-dispatch/internal/pkg/config"
	"glass-dispatch/internal/push"
	"glass-dispatch/internal/usecase/commands"

	"go.uber.org/fx"
)

var PushModule = fx.Module("push",
	fx.Provide(
		fx.Annotate(
			push.NewHTTPGateway,
			fx.As(new(push.Gateway)),
		),
		fx.Annotate(
			NewPushDispatcher,
			fx.As(new(commands.PushEnqueuer)),
		),
	),
)

func NewPushDispatcher(lc fx.Lifecycle, cfg config.Config, gateway push.Gateway) *push.Dispatcher {
	dispatcher := push.NewDispatcher(cfg, gateway)

	lc.Append(fx.Hook{
		OnStart: func(_ context.Context) error {
			dispatcher.Start()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			return dispatcher.Stop(ctx)
		},
	})

	return dispatcher
}
