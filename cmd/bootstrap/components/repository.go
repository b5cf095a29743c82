package components

import (
	"glass-dispatch/internal/infra/readstore"
	"glass-dispatch/internal/infra/repository"
	"glass-dispatch/internal/usecase/commands"
	"glass-dispatch/internal/usecase/queries"

	"go.uber.org/fx"
)

var RepositoryModule = fx.Module("repository",
	writeSideModule,
	readSideModule,
)

var writeSideModule = fx.Module("repository/write",
	fx.Provide(
		fx.Annotate(
			repository.NewUserRepository,
			fx.As(new(commands.UserRepository)),
		),
		fx.Annotate(
			repository.NewSessionRepository,
			fx.As(new(commands.SessionRepository)),
		),
		fx.Annotate(
			repository.NewJobRepository,
			fx.As(new(commands.JobRepository)),
		),
		fx.Annotate(
			repository.NewCommentRepository,
			fx.As(new(commands.CommentRepository)),
		),
		fx.Annotate(
			repository.NewNotificationRepository,
			fx.As(new(commands.NotificationRepository)),
		),
		fx.Annotate(
			repository.NewCustomerRepository,
			fx.As(new(commands.CustomerRepository)),
		),
		fx.Annotate(
			repository.NewDistributorRepository,
			fx.As(new(commands.DistributorRepository)),
		),
		fx.Annotate(
			repository.NewServiceAdvisorRepository,
			fx.As(new(commands.ServiceAdvisorRepository)),
		),
		fx.Annotate(
			repository.NewShopJobRepository,
			fx.As(new(commands.ShopJobRepository)),
		),
	),
)

var readSideModule = fx.Module("repository/read",
	fx.Provide(
		fx.Annotate(
			readstore.NewUserReadStore,
			fx.As(new(queries.UserViewRepo)),
		),
		fx.Annotate(
			readstore.NewSessionReadStore,
			fx.As(new(queries.SessionViewRepo)),
		),
		fx.Annotate(
			readstore.NewJobReadStore,
			fx.As(new(queries.JobViewRepo)),
		),
		fx.Annotate(
			readstore.NewCommentReadStore,
			fx.As(new(queries.CommentViewRepo)),
		),
		fx.Annotate(
			readstore.NewNotificationReadStore,
			fx.As(new(queries.NotificationViewRepo)),
		),
		fx.Annotate(
			readstore.NewCustomerReadStore,
			fx.As(new(queries.CustomerViewRepo)),
		),
		fx.Annotate(
			readstore.NewDistributorReadStore,
			fx.As(new(queries.DistributorViewRepo)),
		),
		fx.Annotate(
			readstore.NewServiceAdvisorReadStore,
			fx.As(new(queries.ServiceAdvisorViewRepo)),
		),
		fx.Annotate(
			readstore.NewShopJobReadStore,
			fx.As(new(queries.ShopJobViewRepo)),
		),
		fx.Annotate(
			readstore.NewPartsReadStore,
			fx.As(new(queries.PartsViewRepo)),
		),
	),
)
