package components

import (
	"glass-dispatch/internal/pkg/clock"
	"glass-dispatch/internal/usecase"
	"glass-dispatch/internal/usecase/commands"
	"glass-dispatch/internal/usecase/queries"

	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	usecaseBaseOption,
	usecaseQueriesModule,
	usecaseValidatorsModule,
	usecaseCommandsModule,
)

var usecaseBaseOption = fx.Provide(
	clock.NewRealClock,
	commands.NewNotifier,
)

var usecaseCommandsModule = fx.Module("usecase/commands",
	fx.Provide(
		commands.NewAuthCommands,
		commands.NewJobCommands,
		commands.NewShopJobCommands,
		commands.NewUserCommands,
		commands.NewNotificationCommands,
		commands.NewCustomerCommands,
		commands.NewDistributorCommands,
		commands.NewServiceAdvisorCommands,
	),
)

var usecaseQueriesModule = fx.Module("usecase/queries",
	fx.Provide(
		queries.NewUserQueries,
		queries.NewJobQueries,
		queries.NewPartsQueries,
		queries.NewShopJobQueries,
		queries.NewNotificationQueries,
		queries.NewCustomerQueries,
		queries.NewDistributorQueries,
		queries.NewServiceAdvisorQueries,
	),
)

var usecaseValidatorsModule = fx.Module("usecase/validators",
	fx.Provide(
		usecase.NewSessionValidator,
	),
)
