package components

import (
	"glass-dispatch/internal/handler"
	"glass-dispatch/internal/handler/api"
	"glass-dispatch/internal/handler/middleware"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewAuthHandler,
		api.NewJobHandler,
		api.NewReportHandler,
		api.NewKatyshopHandler,
		api.NewUserHandler,
		api.NewNotificationHandler,
		api.NewCustomerHandler,
		api.NewDistributorHandler,
		api.NewServiceAdvisorHandler,
		middleware.NewAuthMiddleware,
		NewHandlers,
	),
	fx.Invoke(handler.NewRouter),
)

func NewHandlers(
	auth *api.AuthHandler,
	job *api.JobHandler,
	report *api.ReportHandler,
	katyshop *api.KatyshopHandler,
	user *api.UserHandler,
	notification *api.NotificationHandler,
	customer *api.CustomerHandler,
	distributor *api.DistributorHandler,
	advisor *api.ServiceAdvisorHandler,
) handler.Handlers {
	return handler.Handlers{
		Auth:         auth,
		Job:          job,
		Report:       report,
		Katyshop:     katyshop,
		User:         user,
		Notification: notification,
		Customer:     customer,
		Distributor:  distributor,
		Advisor:      advisor,
	}
}
