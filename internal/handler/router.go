package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"glass-dispatch/internal/handler/api"
	"glass-dispatch/internal/handler/middleware"
	"glass-dispatch/internal/pkg/config"
)

type route struct {
	Method  string
	Path    string
	Handler gin.HandlerFunc
	Mw      []gin.HandlerFunc
}

type Handlers struct {
	Auth         *api.AuthHandler
	Job          *api.JobHandler
	Report       *api.ReportHandler
	Katyshop     *api.KatyshopHandler
	User         *api.UserHandler
	Notification *api.NotificationHandler
	Customer     *api.CustomerHandler
	Distributor  *api.DistributorHandler
	Advisor      *api.ServiceAdvisorHandler
}

func NewRouter(engine *gin.Engine, cfg config.Config, h Handlers, authMiddleware *middleware.AuthMiddleware) {
	setupMiddleware(engine, cfg)
	setupRoutes(engine, h, authMiddleware)
}

func setupMiddleware(engine *gin.Engine, cfg config.Config) {
	// Recovery must be first (outermost) to catch panics from all other middleware
	engine.Use(middleware.CustomRecovery())
	engine.Use(middleware.NewCORSMiddleware(cfg.CORS))
	engine.Use(middleware.LoggingMiddleware(nil, cfg.Log))
	engine.Use(middleware.ErrorHandler())
}

func setupRoutes(engine *gin.Engine, h Handlers, authMiddleware *middleware.AuthMiddleware) {
	engine.GET("/health", healthCheck)

	if gin.Mode() == gin.DebugMode {
		engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	admin := authMiddleware.RequireAdmin()

	apiGroup := engine.Group("/api")
	{
		auth := apiGroup.Group("/auth")
		{
			addRoutes(auth, []route{
				{Method: http.MethodPost, Path: "/session", Handler: h.Auth.ExchangeSession},
			})

			authRequired := auth.Group("")
			authRequired.Use(authMiddleware.RequireAuth())
			addRoutes(authRequired, []route{
				{Method: http.MethodGet, Path: "/me", Handler: h.Auth.Me},
				{Method: http.MethodPost, Path: "/logout", Handler: h.Auth.Logout},
			})
		}

		users := apiGroup.Group("/users")
		users.Use(authMiddleware.RequireAuth())
		{
			addRoutes(users, []route{
				{Method: http.MethodGet, Path: "", Handler: h.User.List},
				{Method: http.MethodPost, Path: "/technicians", Handler: h.User.CreateTechnician, Mw: []gin.HandlerFunc{admin}},
				{Method: http.MethodPatch, Path: "/:id/role", Handler: h.User.UpdateRole, Mw: []gin.HandlerFunc{admin}},
			})
		}

		devices := apiGroup.Group("/devices")
		devices.Use(authMiddleware.RequireAuth())
		{
			addRoutes(devices, []route{
				{Method: http.MethodPut, Path: "/push-token", Handler: h.User.RegisterPushToken},
			})
		}

		jobs := apiGroup.Group("/jobs")
		jobs.Use(authMiddleware.RequireAuth())
		{
			addRoutes(jobs, []route{
				{Method: http.MethodPost, Path: "", Handler: h.Job.Create},
				{Method: http.MethodGet, Path: "", Handler: h.Job.List},
				{Method: http.MethodGet, Path: "/first-stop-count", Handler: h.Job.FirstStopCount},
				{Method: http.MethodGet, Path: "/:id", Handler: h.Job.Get},
				{Method: http.MethodPatch, Path: "/:id", Handler: h.Job.Update},
				{Method: http.MethodDelete, Path: "/:id", Handler: h.Job.Delete, Mw: []gin.HandlerFunc{admin}},
				{Method: http.MethodPost, Path: "/:id/comments", Handler: h.Job.AddComment},
				{Method: http.MethodGet, Path: "/:id/comments", Handler: h.Job.ListComments},
			})
		}

		reports := apiGroup.Group("/reports")
		reports.Use(authMiddleware.RequireAuth())
		{
			addRoutes(reports, []route{
				{Method: http.MethodGet, Path: "/parts", Handler: h.Report.Parts},
			})
		}

		katyshop := apiGroup.Group("/katyshop/jobs")
		katyshop.Use(authMiddleware.RequireAuth())
		{
			addRoutes(katyshop, []route{
				{Method: http.MethodPost, Path: "", Handler: h.Katyshop.Create},
				{Method: http.MethodGet, Path: "", Handler: h.Katyshop.List},
				{Method: http.MethodPatch, Path: "/:id/status", Handler: h.Katyshop.UpdateStatus},
				{Method: http.MethodDelete, Path: "/:id", Handler: h.Katyshop.Delete, Mw: []gin.HandlerFunc{admin}},
			})
		}

		customers := apiGroup.Group("/customers")
		customers.Use(authMiddleware.RequireAuth())
		{
			addRoutes(customers, []route{
				{Method: http.MethodPost, Path: "", Handler: h.Customer.Create},
				{Method: http.MethodGet, Path: "", Handler: h.Customer.List},
				{Method: http.MethodPatch, Path: "/:id", Handler: h.Customer.Update},
				{Method: http.MethodDelete, Path: "/:id", Handler: h.Customer.Delete, Mw: []gin.HandlerFunc{admin}},
			})
		}

		distributors := apiGroup.Group("/distributors")
		distributors.Use(authMiddleware.RequireAuth())
		{
			addRoutes(distributors, []route{
				{Method: http.MethodPost, Path: "", Handler: h.Distributor.Create},
				{Method: http.MethodGet, Path: "", Handler: h.Distributor.List},
				{Method: http.MethodDelete, Path: "/:id", Handler: h.Distributor.Delete, Mw: []gin.HandlerFunc{admin}},
			})
		}

		advisors := apiGroup.Group("/service-advisors")
		advisors.Use(authMiddleware.RequireAuth())
		{
			addRoutes(advisors, []route{
				{Method: http.MethodPost, Path: "", Handler: h.Advisor.Create},
				{Method: http.MethodGet, Path: "", Handler: h.Advisor.List},
				{Method: http.MethodDelete, Path: "/:id", Handler: h.Advisor.Delete, Mw: []gin.HandlerFunc{admin}},
			})
		}

		notifications := apiGroup.Group("/notifications")
		notifications.Use(authMiddleware.RequireAuth())
		{
			addRoutes(notifications, []route{
				{Method: http.MethodGet, Path: "", Handler: h.Notification.List},
				{Method: http.MethodPost, Path: "/:id/read", Handler: h.Notification.MarkRead},
				{Method: http.MethodPost, Path: "/read-all", Handler: h.Notification.MarkAllRead},
			})
		}
	}
}

// @Summary Health check
// @Description Check if the service is healthy
// @Tags health
// @Produce json
// @Success 200 {object} map[string]string
// @Router /health [get]
func healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "ok",
		"message": "Service is healthy",
	})
}

func addRoutes(g *gin.RouterGroup, rs []route) {
	for _, r := range rs {
		h := r.Handler
		if len(r.Mw) > 0 {
			h = chainHandlers(append(r.Mw, r.Handler)...)
		}
		switch r.Method {
		case http.MethodGet:
			g.GET(r.Path, h)
		case http.MethodPost:
			g.POST(r.Path, h)
		case http.MethodPut:
			g.PUT(r.Path, h)
		case http.MethodPatch:
			g.PATCH(r.Path, h)
		case http.MethodDelete:
			g.DELETE(r.Path, h)
		default:
			g.Any(r.Path, h)
		}
	}
}

func chainHandlers(hs ...gin.HandlerFunc) gin.HandlerFunc {
	return func(c *gin.Context) {
		for _, h := range hs {
			h(c)
			if c.IsAborted() {
				return
			}
		}
	}
}
