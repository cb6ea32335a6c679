package api

import (
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/bhelavevicky66-ui/Health-Leave-Dashboard/internal/api/handler"
	"github.com/bhelavevicky66-ui/Health-Leave-Dashboard/internal/api/middleware"
	"github.com/bhelavevicky66-ui/Health-Leave-Dashboard/internal/core/domain"
	"github.com/bhelavevicky66-ui/Health-Leave-Dashboard/internal/core/ports"
	"github.com/bhelavevicky66-ui/Health-Leave-Dashboard/internal/core/service"
)

// Deps carries everything the router needs, constructed in main.
type Deps struct {
	Submissions ports.SubmissionService
	Accounts    ports.AccountService
	Dashboard   *service.DashboardService
	Status      ports.NotificationStatusStore
	Mongo       *mongo.Database
	Redis       *redis.Client
	JWTSecret   string
	Logger      zerolog.Logger
}

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(d Deps) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(d.Logger)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echoprometheus.NewMiddleware("health_leave"))

	// --- Handlers ---
	authHandler := handler.NewAuthHandler(d.Accounts)
	submissionHandler := handler.NewSubmissionHandler(d.Submissions, d.Dashboard, d.Status, d.Logger)
	accountHandler := handler.NewAccountHandler(d.Accounts, d.Dashboard, d.Logger)
	healthHandler := handler.NewHealthHandler(d.Mongo, d.Redis)

	// --- Public surface ---
	e.POST("/auth/google", authHandler.GoogleSignIn)
	e.GET("/health", healthHandler.Liveness)
	e.GET("/health/ready", healthHandler.Readiness)
	e.GET("/metrics", echoprometheus.NewHandler())

	// --- Authenticated surface ---
	v1 := e.Group("/v1",
		middleware.Auth(d.JWTSecret),
		middleware.ResolveRole(d.Dashboard.ResolveRole),
	)

	v1.POST("/submissions", submissionHandler.Submit)
	v1.GET("/submissions", submissionHandler.List)
	v1.GET("/submissions/timeline", submissionHandler.Timeline)
	v1.GET("/stats", submissionHandler.Stats)
	v1.GET("/stats/weekly-hours", submissionHandler.WeeklyHours)
	v1.GET("/notifications/status", submissionHandler.NotificationStatus)
	v1.GET("/me", accountHandler.Me)
	v1.PUT("/me", accountHandler.UpdateMe)
	v1.GET("/users", accountHandler.ListUsers)

	moderate := middleware.RBAC(domain.RoleAdmin, domain.RoleSuperAdmin)
	v1.POST("/submissions/:id/approve", submissionHandler.Approve, moderate)
	v1.POST("/submissions/:id/reject", submissionHandler.Reject, moderate)

	root := middleware.RBAC(domain.RoleSuperAdmin)
	v1.DELETE("/submissions/:id", submissionHandler.Delete, root)
	v1.PUT("/users/:email/role", accountHandler.SetRole, root)
	v1.DELETE("/users/:email", accountHandler.RemoveUser, root)

	return e
}
