package api

import (
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	echoSwagger "github.com/swaggo/echo-swagger"
	"go.mongodb.org/mongo-driver/mongo"

	_ "github.com/assoimpresa360/client-portal/docs"
	"github.com/assoimpresa360/client-portal/internal/api/handler"
	"github.com/assoimpresa360/client-portal/internal/api/middleware"
	"github.com/assoimpresa360/client-portal/internal/core/ports"
	"github.com/assoimpresa360/client-portal/pkg/logger"
)

// Deps bundles everything the router needs. Mongo and Redis may be nil:
// the readiness probe reports them as disabled and the rest of the API
// keeps working (demo logins, unguarded chat).
type Deps struct {
	AuthService   ports.AuthService
	ClientService ports.ClientService
	ChatService   ports.ChatService
	Sessions      ports.SessionRegistry
	JWTSecret     string
	Mongo         *mongo.Database
	Redis         *redis.Client
}

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(deps Deps) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(logger.Get())

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echomiddleware.CORS())
	e.Use(echoprometheus.NewMiddleware("portal"))

	// --- Handlers ---
	authHandler := handler.NewAuthHandler(deps.AuthService)
	clientHandler := handler.NewClientHandler(deps.ClientService)
	chatHandler := handler.NewChatHandler(deps.ChatService)
	portalHandler := handler.NewPortalHandler()

	authMW := middleware.Auth(deps.JWTSecret, deps.Sessions)
	adminOnly := middleware.RBAC("admin")
	clientOnly := middleware.RBAC("client")

	// --- Auth routes ---
	e.POST("/auth/login", authHandler.Login)
	e.POST("/auth/logout", authHandler.Logout, authMW)
	e.GET("/auth/session", authHandler.Session, authMW)

	// --- Client dashboard ---
	portal := e.Group("/v1", authMW, clientOnly)
	portal.GET("/portal", portalHandler.Dashboard)
	portal.GET("/chat/messages", chatHandler.Messages)
	portal.POST("/chat/messages", chatHandler.Send)

	// --- Administrator CRUD panel ---
	admin := e.Group("/v1/clients", authMW, adminOnly)
	admin.GET("", clientHandler.List)
	admin.POST("", clientHandler.Create)
	admin.PUT("/:id", clientHandler.Update)
	admin.DELETE("/:id", clientHandler.Delete)

	// --- Health probes, metrics, docs (no auth required) ---
	healthHandler := handler.NewHealthHandler()
	readinessHandler := handler.NewReadinessHandler(deps.Mongo, deps.Redis)

	e.GET("/health", healthHandler.Liveness)
	e.GET("/health/ready", readinessHandler.Readiness)
	e.GET("/metrics", echoprometheus.NewHandler())
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	return e
}
