package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"gorm.io/gorm"

	"toolvault/internal/infrastructure/config"
	"toolvault/internal/interfaces/http/middleware"
	"toolvault/internal/interfaces/http/routes"
	"toolvault/internal/shared/logger"

	_ "toolvault/docs"
)

// Router wires the HTTP surface: handlers, middleware, and routes.
type Router struct {
	engine         *gin.Engine
	handlers       *handlerSet
	authMiddleware *middleware.AuthMiddleware
	permission     *middleware.PermissionMiddleware
	rateLimiter    *middleware.RateLimitMiddleware
	logger         logger.Interface
}

// NewRouter builds the full dependency graph on top of the shared database
// and redis connections.
func NewRouter(gormDB *gorm.DB, redisClient *redis.Client, cfg *config.Config, log logger.Interface) (*Router, error) {
	if cfg.Server.Mode != "" {
		gin.SetMode(cfg.Server.Mode)
	}

	repos := buildRepositories(gormDB)
	svcs, err := buildServices(gormDB, redisClient, cfg, log)
	if err != nil {
		return nil, err
	}
	uc := buildUseCases(repos, svcs, cfg, log)

	engine := gin.New()
	engine.Use(middleware.RequestID())
	engine.Use(middleware.Logger(log))
	engine.Use(middleware.Recovery())
	engine.Use(middleware.CORS(cfg.Server.AllowedOrigins))

	r := &Router{
		engine:         engine,
		handlers:       buildHandlers(uc, log),
		authMiddleware: middleware.NewAuthMiddleware(svcs.jwtService, log),
		permission:     middleware.NewPermissionMiddleware(svcs.enforcer, log),
		rateLimiter:    middleware.NewRateLimitMiddleware(svcs.rateLimiter, log),
		logger:         log,
	}
	r.setupRoutes()

	return r, nil
}

func (r *Router) setupRoutes() {
	r.engine.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	r.engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	api := r.engine.Group("/api")

	routes.SetupAuthRoutes(api, &routes.AuthRouteConfig{
		AuthHandler:    r.handlers.auth,
		AuthMiddleware: r.authMiddleware,
		RateLimiter:    r.rateLimiter,
	})

	routes.SetupCatalogRoutes(api, &routes.CatalogRouteConfig{
		ToolHandler:     r.handlers.tool,
		CategoryHandler: r.handlers.category,
		ReviewHandler:   r.handlers.review,
		AuthMiddleware:  r.authMiddleware,
		RateLimiter:     r.rateLimiter,
	})

	routes.SetupFavoriteRoutes(api, &routes.FavoriteRouteConfig{
		FavoriteHandler: r.handlers.favorite,
		AuthMiddleware:  r.authMiddleware,
	})

	routes.SetupBillingRoutes(api, &routes.BillingRouteConfig{
		BillingHandler: r.handlers.billing,
		AuthMiddleware: r.authMiddleware,
		RateLimiter:    r.rateLimiter,
	})

	routes.SetupAdminRoutes(api, &routes.AdminRouteConfig{
		AdminHandler:   r.handlers.admin,
		AuthMiddleware: r.authMiddleware,
		Permission:     r.permission,
	})
}

// Engine exposes the underlying gin engine, mainly for the server command
// and tests.
func (r *Router) Engine() *gin.Engine {
	return r.engine
}
