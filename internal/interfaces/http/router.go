package http

import (
	"context"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"gorm.io/gorm"

	"github.com/tripline/tripline/internal/infrastructure/config"
	"github.com/tripline/tripline/internal/interfaces/http/middleware"
	"github.com/tripline/tripline/internal/interfaces/http/routes"
	"github.com/tripline/tripline/internal/shared/logger"

	_ "github.com/tripline/tripline/docs"
)

// Router represents the HTTP router configuration.
type Router struct {
	*Container
}

// NewRouter creates a router with every dependency wired.
func NewRouter(db *gorm.DB, cfg *config.Config, log logger.Interface) (*Router, error) {
	c, err := NewContainer(db, cfg, log)
	if err != nil {
		return nil, err
	}
	return &Router{Container: c}, nil
}

// SetupRoutes configures all HTTP routes.
func (r *Router) SetupRoutes() {
	r.engine.Use(middleware.RequestID())
	r.engine.Use(middleware.RequestLogger(r.log))
	r.engine.Use(middleware.Recovery(r.log))
	r.engine.Use(middleware.ErrorHandler(r.log))
	r.engine.Use(middleware.CORS(r.cfg.Server.AllowedOrigins))

	r.engine.GET("/health", r.hdlrs.healthHandler.HealthCheck)
	r.engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	protected := r.engine.Group("")
	protected.Use(middleware.SecurityHeaders())
	protected.Use(r.authMiddleware.RequireAuth())
	if r.rateLimiter != nil {
		protected.Use(r.rateLimiter.Limit())
	}
	protected.Use(r.permissionMiddleware.RequireRoutePermission())

	routes.SetupPlanRoutes(protected, &routes.PlanRouteConfig{
		PlanHandler:       r.hdlrs.planHandler,
		PlanDetailHandler: r.hdlrs.planDetailHandler,
	})
	routes.SetupInvitationRoutes(protected, &routes.InvitationRouteConfig{
		InvitationHandler: r.hdlrs.invitationHandler,
	})
	routes.SetupPlanDetailRoutes(protected, &routes.PlanDetailRouteConfig{
		PlanDetailHandler: r.hdlrs.planDetailHandler,
	})
	routes.SetupBookmarkRoutes(protected, &routes.BookmarkRouteConfig{
		BookmarkHandler: r.hdlrs.bookmarkHandler,
	})
}

// GetEngine returns the gin engine.
func (r *Router) GetEngine() *gin.Engine {
	return r.engine
}

// Run starts the HTTP server.
func (r *Router) Run(addr string) error {
	return r.engine.Run(addr)
}

// Shutdown releases resources held by the router. The caller owns the
// database handle.
func (r *Router) Shutdown(_ context.Context) {
	r.closeRedis()
	r.log.Infow("router resources released")
}
