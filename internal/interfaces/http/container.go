package http

import (
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	collaborationServices "github.com/tripline/tripline/internal/application/collaboration/services"
	"github.com/tripline/tripline/internal/domain/place"
	"github.com/tripline/tripline/internal/infrastructure/auth"
	"github.com/tripline/tripline/internal/infrastructure/config"
	"github.com/tripline/tripline/internal/infrastructure/permission"
	"github.com/tripline/tripline/internal/interfaces/http/middleware"
	"github.com/tripline/tripline/internal/shared/db"
	"github.com/tripline/tripline/internal/shared/logger"
	"github.com/tripline/tripline/internal/shared/services/markdown"
	"github.com/tripline/tripline/internal/shared/utils"
)

// Container holds all infrastructure components, repositories, use cases and
// handlers. It is responsible for wiring everything together and providing a
// Shutdown() method for graceful termination.
type Container struct {
	// Core infrastructure
	engine *gin.Engine
	db     *gorm.DB
	cfg    *config.Config
	log    logger.Interface
	redis  *redis.Client

	// Shared services
	txMgr    *db.TransactionManager
	renderer markdown.Renderer
	places   place.Lookup
	notifier collaborationServices.InvitationNotifier

	// Repositories
	repos *repositories

	// Use cases
	ucs *allUseCases

	// Handlers
	hdlrs *allHandlers

	// Security
	jwtSvc               *auth.JWTService
	enforcer             *permission.Enforcer
	authMiddleware       *middleware.AuthMiddleware
	permissionMiddleware *middleware.PermissionMiddleware
	rateLimiter          *middleware.RateLimiter
}

// NewContainer wires every component against db and cfg. The gin engine is
// created but no routes are registered until SetupRoutes is called.
func NewContainer(db *gorm.DB, cfg *config.Config, log logger.Interface) (*Container, error) {
	utils.RegisterBindingTagNames()

	c := &Container{
		engine: gin.New(),
		db:     db,
		cfg:    cfg,
		log:    log,
	}

	if err := c.initInfrastructure(); err != nil {
		return nil, err
	}
	if err := c.initSecurity(); err != nil {
		c.closeRedis()
		return nil, err
	}
	c.initUseCases()
	c.initHandlers()

	return c, nil
}

func (c *Container) closeRedis() {
	if c.redis == nil {
		return
	}
	if err := c.redis.Close(); err != nil {
		c.log.Warnw("failed to close redis client", "error", err)
	}
	c.redis = nil
}
