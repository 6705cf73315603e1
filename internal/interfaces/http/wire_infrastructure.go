package http

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/tripline/tripline/internal/application/collaboration/services"
	"github.com/tripline/tripline/internal/infrastructure/auth"
	"github.com/tripline/tripline/internal/infrastructure/cache"
	"github.com/tripline/tripline/internal/infrastructure/email"
	"github.com/tripline/tripline/internal/infrastructure/permission"
	"github.com/tripline/tripline/internal/infrastructure/ratelimit"
	"github.com/tripline/tripline/internal/interfaces/http/middleware"
	"github.com/tripline/tripline/internal/shared/db"
	"github.com/tripline/tripline/internal/shared/services/markdown"
)

const redisPingTimeout = 3 * time.Second

// initInfrastructure wires Redis, repositories and the services built on them.
func (c *Container) initInfrastructure() error {
	if c.cfg.Redis.Enabled {
		client := redis.NewClient(&redis.Options{
			Addr:     c.cfg.Redis.GetAddr(),
			Password: c.cfg.Redis.Password,
			DB:       c.cfg.Redis.DB,
		})

		ctx, cancel := context.WithTimeout(context.Background(), redisPingTimeout)
		defer cancel()
		if err := client.Ping(ctx).Err(); err != nil {
			_ = client.Close()
			return fmt.Errorf("failed to connect to redis at %s: %w", c.cfg.Redis.GetAddr(), err)
		}
		c.redis = client
		c.log.Infow("redis connection established", "addr", c.cfg.Redis.GetAddr())
	}

	c.repos = newRepositories(c.db, c.log)
	c.txMgr = db.NewTransactionManager(c.db)
	c.renderer = markdown.NewRenderer()

	c.places = c.repos.placeRepo
	if c.redis != nil {
		ttl := time.Duration(c.cfg.Redis.PlaceCacheTTLMinutes) * time.Minute
		c.places = cache.NewRedisPlaceCache(c.redis, c.repos.placeRepo, ttl, c.log.Named("placecache"))
	}

	c.notifier = services.NewNoopNotifier()
	if c.cfg.Email.Enabled {
		c.notifier = email.NewSMTPInvitationNotifier(email.NewSMTPConfig(&c.cfg.Email, c.cfg.Server.BaseURL))
		c.log.Infow("invitation e-mails enabled", "smtp_host", c.cfg.Email.SMTPHost)
	}

	return nil
}

// initSecurity wires token verification, route permissions and rate limiting.
func (c *Container) initSecurity() error {
	c.jwtSvc = auth.NewJWTService(c.cfg.Auth.JWT.Secret, c.cfg.Auth.JWT.Issuer, c.cfg.Auth.JWT.AccessExpMinutes)
	c.authMiddleware = middleware.NewAuthMiddleware(c.jwtSvc, c.log)

	enforcer, err := permission.NewEnforcer(c.db, c.cfg.Permission.ModelPath, c.log.Named("permission"))
	if err != nil {
		return err
	}
	if err := enforcer.SeedRoutePolicies(); err != nil {
		return err
	}
	c.enforcer = enforcer
	c.permissionMiddleware = middleware.NewPermissionMiddleware(enforcer, c.log)

	if c.cfg.RateLimit.Enabled {
		if c.redis == nil {
			c.log.Warnw("rate limiting requires redis; continuing without it")
		} else {
			limiter := ratelimit.NewRedisRateLimiter(c.redis, ratelimit.Config{
				Requests: c.cfg.RateLimit.Requests,
				Window:   time.Duration(c.cfg.RateLimit.WindowSeconds) * time.Second,
			})
			c.rateLimiter = middleware.NewRateLimiter(limiter, c.log)
		}
	}

	return nil
}
