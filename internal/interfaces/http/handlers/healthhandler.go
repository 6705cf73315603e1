package handlers

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

const healthProbeTimeout = 2 * time.Second

// HealthHandler reports whether the service and its backing stores respond.
type HealthHandler struct {
	db    *gorm.DB
	redis *redis.Client
}

// NewHealthHandler creates a health handler. redis may be nil when caching
// is disabled.
func NewHealthHandler(db *gorm.DB, redis *redis.Client) *HealthHandler {
	return &HealthHandler{db: db, redis: redis}
}

// HealthCheck handles GET /health
//
// @Summary Service health
// @Description Reports database and cache reachability
// @Tags Health
// @Produce json
// @Success 200 {object} map[string]string
// @Failure 503 {object} map[string]string
// @Router /health [get]
func (h *HealthHandler) HealthCheck(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), healthProbeTimeout)
	defer cancel()

	body := gin.H{"status": "healthy", "service": "tripline", "database": "up"}
	status := http.StatusOK

	if err := h.pingDatabase(ctx); err != nil {
		body["database"] = "down"
		body["status"] = "unhealthy"
		status = http.StatusServiceUnavailable
	}

	if h.redis != nil {
		body["redis"] = "up"
		if err := h.redis.Ping(ctx).Err(); err != nil {
			body["redis"] = "down"
			if status == http.StatusOK {
				body["status"] = "degraded"
			}
		}
	}

	c.JSON(status, body)
}

func (h *HealthHandler) pingDatabase(ctx context.Context) error {
	sqlDB, err := h.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.PingContext(ctx)
}
