package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/tripline/tripline/internal/interfaces/http/handlers"
)

// PlanDetailRouteConfig holds dependencies for itinerary entry routes.
type PlanDetailRouteConfig struct {
	PlanDetailHandler *handlers.PlanDetailHandler
}

// SetupPlanDetailRoutes configures itinerary entry routes.
func SetupPlanDetailRoutes(rg *gin.RouterGroup, cfg *PlanDetailRouteConfig) {
	details := rg.Group("/plan-details")
	{
		details.POST("", cfg.PlanDetailHandler.AddEntry)
		details.GET("/:id", cfg.PlanDetailHandler.GetEntry)
		details.PATCH("/:id", cfg.PlanDetailHandler.UpdateEntry)
		details.DELETE("/:id", cfg.PlanDetailHandler.DeleteEntry)
	}
}
