package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/tripline/tripline/internal/interfaces/http/handlers"
)

// PlanRouteConfig holds dependencies for plan routes.
type PlanRouteConfig struct {
	PlanHandler       *handlers.PlanHandler
	PlanDetailHandler *handlers.PlanDetailHandler
}

// SetupPlanRoutes configures plan lifecycle routes and the per-plan entry
// listings. Authentication and route permissions are applied by the parent group.
func SetupPlanRoutes(rg *gin.RouterGroup, cfg *PlanRouteConfig) {
	plans := rg.Group("/plans")
	{
		plans.POST("", cfg.PlanHandler.CreatePlan)
		plans.GET("", cfg.PlanHandler.ListPlans)
		plans.GET("/today", cfg.PlanHandler.GetTodayPlan)
		plans.GET("/:id", cfg.PlanHandler.GetPlan)
		plans.PATCH("/:id", cfg.PlanHandler.UpdatePlan)
		plans.DELETE("/:id", cfg.PlanHandler.DeletePlan)
		plans.GET("/:id/export", cfg.PlanHandler.ExportPlan)

		plans.GET("/:id/details", cfg.PlanDetailHandler.ListEntries)
		plans.GET("/:id/details/today", cfg.PlanDetailHandler.ListTodayEntries)
	}
}
