package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/tripline/tripline/internal/interfaces/http/handlers"
)

// InvitationRouteConfig holds dependencies for collaboration routes.
type InvitationRouteConfig struct {
	InvitationHandler *handlers.InvitationHandler
}

// SetupInvitationRoutes configures plan membership routes.
func SetupInvitationRoutes(rg *gin.RouterGroup, cfg *InvitationRouteConfig) {
	members := rg.Group("/plans/:id/members")
	{
		members.POST("", cfg.InvitationHandler.Invite)
		members.PATCH("/accept", cfg.InvitationHandler.Accept)
		members.PATCH("/deny", cfg.InvitationHandler.Deny)
	}

	rg.GET("/invitations", cfg.InvitationHandler.ListMyInvitations)
}
