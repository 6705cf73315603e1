package http

import (
	"github.com/tripline/tripline/internal/interfaces/http/handlers"
)

// allHandlers holds all HTTP handler instances used by the application.
type allHandlers struct {
	planHandler       *handlers.PlanHandler
	invitationHandler *handlers.InvitationHandler
	planDetailHandler *handlers.PlanDetailHandler
	bookmarkHandler   *handlers.BookmarkHandler
	healthHandler     *handlers.HealthHandler
}

func (c *Container) initHandlers() {
	u := c.ucs

	c.hdlrs = &allHandlers{
		planHandler: handlers.NewPlanHandler(
			u.createPlanUC,
			u.updatePlanUC,
			u.deletePlanUC,
			u.getPlanUC,
			u.listPlansUC,
			u.getTodayPlanUC,
			u.exportPlanUC,
			c.log,
		),
		invitationHandler: handlers.NewInvitationHandler(
			u.inviteMemberUC,
			u.respondInvitationUC,
			u.listInvitationsUC,
			c.log,
		),
		planDetailHandler: handlers.NewPlanDetailHandler(
			u.addEntryUC,
			u.updateEntryUC,
			u.deleteEntryUC,
			u.getEntryUC,
			u.listEntriesUC,
			c.log,
		),
		bookmarkHandler: handlers.NewBookmarkHandler(
			u.createBookmarkUC,
			u.listBookmarksUC,
			u.deleteBookmarkUC,
			c.log,
		),
		healthHandler: handlers.NewHealthHandler(c.db, c.redis),
	}
}
