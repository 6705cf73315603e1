package http

import (
	bookmarkUsecases "github.com/tripline/tripline/internal/application/bookmark/usecases"
	collaborationServices "github.com/tripline/tripline/internal/application/collaboration/services"
	collaborationUsecases "github.com/tripline/tripline/internal/application/collaboration/usecases"
	itineraryDTO "github.com/tripline/tripline/internal/application/itinerary/dto"
	itineraryUsecases "github.com/tripline/tripline/internal/application/itinerary/usecases"
	planUsecases "github.com/tripline/tripline/internal/application/plan/usecases"
)

// allUseCases holds all use case instances used by the application.
type allUseCases struct {
	// Plan lifecycle
	createPlanUC   *planUsecases.CreatePlanUseCase
	updatePlanUC   *planUsecases.UpdatePlanUseCase
	deletePlanUC   *planUsecases.DeletePlanUseCase
	getPlanUC      *planUsecases.GetPlanUseCase
	listPlansUC    *planUsecases.ListPlansUseCase
	getTodayPlanUC *planUsecases.GetTodayPlanUseCase
	exportPlanUC   *planUsecases.ExportPlanUseCase

	// Collaboration
	inviteMemberUC      *collaborationUsecases.InviteMemberUseCase
	respondInvitationUC *collaborationUsecases.RespondInvitationUseCase
	listInvitationsUC   *collaborationUsecases.ListInvitationsUseCase

	// Itinerary
	addEntryUC    *itineraryUsecases.AddEntryUseCase
	updateEntryUC *itineraryUsecases.UpdateEntryUseCase
	deleteEntryUC *itineraryUsecases.DeleteEntryUseCase
	getEntryUC    *itineraryUsecases.GetEntryUseCase
	listEntriesUC *itineraryUsecases.ListEntriesUseCase

	// Bookmarks
	createBookmarkUC *bookmarkUsecases.CreateBookmarkUseCase
	listBookmarksUC  *bookmarkUsecases.ListBookmarksUseCase
	deleteBookmarkUC *bookmarkUsecases.DeleteBookmarkUseCase
}

func (c *Container) initUseCases() {
	r := c.repos
	membership := collaborationServices.NewMembershipService(r.memberRepo)
	assembler := itineraryDTO.NewAssembler(c.renderer, c.log)
	lockPlan := c.cfg.Itinerary.LockPlanOnWrite

	c.ucs = &allUseCases{
		createPlanUC:   planUsecases.NewCreatePlanUseCase(r.planRepo, r.memberRepo, c.txMgr, c.log),
		updatePlanUC:   planUsecases.NewUpdatePlanUseCase(r.planRepo, r.entryRepo, c.txMgr, c.log),
		deletePlanUC:   planUsecases.NewDeletePlanUseCase(r.planRepo, r.memberRepo, r.entryRepo, c.txMgr, c.log),
		getPlanUC:      planUsecases.NewGetPlanUseCase(r.planRepo, r.memberRepo, membership, c.log),
		listPlansUC:    planUsecases.NewListPlansUseCase(r.planRepo, c.log),
		getTodayPlanUC: planUsecases.NewGetTodayPlanUseCase(r.planRepo, c.log),
		exportPlanUC:   planUsecases.NewExportPlanUseCase(r.planRepo, r.entryRepo, membership, c.log),

		inviteMemberUC:      collaborationUsecases.NewInviteMemberUseCase(r.planRepo, r.memberRepo, membership, c.notifier, c.txMgr, c.log),
		respondInvitationUC: collaborationUsecases.NewRespondInvitationUseCase(r.memberRepo, c.txMgr, c.log),
		listInvitationsUC:   collaborationUsecases.NewListInvitationsUseCase(r.planRepo, r.memberRepo, c.log),

		addEntryUC: itineraryUsecases.NewAddEntryUseCase(r.planRepo, r.entryRepo, c.places, membership, assembler, c.txMgr, c.log).
			WithPlanLock(lockPlan),
		updateEntryUC: itineraryUsecases.NewUpdateEntryUseCase(r.planRepo, r.entryRepo, c.places, membership, assembler, c.txMgr, c.log).
			WithPlanLock(lockPlan),
		deleteEntryUC: itineraryUsecases.NewDeleteEntryUseCase(r.planRepo, r.entryRepo, membership, c.txMgr, c.log).
			WithPlanLock(lockPlan),
		getEntryUC:    itineraryUsecases.NewGetEntryUseCase(r.planRepo, r.entryRepo, c.places, membership, assembler, c.log),
		listEntriesUC: itineraryUsecases.NewListEntriesUseCase(r.planRepo, r.entryRepo, membership, assembler, c.log),

		createBookmarkUC: bookmarkUsecases.NewCreateBookmarkUseCase(r.bookmarkRepo, c.places, c.txMgr, c.log),
		listBookmarksUC:  bookmarkUsecases.NewListBookmarksUseCase(r.bookmarkRepo, c.log),
		deleteBookmarkUC: bookmarkUsecases.NewDeleteBookmarkUseCase(r.bookmarkRepo, c.txMgr, c.log),
	}
}
