package http

import (
	"gorm.io/gorm"

	"github.com/tripline/tripline/internal/domain/bookmark"
	"github.com/tripline/tripline/internal/domain/itinerary"
	"github.com/tripline/tripline/internal/domain/plan"
	"github.com/tripline/tripline/internal/infrastructure/repository"
	"github.com/tripline/tripline/internal/shared/logger"
)

// repositories holds all repository instances used by the application.
// Types match the return types of the repository constructors.
type repositories struct {
	planRepo     plan.Repository
	memberRepo   plan.MemberRepository
	entryRepo    itinerary.Repository
	bookmarkRepo bookmark.Repository
	placeRepo    *repository.PlaceRepository
}

func newRepositories(db *gorm.DB, log logger.Interface) *repositories {
	return &repositories{
		planRepo:     repository.NewPlanRepository(db, log),
		memberRepo:   repository.NewPlanMemberRepository(db, log),
		entryRepo:    repository.NewPlanDetailRepository(db, log),
		bookmarkRepo: repository.NewBookmarkRepository(db, log),
		placeRepo:    repository.NewPlaceRepository(db),
	}
}
