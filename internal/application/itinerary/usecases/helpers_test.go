package usecases

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/tripline/tripline/internal/application/collaboration/services"
	"github.com/tripline/tripline/internal/application/itinerary/dto"
	"github.com/tripline/tripline/internal/application/testutil"
	"github.com/tripline/tripline/internal/domain/itinerary"
	"github.com/tripline/tripline/internal/domain/place"
	"github.com/tripline/tripline/internal/domain/plan"
	vo "github.com/tripline/tripline/internal/domain/plan/valueobjects"
	"github.com/tripline/tripline/internal/shared/logger"
	"github.com/tripline/tripline/internal/shared/services/markdown"
)

var testNow = time.Date(2025, 5, 20, 9, 0, 0, 0, time.UTC)

func clock() time.Time { return testNow }

func june(day, hour, minute int) time.Time {
	return time.Date(2025, 6, day, hour, minute, 0, 0, time.UTC)
}

const (
	ownerID  uint = 1
	memberID uint = 2
	placeID  uint = 7
)

type fixture struct {
	plans     *testutil.MockPlanRepository
	members   *testutil.MockMemberRepository
	entries   *testutil.MockEntryRepository
	places    *testutil.MockPlaceLookup
	tx        *testutil.TxRunner
	log       logger.Interface
	assembler *dto.Assembler
	plan      *plan.Plan
}

// newFixture seeds a plan spanning 2025-06-01 00:00 to 2025-06-03 00:00
// owned by ownerID.
func newFixture(t *testing.T) *fixture {
	t.Helper()
	log := logger.NewNop()
	f := &fixture{
		plans:     testutil.NewMockPlanRepository(),
		members:   testutil.NewMockMemberRepository(),
		entries:   testutil.NewMockEntryRepository(),
		places:    testutil.NewMockPlaceLookup(&place.Place{ID: placeID, Name: "Seongsan Ilchulbong"}),
		tx:        &testutil.TxRunner{},
		log:       log,
		assembler: dto.NewAssembler(markdown.NewRenderer(), log),
	}
	p, err := plan.NewPlan(ownerID, "Jeju", "", june(1, 0, 0), june(3, 0, 0), testNow)
	require.NoError(t, err)
	require.NoError(t, f.plans.Create(context.Background(), p))
	f.members.Seed(p.ID(), ownerID, vo.StatusAccepted)
	f.plan = p
	return f
}

func (f *fixture) membership() *services.MembershipService {
	return services.NewMembershipService(f.members)
}

func (f *fixture) addUseCase() *AddEntryUseCase {
	return NewAddEntryUseCase(f.plans, f.entries, f.places, f.membership(), f.assembler, f.tx, f.log).WithClock(clock)
}

func (f *fixture) updateUseCase() *UpdateEntryUseCase {
	return NewUpdateEntryUseCase(f.plans, f.entries, f.places, f.membership(), f.assembler, f.tx, f.log).WithClock(clock)
}

func (f *fixture) addCmd(start, end time.Time) AddEntryCommand {
	return AddEntryCommand{
		PlanID:    f.plan.ID(),
		MemberID:  ownerID,
		PlaceID:   placeID,
		Title:     "Sunrise",
		Content:   "Bring a **jacket**",
		StartTime: start,
		EndTime:   end,
	}
}

func (f *fixture) seedEntry(t *testing.T, start, end time.Time) *itinerary.Entry {
	t.Helper()
	e, err := itinerary.NewEntry(f.plan.ID(), ownerID, itinerary.Slot{
		PlaceID: placeID, Title: "Seeded", Content: "seeded", StartTime: start, EndTime: end,
	}, testNow)
	require.NoError(t, err)
	require.NoError(t, f.entries.Create(context.Background(), e))
	return e
}
