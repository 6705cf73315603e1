package usecases

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/tripline/tripline/internal/application/collaboration/services"
	"github.com/tripline/tripline/internal/application/testutil"
	"github.com/tripline/tripline/internal/domain/itinerary"
	"github.com/tripline/tripline/internal/domain/plan"
	vo "github.com/tripline/tripline/internal/domain/plan/valueobjects"
	"github.com/tripline/tripline/internal/shared/logger"
)

var testNow = time.Date(2026, 5, 10, 10, 0, 0, 0, time.UTC)

func clock() time.Time { return testNow }

func day(d int) time.Time {
	return time.Date(2026, 5, d, 0, 0, 0, 0, time.UTC)
}

type fixture struct {
	plans   *testutil.MockPlanRepository
	members *testutil.MockMemberRepository
	entries *testutil.MockEntryRepository
	tx      *testutil.TxRunner
	log     logger.Interface
}

func newFixture() *fixture {
	return &fixture{
		plans:   testutil.NewMockPlanRepository(),
		members: testutil.NewMockMemberRepository(),
		entries: testutil.NewMockEntryRepository(),
		tx:      &testutil.TxRunner{},
		log:     logger.NewNop(),
	}
}

func (f *fixture) membership() *services.MembershipService {
	return services.NewMembershipService(f.members)
}

// seedPlan stores a plan owned by ownerID with the owner's ACCEPTED row.
func (f *fixture) seedPlan(t *testing.T, ownerID uint, start, end time.Time) *plan.Plan {
	t.Helper()
	p, err := plan.NewPlan(ownerID, "Jeju trip", "", start, end, testNow)
	require.NoError(t, err)
	require.NoError(t, f.plans.Create(context.Background(), p))
	f.members.Seed(p.ID(), ownerID, vo.StatusAccepted)
	return p
}

func (f *fixture) seedEntry(t *testing.T, planID uint, start, end time.Time) *itinerary.Entry {
	t.Helper()
	e, err := itinerary.NewEntry(planID, 1, itinerary.Slot{
		PlaceID:   7,
		Title:     "Lunch",
		Content:   "black pork",
		StartTime: start,
		EndTime:   end,
	}, testNow)
	require.NoError(t, err)
	require.NoError(t, f.entries.Create(context.Background(), e))
	return e
}
