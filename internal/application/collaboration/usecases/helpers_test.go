package usecases

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/tripline/tripline/internal/application/collaboration/services"
	"github.com/tripline/tripline/internal/application/testutil"
	"github.com/tripline/tripline/internal/domain/plan"
	vo "github.com/tripline/tripline/internal/domain/plan/valueobjects"
	"github.com/tripline/tripline/internal/shared/logger"
)

var testNow = time.Date(2026, 5, 10, 10, 0, 0, 0, time.UTC)

func clock() time.Time { return testNow }

type recordingNotifier struct {
	mu      sync.Mutex
	notices []services.InvitationNotice
	err     error
}

func (n *recordingNotifier) NotifyInvited(_ context.Context, notice services.InvitationNotice) error {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.notices = append(n.notices, notice)
	return n.err
}

type fixture struct {
	plans    *testutil.MockPlanRepository
	members  *testutil.MockMemberRepository
	tx       *testutil.TxRunner
	notifier *recordingNotifier
	log      logger.Interface
}

func newFixture() *fixture {
	return &fixture{
		plans:    testutil.NewMockPlanRepository(),
		members:  testutil.NewMockMemberRepository(),
		tx:       &testutil.TxRunner{},
		notifier: &recordingNotifier{},
		log:      logger.NewNop(),
	}
}

func (f *fixture) inviteUseCase() *InviteMemberUseCase {
	return NewInviteMemberUseCase(
		f.plans, f.members, services.NewMembershipService(f.members), f.notifier, f.tx, f.log,
	).WithClock(clock).WithSyncNotify()
}

func (f *fixture) seedPlan(t *testing.T, ownerID uint, title string) *plan.Plan {
	t.Helper()
	start := time.Date(2026, 6, 1, 0, 0, 0, 0, time.UTC)
	p, err := plan.NewPlan(ownerID, title, "", start, start.AddDate(0, 0, 3), testNow)
	require.NoError(t, err)
	require.NoError(t, f.plans.Create(context.Background(), p))
	f.members.Seed(p.ID(), ownerID, vo.StatusAccepted)
	return p
}
