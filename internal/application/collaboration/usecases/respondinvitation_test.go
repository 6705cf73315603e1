package usecases

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tripline/tripline/internal/domain/plan"
	vo "github.com/tripline/tripline/internal/domain/plan/valueobjects"
	"github.com/tripline/tripline/internal/shared/errors"
)

func TestRespondInvitationUseCase_Execute(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name       string
		seed       *vo.InvitationStatus
		decision   Decision
		wantStatus vo.InvitationStatus
		wantErr    error
	}{
		{name: "accept pending", seed: statusPtr(vo.StatusPending), decision: DecisionAccept, wantStatus: vo.StatusAccepted},
		{name: "deny pending", seed: statusPtr(vo.StatusPending), decision: DecisionDeny, wantStatus: vo.StatusDenied},
		{name: "accept twice", seed: statusPtr(vo.StatusAccepted), decision: DecisionAccept, wantErr: plan.ErrInvitationResolved},
		{name: "accept after deny", seed: statusPtr(vo.StatusDenied), decision: DecisionAccept, wantErr: plan.ErrInvitationResolved},
		{name: "deny after accept", seed: statusPtr(vo.StatusAccepted), decision: DecisionDeny, wantErr: plan.ErrInvitationResolved},
		{name: "no invitation", decision: DecisionAccept, wantErr: plan.ErrMembershipNotFound},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture()
			p := f.seedPlan(t, 1, "Jeju")
			if tt.seed != nil {
				f.members.Seed(p.ID(), 2, *tt.seed)
			}
			uc := NewRespondInvitationUseCase(f.members, f.tx, f.log).WithClock(clock)

			result, err := uc.Execute(ctx, RespondInvitationCommand{PlanID: p.ID(), MemberID: 2, Decision: tt.decision})
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantStatus.String(), result.Status)

			stored, err := f.members.GetByPlanAndMember(ctx, p.ID(), 2)
			require.NoError(t, err)
			assert.Equal(t, tt.wantStatus, stored.Status())
		})
	}
}

func TestRespondInvitationUseCase_UnknownDecision(t *testing.T) {
	f := newFixture()
	p := f.seedPlan(t, 1, "Jeju")
	f.members.Seed(p.ID(), 2, vo.StatusPending)

	_, err := NewRespondInvitationUseCase(f.members, f.tx, f.log).Execute(context.Background(),
		RespondInvitationCommand{PlanID: p.ID(), MemberID: 2, Decision: "maybe"})

	assert.True(t, errors.IsValidationError(err))
}

func statusPtr(s vo.InvitationStatus) *vo.InvitationStatus { return &s }
