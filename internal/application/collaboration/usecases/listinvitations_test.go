package usecases

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	vo "github.com/tripline/tripline/internal/domain/plan/valueobjects"
)

func TestListInvitationsUseCase_Execute(t *testing.T) {
	f := newFixture()
	jeju := f.seedPlan(t, 1, "Jeju")
	busan := f.seedPlan(t, 3, "Busan")
	f.members.Seed(jeju.ID(), 2, vo.StatusPending)
	f.members.Seed(busan.ID(), 2, vo.StatusDenied)

	result, err := NewListInvitationsUseCase(f.plans, f.members, f.log).
		Execute(context.Background(), ListInvitationsQuery{MemberID: 2})

	require.NoError(t, err)
	require.Len(t, result, 2)
	assert.Equal(t, "Jeju", result[0].PlanTitle)
	assert.Equal(t, vo.StatusPending.String(), result[0].Status)
	assert.Equal(t, jeju.StartDate(), result[0].StartDate)
	assert.Equal(t, "Busan", result[1].PlanTitle)
	assert.Equal(t, vo.StatusDenied.String(), result[1].Status)
}

func TestListInvitationsUseCase_Empty(t *testing.T) {
	f := newFixture()

	result, err := NewListInvitationsUseCase(f.plans, f.members, f.log).
		Execute(context.Background(), ListInvitationsQuery{MemberID: 2})

	require.NoError(t, err)
	assert.NotNil(t, result)
	assert.Empty(t, result)
}
