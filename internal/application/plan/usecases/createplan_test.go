package usecases

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tripline/tripline/internal/domain/plan"
	vo "github.com/tripline/tripline/internal/domain/plan/valueobjects"
	"github.com/tripline/tripline/internal/shared/errors"
)

func TestCreatePlanUseCase_Execute(t *testing.T) {
	tests := []struct {
		name    string
		cmd     CreatePlanCommand
		wantErr error
	}{
		{
			name: "starts today",
			cmd:  CreatePlanCommand{OwnerID: 1, Title: "Busan", StartDate: day(10), EndDate: day(12)},
		},
		{
			name: "single day plan",
			cmd:  CreatePlanCommand{OwnerID: 1, Title: "Busan", StartDate: day(20), EndDate: day(20)},
		},
		{
			name:    "start after end",
			cmd:     CreatePlanCommand{OwnerID: 1, Title: "Busan", StartDate: day(13), EndDate: day(12)},
			wantErr: plan.ErrPlanDatesInverted,
		},
		{
			name:    "starts yesterday",
			cmd:     CreatePlanCommand{OwnerID: 1, Title: "Busan", StartDate: day(9), EndDate: day(12)},
			wantErr: plan.ErrPlanStartsInPast,
		},
		{
			name:    "ends beyond ten years",
			cmd:     CreatePlanCommand{OwnerID: 1, Title: "Busan", StartDate: day(12), EndDate: testNow.AddDate(10, 0, 1)},
			wantErr: plan.ErrPlanEndsTooLate,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture()
			uc := NewCreatePlanUseCase(f.plans, f.members, f.tx, f.log).WithClock(clock)

			result, err := uc.Execute(context.Background(), tt.cmd)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.True(t, errors.IsType(err, errors.ErrorTypeInvalidDateRange))
				assert.Zero(t, f.plans.Count())
				assert.Zero(t, f.tx.Calls)
				return
			}
			require.NoError(t, err)
			assert.NotZero(t, result.ID)
			assert.Equal(t, tt.cmd.OwnerID, result.OwnerID)
			assert.Equal(t, 1, f.tx.Calls)

			owner, err := f.members.GetByPlanAndMember(context.Background(), result.ID, tt.cmd.OwnerID)
			require.NoError(t, err)
			require.NotNil(t, owner)
			assert.Equal(t, vo.StatusAccepted, owner.Status())
		})
	}
}

func TestCreatePlanUseCase_BlankTitle(t *testing.T) {
	f := newFixture()
	uc := NewCreatePlanUseCase(f.plans, f.members, f.tx, f.log).WithClock(clock)

	_, err := uc.Execute(context.Background(), CreatePlanCommand{
		OwnerID: 1, Title: "   ", StartDate: day(10), EndDate: day(10).Add(time.Hour),
	})

	assert.True(t, errors.IsValidationError(err))
}

func TestCreatePlanUseCase_MembershipFailureAbortsTransaction(t *testing.T) {
	f := newFixture()
	f.members.CreateErr = assert.AnError
	uc := NewCreatePlanUseCase(f.plans, f.members, f.tx, f.log).WithClock(clock)

	_, err := uc.Execute(context.Background(), CreatePlanCommand{
		OwnerID: 1, Title: "Busan", StartDate: day(10), EndDate: day(11),
	})

	assert.ErrorIs(t, err, assert.AnError)
}
