package usecases

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tripline/tripline/internal/domain/itinerary"
	"github.com/tripline/tripline/internal/domain/plan"
	vo "github.com/tripline/tripline/internal/domain/plan/valueobjects"
)

func TestGetEntryUseCase_Execute(t *testing.T) {
	f := newFixture(t)
	e := f.seedEntry(t, june(1, 9, 0), june(1, 11, 0))
	uc := NewGetEntryUseCase(f.plans, f.entries, f.places, f.membership(), f.assembler, f.log)
	ctx := context.Background()

	result, err := uc.Execute(ctx, GetEntryQuery{EntryID: e.ID(), MemberID: ownerID})
	require.NoError(t, err)
	require.NotNil(t, result.Place)
	assert.Equal(t, "Seongsan Ilchulbong", result.Place.Name)
	assert.Equal(t, "<p>seeded</p>\n", result.ContentHTML)

	_, err = uc.Execute(ctx, GetEntryQuery{EntryID: e.ID(), MemberID: memberID})
	assert.ErrorIs(t, err, plan.ErrNotAcceptedMember)

	_, err = uc.Execute(ctx, GetEntryQuery{EntryID: 999, MemberID: ownerID})
	assert.ErrorIs(t, err, itinerary.ErrEntryNotFound)
}

func TestGetEntryUseCase_PlaceLookupFailureIsNotFatal(t *testing.T) {
	f := newFixture(t)
	e := f.seedEntry(t, june(1, 9, 0), june(1, 11, 0))
	f.places.Err = assert.AnError
	uc := NewGetEntryUseCase(f.plans, f.entries, f.places, f.membership(), f.assembler, f.log)

	result, err := uc.Execute(context.Background(), GetEntryQuery{EntryID: e.ID(), MemberID: ownerID})

	require.NoError(t, err)
	assert.Nil(t, result.Place)
}

func TestListEntriesUseCase_Execute(t *testing.T) {
	f := newFixture(t)
	late := f.seedEntry(t, june(2, 15, 0), june(2, 16, 0))
	early := f.seedEntry(t, june(1, 9, 0), june(1, 10, 0))
	uc := NewListEntriesUseCase(f.plans, f.entries, f.membership(), f.assembler, f.log)
	ctx := context.Background()

	result, err := uc.Execute(ctx, ListEntriesQuery{PlanID: f.plan.ID(), MemberID: ownerID})
	require.NoError(t, err)
	require.Len(t, result, 2)
	assert.Equal(t, early.ID(), result[0].ID)
	assert.Equal(t, late.ID(), result[1].ID)

	f.members.Seed(f.plan.ID(), memberID, vo.StatusPending)
	_, err = uc.Execute(ctx, ListEntriesQuery{PlanID: f.plan.ID(), MemberID: memberID})
	assert.ErrorIs(t, err, plan.ErrNotAcceptedMember)

	_, err = uc.Execute(ctx, ListEntriesQuery{PlanID: 404, MemberID: ownerID})
	assert.ErrorIs(t, err, plan.ErrPlanNotFound)
}

func TestListEntriesUseCase_ExecuteToday(t *testing.T) {
	f := newFixture(t)
	spansMidnight := f.seedEntry(t, june(1, 23, 0), june(2, 1, 0))
	morning := f.seedEntry(t, june(2, 9, 0), june(2, 10, 0))
	f.seedEntry(t, june(1, 9, 0), june(1, 10, 0))
	// Ends exactly at today's start: not part of today.
	f.seedEntry(t, june(1, 22, 0), june(1, 23, 0))

	uc := NewListEntriesUseCase(f.plans, f.entries, f.membership(), f.assembler, f.log).
		WithClock(func() time.Time { return june(2, 12, 0) })

	result, err := uc.ExecuteToday(context.Background(), ListEntriesQuery{PlanID: f.plan.ID(), MemberID: ownerID})

	require.NoError(t, err)
	require.Len(t, result, 2)
	assert.Equal(t, spansMidnight.ID(), result[0].ID)
	assert.Equal(t, morning.ID(), result[1].ID)
}

func TestListEntriesUseCase_ExecuteTodayEmpty(t *testing.T) {
	f := newFixture(t)
	f.seedEntry(t, june(1, 9, 0), june(1, 10, 0))
	uc := NewListEntriesUseCase(f.plans, f.entries, f.membership(), f.assembler, f.log).WithClock(clock)

	result, err := uc.ExecuteToday(context.Background(), ListEntriesQuery{PlanID: f.plan.ID(), MemberID: ownerID})

	require.NoError(t, err)
	assert.NotNil(t, result)
	assert.Empty(t, result)
}

func TestDeleteEntryUseCase_Execute(t *testing.T) {
	ctx := context.Background()

	t.Run("accepted member deletes", func(t *testing.T) {
		f := newFixture(t)
		e := f.seedEntry(t, june(1, 9, 0), june(1, 10, 0))
		f.members.Seed(f.plan.ID(), memberID, vo.StatusAccepted)
		uc := NewDeleteEntryUseCase(f.plans, f.entries, f.membership(), f.tx, f.log)

		require.NoError(t, uc.Execute(ctx, DeleteEntryCommand{EntryID: e.ID(), MemberID: memberID}))
		assert.Zero(t, f.entries.Count())
	})

	t.Run("stranger is forbidden", func(t *testing.T) {
		f := newFixture(t)
		e := f.seedEntry(t, june(1, 9, 0), june(1, 10, 0))
		uc := NewDeleteEntryUseCase(f.plans, f.entries, f.membership(), f.tx, f.log)

		assert.ErrorIs(t, uc.Execute(ctx, DeleteEntryCommand{EntryID: e.ID(), MemberID: memberID}), plan.ErrNotAcceptedMember)
		assert.Equal(t, 1, f.entries.Count())
	})

	t.Run("missing entry", func(t *testing.T) {
		f := newFixture(t)
		uc := NewDeleteEntryUseCase(f.plans, f.entries, f.membership(), f.tx, f.log)

		assert.ErrorIs(t, uc.Execute(ctx, DeleteEntryCommand{EntryID: 3, MemberID: ownerID}), itinerary.ErrEntryNotFound)
	})
}

func TestDeleteEntryUseCase_RepeatedDelete(t *testing.T) {
	f := newFixture(t)
	e := f.seedEntry(t, june(1, 9, 0), june(1, 11, 0))
	uc := NewDeleteEntryUseCase(f.plans, f.entries, f.membership(), f.tx, f.log)
	ctx := context.Background()

	err := uc.Execute(ctx, DeleteEntryCommand{EntryID: e.ID(), MemberID: memberID})
	assert.ErrorIs(t, err, plan.ErrNotAcceptedMember)

	require.NoError(t, uc.Execute(ctx, DeleteEntryCommand{EntryID: e.ID(), MemberID: ownerID}))
	got, err := f.entries.GetByID(ctx, e.ID())
	require.NoError(t, err)
	assert.Nil(t, got)

	err = uc.Execute(ctx, DeleteEntryCommand{EntryID: e.ID(), MemberID: ownerID})
	assert.ErrorIs(t, err, itinerary.ErrEntryNotFound)
	assert.Equal(t, 3, f.tx.Calls)
}
