package plan

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tripline/tripline/internal/shared/errors"
)

var testNow = time.Date(2026, 5, 10, 10, 0, 0, 0, time.UTC)

func day(d int) time.Time {
	return time.Date(2026, 5, d, 0, 0, 0, 0, time.UTC)
}

func newValidPlan(t *testing.T) *Plan {
	t.Helper()
	p, err := NewPlan(1, "Busan weekend", "food tour", day(12), day(14), testNow)
	require.NoError(t, err)
	require.NoError(t, p.SetID(10))
	return p
}

func TestNewPlan_DateRules(t *testing.T) {
	tests := []struct {
		name    string
		start   time.Time
		end     time.Time
		wantErr error
	}{
		{name: "future window", start: day(12), end: day(14)},
		{name: "single instant", start: day(12), end: day(12)},
		{name: "starts today at midnight", start: day(10), end: day(11)},
		{name: "one second before midnight is tolerated", start: day(10).Add(-time.Second), end: day(11)},
		{name: "start after end", start: day(14), end: day(12), wantErr: ErrPlanDatesInverted},
		{name: "starts yesterday", start: day(9), end: day(11), wantErr: ErrPlanStartsInPast},
		{name: "ends at horizon", start: day(12), end: testNow.AddDate(10, 0, 0)},
		{name: "ends past horizon", start: day(12), end: testNow.AddDate(10, 0, 0).Add(time.Second), wantErr: ErrPlanEndsTooLate},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, err := NewPlan(1, "Trip", "", tt.start, tt.end, testNow)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.True(t, errors.IsType(err, errors.ErrorTypeInvalidDateRange))
				assert.Nil(t, p)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.start, p.StartDate())
		})
	}
}

func TestNewPlan_TextRules(t *testing.T) {
	_, err := NewPlan(1, "   ", "", day(12), day(13), testNow)
	assert.True(t, errors.IsValidationError(err))

	_, err = NewPlan(1, strings.Repeat("x", maxTitleLength+1), "", day(12), day(13), testNow)
	assert.True(t, errors.IsValidationError(err))

	_, err = NewPlan(0, "Trip", "", day(12), day(13), testNow)
	assert.Error(t, err)

	p, err := NewPlan(1, "  Seoul  ", "  palaces ", day(12), day(13), testNow)
	require.NoError(t, err)
	assert.Equal(t, "Seoul", p.Title())
	assert.Equal(t, "palaces", p.Description())
}

func TestPlan_Apply(t *testing.T) {
	t.Run("validates proposed values together", func(t *testing.T) {
		p := newValidPlan(t)
		newStart := day(20)
		newEnd := day(22)

		require.NoError(t, p.Apply(Changes{StartDate: &newStart, EndDate: &newEnd}, testNow))
		assert.Equal(t, newStart, p.StartDate())
		assert.Equal(t, newEnd, p.EndDate())
	})

	t.Run("start moved after existing end is rejected", func(t *testing.T) {
		p := newValidPlan(t)
		newStart := day(20)

		err := p.Apply(Changes{StartDate: &newStart}, testNow)
		assert.ErrorIs(t, err, ErrPlanDatesInverted)
		assert.Equal(t, day(12), p.StartDate(), "failed edit must not mutate")
	})

	t.Run("past start rejected at update time", func(t *testing.T) {
		p := newValidPlan(t)
		later := testNow.AddDate(0, 0, 5)

		err := p.Apply(Changes{}, later)
		assert.ErrorIs(t, err, ErrPlanStartsInPast)
	})

	t.Run("title only", func(t *testing.T) {
		p := newValidPlan(t)
		title := "Busan long weekend"
		require.NoError(t, p.Apply(Changes{Title: &title}, testNow))
		assert.Equal(t, title, p.Title())
		assert.Equal(t, "food tour", p.Description())
	})
}

func TestPlan_CoversAndStartsOn(t *testing.T) {
	p := newValidPlan(t)

	assert.True(t, p.Covers(day(12), day(14)))
	assert.True(t, p.Covers(day(12).Add(9*time.Hour), day(12).Add(11*time.Hour)))
	assert.False(t, p.Covers(day(11).Add(23*time.Hour), day(12).Add(time.Hour)))
	assert.False(t, p.Covers(day(13), day(14).Add(time.Minute)))

	assert.True(t, p.StartsOn(day(12)))
	assert.False(t, p.StartsOn(day(13)))
	assert.True(t, p.IsOwnedBy(1))
	assert.False(t, p.IsOwnedBy(2))
}

func TestPlan_SetID(t *testing.T) {
	p, err := NewPlan(1, "Trip", "", day(12), day(13), testNow)
	require.NoError(t, err)

	assert.Error(t, p.SetID(0))
	require.NoError(t, p.SetID(5))
	assert.Error(t, p.SetID(6))
	assert.Equal(t, uint(5), p.ID())
}
