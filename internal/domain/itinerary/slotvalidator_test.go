package itinerary

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tripline/tripline/internal/domain/plan"
)

// memRepo is an in-memory Repository sufficient for validator tests.
type memRepo struct {
	Repository
	entries []*Entry
}

func (r *memRepo) ExistsOverlapping(_ context.Context, planID uint, start, end time.Time, excludeID uint) (bool, error) {
	for _, e := range r.entries {
		if e.PlanID() == planID && e.ID() != excludeID && e.Intersects(start, end) {
			return true, nil
		}
	}
	return false, nil
}

func juneTrip(t *testing.T) *plan.Plan {
	t.Helper()
	p, err := plan.ReconstructPlan(1, 1, "Busan", "", at(1, 0, 0), at(3, 0, 0), testNow, testNow)
	require.NoError(t, err)
	return p
}

func existing(t *testing.T, id uint, start, end time.Time) *Entry {
	t.Helper()
	e, err := ReconstructEntry(id, 1, 7, 1, "x", "y", start, end, testNow, testNow)
	require.NoError(t, err)
	return e
}

func TestSlotValidator(t *testing.T) {
	p := juneTrip(t)
	repo := &memRepo{entries: []*Entry{existing(t, 100, at(1, 9, 0), at(1, 11, 0))}}
	v := NewSlotValidator(repo)
	ctx := context.Background()

	tests := []struct {
		name      string
		start     time.Time
		end       time.Time
		excludeID uint
		now       time.Time
		wantErr   error
	}{
		{name: "free slot", start: at(1, 11, 0), end: at(1, 12, 0), now: testNow},
		{name: "overlap", start: at(1, 10, 0), end: at(1, 12, 0), now: testNow, wantErr: ErrTimeConflict},
		{name: "self excluded", start: at(1, 9, 0), end: at(1, 9, 30), excludeID: 100, now: testNow},
		{name: "outside plan", start: at(4, 9, 0), end: at(4, 10, 0), now: testNow, wantErr: ErrOutsidePlan},
		{name: "end exactly at plan end", start: at(2, 23, 0), end: at(3, 0, 0), now: testNow},
		{name: "overlap reported before bounds", start: at(1, 10, 0), end: at(4, 10, 0), now: testNow, wantErr: ErrTimeConflict},
		{name: "beyond horizon", start: at(2, 9, 0), end: at(2, 10, 0), now: at(2, 8, 0).AddDate(-10, 0, 0), wantErr: ErrBeyondHorizon},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.Validate(ctx, p, tt.start, tt.end, tt.excludeID, tt.now)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			assert.NoError(t, err)
		})
	}
}
