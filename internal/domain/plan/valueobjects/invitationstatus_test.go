package valueobjects

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestInvitationStatus_IsValid(t *testing.T) {
	for _, s := range []InvitationStatus{StatusPending, StatusAccepted, StatusDenied} {
		assert.True(t, s.IsValid(), s)
	}
	assert.False(t, InvitationStatus("pending").IsValid())
	assert.False(t, InvitationStatus("").IsValid())
}

func TestInvitationStatus_CanTransitionTo(t *testing.T) {
	tests := []struct {
		from InvitationStatus
		to   InvitationStatus
		want bool
	}{
		{StatusPending, StatusAccepted, true},
		{StatusPending, StatusDenied, true},
		{StatusPending, StatusPending, false},
		{StatusAccepted, StatusDenied, false},
		{StatusAccepted, StatusPending, false},
		{StatusDenied, StatusAccepted, false},
	}
	for _, tt := range tests {
		t.Run(string(tt.from)+"->"+string(tt.to), func(t *testing.T) {
			assert.Equal(t, tt.want, tt.from.CanTransitionTo(tt.to))
		})
	}
}

func TestInvitationStatus_IsTerminal(t *testing.T) {
	assert.False(t, StatusPending.IsTerminal())
	assert.True(t, StatusAccepted.IsTerminal())
	assert.True(t, StatusDenied.IsTerminal())
}
