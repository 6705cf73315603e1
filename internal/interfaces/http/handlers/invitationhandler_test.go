package handlers

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tripline/tripline/internal/application/collaboration/dto"
	"github.com/tripline/tripline/internal/application/collaboration/usecases"
	"github.com/tripline/tripline/internal/domain/plan"
	"github.com/tripline/tripline/internal/interfaces/http/handlers/testutil"
	"github.com/tripline/tripline/internal/shared/logger"
)

type mockInviteUC struct {
	got    usecases.InviteMemberCommand
	result *dto.MembershipDTO
	err    error
}

func (m *mockInviteUC) Execute(_ context.Context, cmd usecases.InviteMemberCommand) (*dto.MembershipDTO, error) {
	m.got = cmd
	return m.result, m.err
}

type mockRespondUC struct {
	got    usecases.RespondInvitationCommand
	result *dto.MembershipDTO
	err    error
}

func (m *mockRespondUC) Execute(_ context.Context, cmd usecases.RespondInvitationCommand) (*dto.MembershipDTO, error) {
	m.got = cmd
	return m.result, m.err
}

type mockListInvitationsUC struct {
	result []dto.InvitationDTO
	err    error
}

func (m *mockListInvitationsUC) Execute(context.Context, usecases.ListInvitationsQuery) ([]dto.InvitationDTO, error) {
	return m.result, m.err
}

func newTestInvitationHandler() (*InvitationHandler, *mockInviteUC, *mockRespondUC, *mockListInvitationsUC) {
	invite := &mockInviteUC{result: &dto.MembershipDTO{ID: 3, PlanID: 1, MemberID: 2, Status: "PENDING"}}
	respond := &mockRespondUC{result: &dto.MembershipDTO{ID: 3, PlanID: 1, MemberID: 2, Status: "ACCEPTED"}}
	list := &mockListInvitationsUC{}
	return NewInvitationHandler(invite, respond, list, logger.NewNop()), invite, respond, list
}

func TestInvitationHandler_Invite(t *testing.T) {
	tests := []struct {
		name       string
		body       any
		err        error
		wantStatus int
	}{
		{name: "created", body: InviteMemberRequest{MemberID: 2, NotifyEmail: "friend@example.com"}, wantStatus: http.StatusCreated},
		{name: "missing member", body: map[string]any{}, wantStatus: http.StatusBadRequest},
		{name: "bad email", body: map[string]any{"member_id": 2, "notify_email": "nope"}, wantStatus: http.StatusBadRequest},
		{name: "duplicate", body: InviteMemberRequest{MemberID: 2}, err: plan.ErrAlreadyInvited, wantStatus: http.StatusConflict},
		{name: "inviter not accepted", body: InviteMemberRequest{MemberID: 2}, err: plan.ErrNotAcceptedMember, wantStatus: http.StatusForbidden},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, invite, _, _ := newTestInvitationHandler()
			invite.err = tt.err

			c, w := testutil.NewTestContext(http.MethodPost, "/plans/1/members", tt.body)
			testutil.SetAuthContext(c, 1)
			testutil.SetURLParam(c, "id", "1")

			h.Invite(c)

			assert.Equal(t, tt.wantStatus, w.Code)
			if tt.wantStatus == http.StatusCreated {
				assert.Equal(t, usecases.InviteMemberCommand{
					PlanID:      1,
					InviterID:   1,
					InviteeID:   2,
					NotifyEmail: "friend@example.com",
				}, invite.got)
			}
		})
	}
}

func TestInvitationHandler_AcceptAndDeny(t *testing.T) {
	h, _, respond, _ := newTestInvitationHandler()

	c, w := testutil.NewTestContext(http.MethodPatch, "/plans/1/members/accept", nil)
	testutil.SetAuthContext(c, 2)
	testutil.SetURLParam(c, "id", "1")
	h.Accept(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, usecases.DecisionAccept, respond.got.Decision)
	assert.Equal(t, uint(2), respond.got.MemberID)

	respond.err = plan.ErrInvitationResolved
	c, w = testutil.NewTestContext(http.MethodPatch, "/plans/1/members/deny", nil)
	testutil.SetAuthContext(c, 2)
	testutil.SetURLParam(c, "id", "1")
	h.Deny(c)

	assert.Equal(t, http.StatusConflict, w.Code)
	assert.Equal(t, usecases.DecisionDeny, respond.got.Decision)
}

func TestInvitationHandler_ListMyInvitations(t *testing.T) {
	h, _, _, list := newTestInvitationHandler()
	list.result = []dto.InvitationDTO{{MembershipID: 3, PlanID: 1, PlanTitle: "Busan", Status: "PENDING"}}

	c, w := testutil.NewTestContext(http.MethodGet, "/invitations", nil)
	testutil.SetAuthContext(c, 2)
	h.ListMyInvitations(c)

	require.Equal(t, http.StatusOK, w.Code)
	var resp testutil.APIResponse
	require.NoError(t, testutil.ParseResponse(w, &resp))
	var got []dto.InvitationDTO
	require.NoError(t, resp.DecodeData(&got))
	require.Len(t, got, 1)
	assert.Equal(t, "Busan", got[0].PlanTitle)
}
