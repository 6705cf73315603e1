package usecases

import (
	"context"

	"github.com/tripline/tripline/internal/application/collaboration/dto"
)

type InviteMemberExecutor interface {
	Execute(ctx context.Context, cmd InviteMemberCommand) (*dto.MembershipDTO, error)
}

type RespondInvitationExecutor interface {
	Execute(ctx context.Context, cmd RespondInvitationCommand) (*dto.MembershipDTO, error)
}

type ListInvitationsExecutor interface {
	Execute(ctx context.Context, query ListInvitationsQuery) ([]dto.InvitationDTO, error)
}
