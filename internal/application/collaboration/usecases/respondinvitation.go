package usecases

import (
	"context"
	"fmt"
	"time"

	"github.com/tripline/tripline/internal/application/collaboration/dto"
	"github.com/tripline/tripline/internal/domain/plan"
	"github.com/tripline/tripline/internal/shared/biztime"
	"github.com/tripline/tripline/internal/shared/db"
	"github.com/tripline/tripline/internal/shared/errors"
	"github.com/tripline/tripline/internal/shared/logger"
)

type Decision string

const (
	DecisionAccept Decision = "accept"
	DecisionDeny   Decision = "deny"
)

type RespondInvitationCommand struct {
	PlanID   uint
	MemberID uint
	Decision Decision
}

type RespondInvitationUseCase struct {
	memberRepo plan.MemberRepository
	txMgr      db.TxRunner
	logger     logger.Interface
	now        func() time.Time
}

func NewRespondInvitationUseCase(
	memberRepo plan.MemberRepository,
	txMgr db.TxRunner,
	logger logger.Interface,
) *RespondInvitationUseCase {
	return &RespondInvitationUseCase{
		memberRepo: memberRepo,
		txMgr:      txMgr,
		logger:     logger,
		now:        biztime.NowUTC,
	}
}

func (uc *RespondInvitationUseCase) WithClock(now func() time.Time) *RespondInvitationUseCase {
	uc.now = now
	return uc
}

// Execute moves the caller's PENDING membership to ACCEPTED or DENIED.
func (uc *RespondInvitationUseCase) Execute(ctx context.Context, cmd RespondInvitationCommand) (*dto.MembershipDTO, error) {
	uc.logger.Infow("executing respond invitation use case",
		"plan_id", cmd.PlanID,
		"member_id", cmd.MemberID,
		"decision", cmd.Decision,
	)

	var result *plan.PlanMember
	err := uc.txMgr.RunInTransaction(ctx, func(txCtx context.Context) error {
		m, err := uc.memberRepo.GetByPlanAndMember(txCtx, cmd.PlanID, cmd.MemberID)
		if err != nil {
			return fmt.Errorf("failed to load plan membership: %w", err)
		}
		if m == nil {
			return plan.ErrMembershipNotFound
		}

		now := uc.now()
		switch cmd.Decision {
		case DecisionAccept:
			err = m.Accept(now)
		case DecisionDeny:
			err = m.Deny(now)
		default:
			return errors.NewValidationError("unknown invitation decision", string(cmd.Decision))
		}
		if err != nil {
			return err
		}
		if err := uc.memberRepo.Update(txCtx, m); err != nil {
			return err
		}
		result = m
		return nil
	})
	if err != nil {
		uc.logger.Warnw("failed to respond to invitation", "plan_id", cmd.PlanID, "member_id", cmd.MemberID, "error", err)
		return nil, err
	}

	uc.logger.Infow("invitation resolved", "plan_id", cmd.PlanID, "member_id", cmd.MemberID, "status", result.Status())
	return dto.ToMembershipDTO(result), nil
}
