package usecases

import (
	"context"
	"fmt"
	"time"

	"github.com/tripline/tripline/internal/application/collaboration/dto"
	"github.com/tripline/tripline/internal/application/collaboration/services"
	"github.com/tripline/tripline/internal/domain/plan"
	"github.com/tripline/tripline/internal/shared/biztime"
	"github.com/tripline/tripline/internal/shared/db"
	"github.com/tripline/tripline/internal/shared/errors"
	"github.com/tripline/tripline/internal/shared/goroutine"
	"github.com/tripline/tripline/internal/shared/logger"
)

const notifyTimeout = 30 * time.Second

type InviteMemberCommand struct {
	PlanID    uint
	InviterID uint
	InviteeID uint
	// NotifyEmail, when set, receives an invitation e-mail after commit.
	NotifyEmail string
}

type InviteMemberUseCase struct {
	planRepo   plan.Repository
	memberRepo plan.MemberRepository
	membership *services.MembershipService
	notifier   services.InvitationNotifier
	txMgr      db.TxRunner
	logger     logger.Interface
	now        func() time.Time
	async      bool
}

func NewInviteMemberUseCase(
	planRepo plan.Repository,
	memberRepo plan.MemberRepository,
	membership *services.MembershipService,
	notifier services.InvitationNotifier,
	txMgr db.TxRunner,
	logger logger.Interface,
) *InviteMemberUseCase {
	return &InviteMemberUseCase{
		planRepo:   planRepo,
		memberRepo: memberRepo,
		membership: membership,
		notifier:   notifier,
		txMgr:      txMgr,
		logger:     logger,
		now:        biztime.NowUTC,
		async:      true,
	}
}

func (uc *InviteMemberUseCase) WithClock(now func() time.Time) *InviteMemberUseCase {
	uc.now = now
	return uc
}

// WithSyncNotify delivers notices on the calling goroutine.
func (uc *InviteMemberUseCase) WithSyncNotify() *InviteMemberUseCase {
	uc.async = false
	return uc
}

func (uc *InviteMemberUseCase) Execute(ctx context.Context, cmd InviteMemberCommand) (*dto.MembershipDTO, error) {
	uc.logger.Infow("executing invite member use case",
		"plan_id", cmd.PlanID,
		"inviter_id", cmd.InviterID,
		"invitee_id", cmd.InviteeID,
	)

	if cmd.InviteeID == 0 {
		return nil, errors.NewValidationError("member ID is required")
	}

	var (
		invited *plan.PlanMember
		target  *plan.Plan
	)
	err := uc.txMgr.RunInTransaction(ctx, func(txCtx context.Context) error {
		p, err := uc.planRepo.GetByID(txCtx, cmd.PlanID)
		if err != nil {
			return fmt.Errorf("failed to load plan: %w", err)
		}
		if p == nil {
			return plan.ErrPlanNotFound
		}
		if err := uc.membership.RequireAccepted(txCtx, p.ID(), cmd.InviterID); err != nil {
			return err
		}

		existing, err := uc.memberRepo.GetByPlanAndMember(txCtx, p.ID(), cmd.InviteeID)
		if err != nil {
			return fmt.Errorf("failed to load plan membership: %w", err)
		}
		if existing != nil {
			return plan.ErrAlreadyInvited
		}

		m, err := plan.NewInvitation(p.ID(), cmd.InviteeID, uc.now())
		if err != nil {
			return errors.AsAppError(err)
		}
		if err := uc.memberRepo.Create(txCtx, m); err != nil {
			return err
		}
		invited, target = m, p
		return nil
	})
	if err != nil {
		uc.logger.Warnw("failed to invite member", "plan_id", cmd.PlanID, "invitee_id", cmd.InviteeID, "error", err)
		return nil, err
	}

	uc.logger.Infow("member invited successfully", "plan_id", target.ID(), "invitee_id", cmd.InviteeID)

	if cmd.NotifyEmail != "" {
		uc.notify(services.InvitationNotice{
			Email:     cmd.NotifyEmail,
			PlanID:    target.ID(),
			PlanTitle: target.Title(),
			StartDate: target.StartDate(),
			EndDate:   target.EndDate(),
			InviterID: cmd.InviterID,
			InviteeID: cmd.InviteeID,
		})
	}
	return dto.ToMembershipDTO(invited), nil
}

// notify never affects the committed invitation; failures are only logged.
func (uc *InviteMemberUseCase) notify(notice services.InvitationNotice) {
	send := func() error {
		ctx, cancel := context.WithTimeout(context.Background(), notifyTimeout)
		defer cancel()
		return uc.notifier.NotifyInvited(ctx, notice)
	}
	if uc.async {
		goroutine.Go(uc.logger.With("plan_id", notice.PlanID, "invitee_id", notice.InviteeID), "invitation-notice", send)
		return
	}
	if err := goroutine.Run("invitation-notice", send); err != nil {
		uc.logger.Warnw("failed to send invitation notice",
			"plan_id", notice.PlanID,
			"invitee_id", notice.InviteeID,
			"error", err,
		)
	}
}
