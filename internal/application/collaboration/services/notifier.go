package services

import (
	"context"
	"time"
)

// InvitationNotice is what an invitee is told about a new invitation.
type InvitationNotice struct {
	Email     string
	PlanID    uint
	PlanTitle string
	StartDate time.Time
	EndDate   time.Time
	InviterID uint
	InviteeID uint
}

// InvitationNotifier delivers invitation notices out of band.
type InvitationNotifier interface {
	NotifyInvited(ctx context.Context, notice InvitationNotice) error
}

type noopNotifier struct{}

// NewNoopNotifier is used when outbound e-mail is disabled.
func NewNoopNotifier() InvitationNotifier { return noopNotifier{} }

func (noopNotifier) NotifyInvited(context.Context, InvitationNotice) error { return nil }
