// Package services holds the membership rules shared by every plan-scoped
// operation.
package services

import (
	"context"
	"fmt"

	"github.com/tripline/tripline/internal/domain/plan"
)

// MembershipService answers "may this member act on this plan". It never
// mutates state.
type MembershipService struct {
	members plan.MemberRepository
}

func NewMembershipService(members plan.MemberRepository) *MembershipService {
	return &MembershipService{members: members}
}

// IsAuthorized is true iff the member holds an ACCEPTED membership.
func (s *MembershipService) IsAuthorized(ctx context.Context, planID, memberID uint) (bool, error) {
	ok, err := s.members.ExistsAccepted(ctx, planID, memberID)
	if err != nil {
		return false, fmt.Errorf("failed to check plan membership: %w", err)
	}
	return ok, nil
}

// RequireAccepted returns plan.ErrNotAcceptedMember unless IsAuthorized.
func (s *MembershipService) RequireAccepted(ctx context.Context, planID, memberID uint) error {
	ok, err := s.IsAuthorized(ctx, planID, memberID)
	if err != nil {
		return err
	}
	if !ok {
		return plan.ErrNotAcceptedMember
	}
	return nil
}

// RequireAnyMembership admits invitees in any state, so a pending invitee
// can look at the plan before answering.
func (s *MembershipService) RequireAnyMembership(ctx context.Context, planID, memberID uint) error {
	m, err := s.members.GetByPlanAndMember(ctx, planID, memberID)
	if err != nil {
		return fmt.Errorf("failed to load plan membership: %w", err)
	}
	if m == nil {
		return plan.ErrNotPlanMember
	}
	return nil
}
