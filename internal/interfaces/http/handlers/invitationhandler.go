package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/tripline/tripline/internal/application/collaboration/usecases"
	"github.com/tripline/tripline/internal/shared/logger"
	"github.com/tripline/tripline/internal/shared/utils"
)

type InvitationHandler struct {
	inviteUC  usecases.InviteMemberExecutor
	respondUC usecases.RespondInvitationExecutor
	listUC    usecases.ListInvitationsExecutor
	logger    logger.Interface
}

func NewInvitationHandler(
	inviteUC usecases.InviteMemberExecutor,
	respondUC usecases.RespondInvitationExecutor,
	listUC usecases.ListInvitationsExecutor,
	logger logger.Interface,
) *InvitationHandler {
	return &InvitationHandler{
		inviteUC:  inviteUC,
		respondUC: respondUC,
		listUC:    listUC,
		logger:    logger,
	}
}

type InviteMemberRequest struct {
	MemberID    uint   `json:"member_id" binding:"required,gt=0" example:"2"`
	NotifyEmail string `json:"notify_email" binding:"omitempty,email" example:"friend@example.com"`
}

// Invite adds a pending membership to a plan
// @Summary Invite member
// @Description The caller must be an accepted member of the plan
// @Tags Invitations
// @Accept json
// @Produce json
// @Security Bearer
// @Param id path int true "Plan ID"
// @Param request body InviteMemberRequest true "Invitee"
// @Success 201 {object} utils.APIResponse{data=dto.MembershipDTO}
// @Failure 403 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Failure 409 {object} utils.APIResponse
// @Router /plans/{id}/members [post]
func (h *InvitationHandler) Invite(c *gin.Context) {
	memberID, planID, ok := memberAndPathID(c, "plan")
	if !ok {
		return
	}

	var req InviteMemberRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for invite member", "plan_id", planID, "error", err)
		utils.ErrorResponseWithError(c, utils.ValidationErrorFrom(err))
		return
	}

	result, err := h.inviteUC.Execute(c.Request.Context(), usecases.InviteMemberCommand{
		PlanID:      planID,
		InviterID:   memberID,
		InviteeID:   req.MemberID,
		NotifyEmail: req.NotifyEmail,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, result, "Invitation sent successfully")
}

// Accept accepts the caller's pending invitation
// @Summary Accept invitation
// @Tags Invitations
// @Produce json
// @Security Bearer
// @Param id path int true "Plan ID"
// @Success 200 {object} utils.APIResponse{data=dto.MembershipDTO}
// @Failure 404 {object} utils.APIResponse
// @Failure 409 {object} utils.APIResponse
// @Router /plans/{id}/members/accept [patch]
func (h *InvitationHandler) Accept(c *gin.Context) {
	h.respond(c, usecases.DecisionAccept, "Invitation accepted")
}

// Deny declines the caller's pending invitation
// @Summary Deny invitation
// @Tags Invitations
// @Produce json
// @Security Bearer
// @Param id path int true "Plan ID"
// @Success 200 {object} utils.APIResponse{data=dto.MembershipDTO}
// @Failure 404 {object} utils.APIResponse
// @Failure 409 {object} utils.APIResponse
// @Router /plans/{id}/members/deny [patch]
func (h *InvitationHandler) Deny(c *gin.Context) {
	h.respond(c, usecases.DecisionDeny, "Invitation denied")
}

func (h *InvitationHandler) respond(c *gin.Context, decision usecases.Decision, message string) {
	memberID, planID, ok := memberAndPathID(c, "plan")
	if !ok {
		return
	}

	result, err := h.respondUC.Execute(c.Request.Context(), usecases.RespondInvitationCommand{
		PlanID:   planID,
		MemberID: memberID,
		Decision: decision,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, message, result)
}

// ListMyInvitations lists every membership row of the caller
// @Summary List my invitations
// @Tags Invitations
// @Produce json
// @Security Bearer
// @Success 200 {object} utils.APIResponse{data=[]dto.InvitationDTO}
// @Router /invitations [get]
func (h *InvitationHandler) ListMyInvitations(c *gin.Context) {
	memberID, err := utils.GetMemberIDFromContext(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.listUC.Execute(c.Request.Context(), usecases.ListInvitationsQuery{MemberID: memberID})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}
