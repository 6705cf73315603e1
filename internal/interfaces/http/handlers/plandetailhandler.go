package handlers

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/tripline/tripline/internal/application/itinerary/dto"
	"github.com/tripline/tripline/internal/application/itinerary/usecases"
	"github.com/tripline/tripline/internal/shared/logger"
	"github.com/tripline/tripline/internal/shared/utils"
)

type listEntriesFunc func(ctx context.Context, query usecases.ListEntriesQuery) ([]*dto.PlanDetailDTO, error)

type PlanDetailHandler struct {
	addEntryUC    usecases.AddEntryExecutor
	updateEntryUC usecases.UpdateEntryExecutor
	deleteEntryUC usecases.DeleteEntryExecutor
	getEntryUC    usecases.GetEntryExecutor
	listEntriesUC usecases.ListEntriesExecutor
	logger        logger.Interface
}

func NewPlanDetailHandler(
	addEntryUC usecases.AddEntryExecutor,
	updateEntryUC usecases.UpdateEntryExecutor,
	deleteEntryUC usecases.DeleteEntryExecutor,
	getEntryUC usecases.GetEntryExecutor,
	listEntriesUC usecases.ListEntriesExecutor,
	logger logger.Interface,
) *PlanDetailHandler {
	return &PlanDetailHandler{
		addEntryUC:    addEntryUC,
		updateEntryUC: updateEntryUC,
		deleteEntryUC: deleteEntryUC,
		getEntryUC:    getEntryUC,
		listEntriesUC: listEntriesUC,
		logger:        logger,
	}
}

// PlanDetailRequest carries an itinerary entry. Times are RFC 3339.
type PlanDetailRequest struct {
	PlanID    uint      `json:"plan_id" binding:"required,gt=0" example:"1"`
	PlaceID   uint      `json:"place_id" binding:"required,gt=0" example:"7"`
	Title     string    `json:"title" binding:"required,max=100" example:"Lunch at the market"`
	Content   string    `json:"content" binding:"required,max=5000" example:"Try the **grilled eel**"`
	StartTime time.Time `json:"start_time" binding:"required" example:"2026-06-01T12:00:00Z"`
	EndTime   time.Time `json:"end_time" binding:"required" example:"2026-06-01T13:30:00Z"`
}

// AddEntry schedules a new entry in a plan
// @Summary Add plan detail
// @Tags PlanDetails
// @Accept json
// @Produce json
// @Security Bearer
// @Param request body PlanDetailRequest true "Entry"
// @Success 201 {object} utils.APIResponse{data=dto.PlanDetailDTO}
// @Failure 400 {object} utils.APIResponse
// @Failure 403 {object} utils.APIResponse
// @Failure 409 {object} utils.APIResponse
// @Router /plan-details [post]
func (h *PlanDetailHandler) AddEntry(c *gin.Context) {
	memberID, err := utils.GetMemberIDFromContext(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req PlanDetailRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for add plan detail", "error", err)
		utils.ErrorResponseWithError(c, utils.ValidationErrorFrom(err))
		return
	}

	result, err := h.addEntryUC.Execute(c.Request.Context(), usecases.AddEntryCommand{
		PlanID:    req.PlanID,
		MemberID:  memberID,
		PlaceID:   req.PlaceID,
		Title:     req.Title,
		Content:   req.Content,
		StartTime: req.StartTime,
		EndTime:   req.EndTime,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, result, "Plan detail created successfully")
}

// GetEntry returns one entry with its place
// @Summary Get plan detail
// @Tags PlanDetails
// @Produce json
// @Security Bearer
// @Param id path int true "Plan detail ID"
// @Success 200 {object} utils.APIResponse{data=dto.PlanDetailDTO}
// @Failure 403 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Router /plan-details/{id} [get]
func (h *PlanDetailHandler) GetEntry(c *gin.Context) {
	memberID, entryID, ok := memberAndPathID(c, "plan detail")
	if !ok {
		return
	}

	result, err := h.getEntryUC.Execute(c.Request.Context(), usecases.GetEntryQuery{EntryID: entryID, MemberID: memberID})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}

// UpdateEntry replaces an entry's place, text and times
// @Summary Update plan detail
// @Tags PlanDetails
// @Accept json
// @Produce json
// @Security Bearer
// @Param id path int true "Plan detail ID"
// @Param request body PlanDetailRequest true "Entry"
// @Success 200 {object} utils.APIResponse{data=dto.PlanDetailDTO}
// @Failure 400 {object} utils.APIResponse
// @Failure 403 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Failure 409 {object} utils.APIResponse
// @Router /plan-details/{id} [patch]
func (h *PlanDetailHandler) UpdateEntry(c *gin.Context) {
	memberID, entryID, ok := memberAndPathID(c, "plan detail")
	if !ok {
		return
	}

	var req PlanDetailRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for update plan detail", "plan_detail_id", entryID, "error", err)
		utils.ErrorResponseWithError(c, utils.ValidationErrorFrom(err))
		return
	}

	result, err := h.updateEntryUC.Execute(c.Request.Context(), usecases.UpdateEntryCommand{
		EntryID:   entryID,
		PlanID:    req.PlanID,
		MemberID:  memberID,
		PlaceID:   req.PlaceID,
		Title:     req.Title,
		Content:   req.Content,
		StartTime: req.StartTime,
		EndTime:   req.EndTime,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Plan detail updated successfully", result)
}

// DeleteEntry removes an entry
// @Summary Delete plan detail
// @Tags PlanDetails
// @Security Bearer
// @Param id path int true "Plan detail ID"
// @Success 204
// @Failure 403 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Router /plan-details/{id} [delete]
func (h *PlanDetailHandler) DeleteEntry(c *gin.Context) {
	memberID, entryID, ok := memberAndPathID(c, "plan detail")
	if !ok {
		return
	}

	if err := h.deleteEntryUC.Execute(c.Request.Context(), usecases.DeleteEntryCommand{EntryID: entryID, MemberID: memberID}); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.NoContentResponse(c)
}

// ListEntries lists a plan's entries ordered by start time
// @Summary List plan details
// @Tags PlanDetails
// @Produce json
// @Security Bearer
// @Param id path int true "Plan ID"
// @Success 200 {object} utils.APIResponse{data=[]dto.PlanDetailDTO}
// @Failure 403 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Router /plans/{id}/details [get]
func (h *PlanDetailHandler) ListEntries(c *gin.Context) {
	h.list(c, h.listEntriesUC.Execute)
}

// ListTodayEntries lists a plan's entries that intersect today
// @Summary List today's plan details
// @Tags PlanDetails
// @Produce json
// @Security Bearer
// @Param id path int true "Plan ID"
// @Success 200 {object} utils.APIResponse{data=[]dto.PlanDetailDTO}
// @Failure 403 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Router /plans/{id}/details/today [get]
func (h *PlanDetailHandler) ListTodayEntries(c *gin.Context) {
	h.list(c, h.listEntriesUC.ExecuteToday)
}

func (h *PlanDetailHandler) list(c *gin.Context, run listEntriesFunc) {
	memberID, planID, ok := memberAndPathID(c, "plan")
	if !ok {
		return
	}

	result, err := run(c.Request.Context(), usecases.ListEntriesQuery{PlanID: planID, MemberID: memberID})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}
