package handlers

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/tripline/tripline/internal/application/plan/usecases"
	"github.com/tripline/tripline/internal/shared/biztime"
	"github.com/tripline/tripline/internal/shared/errors"
	"github.com/tripline/tripline/internal/shared/logger"
	"github.com/tripline/tripline/internal/shared/utils"
)

type PlanHandler struct {
	createPlanUC   usecases.CreatePlanExecutor
	updatePlanUC   usecases.UpdatePlanExecutor
	deletePlanUC   usecases.DeletePlanExecutor
	getPlanUC      usecases.GetPlanExecutor
	listPlansUC    usecases.ListPlansExecutor
	getTodayPlanUC usecases.GetTodayPlanExecutor
	exportPlanUC   usecases.ExportPlanExecutor
	logger         logger.Interface
}

func NewPlanHandler(
	createPlanUC usecases.CreatePlanExecutor,
	updatePlanUC usecases.UpdatePlanExecutor,
	deletePlanUC usecases.DeletePlanExecutor,
	getPlanUC usecases.GetPlanExecutor,
	listPlansUC usecases.ListPlansExecutor,
	getTodayPlanUC usecases.GetTodayPlanExecutor,
	exportPlanUC usecases.ExportPlanExecutor,
	logger logger.Interface,
) *PlanHandler {
	return &PlanHandler{
		createPlanUC:   createPlanUC,
		updatePlanUC:   updatePlanUC,
		deletePlanUC:   deletePlanUC,
		getPlanUC:      getPlanUC,
		listPlansUC:    listPlansUC,
		getTodayPlanUC: getTodayPlanUC,
		exportPlanUC:   exportPlanUC,
		logger:         logger,
	}
}

type CreatePlanRequest struct {
	Title       string `json:"title" binding:"required,max=100" example:"Busan weekend"`
	Description string `json:"description" binding:"max=1000"`
	StartDate   string `json:"start_date" binding:"required,datetime=2006-01-02" example:"2026-06-01"`
	EndDate     string `json:"end_date" binding:"required,datetime=2006-01-02" example:"2026-06-03"`
}

type UpdatePlanRequest struct {
	Title       *string `json:"title" binding:"omitempty,max=100"`
	Description *string `json:"description" binding:"omitempty,max=1000"`
	StartDate   *string `json:"start_date" binding:"omitempty,datetime=2006-01-02"`
	EndDate     *string `json:"end_date" binding:"omitempty,datetime=2006-01-02"`
}

// CreatePlan creates a plan owned by the caller
// @Summary Create plan
// @Description Create a trip plan; the caller becomes its accepted owner
// @Tags Plans
// @Accept json
// @Produce json
// @Security Bearer
// @Param request body CreatePlanRequest true "Plan"
// @Success 201 {object} utils.APIResponse{data=dto.PlanDTO}
// @Failure 400 {object} utils.APIResponse
// @Failure 401 {object} utils.APIResponse
// @Router /plans [post]
func (h *PlanHandler) CreatePlan(c *gin.Context) {
	memberID, err := utils.GetMemberIDFromContext(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req CreatePlanRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for create plan", "error", err)
		utils.ErrorResponseWithError(c, utils.ValidationErrorFrom(err))
		return
	}

	start, end, err := parsePlanDates(req.StartDate, req.EndDate)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.createPlanUC.Execute(c.Request.Context(), usecases.CreatePlanCommand{
		OwnerID:     memberID,
		Title:       req.Title,
		Description: req.Description,
		StartDate:   start,
		EndDate:     end,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, result, "Plan created successfully")
}

// ListPlans lists plans owned by the caller
// @Summary List my plans
// @Tags Plans
// @Produce json
// @Security Bearer
// @Success 200 {object} utils.APIResponse{data=[]dto.PlanDTO}
// @Failure 401 {object} utils.APIResponse
// @Router /plans [get]
func (h *PlanHandler) ListPlans(c *gin.Context) {
	memberID, err := utils.GetMemberIDFromContext(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.listPlansUC.Execute(c.Request.Context(), usecases.ListPlansQuery{OwnerID: memberID})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}

// GetTodayPlan returns the caller's plan starting today
// @Summary Get today's plan
// @Tags Plans
// @Produce json
// @Security Bearer
// @Success 200 {object} utils.APIResponse{data=dto.PlanDTO}
// @Failure 404 {object} utils.APIResponse
// @Router /plans/today [get]
func (h *PlanHandler) GetTodayPlan(c *gin.Context) {
	memberID, err := utils.GetMemberIDFromContext(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.getTodayPlanUC.Execute(c.Request.Context(), usecases.GetTodayPlanQuery{OwnerID: memberID})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}

// GetPlan returns a plan with its members
// @Summary Get plan
// @Tags Plans
// @Produce json
// @Security Bearer
// @Param id path int true "Plan ID"
// @Success 200 {object} utils.APIResponse{data=dto.PlanDetailDTO}
// @Failure 403 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Router /plans/{id} [get]
func (h *PlanHandler) GetPlan(c *gin.Context) {
	memberID, planID, ok := memberAndPathID(c, "plan")
	if !ok {
		return
	}

	result, err := h.getPlanUC.Execute(c.Request.Context(), usecases.GetPlanQuery{PlanID: planID, CallerID: memberID})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}

// UpdatePlan edits a plan owned by the caller
// @Summary Update plan
// @Tags Plans
// @Accept json
// @Produce json
// @Security Bearer
// @Param id path int true "Plan ID"
// @Param request body UpdatePlanRequest true "Fields to change"
// @Success 200 {object} utils.APIResponse{data=dto.PlanDTO}
// @Failure 400 {object} utils.APIResponse
// @Failure 403 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Router /plans/{id} [patch]
func (h *PlanHandler) UpdatePlan(c *gin.Context) {
	memberID, planID, ok := memberAndPathID(c, "plan")
	if !ok {
		return
	}

	var req UpdatePlanRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for update plan",
			"plan_id", planID,
			"error", err)
		utils.ErrorResponseWithError(c, utils.ValidationErrorFrom(err))
		return
	}

	cmd := usecases.UpdatePlanCommand{
		PlanID:      planID,
		CallerID:    memberID,
		Title:       req.Title,
		Description: req.Description,
	}
	if req.StartDate != nil {
		start, err := parsePlanDate("start_date", *req.StartDate)
		if err != nil {
			utils.ErrorResponseWithError(c, err)
			return
		}
		cmd.StartDate = &start
	}
	if req.EndDate != nil {
		end, err := parsePlanDate("end_date", *req.EndDate)
		if err != nil {
			utils.ErrorResponseWithError(c, err)
			return
		}
		cmd.EndDate = &end
	}

	result, err := h.updatePlanUC.Execute(c.Request.Context(), cmd)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Plan updated successfully", result)
}

// DeletePlan deletes a plan with its memberships and entries
// @Summary Delete plan
// @Tags Plans
// @Security Bearer
// @Param id path int true "Plan ID"
// @Success 204
// @Failure 403 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Router /plans/{id} [delete]
func (h *PlanHandler) DeletePlan(c *gin.Context) {
	memberID, planID, ok := memberAndPathID(c, "plan")
	if !ok {
		return
	}

	if err := h.deletePlanUC.Execute(c.Request.Context(), usecases.DeletePlanCommand{PlanID: planID, CallerID: memberID}); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.NoContentResponse(c)
}

// ExportPlan downloads a plan and its entries
// @Summary Export plan
// @Tags Plans
// @Produce json
// @Produce application/yaml
// @Security Bearer
// @Param id path int true "Plan ID"
// @Param format query string false "json or yaml" Enums(json, yaml)
// @Success 200 {file} file
// @Failure 400 {object} utils.APIResponse
// @Failure 403 {object} utils.APIResponse
// @Router /plans/{id}/export [get]
func (h *PlanHandler) ExportPlan(c *gin.Context) {
	memberID, planID, ok := memberAndPathID(c, "plan")
	if !ok {
		return
	}

	result, err := h.exportPlanUC.Execute(c.Request.Context(), usecases.ExportPlanQuery{
		PlanID:   planID,
		CallerID: memberID,
		Format:   c.Query("format"),
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", result.Filename))
	c.Data(http.StatusOK, result.ContentType, result.Body)
}

func parsePlanDates(startRaw, endRaw string) (time.Time, time.Time, error) {
	start, err := parsePlanDate("start_date", startRaw)
	if err != nil {
		return time.Time{}, time.Time{}, err
	}
	end, err := parsePlanDate("end_date", endRaw)
	if err != nil {
		return time.Time{}, time.Time{}, err
	}
	return start, end, nil
}

func parsePlanDate(field, raw string) (time.Time, error) {
	t, err := biztime.ParseDateInBizTimezone(raw)
	if err != nil {
		return time.Time{}, errors.NewValidationError(field+" must be a date in YYYY-MM-DD format", err.Error())
	}
	return t, nil
}
