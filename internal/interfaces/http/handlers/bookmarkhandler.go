package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/tripline/tripline/internal/application/bookmark/usecases"
	"github.com/tripline/tripline/internal/shared/logger"
	"github.com/tripline/tripline/internal/shared/utils"
)

type BookmarkHandler struct {
	createUC usecases.CreateBookmarkExecutor
	listUC   usecases.ListBookmarksExecutor
	deleteUC usecases.DeleteBookmarkExecutor
	logger   logger.Interface
}

func NewBookmarkHandler(
	createUC usecases.CreateBookmarkExecutor,
	listUC usecases.ListBookmarksExecutor,
	deleteUC usecases.DeleteBookmarkExecutor,
	logger logger.Interface,
) *BookmarkHandler {
	return &BookmarkHandler{
		createUC: createUC,
		listUC:   listUC,
		deleteUC: deleteUC,
		logger:   logger,
	}
}

type CreateBookmarkRequest struct {
	PlaceID uint `json:"place_id" binding:"required,gt=0" example:"7"`
}

// CreateBookmark bookmarks a place, reactivating a deleted bookmark if any
// @Summary Create bookmark
// @Tags Bookmarks
// @Accept json
// @Produce json
// @Security Bearer
// @Param request body CreateBookmarkRequest true "Place"
// @Success 201 {object} utils.APIResponse{data=dto.BookmarkDTO}
// @Failure 404 {object} utils.APIResponse
// @Failure 409 {object} utils.APIResponse
// @Router /bookmarks [post]
func (h *BookmarkHandler) CreateBookmark(c *gin.Context) {
	memberID, err := utils.GetMemberIDFromContext(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req CreateBookmarkRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for create bookmark", "error", err)
		utils.ErrorResponseWithError(c, utils.ValidationErrorFrom(err))
		return
	}

	result, err := h.createUC.Execute(c.Request.Context(), usecases.CreateBookmarkCommand{
		MemberID: memberID,
		PlaceID:  req.PlaceID,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, result, "Bookmark created successfully")
}

// ListBookmarks lists the caller's active bookmarks, newest first
// @Summary List bookmarks
// @Tags Bookmarks
// @Produce json
// @Security Bearer
// @Param page query int false "Page number" default(1)
// @Param page_size query int false "Page size" default(20)
// @Success 200 {object} utils.APIResponse{data=utils.ListResponse}
// @Router /bookmarks [get]
func (h *BookmarkHandler) ListBookmarks(c *gin.Context) {
	memberID, err := utils.GetMemberIDFromContext(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.listUC.Execute(c.Request.Context(), usecases.ListBookmarksQuery{
		MemberID: memberID,
		Page:     utils.ParsePagination(c),
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.ListSuccessResponse(c, result.Items, result.Total, result.Page, result.PageSize)
}

// DeleteBookmark soft-deletes one of the caller's bookmarks
// @Summary Delete bookmark
// @Tags Bookmarks
// @Security Bearer
// @Param id path int true "Bookmark ID"
// @Success 204
// @Failure 403 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Router /bookmarks/{id} [delete]
func (h *BookmarkHandler) DeleteBookmark(c *gin.Context) {
	memberID, bookmarkID, ok := memberAndPathID(c, "bookmark")
	if !ok {
		return
	}

	if err := h.deleteUC.Execute(c.Request.Context(), usecases.DeleteBookmarkCommand{
		BookmarkID: bookmarkID,
		MemberID:   memberID,
	}); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.NoContentResponse(c)
}
