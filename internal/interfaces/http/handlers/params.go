package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/tripline/tripline/internal/shared/utils"
)

// memberAndPathID resolves the caller and the ":id" path parameter, writing
// the error response itself when either is missing.
func memberAndPathID(c *gin.Context, entity string) (uint, uint, bool) {
	memberID, err := utils.GetMemberIDFromContext(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return 0, 0, false
	}
	id, err := utils.ParseIDParam(c, "id", entity)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return 0, 0, false
	}
	return memberID, id, true
}
