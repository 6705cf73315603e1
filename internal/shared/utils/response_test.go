package utils

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tripline/tripline/internal/shared/errors"
)

func renderError(t *testing.T, err error) (int, APIResponse) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)

	ErrorResponseWithError(c, err)

	var body APIResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	return w.Code, body
}

func TestErrorResponseWithError(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantType   string
	}{
		{"time conflict", errors.NewTimeConflictError("entry overlaps"), http.StatusConflict, "time_conflict"},
		{"invalid range", errors.NewInvalidDateRangeError("outside plan"), http.StatusBadRequest, "invalid_date_range"},
		{"wrapped forbidden", fmt.Errorf("ctx: %w", errors.NewForbiddenError("not a member")), http.StatusForbidden, "forbidden"},
		{"plain error hidden", fmt.Errorf("dial tcp: refused"), http.StatusInternalServerError, "internal_error"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			status, body := renderError(t, tt.err)
			assert.Equal(t, tt.wantStatus, status)
			assert.False(t, body.Success)
			require.NotNil(t, body.Error)
			assert.Equal(t, tt.wantType, body.Error.Type)
			assert.NotContains(t, body.Error.Message, "dial tcp")
		})
	}
}

type createBookmarkBody struct {
	PlaceID uint   `json:"place_id" validate:"required"`
	Note    string `json:"note" validate:"max=5"`
}

func TestValidateStruct_UsesJSONNames(t *testing.T) {
	err := ValidateStruct(createBookmarkBody{Note: "too long"})
	require.Error(t, err)

	appErr := errors.GetAppError(err)
	require.NotNil(t, appErr)
	assert.Equal(t, errors.ErrorTypeValidation, appErr.Type)
	assert.Contains(t, appErr.Details, "place_id is required")
	assert.Contains(t, appErr.Details, "note must be at most 5 characters long")

	assert.NoError(t, ValidateStruct(createBookmarkBody{PlaceID: 1}))
}
