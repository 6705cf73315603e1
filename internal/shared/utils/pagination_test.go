package utils

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"github.com/tripline/tripline/internal/shared/constants"
)

func TestParsePagination(t *testing.T) {
	gin.SetMode(gin.TestMode)

	tests := []struct {
		name         string
		rawQuery     string
		wantPage     int
		wantPageSize int
	}{
		{name: "defaults", rawQuery: "", wantPage: constants.DefaultPage, wantPageSize: constants.DefaultPageSize},
		{name: "explicit", rawQuery: "page=3&page_size=5", wantPage: 3, wantPageSize: 5},
		{name: "capped page size", rawQuery: "page_size=1000", wantPage: 1, wantPageSize: constants.MaxPageSize},
		{name: "garbage falls back", rawQuery: "page=abc&page_size=-2", wantPage: 1, wantPageSize: constants.DefaultPageSize},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, _ := gin.CreateTestContext(httptest.NewRecorder())
			c.Request = httptest.NewRequest(http.MethodGet, "/bookmarks?"+tt.rawQuery, nil)

			got := ParsePagination(c)
			assert.Equal(t, tt.wantPage, got.Page)
			assert.Equal(t, tt.wantPageSize, got.PageSize)
		})
	}
}

func TestTotalPages(t *testing.T) {
	assert.Equal(t, 1, TotalPages(0, 20))
	assert.Equal(t, 1, TotalPages(20, 20))
	assert.Equal(t, 2, TotalPages(21, 20))
	assert.Equal(t, 1, TotalPages(5, 0))
}
