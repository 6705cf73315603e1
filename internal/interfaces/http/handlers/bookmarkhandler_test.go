package handlers

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tripline/tripline/internal/application/bookmark/dto"
	"github.com/tripline/tripline/internal/application/bookmark/usecases"
	"github.com/tripline/tripline/internal/domain/bookmark"
	"github.com/tripline/tripline/internal/interfaces/http/handlers/testutil"
	"github.com/tripline/tripline/internal/shared/logger"
	"github.com/tripline/tripline/internal/shared/utils"
)

type mockCreateBookmarkUC struct {
	got    usecases.CreateBookmarkCommand
	result *dto.BookmarkDTO
	err    error
}

func (m *mockCreateBookmarkUC) Execute(_ context.Context, cmd usecases.CreateBookmarkCommand) (*dto.BookmarkDTO, error) {
	m.got = cmd
	return m.result, m.err
}

type mockListBookmarksUC struct {
	got    usecases.ListBookmarksQuery
	result *dto.BookmarkListDTO
	err    error
}

func (m *mockListBookmarksUC) Execute(_ context.Context, q usecases.ListBookmarksQuery) (*dto.BookmarkListDTO, error) {
	m.got = q
	return m.result, m.err
}

type mockDeleteBookmarkUC struct {
	got usecases.DeleteBookmarkCommand
	err error
}

func (m *mockDeleteBookmarkUC) Execute(_ context.Context, cmd usecases.DeleteBookmarkCommand) error {
	m.got = cmd
	return m.err
}

func TestBookmarkHandler_CreateBookmark(t *testing.T) {
	create := &mockCreateBookmarkUC{result: &dto.BookmarkDTO{ID: 1, MemberID: 3, PlaceID: 7}}
	h := NewBookmarkHandler(create, &mockListBookmarksUC{}, &mockDeleteBookmarkUC{}, logger.NewNop())

	c, w := testutil.NewTestContext(http.MethodPost, "/bookmarks", CreateBookmarkRequest{PlaceID: 7})
	testutil.SetAuthContext(c, 3)
	h.CreateBookmark(c)

	assert.Equal(t, http.StatusCreated, w.Code)
	assert.Equal(t, usecases.CreateBookmarkCommand{MemberID: 3, PlaceID: 7}, create.got)

	create.err = bookmark.ErrBookmarkExists
	c, w = testutil.NewTestContext(http.MethodPost, "/bookmarks", CreateBookmarkRequest{PlaceID: 7})
	testutil.SetAuthContext(c, 3)
	h.CreateBookmark(c)

	assert.Equal(t, http.StatusConflict, w.Code)
	var resp testutil.APIResponse
	require.NoError(t, testutil.ParseResponse(w, &resp))
	assert.Equal(t, "duplicate_resource", resp.Error.Type)
}

func TestBookmarkHandler_ListBookmarks(t *testing.T) {
	list := &mockListBookmarksUC{result: &dto.BookmarkListDTO{
		Items:    []*dto.BookmarkDTO{{ID: 2}, {ID: 1}},
		Total:    12,
		Page:     2,
		PageSize: 5,
	}}
	h := NewBookmarkHandler(&mockCreateBookmarkUC{}, list, &mockDeleteBookmarkUC{}, logger.NewNop())

	c, w := testutil.NewTestContext(http.MethodGet, "/bookmarks", nil)
	testutil.SetQueryParams(c, map[string]string{"page": "2", "page_size": "5"})
	testutil.SetAuthContext(c, 3)
	h.ListBookmarks(c)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, 2, list.got.Page.Page)
	assert.Equal(t, 5, list.got.Page.PageSize)

	var resp testutil.APIResponse
	require.NoError(t, testutil.ParseResponse(w, &resp))
	var page utils.ListResponse
	require.NoError(t, resp.DecodeData(&page))
	assert.Equal(t, int64(12), page.Total)
	assert.Equal(t, 3, page.TotalPages)
}

func TestBookmarkHandler_DeleteBookmark(t *testing.T) {
	del := &mockDeleteBookmarkUC{}
	h := NewBookmarkHandler(&mockCreateBookmarkUC{}, &mockListBookmarksUC{}, del, logger.NewNop())

	c, w := testutil.NewTestContext(http.MethodDelete, "/bookmarks/9", nil)
	testutil.SetAuthContext(c, 3)
	testutil.SetURLParam(c, "id", "9")
	h.DeleteBookmark(c)
	c.Writer.WriteHeaderNow()

	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Equal(t, usecases.DeleteBookmarkCommand{BookmarkID: 9, MemberID: 3}, del.got)

	del.err = bookmark.ErrNotOwner
	c, w = testutil.NewTestContext(http.MethodDelete, "/bookmarks/9", nil)
	testutil.SetAuthContext(c, 4)
	testutil.SetURLParam(c, "id", "9")
	h.DeleteBookmark(c)
	assert.Equal(t, http.StatusForbidden, w.Code)
}
