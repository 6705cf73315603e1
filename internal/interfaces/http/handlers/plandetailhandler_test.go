package handlers

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tripline/tripline/internal/application/itinerary/dto"
	"github.com/tripline/tripline/internal/application/itinerary/usecases"
	"github.com/tripline/tripline/internal/domain/itinerary"
	"github.com/tripline/tripline/internal/domain/place"
	"github.com/tripline/tripline/internal/interfaces/http/handlers/testutil"
	"github.com/tripline/tripline/internal/shared/logger"
)

type mockAddEntryUC struct {
	got    usecases.AddEntryCommand
	result *dto.PlanDetailDTO
	err    error
}

func (m *mockAddEntryUC) Execute(_ context.Context, cmd usecases.AddEntryCommand) (*dto.PlanDetailDTO, error) {
	m.got = cmd
	return m.result, m.err
}

type mockUpdateEntryUC struct {
	got    usecases.UpdateEntryCommand
	result *dto.PlanDetailDTO
	err    error
}

func (m *mockUpdateEntryUC) Execute(_ context.Context, cmd usecases.UpdateEntryCommand) (*dto.PlanDetailDTO, error) {
	m.got = cmd
	return m.result, m.err
}

type mockDeleteEntryUC struct {
	got usecases.DeleteEntryCommand
	err error
}

func (m *mockDeleteEntryUC) Execute(_ context.Context, cmd usecases.DeleteEntryCommand) error {
	m.got = cmd
	return m.err
}

type mockGetEntryUC struct {
	result *dto.PlanDetailDTO
	err    error
}

func (m *mockGetEntryUC) Execute(context.Context, usecases.GetEntryQuery) (*dto.PlanDetailDTO, error) {
	return m.result, m.err
}

type mockListEntriesUC struct {
	all, today []*dto.PlanDetailDTO
	calls      []string
	err        error
}

func (m *mockListEntriesUC) Execute(context.Context, usecases.ListEntriesQuery) ([]*dto.PlanDetailDTO, error) {
	m.calls = append(m.calls, "all")
	return m.all, m.err
}

func (m *mockListEntriesUC) ExecuteToday(context.Context, usecases.ListEntriesQuery) ([]*dto.PlanDetailDTO, error) {
	m.calls = append(m.calls, "today")
	return m.today, m.err
}

type detailMocks struct {
	add    *mockAddEntryUC
	update *mockUpdateEntryUC
	del    *mockDeleteEntryUC
	get    *mockGetEntryUC
	list   *mockListEntriesUC
}

func newTestPlanDetailHandler() (*PlanDetailHandler, *detailMocks) {
	m := &detailMocks{
		add:    &mockAddEntryUC{result: testEntryDTO()},
		update: &mockUpdateEntryUC{result: testEntryDTO()},
		del:    &mockDeleteEntryUC{},
		get:    &mockGetEntryUC{result: testEntryDTO()},
		list:   &mockListEntriesUC{},
	}
	return NewPlanDetailHandler(m.add, m.update, m.del, m.get, m.list, logger.NewNop()), m
}

func testEntryDTO() *dto.PlanDetailDTO {
	return &dto.PlanDetailDTO{
		ID:        4,
		PlanID:    1,
		PlaceID:   7,
		Title:     "Lunch",
		StartTime: time.Date(2026, 6, 1, 12, 0, 0, 0, time.UTC),
		EndTime:   time.Date(2026, 6, 1, 13, 0, 0, 0, time.UTC),
	}
}

func entryBody() map[string]any {
	return map[string]any{
		"plan_id":    1,
		"place_id":   7,
		"title":      "Lunch",
		"content":    "**noodles**",
		"start_time": "2026-06-01T12:00:00Z",
		"end_time":   "2026-06-01T13:00:00Z",
	}
}

func TestPlanDetailHandler_AddEntry(t *testing.T) {
	tests := []struct {
		name       string
		mutate     func(map[string]any)
		err        error
		wantStatus int
	}{
		{name: "created", wantStatus: http.StatusCreated},
		{name: "missing place", mutate: func(b map[string]any) { delete(b, "place_id") }, wantStatus: http.StatusBadRequest},
		{name: "missing content", mutate: func(b map[string]any) { delete(b, "content") }, wantStatus: http.StatusBadRequest},
		{name: "bad time", mutate: func(b map[string]any) { b["start_time"] = "noon" }, wantStatus: http.StatusBadRequest},
		{name: "overlap", err: itinerary.ErrTimeConflict, wantStatus: http.StatusConflict},
		{name: "outside plan", err: itinerary.ErrOutsidePlan, wantStatus: http.StatusBadRequest},
		{name: "unknown place", err: place.ErrPlaceNotFound, wantStatus: http.StatusNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, m := newTestPlanDetailHandler()
			m.add.err = tt.err

			body := entryBody()
			if tt.mutate != nil {
				tt.mutate(body)
			}
			c, w := testutil.NewTestContext(http.MethodPost, "/plan-details", body)
			testutil.SetAuthContext(c, 2)

			h.AddEntry(c)

			assert.Equal(t, tt.wantStatus, w.Code)
			if tt.wantStatus == http.StatusCreated {
				assert.Equal(t, uint(2), m.add.got.MemberID)
				assert.Equal(t, uint(7), m.add.got.PlaceID)
				assert.True(t, m.add.got.StartTime.Equal(time.Date(2026, 6, 1, 12, 0, 0, 0, time.UTC)))
			}
		})
	}
}

func TestPlanDetailHandler_UpdateEntry(t *testing.T) {
	h, m := newTestPlanDetailHandler()

	c, w := testutil.NewTestContext(http.MethodPatch, "/plan-details/4", entryBody())
	testutil.SetAuthContext(c, 2)
	testutil.SetURLParam(c, "id", "4")

	h.UpdateEntry(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, uint(4), m.update.got.EntryID)
	assert.Equal(t, uint(1), m.update.got.PlanID)

	m.update.err = itinerary.ErrEntryNotInPlan
	c, w = testutil.NewTestContext(http.MethodPatch, "/plan-details/4", entryBody())
	testutil.SetAuthContext(c, 2)
	testutil.SetURLParam(c, "id", "4")
	h.UpdateEntry(c)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestPlanDetailHandler_GetAndDelete(t *testing.T) {
	h, m := newTestPlanDetailHandler()

	c, w := testutil.NewTestContext(http.MethodGet, "/plan-details/4", nil)
	testutil.SetAuthContext(c, 2)
	testutil.SetURLParam(c, "id", "4")
	h.GetEntry(c)
	assert.Equal(t, http.StatusOK, w.Code)

	c, w = testutil.NewTestContext(http.MethodDelete, "/plan-details/4", nil)
	testutil.SetAuthContext(c, 2)
	testutil.SetURLParam(c, "id", "4")
	h.DeleteEntry(c)
	c.Writer.WriteHeaderNow()
	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Equal(t, usecases.DeleteEntryCommand{EntryID: 4, MemberID: 2}, m.del.got)

	m.del.err = itinerary.ErrEntryNotFound
	c, w = testutil.NewTestContext(http.MethodDelete, "/plan-details/4", nil)
	testutil.SetAuthContext(c, 2)
	testutil.SetURLParam(c, "id", "4")
	h.DeleteEntry(c)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestPlanDetailHandler_ListRoutesToTheRightQuery(t *testing.T) {
	h, m := newTestPlanDetailHandler()
	m.list.all = []*dto.PlanDetailDTO{testEntryDTO()}
	m.list.today = []*dto.PlanDetailDTO{}

	c, w := testutil.NewTestContext(http.MethodGet, "/plans/1/details", nil)
	testutil.SetAuthContext(c, 2)
	testutil.SetURLParam(c, "id", "1")
	h.ListEntries(c)
	require.Equal(t, http.StatusOK, w.Code)

	c, w = testutil.NewTestContext(http.MethodGet, "/plans/1/details/today", nil)
	testutil.SetAuthContext(c, 2)
	testutil.SetURLParam(c, "id", "1")
	h.ListTodayEntries(c)
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"success":true,"data":[]}`, w.Body.String())

	assert.Equal(t, []string{"all", "today"}, m.list.calls)
}
