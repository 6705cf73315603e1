package handlers

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tripline/tripline/internal/application/plan/dto"
	"github.com/tripline/tripline/internal/application/plan/usecases"
	"github.com/tripline/tripline/internal/domain/plan"
	"github.com/tripline/tripline/internal/interfaces/http/handlers/testutil"
	"github.com/tripline/tripline/internal/shared/logger"
)

// =====================================================================
// Mock use cases
// =====================================================================

type mockCreatePlanUC struct {
	got    usecases.CreatePlanCommand
	result *dto.PlanDTO
	err    error
}

func (m *mockCreatePlanUC) Execute(_ context.Context, cmd usecases.CreatePlanCommand) (*dto.PlanDTO, error) {
	m.got = cmd
	return m.result, m.err
}

type mockUpdatePlanUC struct {
	got    usecases.UpdatePlanCommand
	result *dto.PlanDTO
	err    error
}

func (m *mockUpdatePlanUC) Execute(_ context.Context, cmd usecases.UpdatePlanCommand) (*dto.PlanDTO, error) {
	m.got = cmd
	return m.result, m.err
}

type mockDeletePlanUC struct {
	got usecases.DeletePlanCommand
	err error
}

func (m *mockDeletePlanUC) Execute(_ context.Context, cmd usecases.DeletePlanCommand) error {
	m.got = cmd
	return m.err
}

type mockGetPlanUC struct {
	got    usecases.GetPlanQuery
	result *dto.PlanDetailDTO
	err    error
}

func (m *mockGetPlanUC) Execute(_ context.Context, q usecases.GetPlanQuery) (*dto.PlanDetailDTO, error) {
	m.got = q
	return m.result, m.err
}

type mockListPlansUC struct {
	result []*dto.PlanDTO
	err    error
}

func (m *mockListPlansUC) Execute(context.Context, usecases.ListPlansQuery) ([]*dto.PlanDTO, error) {
	return m.result, m.err
}

type mockGetTodayPlanUC struct {
	result *dto.PlanDTO
	err    error
}

func (m *mockGetTodayPlanUC) Execute(context.Context, usecases.GetTodayPlanQuery) (*dto.PlanDTO, error) {
	return m.result, m.err
}

type mockExportPlanUC struct {
	got    usecases.ExportPlanQuery
	result *usecases.ExportPlanResult
	err    error
}

func (m *mockExportPlanUC) Execute(_ context.Context, q usecases.ExportPlanQuery) (*usecases.ExportPlanResult, error) {
	m.got = q
	return m.result, m.err
}

// =====================================================================
// Test helpers
// =====================================================================

type planMocks struct {
	create *mockCreatePlanUC
	update *mockUpdatePlanUC
	del    *mockDeletePlanUC
	get    *mockGetPlanUC
	list   *mockListPlansUC
	today  *mockGetTodayPlanUC
	export *mockExportPlanUC
}

func newTestPlanHandler() (*PlanHandler, *planMocks) {
	m := &planMocks{
		create: &mockCreatePlanUC{},
		update: &mockUpdatePlanUC{},
		del:    &mockDeletePlanUC{},
		get:    &mockGetPlanUC{},
		list:   &mockListPlansUC{},
		today:  &mockGetTodayPlanUC{},
		export: &mockExportPlanUC{},
	}
	h := NewPlanHandler(m.create, m.update, m.del, m.get, m.list, m.today, m.export, logger.NewNop())
	return h, m
}

func testPlanDTO() *dto.PlanDTO {
	return &dto.PlanDTO{
		ID:        1,
		OwnerID:   10,
		Title:     "Busan weekend",
		StartDate: time.Date(2026, 6, 1, 0, 0, 0, 0, time.UTC),
		EndDate:   time.Date(2026, 6, 3, 0, 0, 0, 0, time.UTC),
	}
}

// =====================================================================
// Tests
// =====================================================================

func TestPlanHandler_CreatePlan(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		h, m := newTestPlanHandler()
		m.create.result = testPlanDTO()

		c, w := testutil.NewTestContext(http.MethodPost, "/plans", CreatePlanRequest{
			Title:     "Busan weekend",
			StartDate: "2026-06-01",
			EndDate:   "2026-06-03",
		})
		testutil.SetAuthContext(c, 10)

		h.CreatePlan(c)

		assert.Equal(t, http.StatusCreated, w.Code)
		assert.Equal(t, uint(10), m.create.got.OwnerID)
		assert.Equal(t, time.Date(2026, 6, 1, 0, 0, 0, 0, time.UTC), m.create.got.StartDate)
		assert.Equal(t, time.Date(2026, 6, 3, 0, 0, 0, 0, time.UTC), m.create.got.EndDate)

		var resp testutil.APIResponse
		require.NoError(t, testutil.ParseResponse(w, &resp))
		assert.True(t, resp.Success)
	})

	t.Run("missing title", func(t *testing.T) {
		h, _ := newTestPlanHandler()
		c, w := testutil.NewTestContext(http.MethodPost, "/plans", map[string]string{
			"start_date": "2026-06-01",
			"end_date":   "2026-06-03",
		})
		testutil.SetAuthContext(c, 10)

		h.CreatePlan(c)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		var resp testutil.APIResponse
		require.NoError(t, testutil.ParseResponse(w, &resp))
		assert.Contains(t, resp.Error.Details, "title is required")
	})

	t.Run("malformed date", func(t *testing.T) {
		h, _ := newTestPlanHandler()
		c, w := testutil.NewTestContext(http.MethodPost, "/plans", CreatePlanRequest{
			Title:     "x",
			StartDate: "01/06/2026",
			EndDate:   "2026-06-03",
		})
		testutil.SetAuthContext(c, 10)

		h.CreatePlan(c)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("unauthenticated", func(t *testing.T) {
		h, _ := newTestPlanHandler()
		c, w := testutil.NewTestContext(http.MethodPost, "/plans", CreatePlanRequest{})

		h.CreatePlan(c)
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("domain error is rendered", func(t *testing.T) {
		h, m := newTestPlanHandler()
		m.create.err = plan.ErrPlanStartsInPast

		c, w := testutil.NewTestContext(http.MethodPost, "/plans", CreatePlanRequest{
			Title:     "x",
			StartDate: "2026-06-01",
			EndDate:   "2026-06-03",
		})
		testutil.SetAuthContext(c, 10)

		h.CreatePlan(c)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		var resp testutil.APIResponse
		require.NoError(t, testutil.ParseResponse(w, &resp))
		assert.Equal(t, "invalid_date_range", resp.Error.Type)
	})
}

func TestPlanHandler_UpdatePlan(t *testing.T) {
	h, m := newTestPlanHandler()
	m.update.result = testPlanDTO()

	c, w := testutil.NewTestContext(http.MethodPatch, "/plans/1", `{"title":"Renamed","end_date":"2026-06-04"}`)
	testutil.SetAuthContext(c, 10)
	testutil.SetURLParam(c, "id", "1")

	h.UpdatePlan(c)

	assert.Equal(t, http.StatusOK, w.Code)
	require.NotNil(t, m.update.got.Title)
	assert.Equal(t, "Renamed", *m.update.got.Title)
	assert.Nil(t, m.update.got.StartDate)
	require.NotNil(t, m.update.got.EndDate)
	assert.Equal(t, 4, m.update.got.EndDate.Day())
	assert.Equal(t, uint(10), m.update.got.CallerID)
}

func TestPlanHandler_UpdatePlan_Forbidden(t *testing.T) {
	h, m := newTestPlanHandler()
	m.update.err = plan.ErrNotPlanOwner

	c, w := testutil.NewTestContext(http.MethodPatch, "/plans/1", `{"title":"x"}`)
	testutil.SetAuthContext(c, 11)
	testutil.SetURLParam(c, "id", "1")

	h.UpdatePlan(c)
	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestPlanHandler_GetPlan(t *testing.T) {
	tests := []struct {
		name       string
		param      string
		err        error
		wantStatus int
	}{
		{name: "found", param: "1", wantStatus: http.StatusOK},
		{name: "bad id", param: "abc", wantStatus: http.StatusBadRequest},
		{name: "zero id", param: "0", wantStatus: http.StatusBadRequest},
		{name: "not found", param: "1", err: plan.ErrPlanNotFound, wantStatus: http.StatusNotFound},
		{name: "not a member", param: "1", err: plan.ErrNotPlanMember, wantStatus: http.StatusForbidden},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, m := newTestPlanHandler()
			m.get.result = &dto.PlanDetailDTO{PlanDTO: *testPlanDTO()}
			m.get.err = tt.err

			c, w := testutil.NewTestContext(http.MethodGet, "/plans/"+tt.param, nil)
			testutil.SetAuthContext(c, 10)
			testutil.SetURLParam(c, "id", tt.param)

			h.GetPlan(c)
			assert.Equal(t, tt.wantStatus, w.Code)
		})
	}
}

func TestPlanHandler_ListAndToday(t *testing.T) {
	h, m := newTestPlanHandler()
	m.list.result = []*dto.PlanDTO{testPlanDTO()}
	m.today.err = plan.ErrTodayPlanNotFound

	c, w := testutil.NewTestContext(http.MethodGet, "/plans", nil)
	testutil.SetAuthContext(c, 10)
	h.ListPlans(c)
	assert.Equal(t, http.StatusOK, w.Code)

	var resp testutil.APIResponse
	require.NoError(t, testutil.ParseResponse(w, &resp))
	var plans []dto.PlanDTO
	require.NoError(t, resp.DecodeData(&plans))
	assert.Len(t, plans, 1)

	c, w = testutil.NewTestContext(http.MethodGet, "/plans/today", nil)
	testutil.SetAuthContext(c, 10)
	h.GetTodayPlan(c)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestPlanHandler_DeletePlan(t *testing.T) {
	h, m := newTestPlanHandler()

	c, w := testutil.NewTestContext(http.MethodDelete, "/plans/5", nil)
	testutil.SetAuthContext(c, 10)
	testutil.SetURLParam(c, "id", "5")

	h.DeletePlan(c)
	c.Writer.WriteHeaderNow()

	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Equal(t, usecases.DeletePlanCommand{PlanID: 5, CallerID: 10}, m.del.got)
}

func TestPlanHandler_ExportPlan(t *testing.T) {
	h, m := newTestPlanHandler()
	m.export.result = &usecases.ExportPlanResult{
		Body:        []byte("plan:\n  id: 5\n"),
		ContentType: "application/yaml",
		Filename:    "plan-5.yaml",
	}

	c, w := testutil.NewTestContext(http.MethodGet, "/plans/5/export?format=yaml", nil)
	testutil.SetAuthContext(c, 10)
	testutil.SetURLParam(c, "id", "5")

	h.ExportPlan(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "yaml", m.export.got.Format)
	assert.Equal(t, "application/yaml", w.Header().Get("Content-Type"))
	assert.Equal(t, `attachment; filename="plan-5.yaml"`, w.Header().Get("Content-Disposition"))
	assert.Equal(t, "plan:\n  id: 5\n", w.Body.String())
}
