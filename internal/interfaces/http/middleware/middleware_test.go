package middleware

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tripline/tripline/internal/infrastructure/auth"
	"github.com/tripline/tripline/internal/infrastructure/ratelimit"
	"github.com/tripline/tripline/internal/shared/constants"
	"github.com/tripline/tripline/internal/shared/logger"
	"github.com/tripline/tripline/internal/shared/utils"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func echoMember(c *gin.Context) {
	id, err := utils.GetMemberIDFromContext(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"member_id": id, "role": utils.GetRoleFromContext(c)})
}

func serve(r *gin.Engine, method, path string, header map[string]string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, nil)
	for k, v := range header {
		req.Header.Set(k, v)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestAuthMiddleware_RequireAuth(t *testing.T) {
	jwtSvc := auth.NewJWTService("secret", "tripline", 5)
	valid, err := jwtSvc.Generate(9, auth.RoleMember)
	require.NoError(t, err)

	expired, err := auth.NewJWTService("secret", "tripline", 5).
		WithClock(func() time.Time { return time.Now().Add(-time.Hour) }).
		Generate(9, auth.RoleMember)
	require.NoError(t, err)

	r := gin.New()
	r.GET("/me", NewAuthMiddleware(jwtSvc, logger.NewNop()).RequireAuth(), echoMember)

	tests := []struct {
		name       string
		header     string
		wantStatus int
		wantBody   string
	}{
		{name: "missing header", wantStatus: http.StatusUnauthorized, wantBody: "missing authorization token"},
		{name: "wrong scheme", header: "Basic abc", wantStatus: http.StatusUnauthorized, wantBody: "invalid authorization header format"},
		{name: "garbage token", header: "Bearer nope", wantStatus: http.StatusUnauthorized, wantBody: "invalid token"},
		{name: "expired token", header: "Bearer " + expired, wantStatus: http.StatusUnauthorized, wantBody: "token expired"},
		{name: "valid token", header: "Bearer " + valid, wantStatus: http.StatusOK, wantBody: `"member_id":9`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			headers := map[string]string{}
			if tt.header != "" {
				headers[constants.HeaderAuthorization] = tt.header
			}
			w := serve(r, http.MethodGet, "/me", headers)
			assert.Equal(t, tt.wantStatus, w.Code)
			assert.Contains(t, w.Body.String(), tt.wantBody)
		})
	}
}

type stubEnforcer struct {
	allowed bool
	err     error
	got     []string
}

func (s *stubEnforcer) Enforce(role, path, method string) (bool, error) {
	s.got = []string{role, path, method}
	return s.allowed, s.err
}

func withMember(id uint, role string) gin.HandlerFunc {
	return func(c *gin.Context) {
		if id != 0 {
			utils.SetMemberContext(c, id, role)
		}
		c.Next()
	}
}

func TestPermissionMiddleware(t *testing.T) {
	tests := []struct {
		name       string
		memberID   uint
		enforcer   *stubEnforcer
		wantStatus int
	}{
		{name: "allowed", memberID: 1, enforcer: &stubEnforcer{allowed: true}, wantStatus: http.StatusOK},
		{name: "denied", memberID: 1, enforcer: &stubEnforcer{}, wantStatus: http.StatusForbidden},
		{name: "enforcer error", memberID: 1, enforcer: &stubEnforcer{err: errors.New("boom")}, wantStatus: http.StatusInternalServerError},
		{name: "unauthenticated", enforcer: &stubEnforcer{allowed: true}, wantStatus: http.StatusUnauthorized},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := gin.New()
			pm := NewPermissionMiddleware(tt.enforcer, logger.NewNop())
			r.GET("/plans/:id", withMember(tt.memberID, constants.RoleMember), pm.RequireRoutePermission(), echoMember)

			w := serve(r, http.MethodGet, "/plans/42", nil)
			assert.Equal(t, tt.wantStatus, w.Code)
			if tt.memberID != 0 {
				assert.Equal(t, []string{"member", "/plans/42", "GET"}, tt.enforcer.got)
			}
		})
	}
}

type stubLimiter struct {
	results []ratelimit.Result
	err     error
	keys    []string
}

func (s *stubLimiter) Allow(_ context.Context, key string) (ratelimit.Result, error) {
	s.keys = append(s.keys, key)
	if s.err != nil {
		return ratelimit.Result{}, s.err
	}
	res := s.results[0]
	s.results = s.results[1:]
	return res, nil
}

func (s *stubLimiter) Reset(context.Context, string) error { return nil }

func TestRateLimiter_Limit(t *testing.T) {
	limiter := &stubLimiter{results: []ratelimit.Result{
		{Allowed: true, Limit: 2, Remaining: 1},
		{Allowed: false, Limit: 2},
	}}
	r := gin.New()
	r.GET("/plans", withMember(5, constants.RoleMember), NewRateLimiter(limiter, logger.NewNop()).Limit(), echoMember)

	w := serve(r, http.MethodGet, "/plans", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "1", w.Header().Get("X-RateLimit-Remaining"))

	w = serve(r, http.MethodGet, "/plans", nil)
	assert.Equal(t, http.StatusTooManyRequests, w.Code)
	assert.Equal(t, []string{"member:5", "member:5"}, limiter.keys)
}

func TestRateLimiter_FailsOpen(t *testing.T) {
	limiter := &stubLimiter{err: errors.New("redis down")}
	r := gin.New()
	r.GET("/plans", NewRateLimiter(limiter, logger.NewNop()).Limit(), func(c *gin.Context) { c.Status(http.StatusOK) })

	w := serve(r, http.MethodGet, "/plans", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	require.Len(t, limiter.keys, 1)
	assert.Contains(t, limiter.keys[0], "ip:")
}

func TestRequestID(t *testing.T) {
	r := gin.New()
	r.Use(RequestID())
	r.GET("/", func(c *gin.Context) {
		c.String(http.StatusOK, c.GetString(constants.ContextKeyRequestID))
	})

	w := serve(r, http.MethodGet, "/", map[string]string{constants.HeaderXRequestID: "req-123"})
	assert.Equal(t, "req-123", w.Header().Get(constants.HeaderXRequestID))
	assert.Equal(t, "req-123", w.Body.String())

	w = serve(r, http.MethodGet, "/", nil)
	generated := w.Header().Get(constants.HeaderXRequestID)
	assert.Len(t, generated, 36)
	assert.Equal(t, generated, w.Body.String())
}

func TestRecovery(t *testing.T) {
	r := gin.New()
	r.Use(Recovery(logger.NewNop()))
	r.GET("/panic", func(*gin.Context) { panic("kaboom") })

	w := serve(r, http.MethodGet, "/panic", nil)
	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Contains(t, w.Body.String(), constants.ErrMsgInternalServerError)
}

func TestCORS(t *testing.T) {
	r := gin.New()
	r.Use(CORS([]string{"https://app.example"}))
	r.GET("/plans", func(c *gin.Context) { c.Status(http.StatusOK) })

	w := serve(r, http.MethodOptions, "/plans", map[string]string{"Origin": "https://app.example"})
	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Equal(t, "https://app.example", w.Header().Get("Access-Control-Allow-Origin"))

	w = serve(r, http.MethodGet, "/plans", map[string]string{"Origin": "https://evil.example"})
	assert.Empty(t, w.Header().Get("Access-Control-Allow-Origin"))
}
