package permission

import (
	"fmt"
	"sync"

	"github.com/casbin/casbin/v2"
	"github.com/casbin/casbin/v2/model"
	gormadapter "github.com/casbin/gorm-adapter/v3"
	"gorm.io/gorm"

	"github.com/tripline/tripline/internal/shared/logger"
)

// DefaultModel matches request paths against policy patterns with keyMatch2,
// so "/plans/:id" covers "/plans/42". A "*" action allows every method.
const DefaultModel = `
[request_definition]
r = sub, obj, act

[policy_definition]
p = sub, obj, act

[role_definition]
g = _, _

[policy_effect]
e = some(where (p.eft == allow))

[matchers]
m = g(r.sub, p.sub) && keyMatch2(r.obj, p.obj) && (r.act == p.act || p.act == "*")
`

// RoutePolicies grants members every itinerary route. Admins inherit them.
var RoutePolicies = [][]string{
	{"member", "/plans", "GET"},
	{"member", "/plans", "POST"},
	{"member", "/plans/today", "GET"},
	{"member", "/plans/:id", "GET"},
	{"member", "/plans/:id", "PATCH"},
	{"member", "/plans/:id", "DELETE"},
	{"member", "/plans/:id/export", "GET"},
	{"member", "/plans/:id/members", "POST"},
	{"member", "/plans/:id/members/accept", "PATCH"},
	{"member", "/plans/:id/members/deny", "PATCH"},
	{"member", "/plans/:id/details", "GET"},
	{"member", "/plans/:id/details/today", "GET"},
	{"member", "/invitations", "GET"},
	{"member", "/plan-details", "POST"},
	{"member", "/plan-details/:id", "GET"},
	{"member", "/plan-details/:id", "PATCH"},
	{"member", "/plan-details/:id", "DELETE"},
	{"member", "/bookmarks", "GET"},
	{"member", "/bookmarks", "POST"},
	{"member", "/bookmarks/:id", "DELETE"},
}

// RoleInheritance lists grouping rules applied at startup.
var RoleInheritance = [][]string{
	{"admin", "member"},
}

type Enforcer struct {
	enforcer *casbin.Enforcer
	mu       sync.RWMutex
	logger   logger.Interface
}

// NewEnforcer stores policies in the casbin_rule table of db. modelPath may be
// empty, in which case DefaultModel is used.
func NewEnforcer(db *gorm.DB, modelPath string, log logger.Interface) (*Enforcer, error) {
	adapter, err := gormadapter.NewAdapterByDB(db)
	if err != nil {
		return nil, fmt.Errorf("failed to create casbin adapter: %w", err)
	}

	m, err := loadModel(modelPath)
	if err != nil {
		return nil, err
	}

	enforcer, err := casbin.NewEnforcer(m, adapter)
	if err != nil {
		return nil, fmt.Errorf("failed to create casbin enforcer: %w", err)
	}

	if err := enforcer.LoadPolicy(); err != nil {
		return nil, fmt.Errorf("failed to load policy: %w", err)
	}

	return &Enforcer{
		enforcer: enforcer,
		logger:   log,
	}, nil
}

func loadModel(modelPath string) (model.Model, error) {
	if modelPath == "" {
		m, err := model.NewModelFromString(DefaultModel)
		if err != nil {
			return nil, fmt.Errorf("failed to parse default casbin model: %w", err)
		}
		return m, nil
	}

	m, err := model.NewModelFromFile(modelPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load casbin model %s: %w", modelPath, err)
	}
	return m, nil
}

// SeedRoutePolicies inserts RoutePolicies and RoleInheritance. Existing rules
// are left untouched, so it is safe to call on every start.
func (e *Enforcer) SeedRoutePolicies() error {
	e.mu.Lock()
	defer e.mu.Unlock()

	for _, policy := range RoutePolicies {
		if _, err := e.enforcer.AddPolicy(policy[0], policy[1], policy[2]); err != nil {
			e.logger.Errorw("failed to add route policy",
				"error", err,
				"role", policy[0],
				"path", policy[1],
				"method", policy[2])
			return fmt.Errorf("failed to add policy [%s, %s, %s]: %w", policy[0], policy[1], policy[2], err)
		}
	}

	for _, rule := range RoleInheritance {
		if _, err := e.enforcer.AddGroupingPolicy(rule[0], rule[1]); err != nil {
			return fmt.Errorf("failed to add role inheritance [%s, %s]: %w", rule[0], rule[1], err)
		}
	}

	e.logger.Infow("route permissions seeded", "policies", len(RoutePolicies))
	return nil
}

// Enforce reports whether role may call method on path.
func (e *Enforcer) Enforce(role string, path string, method string) (bool, error) {
	e.mu.RLock()
	defer e.mu.RUnlock()

	allowed, err := e.enforcer.Enforce(role, path, method)
	if err != nil {
		e.logger.Errorw("permission check failed", "error", err, "role", role, "path", path, "method", method)
		return false, fmt.Errorf("permission check failed: %w", err)
	}

	return allowed, nil
}

func (e *Enforcer) AddPolicy(role string, path string, method string) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	if _, err := e.enforcer.AddPolicy(role, path, method); err != nil {
		e.logger.Errorw("failed to add policy", "error", err)
		return fmt.Errorf("failed to add policy: %w", err)
	}
	return nil
}

func (e *Enforcer) RemovePolicy(role string, path string, method string) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	if _, err := e.enforcer.RemovePolicy(role, path, method); err != nil {
		e.logger.Errorw("failed to remove policy", "error", err)
		return fmt.Errorf("failed to remove policy: %w", err)
	}
	return nil
}

func (e *Enforcer) LoadPolicy() error {
	e.mu.Lock()
	defer e.mu.Unlock()

	if err := e.enforcer.LoadPolicy(); err != nil {
		return fmt.Errorf("failed to reload policy: %w", err)
	}

	e.logger.Info("policy reloaded successfully")
	return nil
}
