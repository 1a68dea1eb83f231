package permission

import (
	"fmt"
	"sync"

	"github.com/casbin/casbin/v2"
	"github.com/casbin/casbin/v2/model"
	gormadapter "github.com/casbin/gorm-adapter/v3"
	"gorm.io/gorm"

	"github.com/expohub/expohub/internal/domain/user"
	"github.com/expohub/expohub/internal/shared/logger"
)

// capabilityModel grants a capability to a role when a policy row names
// both.
const capabilityModel = `
[request_definition]
r = sub, obj

[policy_definition]
p = sub, obj

[policy_effect]
e = some(where (p.eft == allow))

[matchers]
m = r.sub == p.sub && r.obj == p.obj
`

// Enforcer answers capability checks from casbin policies stored in the
// casbin_rule table.
type Enforcer struct {
	enforcer *casbin.Enforcer
	mu       sync.RWMutex
	logger   logger.Interface
}

func NewEnforcer(db *gorm.DB, log logger.Interface) (*Enforcer, error) {
	adapter, err := gormadapter.NewAdapterByDB(db)
	if err != nil {
		return nil, fmt.Errorf("failed to create casbin adapter: %w", err)
	}

	m, err := model.NewModelFromString(capabilityModel)
	if err != nil {
		return nil, fmt.Errorf("failed to parse casbin model: %w", err)
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

// Allowed reports whether p holds capability c. Anonymous principals hold
// nothing and superusers act as administrators.
func (e *Enforcer) Allowed(p user.Principal, c user.Capability) (bool, error) {
	if p.UserID == 0 {
		return false, nil
	}
	role := p.EffectiveRole().String()

	e.mu.RLock()
	defer e.mu.RUnlock()

	allowed, err := e.enforcer.Enforce(role, string(c))
	if err != nil {
		e.logger.Errorw("permission check failed", "error", err, "user_id", p.UserID, "role", role, "capability", c)
		return false, fmt.Errorf("permission check failed: %w", err)
	}
	return allowed, nil
}

func (e *Enforcer) Grant(role user.Role, c user.Capability) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	if _, err := e.enforcer.AddPolicy(role.String(), string(c)); err != nil {
		e.logger.Errorw("failed to add policy", "error", err, "role", role, "capability", c)
		return fmt.Errorf("failed to add policy: %w", err)
	}
	return nil
}

func (e *Enforcer) Revoke(role user.Role, c user.Capability) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	if _, err := e.enforcer.RemovePolicy(role.String(), string(c)); err != nil {
		e.logger.Errorw("failed to remove policy", "error", err, "role", role, "capability", c)
		return fmt.Errorf("failed to remove policy: %w", err)
	}
	return nil
}

// CapabilitiesOf lists the capabilities granted to role.
func (e *Enforcer) CapabilitiesOf(role user.Role) ([]user.Capability, error) {
	e.mu.RLock()
	defer e.mu.RUnlock()

	rules, err := e.enforcer.GetFilteredPolicy(0, role.String())
	if err != nil {
		return nil, fmt.Errorf("failed to get policies for role: %w", err)
	}
	out := make([]user.Capability, 0, len(rules))
	for _, rule := range rules {
		if len(rule) > 1 {
			out = append(out, user.Capability(rule[1]))
		}
	}
	return out, nil
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
