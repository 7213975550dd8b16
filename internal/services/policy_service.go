package services

import (
	"strings"

	"github.com/casbin/casbin/v2"

	"github.com/mdestafadilah/pesan-pms/domain"
)

// casbinRolePrefix qualifies role subjects before they reach the
// enforcer, matching the prefix the authorization middleware checks
// requests against.
const casbinRolePrefix = "role_"

// qualifyRole accepts both bare role names ("admin") and already
// qualified subjects ("role_admin").
func qualifyRole(role string) string {
	if strings.HasPrefix(role, casbinRolePrefix) {
		return role
	}
	return casbinRolePrefix + role
}

// casbinAdapter bridges *casbin.Enforcer to domain.CasbinEnforcer so
// the policy service can be exercised without a database-backed
// enforcer.
type casbinAdapter struct {
	e *casbin.Enforcer
}

func (a *casbinAdapter) AddPolicy(params ...interface{}) (bool, error) {
	return a.e.AddPolicy(params...)
}

func (a *casbinAdapter) RemovePolicy(params ...interface{}) (bool, error) {
	return a.e.RemovePolicy(params...)
}

func (a *casbinAdapter) Enforce(rvals ...interface{}) (bool, error) {
	return a.e.Enforce(rvals...)
}

func (a *casbinAdapter) GetPolicy() ([][]string, error) {
	return a.e.GetPolicy()
}

func (a *casbinAdapter) SavePolicy() error {
	return a.e.SavePolicy()
}

// PolicyServiceImpl manages the RBAC rules guarding the HTTP surface.
type PolicyServiceImpl struct {
	enforcer domain.CasbinEnforcer
}

// NewPolicyService creates a policy service over a live Casbin
// enforcer.
func NewPolicyService(enforcer *casbin.Enforcer) domain.PolicyService {
	return &PolicyServiceImpl{enforcer: &casbinAdapter{e: enforcer}}
}

// NewPolicyServiceWithEnforcer injects an already adapted enforcer.
func NewPolicyServiceWithEnforcer(enforcer domain.CasbinEnforcer) domain.PolicyService {
	return &PolicyServiceImpl{enforcer: enforcer}
}

// AddPolicy implements domain.PolicyService. The rule is persisted only
// when the enforcer reports an actual change.
func (p *PolicyServiceImpl) AddPolicy(role, resource, action string) error {
	added, err := p.enforcer.AddPolicy(qualifyRole(role), resource, action)
	if err != nil {
		return err
	}
	if !added {
		// Duplicate rule; nothing to persist.
		return nil
	}
	return p.enforcer.SavePolicy()
}

// RemovePolicy implements domain.PolicyService. Removing an absent rule
// is a no-op rather than an error.
func (p *PolicyServiceImpl) RemovePolicy(role, resource, action string) error {
	removed, err := p.enforcer.RemovePolicy(qualifyRole(role), resource, action)
	if err != nil {
		return err
	}
	if !removed {
		return nil
	}
	return p.enforcer.SavePolicy()
}

// CheckPermission implements domain.PolicyService
func (p *PolicyServiceImpl) CheckPermission(role, resource, action string) (bool, error) {
	return p.enforcer.Enforce(qualifyRole(role), resource, action)
}

// GetPolicies implements domain.PolicyService
func (p *PolicyServiceImpl) GetPolicies() [][]string {
	policies, _ := p.enforcer.GetPolicy()
	return policies
}
