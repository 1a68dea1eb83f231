package permission

import (
	"fmt"

	"github.com/expohub/expohub/internal/domain/user"
)

// SyncCapabilities makes the stored policies match the role to capability
// table of the user domain. Missing rows are added and stale rows removed.
func (e *Enforcer) SyncCapabilities() error {
	e.logger.Info("syncing capabilities to casbin")

	e.mu.Lock()
	defer e.mu.Unlock()

	want := make(map[[2]string]bool)
	for role, caps := range user.CapabilityTable() {
		for _, c := range caps {
			want[[2]string{role.String(), string(c)}] = true
		}
	}

	current, err := e.enforcer.GetPolicy()
	if err != nil {
		return fmt.Errorf("failed to read policies: %w", err)
	}

	var stale [][]string
	have := make(map[[2]string]bool, len(current))
	for _, rule := range current {
		if len(rule) < 2 {
			continue
		}
		key := [2]string{rule[0], rule[1]}
		have[key] = true
		if !want[key] {
			stale = append(stale, rule)
		}
	}

	var missing [][]string
	for key := range want {
		if !have[key] {
			missing = append(missing, []string{key[0], key[1]})
		}
	}

	if len(stale) > 0 {
		if _, err := e.enforcer.RemovePolicies(stale); err != nil {
			return fmt.Errorf("failed to remove stale policies: %w", err)
		}
		e.logger.Infow("removed stale capability policies", "count", len(stale))
	}
	if len(missing) > 0 {
		if _, err := e.enforcer.AddPolicies(missing); err != nil {
			return fmt.Errorf("failed to add capability policies: %w", err)
		}
		e.logger.Infow("added capability policies", "count", len(missing))
	}

	e.logger.Info("capabilities synced to casbin")
	return nil
}
