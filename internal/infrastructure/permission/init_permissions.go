package permission

import (
	"fmt"

	"jirant/internal/domain/permission"
	"jirant/internal/shared/logger"
)

// InitDefaultPermissions makes sure every default policy exists. Policies
// already present are left alone, so it is safe to run on every start.
func InitDefaultPermissions(enforcer permission.PermissionEnforcer, log logger.Interface) error {
	for _, policy := range permission.DefaultPolicies() {
		if err := enforcer.AddPolicy(policy.Role, policy.Resource.String(), policy.Action.String()); err != nil {
			log.Errorw("failed to add default permission policy",
				"error", err,
				"role", policy.Role,
				"resource", policy.Resource,
				"action", policy.Action)
			return fmt.Errorf("failed to add policy [%s, %s, %s]: %w",
				policy.Role, policy.Resource, policy.Action, err)
		}
	}

	log.Infow("default permissions initialized", "policies", len(permission.DefaultPolicies()))
	return nil
}
