package permission

import vo "jirant/internal/domain/permission/value_objects"

// Checker answers capability questions for a role.
type Checker interface {
	Can(role string, resource vo.Resource, action vo.Action) (bool, error)
}

type PermissionEnforcer interface {
	Checker
	AddPolicy(role string, resource string, action string) error
	RemovePolicy(role string, resource string, action string) error
	GetPermissionsForRole(role string) ([][]string, error)
	LoadPolicy() error
}
