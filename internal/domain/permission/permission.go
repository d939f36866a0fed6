package permission

import (
	vo "jirant/internal/domain/permission/value_objects"
)

// Policy grants a role one action on one resource.
type Policy struct {
	Role     string
	Resource vo.Resource
	Action   vo.Action
}

func (p Policy) Strings() []string {
	return []string{p.Role, p.Resource.String(), p.Action.String()}
}

// DefaultPolicies returns the capabilities every deployment starts with.
// Ownership checks are handled in the use cases; these only cover what
// goes beyond the caller's own records.
func DefaultPolicies() []Policy {
	return []Policy{
		{Role: "admin", Resource: vo.ResourceSystemTemplate, Action: vo.ActionWrite},
		{Role: "admin", Resource: vo.ResourceTicketTypeUsage, Action: vo.ActionReadAll},
		{Role: "admin", Resource: vo.ResourceTicket, Action: vo.ActionManageAll},
		{Role: "admin", Resource: vo.ResourceTicketType, Action: vo.ActionManageAll},
		{Role: "admin", Resource: vo.ResourceRelationship, Action: vo.ActionManageAll},
	}
}
