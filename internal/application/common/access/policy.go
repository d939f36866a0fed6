// Package access decides what a caller may do beyond their own records.
package access

import (
	"jirant/internal/domain/permission"
	vo "jirant/internal/domain/permission/value_objects"
	"jirant/internal/domain/ticket"
	"jirant/internal/domain/tickettemplate"
	"jirant/internal/shared/authorization"
	"jirant/internal/shared/logger"
)

type Policy struct {
	checker permission.Checker
	logger  logger.Interface
}

// NewPolicy wraps checker. A nil checker grants nothing beyond ownership.
func NewPolicy(checker permission.Checker, logger logger.Interface) *Policy {
	return &Policy{checker: checker, logger: logger}
}

// Allows reports whether caller's role holds the capability. Enforcer
// failures deny.
func (p *Policy) Allows(caller authorization.Caller, resource vo.Resource, action vo.Action) bool {
	if p == nil || p.checker == nil {
		return false
	}
	ok, err := p.checker.Can(caller.Role.String(), resource, action)
	if err != nil {
		p.logger.Warnw("capability check failed, denying",
			"error", err,
			"user_id", caller.UserID,
			"resource", resource,
			"action", action,
		)
		return false
	}
	return ok
}

// CanAccessTicket is true for the owner or a caller that manages all tickets.
func (p *Policy) CanAccessTicket(caller authorization.Caller, t *ticket.Ticket) bool {
	if t.IsOwnedBy(caller.UserID) {
		return true
	}
	return p.Allows(caller, vo.ResourceTicket, vo.ActionManageAll)
}

// CanManageAllTickets is used for listing across owners.
func (p *Policy) CanManageAllTickets(caller authorization.Caller) bool {
	return p.Allows(caller, vo.ResourceTicket, vo.ActionManageAll)
}

// CanLinkTickets additionally allows relationship administrators.
func (p *Policy) CanLinkTickets(caller authorization.Caller, a, b *ticket.Ticket) bool {
	if p.Allows(caller, vo.ResourceRelationship, vo.ActionManageAll) {
		return true
	}
	return p.CanAccessTicket(caller, a) && p.CanAccessTicket(caller, b)
}

// CanReadTemplate: system templates are visible to everyone.
func (p *Policy) CanReadTemplate(caller authorization.Caller, t *tickettemplate.TicketTemplate) bool {
	if t.IsSystem() || t.IsOwnedBy(caller.UserID) {
		return true
	}
	return p.Allows(caller, vo.ResourceTicketType, vo.ActionManageAll)
}

// CanWriteTemplate: system templates need the system write capability,
// owned ones need ownership or template administration.
func (p *Policy) CanWriteTemplate(caller authorization.Caller, t *tickettemplate.TicketTemplate) bool {
	if t.IsSystem() {
		return p.Allows(caller, vo.ResourceSystemTemplate, vo.ActionWrite)
	}
	if t.IsOwnedBy(caller.UserID) {
		return true
	}
	return p.Allows(caller, vo.ResourceTicketType, vo.ActionManageAll)
}

// CanReadAllUsage marks callers whose usage checks span every owner.
func (p *Policy) CanReadAllUsage(caller authorization.Caller) bool {
	return p.Allows(caller, vo.ResourceTicketTypeUsage, vo.ActionReadAll)
}

func (p *Policy) CanCreateSystemTemplate(caller authorization.Caller) bool {
	return p.Allows(caller, vo.ResourceSystemTemplate, vo.ActionWrite)
}
