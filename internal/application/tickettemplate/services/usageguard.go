package services

import (
	"context"
	"fmt"

	"jirant/internal/domain/ticket"
	"jirant/internal/domain/tickettemplate"
	"jirant/internal/shared/logger"
)

// UsageGuard counts live tickets that reference a template. Tickets match by
// type name within the owner scope, or by the template SID they were
// generated from regardless of who generated them.
type UsageGuard struct {
	ticketRepo ticket.TicketRepository
	logger     logger.Interface
}

func NewUsageGuard(ticketRepo ticket.TicketRepository, logger logger.Interface) *UsageGuard {
	return &UsageGuard{ticketRepo: ticketRepo, logger: logger}
}

// IsTemplateInUse counts non-deleted tickets of the template's type plus
// those generated from the template itself. An empty ownerFilter counts the
// type name across every owner.
func (g *UsageGuard) IsTemplateInUse(ctx context.Context, tpl *tickettemplate.TicketTemplate, ownerFilter string) (bool, int64, error) {
	count, err := g.ticketRepo.CountByType(ctx, tpl.Name(), ownerFilter, tpl.SID(), true)
	if err != nil {
		g.logger.Errorw("failed to count template usage", "error", err, "template_id", tpl.SID())
		return false, 0, fmt.Errorf("failed to count template usage: %w", err)
	}
	return count > 0, count, nil
}

// ScopeFilter is the owner filter matching the template's own scope: the
// owner's tickets for an owned template, everyone's for a system one.
func ScopeFilter(tpl *tickettemplate.TicketTemplate) string {
	if owner := tpl.CreatedBy(); owner != nil {
		return *owner
	}
	return ""
}
