package services

import (
	"context"
	"fmt"

	"jirant/internal/domain/relationship"
	"jirant/internal/domain/ticket"
	"jirant/internal/shared/logger"
)

// EdgeFinder lists the edges touching a ticket in creation order.
type EdgeFinder interface {
	FindEdges(ctx context.Context, ticketID, otherID string) ([]*relationship.Relationship, error)
}

// ContextResolver walks one hop from a ticket to its live neighbours.
type ContextResolver struct {
	edges      EdgeFinder
	ticketRepo ticket.TicketRepository
	logger     logger.Interface
}

func NewContextResolver(edges EdgeFinder, ticketRepo ticket.TicketRepository, logger logger.Interface) *ContextResolver {
	return &ContextResolver{edges: edges, ticketRepo: ticketRepo, logger: logger}
}

// ResolveContext returns the other endpoint of every edge touching ticketID,
// in edge creation order. Deleted and dangling endpoints are dropped, and a
// neighbour linked twice appears once.
func (r *ContextResolver) ResolveContext(ctx context.Context, ticketID string) ([]*ticket.Ticket, error) {
	edges, err := r.edges.FindEdges(ctx, ticketID, "")
	if err != nil {
		return nil, err
	}
	if len(edges) == 0 {
		return []*ticket.Ticket{}, nil
	}

	others := make([]string, 0, len(edges))
	seen := make(map[string]bool, len(edges))
	for _, e := range edges {
		other := e.Other(ticketID)
		if other == "" || seen[other] {
			continue
		}
		seen[other] = true
		others = append(others, other)
	}

	found, err := r.ticketRepo.GetBySIDs(ctx, others)
	if err != nil {
		r.logger.Errorw("failed to load context tickets", "error", err, "ticket_id", ticketID)
		return nil, fmt.Errorf("failed to load context tickets: %w", err)
	}

	result := make([]*ticket.Ticket, 0, len(others))
	for _, sid := range others {
		t, ok := found[sid]
		if !ok {
			r.logger.Debugw("skipping dangling context edge", "ticket_id", ticketID, "other_id", sid)
			continue
		}
		if t.IsDeleted() {
			continue
		}
		result = append(result, t)
	}
	return result, nil
}
