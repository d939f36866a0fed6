// Package services holds the relationship graph operations shared by the
// relationship use cases and the generation pipeline.
package services

import (
	"context"
	"errors"
	"fmt"

	"jirant/internal/domain/relationship"
	"jirant/internal/domain/ticket"
	apperrors "jirant/internal/shared/errors"
	"jirant/internal/shared/logger"
)

// GraphService maintains the undirected, deduplicated ticket graph. Every
// lookup goes through relationship.NormalizePair so both orderings of a pair
// resolve to the same edge.
type GraphService struct {
	relRepo    relationship.RelationshipRepository
	ticketRepo ticket.TicketRepository
	logger     logger.Interface
}

func NewGraphService(
	relRepo relationship.RelationshipRepository,
	ticketRepo ticket.TicketRepository,
	logger logger.Interface,
) *GraphService {
	return &GraphService{
		relRepo:    relRepo,
		ticketRepo: ticketRepo,
		logger:     logger,
	}
}

func pairFor(a, b string) (relationship.Pair, error) {
	pair, err := relationship.NormalizePair(a, b)
	if err != nil {
		if errors.Is(err, relationship.ErrSelfLoop) {
			return relationship.Pair{}, apperrors.NewInvalidEdgeError(err.Error())
		}
		return relationship.Pair{}, apperrors.NewValidationError(err.Error()).WithReason(apperrors.ReasonInvalidEdge)
	}
	return pair, nil
}

// CreateEdge links a and b. Both tickets must exist; an edge in either
// order already present is a duplicate. The unique pair index turns a
// concurrent insert of the same pair into the same duplicate error.
func (s *GraphService) CreateEdge(ctx context.Context, a, b, kind, createdBy string) (*relationship.Relationship, error) {
	pair, err := pairFor(a, b)
	if err != nil {
		return nil, err
	}

	found, err := s.ticketRepo.GetBySIDs(ctx, []string{pair.Low, pair.High})
	if err != nil {
		return nil, fmt.Errorf("failed to load tickets: %w", err)
	}
	for _, sid := range []string{a, b} {
		if _, ok := found[sid]; !ok {
			return nil, apperrors.NewNotFoundError("ticket not found", sid)
		}
	}

	existing, err := s.relRepo.FindBetween(ctx, pair)
	if err != nil {
		return nil, fmt.Errorf("failed to check existing relationship: %w", err)
	}
	if existing != nil {
		return nil, apperrors.NewDuplicateEdgeError(pair.Low, pair.High)
	}

	rel, err := relationship.NewRelationship(a, b, kind, createdBy)
	if err != nil {
		return nil, apperrors.NewValidationError(err.Error()).WithReason(apperrors.ReasonInvalidEdge)
	}

	if err := s.relRepo.Create(ctx, rel); err != nil {
		return nil, err
	}

	s.logger.Infow("relationship created",
		"relationship_id", rel.SID(),
		"ticket1", rel.Ticket1(),
		"ticket2", rel.Ticket2(),
		"type", rel.RelationshipType(),
	)
	return rel, nil
}

// FindEdges returns every edge touching ticketID, oldest first. A non-empty
// otherID narrows the result to the single edge between the two.
func (s *GraphService) FindEdges(ctx context.Context, ticketID, otherID string) ([]*relationship.Relationship, error) {
	if ticketID == "" {
		return nil, apperrors.NewValidationError("ticket ID is required")
	}

	if otherID != "" {
		pair, err := pairFor(ticketID, otherID)
		if err != nil {
			return nil, err
		}
		rel, err := s.relRepo.FindBetween(ctx, pair)
		if err != nil {
			return nil, fmt.Errorf("failed to find relationship: %w", err)
		}
		if rel == nil {
			return []*relationship.Relationship{}, nil
		}
		return []*relationship.Relationship{rel}, nil
	}

	rels, err := s.relRepo.FindByTicket(ctx, ticketID)
	if err != nil {
		return nil, fmt.Errorf("failed to list relationships: %w", err)
	}
	if rels == nil {
		rels = []*relationship.Relationship{}
	}
	return rels, nil
}

// DeleteEdge removes the edge between a and b in either order.
func (s *GraphService) DeleteEdge(ctx context.Context, a, b string) (*relationship.Relationship, error) {
	pair, err := pairFor(a, b)
	if err != nil {
		return nil, err
	}

	rel, err := s.relRepo.FindBetween(ctx, pair)
	if err != nil {
		return nil, fmt.Errorf("failed to find relationship: %w", err)
	}
	if rel == nil {
		return nil, apperrors.NewNotFoundError("relationship not found", fmt.Sprintf("%s <-> %s", pair.Low, pair.High))
	}

	if err := s.relRepo.Delete(ctx, rel.SID()); err != nil {
		return nil, err
	}

	s.logger.Infow("relationship deleted", "relationship_id", rel.SID(), "ticket1", a, "ticket2", b)
	return rel, nil
}
