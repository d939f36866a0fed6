package usecases

import (
	"context"

	"jirant/internal/application/common/access"
	"jirant/internal/application/relationship/dto"
	"jirant/internal/application/relationship/services"
	"jirant/internal/domain/ticket"
	"jirant/internal/shared/authorization"
	apperrors "jirant/internal/shared/errors"
	"jirant/internal/shared/logger"
)

// ListRelationshipsQuery lists edges touching TicketID, or only the edge
// between TicketID and OtherID when OtherID is set.
type ListRelationshipsQuery struct {
	Caller   authorization.Caller
	TicketID string
	OtherID  string
}

type ListRelationshipsUseCase struct {
	graph      *services.GraphService
	ticketRepo ticket.TicketRepository
	policy     *access.Policy
	logger     logger.Interface
}

func NewListRelationshipsUseCase(
	graph *services.GraphService,
	ticketRepo ticket.TicketRepository,
	policy *access.Policy,
	logger logger.Interface,
) *ListRelationshipsUseCase {
	return &ListRelationshipsUseCase{
		graph:      graph,
		ticketRepo: ticketRepo,
		policy:     policy,
		logger:     logger,
	}
}

func (uc *ListRelationshipsUseCase) Execute(ctx context.Context, query ListRelationshipsQuery) ([]dto.RelationshipDTO, error) {
	if query.TicketID == "" {
		return nil, apperrors.NewValidationError("ticket1 is required")
	}

	t, err := uc.ticketRepo.GetBySID(ctx, query.TicketID)
	if err != nil {
		return nil, err
	}
	if !uc.policy.CanAccessTicket(query.Caller, t) {
		return nil, apperrors.NewForbiddenError("you do not have access to this ticket")
	}

	rels, err := uc.graph.FindEdges(ctx, query.TicketID, query.OtherID)
	if err != nil {
		uc.logger.Errorw("failed to list relationships", "error", err, "ticket_id", query.TicketID)
		return nil, err
	}

	return dto.ToRelationshipDTOs(rels), nil
}
