package usecases

import (
	"context"
	"strings"

	"jirant/internal/application/common/access"
	"jirant/internal/application/relationship/dto"
	"jirant/internal/application/relationship/services"
	"jirant/internal/domain/ticket"
	"jirant/internal/shared/authorization"
	apperrors "jirant/internal/shared/errors"
	"jirant/internal/shared/logger"
)

type CreateRelationshipCommand struct {
	Caller           authorization.Caller
	Ticket1          string
	Ticket2          string
	RelationshipType string
}

type CreateRelationshipUseCase struct {
	graph      *services.GraphService
	ticketRepo ticket.TicketRepository
	policy     *access.Policy
	logger     logger.Interface
}

func NewCreateRelationshipUseCase(
	graph *services.GraphService,
	ticketRepo ticket.TicketRepository,
	policy *access.Policy,
	logger logger.Interface,
) *CreateRelationshipUseCase {
	return &CreateRelationshipUseCase{
		graph:      graph,
		ticketRepo: ticketRepo,
		policy:     policy,
		logger:     logger,
	}
}

func (uc *CreateRelationshipUseCase) Execute(ctx context.Context, cmd CreateRelationshipCommand) (*dto.RelationshipDTO, error) {
	uc.logger.Infow("executing create relationship use case",
		"ticket1", cmd.Ticket1,
		"ticket2", cmd.Ticket2,
		"user_id", cmd.Caller.UserID,
	)

	if cmd.Ticket1 == "" || cmd.Ticket2 == "" {
		return nil, apperrors.NewValidationError("ticket1 and ticket2 are required")
	}
	if cmd.Ticket1 == cmd.Ticket2 {
		return nil, apperrors.NewInvalidEdgeError("a ticket cannot be related to itself")
	}

	if err := loadLinkable(ctx, uc.ticketRepo, uc.policy, cmd.Caller, cmd.Ticket1, cmd.Ticket2); err != nil {
		return nil, err
	}

	rel, err := uc.graph.CreateEdge(ctx, cmd.Ticket1, cmd.Ticket2, strings.TrimSpace(cmd.RelationshipType), cmd.Caller.UserID)
	if err != nil {
		uc.logger.Warnw("failed to create relationship", "error", err, "ticket1", cmd.Ticket1, "ticket2", cmd.Ticket2)
		return nil, err
	}

	result := dto.ToRelationshipDTO(rel)
	return &result, nil
}
