package usecases

import (
	"context"

	"jirant/internal/application/common/access"
	"jirant/internal/application/relationship/services"
	"jirant/internal/domain/ticket"
	"jirant/internal/shared/authorization"
	apperrors "jirant/internal/shared/errors"
	"jirant/internal/shared/logger"
)

type DeleteRelationshipCommand struct {
	Caller  authorization.Caller
	Ticket1 string
	Ticket2 string
}

type DeleteRelationshipUseCase struct {
	graph      *services.GraphService
	ticketRepo ticket.TicketRepository
	policy     *access.Policy
	logger     logger.Interface
}

func NewDeleteRelationshipUseCase(
	graph *services.GraphService,
	ticketRepo ticket.TicketRepository,
	policy *access.Policy,
	logger logger.Interface,
) *DeleteRelationshipUseCase {
	return &DeleteRelationshipUseCase{
		graph:      graph,
		ticketRepo: ticketRepo,
		policy:     policy,
		logger:     logger,
	}
}

func (uc *DeleteRelationshipUseCase) Execute(ctx context.Context, cmd DeleteRelationshipCommand) error {
	uc.logger.Infow("executing delete relationship use case",
		"ticket1", cmd.Ticket1,
		"ticket2", cmd.Ticket2,
		"user_id", cmd.Caller.UserID,
	)

	if cmd.Ticket1 == "" || cmd.Ticket2 == "" {
		return apperrors.NewValidationError("ticket1 and ticket2 are required")
	}
	if cmd.Ticket1 == cmd.Ticket2 {
		return apperrors.NewInvalidEdgeError("a ticket cannot be related to itself")
	}

	if err := loadLinkable(ctx, uc.ticketRepo, uc.policy, cmd.Caller, cmd.Ticket1, cmd.Ticket2); err != nil {
		return err
	}

	if _, err := uc.graph.DeleteEdge(ctx, cmd.Ticket1, cmd.Ticket2); err != nil {
		return err
	}
	return nil
}
