package usecases

import (
	"context"

	"jirant/internal/application/common/access"
	"jirant/internal/application/ticket/dto"
	"jirant/internal/application/ticket/services"
	"jirant/internal/domain/ticket"
	"jirant/internal/shared/authorization"
	"jirant/internal/shared/logger"
)

type GetTicketContextQuery struct {
	Caller   authorization.Caller
	TicketID string
}

type GetTicketContextUseCase struct {
	ticketRepo ticket.TicketRepository
	resolver   *services.ContextResolver
	policy     *access.Policy
	logger     logger.Interface
}

func NewGetTicketContextUseCase(
	ticketRepo ticket.TicketRepository,
	resolver *services.ContextResolver,
	policy *access.Policy,
	logger logger.Interface,
) *GetTicketContextUseCase {
	return &GetTicketContextUseCase{ticketRepo: ticketRepo, resolver: resolver, policy: policy, logger: logger}
}

func (uc *GetTicketContextUseCase) Execute(ctx context.Context, query GetTicketContextQuery) ([]dto.TicketDTO, error) {
	uc.logger.Infow("executing get ticket context use case",
		"ticket_id", query.TicketID,
		"user_id", query.Caller.UserID,
	)

	if _, err := loadAccessible(ctx, uc.ticketRepo, uc.policy, query.Caller, query.TicketID); err != nil {
		return nil, err
	}

	related, err := uc.resolver.ResolveContext(ctx, query.TicketID)
	if err != nil {
		return nil, err
	}
	return dto.ToTicketDTOs(related), nil
}
