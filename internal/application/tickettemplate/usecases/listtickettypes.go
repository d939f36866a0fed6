package usecases

import (
	"context"
	"fmt"

	"jirant/internal/application/tickettemplate/dto"
	"jirant/internal/domain/tickettemplate"
	"jirant/internal/shared/authorization"
	"jirant/internal/shared/logger"
)

type ListTicketTypesQuery struct {
	Caller authorization.Caller
}

type ListTicketTypesUseCase struct {
	repo   tickettemplate.TicketTemplateRepository
	logger logger.Interface
}

func NewListTicketTypesUseCase(repo tickettemplate.TicketTemplateRepository, logger logger.Interface) *ListTicketTypesUseCase {
	return &ListTicketTypesUseCase{repo: repo, logger: logger}
}

// Execute lists system templates plus the caller's own, by tier then name.
func (uc *ListTicketTypesUseCase) Execute(ctx context.Context, query ListTicketTypesQuery) ([]dto.TicketTypeDTO, error) {
	templates, err := uc.repo.List(ctx, tickettemplate.TemplateFilter{
		OwnerID:       query.Caller.UserID,
		IncludeSystem: true,
	})
	if err != nil {
		uc.logger.Errorw("failed to list ticket types", "error", err, "user_id", query.Caller.UserID)
		return nil, fmt.Errorf("failed to list ticket types: %w", err)
	}
	return dto.ToTicketTypeDTOs(templates), nil
}
