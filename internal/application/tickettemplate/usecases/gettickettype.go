package usecases

import (
	"context"

	"jirant/internal/application/common/access"
	"jirant/internal/application/tickettemplate/dto"
	"jirant/internal/domain/tickettemplate"
	"jirant/internal/shared/authorization"
	"jirant/internal/shared/logger"
)

type GetTicketTypeQuery struct {
	Caller       authorization.Caller
	TicketTypeID string
}

type GetTicketTypeUseCase struct {
	repo   tickettemplate.TicketTemplateRepository
	policy *access.Policy
	logger logger.Interface
}

func NewGetTicketTypeUseCase(
	repo tickettemplate.TicketTemplateRepository,
	policy *access.Policy,
	logger logger.Interface,
) *GetTicketTypeUseCase {
	return &GetTicketTypeUseCase{repo: repo, policy: policy, logger: logger}
}

func (uc *GetTicketTypeUseCase) Execute(ctx context.Context, query GetTicketTypeQuery) (*dto.TicketTypeDTO, error) {
	tpl, err := loadReadable(ctx, uc.repo, uc.policy, query.Caller, query.TicketTypeID)
	if err != nil {
		return nil, err
	}
	result := dto.ToTicketTypeDTO(tpl)
	return &result, nil
}
