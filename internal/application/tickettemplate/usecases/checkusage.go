package usecases

import (
	"context"

	"jirant/internal/application/common/access"
	"jirant/internal/application/tickettemplate/dto"
	"jirant/internal/application/tickettemplate/services"
	"jirant/internal/domain/tickettemplate"
	"jirant/internal/shared/authorization"
	"jirant/internal/shared/logger"
)

type CheckTicketTypeUsageQuery struct {
	Caller       authorization.Caller
	TicketTypeID string
}

type CheckTicketTypeUsageUseCase struct {
	repo   tickettemplate.TicketTemplateRepository
	guard  *services.UsageGuard
	policy *access.Policy
	logger logger.Interface
}

func NewCheckTicketTypeUsageUseCase(
	repo tickettemplate.TicketTemplateRepository,
	guard *services.UsageGuard,
	policy *access.Policy,
	logger logger.Interface,
) *CheckTicketTypeUsageUseCase {
	return &CheckTicketTypeUsageUseCase{repo: repo, guard: guard, policy: policy, logger: logger}
}

// Execute counts the caller's own live tickets of this type. Callers that
// read usage across owners get the count for the template's whole scope.
func (uc *CheckTicketTypeUsageUseCase) Execute(ctx context.Context, query CheckTicketTypeUsageQuery) (*dto.UsageDTO, error) {
	uc.logger.Infow("executing check ticket type usage use case",
		"ticket_type_id", query.TicketTypeID,
		"user_id", query.Caller.UserID,
	)

	tpl, err := loadReadable(ctx, uc.repo, uc.policy, query.Caller, query.TicketTypeID)
	if err != nil {
		return nil, err
	}

	ownerFilter := query.Caller.UserID
	if uc.policy.CanReadAllUsage(query.Caller) {
		ownerFilter = services.ScopeFilter(tpl)
	}

	inUse, count, err := uc.guard.IsTemplateInUse(ctx, tpl, ownerFilter)
	if err != nil {
		return nil, err
	}
	return &dto.UsageDTO{IsInUse: inUse, Count: count}, nil
}
