package usecases

import (
	"context"
	"fmt"

	"jirant/internal/application/common/access"
	"jirant/internal/application/tickettemplate/dto"
	"jirant/internal/domain/tickettemplate"
	"jirant/internal/shared/authorization"
	"jirant/internal/shared/logger"
)

type CreateTicketTypeCommand struct {
	Caller     authorization.Caller
	Definition tickettemplate.Definition
	// System creates a template without an owner, visible to everyone.
	System bool
}

type CreateTicketTypeUseCase struct {
	repo   tickettemplate.TicketTemplateRepository
	policy *access.Policy
	logger logger.Interface
}

func NewCreateTicketTypeUseCase(
	repo tickettemplate.TicketTemplateRepository,
	policy *access.Policy,
	logger logger.Interface,
) *CreateTicketTypeUseCase {
	return &CreateTicketTypeUseCase{repo: repo, policy: policy, logger: logger}
}

func (uc *CreateTicketTypeUseCase) Execute(ctx context.Context, cmd CreateTicketTypeCommand) (*dto.TicketTypeDTO, error) {
	uc.logger.Infow("executing create ticket type use case",
		"name", cmd.Definition.Name,
		"system", cmd.System,
		"user_id", cmd.Caller.UserID,
	)

	if err := cmd.Definition.Validate(); err != nil {
		return nil, validationError(err)
	}

	owner, err := ownerFor(uc.policy, cmd.Caller, cmd.System)
	if err != nil {
		return nil, err
	}

	if err := ensureNameAvailable(ctx, uc.repo, tickettemplate.ScopeFor(owner), cmd.Definition.Name, ""); err != nil {
		return nil, err
	}

	tpl, err := tickettemplate.NewTicketTemplate(cmd.Definition, owner)
	if err != nil {
		return nil, validationError(err)
	}

	if err := uc.repo.Create(ctx, tpl); err != nil {
		uc.logger.Errorw("failed to create ticket type", "error", err, "name", tpl.Name())
		return nil, fmt.Errorf("failed to create ticket type: %w", err)
	}

	uc.logger.Infow("ticket type created", "ticket_type_id", tpl.SID(), "name", tpl.Name())
	result := dto.ToTicketTypeDTO(tpl)
	return &result, nil
}
