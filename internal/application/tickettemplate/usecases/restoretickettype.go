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

// RestoreTicketTypeCommand recreates a deleted template from its snapshot.
// The restored template gets a new ID.
type RestoreTicketTypeCommand struct {
	Caller   authorization.Caller
	Snapshot tickettemplate.Definition
	System   bool
}

type RestoreTicketTypeUseCase struct {
	repo   tickettemplate.TicketTemplateRepository
	policy *access.Policy
	logger logger.Interface
}

func NewRestoreTicketTypeUseCase(
	repo tickettemplate.TicketTemplateRepository,
	policy *access.Policy,
	logger logger.Interface,
) *RestoreTicketTypeUseCase {
	return &RestoreTicketTypeUseCase{repo: repo, policy: policy, logger: logger}
}

func (uc *RestoreTicketTypeUseCase) Execute(ctx context.Context, cmd RestoreTicketTypeCommand) (*dto.TicketTypeDTO, error) {
	uc.logger.Infow("executing restore ticket type use case",
		"name", cmd.Snapshot.Name,
		"user_id", cmd.Caller.UserID,
	)

	if err := cmd.Snapshot.Validate(); err != nil {
		return nil, validationError(err)
	}

	owner, err := ownerFor(uc.policy, cmd.Caller, cmd.System)
	if err != nil {
		return nil, err
	}

	if err := ensureNameAvailable(ctx, uc.repo, tickettemplate.ScopeFor(owner), cmd.Snapshot.Name, ""); err != nil {
		return nil, err
	}

	tpl, err := tickettemplate.NewTicketTemplate(cmd.Snapshot, owner)
	if err != nil {
		return nil, validationError(err)
	}
	if err := uc.repo.Create(ctx, tpl); err != nil {
		uc.logger.Errorw("failed to restore ticket type", "error", err, "name", tpl.Name())
		return nil, fmt.Errorf("failed to restore ticket type: %w", err)
	}

	uc.logger.Infow("ticket type restored", "ticket_type_id", tpl.SID(), "name", tpl.Name())
	result := dto.ToTicketTypeDTO(tpl)
	return &result, nil
}
