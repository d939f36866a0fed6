package usecases

import (
	"context"
	"fmt"

	"jirant/internal/application/common/access"
	"jirant/internal/application/tickettemplate/dto"
	"jirant/internal/application/tickettemplate/services"
	"jirant/internal/domain/tickettemplate"
	"jirant/internal/shared/authorization"
	"jirant/internal/shared/db"
	apperrors "jirant/internal/shared/errors"
	"jirant/internal/shared/logger"
)

// UpdateTicketTypeCommand replaces every editable field.
type UpdateTicketTypeCommand struct {
	Caller       authorization.Caller
	TicketTypeID string
	Definition   tickettemplate.Definition
}

type UpdateTicketTypeUseCase struct {
	repo   tickettemplate.TicketTemplateRepository
	tx     db.TransactionRunner
	guard  *services.UsageGuard
	policy *access.Policy
	logger logger.Interface
}

func NewUpdateTicketTypeUseCase(
	repo tickettemplate.TicketTemplateRepository,
	tx db.TransactionRunner,
	guard *services.UsageGuard,
	policy *access.Policy,
	logger logger.Interface,
) *UpdateTicketTypeUseCase {
	return &UpdateTicketTypeUseCase{repo: repo, tx: tx, guard: guard, policy: policy, logger: logger}
}

func (uc *UpdateTicketTypeUseCase) Execute(ctx context.Context, cmd UpdateTicketTypeCommand) (*dto.TicketTypeDTO, error) {
	uc.logger.Infow("executing update ticket type use case",
		"ticket_type_id", cmd.TicketTypeID,
		"user_id", cmd.Caller.UserID,
	)

	if err := cmd.Definition.Validate(); err != nil {
		return nil, validationError(err)
	}

	var tpl *tickettemplate.TicketTemplate
	err := uc.tx.RunInTransaction(ctx, func(ctx context.Context) error {
		var err error
		tpl, err = loadWritable(ctx, uc.repo, uc.policy, cmd.Caller, cmd.TicketTypeID)
		if err != nil {
			return err
		}

		// Tickets point at their template by exact name, so a rename would
		// orphan them.
		if tpl.ChangesName(cmd.Definition) {
			inUse, count, err := uc.guard.IsTemplateInUse(ctx, tpl, services.ScopeFilter(tpl))
			if err != nil {
				return err
			}
			if inUse {
				return apperrors.NewTemplateInUseError(count)
			}
		}

		if tpl.Renames(cmd.Definition) {
			if err := ensureNameAvailable(ctx, uc.repo, tpl.OwnerScope(), cmd.Definition.Name, tpl.SID()); err != nil {
				return err
			}
		}

		if err := tpl.Replace(cmd.Definition); err != nil {
			return validationError(err)
		}

		if err := uc.repo.Update(ctx, tpl); err != nil {
			uc.logger.Errorw("failed to update ticket type", "error", err, "ticket_type_id", tpl.SID())
			return fmt.Errorf("failed to update ticket type: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	result := dto.ToTicketTypeDTO(tpl)
	return &result, nil
}
