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

type DeleteTicketTypeCommand struct {
	Caller       authorization.Caller
	TicketTypeID string
}

type DeleteTicketTypeUseCase struct {
	repo   tickettemplate.TicketTemplateRepository
	tx     db.TransactionRunner
	guard  *services.UsageGuard
	policy *access.Policy
	logger logger.Interface
}

func NewDeleteTicketTypeUseCase(
	repo tickettemplate.TicketTemplateRepository,
	tx db.TransactionRunner,
	guard *services.UsageGuard,
	policy *access.Policy,
	logger logger.Interface,
) *DeleteTicketTypeUseCase {
	return &DeleteTicketTypeUseCase{repo: repo, tx: tx, guard: guard, policy: policy, logger: logger}
}

func (uc *DeleteTicketTypeUseCase) Execute(ctx context.Context, cmd DeleteTicketTypeCommand) (*dto.TicketTypeDTO, error) {
	uc.logger.Infow("executing delete ticket type use case",
		"ticket_type_id", cmd.TicketTypeID,
		"user_id", cmd.Caller.UserID,
	)

	var tpl *tickettemplate.TicketTemplate
	// usage check and delete share one unit of work
	err := uc.tx.RunInTransaction(ctx, func(ctx context.Context) error {
		var err error
		tpl, err = loadWritable(ctx, uc.repo, uc.policy, cmd.Caller, cmd.TicketTypeID)
		if err != nil {
			return err
		}

		inUse, count, err := uc.guard.IsTemplateInUse(ctx, tpl, services.ScopeFilter(tpl))
		if err != nil {
			return err
		}
		if inUse {
			uc.logger.Warnw("refusing to delete ticket type in use", "ticket_type_id", tpl.SID(), "count", count)
			return apperrors.NewTemplateInUseError(count)
		}

		if err := uc.repo.Delete(ctx, tpl.SID()); err != nil {
			uc.logger.Errorw("failed to delete ticket type", "error", err, "ticket_type_id", tpl.SID())
			return fmt.Errorf("failed to delete ticket type: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	uc.logger.Infow("ticket type deleted", "ticket_type_id", tpl.SID(), "name", tpl.Name())
	// The snapshot lets the client undo through restore.
	snapshot := dto.ToTicketTypeDTO(tpl)
	return &snapshot, nil
}
