package usecases

import (
	"context"
	"fmt"

	"jirant/internal/application/common/access"
	"jirant/internal/domain/tickettemplate"
	"jirant/internal/shared/authorization"
	apperrors "jirant/internal/shared/errors"
)

// loadReadable hides templates the caller may not see behind NotFound.
func loadReadable(
	ctx context.Context,
	repo tickettemplate.TicketTemplateRepository,
	policy *access.Policy,
	caller authorization.Caller,
	templateID string,
) (*tickettemplate.TicketTemplate, error) {
	if templateID == "" {
		return nil, apperrors.NewValidationError("ticket type ID is required")
	}
	tpl, err := repo.GetBySID(ctx, templateID)
	if err != nil {
		return nil, err
	}
	if !policy.CanReadTemplate(caller, tpl) {
		return nil, apperrors.NewNotFoundError("ticket type not found", templateID)
	}
	return tpl, nil
}

func loadWritable(
	ctx context.Context,
	repo tickettemplate.TicketTemplateRepository,
	policy *access.Policy,
	caller authorization.Caller,
	templateID string,
) (*tickettemplate.TicketTemplate, error) {
	tpl, err := loadReadable(ctx, repo, policy, caller, templateID)
	if err != nil {
		return nil, err
	}
	if !policy.CanWriteTemplate(caller, tpl) {
		return nil, apperrors.NewForbiddenError("you cannot modify this ticket type")
	}
	return tpl, nil
}

func ensureNameAvailable(
	ctx context.Context,
	repo tickettemplate.TicketTemplateRepository,
	scope, name, excludeSID string,
) error {
	exists, err := repo.ExistsByName(ctx, scope, tickettemplate.FoldName(name), excludeSID)
	if err != nil {
		return fmt.Errorf("failed to check ticket type name: %w", err)
	}
	if exists {
		return apperrors.NewDuplicateError("a ticket type with this name already exists", name).
			WithReason(apperrors.ReasonDuplicateName)
	}
	return nil
}

// ownerFor resolves who a new template belongs to. System templates need
// the system write capability.
func ownerFor(policy *access.Policy, caller authorization.Caller, system bool) (*string, error) {
	if !system {
		owner := caller.UserID
		return &owner, nil
	}
	if !policy.CanCreateSystemTemplate(caller) {
		return nil, apperrors.NewForbiddenError("only administrators can create system ticket types")
	}
	return nil, nil
}

func validationError(err error) *apperrors.AppError {
	return apperrors.NewValidationError(err.Error())
}
