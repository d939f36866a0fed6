package usecases

import (
	"context"
	"fmt"

	"jirant/internal/application/tickettemplate/dto"
	"jirant/internal/domain/tickettemplate"
	apperrors "jirant/internal/shared/errors"
	"jirant/internal/shared/logger"
)

type SeedDefaultTicketTypesCommand struct {
	UserID string
}

// SeedDefaultTicketTypesUseCase gives a user their own copy of the default
// templates. Names the user already has are skipped, so reruns are no-ops.
type SeedDefaultTicketTypesUseCase struct {
	repo     tickettemplate.TicketTemplateRepository
	defaults DefaultsProvider
	logger   logger.Interface
}

func NewSeedDefaultTicketTypesUseCase(
	repo tickettemplate.TicketTemplateRepository,
	defaults DefaultsProvider,
	logger logger.Interface,
) *SeedDefaultTicketTypesUseCase {
	return &SeedDefaultTicketTypesUseCase{repo: repo, defaults: defaults, logger: logger}
}

func (uc *SeedDefaultTicketTypesUseCase) Execute(ctx context.Context, cmd SeedDefaultTicketTypesCommand) (*dto.SeedResultDTO, error) {
	uc.logger.Infow("executing seed default ticket types use case", "user_id", cmd.UserID)

	if cmd.UserID == "" {
		return nil, apperrors.NewValidationError("user ID is required")
	}

	defs, err := uc.defaults.Load()
	if err != nil {
		uc.logger.Errorw("failed to load default ticket types", "error", err)
		return nil, fmt.Errorf("failed to load default ticket types: %w", err)
	}

	owner := cmd.UserID
	result := &dto.SeedResultDTO{
		Created: []dto.TicketTypeDTO{},
		Skipped: []string{},
	}

	for _, def := range defs {
		exists, err := uc.repo.ExistsByName(ctx, owner, tickettemplate.FoldName(def.Name), "")
		if err != nil {
			return nil, fmt.Errorf("failed to check ticket type name: %w", err)
		}
		if exists {
			result.Skipped = append(result.Skipped, def.Name)
			continue
		}

		tpl, err := tickettemplate.NewTicketTemplate(def, &owner)
		if err != nil {
			return nil, fmt.Errorf("invalid default ticket type %q: %w", def.Name, err)
		}
		if err := uc.repo.Create(ctx, tpl); err != nil {
			// A concurrent seed got there first.
			if apperrors.HasReason(err, apperrors.ReasonDuplicateName) {
				result.Skipped = append(result.Skipped, def.Name)
				continue
			}
			return nil, fmt.Errorf("failed to seed ticket type %q: %w", def.Name, err)
		}
		result.Created = append(result.Created, dto.ToTicketTypeDTO(tpl))
	}

	uc.logger.Infow("default ticket types seeded",
		"user_id", cmd.UserID,
		"created", len(result.Created),
		"skipped", len(result.Skipped),
	)
	return result, nil
}
