package usecases

import (
	"context"

	"jirant/internal/application/tickettemplate/dto"
	"jirant/internal/domain/tickettemplate"
)

type CreateTicketTypeExecutor interface {
	Execute(ctx context.Context, cmd CreateTicketTypeCommand) (*dto.TicketTypeDTO, error)
}

type UpdateTicketTypeExecutor interface {
	Execute(ctx context.Context, cmd UpdateTicketTypeCommand) (*dto.TicketTypeDTO, error)
}

type DeleteTicketTypeExecutor interface {
	Execute(ctx context.Context, cmd DeleteTicketTypeCommand) (*dto.TicketTypeDTO, error)
}

type CheckTicketTypeUsageExecutor interface {
	Execute(ctx context.Context, query CheckTicketTypeUsageQuery) (*dto.UsageDTO, error)
}

type RestoreTicketTypeExecutor interface {
	Execute(ctx context.Context, cmd RestoreTicketTypeCommand) (*dto.TicketTypeDTO, error)
}

type GetTicketTypeExecutor interface {
	Execute(ctx context.Context, query GetTicketTypeQuery) (*dto.TicketTypeDTO, error)
}

type ListTicketTypesExecutor interface {
	Execute(ctx context.Context, query ListTicketTypesQuery) ([]dto.TicketTypeDTO, error)
}

type SeedDefaultTicketTypesExecutor interface {
	Execute(ctx context.Context, cmd SeedDefaultTicketTypesCommand) (*dto.SeedResultDTO, error)
}

// DefaultsProvider supplies the definitions seeded for a new user.
type DefaultsProvider interface {
	Load() ([]tickettemplate.Definition, error)
}
