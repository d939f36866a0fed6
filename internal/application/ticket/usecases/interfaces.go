package usecases

import (
	"context"
	"time"

	"jirant/internal/application/ticket/dto"
	"jirant/internal/domain/relationship"
)

type GenerateTicketExecutor interface {
	Execute(ctx context.Context, cmd GenerateTicketCommand) (*dto.GenerationResultDTO, error)
}

type GetTicketContextExecutor interface {
	Execute(ctx context.Context, query GetTicketContextQuery) ([]dto.TicketDTO, error)
}

type SoftDeleteTicketExecutor interface {
	Execute(ctx context.Context, cmd SoftDeleteTicketCommand) (*dto.TicketDTO, error)
}

type RestoreTicketExecutor interface {
	Execute(ctx context.Context, cmd RestoreTicketCommand) (*dto.TicketDTO, error)
}

type GetTicketExecutor interface {
	Execute(ctx context.Context, query GetTicketQuery) (*dto.TicketDTO, error)
}

type ListTicketsExecutor interface {
	Execute(ctx context.Context, query ListTicketsQuery) (*dto.ListTicketsResultDTO, error)
}

// EdgeCreator records an undirected edge between two existing tickets.
type EdgeCreator interface {
	CreateEdge(ctx context.Context, a, b, kind, createdBy string) (*relationship.Relationship, error)
}

// GenerationRecorder receives pipeline measurements.
type GenerationRecorder interface {
	RecordGeneration(outcome string, duration time.Duration)
	RecordCompletion(call string, err error, duration time.Duration)
	RecordContextLink(status string)
}

type nopRecorder struct{}

func (nopRecorder) RecordGeneration(string, time.Duration)        {}
func (nopRecorder) RecordCompletion(string, error, time.Duration) {}
func (nopRecorder) RecordContextLink(string)                      {}
