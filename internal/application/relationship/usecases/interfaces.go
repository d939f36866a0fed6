package usecases

import (
	"context"

	"jirant/internal/application/relationship/dto"
)

type CreateRelationshipExecutor interface {
	Execute(ctx context.Context, cmd CreateRelationshipCommand) (*dto.RelationshipDTO, error)
}

type DeleteRelationshipExecutor interface {
	Execute(ctx context.Context, cmd DeleteRelationshipCommand) error
}

type ListRelationshipsExecutor interface {
	Execute(ctx context.Context, query ListRelationshipsQuery) ([]dto.RelationshipDTO, error)
}
