package repository

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"jirant/internal/domain/relationship"
	"jirant/internal/infrastructure/persistence/mappers"
	"jirant/internal/infrastructure/persistence/models"
	"jirant/internal/shared/db"
	apperrors "jirant/internal/shared/errors"
	"jirant/internal/shared/logger"
)

type RelationshipRepository struct {
	db     *gorm.DB
	mapper mappers.RelationshipMapper
	logger logger.Interface
}

func NewRelationshipRepository(gormDB *gorm.DB, logger logger.Interface) relationship.RelationshipRepository {
	return &RelationshipRepository{
		db:     gormDB,
		mapper: mappers.NewRelationshipMapper(),
		logger: logger,
	}
}

func (r *RelationshipRepository) Create(ctx context.Context, rel *relationship.Relationship) error {
	model := r.mapper.ToModel(rel)

	tx := db.GetTxFromContext(ctx, r.db)
	if err := tx.Create(model).Error; err != nil {
		if apperrors.IsDuplicateError(err) {
			return apperrors.NewDuplicateEdgeError(rel.Pair().Low, rel.Pair().High)
		}
		r.logger.Errorw("failed to create relationship",
			"ticket1", rel.Ticket1(),
			"ticket2", rel.Ticket2(),
			"error", err,
		)
		return fmt.Errorf("failed to create relationship: %w", err)
	}

	if err := rel.SetID(model.ID); err != nil {
		return fmt.Errorf("failed to set relationship ID: %w", err)
	}
	return nil
}

func (r *RelationshipRepository) FindBetween(ctx context.Context, pair relationship.Pair) (*relationship.Relationship, error) {
	var model models.TicketRelationshipModel

	tx := db.GetTxFromContext(ctx, r.db)
	err := tx.Where("pair_low = ? AND pair_high = ?", pair.Low, pair.High).First(&model).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to find relationship: %w", err)
	}

	return r.mapper.ToDomain(&model)
}

func (r *RelationshipRepository) FindByTicket(ctx context.Context, sid string) ([]*relationship.Relationship, error) {
	var modelList []*models.TicketRelationshipModel

	tx := db.GetTxFromContext(ctx, r.db)
	if err := tx.Where("pair_low = ? OR pair_high = ?", sid, sid).
		Order("id ASC").
		Find(&modelList).Error; err != nil {
		return nil, fmt.Errorf("failed to list relationships: %w", err)
	}

	return r.mapper.ToDomainList(modelList)
}

func (r *RelationshipRepository) Delete(ctx context.Context, sid string) error {
	tx := db.GetTxFromContext(ctx, r.db)
	result := tx.Where("sid = ?", sid).Delete(&models.TicketRelationshipModel{})
	if result.Error != nil {
		r.logger.Errorw("failed to delete relationship", "sid", sid, "error", result.Error)
		return fmt.Errorf("failed to delete relationship: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return apperrors.NewNotFoundError("relationship not found", sid)
	}
	return nil
}
