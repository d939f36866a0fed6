package repository

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"jirant/internal/domain/tickettemplate"
	"jirant/internal/infrastructure/persistence/mappers"
	"jirant/internal/infrastructure/persistence/models"
	"jirant/internal/shared/db"
	apperrors "jirant/internal/shared/errors"
	"jirant/internal/shared/logger"
)

type TicketTemplateRepository struct {
	db     *gorm.DB
	mapper mappers.TicketTemplateMapper
	logger logger.Interface
}

func NewTicketTemplateRepository(gormDB *gorm.DB, logger logger.Interface) tickettemplate.TicketTemplateRepository {
	return &TicketTemplateRepository{
		db:     gormDB,
		mapper: mappers.NewTicketTemplateMapper(),
		logger: logger,
	}
}

func duplicateNameError(name string) error {
	return apperrors.NewDuplicateError("a ticket type with this name already exists", name).
		WithReason(apperrors.ReasonDuplicateName)
}

func (r *TicketTemplateRepository) Create(ctx context.Context, t *tickettemplate.TicketTemplate) error {
	model, err := r.mapper.ToModel(t)
	if err != nil {
		return err
	}

	tx := db.GetTxFromContext(ctx, r.db)
	if err := tx.Create(model).Error; err != nil {
		if apperrors.IsDuplicateError(err) {
			return duplicateNameError(t.Name())
		}
		r.logger.Errorw("failed to create ticket template", "name", t.Name(), "error", err)
		return fmt.Errorf("failed to create ticket template: %w", err)
	}

	if err := t.SetID(model.ID); err != nil {
		return fmt.Errorf("failed to set template ID: %w", err)
	}
	return nil
}

func (r *TicketTemplateRepository) Update(ctx context.Context, t *tickettemplate.TicketTemplate) error {
	model, err := r.mapper.ToModel(t)
	if err != nil {
		return err
	}

	tx := db.GetTxFromContext(ctx, r.db)
	result := tx.Model(&models.TicketTemplateModel{}).
		Where("sid = ?", t.SID()).
		Updates(map[string]interface{}{
			"name":               model.Name,
			"name_key":           model.NameKey,
			"description":        model.Description,
			"details":            model.Details,
			"template_structure": model.TemplateStructure,
			"icon":               model.Icon,
			"color":              model.Color,
			"tier":               model.Tier,
			"updated_at":         model.UpdatedAt,
		})
	if result.Error != nil {
		if apperrors.IsDuplicateError(result.Error) {
			return duplicateNameError(t.Name())
		}
		r.logger.Errorw("failed to update ticket template", "sid", t.SID(), "error", result.Error)
		return fmt.Errorf("failed to update ticket template: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return apperrors.NewNotFoundError("ticket type not found", t.SID())
	}
	return nil
}

func (r *TicketTemplateRepository) Delete(ctx context.Context, sid string) error {
	tx := db.GetTxFromContext(ctx, r.db)
	result := tx.Where("sid = ?", sid).Delete(&models.TicketTemplateModel{})
	if result.Error != nil {
		r.logger.Errorw("failed to delete ticket template", "sid", sid, "error", result.Error)
		return fmt.Errorf("failed to delete ticket template: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return apperrors.NewNotFoundError("ticket type not found", sid)
	}
	return nil
}

func (r *TicketTemplateRepository) GetBySID(ctx context.Context, sid string) (*tickettemplate.TicketTemplate, error) {
	var model models.TicketTemplateModel

	tx := db.GetTxFromContext(ctx, r.db)
	if err := tx.Where("sid = ?", sid).First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NewNotFoundError("ticket type not found", sid)
		}
		return nil, fmt.Errorf("failed to get ticket template: %w", err)
	}

	return r.mapper.ToDomain(&model)
}

func (r *TicketTemplateRepository) List(ctx context.Context, filter tickettemplate.TemplateFilter) ([]*tickettemplate.TicketTemplate, error) {
	scopes := make([]string, 0, 2)
	if filter.IncludeSystem {
		scopes = append(scopes, tickettemplate.SystemScope)
	}
	if filter.OwnerID != "" {
		scopes = append(scopes, filter.OwnerID)
	}
	if len(scopes) == 0 {
		return []*tickettemplate.TicketTemplate{}, nil
	}

	var modelList []*models.TicketTemplateModel
	tx := db.GetTxFromContext(ctx, r.db)
	if err := tx.Where("owner_scope IN ?", scopes).
		Order("tier ASC, name ASC, id ASC").
		Find(&modelList).Error; err != nil {
		return nil, fmt.Errorf("failed to list ticket templates: %w", err)
	}

	return r.mapper.ToDomainList(modelList)
}

func (r *TicketTemplateRepository) ExistsByName(ctx context.Context, ownerScope, nameKey, excludeSID string) (bool, error) {
	query := db.GetTxFromContext(ctx, r.db).
		Model(&models.TicketTemplateModel{}).
		Where("owner_scope = ? AND name_key = ?", ownerScope, nameKey)
	if excludeSID != "" {
		query = query.Where("sid <> ?", excludeSID)
	}

	var count int64
	if err := query.Count(&count).Error; err != nil {
		return false, fmt.Errorf("failed to check ticket template name: %w", err)
	}
	return count > 0, nil
}
