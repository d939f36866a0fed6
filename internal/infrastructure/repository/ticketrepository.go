package repository

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"jirant/internal/domain/ticket"
	"jirant/internal/infrastructure/persistence/mappers"
	"jirant/internal/infrastructure/persistence/models"
	"jirant/internal/shared/db"
	apperrors "jirant/internal/shared/errors"
	"jirant/internal/shared/logger"
)

// TicketRepository implements ticket.TicketRepository on GORM.
type TicketRepository struct {
	db     *gorm.DB
	mapper mappers.TicketMapper
	logger logger.Interface
}

func NewTicketRepository(gormDB *gorm.DB, logger logger.Interface) ticket.TicketRepository {
	return &TicketRepository{
		db:     gormDB,
		mapper: mappers.NewTicketMapper(),
		logger: logger,
	}
}

func (r *TicketRepository) Create(ctx context.Context, t *ticket.Ticket) error {
	model, err := r.mapper.ToModel(t)
	if err != nil {
		return err
	}

	tx := db.GetTxFromContext(ctx, r.db)
	if err := tx.Create(model).Error; err != nil {
		if apperrors.IsDuplicateError(err) {
			return apperrors.NewDuplicateError("ticket already exists")
		}
		r.logger.Errorw("failed to create ticket", "sid", t.SID(), "error", err)
		return fmt.Errorf("failed to create ticket: %w", err)
	}

	if err := t.SetID(model.ID); err != nil {
		return fmt.Errorf("failed to set ticket ID: %w", err)
	}
	return nil
}

// Update persists the mutable lifecycle fields.
func (r *TicketRepository) Update(ctx context.Context, t *ticket.Ticket) error {
	tx := db.GetTxFromContext(ctx, r.db)
	result := tx.Model(&models.TicketModel{}).
		Where("sid = ?", t.SID()).
		Updates(map[string]interface{}{
			"status":     t.Status().String(),
			"updated_at": t.UpdatedAt(),
		})
	if result.Error != nil {
		r.logger.Errorw("failed to update ticket", "sid", t.SID(), "error", result.Error)
		return fmt.Errorf("failed to update ticket: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return apperrors.NewNotFoundError("ticket not found", t.SID())
	}
	return nil
}

func (r *TicketRepository) GetBySID(ctx context.Context, sid string) (*ticket.Ticket, error) {
	var model models.TicketModel

	tx := db.GetTxFromContext(ctx, r.db)
	if err := tx.Where("sid = ?", sid).First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NewNotFoundError("ticket not found", sid)
		}
		return nil, fmt.Errorf("failed to get ticket: %w", err)
	}

	return r.mapper.ToDomain(&model)
}

func (r *TicketRepository) GetBySIDs(ctx context.Context, sids []string) (map[string]*ticket.Ticket, error) {
	result := make(map[string]*ticket.Ticket, len(sids))
	if len(sids) == 0 {
		return result, nil
	}

	var modelList []*models.TicketModel
	tx := db.GetTxFromContext(ctx, r.db)
	if err := tx.Where("sid IN ?", sids).Find(&modelList).Error; err != nil {
		return nil, fmt.Errorf("failed to get tickets: %w", err)
	}

	tickets, err := r.mapper.ToDomainList(modelList)
	if err != nil {
		return nil, err
	}
	for _, t := range tickets {
		result[t.SID()] = t
	}
	return result, nil
}

// List returns newest tickets first. Deleted tickets are excluded unless the
// filter asks for a status explicitly.
func (r *TicketRepository) List(ctx context.Context, filter ticket.TicketFilter) ([]*ticket.Ticket, int64, error) {
	query := db.GetTxFromContext(ctx, r.db).
		Model(&models.TicketModel{}).
		Scopes(db.OwnedBy(filter.CreatedBy))

	if filter.Status != nil {
		query = query.Where("status = ?", filter.Status.String())
	} else {
		query = query.Scopes(db.NotDeleted())
	}
	if filter.TicketType != "" {
		query = query.Where("ticket_type = ?", filter.TicketType)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count tickets: %w", err)
	}

	var modelList []*models.TicketModel
	if err := query.Order("created_at DESC, id DESC").
		Scopes(db.Paginate(filter.Page, filter.PageSize)).
		Find(&modelList).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to list tickets: %w", err)
	}

	tickets, err := r.mapper.ToDomainList(modelList)
	if err != nil {
		return nil, 0, err
	}
	return tickets, total, nil
}

func (r *TicketRepository) CountByType(ctx context.Context, name string, ownerID string, templateSID string, excludeDeleted bool) (int64, error) {
	query := db.GetTxFromContext(ctx, r.db).Model(&models.TicketModel{})
	switch {
	case templateSID == "":
		query = query.Where("ticket_type = ?", name).Scopes(db.OwnedBy(ownerID))
	case ownerID == "":
		query = query.Where("(ticket_type = ? OR template_sid = ?)", name, templateSID)
	default:
		query = query.Where("((ticket_type = ? AND created_by = ?) OR template_sid = ?)", name, ownerID, templateSID)
	}
	if excludeDeleted {
		query = query.Scopes(db.NotDeleted())
	}

	var count int64
	if err := query.Count(&count).Error; err != nil {
		return 0, fmt.Errorf("failed to count tickets by type: %w", err)
	}
	return count, nil
}
