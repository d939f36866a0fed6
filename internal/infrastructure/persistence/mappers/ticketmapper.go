package mappers

import (
	"encoding/json"
	"fmt"

	"gorm.io/datatypes"

	"jirant/internal/domain/ticket"
	vo "jirant/internal/domain/ticket/valueobjects"
	"jirant/internal/infrastructure/persistence/models"
	"jirant/internal/shared/mapper"
)

// TicketMapper handles the conversion between Ticket domain entities and persistence models.
type TicketMapper interface {
	ToModel(t *ticket.Ticket) (*models.TicketModel, error)
	ToDomain(model *models.TicketModel) (*ticket.Ticket, error)
	ToDomainList(list []*models.TicketModel) ([]*ticket.Ticket, error)
}

type TicketMapperImpl struct{}

func NewTicketMapper() TicketMapper {
	return &TicketMapperImpl{}
}

func (m *TicketMapperImpl) ToModel(t *ticket.Ticket) (*models.TicketModel, error) {
	contextIDs, err := json.Marshal(t.ContextTicketIDs())
	if err != nil {
		return nil, fmt.Errorf("failed to marshal context ticket IDs: %w", err)
	}

	return &models.TicketModel{
		ID:               t.ID(),
		SID:              t.SID(),
		Title:            t.Title(),
		Description:      t.Description(),
		TicketType:       t.TicketType(),
		TemplateSID:      t.TemplateSID(),
		Status:           t.Status().String(),
		CreatedBy:        t.CreatedBy(),
		UserInput:        t.UserInput(),
		ContextTicketIDs: datatypes.JSON(contextIDs),
		CreatedAt:        t.CreatedAt(),
		UpdatedAt:        t.UpdatedAt(),
	}, nil
}

func (m *TicketMapperImpl) ToDomain(model *models.TicketModel) (*ticket.Ticket, error) {
	if model == nil {
		return nil, nil
	}

	var contextIDs []string
	if len(model.ContextTicketIDs) > 0 {
		if err := json.Unmarshal(model.ContextTicketIDs, &contextIDs); err != nil {
			return nil, fmt.Errorf("failed to unmarshal context ticket IDs (id=%d): %w", model.ID, err)
		}
	}

	return ticket.ReconstructTicket(
		model.ID,
		model.SID,
		model.Title,
		model.Description,
		model.TicketType,
		model.TemplateSID,
		vo.TicketStatus(model.Status),
		model.CreatedBy,
		model.UserInput,
		contextIDs,
		model.CreatedAt,
		model.UpdatedAt,
	)
}

func (m *TicketMapperImpl) ToDomainList(list []*models.TicketModel) ([]*ticket.Ticket, error) {
	return mapper.MapSliceWithError(list, m.ToDomain)
}
