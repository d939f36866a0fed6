package mappers

import (
	"encoding/json"
	"fmt"

	"gorm.io/datatypes"

	"jirant/internal/domain/tickettemplate"
	"jirant/internal/infrastructure/persistence/models"
	"jirant/internal/shared/mapper"
)

type TicketTemplateMapper interface {
	ToModel(t *tickettemplate.TicketTemplate) (*models.TicketTemplateModel, error)
	ToDomain(model *models.TicketTemplateModel) (*tickettemplate.TicketTemplate, error)
	ToDomainList(list []*models.TicketTemplateModel) ([]*tickettemplate.TicketTemplate, error)
}

type TicketTemplateMapperImpl struct{}

func NewTicketTemplateMapper() TicketTemplateMapper {
	return &TicketTemplateMapperImpl{}
}

func (m *TicketTemplateMapperImpl) ToModel(t *tickettemplate.TicketTemplate) (*models.TicketTemplateModel, error) {
	structure, err := json.Marshal(t.Sections())
	if err != nil {
		return nil, fmt.Errorf("failed to marshal template structure: %w", err)
	}

	return &models.TicketTemplateModel{
		ID:                t.ID(),
		SID:               t.SID(),
		Name:              t.Name(),
		NameKey:           t.NameKey(),
		OwnerScope:        t.OwnerScope(),
		CreatedBy:         t.CreatedBy(),
		Description:       t.Description(),
		Details:           t.Details(),
		TemplateStructure: datatypes.JSON(structure),
		Icon:              t.Icon(),
		Color:             t.Color(),
		Tier:              t.Tier(),
		CreatedAt:         t.CreatedAt(),
		UpdatedAt:         t.UpdatedAt(),
	}, nil
}

func (m *TicketTemplateMapperImpl) ToDomain(model *models.TicketTemplateModel) (*tickettemplate.TicketTemplate, error) {
	if model == nil {
		return nil, nil
	}

	sections := []tickettemplate.Section{}
	if len(model.TemplateStructure) > 0 {
		if err := json.Unmarshal(model.TemplateStructure, &sections); err != nil {
			return nil, fmt.Errorf("failed to unmarshal template structure (id=%d): %w", model.ID, err)
		}
	}

	return tickettemplate.ReconstructTicketTemplate(
		model.ID,
		model.SID,
		tickettemplate.Definition{
			Name:        model.Name,
			Description: model.Description,
			Details:     model.Details,
			Sections:    sections,
			Icon:        model.Icon,
			Color:       model.Color,
			Tier:        model.Tier,
		},
		model.CreatedBy,
		model.CreatedAt,
		model.UpdatedAt,
	)
}

func (m *TicketTemplateMapperImpl) ToDomainList(list []*models.TicketTemplateModel) ([]*tickettemplate.TicketTemplate, error) {
	return mapper.MapSliceWithError(list, m.ToDomain)
}
