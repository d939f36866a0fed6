package mappers

import (
	"jirant/internal/domain/relationship"
	"jirant/internal/infrastructure/persistence/models"
	"jirant/internal/shared/mapper"
)

type RelationshipMapper interface {
	ToModel(r *relationship.Relationship) *models.TicketRelationshipModel
	ToDomain(model *models.TicketRelationshipModel) (*relationship.Relationship, error)
	ToDomainList(list []*models.TicketRelationshipModel) ([]*relationship.Relationship, error)
}

type RelationshipMapperImpl struct{}

func NewRelationshipMapper() RelationshipMapper {
	return &RelationshipMapperImpl{}
}

func (m *RelationshipMapperImpl) ToModel(r *relationship.Relationship) *models.TicketRelationshipModel {
	pair := r.Pair()
	return &models.TicketRelationshipModel{
		ID:               r.ID(),
		SID:              r.SID(),
		Ticket1:          r.Ticket1(),
		Ticket2:          r.Ticket2(),
		PairLow:          pair.Low,
		PairHigh:         pair.High,
		RelationshipType: r.RelationshipType(),
		CreatedBy:        r.CreatedBy(),
		CreatedAt:        r.CreatedAt(),
	}
}

func (m *RelationshipMapperImpl) ToDomain(model *models.TicketRelationshipModel) (*relationship.Relationship, error) {
	if model == nil {
		return nil, nil
	}
	return relationship.ReconstructRelationship(
		model.ID,
		model.SID,
		model.Ticket1,
		model.Ticket2,
		model.RelationshipType,
		model.CreatedBy,
		model.CreatedAt,
	)
}

func (m *RelationshipMapperImpl) ToDomainList(list []*models.TicketRelationshipModel) ([]*relationship.Relationship, error) {
	return mapper.MapSliceWithError(list, m.ToDomain)
}
