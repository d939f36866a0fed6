package dto

import (
	"time"

	"jirant/internal/domain/relationship"
	"jirant/internal/shared/mapper"
)

type RelationshipDTO struct {
	ID               string    `json:"id"`
	Ticket1          string    `json:"ticket1"`
	Ticket2          string    `json:"ticket2"`
	RelationshipType string    `json:"relationshipType"`
	CreatedBy        string    `json:"createdBy"`
	CreatedAt        time.Time `json:"createdAt"`
}

func ToRelationshipDTO(r *relationship.Relationship) RelationshipDTO {
	return RelationshipDTO{
		ID:               r.SID(),
		Ticket1:          r.Ticket1(),
		Ticket2:          r.Ticket2(),
		RelationshipType: r.RelationshipType(),
		CreatedBy:        r.CreatedBy(),
		CreatedAt:        r.CreatedAt(),
	}
}

func ToRelationshipDTOs(rels []*relationship.Relationship) []RelationshipDTO {
	return mapper.MapSlice(rels, ToRelationshipDTO)
}
