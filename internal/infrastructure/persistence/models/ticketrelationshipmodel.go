package models

import (
	"time"

	"jirant/internal/shared/constants"
)

// TicketRelationshipModel stores one undirected edge. The unique index on
// (pair_low, pair_high) closes the race between concurrent creates of A-B and B-A.
type TicketRelationshipModel struct {
	ID               uint      `gorm:"primaryKey;autoIncrement"`
	SID              string    `gorm:"column:sid;type:varchar(50);not null;uniqueIndex"`
	Ticket1          string    `gorm:"column:ticket1;type:varchar(50);not null"`
	Ticket2          string    `gorm:"column:ticket2;type:varchar(50);not null"`
	PairLow          string    `gorm:"column:pair_low;type:varchar(50);not null;uniqueIndex:idx_relationships_pair"`
	PairHigh         string    `gorm:"column:pair_high;type:varchar(50);not null;uniqueIndex:idx_relationships_pair;index:idx_relationships_high"`
	RelationshipType string    `gorm:"column:relationship_type;type:varchar(50);not null;default:'related'"`
	CreatedBy        string    `gorm:"column:created_by;type:varchar(100)"`
	CreatedAt        time.Time `gorm:"column:created_at"`
}

func (TicketRelationshipModel) TableName() string {
	return constants.TableTicketRelationships
}
