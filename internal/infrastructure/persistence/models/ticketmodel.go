package models

import (
	"time"

	"gorm.io/datatypes"

	"jirant/internal/shared/constants"
)

// TicketModel is the GORM model for tickets. ticket_type stores the template
// name by value so usage counting survives template deletion.
type TicketModel struct {
	ID               uint           `gorm:"primaryKey;autoIncrement"`
	SID              string         `gorm:"column:sid;type:varchar(50);not null;uniqueIndex"`
	Title            string         `gorm:"column:title;type:varchar(800);not null"`
	Description      string         `gorm:"column:description;type:text;not null"`
	TicketType       string         `gorm:"column:ticket_type;type:varchar(255);not null;index:idx_tickets_type_status"`
	TemplateSID      string         `gorm:"column:template_sid;type:varchar(50)"`
	Status           string         `gorm:"column:status;type:varchar(20);not null;default:'active';index:idx_tickets_type_status"`
	CreatedBy        string         `gorm:"column:created_by;type:varchar(100);not null;index"`
	UserInput        string         `gorm:"column:user_input;type:text"`
	ContextTicketIDs datatypes.JSON `gorm:"column:context_ticket_ids"`
	CreatedAt        time.Time      `gorm:"column:created_at"`
	UpdatedAt        time.Time      `gorm:"column:updated_at"`
}

func (TicketModel) TableName() string {
	return constants.TableTickets
}
