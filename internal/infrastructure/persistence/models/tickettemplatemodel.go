package models

import (
	"time"

	"gorm.io/datatypes"

	"jirant/internal/shared/constants"
)

// TicketTemplateModel is the GORM model for ticket templates. OwnerScope is
// the creator ID or "_system"; (owner_scope, name_key) is unique.
type TicketTemplateModel struct {
	ID                uint           `gorm:"primaryKey;autoIncrement"`
	SID               string         `gorm:"column:sid;type:varchar(50);not null;uniqueIndex"`
	Name              string         `gorm:"column:name;type:varchar(255);not null"`
	NameKey           string         `gorm:"column:name_key;type:varchar(255);not null;uniqueIndex:idx_templates_scope_name"`
	OwnerScope        string         `gorm:"column:owner_scope;type:varchar(100);not null;uniqueIndex:idx_templates_scope_name"`
	CreatedBy         *string        `gorm:"column:created_by;type:varchar(100)"`
	Description       string         `gorm:"column:description;type:text"`
	Details           string         `gorm:"column:details;type:text;not null"`
	TemplateStructure datatypes.JSON `gorm:"column:template_structure"`
	Icon              string         `gorm:"column:icon;type:varchar(100);not null"`
	Color             string         `gorm:"column:color;type:varchar(100);not null"`
	Tier              int            `gorm:"column:tier;not null;default:3"`
	CreatedAt         time.Time      `gorm:"column:created_at"`
	UpdatedAt         time.Time      `gorm:"column:updated_at"`
}

func (TicketTemplateModel) TableName() string {
	return constants.TableTicketTemplates
}
