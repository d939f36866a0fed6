package tickettype

import (
	"jirant/internal/application/tickettemplate/dto"
	"jirant/internal/domain/tickettemplate"
)

// TicketTypeRequest is the body of create and update.
type TicketTypeRequest struct {
	Name              string           `json:"name" binding:"required,max=100"`
	Description       string           `json:"description" binding:"max=500"`
	Details           string           `json:"details" binding:"required,max=5000"`
	TemplateStructure []dto.SectionDTO `json:"templateStructure" binding:"omitempty,max=50,dive"`
	Icon              string           `json:"icon" binding:"required,max=50"`
	Color             string           `json:"color" binding:"required,max=50"`
	Tier              int              `json:"tier" binding:"required,gte=1,lte=5"`
}

func (r *TicketTypeRequest) ToDefinition() tickettemplate.Definition {
	return tickettemplate.Definition{
		Name:        r.Name,
		Description: r.Description,
		Details:     r.Details,
		Sections:    dto.ToSections(r.TemplateStructure),
		Icon:        r.Icon,
		Color:       r.Color,
		Tier:        r.Tier,
	}
}

type CreateTicketTypeRequest struct {
	TicketTypeRequest
	// IsSystem creates a shared template; requires the system template capability.
	IsSystem bool `json:"isSystem"`
}

// RestoreTicketTypeRequest accepts the snapshot returned by delete.
// Identity fields in the snapshot are ignored.
type RestoreTicketTypeRequest struct {
	TicketTypeRequest
	ID       string `json:"id"`
	IsSystem bool   `json:"isSystem"`
}
