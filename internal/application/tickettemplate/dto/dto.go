package dto

import (
	"time"

	"jirant/internal/domain/tickettemplate"
	"jirant/internal/shared/mapper"
)

type SectionDTO struct {
	SectionTitle string `json:"sectionTitle" binding:"required,max=200"`
	Content      string `json:"content" binding:"max=2000"`
}

// TicketTypeDTO is the external shape of a template. The source system
// called templates "ticket types"; the API keeps that name.
type TicketTypeDTO struct {
	ID                string       `json:"id"`
	Name              string       `json:"name"`
	Description       string       `json:"description"`
	Details           string       `json:"details"`
	TemplateStructure []SectionDTO `json:"templateStructure"`
	Icon              string       `json:"icon"`
	Color             string       `json:"color"`
	Tier              int          `json:"tier"`
	CreatedBy         *string      `json:"createdBy"`
	IsSystem          bool         `json:"isSystem"`
	CreatedAt         time.Time    `json:"createdAt"`
	UpdatedAt         time.Time    `json:"updatedAt"`
}

type UsageDTO struct {
	IsInUse bool  `json:"isInUse"`
	Count   int64 `json:"count"`
}

type SeedResultDTO struct {
	Created []TicketTypeDTO `json:"created"`
	Skipped []string        `json:"skipped"`
}

func ToSectionDTO(s tickettemplate.Section) SectionDTO {
	return SectionDTO{SectionTitle: s.SectionTitle, Content: s.Content}
}

func ToSection(s SectionDTO) tickettemplate.Section {
	return tickettemplate.Section{SectionTitle: s.SectionTitle, Content: s.Content}
}

// ToSections keeps an empty structure non-nil so it serializes as [].
func ToSections(sections []SectionDTO) []tickettemplate.Section {
	out := mapper.MapSlice(sections, ToSection)
	if out == nil {
		out = []tickettemplate.Section{}
	}
	return out
}

func ToTicketTypeDTO(t *tickettemplate.TicketTemplate) TicketTypeDTO {
	sections := mapper.MapSlice(t.Sections(), ToSectionDTO)
	if sections == nil {
		sections = []SectionDTO{}
	}
	return TicketTypeDTO{
		ID:                t.SID(),
		Name:              t.Name(),
		Description:       t.Description(),
		Details:           t.Details(),
		TemplateStructure: sections,
		Icon:              t.Icon(),
		Color:             t.Color(),
		Tier:              t.Tier(),
		CreatedBy:         t.CreatedBy(),
		IsSystem:          t.IsSystem(),
		CreatedAt:         t.CreatedAt(),
		UpdatedAt:         t.UpdatedAt(),
	}
}

func ToTicketTypeDTOs(templates []*tickettemplate.TicketTemplate) []TicketTypeDTO {
	out := mapper.MapSlice(templates, ToTicketTypeDTO)
	if out == nil {
		out = []TicketTypeDTO{}
	}
	return out
}
