package dto

import (
	"time"

	"jirant/internal/domain/ticket"
	"jirant/internal/shared/mapper"
	"jirant/internal/shared/services/markdown"
)

type TicketSectionDTO struct {
	SectionTitle string `json:"sectionTitle"`
	Content      string `json:"content"`
}

type TicketDTO struct {
	ID               string             `json:"id"`
	Title            string             `json:"title"`
	Description      string             `json:"description"`
	DescriptionHTML  string             `json:"descriptionHtml,omitempty"`
	Sections         []TicketSectionDTO `json:"sections,omitempty"`
	TicketType       string             `json:"ticketType"`
	TemplateID       string             `json:"templateId,omitempty"`
	Status           string             `json:"status"`
	CreatedBy        string             `json:"createdBy"`
	UserInput        string             `json:"userInput"`
	ContextTicketIDs []string           `json:"contextTicketIds"`
	CreatedAt        time.Time          `json:"createdAt"`
	UpdatedAt        time.Time          `json:"updatedAt"`
}

type ListTicketsResultDTO struct {
	Items    []TicketDTO `json:"items"`
	Total    int64       `json:"total"`
	Page     int         `json:"page"`
	PageSize int         `json:"pageSize"`
}

const (
	LinkStatusLinked = "linked"
	LinkStatusFailed = "failed"
)

// ContextLinkDTO is the outcome of linking the new ticket to one context ticket.
type ContextLinkDTO struct {
	ContextTicketID string `json:"contextTicketId"`
	RelationshipID  string `json:"relationshipId,omitempty"`
	Status          string `json:"status"`
	Error           string `json:"error,omitempty"`
}

// GenerationResultDTO always carries the persisted ticket. Warnings list
// context links that could not be recorded.
type GenerationResultDTO struct {
	Ticket   TicketDTO        `json:"ticket"`
	Links    []ContextLinkDTO `json:"links"`
	Warnings []string         `json:"warnings"`
}

func ToTicketDTO(t *ticket.Ticket) TicketDTO {
	ids := t.ContextTicketIDs()
	if ids == nil {
		ids = []string{}
	}
	return TicketDTO{
		ID:               t.SID(),
		Title:            t.Title(),
		Description:      t.Description(),
		TicketType:       t.TicketType(),
		TemplateID:       t.TemplateSID(),
		Status:           t.Status().String(),
		CreatedBy:        t.CreatedBy(),
		UserInput:        t.UserInput(),
		ContextTicketIDs: ids,
		CreatedAt:        t.CreatedAt(),
		UpdatedAt:        t.UpdatedAt(),
	}
}

func ToTicketDTOs(tickets []*ticket.Ticket) []TicketDTO {
	out := mapper.MapSlice(tickets, ToTicketDTO)
	if out == nil {
		out = []TicketDTO{}
	}
	return out
}

// ToDetailedTicketDTO adds the rendered body and its sections. A rendering
// failure leaves DescriptionHTML empty; the markdown is still returned.
func ToDetailedTicketDTO(t *ticket.Ticket, md markdown.MarkdownService) TicketDTO {
	out := ToTicketDTO(t)
	if html, err := md.ToHTMLSanitized(t.Description()); err == nil {
		out.DescriptionHTML = html
	}
	parsed := md.Parse(t.Title(), t.Description())
	out.Sections = mapper.MapSlice(parsed.Sections, func(s markdown.Section) TicketSectionDTO {
		return TicketSectionDTO{SectionTitle: s.SectionTitle, Content: s.Content}
	})
	return out
}
