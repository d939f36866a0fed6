package testutil

import (
	"jirant/internal/domain/ticket"
	"jirant/internal/domain/tickettemplate"
)

// NewTicket builds an active ticket owned by owner; it panics on invalid input.
func NewTicket(title, ticketType, owner string) *ticket.Ticket {
	t, err := ticket.NewTicket(title, "Generated body for "+title, ticketType, "", owner, "input for "+title, nil)
	if err != nil {
		panic(err)
	}
	return t
}

// BugReport is the two-section template used across pipeline tests.
func BugReport() tickettemplate.Definition {
	return tickettemplate.Definition{
		Name:        "Bug Report",
		Description: "Report a software bug or issue",
		Details:     "Use this template to report bugs with detailed steps to reproduce",
		Sections: []tickettemplate.Section{
			{SectionTitle: "Description", Content: "Describe the bug and its impact"},
			{SectionTitle: "Steps to Reproduce", Content: "List the steps to reproduce the issue"},
		},
		Icon:  "bug",
		Color: "text-red-500",
		Tier:  1,
	}
}

// NewTemplate builds a template from def owned by owner (nil for system).
func NewTemplate(def tickettemplate.Definition, owner *string) *tickettemplate.TicketTemplate {
	t, err := tickettemplate.NewTicketTemplate(def, owner)
	if err != nil {
		panic(err)
	}
	return t
}

func StrPtr(s string) *string { return &s }
