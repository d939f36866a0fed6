package services

import (
	"strings"
	"unicode/utf8"

	"jirant/internal/domain/ticket"
	"jirant/internal/domain/tickettemplate"
	"jirant/internal/shared/constants"
)

const baseSystemPrompt = "You're a product manager. Help me write tickets and user stories. " +
	"I will give you general descriptions of what I want and you will reorganize and structure the idea properly. " +
	"You are very thoughtful and thorough in your descriptions. " +
	"You will ALWAYS strictly follow the formatting for the sections in your response."

const titleSystemPrompt = "You are a ticket title generator. Create a clear, concise title (maximum 50 tokens) " +
	"that summarizes the given ticket description. The title should be specific enough to distinguish the ticket from others."

// Prompt is the pair of messages sent for the ticket body.
type Prompt struct {
	System string
	User   string
}

// BuildPrompt renders the generation prompt. The output depends only on its
// inputs: context tickets in the given order, then the user input, then the
// sections in template order.
func BuildPrompt(tpl *tickettemplate.TicketTemplate, userInput string, contextTickets []*ticket.Ticket) Prompt {
	var system strings.Builder
	system.WriteString(baseSystemPrompt)
	if details := strings.TrimSpace(tpl.Details()); details != "" {
		system.WriteString("\n\nTemplate guidance (")
		system.WriteString(tpl.Name())
		system.WriteString("): ")
		system.WriteString(details)
	}

	var user strings.Builder
	if len(contextTickets) > 0 {
		user.WriteString("Related Context:\n")
		for i, t := range contextTickets {
			if i > 0 {
				user.WriteString("\n")
			}
			user.WriteString("- Title: ")
			user.WriteString(t.Title())
			user.WriteString("\n  Type: ")
			user.WriteString(t.TicketType())
			user.WriteString("\n  Description: ")
			user.WriteString(t.Description())
			user.WriteString("\n")
		}
		user.WriteString("\n")
	}

	user.WriteString("User Input: ")
	user.WriteString(userInput)
	user.WriteString("\n\nTemplate Structure:\n")
	for _, s := range tpl.Sections() {
		content := s.Content
		if strings.TrimSpace(content) == "" {
			content = "..."
		}
		user.WriteString(s.SectionTitle)
		user.WriteString(": ")
		user.WriteString(content)
		user.WriteString("\n")
	}

	return Prompt{System: system.String(), User: user.String()}
}

// BuildTitlePrompt asks for a one-line summary of a generated description.
func BuildTitlePrompt(description string) Prompt {
	return Prompt{
		System: titleSystemPrompt,
		User:   "Generate a title for this ticket description:\n" + description,
	}
}

// CleanTitle takes the first non-empty line, strips a "Title:" label,
// surrounding quotes and markdown emphasis, and caps the length. It returns
// the fallback title when nothing usable is left.
func CleanTitle(raw string) string {
	line := ""
	for _, l := range strings.Split(raw, "\n") {
		if l = strings.TrimSpace(l); l != "" {
			line = l
			break
		}
	}

	line = strings.TrimLeft(line, "# ")
	if len(line) >= 6 && strings.EqualFold(line[:6], "title:") {
		line = strings.TrimSpace(line[6:])
	}
	line = strings.Trim(line, "\"'`*“”‘’ ")

	if utf8.RuneCountInString(line) > constants.MaxTitleLength {
		line = strings.TrimSpace(string([]rune(line)[:constants.MaxTitleLength]))
	}
	if line == "" {
		return constants.FallbackTicketTitle
	}
	return line
}
