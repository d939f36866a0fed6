package ticket

import (
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	vo "jirant/internal/domain/ticket/valueobjects"
	"jirant/internal/shared/biztime"
	"jirant/internal/shared/constants"
	"jirant/internal/shared/id"
)

// Ticket is a generated work item. Tickets are never physically deleted;
// soft delete flips the status and keeps every other field intact.
type Ticket struct {
	id               uint
	sid              string
	title            string
	description      string
	ticketType       string // template name at generation time
	templateSID      string // provenance only, may dangle
	status           vo.TicketStatus
	createdBy        string
	userInput        string
	contextTicketIDs []string
	createdAt        time.Time
	updatedAt        time.Time
}

func NewTicket(
	title string,
	description string,
	ticketType string,
	templateSID string,
	createdBy string,
	userInput string,
	contextTicketIDs []string,
) (*Ticket, error) {
	if err := validateTitle(title); err != nil {
		return nil, err
	}
	if strings.TrimSpace(description) == "" {
		return nil, fmt.Errorf("description is required")
	}
	if strings.TrimSpace(ticketType) == "" {
		return nil, fmt.Errorf("ticket type is required")
	}
	if createdBy == "" {
		return nil, fmt.Errorf("creator ID is required")
	}

	sid, err := id.NewTicketID()
	if err != nil {
		return nil, fmt.Errorf("failed to generate SID: %w", err)
	}

	now := biztime.NowUTC()
	return &Ticket{
		sid:              sid,
		title:            title,
		description:      description,
		ticketType:       ticketType,
		templateSID:      templateSID,
		status:           vo.StatusActive,
		createdBy:        createdBy,
		userInput:        userInput,
		contextTicketIDs: copyIDs(contextTicketIDs),
		createdAt:        now,
		updatedAt:        now,
	}, nil
}

func ReconstructTicket(
	id uint,
	sid string,
	title string,
	description string,
	ticketType string,
	templateSID string,
	status vo.TicketStatus,
	createdBy string,
	userInput string,
	contextTicketIDs []string,
	createdAt, updatedAt time.Time,
) (*Ticket, error) {
	if id == 0 {
		return nil, fmt.Errorf("ticket ID cannot be zero")
	}
	if sid == "" {
		return nil, fmt.Errorf("ticket SID is required")
	}
	if !status.IsValid() {
		return nil, fmt.Errorf("invalid status: %s", status)
	}

	return &Ticket{
		id:               id,
		sid:              sid,
		title:            title,
		description:      description,
		ticketType:       ticketType,
		templateSID:      templateSID,
		status:           status,
		createdBy:        createdBy,
		userInput:        userInput,
		contextTicketIDs: copyIDs(contextTicketIDs),
		createdAt:        createdAt,
		updatedAt:        updatedAt,
	}, nil
}

func validateTitle(title string) error {
	if strings.TrimSpace(title) == "" {
		return fmt.Errorf("title is required")
	}
	if utf8.RuneCountInString(title) > constants.MaxTitleLength {
		return fmt.Errorf("title exceeds maximum length of %d characters", constants.MaxTitleLength)
	}
	return nil
}

func copyIDs(ids []string) []string {
	out := make([]string, len(ids))
	copy(out, ids)
	return out
}

func (t *Ticket) ID() uint                     { return t.id }
func (t *Ticket) SID() string                  { return t.sid }
func (t *Ticket) Title() string                { return t.title }
func (t *Ticket) Description() string          { return t.description }
func (t *Ticket) TicketType() string           { return t.ticketType }
func (t *Ticket) TemplateSID() string          { return t.templateSID }
func (t *Ticket) Status() vo.TicketStatus      { return t.status }
func (t *Ticket) CreatedBy() string            { return t.createdBy }
func (t *Ticket) UserInput() string            { return t.userInput }
func (t *Ticket) ContextTicketIDs() []string   { return copyIDs(t.contextTicketIDs) }
func (t *Ticket) CreatedAt() time.Time         { return t.createdAt }
func (t *Ticket) UpdatedAt() time.Time         { return t.updatedAt }
func (t *Ticket) IsDeleted() bool              { return t.status.IsDeleted() }
func (t *Ticket) IsOwnedBy(userID string) bool { return t.createdBy == userID }

// SetID sets the storage ID (only for persistence layer use)
func (t *Ticket) SetID(id uint) error {
	if t.id != 0 {
		return fmt.Errorf("ticket ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("ticket ID cannot be zero")
	}
	t.id = id
	return nil
}

// SoftDelete marks the ticket deleted. It reports whether anything changed;
// deleting an already deleted ticket is a no-op.
func (t *Ticket) SoftDelete() bool {
	return t.changeStatus(vo.StatusDeleted)
}

// Restore reactivates a soft-deleted ticket. Restoring an active ticket is a no-op.
func (t *Ticket) Restore() bool {
	return t.changeStatus(vo.StatusActive)
}

func (t *Ticket) changeStatus(target vo.TicketStatus) bool {
	if t.status == target || !t.status.CanTransitionTo(target) {
		return false
	}
	t.status = target
	t.updatedAt = biztime.NowUTC()
	return true
}
