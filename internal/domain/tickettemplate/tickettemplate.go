package tickettemplate

import (
	"fmt"
	"strings"
	"time"

	"jirant/internal/shared/biztime"
	"jirant/internal/shared/id"
)

const (
	MinTier = 1
	MaxTier = 5
)

// Definition holds every user-editable field of a template. Create, full
// replace and restore all go through it so they validate identically.
type Definition struct {
	Name        string
	Description string
	Details     string
	Sections    []Section
	Icon        string
	Color       string
	Tier        int
}

// Validate checks required fields, tier range and sections.
func (d Definition) Validate() error {
	if strings.TrimSpace(d.Name) == "" {
		return fmt.Errorf("name is required")
	}
	if strings.TrimSpace(d.Icon) == "" {
		return fmt.Errorf("icon is required")
	}
	if strings.TrimSpace(d.Color) == "" {
		return fmt.Errorf("color is required")
	}
	if strings.TrimSpace(d.Details) == "" {
		return fmt.Errorf("details is required")
	}
	if d.Tier < MinTier || d.Tier > MaxTier {
		return fmt.Errorf("tier must be between %d and %d", MinTier, MaxTier)
	}
	return validateSections(d.Sections)
}

// TicketTemplate is a user-defined or system schema for generated tickets.
// Tickets reference it by name, not by ID.
type TicketTemplate struct {
	id          uint
	sid         string
	name        string
	description string
	details     string
	sections    []Section
	icon        string
	color       string
	tier        int
	createdBy   *string
	createdAt   time.Time
	updatedAt   time.Time
}

// NewTicketTemplate validates def and builds a template owned by createdBy
// (nil for a system template).
func NewTicketTemplate(def Definition, createdBy *string) (*TicketTemplate, error) {
	if err := def.Validate(); err != nil {
		return nil, err
	}
	if createdBy != nil && *createdBy == "" {
		return nil, fmt.Errorf("creator ID cannot be empty")
	}

	sid, err := id.NewTemplateID()
	if err != nil {
		return nil, fmt.Errorf("failed to generate SID: %w", err)
	}

	now := biztime.NowUTC()
	t := &TicketTemplate{
		sid:       sid,
		createdBy: copyOwner(createdBy),
		createdAt: now,
		updatedAt: now,
	}
	t.apply(def)
	return t, nil
}

// ReconstructTicketTemplate reconstructs a template from persistence
func ReconstructTicketTemplate(
	id uint,
	sid string,
	def Definition,
	createdBy *string,
	createdAt, updatedAt time.Time,
) (*TicketTemplate, error) {
	if id == 0 {
		return nil, fmt.Errorf("template ID cannot be zero")
	}
	if sid == "" {
		return nil, fmt.Errorf("template SID is required")
	}

	t := &TicketTemplate{
		id:        id,
		sid:       sid,
		createdBy: copyOwner(createdBy),
		createdAt: createdAt,
		updatedAt: updatedAt,
	}
	t.apply(def)
	return t, nil
}

func (t *TicketTemplate) apply(def Definition) {
	t.name = strings.TrimSpace(def.Name)
	t.description = def.Description
	t.details = def.Details
	t.sections = copySections(def.Sections)
	t.icon = def.Icon
	t.color = def.Color
	t.tier = def.Tier
}

func copyOwner(createdBy *string) *string {
	if createdBy == nil {
		return nil
	}
	owner := *createdBy
	return &owner
}

func (t *TicketTemplate) ID() uint             { return t.id }
func (t *TicketTemplate) SID() string          { return t.sid }
func (t *TicketTemplate) Name() string         { return t.name }
func (t *TicketTemplate) NameKey() string      { return FoldName(t.name) }
func (t *TicketTemplate) Description() string  { return t.description }
func (t *TicketTemplate) Details() string      { return t.details }
func (t *TicketTemplate) Sections() []Section  { return copySections(t.sections) }
func (t *TicketTemplate) Icon() string         { return t.icon }
func (t *TicketTemplate) Color() string        { return t.color }
func (t *TicketTemplate) Tier() int            { return t.tier }
func (t *TicketTemplate) CreatedBy() *string   { return copyOwner(t.createdBy) }
func (t *TicketTemplate) CreatedAt() time.Time { return t.createdAt }
func (t *TicketTemplate) UpdatedAt() time.Time { return t.updatedAt }
func (t *TicketTemplate) OwnerScope() string   { return ScopeFor(t.createdBy) }

func (t *TicketTemplate) IsSystem() bool {
	return t.createdBy == nil
}

func (t *TicketTemplate) IsOwnedBy(userID string) bool {
	return t.createdBy != nil && *t.createdBy == userID
}

// Definition returns the editable fields, used to snapshot a template before deletion.
func (t *TicketTemplate) Definition() Definition {
	return Definition{
		Name:        t.name,
		Description: t.description,
		Details:     t.details,
		Sections:    copySections(t.sections),
		Icon:        t.icon,
		Color:       t.color,
		Tier:        t.tier,
	}
}

// SetID sets the storage ID (only for persistence layer use)
func (t *TicketTemplate) SetID(id uint) error {
	if t.id != 0 {
		return fmt.Errorf("template ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("template ID cannot be zero")
	}
	t.id = id
	return nil
}

// Renames reports whether applying def would change the folded name.
func (t *TicketTemplate) Renames(def Definition) bool {
	return FoldName(def.Name) != t.NameKey()
}

// ChangesName reports whether def carries a different name string, including
// case-only edits. Tickets match their template by the exact name.
func (t *TicketTemplate) ChangesName(def Definition) bool {
	return strings.TrimSpace(def.Name) != t.name
}

// Replace overwrites every editable field after validating def.
func (t *TicketTemplate) Replace(def Definition) error {
	if err := def.Validate(); err != nil {
		return err
	}
	t.apply(def)
	t.updatedAt = biztime.NowUTC()
	return nil
}
