package ticket

import (
	"context"

	vo "jirant/internal/domain/ticket/valueobjects"
)

type TicketRepository interface {
	Create(ctx context.Context, ticket *Ticket) error
	Update(ctx context.Context, ticket *Ticket) error
	GetBySID(ctx context.Context, sid string) (*Ticket, error)
	// GetBySIDs returns the tickets that exist, keyed by SID. Missing SIDs are absent.
	GetBySIDs(ctx context.Context, sids []string) (map[string]*Ticket, error)
	List(ctx context.Context, filter TicketFilter) ([]*Ticket, int64, error)
	// CountByType counts tickets whose ticket type equals name. An empty
	// ownerID counts across all owners. A non-empty templateSID also counts
	// tickets generated from that template, whoever owns them.
	CountByType(ctx context.Context, name string, ownerID string, templateSID string, excludeDeleted bool) (int64, error)
}

type TicketFilter struct {
	CreatedBy  string // empty means any owner
	Status     *vo.TicketStatus
	TicketType string
	Page       int
	PageSize   int
}
