package tickettemplate

import "context"

type TicketTemplateRepository interface {
	Create(ctx context.Context, template *TicketTemplate) error
	Update(ctx context.Context, template *TicketTemplate) error
	Delete(ctx context.Context, sid string) error
	GetBySID(ctx context.Context, sid string) (*TicketTemplate, error)
	// List returns system templates plus those owned by OwnerID, ordered by tier then name.
	List(ctx context.Context, filter TemplateFilter) ([]*TicketTemplate, error)
	// ExistsByName reports whether ownerScope already has a template with the
	// folded name, ignoring excludeSID.
	ExistsByName(ctx context.Context, ownerScope, nameKey, excludeSID string) (bool, error)
}

type TemplateFilter struct {
	OwnerID       string // empty lists system templates only
	IncludeSystem bool
}
