package relationship

import "context"

type RelationshipRepository interface {
	// Create inserts the edge. A concurrent insert of the same pair surfaces
	// as a duplicate error from the unique pair index.
	Create(ctx context.Context, rel *Relationship) error
	// FindBetween returns the edge for the pair in either order, or nil.
	FindBetween(ctx context.Context, pair Pair) (*Relationship, error)
	// FindByTicket returns every edge touching sid, oldest first.
	FindByTicket(ctx context.Context, sid string) ([]*Relationship, error)
	Delete(ctx context.Context, sid string) error
}
