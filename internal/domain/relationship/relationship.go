// Package relationship models undirected edges between two tickets.
// An edge is identified by its unordered pair of ticket SIDs; at most one
// edge exists per pair regardless of the order it was created in.
package relationship

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"jirant/internal/shared/biztime"
	"jirant/internal/shared/constants"
	"jirant/internal/shared/id"
)

// ErrSelfLoop is returned when both endpoints are the same ticket.
var ErrSelfLoop = errors.New("a ticket cannot be related to itself")

// Pair is a normalized unordered pair of ticket SIDs with Low < High.
type Pair struct {
	Low  string
	High string
}

// NormalizePair orders a and b byte-wise so (a, b) and (b, a) map to the same Pair.
func NormalizePair(a, b string) (Pair, error) {
	if a == "" || b == "" {
		return Pair{}, fmt.Errorf("both ticket IDs are required")
	}
	if a == b {
		return Pair{}, ErrSelfLoop
	}
	if a < b {
		return Pair{Low: a, High: b}, nil
	}
	return Pair{Low: b, High: a}, nil
}

// Contains reports whether sid is one of the endpoints.
func (p Pair) Contains(sid string) bool {
	return p.Low == sid || p.High == sid
}

type Relationship struct {
	id               uint
	sid              string
	ticket1          string
	ticket2          string
	pair             Pair
	relationshipType string
	createdBy        string
	createdAt        time.Time
}

// NewRelationship builds an edge between ticket1 and ticket2 as supplied.
// An empty kind defaults to "related".
func NewRelationship(ticket1, ticket2, kind, createdBy string) (*Relationship, error) {
	pair, err := NormalizePair(ticket1, ticket2)
	if err != nil {
		return nil, err
	}

	kind = strings.TrimSpace(kind)
	if kind == "" {
		kind = constants.RelationshipTypeRelated
	}

	sid, err := id.NewRelationshipID()
	if err != nil {
		return nil, fmt.Errorf("failed to generate SID: %w", err)
	}

	return &Relationship{
		sid:              sid,
		ticket1:          ticket1,
		ticket2:          ticket2,
		pair:             pair,
		relationshipType: kind,
		createdBy:        createdBy,
		createdAt:        biztime.NowUTC(),
	}, nil
}

// ReconstructRelationship reconstructs an edge from persistence
func ReconstructRelationship(
	id uint,
	sid string,
	ticket1, ticket2 string,
	relationshipType string,
	createdBy string,
	createdAt time.Time,
) (*Relationship, error) {
	if id == 0 {
		return nil, fmt.Errorf("relationship ID cannot be zero")
	}
	pair, err := NormalizePair(ticket1, ticket2)
	if err != nil {
		return nil, err
	}

	return &Relationship{
		id:               id,
		sid:              sid,
		ticket1:          ticket1,
		ticket2:          ticket2,
		pair:             pair,
		relationshipType: relationshipType,
		createdBy:        createdBy,
		createdAt:        createdAt,
	}, nil
}

func (r *Relationship) ID() uint                 { return r.id }
func (r *Relationship) SID() string              { return r.sid }
func (r *Relationship) Ticket1() string          { return r.ticket1 }
func (r *Relationship) Ticket2() string          { return r.ticket2 }
func (r *Relationship) Pair() Pair               { return r.pair }
func (r *Relationship) RelationshipType() string { return r.relationshipType }
func (r *Relationship) CreatedBy() string        { return r.createdBy }
func (r *Relationship) CreatedAt() time.Time     { return r.createdAt }

// SetID sets the storage ID (only for persistence layer use)
func (r *Relationship) SetID(id uint) error {
	if r.id != 0 {
		return fmt.Errorf("relationship ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("relationship ID cannot be zero")
	}
	r.id = id
	return nil
}

// Other returns the endpoint opposite to sid, or "" if sid is not an endpoint.
func (r *Relationship) Other(sid string) string {
	switch sid {
	case r.ticket1:
		return r.ticket2
	case r.ticket2:
		return r.ticket1
	default:
		return ""
	}
}
