package valueobjects

import "fmt"

type TicketStatus string

const (
	StatusActive  TicketStatus = "active"
	StatusDeleted TicketStatus = "deleted"
)

var validTicketStatuses = map[TicketStatus]bool{
	StatusActive:  true,
	StatusDeleted: true,
}

// active -> deleted -> active is the whole lifecycle.
var ticketStatusTransitions = map[TicketStatus][]TicketStatus{
	StatusActive:  {StatusDeleted},
	StatusDeleted: {StatusActive},
}

func (s TicketStatus) String() string {
	return string(s)
}

func (s TicketStatus) IsValid() bool {
	return validTicketStatuses[s]
}

func (s TicketStatus) IsActive() bool {
	return s == StatusActive
}

func (s TicketStatus) IsDeleted() bool {
	return s == StatusDeleted
}

func (s TicketStatus) CanTransitionTo(target TicketStatus) bool {
	for _, allowed := range ticketStatusTransitions[s] {
		if allowed == target {
			return true
		}
	}
	return false
}

func NewTicketStatus(s string) (TicketStatus, error) {
	status := TicketStatus(s)
	if !status.IsValid() {
		return "", fmt.Errorf("invalid ticket status: %s", s)
	}
	return status, nil
}
