package usecases

import (
	"context"

	"jirant/internal/application/common/access"
	"jirant/internal/domain/ticket"
	"jirant/internal/shared/authorization"
	apperrors "jirant/internal/shared/errors"
)

// loadAccessible returns the ticket when it exists and the caller may see it.
// Existing tickets of other owners give Forbidden.
func loadAccessible(
	ctx context.Context,
	repo ticket.TicketRepository,
	policy *access.Policy,
	caller authorization.Caller,
	ticketID string,
) (*ticket.Ticket, error) {
	if ticketID == "" {
		return nil, apperrors.NewValidationError("ticket ID is required")
	}
	t, err := repo.GetBySID(ctx, ticketID)
	if err != nil {
		return nil, err
	}
	if !policy.CanAccessTicket(caller, t) {
		return nil, apperrors.NewForbiddenError("you do not have access to this ticket")
	}
	return t, nil
}
