package usecases

import (
	"context"
	"fmt"

	"jirant/internal/application/common/access"
	"jirant/internal/domain/ticket"
	"jirant/internal/shared/authorization"
	apperrors "jirant/internal/shared/errors"
)

// loadLinkable checks that both tickets exist and the caller may link them.
func loadLinkable(
	ctx context.Context,
	repo ticket.TicketRepository,
	policy *access.Policy,
	caller authorization.Caller,
	a, b string,
) error {
	found, err := repo.GetBySIDs(ctx, []string{a, b})
	if err != nil {
		return fmt.Errorf("failed to load tickets: %w", err)
	}
	ta, ok := found[a]
	if !ok {
		return apperrors.NewNotFoundError("ticket not found", a)
	}
	tb, ok := found[b]
	if !ok {
		return apperrors.NewNotFoundError("ticket not found", b)
	}
	if !policy.CanLinkTickets(caller, ta, tb) {
		return apperrors.NewForbiddenError("you do not have access to both tickets")
	}
	return nil
}
