package usecases

import (
	"context"
	"fmt"

	"jirant/internal/application/common/access"
	"jirant/internal/application/ticket/dto"
	"jirant/internal/domain/ticket"
	"jirant/internal/shared/authorization"
	"jirant/internal/shared/logger"
)

type SoftDeleteTicketCommand struct {
	Caller   authorization.Caller
	TicketID string
}

type RestoreTicketCommand struct {
	Caller   authorization.Caller
	TicketID string
}

// statusChanger flips a ticket's status and persists only real transitions,
// so repeating either operation leaves the stored ticket untouched.
type statusChanger struct {
	ticketRepo ticket.TicketRepository
	policy     *access.Policy
	logger     logger.Interface
}

func (s statusChanger) change(
	ctx context.Context,
	caller authorization.Caller,
	ticketID, action string,
	apply func(*ticket.Ticket) bool,
) (*dto.TicketDTO, error) {
	t, err := loadAccessible(ctx, s.ticketRepo, s.policy, caller, ticketID)
	if err != nil {
		return nil, err
	}

	if apply(t) {
		if err := s.ticketRepo.Update(ctx, t); err != nil {
			s.logger.Errorw("failed to update ticket status", "error", err, "ticket_id", ticketID, "action", action)
			return nil, fmt.Errorf("failed to %s ticket: %w", action, err)
		}
		s.logger.Infow("ticket status changed", "ticket_id", ticketID, "status", t.Status().String())
	} else {
		s.logger.Debugw("ticket already in target status", "ticket_id", ticketID, "action", action)
	}

	result := dto.ToTicketDTO(t)
	return &result, nil
}

type SoftDeleteTicketUseCase struct {
	statusChanger
}

func NewSoftDeleteTicketUseCase(ticketRepo ticket.TicketRepository, policy *access.Policy, logger logger.Interface) *SoftDeleteTicketUseCase {
	return &SoftDeleteTicketUseCase{statusChanger{ticketRepo: ticketRepo, policy: policy, logger: logger}}
}

func (uc *SoftDeleteTicketUseCase) Execute(ctx context.Context, cmd SoftDeleteTicketCommand) (*dto.TicketDTO, error) {
	uc.logger.Infow("executing soft delete ticket use case", "ticket_id", cmd.TicketID, "user_id", cmd.Caller.UserID)
	return uc.change(ctx, cmd.Caller, cmd.TicketID, "delete", (*ticket.Ticket).SoftDelete)
}

type RestoreTicketUseCase struct {
	statusChanger
}

func NewRestoreTicketUseCase(ticketRepo ticket.TicketRepository, policy *access.Policy, logger logger.Interface) *RestoreTicketUseCase {
	return &RestoreTicketUseCase{statusChanger{ticketRepo: ticketRepo, policy: policy, logger: logger}}
}

func (uc *RestoreTicketUseCase) Execute(ctx context.Context, cmd RestoreTicketCommand) (*dto.TicketDTO, error) {
	uc.logger.Infow("executing restore ticket use case", "ticket_id", cmd.TicketID, "user_id", cmd.Caller.UserID)
	return uc.change(ctx, cmd.Caller, cmd.TicketID, "restore", (*ticket.Ticket).Restore)
}
