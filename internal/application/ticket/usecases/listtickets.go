package usecases

import (
	"context"
	"fmt"

	"jirant/internal/application/common/access"
	"jirant/internal/application/ticket/dto"
	"jirant/internal/domain/ticket"
	vo "jirant/internal/domain/ticket/valueobjects"
	"jirant/internal/shared/authorization"
	apperrors "jirant/internal/shared/errors"
	"jirant/internal/shared/logger"
	"jirant/internal/shared/utils"
)

// ScopeAll lists every owner's tickets for callers allowed to manage them.
const ScopeAll = "all"

type ListTicketsQuery struct {
	Caller     authorization.Caller
	Status     string
	TicketType string
	Scope      string
	Page       int
	PageSize   int
}

type ListTicketsUseCase struct {
	ticketRepo ticket.TicketRepository
	policy     *access.Policy
	logger     logger.Interface
}

func NewListTicketsUseCase(ticketRepo ticket.TicketRepository, policy *access.Policy, logger logger.Interface) *ListTicketsUseCase {
	return &ListTicketsUseCase{ticketRepo: ticketRepo, policy: policy, logger: logger}
}

func (uc *ListTicketsUseCase) Execute(ctx context.Context, query ListTicketsQuery) (*dto.ListTicketsResultDTO, error) {
	uc.logger.Infow("executing list tickets use case",
		"user_id", query.Caller.UserID,
		"scope", query.Scope,
		"page", query.Page,
		"page_size", query.PageSize,
	)

	pagination := utils.ValidatePagination(query.Page, query.PageSize)
	filter := ticket.TicketFilter{
		CreatedBy:  query.Caller.UserID,
		TicketType: query.TicketType,
		Page:       pagination.Page,
		PageSize:   pagination.PageSize,
	}

	if query.Status != "" {
		status, err := vo.NewTicketStatus(query.Status)
		if err != nil {
			return nil, apperrors.NewValidationError("invalid status", query.Status)
		}
		filter.Status = &status
	}

	if query.Scope == ScopeAll {
		if !uc.policy.CanManageAllTickets(query.Caller) {
			return nil, apperrors.NewForbiddenError("listing all tickets requires administrator access")
		}
		filter.CreatedBy = ""
	}

	tickets, total, err := uc.ticketRepo.List(ctx, filter)
	if err != nil {
		uc.logger.Errorw("failed to list tickets", "error", err)
		return nil, fmt.Errorf("failed to list tickets: %w", err)
	}

	return &dto.ListTicketsResultDTO{
		Items:    dto.ToTicketDTOs(tickets),
		Total:    total,
		Page:     pagination.Page,
		PageSize: pagination.PageSize,
	}, nil
}
