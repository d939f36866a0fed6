package usecases

import (
	"context"

	"jirant/internal/application/common/access"
	"jirant/internal/application/ticket/dto"
	"jirant/internal/domain/ticket"
	"jirant/internal/shared/authorization"
	"jirant/internal/shared/logger"
	"jirant/internal/shared/services/markdown"
)

type GetTicketQuery struct {
	Caller   authorization.Caller
	TicketID string
}

type GetTicketUseCase struct {
	ticketRepo ticket.TicketRepository
	markdown   markdown.MarkdownService
	policy     *access.Policy
	logger     logger.Interface
}

func NewGetTicketUseCase(
	ticketRepo ticket.TicketRepository,
	markdown markdown.MarkdownService,
	policy *access.Policy,
	logger logger.Interface,
) *GetTicketUseCase {
	return &GetTicketUseCase{ticketRepo: ticketRepo, markdown: markdown, policy: policy, logger: logger}
}

// Execute returns deleted tickets too so they can be restored.
func (uc *GetTicketUseCase) Execute(ctx context.Context, query GetTicketQuery) (*dto.TicketDTO, error) {
	t, err := loadAccessible(ctx, uc.ticketRepo, uc.policy, query.Caller, query.TicketID)
	if err != nil {
		return nil, err
	}
	result := dto.ToDetailedTicketDTO(t, uc.markdown)
	return &result, nil
}
