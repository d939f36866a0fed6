package usecases

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	"jirant/internal/application/common/access"
	"jirant/internal/application/ticket/dto"
	"jirant/internal/application/ticket/services"
	"jirant/internal/domain/ticket"
	"jirant/internal/domain/tickettemplate"
	"jirant/internal/shared/authorization"
	sharedConfig "jirant/internal/shared/config"
	"jirant/internal/shared/constants"
	apperrors "jirant/internal/shared/errors"
	"jirant/internal/shared/logger"
	"jirant/internal/shared/utils/logutil"
)

// Generation outcomes reported to the recorder.
const (
	OutcomeSuccess = "success"
	OutcomePartial = "partial"
	OutcomeFailed  = "failed"
	OutcomeTimeout = "timeout"
	OutcomeInvalid = "invalid"
)

const (
	callBody  = "body"
	callTitle = "title"
)

type GenerateTicketCommand struct {
	Caller           authorization.Caller
	TemplateID       string
	UserInput        string
	ContextTicketIDs []string
	// TimeoutSeconds bounds the body call; zero uses the configured default.
	TimeoutSeconds int
}

// GenerationSettings are the model parameters of the two completion calls.
type GenerationSettings struct {
	Model            string
	TitleModel       string
	MaxTokens        int
	TitleMaxTokens   int
	TitleTemperature float32
	Timeout          time.Duration
	MaxTimeout       time.Duration
}

func SettingsFromConfig(cfg *sharedConfig.LLMConfig) GenerationSettings {
	return GenerationSettings{
		Model:            cfg.Model,
		TitleModel:       cfg.TitleModel,
		MaxTokens:        cfg.MaxTokens,
		TitleMaxTokens:   cfg.TitleMaxTokens,
		TitleTemperature: cfg.TitleTemperature,
		Timeout:          cfg.Timeout(),
		MaxTimeout:       cfg.MaxTimeout(),
	}
}

// timeoutFor clamps a requested timeout to the configured maximum.
func (s GenerationSettings) timeoutFor(requestedSeconds int) time.Duration {
	d := s.Timeout
	if requestedSeconds > 0 {
		d = time.Duration(requestedSeconds) * time.Second
	}
	if s.MaxTimeout > 0 && d > s.MaxTimeout {
		d = s.MaxTimeout
	}
	return d
}

type GenerateTicketUseCase struct {
	ticketRepo   ticket.TicketRepository
	templateRepo tickettemplate.TicketTemplateRepository
	edges        EdgeCreator
	generator    ticket.TextGenerator
	policy       *access.Policy
	settings     GenerationSettings
	recorder     GenerationRecorder
	logger       logger.Interface
}

func NewGenerateTicketUseCase(
	ticketRepo ticket.TicketRepository,
	templateRepo tickettemplate.TicketTemplateRepository,
	edges EdgeCreator,
	generator ticket.TextGenerator,
	policy *access.Policy,
	settings GenerationSettings,
	recorder GenerationRecorder,
	logger logger.Interface,
) *GenerateTicketUseCase {
	if recorder == nil {
		recorder = nopRecorder{}
	}
	return &GenerateTicketUseCase{
		ticketRepo:   ticketRepo,
		templateRepo: templateRepo,
		edges:        edges,
		generator:    generator,
		policy:       policy,
		settings:     settings,
		recorder:     recorder,
		logger:       logger,
	}
}

func (uc *GenerateTicketUseCase) Execute(ctx context.Context, cmd GenerateTicketCommand) (*dto.GenerationResultDTO, error) {
	start := time.Now()
	uc.logger.Infow("executing generate ticket use case",
		"template_id", cmd.TemplateID,
		"context_count", len(cmd.ContextTicketIDs),
		"user_id", cmd.Caller.UserID,
		"user_input", logutil.TruncateForLog(cmd.UserInput, 80),
	)

	tpl, contextTickets, err := uc.validate(ctx, cmd)
	if err != nil {
		uc.recorder.RecordGeneration(OutcomeInvalid, time.Since(start))
		return nil, err
	}

	prompt := services.BuildPrompt(tpl, cmd.UserInput, contextTickets)
	body, err := uc.generateBody(ctx, prompt, uc.settings.timeoutFor(cmd.TimeoutSeconds))
	if err != nil {
		outcome := OutcomeFailed
		if apperrors.HasReason(err, apperrors.ReasonGenerationTimeout) {
			outcome = OutcomeTimeout
		}
		uc.recorder.RecordGeneration(outcome, time.Since(start))
		return nil, err
	}

	title := uc.generateTitle(ctx, body)

	contextIDs := make([]string, 0, len(contextTickets))
	for _, t := range contextTickets {
		contextIDs = append(contextIDs, t.SID())
	}

	created, err := ticket.NewTicket(title, body, tpl.Name(), tpl.SID(), cmd.Caller.UserID, cmd.UserInput, contextIDs)
	if err != nil {
		uc.recorder.RecordGeneration(OutcomeFailed, time.Since(start))
		return nil, apperrors.NewUpstreamError("generated ticket is invalid", err.Error()).
			WithReason(apperrors.ReasonGenerationFailed)
	}
	if err := uc.ticketRepo.Create(ctx, created); err != nil {
		uc.logger.Errorw("failed to persist generated ticket", "error", err, "template_id", tpl.SID())
		uc.recorder.RecordGeneration(OutcomeFailed, time.Since(start))
		return nil, fmt.Errorf("failed to create ticket: %w", err)
	}

	// The ticket is committed; edges are best effort from here on.
	result := &dto.GenerationResultDTO{
		Ticket:   dto.ToTicketDTO(created),
		Links:    make([]dto.ContextLinkDTO, 0, len(contextIDs)),
		Warnings: []string{},
	}
	for _, ctxID := range contextIDs {
		link := dto.ContextLinkDTO{ContextTicketID: ctxID, Status: dto.LinkStatusLinked}
		rel, err := uc.edges.CreateEdge(ctx, created.SID(), ctxID, constants.RelationshipTypeContext, cmd.Caller.UserID)
		if err != nil {
			uc.logger.Warnw("failed to link context ticket",
				"error", err,
				"ticket_id", created.SID(),
				"context_ticket_id", ctxID,
			)
			link.Status = dto.LinkStatusFailed
			link.Error = err.Error()
			result.Warnings = append(result.Warnings,
				fmt.Sprintf("ticket created but context ticket %s could not be linked", ctxID))
		} else {
			link.RelationshipID = rel.SID()
		}
		uc.recorder.RecordContextLink(link.Status)
		result.Links = append(result.Links, link)
	}

	outcome := OutcomeSuccess
	if len(result.Warnings) > 0 {
		outcome = OutcomePartial
	}
	uc.recorder.RecordGeneration(outcome, time.Since(start))

	uc.logger.Infow("ticket generated",
		"ticket_id", created.SID(),
		"template", tpl.Name(),
		"links", len(result.Links),
		"warnings", len(result.Warnings),
	)
	return result, nil
}

func (uc *GenerateTicketUseCase) validate(
	ctx context.Context,
	cmd GenerateTicketCommand,
) (*tickettemplate.TicketTemplate, []*ticket.Ticket, error) {
	input := strings.TrimSpace(cmd.UserInput)
	if input == "" {
		return nil, nil, apperrors.NewValidationError("userInput is required")
	}
	if utf8.RuneCountInString(cmd.UserInput) > constants.MaxUserInputLength {
		return nil, nil, apperrors.NewValidationError(
			fmt.Sprintf("userInput must be at most %d characters", constants.MaxUserInputLength))
	}
	if cmd.TemplateID == "" {
		return nil, nil, apperrors.NewValidationError("templateId is required")
	}

	tpl, err := uc.templateRepo.GetBySID(ctx, cmd.TemplateID)
	if err != nil {
		return nil, nil, err
	}
	if !uc.policy.CanReadTemplate(cmd.Caller, tpl) {
		return nil, nil, apperrors.NewNotFoundError("ticket type not found", cmd.TemplateID)
	}

	ids := dedupe(cmd.ContextTicketIDs)
	if len(ids) == 0 {
		return tpl, nil, nil
	}

	found, err := uc.ticketRepo.GetBySIDs(ctx, ids)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load context tickets: %w", err)
	}
	contextTickets := make([]*ticket.Ticket, 0, len(ids))
	for _, sid := range ids {
		t, ok := found[sid]
		if !ok || t.IsDeleted() || !uc.policy.CanAccessTicket(cmd.Caller, t) {
			return nil, nil, apperrors.NewInvalidContextError(sid)
		}
		contextTickets = append(contextTickets, t)
	}
	return tpl, contextTickets, nil
}

func (uc *GenerateTicketUseCase) generateBody(ctx context.Context, prompt services.Prompt, timeout time.Duration) (string, error) {
	callCtx := ctx
	if timeout > 0 {
		var cancel context.CancelFunc
		callCtx, cancel = context.WithTimeout(ctx, timeout)
		defer cancel()
	}

	start := time.Now()
	body, err := uc.generator.Complete(callCtx, ticket.CompletionRequest{
		SystemPrompt: prompt.System,
		UserPrompt:   prompt.User,
		MaxTokens:    uc.settings.MaxTokens,
		Model:        uc.settings.Model,
	})
	if err == nil && strings.TrimSpace(body) == "" {
		err = errors.New("empty completion")
	}
	uc.recorder.RecordCompletion(callBody, err, time.Since(start))

	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) || errors.Is(callCtx.Err(), context.DeadlineExceeded) {
			uc.logger.Warnw("ticket generation timed out", "timeout", timeout.String())
			return "", apperrors.NewUpstreamTimeoutError("ticket generation timed out").
				WithReason(apperrors.ReasonGenerationTimeout).
				WithCause(err)
		}
		uc.logger.Errorw("ticket generation failed", "error", err)
		return "", apperrors.NewUpstreamError("ticket generation failed").
			WithReason(apperrors.ReasonGenerationFailed).
			WithCause(err)
	}
	return strings.TrimSpace(body), nil
}

// generateTitle never fails the pipeline; problems yield the fallback title.
func (uc *GenerateTicketUseCase) generateTitle(ctx context.Context, description string) string {
	callCtx := ctx
	if uc.settings.Timeout > 0 {
		var cancel context.CancelFunc
		callCtx, cancel = context.WithTimeout(ctx, uc.settings.Timeout)
		defer cancel()
	}

	prompt := services.BuildTitlePrompt(description)
	temperature := uc.settings.TitleTemperature
	start := time.Now()
	raw, err := uc.generator.Complete(callCtx, ticket.CompletionRequest{
		SystemPrompt: prompt.System,
		UserPrompt:   prompt.User,
		MaxTokens:    uc.settings.TitleMaxTokens,
		Model:        uc.settings.TitleModel,
		Temperature:  &temperature,
	})
	uc.recorder.RecordCompletion(callTitle, err, time.Since(start))
	if err != nil {
		uc.logger.Warnw("title generation failed, using fallback", "error", err)
		return constants.FallbackTicketTitle
	}
	return services.CleanTitle(raw)
}

// dedupe drops blanks and repeats, keeping first occurrences in order.
func dedupe(ids []string) []string {
	out := make([]string, 0, len(ids))
	seen := make(map[string]bool, len(ids))
	for _, id := range ids {
		id = strings.TrimSpace(id)
		if id == "" || seen[id] {
			continue
		}
		seen[id] = true
		out = append(out, id)
	}
	return out
}
