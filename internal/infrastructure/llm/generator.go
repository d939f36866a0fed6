// Package llm adapts an eino chat model to the ticket text generator.
package llm

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/cloudwego/eino-ext/components/model/openai"
	"github.com/cloudwego/eino/components/model"
	"github.com/cloudwego/eino/schema"

	"jirant/internal/domain/ticket"
	"jirant/internal/shared/config"
	"jirant/internal/shared/logger"
	"jirant/internal/shared/utils/logutil"
)

// ErrEmptyCompletion is returned when the model answers with no text.
var ErrEmptyCompletion = errors.New("model returned an empty completion")

// ChatGenerator is the part of an eino chat model this package needs.
type ChatGenerator interface {
	Generate(ctx context.Context, input []*schema.Message, opts ...model.Option) (*schema.Message, error)
}

var _ ticket.TextGenerator = (*Generator)(nil)

type Generator struct {
	chat   ChatGenerator
	logger logger.Interface
}

func NewGenerator(chat ChatGenerator, log logger.Interface) *Generator {
	return &Generator{chat: chat, logger: log}
}

// NewOpenAIChatModel builds an OpenAI-compatible chat model from cfg.
func NewOpenAIChatModel(ctx context.Context, cfg *config.LLMConfig) (model.ToolCallingChatModel, error) {
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("llm api key is not configured")
	}

	chatCfg := &openai.ChatModelConfig{
		APIKey: cfg.APIKey,
		Model:  cfg.Model,
	}
	if cfg.BaseURL != "" {
		chatCfg.BaseURL = cfg.BaseURL
	}
	if cfg.MaxTokens > 0 {
		maxTokens := cfg.MaxTokens
		chatCfg.MaxTokens = &maxTokens
	}
	if cfg.MaxTimeoutSeconds > 0 {
		chatCfg.Timeout = time.Duration(cfg.MaxTimeoutSeconds) * time.Second
	}

	chatModel, err := openai.NewChatModel(ctx, chatCfg)
	if err != nil {
		return nil, fmt.Errorf("failed to create chat model: %w", err)
	}
	return chatModel, nil
}

func (g *Generator) Complete(ctx context.Context, req ticket.CompletionRequest) (string, error) {
	messages := make([]*schema.Message, 0, 2)
	if req.SystemPrompt != "" {
		messages = append(messages, schema.SystemMessage(req.SystemPrompt))
	}
	messages = append(messages, schema.UserMessage(req.UserPrompt))

	var opts []model.Option
	if req.MaxTokens > 0 {
		opts = append(opts, model.WithMaxTokens(req.MaxTokens))
	}
	if req.Model != "" {
		opts = append(opts, model.WithModel(req.Model))
	}
	if req.Temperature != nil {
		opts = append(opts, model.WithTemperature(*req.Temperature))
	}

	start := time.Now()
	resp, err := g.chat.Generate(ctx, messages, opts...)
	if err != nil {
		// keep the context error visible to callers mapping timeouts
		if ctxErr := ctx.Err(); ctxErr != nil && !errors.Is(err, ctxErr) {
			err = fmt.Errorf("%w: %v", ctxErr, err)
		}
		g.logger.Warnw("chat completion failed",
			"error", err,
			"model", req.Model,
			"elapsed_ms", time.Since(start).Milliseconds(),
		)
		return "", fmt.Errorf("chat completion failed: %w", err)
	}

	if resp == nil || strings.TrimSpace(resp.Content) == "" {
		return "", ErrEmptyCompletion
	}

	g.logger.Debugw("chat completion finished",
		"model", req.Model,
		"prompt_chars", len(req.UserPrompt),
		"response_chars", len(resp.Content),
		"response_preview", logutil.TruncateForLog(resp.Content, 120),
		"elapsed_ms", time.Since(start).Milliseconds(),
	)
	return resp.Content, nil
}

// ErrNotConfigured is returned by Unconfigured for every call.
var ErrNotConfigured = errors.New("text generation backend is not configured")

// Unconfigured stands in when no API key is set so the rest of the API
// keeps serving; generation requests fail as upstream errors.
type Unconfigured struct{}

var _ ticket.TextGenerator = Unconfigured{}

func (Unconfigured) Complete(context.Context, ticket.CompletionRequest) (string, error) {
	return "", ErrNotConfigured
}
