package llm

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/cloudwego/eino/components/model"
	"github.com/cloudwego/eino/schema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"jirant/internal/domain/ticket"
	"jirant/internal/shared/config"
	"jirant/internal/shared/logger"
)

type fakeChat struct {
	messages []*schema.Message
	options  *model.Options
	reply    *schema.Message
	err      error
	wait     bool
}

func (f *fakeChat) Generate(ctx context.Context, input []*schema.Message, opts ...model.Option) (*schema.Message, error) {
	f.messages = input
	f.options = model.GetCommonOptions(nil, opts...)
	if f.wait {
		<-ctx.Done()
		return nil, errors.New("request canceled")
	}
	return f.reply, f.err
}

func TestGenerator_Complete(t *testing.T) {
	chat := &fakeChat{reply: schema.AssistantMessage("## Description\nbody", nil)}
	gen := NewGenerator(chat, logger.NewNop())
	temp := float32(0.3)

	out, err := gen.Complete(context.Background(), ticket.CompletionRequest{
		SystemPrompt: "system",
		UserPrompt:   "user",
		MaxTokens:    50,
		Model:        "gpt-4o-mini",
		Temperature:  &temp,
	})

	require.NoError(t, err)
	assert.Equal(t, "## Description\nbody", out)
	require.Len(t, chat.messages, 2)
	assert.Equal(t, schema.System, chat.messages[0].Role)
	assert.Equal(t, "system", chat.messages[0].Content)
	assert.Equal(t, schema.User, chat.messages[1].Role)
	assert.Equal(t, "user", chat.messages[1].Content)

	require.NotNil(t, chat.options.MaxTokens)
	assert.Equal(t, 50, *chat.options.MaxTokens)
	require.NotNil(t, chat.options.Model)
	assert.Equal(t, "gpt-4o-mini", *chat.options.Model)
	require.NotNil(t, chat.options.Temperature)
	assert.Equal(t, temp, *chat.options.Temperature)
}

func TestGenerator_Complete_NoSystemPrompt(t *testing.T) {
	chat := &fakeChat{reply: schema.AssistantMessage("ok", nil)}

	_, err := NewGenerator(chat, logger.NewNop()).Complete(context.Background(), ticket.CompletionRequest{UserPrompt: "only user"})

	require.NoError(t, err)
	require.Len(t, chat.messages, 1)
	assert.Equal(t, schema.User, chat.messages[0].Role)
	assert.Nil(t, chat.options.MaxTokens)
}

func TestGenerator_Complete_Errors(t *testing.T) {
	tests := []struct {
		name    string
		chat    *fakeChat
		wantErr error
	}{
		{"empty content", &fakeChat{reply: schema.AssistantMessage("   ", nil)}, ErrEmptyCompletion},
		{"nil reply", &fakeChat{}, ErrEmptyCompletion},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewGenerator(tt.chat, logger.NewNop()).Complete(context.Background(), ticket.CompletionRequest{UserPrompt: "x"})
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}

	t.Run("upstream failure", func(t *testing.T) {
		upstream := errors.New("503 service unavailable")
		_, err := NewGenerator(&fakeChat{err: upstream}, logger.NewNop()).Complete(context.Background(), ticket.CompletionRequest{UserPrompt: "x"})
		assert.ErrorIs(t, err, upstream)
	})
}

func TestGenerator_Complete_DeadlineIsVisible(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
	defer cancel()

	_, err := NewGenerator(&fakeChat{wait: true}, logger.NewNop()).Complete(ctx, ticket.CompletionRequest{UserPrompt: "x"})

	assert.ErrorIs(t, err, context.DeadlineExceeded)
}

func TestNewOpenAIChatModel_RequiresAPIKey(t *testing.T) {
	_, err := NewOpenAIChatModel(context.Background(), &config.LLMConfig{Model: "gpt-4o"})
	assert.Error(t, err)
}

func TestUnconfigured_AlwaysFails(t *testing.T) {
	_, err := Unconfigured{}.Complete(context.Background(), ticket.CompletionRequest{UserPrompt: "x"})
	assert.ErrorIs(t, err, ErrNotConfigured)
}
