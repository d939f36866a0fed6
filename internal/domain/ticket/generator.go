package ticket

import "context"

// CompletionRequest is one call to the text generation backend.
// Zero values fall back to the backend's configured defaults.
type CompletionRequest struct {
	SystemPrompt string
	UserPrompt   string
	MaxTokens    int
	Model        string
	Temperature  *float32
}

// TextGenerator produces ticket bodies and titles. Implementations must
// honour ctx cancellation so callers can bound each call.
type TextGenerator interface {
	Complete(ctx context.Context, req CompletionRequest) (string, error)
}
