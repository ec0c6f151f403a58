package llm

import (
	"context"
	"fmt"
)

// StatusError reports a non-2xx answer from the provider, carrying the HTTP
// status code so the surface layer can show it to the user. Any other
// failure of a provider call is a transport-level error.
type StatusError struct {
	Code int
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("provider returned http %d", e.Code)
}

// Roles accepted by the chat-completions API.
const (
	RoleSystem    = "system"
	RoleUser      = "user"
	RoleAssistant = "assistant"
)

// Message is a single chat message as sent to and received from the model.
type Message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// ChatModel is a minimal abstraction for chat-based LLMs used by the domain.
// It intentionally hides concrete providers to preserve dependency direction.
type ChatModel interface {
	Complete(ctx context.Context, model string, messages []Message) (string, error)
}

// ModelLister enumerates the model identifiers the provider offers for the
// given credential. The key travels with the call so per-key caches cannot
// pair a catalog with the wrong credential.
type ModelLister interface {
	ListModels(ctx context.Context, apiKey string) ([]string, error)
}
