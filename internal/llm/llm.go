// Package llm is the optional text-generation boundary. The assistant
// uses it only to re-phrase canned response text; every caller must
// tolerate a nil provider or a failed call and fall back to the
// deterministic string.
package llm

import "context"

// Role identifies a message sender.
type Role string

const (
	RoleSystem    Role = "system"
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

// Message is a single conversation message.
type Message struct {
	Role    Role
	Content string
}

// CompletionRequest holds the parameters for a completion call.
type CompletionRequest struct {
	Model       string
	Messages    []Message
	MaxTokens   int
	Temperature float64
}

// CompletionResponse is the generated text.
type CompletionResponse struct {
	Content string
	Model   string
}

// Provider is a text-generation backend.
type Provider interface {
	// Complete sends a completion request and returns the response.
	Complete(ctx context.Context, req CompletionRequest) (*CompletionResponse, error)
	// Name returns the provider's name.
	Name() string
}
