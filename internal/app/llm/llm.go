/*
Package llm wraps the single outbound chat-completion call used by the interview assistant.

Every provider sends the same fixed request (model, temperature, top_p, max tokens) and returns
either the fully materialized response text or an *Error describing what went wrong. Streamed
responses are concatenated before Complete returns, so callers never see partial output.
*/
package llm

import (
	"context"
	"fmt"
	"net/http"
	"time"
)

// Role identifies the author of a conversation message.
type Role string

// Message roles understood by every provider.
const (
	RoleSystem    Role = "system"
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

// Message is one turn of the conversation sent to the model.
type Message struct {
	Role    Role   `json:"role"`
	Content string `json:"content"`
}

// UserMessage builds a single-turn conversation holding content.
func UserMessage(content string) []Message {
	return []Message{{Role: RoleUser, Content: content}}
}

// Fixed sampling parameters shared by all providers.
const (
	Temperature = 0.2
	TopP        = 0.7
	MaxTokens   = 1024
)

// Client completes a conversation and returns the model's text.
type Client interface {
	Complete(ctx context.Context, conversation []Message) (string, error)
}

// Provider names a model host.
type Provider string

const (
	// ProviderNVIDIA is the OpenAI-compatible NVIDIA endpoint.
	ProviderNVIDIA Provider = "nvidia"
	// ProviderGemini is Google's Gemini API.
	ProviderGemini Provider = "gemini"
)

// Mode selects how the response is assembled.
type Mode string

const (
	// ModeBuffered waits for one complete response.
	ModeBuffered Mode = "buffered"
	// ModeStreamed reads incremental chunks and joins them.
	ModeStreamed Mode = "streamed"
)

// Config selects and configures a provider.
type Config struct {
	Provider Provider
	Mode     Mode
	APIKey   string

	// Timeout bounds one Complete call. Zero means no limit beyond the caller's context.
	Timeout time.Duration

	// BaseURL overrides the provider endpoint. Empty uses the provider default.
	BaseURL string

	// HTTPClient overrides the transport. Nil uses http.DefaultClient.
	HTTPClient *http.Client
}

// NewClient returns the Client for cfg.Provider. A missing API key is not an error here;
// the returned client reports it on every Complete call instead.
func NewClient(cfg Config) (Client, error) {
	switch cfg.Mode {
	case "":
		cfg.Mode = ModeBuffered
	case ModeBuffered, ModeStreamed:
	default:
		return nil, fmt.Errorf("unsupported llm mode %q", cfg.Mode)
	}

	switch cfg.Provider {
	case ProviderNVIDIA, "":
		return NewOpenAIClient(cfg), nil
	case ProviderGemini:
		return NewGeminiClient(cfg), nil
	default:
		return nil, fmt.Errorf("unsupported llm provider %q", cfg.Provider)
	}
}

// withTimeout applies the configured per-call timeout, if any.
func withTimeout(ctx context.Context, d time.Duration) (context.Context, context.CancelFunc) {
	if d <= 0 {
		return context.WithCancel(ctx)
	}
	return context.WithTimeout(ctx, d)
}
