package provider

import (
	"context"
	"log/slog"
)

// Provider identifies one of the supported text-generation vendors.
// The set is closed: dispatch over it happens in exactly one place and
// adding a vendor means adding a constant plus an adapter package.
type Provider string

const (
	// OpenAI is the chat-completion style vendor.
	OpenAI Provider = "openai"
	// Anthropic is the message style vendor.
	Anthropic Provider = "anthropic"
	// Gemini is the generate-content style vendor.
	Gemini Provider = "gemini"
	// Mistral is recognized but has no adapter yet; every call fails
	// with a fixed message.
	Mistral Provider = "mistral"
)

// Secret holds an API key for the lifetime of a single request. All the
// ways a value usually leaks into output (fmt verbs, JSON encoding, slog)
// yield a redaction marker instead; adapters call Reveal when building the
// outbound vendor request.
type Secret string

const redacted = "[REDACTED]"

// Reveal returns the raw key.
func (s Secret) Reveal() string { return string(s) }

// Empty reports whether no key was supplied.
func (s Secret) Empty() bool { return s == "" }

func (s Secret) String() string { return redacted }

func (s Secret) GoString() string { return redacted }

// MarshalJSON implements json.Marshaler.
func (s Secret) MarshalJSON() ([]byte, error) { return []byte(`"` + redacted + `"`), nil }

// LogValue implements slog.LogValuer.
func (s Secret) LogValue() slog.Value { return slog.StringValue(redacted) }

// Config carries everything an adapter needs for one vendor call. It is
// constructed fresh per request and discarded afterwards; nothing here is
// cached or pooled across requests.
type Config struct {
	Provider Provider
	APIKey   Secret
	Model    string
}

// Result is the uniform envelope returned by every adapter regardless of
// vendor. Success implies Text is non-empty; failure implies Error is set.
type Result struct {
	Success bool   `json:"success"`
	Text    string `json:"text,omitempty"`
	Error   string `json:"error,omitempty"`
}

// Generator is the single interface behind which every vendor adapter
// lives. Implementations never return Go errors across this boundary:
// vendor failures are classified into a failure Result so callers handle
// one shape.
type Generator interface {
	Generate(ctx context.Context, prompt, systemPrompt string, maxTokens int) Result
}
