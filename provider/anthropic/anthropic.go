// Package anthropic implements provider.Generator using the Anthropic
// Messages API via the official client. The system instruction travels in
// the dedicated system field; the first text-typed content block of the
// response is returned.
package anthropic

import (
	"context"
	"errors"
	"net/http"

	"github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"

	"github.com/lexiread/lexiread/provider"
)

// Options configure the Anthropic adapter beyond what Config carries.
type Options struct {
	// BaseURL overrides the API endpoint. Used by tests.
	BaseURL string
}

// Generator wraps the Anthropic Messages API behind the generic
// provider.Generator interface.
type Generator struct {
	client anthropic.Client
	cfg    provider.Config
}

// New creates an Anthropic generator with the per-request config.
func New(cfg provider.Config, optFns ...func(o *Options)) *Generator {
	var opts Options
	for _, fn := range optFns {
		fn(&opts)
	}

	// Every failure is reported once; the client's default 429/5xx
	// retries are disabled.
	reqOpts := []option.RequestOption{
		option.WithAPIKey(cfg.APIKey.Reveal()),
		option.WithMaxRetries(0),
	}
	if opts.BaseURL != "" {
		reqOpts = append(reqOpts, option.WithBaseURL(opts.BaseURL))
	}

	return &Generator{client: anthropic.NewClient(reqOpts...), cfg: cfg}
}

// Generate implements provider.Generator.
func (g *Generator) Generate(ctx context.Context, prompt, systemPrompt string, maxTokens int) provider.Result {
	params := anthropic.MessageNewParams{
		Model:     anthropic.Model(provider.ResolveModel(provider.Anthropic, g.cfg.Model)),
		MaxTokens: int64(maxTokens),
		Messages: []anthropic.MessageParam{
			anthropic.NewUserMessage(anthropic.NewTextBlock(prompt)),
		},
	}
	if systemPrompt != "" {
		params.System = []anthropic.TextBlockParam{{Text: systemPrompt}}
	}

	resp, err := g.client.Messages.New(ctx, params)
	if err != nil {
		var apierr *anthropic.Error
		if errors.As(err, &apierr) && isAuthStatus(apierr.StatusCode) {
			return provider.Result{Error: provider.CredentialMessage(provider.Anthropic)}
		}
		return provider.Result{Error: provider.ClassifyError(provider.Anthropic, err)}
	}

	// First text-typed block wins; a missing block or an empty payload
	// both count as no text generated.
	for _, block := range resp.Content {
		if block.Type != "text" {
			continue
		}
		if text := block.AsText().Text; text != "" {
			return provider.Result{Success: true, Text: text}
		}
		break
	}

	return provider.Result{Error: provider.NoTextMessage(provider.Anthropic)}
}

func isAuthStatus(code int) bool {
	return code == http.StatusUnauthorized || code == http.StatusForbidden
}
