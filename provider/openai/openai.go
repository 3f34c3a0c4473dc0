// Package openai implements provider.Generator using the OpenAI Chat
// Completions API via the official client. A system+user message pair is
// sent and the first choice's message content is returned.
package openai

import (
	"context"
	"errors"
	"net/http"

	"github.com/openai/openai-go"
	"github.com/openai/openai-go/option"

	"github.com/lexiread/lexiread/provider"
)

// Options configure the OpenAI adapter beyond what Config carries.
type Options struct {
	// BaseURL overrides the API endpoint. Used by tests.
	BaseURL string
}

// Generator wraps the OpenAI Chat Completions API behind the generic
// provider.Generator interface. A fresh Generator is built per request;
// it holds no state beyond its configuration.
type Generator struct {
	client openai.Client
	cfg    provider.Config
}

// New creates an OpenAI generator with the per-request config.
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

	return &Generator{client: openai.NewClient(reqOpts...), cfg: cfg}
}

// Generate implements provider.Generator.
func (g *Generator) Generate(ctx context.Context, prompt, systemPrompt string, maxTokens int) provider.Result {
	var messages []openai.ChatCompletionMessageParamUnion
	if systemPrompt != "" {
		messages = append(messages, openai.SystemMessage(systemPrompt))
	}
	messages = append(messages, openai.UserMessage(prompt))

	params := openai.ChatCompletionNewParams{
		Model:               provider.ResolveModel(provider.OpenAI, g.cfg.Model),
		Messages:            messages,
		MaxCompletionTokens: openai.Int(int64(maxTokens)),
	}

	resp, err := g.client.Chat.Completions.New(ctx, params)
	if err != nil {
		var apierr *openai.Error
		if errors.As(err, &apierr) && isAuthStatus(apierr.StatusCode) {
			return provider.Result{Error: provider.CredentialMessage(provider.OpenAI)}
		}
		return provider.Result{Error: provider.ClassifyError(provider.OpenAI, err)}
	}

	if len(resp.Choices) == 0 || resp.Choices[0].Message.Content == "" {
		return provider.Result{Error: provider.NoTextMessage(provider.OpenAI)}
	}

	return provider.Result{Success: true, Text: resp.Choices[0].Message.Content}
}

func isAuthStatus(code int) bool {
	return code == http.StatusUnauthorized || code == http.StatusForbidden
}
