// Package lexiread provides the high-level façade over the prompt builder
// and the provider adapters. The HTTP gateway interacts with it through
// two operations:
//  1. GenerateText — build a level-appropriate (or custom) prompt and run
//     it through the vendor chosen by the request.
//  2. TranslateWord — run the fixed word-translation prompt with a small
//     token budget.
//
// Every call is request-scoped: the vendor adapter is constructed fresh
// from the request's credentials and discarded afterwards. The generator
// factory is overridable so tests can substitute canned generators without
// touching the network.
package lexiread

import (
	"context"
	"strings"
	"time"

	"github.com/lexiread/lexiread/logging"
	"github.com/lexiread/lexiread/prompt"
	"github.com/lexiread/lexiread/provider"
	"github.com/lexiread/lexiread/provider/anthropic"
	"github.com/lexiread/lexiread/provider/gemini"
	"github.com/lexiread/lexiread/provider/openai"
)

// GeneratorFactory builds a vendor adapter for one request.
type GeneratorFactory func(cfg provider.Config) provider.Generator

// Options configures the Service.
type Options struct {
	// Factory builds vendor adapters; defaults to the closed dispatch
	// over the supported providers.
	Factory GeneratorFactory
	// Logger receives provider call records; defaults to NoOp.
	Logger logging.Logger
}

// Service wires the prompt builder and the provider adapters together.
type Service struct {
	factory GeneratorFactory
	logger  logging.Logger
}

// New creates a Service with optional overrides.
func New(optFns ...func(o *Options)) *Service {
	opts := Options{
		Factory: NewGenerator,
		Logger:  logging.NoOpLogger{},
	}
	for _, fn := range optFns {
		fn(&opts)
	}
	return &Service{factory: opts.Factory, logger: opts.Logger}
}

// NewGenerator is the single dispatch point from a provider tag to its
// adapter. Adding a vendor means adding a case here and a constant in the
// provider package; anything else, including the recognized-but-unwired
// mistral tag, gets the explicit Unimplemented variant.
func NewGenerator(cfg provider.Config) provider.Generator {
	switch cfg.Provider {
	case provider.OpenAI:
		return openai.New(cfg)
	case provider.Anthropic:
		return anthropic.New(cfg)
	case provider.Gemini:
		return gemini.New(cfg)
	default:
		return provider.NewUnimplemented(cfg.Provider)
	}
}

// GenerateParams are the inputs for one text generation.
type GenerateParams struct {
	Level        prompt.Level
	APIToken     provider.Secret
	Provider     provider.Provider
	Model        string
	CustomPrompt string
}

// TranslateParams are the inputs for one word translation.
type TranslateParams struct {
	Word           string
	TargetLanguage string
	LanguageCode   string
	APIToken       provider.Secret
	Provider       provider.Provider
	Model          string
}

// GenerateText builds the prompt for the requested level (or passes the
// custom prompt through verbatim) and runs it through the chosen vendor.
func (s *Service) GenerateText(ctx context.Context, p GenerateParams) provider.Result {
	custom := p.CustomPrompt != ""
	userPrompt := prompt.Build(p.Level, p.CustomPrompt)
	systemPrompt := prompt.Persona(p.Level)
	maxTokens := prompt.MaxTokens(p.Level, custom)

	return s.generate(ctx, p.Provider, p.APIToken, p.Model, userPrompt, systemPrompt, maxTokens)
}

// TranslateWord runs the fixed translation prompt under the Elementary
// persona with the translation token budget. The returned text is trimmed.
func (s *Service) TranslateWord(ctx context.Context, p TranslateParams) provider.Result {
	userPrompt := prompt.Translation(p.Word, p.TargetLanguage)
	systemPrompt := prompt.Persona(prompt.Elementary)

	res := s.generate(ctx, p.Provider, p.APIToken, p.Model, userPrompt, systemPrompt, prompt.TranslationMaxTokens)
	if res.Success {
		res.Text = strings.TrimSpace(res.Text)
	}
	return res
}

func (s *Service) generate(
	ctx context.Context,
	p provider.Provider,
	token provider.Secret,
	model string,
	userPrompt, systemPrompt string,
	maxTokens int,
) provider.Result {
	gen := s.factory(provider.Config{Provider: p, APIKey: token, Model: model})

	start := time.Now()
	res := gen.Generate(ctx, userPrompt, systemPrompt, maxTokens)

	s.logger.LogProviderCall(string(p), provider.ResolveModel(p, model), time.Since(start), res.Success, res.Error)
	return res
}
