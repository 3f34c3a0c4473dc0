// Package gemini implements provider.Generator against the Gemini
// generateContent API. There is no official client in our stack, so the
// adapter speaks HTTP directly with minimal typed DTOs.
//
// Gemini has no separate system role on this endpoint; the system
// instruction is prepended to the user prompt as one combined string.
package gemini

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"github.com/lexiread/lexiread/provider"
)

const defaultBaseURL = "https://generativelanguage.googleapis.com"

// Options configure the Gemini adapter beyond what Config carries.
type Options struct {
	// BaseURL overrides the API endpoint. Used by tests.
	BaseURL string
	// HTTPClient overrides the underlying HTTP client. Defaults to
	// http.DefaultClient; no explicit deadline is configured.
	HTTPClient *http.Client
}

// Generator calls the model-specific generateContent endpoint behind the
// generic provider.Generator interface.
type Generator struct {
	baseURL string
	client  *http.Client
	cfg     provider.Config
}

// New creates a Gemini generator with the per-request config.
func New(cfg provider.Config, optFns ...func(o *Options)) *Generator {
	opts := Options{
		BaseURL:    defaultBaseURL,
		HTTPClient: http.DefaultClient,
	}
	for _, fn := range optFns {
		fn(&opts)
	}

	return &Generator{baseURL: opts.BaseURL, client: opts.HTTPClient, cfg: cfg}
}

type generateContentRequest struct {
	Contents         []content        `json:"contents"`
	GenerationConfig generationConfig `json:"generationConfig"`
}

type content struct {
	Parts []part `json:"parts"`
}

type part struct {
	Text string `json:"text"`
}

type generationConfig struct {
	MaxOutputTokens int `json:"maxOutputTokens"`
}

type generateContentResponse struct {
	Candidates []struct {
		Content struct {
			Parts []part `json:"parts"`
		} `json:"content"`
	} `json:"candidates"`
}

type errorResponse struct {
	Error struct {
		Code    int    `json:"code"`
		Message string `json:"message"`
		Status  string `json:"status"`
	} `json:"error"`
}

// Generate implements provider.Generator.
func (g *Generator) Generate(ctx context.Context, prompt, systemPrompt string, maxTokens int) provider.Result {
	combined := prompt
	if systemPrompt != "" {
		combined = systemPrompt + "\n\n" + prompt
	}

	body, err := json.Marshal(generateContentRequest{
		Contents:         []content{{Parts: []part{{Text: combined}}}},
		GenerationConfig: generationConfig{MaxOutputTokens: maxTokens},
	})
	if err != nil {
		return provider.Result{Error: provider.ClassifyError(provider.Gemini, fmt.Errorf("gemini: marshal request: %w", err))}
	}

	model := provider.ResolveModel(provider.Gemini, g.cfg.Model)
	url := strings.TrimRight(g.baseURL, "/") + "/v1beta/models/" + model + ":generateContent"

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return provider.Result{Error: provider.ClassifyError(provider.Gemini, fmt.Errorf("gemini: create request: %w", err))}
	}
	req.Header.Set("Content-Type", "application/json")
	// Key goes in a header, never in the URL, so it cannot end up in
	// access logs on either side.
	req.Header.Set("x-goog-api-key", g.cfg.APIKey.Reveal())

	resp, err := g.client.Do(req)
	if err != nil {
		return provider.Result{Error: provider.ClassifyError(provider.Gemini, fmt.Errorf("gemini: request: %w", err))}
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusUnauthorized || resp.StatusCode == http.StatusForbidden {
		return provider.Result{Error: provider.CredentialMessage(provider.Gemini)}
	}
	if resp.StatusCode != http.StatusOK {
		var errResp errorResponse
		if err := json.NewDecoder(resp.Body).Decode(&errResp); err != nil || errResp.Error.Message == "" {
			return provider.Result{Error: provider.ClassifyError(provider.Gemini,
				fmt.Errorf("gemini: unexpected status %d", resp.StatusCode))}
		}
		// The status code stays in the error text so classification can
		// still match when the body message names no category.
		return provider.Result{Error: provider.ClassifyError(provider.Gemini,
			fmt.Errorf("gemini: API error (status %d): %s", resp.StatusCode, errResp.Error.Message))}
	}

	var genResp generateContentResponse
	if err := json.NewDecoder(resp.Body).Decode(&genResp); err != nil {
		return provider.Result{Error: provider.ClassifyError(provider.Gemini, fmt.Errorf("gemini: decode response: %w", err))}
	}

	if len(genResp.Candidates) == 0 || len(genResp.Candidates[0].Content.Parts) == 0 ||
		genResp.Candidates[0].Content.Parts[0].Text == "" {
		return provider.Result{Error: provider.NoTextMessage(provider.Gemini)}
	}

	return provider.Result{Success: true, Text: genResp.Candidates[0].Content.Parts[0].Text}
}
