package server

import (
	"fmt"
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/lexiread/lexiread"
	"github.com/lexiread/lexiread/prompt"
	"github.com/lexiread/lexiread/provider"
)

type errorBody struct {
	Success bool   `json:"success"`
	Error   string `json:"error"`
}

func fail(c *fiber.Ctx, status int, msg string) error {
	return c.Status(status).JSON(errorBody{Success: false, Error: msg})
}

type validateTokenRequest struct {
	APIToken string `json:"apiToken"`
}

type validateTokenResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

func (s *Server) handleValidateToken(c *fiber.Ctx) error {
	var req validateTokenRequest
	if err := c.BodyParser(&req); err != nil {
		return fail(c, fiber.StatusBadRequest, "invalid JSON body")
	}
	if strings.TrimSpace(req.APIToken) == "" {
		return fail(c, fiber.StatusBadRequest, "API token is required")
	}

	// Only non-emptiness is checked; no vendor round-trip happens here.
	// The token is actually verified by the first generation call.
	return c.JSON(validateTokenResponse{
		Success: true,
		Message: "API token accepted. Welcome to LexiRead!",
	})
}

type generateTextRequest struct {
	Level        string `json:"level"`
	APIToken     string `json:"apiToken"`
	Provider     string `json:"provider"`
	Model        string `json:"model"`
	CustomPrompt string `json:"customPrompt"`
}

type generateTextResponse struct {
	Success bool   `json:"success"`
	Text    string `json:"text"`
}

func (s *Server) handleGenerateText(c *fiber.Ctx) error {
	var req generateTextRequest
	if err := c.BodyParser(&req); err != nil {
		return fail(c, fiber.StatusBadRequest, "invalid JSON body")
	}
	if req.Level == "" {
		return fail(c, fiber.StatusBadRequest, "English level is required")
	}
	if req.APIToken == "" {
		return fail(c, fiber.StatusBadRequest, "API token is required")
	}
	if req.Provider == "" {
		return fail(c, fiber.StatusBadRequest, "AI provider is required")
	}
	if req.Model == "" {
		return fail(c, fiber.StatusBadRequest, "Model is required")
	}

	res := s.svc.GenerateText(c.Context(), lexiread.GenerateParams{
		Level:        prompt.Level(req.Level),
		APIToken:     provider.Secret(req.APIToken),
		Provider:     provider.Provider(req.Provider),
		Model:        req.Model,
		CustomPrompt: req.CustomPrompt,
	})
	if !res.Success {
		return fail(c, fiber.StatusBadRequest, fmt.Sprintf("AI text generation failed: %s.", res.Error))
	}

	return c.JSON(generateTextResponse{Success: true, Text: res.Text})
}

type translateWordRequest struct {
	Word           string `json:"word"`
	TargetLanguage string `json:"targetLanguage"`
	LanguageCode   string `json:"languageCode"`
	AIToken        string `json:"aiToken"`
	Provider       string `json:"provider"`
	Model          string `json:"model"`
}

type translateWordResponse struct {
	Success     bool   `json:"success"`
	Translation string `json:"translation"`
}

func (s *Server) handleTranslateWord(c *fiber.Ctx) error {
	var req translateWordRequest
	if err := c.BodyParser(&req); err != nil {
		return fail(c, fiber.StatusBadRequest, "invalid JSON body")
	}
	if req.Word == "" {
		return fail(c, fiber.StatusBadRequest, "Word is required")
	}
	if req.TargetLanguage == "" {
		return fail(c, fiber.StatusBadRequest, "Target language is required")
	}
	if req.LanguageCode == "" {
		return fail(c, fiber.StatusBadRequest, "Language code is required")
	}

	// Missing credentials are an expected UI state (the user has not
	// configured a provider yet), not a server fault, so the status
	// stays 200.
	if req.AIToken == "" || req.Provider == "" {
		return c.JSON(errorBody{Success: false, Error: "AI token and provider are required for translation"})
	}

	res := s.svc.TranslateWord(c.Context(), lexiread.TranslateParams{
		Word:           req.Word,
		TargetLanguage: req.TargetLanguage,
		LanguageCode:   req.LanguageCode,
		APIToken:       provider.Secret(req.AIToken),
		Provider:       provider.Provider(req.Provider),
		Model:          req.Model,
	})
	if !res.Success {
		return c.JSON(errorBody{Success: false, Error: res.Error})
	}

	return c.JSON(translateWordResponse{Success: true, Translation: res.Text})
}

func (s *Server) handleHealth(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"status": "ok"})
}
