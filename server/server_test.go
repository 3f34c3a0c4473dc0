package server

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lexiread/lexiread"
	"github.com/lexiread/lexiread/config"
	"github.com/lexiread/lexiread/dictionary"
	"github.com/lexiread/lexiread/logging"
	"github.com/lexiread/lexiread/provider"
)

// fakeService records the last call and returns canned results.
type fakeService struct {
	generateResult  provider.Result
	translateResult provider.Result

	generateCalls  int
	translateCalls int
	lastGenerate   lexiread.GenerateParams
	lastTranslate  lexiread.TranslateParams
}

func (f *fakeService) GenerateText(_ context.Context, p lexiread.GenerateParams) provider.Result {
	f.generateCalls++
	f.lastGenerate = p
	return f.generateResult
}

func (f *fakeService) TranslateWord(_ context.Context, p lexiread.TranslateParams) provider.Result {
	f.translateCalls++
	f.lastTranslate = p
	return f.translateResult
}

func testConfig() *config.Config {
	return &config.Config{
		Server: config.ServerConfig{Host: "127.0.0.1", Port: 8080},
		Log:    config.LogConfig{Level: "info", Format: "json"},
		CORS: config.CORSConfig{
			AllowedOrigins: "*",
			AllowedMethods: "GET,POST,PUT,DELETE,OPTIONS",
			AllowedHeaders: "Content-Type",
		},
	}
}

func newTestServer(t *testing.T, svc TextService) *Server {
	t.Helper()
	log := logging.NewLogger(&logging.LoggerConfig{Level: logging.LogLevelError, Format: "json", Output: io.Discard})
	return New(testConfig(), log, svc, dictionary.NewStore())
}

func postJSON(t *testing.T, s *Server, path, body string) (*http.Response, map[string]any) {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	resp, err := s.App().Test(req)
	require.NoError(t, err)
	return resp, decodeBody(t, resp)
}

func decodeBody(t *testing.T, resp *http.Response) map[string]any {
	t.Helper()
	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	var body map[string]any
	require.NoError(t, json.Unmarshal(raw, &body))
	return body
}

func TestValidateToken(t *testing.T) {
	svc := &fakeService{}
	s := newTestServer(t, svc)

	resp, body := postJSON(t, s, "/api/validate-token", `{"apiToken":"sk-test"}`)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, true, body["success"])
	assert.Equal(t, "API token accepted. Welcome to LexiRead!", body["message"])

	assert.Zero(t, svc.generateCalls, "token validation makes no generation call")
	assert.Zero(t, svc.translateCalls)
}

func TestValidateToken_Missing(t *testing.T) {
	s := newTestServer(t, &fakeService{})

	for _, payload := range []string{`{}`, `{"apiToken":"   "}`} {
		resp, body := postJSON(t, s, "/api/validate-token", payload)
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
		assert.Equal(t, false, body["success"])
		assert.Equal(t, "API token is required", body["error"])
	}
}

func TestGenerateText_Validation(t *testing.T) {
	tests := []struct {
		name    string
		payload string
		wantErr string
	}{
		{"missing level", `{"apiToken":"t","provider":"openai","model":"m"}`, "English level is required"},
		{"missing token", `{"level":"Advanced","provider":"openai","model":"m"}`, "API token is required"},
		{"missing provider", `{"level":"Advanced","apiToken":"t","model":"m"}`, "AI provider is required"},
		{"missing model", `{"level":"Advanced","apiToken":"t","provider":"openai"}`, "Model is required"},
	}

	svc := &fakeService{}
	s := newTestServer(t, svc)

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp, body := postJSON(t, s, "/api/generate-text", tt.payload)
			assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
			assert.Equal(t, false, body["success"])
			assert.Equal(t, tt.wantErr, body["error"])
		})
	}
	assert.Zero(t, svc.generateCalls, "invalid requests never reach the service")
}

func TestGenerateText_Success(t *testing.T) {
	mock := provider.NewMockGenerator("The cat sat.")
	svc := lexiread.New(func(o *lexiread.Options) {
		o.Factory = func(provider.Config) provider.Generator { return mock }
	})
	s := newTestServer(t, svc)

	payload := `{"level":"Elementary","apiToken":"sk-test","provider":"openai","model":"gpt-3.5-turbo"}`
	resp, body := postJSON(t, s, "/api/generate-text", payload)

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, true, body["success"])
	assert.Equal(t, "The cat sat.", body["text"])
	assert.Equal(t, 1, mock.Calls)
	assert.Contains(t, mock.LastPrompt, "Elementary")
}

func TestGenerateText_VendorFailure(t *testing.T) {
	svc := &fakeService{generateResult: provider.Result{
		Error: "Invalid OPENAI API key. Please check your API key and try again.",
	}}
	s := newTestServer(t, svc)

	payload := `{"level":"Advanced","apiToken":"bad","provider":"openai","model":"gpt-4o"}`
	resp, body := postJSON(t, s, "/api/generate-text", payload)

	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, false, body["success"])
	assert.Equal(t, "AI text generation failed: Invalid OPENAI API key. Please check your API key and try again..", body["error"])
}

func TestGenerateText_ForwardsParams(t *testing.T) {
	svc := &fakeService{generateResult: provider.Result{Success: true, Text: "ok"}}
	s := newTestServer(t, svc)

	payload := `{"level":"Upper-Intermediate","apiToken":"sk-1","provider":"anthropic","model":"claude-3-5-sonnet-20241022","customPrompt":"Write about trains."}`
	resp, _ := postJSON(t, s, "/api/generate-text", payload)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	p := svc.lastGenerate
	assert.Equal(t, "Upper-Intermediate", string(p.Level))
	assert.Equal(t, "sk-1", p.APIToken.Reveal())
	assert.Equal(t, provider.Anthropic, p.Provider)
	assert.Equal(t, "claude-3-5-sonnet-20241022", p.Model)
	assert.Equal(t, "Write about trains.", p.CustomPrompt)
}

func TestTranslateWord_Validation(t *testing.T) {
	tests := []struct {
		name    string
		payload string
		wantErr string
	}{
		{"missing word", `{"targetLanguage":"Spanish","languageCode":"es"}`, "Word is required"},
		{"missing language", `{"word":"cat","languageCode":"es"}`, "Target language is required"},
		{"missing code", `{"word":"cat","targetLanguage":"Spanish"}`, "Language code is required"},
	}

	svc := &fakeService{}
	s := newTestServer(t, svc)

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp, body := postJSON(t, s, "/api/translate-word", tt.payload)
			assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
			assert.Equal(t, tt.wantErr, body["error"])
		})
	}
	assert.Zero(t, svc.translateCalls)
}

func TestTranslateWord_MissingCredentials(t *testing.T) {
	svc := &fakeService{}
	s := newTestServer(t, svc)

	payload := `{"word":"cat","targetLanguage":"Spanish","languageCode":"es","model":"gpt-4o"}`
	resp, body := postJSON(t, s, "/api/translate-word", payload)

	assert.Equal(t, http.StatusOK, resp.StatusCode, "missing credentials are not a server fault")
	assert.Equal(t, false, body["success"])
	assert.Equal(t, "AI token and provider are required for translation", body["error"])
	assert.Zero(t, svc.translateCalls)
}

func TestTranslateWord_Success(t *testing.T) {
	svc := &fakeService{translateResult: provider.Result{Success: true, Text: "gato"}}
	s := newTestServer(t, svc)

	payload := `{"word":"cat","targetLanguage":"Spanish","languageCode":"es","aiToken":"sk-1","provider":"gemini"}`
	resp, body := postJSON(t, s, "/api/translate-word", payload)

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, true, body["success"])
	assert.Equal(t, "gato", body["translation"])

	p := svc.lastTranslate
	assert.Equal(t, "cat", p.Word)
	assert.Equal(t, "Spanish", p.TargetLanguage)
	assert.Equal(t, "es", p.LanguageCode)
	assert.Equal(t, provider.Gemini, p.Provider)
}

func TestTranslateWord_VendorFailure(t *testing.T) {
	svc := &fakeService{translateResult: provider.Result{
		Error: "GEMINI rate limit exceeded. Please wait a moment and try again.",
	}}
	s := newTestServer(t, svc)

	payload := `{"word":"cat","targetLanguage":"Spanish","languageCode":"es","aiToken":"sk-1","provider":"gemini"}`
	resp, body := postJSON(t, s, "/api/translate-word", payload)

	assert.Equal(t, http.StatusOK, resp.StatusCode, "vendor failures surface in the envelope, not the status")
	assert.Equal(t, false, body["success"])
	assert.Equal(t, "GEMINI rate limit exceeded. Please wait a moment and try again.", body["error"])
}

func TestInvalidJSONBody(t *testing.T) {
	s := newTestServer(t, &fakeService{})

	for _, path := range []string{"/api/validate-token", "/api/generate-text", "/api/translate-word"} {
		resp, body := postJSON(t, s, path, `{not json`)
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode, path)
		assert.Equal(t, "invalid JSON body", body["error"], path)
	}
}

func TestDictionaryCRUD(t *testing.T) {
	s := newTestServer(t, &fakeService{})

	resp, body := postJSON(t, s, "/api/dictionary", `{"english":"cat","translation":"gato"}`)
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	entry := body["entry"].(map[string]any)
	id := entry["id"].(string)
	require.NotEmpty(t, id)
	assert.Equal(t, "cat", entry["english"])

	req := httptest.NewRequest(http.MethodGet, "/api/dictionary", nil)
	resp, err := s.App().Test(req)
	require.NoError(t, err)
	body = decodeBody(t, resp)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	entries := body["entries"].([]any)
	require.Len(t, entries, 1)

	req = httptest.NewRequest(http.MethodPut, "/api/dictionary/"+id, strings.NewReader(`{"english":"cat","translation":"chat"}`))
	req.Header.Set("Content-Type", "application/json")
	resp, err = s.App().Test(req)
	require.NoError(t, err)
	body = decodeBody(t, resp)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "chat", body["entry"].(map[string]any)["translation"])

	req = httptest.NewRequest(http.MethodDelete, "/api/dictionary/"+id, nil)
	resp, err = s.App().Test(req)
	require.NoError(t, err)
	body = decodeBody(t, resp)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, true, body["success"])

	resp, body = postJSON(t, s, "/api/dictionary", `{"english":"","translation":"x"}`)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "English word is required", body["error"])
}

func TestDictionary_NotFound(t *testing.T) {
	s := newTestServer(t, &fakeService{})

	req := httptest.NewRequest(http.MethodPut, "/api/dictionary/missing", strings.NewReader(`{"english":"a","translation":"b"}`))
	req.Header.Set("Content-Type", "application/json")
	resp, err := s.App().Test(req)
	require.NoError(t, err)
	body := decodeBody(t, resp)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	assert.Equal(t, "dictionary entry not found", body["error"])

	req = httptest.NewRequest(http.MethodDelete, "/api/dictionary/missing", nil)
	resp, err = s.App().Test(req)
	require.NoError(t, err)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestHealthz(t *testing.T) {
	s := newTestServer(t, &fakeService{})

	req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
	resp, err := s.App().Test(req)
	require.NoError(t, err)
	body := decodeBody(t, resp)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "ok", body["status"])
}

func TestRequestIDHeader(t *testing.T) {
	s := newTestServer(t, &fakeService{})

	req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
	resp, err := s.App().Test(req)
	require.NoError(t, err)
	assert.NotEmpty(t, resp.Header.Get(HeaderRequestID))

	req = httptest.NewRequest(http.MethodGet, "/healthz", nil)
	req.Header.Set(HeaderRequestID, "fixed-id")
	resp, err = s.App().Test(req)
	require.NoError(t, err)
	assert.Equal(t, "fixed-id", resp.Header.Get(HeaderRequestID))
}

func TestUnexpectedErrorsBecomeGeneric500(t *testing.T) {
	var logs bytes.Buffer
	log := logging.NewLogger(&logging.LoggerConfig{Level: logging.LogLevelError, Format: "json", Output: &logs})
	s := New(testConfig(), log, &fakeService{}, dictionary.NewStore())

	s.App().Get("/panics", func(*fiber.Ctx) error { panic("index out of range") })
	s.App().Get("/errors", func(*fiber.Ctx) error { return errors.New("store unreachable") })

	for _, path := range []string{"/panics", "/errors"} {
		req := httptest.NewRequest(http.MethodGet, path, nil)
		resp, err := s.App().Test(req)
		require.NoError(t, err)

		raw, err := io.ReadAll(resp.Body)
		require.NoError(t, err)
		var body map[string]any
		require.NoError(t, json.Unmarshal(raw, &body))

		assert.Equal(t, http.StatusInternalServerError, resp.StatusCode, path)
		assert.Equal(t, false, body["success"], path)
		assert.Equal(t, "An unexpected error occurred. Please try again.", body["error"], path)
		assert.NotContains(t, string(raw), "index out of range", "cause must not be echoed")
		assert.NotContains(t, string(raw), "store unreachable", "cause must not be echoed")
	}

	// The causes land in the log, not the response.
	assert.Contains(t, logs.String(), "index out of range")
	assert.Contains(t, logs.String(), "store unreachable")
}

func TestKnownFiberErrorsKeepTheirStatus(t *testing.T) {
	s := newTestServer(t, &fakeService{})

	req := httptest.NewRequest(http.MethodGet, "/no/such/route", nil)
	resp, err := s.App().Test(req)
	require.NoError(t, err)
	body := decodeBody(t, resp)

	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	assert.Equal(t, false, body["success"])
}

func TestErrorMessageFormatting(t *testing.T) {
	svc := &fakeService{generateResult: provider.Result{Error: "boom"}}
	s := newTestServer(t, svc)

	payload := `{"level":"Advanced","apiToken":"t","provider":"openai","model":"m"}`
	_, body := postJSON(t, s, "/api/generate-text", payload)
	assert.Equal(t, fmt.Sprintf("AI text generation failed: %s.", "boom"), body["error"])
}
