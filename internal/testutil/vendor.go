// Package testutil provides canned vendor payloads and an httptest-backed
// vendor stub shared by adapter tests.
package testutil

import (
	"fmt"
	"net/http"
	"net/http/httptest"
)

// OpenAIChatBody is a minimal chat-completions response with one choice.
func OpenAIChatBody(text string) string {
	return fmt.Sprintf(`{
		"id": "chatcmpl-test",
		"object": "chat.completion",
		"model": "gpt-3.5-turbo",
		"choices": [
			{
				"index": 0,
				"message": {"role": "assistant", "content": %q},
				"finish_reason": "stop"
			}
		]
	}`, text)
}

// OpenAIEmptyChatBody is a chat-completions response without choices.
const OpenAIEmptyChatBody = `{
	"id": "chatcmpl-test",
	"object": "chat.completion",
	"model": "gpt-3.5-turbo",
	"choices": []
}`

// OpenAIErrorBody mirrors the OpenAI error envelope.
func OpenAIErrorBody(message string) string {
	return fmt.Sprintf(`{"error": {"message": %q, "type": "invalid_request_error"}}`, message)
}

// AnthropicMessageBody is a minimal messages response with one text block.
func AnthropicMessageBody(text string) string {
	return fmt.Sprintf(`{
		"id": "msg-test",
		"type": "message",
		"role": "assistant",
		"model": "claude-3-5-sonnet-20241022",
		"content": [{"type": "text", "text": %q}],
		"stop_reason": "end_turn",
		"usage": {"input_tokens": 10, "output_tokens": 20}
	}`, text)
}

// AnthropicToolOnlyBody is a messages response whose only block is not
// text content.
const AnthropicToolOnlyBody = `{
	"id": "msg-test",
	"type": "message",
	"role": "assistant",
	"model": "claude-3-5-sonnet-20241022",
	"content": [{"type": "tool_use", "id": "tu-1", "name": "noop", "input": {}}],
	"stop_reason": "tool_use",
	"usage": {"input_tokens": 10, "output_tokens": 20}
}`

// AnthropicErrorBody mirrors the Anthropic error envelope.
func AnthropicErrorBody(message string) string {
	return fmt.Sprintf(`{"type": "error", "error": {"type": "invalid_request_error", "message": %q}}`, message)
}

// GeminiBody is a minimal generateContent response with one candidate.
func GeminiBody(text string) string {
	return fmt.Sprintf(`{"candidates": [{"content": {"parts": [{"text": %q}]}}]}`, text)
}

// GeminiEmptyBody is a generateContent response without candidates.
const GeminiEmptyBody = `{"candidates": []}`

// GeminiErrorBody mirrors the Gemini error envelope.
func GeminiErrorBody(code int, message, status string) string {
	return fmt.Sprintf(`{"error": {"code": %d, "message": %q, "status": %q}}`, code, message, status)
}

// VendorStub starts an httptest server answering every request with the
// given status and body. The caller owns Close.
func VendorStub(status int, body string) *httptest.Server {
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		_, _ = w.Write([]byte(body))
	}))
}
