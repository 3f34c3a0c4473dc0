package provider

import "context"

// MockGenerator is a lightweight in-memory Generator useful for tests.
// It records the last call so assertions can check what an adapter would
// have been asked to do.
type MockGenerator struct {
	Result Result

	Calls            int
	LastPrompt       string
	LastSystemPrompt string
	LastMaxTokens    int
}

// NewMockGenerator returns a mock that succeeds with the given text.
func NewMockGenerator(text string) *MockGenerator {
	return &MockGenerator{Result: Result{Success: true, Text: text}}
}

// Generate implements Generator; it returns the canned Result.
func (m *MockGenerator) Generate(_ context.Context, prompt, systemPrompt string, maxTokens int) Result {
	m.Calls++
	m.LastPrompt = prompt
	m.LastSystemPrompt = systemPrompt
	m.LastMaxTokens = maxTokens
	return m.Result
}
