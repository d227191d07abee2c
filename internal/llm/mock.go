package llm

import "context"

// MockClient returns a canned response and records the last prompt.
type MockClient struct {
	Response   string
	Err        error
	LastPrompt string
	Calls      int
}

func (m *MockClient) Generate(ctx context.Context, prompt string) (string, error) {
	m.Calls++
	m.LastPrompt = prompt
	return m.Response, m.Err
}
