package ai

import "context"

// MockProvider is a test double for generation providers.
type MockProvider struct {
	Response    string
	Err         error
	LastRequest *Request // captures the last request for inspection
}

// NewMockProvider creates a MockProvider that returns the given text.
func NewMockProvider(response string) *MockProvider {
	return &MockProvider{Response: response}
}

func (m *MockProvider) Generate(_ context.Context, req Request) (Response, error) {
	m.LastRequest = &req
	if m.Err != nil {
		return Response{}, m.Err
	}
	return Response{
		Text:         m.Response,
		Model:        "mock",
		InputTokens:  10,
		OutputTokens: len(m.Response),
	}, nil
}

func (m *MockProvider) StreamGenerate(_ context.Context, req Request) (<-chan StreamChunk, error) {
	m.LastRequest = &req
	if m.Err != nil {
		return nil, m.Err
	}
	ch := make(chan StreamChunk, 1)
	go func() {
		defer close(ch)
		ch <- StreamChunk{Text: m.Response, Done: true}
	}()
	return ch, nil
}

func (m *MockProvider) HealthCheck(_ context.Context) error {
	return m.Err
}
