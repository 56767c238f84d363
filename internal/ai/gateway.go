// Package ai provides a provider-agnostic gateway for single-shot,
// schema-constrained text generation.
package ai

import "context"

// Kind identifies the generation request variant. The set is closed: each
// kind pairs a prompt-construction strategy with an optional output schema
// and a sampling temperature.
type Kind int

const (
	KindSyllabus Kind = iota
	KindCompanion
	KindExam
)

func (k Kind) String() string {
	switch k {
	case KindSyllabus:
		return "syllabus"
	case KindCompanion:
		return "companion"
	case KindExam:
		return "exam"
	default:
		return "unknown"
	}
}

// Request is the input to a generation call.
type Request struct {
	Prompt      string  `json:"prompt"`
	Schema      *Schema `json:"schema,omitempty"` // constrains the output shape when set
	Model       string  `json:"model,omitempty"`
	MaxTokens   int     `json:"max_tokens,omitempty"`
	Temperature float64 `json:"temperature,omitempty"`
	Kind        Kind    `json:"kind,omitempty"`
}

// Response is the output from a generation call.
type Response struct {
	Text         string `json:"text"`
	Model        string `json:"model"`
	InputTokens  int    `json:"input_tokens"`
	OutputTokens int    `json:"output_tokens"`
}

// TotalTokens returns the sum of input and output tokens.
func (r Response) TotalTokens() int {
	return r.InputTokens + r.OutputTokens
}

// StreamChunk represents a streaming response chunk.
type StreamChunk struct {
	Text string
	Done bool
	Err  error
}

// Provider is the interface all generation providers must implement.
// Calls are single-shot: no retry, no fallback.
type Provider interface {
	Generate(ctx context.Context, req Request) (Response, error)
	StreamGenerate(ctx context.Context, req Request) (<-chan StreamChunk, error)
	HealthCheck(ctx context.Context) error
}
