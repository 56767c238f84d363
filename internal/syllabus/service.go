package syllabus

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/silabogen/silabogen/internal/ai"
)

// Sampling temperatures per generation kind: moderate for the syllabus,
// higher for long-form prose, lower for the exam where determinism matters.
const (
	syllabusTemperature  = 0.7
	companionTemperature = 0.9
	examTemperature      = 0.3
)

// ErrGeneration marks any failure of a generation operation: provider call
// error, timeout or a nonconformant response. Callers surface a single
// localized message; the cause stays in the logs.
var ErrGeneration = errors.New("generation failed")

// Generator orchestrates prompt construction, provider calls, parsing and
// post-generation reconciliation. All operations are single attempts.
type Generator struct {
	provider ai.Provider
	model    string
}

// NewGenerator creates a generator backed by the given provider. model may
// be empty to use the provider default.
func NewGenerator(provider ai.Provider, model string) *Generator {
	return &Generator{provider: provider, model: model}
}

// GenerateSyllabus builds the syllabus prompt, invokes the provider with
// the syllabus schema and parses the result. A returned syllabus whose
// session count deviates from the request is kept and the deviation logged.
func (g *Generator) GenerateSyllabus(ctx context.Context, input CourseInput) (*Syllabus, error) {
	resp, err := g.provider.Generate(ctx, ai.Request{
		Prompt:      syllabusPrompt(input),
		Schema:      syllabusSchema,
		Model:       g.model,
		Temperature: syllabusTemperature,
		Kind:        ai.KindSyllabus,
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrGeneration, err)
	}

	raw := []byte(strings.TrimSpace(resp.Text))
	if err := syllabusSchema.Validate(raw); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrGeneration, err)
	}

	var syl Syllabus
	if err := json.Unmarshal(raw, &syl); err != nil {
		return nil, fmt.Errorf("%w: parse response: %v", ErrGeneration, err)
	}

	for _, f := range ReconcileSyllabus(syl, input) {
		slog.Warn("syllabus reconciliation", "finding", f, "model", resp.Model)
	}
	return &syl, nil
}

// GenerateCompanion builds the companion prompt from a reduced session-topic
// view and returns the raw trimmed HTML fragment. The output is unstructured;
// no validation is possible.
func (g *Generator) GenerateCompanion(ctx context.Context, s Syllabus) (string, error) {
	resp, err := g.provider.Generate(ctx, ai.Request{
		Prompt:      companionPrompt(s),
		Model:       g.model,
		Temperature: companionTemperature,
		Kind:        ai.KindCompanion,
	})
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrGeneration, err)
	}
	return strings.TrimSpace(resp.Text), nil
}

// StreamCompanion is the streaming variant of GenerateCompanion.
func (g *Generator) StreamCompanion(ctx context.Context, s Syllabus) (<-chan ai.StreamChunk, error) {
	ch, err := g.provider.StreamGenerate(ctx, ai.Request{
		Prompt:      companionPrompt(s),
		Model:       g.model,
		Temperature: companionTemperature,
		Kind:        ai.KindCompanion,
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrGeneration, err)
	}
	return ch, nil
}

// GenerateFinalExam builds the exam prompt from session topics, invokes the
// provider with the exam schema and parses the result. Structural deviations
// (question counts, option counts) are logged, never rejected.
func (g *Generator) GenerateFinalExam(ctx context.Context, s Syllabus) (*FinalExam, error) {
	resp, err := g.provider.Generate(ctx, ai.Request{
		Prompt:      examPrompt(s),
		Schema:      examSchema,
		Model:       g.model,
		Temperature: examTemperature,
		Kind:        ai.KindExam,
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrGeneration, err)
	}

	raw := []byte(strings.TrimSpace(resp.Text))
	if err := examSchema.Validate(raw); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrGeneration, err)
	}

	var exam FinalExam
	if err := json.Unmarshal(raw, &exam); err != nil {
		return nil, fmt.Errorf("%w: parse response: %v", ErrGeneration, err)
	}

	for _, f := range ReconcileExam(exam) {
		slog.Warn("exam reconciliation", "finding", f, "model", resp.Model)
	}
	return &exam, nil
}
