package syllabus

import (
	"context"
	"errors"
	"testing"

	"github.com/silabogen/silabogen/internal/ai"
)

const validSyllabusJSON = `{
	"titulo": "Seminario de Literatura Comparada",
	"descripcion": "Un curso introductorio.",
	"objetivos": ["Analizar textos"],
	"competencias": ["Argumentación escrita"],
	"evaluacion": [
		{"tipo": "Examen Parcial 1", "porcentaje": 30},
		{"tipo": "Examen Parcial 2", "porcentaje": 30},
		{"tipo": "Trabajo Final", "porcentaje": 40}
	],
	"sesiones": [
		{
			"numero": 1,
			"titulo": "Introducción",
			"objetivos": ["Conocer el programa"],
			"actividades": [
				{"nombre": "Clase magistral", "minutos": 60, "descripcion": "Presentación"},
				{"nombre": "Discusión", "minutos": 30, "descripcion": "Debate inicial"}
			],
			"lecturas": [
				{"citaAPA": "Autor (2020). Obra.", "url": "https://example.org/a.pdf", "anotacion": "Disponible en SciELO.", "paywall": false}
			]
		}
	]
}`

const validExamJSON = `{
	"preguntas": [
		{"pregunta": "¿Qué es la literatura comparada?", "opciones": ["A", "B", "C", "D"], "respuestaCorrecta": 0}
	],
	"desarrollo": ["Tema 1", "Tema 2", "Tema 3", "Tema 4", "Tema 5"]
}`

func TestGenerator_GenerateSyllabus(t *testing.T) {
	mock := ai.NewMockProvider(validSyllabusJSON)
	gen := NewGenerator(mock, "gemini-2.5-flash")

	input := baseInput()
	input.Sessions = 1

	syl, err := gen.GenerateSyllabus(context.Background(), input)
	if err != nil {
		t.Fatalf("GenerateSyllabus() error = %v", err)
	}
	if syl.Title != "Seminario de Literatura Comparada" {
		t.Errorf("title = %q", syl.Title)
	}
	if len(syl.Sessions) != 1 {
		t.Fatalf("sessions = %d, want 1", len(syl.Sessions))
	}
	if syl.EvaluationTotal() != 100 {
		t.Errorf("evaluation total = %d, want 100", syl.EvaluationTotal())
	}

	req := mock.LastRequest
	if req == nil {
		t.Fatal("provider was not called")
	}
	if req.Kind != ai.KindSyllabus {
		t.Errorf("kind = %v, want syllabus", req.Kind)
	}
	if req.Schema == nil {
		t.Error("syllabus request must carry the output schema")
	}
	if req.Temperature != syllabusTemperature {
		t.Errorf("temperature = %v, want %v", req.Temperature, syllabusTemperature)
	}
}

func TestGenerator_GenerateSyllabus_SessionMismatchAccepted(t *testing.T) {
	mock := ai.NewMockProvider(validSyllabusJSON)
	gen := NewGenerator(mock, "")

	input := baseInput() // asks for 12 sessions; response carries 1

	syl, err := gen.GenerateSyllabus(context.Background(), input)
	if err != nil {
		t.Fatalf("mismatching session count must not be rejected: %v", err)
	}
	if len(syl.Sessions) != 1 {
		t.Errorf("generated result must be returned as-is, got %d sessions", len(syl.Sessions))
	}
}

func TestGenerator_GenerateSyllabus_ProviderError(t *testing.T) {
	mock := &ai.MockProvider{Err: errors.New("boom")}
	gen := NewGenerator(mock, "")

	_, err := gen.GenerateSyllabus(context.Background(), baseInput())
	if !errors.Is(err, ErrGeneration) {
		t.Errorf("error = %v, want ErrGeneration", err)
	}
}

func TestGenerator_GenerateSyllabus_NonconformantResponse(t *testing.T) {
	tests := []struct {
		name string
		text string
	}{
		{"prose instead of json", "Aquí tienes tu sílabo..."},
		{"missing required fields", `{"titulo": "Curso"}`},
		{"wrong field type", `{"titulo": 3, "descripcion": "d", "objetivos": [], "competencias": [], "evaluacion": [], "sesiones": []}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gen := NewGenerator(ai.NewMockProvider(tt.text), "")
			_, err := gen.GenerateSyllabus(context.Background(), baseInput())
			if !errors.Is(err, ErrGeneration) {
				t.Errorf("error = %v, want ErrGeneration", err)
			}
		})
	}
}

func TestGenerator_GenerateCompanion(t *testing.T) {
	mock := ai.NewMockProvider("\n  <h2>Sesión 1</h2><p>Ensayo...</p>  \n")
	gen := NewGenerator(mock, "")

	got, err := gen.GenerateCompanion(context.Background(), Syllabus{Title: "Curso"})
	if err != nil {
		t.Fatalf("GenerateCompanion() error = %v", err)
	}
	if got != "<h2>Sesión 1</h2><p>Ensayo...</p>" {
		t.Errorf("fragment = %q, want trimmed fragment", got)
	}

	req := mock.LastRequest
	if req.Schema != nil {
		t.Error("companion request must not carry a schema")
	}
	if req.Temperature != companionTemperature {
		t.Errorf("temperature = %v, want %v", req.Temperature, companionTemperature)
	}
}

func TestGenerator_GenerateCompanion_ProviderError(t *testing.T) {
	gen := NewGenerator(&ai.MockProvider{Err: errors.New("boom")}, "")

	_, err := gen.GenerateCompanion(context.Background(), Syllabus{Title: "Curso"})
	if !errors.Is(err, ErrGeneration) {
		t.Errorf("error = %v, want ErrGeneration", err)
	}
}

func TestGenerator_StreamCompanion(t *testing.T) {
	mock := ai.NewMockProvider("<h2>Sesión 1</h2>")
	gen := NewGenerator(mock, "")

	ch, err := gen.StreamCompanion(context.Background(), Syllabus{Title: "Curso"})
	if err != nil {
		t.Fatalf("StreamCompanion() error = %v", err)
	}

	var text string
	for chunk := range ch {
		if chunk.Err != nil {
			t.Fatalf("chunk error: %v", chunk.Err)
		}
		text += chunk.Text
	}
	if text != "<h2>Sesión 1</h2>" {
		t.Errorf("streamed text = %q", text)
	}
}

func TestGenerator_GenerateFinalExam(t *testing.T) {
	mock := ai.NewMockProvider(validExamJSON)
	gen := NewGenerator(mock, "")

	exam, err := gen.GenerateFinalExam(context.Background(), Syllabus{Title: "Curso"})
	if err != nil {
		t.Fatalf("GenerateFinalExam() error = %v", err)
	}
	if len(exam.MultipleChoice) != 1 {
		t.Errorf("questions = %d, want 1 (kept despite being under the minimum)", len(exam.MultipleChoice))
	}
	if len(exam.EssayPrompts) != 5 {
		t.Errorf("essay prompts = %d, want 5", len(exam.EssayPrompts))
	}

	req := mock.LastRequest
	if req.Kind != ai.KindExam {
		t.Errorf("kind = %v, want exam", req.Kind)
	}
	if req.Schema == nil {
		t.Error("exam request must carry the output schema")
	}
	if req.Temperature != examTemperature {
		t.Errorf("temperature = %v, want %v", req.Temperature, examTemperature)
	}
}

func TestGenerator_GenerateFinalExam_ProviderError(t *testing.T) {
	gen := NewGenerator(&ai.MockProvider{Err: errors.New("boom")}, "")

	_, err := gen.GenerateFinalExam(context.Background(), Syllabus{Title: "Curso"})
	if !errors.Is(err, ErrGeneration) {
		t.Errorf("error = %v, want ErrGeneration", err)
	}
}
