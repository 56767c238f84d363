package syllabus

import (
	"strings"
	"testing"
)

func baseInput() CourseInput {
	return CourseInput{
		Title:           "Seminario de Literatura Comparada",
		Sessions:        12,
		SessionDuration: 90,
		MidtermExams: []MidtermExam{
			{ID: 1, Percentage: 30},
			{ID: 2, Percentage: 30},
		},
		FinalPercentage: 40,
		Semester:        "2024-2",
		Level:           "grado",
		WeeklyHours:     "3",
		Format:          "presencial",
		Competencies:    "Análisis crítico de textos literarios, argumentación escrita.",
	}
}

func TestSyllabusPrompt_CourseParameters(t *testing.T) {
	prompt := syllabusPrompt(baseInput())

	for _, want := range []string{
		"**Título:** Seminario de Literatura Comparada",
		"**Número de Sesiones:** 12",
		"**Duración por Sesión:** 90 minutos",
		"**Nivel:** grado",
		"**Formato:** presencial",
		"- Examen Parcial 1: 30%",
		"- Examen Parcial 2: 30%",
		"- Evaluación Final (Examen o Trabajo): 40%",
	} {
		if !strings.Contains(prompt, want) {
			t.Errorf("prompt missing %q", want)
		}
	}
}

func TestSyllabusPrompt_Deterministic(t *testing.T) {
	input := baseInput()
	if syllabusPrompt(input) != syllabusPrompt(input) {
		t.Error("syllabusPrompt is not deterministic for identical input")
	}
}

func TestSyllabusPrompt_RemainderLine(t *testing.T) {
	tests := []struct {
		name     string
		modify   func(*CourseInput)
		wantLine string
		present  bool
	}{
		{
			name: "fully assigned renders no remainder",
			modify: func(in *CourseInput) {
				// 30 + 30 + 40 = 100
			},
			wantLine: "Participación",
			present:  false,
		},
		{
			name: "remainder with label renders line",
			modify: func(in *CourseInput) {
				in.MidtermExams = []MidtermExam{{ID: 1, Percentage: 20}}
				in.FinalPercentage = 50
				in.RemainingAssignment = "Participación"
			},
			wantLine: "- Participación: 30%",
			present:  true,
		},
		{
			name: "remainder without label renders nothing",
			modify: func(in *CourseInput) {
				in.MidtermExams = []MidtermExam{{ID: 1, Percentage: 20}}
				in.FinalPercentage = 50
				in.RemainingAssignment = ""
			},
			wantLine: ": 30%",
			present:  false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			input := baseInput()
			tt.modify(&input)
			prompt := syllabusPrompt(input)
			if got := strings.Contains(prompt, tt.wantLine); got != tt.present {
				t.Errorf("prompt contains %q = %v, want %v", tt.wantLine, got, tt.present)
			}
		})
	}
}

func TestSyllabusPrompt_OptionalFields(t *testing.T) {
	input := baseInput()
	input.Instructor = "Dra. Elena Otero"
	input.Institution = "Universidad de Salamanca"

	prompt := syllabusPrompt(input)
	if !strings.Contains(prompt, "**Docente:** Dra. Elena Otero") {
		t.Error("prompt missing instructor line")
	}
	if !strings.Contains(prompt, "**Institución:** Universidad de Salamanca") {
		t.Error("prompt missing institution line")
	}

	bare := baseInput()
	bare.Semester = ""
	if strings.Contains(syllabusPrompt(bare), "**Semestre:**") {
		t.Error("empty semester should not render a line")
	}
}

func TestCompanionPrompt_SessionTopicsOnly(t *testing.T) {
	s := Syllabus{
		Title: "Historia del Arte",
		Sessions: []Session{
			{
				Number:     1,
				Title:      "El Renacimiento",
				Objectives: []string{"Identificar rasgos del quattrocento"},
				Activities: []Activity{{Name: "Clase magistral", Minutes: 90, Description: "No debe aparecer"}},
				Readings:   []Reading{{CitationAPA: "Tampoco debe aparecer"}},
			},
			{Number: 2, Title: "El Barroco"},
		},
	}

	prompt := companionPrompt(s)
	for _, want := range []string{"Sesión 1: El Renacimiento", "Sesión 2: El Barroco", "Identificar rasgos del quattrocento", "1500 palabras"} {
		if !strings.Contains(prompt, want) {
			t.Errorf("prompt missing %q", want)
		}
	}
	// Activities and readings are excluded to bound prompt size.
	for _, absent := range []string{"No debe aparecer", "Tampoco debe aparecer"} {
		if strings.Contains(prompt, absent) {
			t.Errorf("prompt should not contain %q", absent)
		}
	}
}

func TestExamPrompt_Requirements(t *testing.T) {
	s := Syllabus{
		Title: "Historia del Arte",
		Sessions: []Session{
			{Number: 1, Title: "El Renacimiento", Objectives: []string{"oculto"}},
			{Number: 2, Title: "El Barroco"},
		},
	}

	prompt := examPrompt(s)
	for _, want := range []string{"20 preguntas", "4 opciones", "5 preguntas de desarrollo", "Sesión 1: El Renacimiento", "Sesión 2: El Barroco"} {
		if !strings.Contains(prompt, want) {
			t.Errorf("prompt missing %q", want)
		}
	}
	if strings.Contains(prompt, "oculto") {
		t.Error("exam prompt should list topics only, not session objectives")
	}
}
