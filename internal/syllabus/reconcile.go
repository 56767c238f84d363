package syllabus

import "fmt"

// Reconciliation is advisory by design: the model is the sole source of
// content quality, so structural deviations are surfaced as findings and the
// generated artifact is always kept.

// ReconcileSyllabus compares a generated syllabus against the requested
// parameters and returns human-readable findings.
func ReconcileSyllabus(s Syllabus, input CourseInput) []string {
	var findings []string

	if len(s.Sessions) != input.Sessions {
		findings = append(findings, fmt.Sprintf(
			"se solicitaron %d sesiones pero se generaron %d; se usará el resultado generado",
			input.Sessions, len(s.Sessions)))
	}

	if total := s.EvaluationTotal(); total != 100 {
		findings = append(findings, fmt.Sprintf(
			"los porcentajes de evaluación suman %d%% en lugar de 100%%", total))
	}

	for _, ses := range s.Sessions {
		if minutes := ses.ActivityMinutes(); minutes != input.SessionDuration {
			findings = append(findings, fmt.Sprintf(
				"la sesión %d suma %d minutos de actividades frente a los %d configurados",
				ses.Number, minutes, input.SessionDuration))
		}
	}

	return findings
}

// Structural expectations for the generated final exam.
const (
	minExamQuestions = 20
	examOptionCount  = 4
	essayPromptCount = 5
)

// ReconcileExam checks a generated final exam against the requested
// structure and returns human-readable findings.
func ReconcileExam(exam FinalExam) []string {
	var findings []string

	if len(exam.MultipleChoice) < minExamQuestions {
		findings = append(findings, fmt.Sprintf(
			"se pidieron al menos %d preguntas de opción múltiple pero se generaron %d",
			minExamQuestions, len(exam.MultipleChoice)))
	}

	for i, q := range exam.MultipleChoice {
		if len(q.Options) != examOptionCount {
			findings = append(findings, fmt.Sprintf(
				"la pregunta %d tiene %d opciones en lugar de %d", i+1, len(q.Options), examOptionCount))
		}
		if q.CorrectOption < 0 || q.CorrectOption >= len(q.Options) {
			findings = append(findings, fmt.Sprintf(
				"la pregunta %d tiene un índice de respuesta fuera de rango (%d)", i+1, q.CorrectOption))
		}
	}

	if len(exam.EssayPrompts) != essayPromptCount {
		findings = append(findings, fmt.Sprintf(
			"se pidieron %d preguntas de desarrollo pero se generaron %d",
			essayPromptCount, len(exam.EssayPrompts)))
	}

	return findings
}
