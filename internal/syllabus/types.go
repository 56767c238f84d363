// Package syllabus holds the course domain model and the generation
// contract: prompts, output schemas and the parse targets they map to.
// JSON field names are the wire contract with the model and are kept in
// Spanish, matching the generated content language.
package syllabus

// MidtermExam is one midterm weight entry in the grading breakdown.
type MidtermExam struct {
	ID         int `json:"id" yaml:"id"`
	Percentage int `json:"percentage" yaml:"percentage" validate:"min=0,max=100"`
}

// CourseInput is the validated set of parameters supplied by the form.
type CourseInput struct {
	Title               string        `json:"title" yaml:"title" validate:"required"`
	Instructor          string        `json:"instructor" yaml:"instructor"`
	Institution         string        `json:"institution" yaml:"institution"`
	Sessions            int           `json:"sessions" yaml:"sessions" validate:"required,min=1,max=60"`
	SessionDuration     int           `json:"sessionDuration" yaml:"session_duration" validate:"required,min=30"`
	MidtermExams        []MidtermExam `json:"midtermExams" yaml:"midterm_exams" validate:"dive"`
	FinalPercentage     int           `json:"finalPercentage" yaml:"final_percentage" validate:"min=0,max=100"`
	RemainingPercentage int           `json:"remainingPercentage" yaml:"remaining_percentage"`
	RemainingAssignment string        `json:"remainingAssignment" yaml:"remaining_assignment"`
	Semester            string        `json:"semester" yaml:"semester"`
	Level               string        `json:"level" yaml:"level" validate:"required,oneof=grado posgrado"`
	WeeklyHours         string        `json:"weeklyHours" yaml:"weekly_hours"`
	Format              string        `json:"format" yaml:"format" validate:"required,oneof=presencial virtual hibrido"`
	Competencies        string        `json:"competencies" yaml:"competencies"`
}

// TotalAssigned returns the sum of all explicit percentage components.
func (c CourseInput) TotalAssigned() int {
	total := c.FinalPercentage
	for _, exam := range c.MidtermExams {
		total += exam.Percentage
	}
	return total
}

// Remaining returns the unassigned percentage, never negative.
func (c CourseInput) Remaining() int {
	if r := 100 - c.TotalAssigned(); r > 0 {
		return r
	}
	return 0
}

// Reading is one bibliography entry of a session.
type Reading struct {
	CitationAPA string `json:"citaAPA"`
	URL         string `json:"url"`
	DOI         string `json:"doi,omitempty"`
	Annotation  string `json:"anotacion"`
	Verified    bool   `json:"verificado,omitempty"` // reserved for future use
	License     string `json:"licencia,omitempty"`   // reserved for future use
	Paywall     bool   `json:"paywall"`
}

// Activity is one timed block within a session.
type Activity struct {
	Name        string `json:"nombre"`
	Minutes     int    `json:"minutos"`
	Description string `json:"descripcion"`
}

// Session is one class meeting.
type Session struct {
	Number     int        `json:"numero"`
	Title      string     `json:"titulo"`
	Objectives []string   `json:"objetivos"`
	Activities []Activity `json:"actividades"`
	Readings   []Reading  `json:"lecturas,omitempty"`
}

// ActivityMinutes returns the sum of activity durations in the session.
func (s Session) ActivityMinutes() int {
	total := 0
	for _, a := range s.Activities {
		total += a.Minutes
	}
	return total
}

// Evaluation is one grading component of the generated syllabus.
type Evaluation struct {
	Type       string `json:"tipo"`
	Percentage int    `json:"porcentaje"`
}

// Syllabus is the generated artifact.
type Syllabus struct {
	Title        string       `json:"titulo"`
	Instructor   string       `json:"docente,omitempty"`
	Institution  string       `json:"institucion,omitempty"`
	Description  string       `json:"descripcion"`
	Objectives   []string     `json:"objetivos"`
	Competencies []string     `json:"competencias"`
	Evaluation   []Evaluation `json:"evaluacion"`
	Sessions     []Session    `json:"sesiones"`
}

// EvaluationTotal returns the sum of evaluation percentages.
func (s Syllabus) EvaluationTotal() int {
	total := 0
	for _, e := range s.Evaluation {
		total += e.Percentage
	}
	return total
}

// AllReadings returns every reading across all sessions in session order.
func (s Syllabus) AllReadings() []Reading {
	var readings []Reading
	for _, ses := range s.Sessions {
		readings = append(readings, ses.Readings...)
	}
	return readings
}

// ExamQuestion is one multiple-choice item of a final exam.
type ExamQuestion struct {
	Question      string   `json:"pregunta"`
	Options       []string `json:"opciones"`
	CorrectOption int      `json:"respuestaCorrecta"` // zero-based index into Options
}

// FinalExam is the derivative exam artifact generated from a syllabus.
type FinalExam struct {
	MultipleChoice []ExamQuestion `json:"preguntas"`
	EssayPrompts   []string       `json:"desarrollo"`
}
