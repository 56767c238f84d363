package export

import (
	"bytes"
	"fmt"
	"html/template"

	"github.com/silabogen/silabogen/internal/syllabus"
)

// Option letters in the printed layout. The correct index stays out of the
// visible document.
var examFuncs = template.FuncMap{
	"letter": func(i int) string { return string(rune('A' + i)) },
	"inc":    func(i int) int { return i + 1 },
}

var examTmpl = template.Must(template.New("exam").Funcs(examFuncs).Parse(`<!DOCTYPE html>
<html lang="es">
<head>
  <meta charset="UTF-8">
  <meta name="viewport" content="width=device-width, initial-scale=1.0">
  <title>Examen Final: {{.CourseTitle}}</title>
  <style>` + documentStyle + `</style>
</head>
<body>
  <main>
    <header>
      <h1>Examen Final</h1>
      <p class="meta">{{.CourseTitle}}</p>
      <p class="meta">Nombre: ____________________________________ Fecha: ______________</p>
    </header>

    <h2>Parte I: Opción Múltiple</h2>
    <p class="meta">Marque la única respuesta correcta de cada pregunta.</p>
    {{- range $i, $q := .Exam.MultipleChoice}}
    <section>
      <p><strong>{{inc $i}}.</strong> {{$q.Question}}</p>
      <ul>
        {{- range $j, $opt := $q.Options}}
        <li>{{letter $j}}) {{$opt}}</li>
        {{- end}}
      </ul>
    </section>
    {{- end}}

    <h2>Parte II: Desarrollo</h2>
    <p class="meta">Responda cada pregunta en un ensayo estructurado.</p>
    <ol>
      {{- range .Exam.EssayPrompts}}
      <li>{{.}}</li>
      {{- end}}
    </ol>
  </main>
</body>
</html>
`))

// ExamDocument renders a printable final exam for the given course.
func ExamDocument(exam syllabus.FinalExam, courseTitle string) ([]byte, error) {
	var buf bytes.Buffer
	data := struct {
		CourseTitle string
		Exam        syllabus.FinalExam
	}{courseTitle, exam}

	if err := examTmpl.Execute(&buf, data); err != nil {
		return nil, fmt.Errorf("render exam document: %w", err)
	}
	return buf.Bytes(), nil
}
