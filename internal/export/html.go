package export

import (
	"bytes"
	"fmt"
	"html/template"

	"github.com/silabogen/silabogen/internal/syllabus"
)

// documentStyle keeps the exported documents self-contained: no external
// stylesheets or scripts.
const documentStyle = `
    body { font-family: Georgia, "Times New Roman", serif; color: #1e293b; background: #f1f5f9; margin: 0; padding: 2rem 1rem; }
    main { max-width: 52rem; margin: 0 auto; background: #fff; padding: 2.5rem; border-radius: 0.5rem; box-shadow: 0 1px 4px rgba(0,0,0,.15); }
    h1 { font-size: 1.8rem; margin: 0; }
    h2 { font-size: 1.2rem; border-bottom: 1px solid #cbd5e1; padding-bottom: .3rem; margin-top: 2rem; }
    h3 { font-size: 1.05rem; color: #1d4ed8; }
    h4 { font-size: .9rem; margin-bottom: .2rem; }
    table { width: 100%; border-collapse: collapse; font-size: .9rem; }
    th, td { border: 1px solid #cbd5e1; padding: .4rem .6rem; text-align: left; }
    th { background: #f8fafc; text-transform: uppercase; font-size: .75rem; }
    ul { margin-top: .4rem; }
    .meta { color: #475569; margin-top: .4rem; }
    .eval { display: flex; justify-content: space-between; }
    .eval.total { border-top: 1px solid #cbd5e1; font-weight: bold; padding-top: .3rem; }
    .reading { border-bottom: 1px solid #e2e8f0; padding: .6rem 0; }
    .reading .note { font-size: .85rem; font-style: italic; color: #475569; }
    .reading .links { font-size: .8rem; }
    .paywall { background: #fef9c3; color: #854d0e; border-radius: 9999px; padding: .1rem .6rem; font-size: .75rem; }
    @media print {
      body { background: #fff; padding: 0; font-size: 10pt; }
      main { box-shadow: none; padding: 0; }
      a { color: inherit; text-decoration: none; }
      a[href]:after { content: " (" attr(href) ")"; }
    }
`

// Citations and annotations may embed lightweight markup produced by the
// model; they render unescaped.
var documentFuncs = template.FuncMap{
	"raw": func(s string) template.HTML { return template.HTML(s) },
}

var documentTmpl = template.Must(template.New("document").Funcs(documentFuncs).Parse(`<!DOCTYPE html>
<html lang="es">
<head>
  <meta charset="UTF-8">
  <meta name="viewport" content="width=device-width, initial-scale=1.0">
  <title>Sílabo: {{.Title}}</title>
  <style>` + documentStyle + `</style>
</head>
<body>
  <main>
    <header>
      <h1>{{.Title}}</h1>
      {{- if or .Instructor .Institution}}
      <p class="meta">{{.Instructor}}{{if and .Instructor .Institution}} · {{end}}{{.Institution}}</p>
      {{- end}}
      <p class="meta">{{.Description}}</p>
    </header>

    <h2>Objetivos de Aprendizaje</h2>
    <ul>{{range .Objectives}}<li>{{.}}</li>{{end}}</ul>

    <h2>Competencias</h2>
    <ul>{{range .Competencies}}<li>{{.}}</li>{{end}}</ul>

    <h2>Sistema de Evaluación</h2>
    <ul>
      {{- range .Evaluation}}
      <li class="eval"><span>{{.Type}}</span><span>{{.Percentage}}%</span></li>
      {{- end}}
      <li class="eval total"><span>TOTAL</span><span>{{.EvaluationTotal}}%</span></li>
    </ul>

    <h2>Plan de Sesiones</h2>
    {{- range .Sessions}}
    <section>
      <h3>Sesión {{.Number}}: {{.Title}}</h3>
      <h4>Objetivos de la Sesión</h4>
      <ul>{{range .Objectives}}<li>{{.}}</li>{{end}}</ul>
      <h4>Actividades</h4>
      <table>
        <thead><tr><th>Actividad</th><th>Duración</th><th>Descripción</th></tr></thead>
        <tbody>
          {{- range .Activities}}
          <tr><td>{{.Name}}</td><td>{{.Minutes}} min</td><td>{{.Description}}</td></tr>
          {{- end}}
        </tbody>
      </table>
      {{- if .Readings}}
      <h4>Lecturas Asignadas</h4>
      {{- range .Readings}}
      {{template "reading" .}}
      {{- end}}
      {{- end}}
    </section>
    {{- end}}

    <h2>Bibliografía Completa</h2>
    {{- range .AllReadings}}
    {{template "reading" .}}
    {{- end}}
  </main>
</body>
</html>
{{define "reading"}}<div class="reading">
  <p>{{raw .CitationAPA}}</p>
  <p class="note"><strong>Anotación:</strong> {{raw .Annotation}}</p>
  <p class="links">
    <a href="{{.URL}}" target="_blank" rel="noopener noreferrer">Acceder al Recurso</a>
    {{if .DOI}} <span>DOI: {{.DOI}}</span>{{end}}
    {{if .Paywall}} <span class="paywall">Posible Paywall</span>{{end}}
  </p>
</div>{{end}}`))

// Document renders a self-contained HTML syllabus suitable for standalone
// viewing or printing.
func Document(s syllabus.Syllabus) ([]byte, error) {
	var buf bytes.Buffer
	if err := documentTmpl.Execute(&buf, s); err != nil {
		return nil, fmt.Errorf("render document: %w", err)
	}
	return buf.Bytes(), nil
}
