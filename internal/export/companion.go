package export

import (
	"bytes"
	"fmt"
	"html/template"
)

var companionTmpl = template.Must(template.New("companion").Funcs(documentFuncs).Parse(`<!DOCTYPE html>
<html lang="es">
<head>
  <meta charset="UTF-8">
  <meta name="viewport" content="width=device-width, initial-scale=1.0">
  <title>Material de Estudio: {{.CourseTitle}}</title>
  <style>` + documentStyle + `</style>
</head>
<body>
  <main>
    <header>
      <h1>Material de Estudio</h1>
      <p class="meta">{{.CourseTitle}}</p>
    </header>
    {{raw .Fragment}}
  </main>
</body>
</html>
`))

// CompanionDocument wraps an already-generated HTML fragment in a minimal
// standalone document shell. The fragment renders unescaped.
func CompanionDocument(fragment, courseTitle string) ([]byte, error) {
	var buf bytes.Buffer
	data := struct {
		CourseTitle string
		Fragment    string
	}{courseTitle, fragment}

	if err := companionTmpl.Execute(&buf, data); err != nil {
		return nil, fmt.Errorf("render companion document: %w", err)
	}
	return buf.Bytes(), nil
}
