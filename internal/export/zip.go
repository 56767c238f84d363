package export

import (
	"archive/zip"
	"bytes"
	"fmt"

	"github.com/silabogen/silabogen/internal/syllabus"
)

func readmeContent(s syllabus.Syllabus) string {
	return fmt.Sprintf(`# Sílabo del Curso: %s

Este archivo ZIP contiene los materiales generados para el curso.

## Contenido

1.  **silabo.html**: El programa completo del curso en formato HTML, listo para ser visualizado en un navegador web o impreso.
2.  **sesiones.csv**: Un archivo de valores separados por comas (CSV) que detalla las sesiones y las lecturas asignadas. Puede ser importado fácilmente en hojas de cálculo como Excel o Google Sheets.
3.  **README.md**: Este archivo.

## Uso

-   **HTML**: Abre silabo.html en cualquier navegador web para ver el programa completo.
-   **CSV**: Utiliza sesiones.csv para gestionar las lecturas o integrarlo con otras herramientas de planificación.

---
Generado por SílaboGen.
`, s.Title)
}

// Archive bundles the HTML document, the CSV table and a README manifest
// into a single ZIP for one-step download.
func Archive(s syllabus.Syllabus) ([]byte, error) {
	doc, err := Document(s)
	if err != nil {
		return nil, err
	}
	table, err := Table(s)
	if err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	w := zip.NewWriter(&buf)

	files := []struct {
		name string
		data []byte
	}{
		{"silabo.html", doc},
		{"sesiones.csv", table},
		{"README.md", []byte(readmeContent(s))},
	}
	for _, file := range files {
		fw, err := w.Create(file.name)
		if err != nil {
			return nil, fmt.Errorf("create %s: %w", file.name, err)
		}
		if _, err := fw.Write(file.data); err != nil {
			return nil, fmt.Errorf("write %s: %w", file.name, err)
		}
	}

	if err := w.Close(); err != nil {
		return nil, fmt.Errorf("close archive: %w", err)
	}
	return buf.Bytes(), nil
}
