package export

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"strconv"

	"github.com/silabogen/silabogen/internal/syllabus"
)

// utf8BOM lets spreadsheet applications detect the encoding.
var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

var tableHeaders = []string{"Sesion_Numero", "Sesion_Titulo", "Tipo_Lectura", "Cita_APA", "URL", "DOI"}

const (
	readingKindAssigned = "Lectura Obligatoria"
	readingKindNone     = "Sin lectura asignada"
)

// Table renders one CSV row per (session, reading) pair. Sessions without
// readings contribute a single placeholder row, so the table never has fewer
// data rows than sessions.
func Table(s syllabus.Syllabus) ([]byte, error) {
	var buf bytes.Buffer
	buf.Write(utf8BOM)

	w := csv.NewWriter(&buf)
	if err := w.Write(tableHeaders); err != nil {
		return nil, fmt.Errorf("write headers: %w", err)
	}

	for _, ses := range s.Sessions {
		if len(ses.Readings) == 0 {
			if err := w.Write([]string{strconv.Itoa(ses.Number), ses.Title, readingKindNone, "", "", ""}); err != nil {
				return nil, fmt.Errorf("write row: %w", err)
			}
			continue
		}
		for _, r := range ses.Readings {
			row := []string{strconv.Itoa(ses.Number), ses.Title, readingKindAssigned, r.CitationAPA, r.URL, r.DOI}
			if err := w.Write(row); err != nil {
				return nil, fmt.Errorf("write row: %w", err)
			}
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return nil, fmt.Errorf("flush table: %w", err)
	}
	return buf.Bytes(), nil
}
