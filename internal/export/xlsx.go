package export

import (
	"fmt"

	"github.com/xuri/excelize/v2"

	"github.com/silabogen/silabogen/internal/syllabus"
)

const workbookSheet = "Sesiones"

// Workbook renders the reading table as an XLSX workbook, one row per
// (session, reading) pair with the same placeholder rule as Table.
func Workbook(s syllabus.Syllabus) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", workbookSheet); err != nil {
		return nil, fmt.Errorf("rename sheet: %w", err)
	}

	headerStyle, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return nil, fmt.Errorf("create header style: %w", err)
	}

	for i, h := range tableHeaders {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		if err := f.SetCellValue(workbookSheet, cell, h); err != nil {
			return nil, fmt.Errorf("write header: %w", err)
		}
	}
	if err := f.SetRowStyle(workbookSheet, 1, 1, headerStyle); err != nil {
		return nil, fmt.Errorf("style header: %w", err)
	}

	row := 2
	writeRow := func(values []any) error {
		cell, _ := excelize.CoordinatesToCellName(1, row)
		if err := f.SetSheetRow(workbookSheet, cell, &values); err != nil {
			return fmt.Errorf("write row %d: %w", row, err)
		}
		row++
		return nil
	}

	for _, ses := range s.Sessions {
		if len(ses.Readings) == 0 {
			if err := writeRow([]any{ses.Number, ses.Title, readingKindNone, "", "", ""}); err != nil {
				return nil, err
			}
			continue
		}
		for _, r := range ses.Readings {
			if err := writeRow([]any{ses.Number, ses.Title, readingKindAssigned, r.CitationAPA, r.URL, r.DOI}); err != nil {
				return nil, err
			}
		}
	}

	widths := []float64{14, 34, 20, 60, 40, 24}
	for i, w := range widths {
		col, _ := excelize.ColumnNumberToName(i + 1)
		if err := f.SetColWidth(workbookSheet, col, col, w); err != nil {
			return nil, fmt.Errorf("size column %s: %w", col, err)
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("write workbook: %w", err)
	}
	return buf.Bytes(), nil
}
