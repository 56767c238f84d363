// Package export converts generated artifacts into downloadable
// representations: a standalone HTML document, a CSV/XLSX reading table and
// a ZIP bundle, plus printable documents for the final exam and the study
// companion.
package export

import (
	"regexp"
	"strings"
)

var whitespace = regexp.MustCompile(`\s+`)

// Slug derives a filename-safe fragment from a course title.
func Slug(title string) string {
	return whitespace.ReplaceAllString(strings.ToLower(strings.TrimSpace(title)), "-")
}

// Download filenames per artifact.
func DocumentFilename(title string) string  { return "silabo-" + Slug(title) + ".html" }
func TableFilename(title string) string     { return "sesiones-" + Slug(title) + ".csv" }
func WorkbookFilename(title string) string  { return "sesiones-" + Slug(title) + ".xlsx" }
func ArchiveFilename(title string) string   { return "silabo-" + Slug(title) + ".zip" }
func ExamFilename(title string) string      { return "examen-" + Slug(title) + ".html" }
func CompanionFilename(title string) string { return "material-" + Slug(title) + ".html" }
