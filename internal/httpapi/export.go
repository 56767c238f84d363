package httpapi

import (
	"fmt"
	"net/http"

	"github.com/silabogen/silabogen/internal/export"
	"github.com/silabogen/silabogen/internal/platform/i18n"
	"github.com/silabogen/silabogen/internal/syllabus"
)

const (
	contentTypeHTML = "text/html; charset=utf-8"
	contentTypeCSV  = "text/csv; charset=utf-8"
	contentTypeXLSX = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
	contentTypeZIP  = "application/zip"
)

func writeAttachment(w http.ResponseWriter, contentType, filename string, data []byte) {
	w.Header().Set("Content-Type", contentType)
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	w.WriteHeader(http.StatusOK)
	w.Write(data)
}

// exportSyllabus factors the shared decode/render/attach flow of the
// syllabus-based export endpoints.
func (s *Server) exportSyllabus(w http.ResponseWriter, r *http.Request,
	render func(syllabus.Syllabus) ([]byte, error), contentType string, filename func(string) string) {

	var syl syllabus.Syllabus
	if !decodeBody(w, r, &syl) {
		return
	}

	data, err := render(syl)
	if err != nil {
		writeError(w, r, http.StatusInternalServerError, i18n.MsgGenerationFailed)
		return
	}
	writeAttachment(w, contentType, filename(syl.Title), data)
}

func (s *Server) handleExportHTML(w http.ResponseWriter, r *http.Request) {
	s.exportSyllabus(w, r, export.Document, contentTypeHTML, export.DocumentFilename)
}

func (s *Server) handleExportCSV(w http.ResponseWriter, r *http.Request) {
	s.exportSyllabus(w, r, export.Table, contentTypeCSV, export.TableFilename)
}

func (s *Server) handleExportXLSX(w http.ResponseWriter, r *http.Request) {
	s.exportSyllabus(w, r, export.Workbook, contentTypeXLSX, export.WorkbookFilename)
}

func (s *Server) handleExportZIP(w http.ResponseWriter, r *http.Request) {
	s.exportSyllabus(w, r, export.Archive, contentTypeZIP, export.ArchiveFilename)
}

func (s *Server) handleExportExam(w http.ResponseWriter, r *http.Request) {
	var req struct {
		CourseTitle string             `json:"courseTitle"`
		Exam        syllabus.FinalExam `json:"exam"`
	}
	if !decodeBody(w, r, &req) {
		return
	}

	data, err := export.ExamDocument(req.Exam, req.CourseTitle)
	if err != nil {
		writeError(w, r, http.StatusInternalServerError, i18n.MsgGenerationFailed)
		return
	}
	writeAttachment(w, contentTypeHTML, export.ExamFilename(req.CourseTitle), data)
}

func (s *Server) handleExportCompanion(w http.ResponseWriter, r *http.Request) {
	var req struct {
		CourseTitle string `json:"courseTitle"`
		Fragment    string `json:"fragment"`
	}
	if !decodeBody(w, r, &req) {
		return
	}

	data, err := export.CompanionDocument(req.Fragment, req.CourseTitle)
	if err != nil {
		writeError(w, r, http.StatusInternalServerError, i18n.MsgGenerationFailed)
		return
	}
	writeAttachment(w, contentTypeHTML, export.CompanionFilename(req.CourseTitle), data)
}
