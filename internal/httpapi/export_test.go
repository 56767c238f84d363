package httpapi

import (
	"bytes"
	"net/http"
	"strings"
	"testing"

	"github.com/silabogen/silabogen/internal/ai"
)

func TestExportHTML(t *testing.T) {
	srv, _ := testServer(t, ai.NewMockProvider(validSyllabusJSON))

	w := doRequest(t, srv, http.MethodPost, "/api/export/html", validSyllabusJSON, "client-1")
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d; body %s", w.Code, http.StatusOK, w.Body.String())
	}
	if got := w.Header().Get("Content-Type"); got != contentTypeHTML {
		t.Errorf("Content-Type = %q, want %q", got, contentTypeHTML)
	}
	wantDisposition := `attachment; filename="silabo-seminario-de-literatura-comparada.html"`
	if got := w.Header().Get("Content-Disposition"); got != wantDisposition {
		t.Errorf("Content-Disposition = %q, want %q", got, wantDisposition)
	}
	if !strings.Contains(w.Body.String(), "Seminario de Literatura Comparada") {
		t.Error("document missing course title")
	}
}

func TestExportCSV(t *testing.T) {
	srv, _ := testServer(t, ai.NewMockProvider(validSyllabusJSON))

	w := doRequest(t, srv, http.MethodPost, "/api/export/csv", validSyllabusJSON, "client-1")
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", w.Code, http.StatusOK)
	}
	if got := w.Header().Get("Content-Type"); got != contentTypeCSV {
		t.Errorf("Content-Type = %q, want %q", got, contentTypeCSV)
	}
	if !bytes.HasPrefix(w.Body.Bytes(), []byte{0xEF, 0xBB, 0xBF}) {
		t.Error("CSV missing UTF-8 BOM")
	}
}

func TestExportXLSXAndZIP(t *testing.T) {
	srv, _ := testServer(t, ai.NewMockProvider(validSyllabusJSON))

	tests := []struct {
		path        string
		contentType string
		extension   string
	}{
		{"/api/export/xlsx", contentTypeXLSX, ".xlsx"},
		{"/api/export/zip", contentTypeZIP, ".zip"},
	}
	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			w := doRequest(t, srv, http.MethodPost, tt.path, validSyllabusJSON, "client-1")
			if w.Code != http.StatusOK {
				t.Fatalf("status = %d, want %d", w.Code, http.StatusOK)
			}
			if got := w.Header().Get("Content-Type"); got != tt.contentType {
				t.Errorf("Content-Type = %q, want %q", got, tt.contentType)
			}
			if !strings.Contains(w.Header().Get("Content-Disposition"), tt.extension) {
				t.Errorf("Content-Disposition = %q, want %s filename", w.Header().Get("Content-Disposition"), tt.extension)
			}
			if w.Body.Len() == 0 {
				t.Error("empty attachment body")
			}
		})
	}
}

func TestExportExam(t *testing.T) {
	srv, _ := testServer(t, ai.NewMockProvider(validSyllabusJSON))

	body := `{"courseTitle": "Seminario de Literatura Comparada", "exam": ` + validExamJSON + `}`
	w := doRequest(t, srv, http.MethodPost, "/api/export/exam", body, "client-1")
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d; body %s", w.Code, http.StatusOK, w.Body.String())
	}
	doc := w.Body.String()
	if !strings.Contains(doc, "¿Qué es la literatura comparada?") {
		t.Error("exam document missing question")
	}
	if strings.Contains(doc, "respuestaCorrecta") {
		t.Error("exam document reveals the answer key")
	}
}

func TestExportCompanion(t *testing.T) {
	srv, _ := testServer(t, ai.NewMockProvider(validSyllabusJSON))

	body := `{"courseTitle": "Seminario", "fragment": "<h2>Sesión 1</h2><p>Contenido.</p>"}`
	w := doRequest(t, srv, http.MethodPost, "/api/export/companion", body, "client-1")
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", w.Code, http.StatusOK)
	}
	if !strings.Contains(w.Body.String(), "<h2>Sesión 1</h2>") {
		t.Error("companion document missing fragment")
	}
}
