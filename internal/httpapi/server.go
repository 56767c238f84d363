// Package httpapi exposes the generation, entitlement, export and payment
// handoff operations over HTTP. Clients identify themselves with an opaque
// X-Client-ID header; errors are a single flat localized message, detail
// stays in the logs.
package httpapi

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/silabogen/silabogen/internal/entitlement"
	"github.com/silabogen/silabogen/internal/handoff"
	"github.com/silabogen/silabogen/internal/platform/cache"
	"github.com/silabogen/silabogen/internal/platform/i18n"
	"github.com/silabogen/silabogen/internal/preset"
	"github.com/silabogen/silabogen/internal/syllabus"
)

const (
	// anonymousClient is used when the X-Client-ID header is absent.
	anonymousClient = "anonymous"

	maxBodyBytes = 1 << 20
)

// Config holds the dependencies and settings of the HTTP server.
type Config struct {
	Generator     *syllabus.Generator
	Gate          *entitlement.Gate
	Mailbox       handoff.Mailbox
	Presets       *preset.Loader
	Cache         *cache.Cache // nil when running on in-memory state
	BaseURL       string
	DevUnlockHash string        // bcrypt hash; empty disables dev unlock
	GenTimeout    time.Duration // per-request budget for provider calls
}

// Server handles all API routes.
type Server struct {
	gen           *syllabus.Generator
	gate          *entitlement.Gate
	mailbox       handoff.Mailbox
	presets       *preset.Loader
	cache         *cache.Cache
	baseURL       string
	devUnlockHash string
	genTimeout    time.Duration
}

// NewServer creates a server from the given configuration.
func NewServer(cfg Config) *Server {
	timeout := cfg.GenTimeout
	if timeout <= 0 {
		timeout = 120 * time.Second
	}
	baseURL := cfg.BaseURL
	if baseURL == "" {
		baseURL = "/"
	}
	return &Server{
		gen:           cfg.Generator,
		gate:          cfg.Gate,
		mailbox:       cfg.Mailbox,
		presets:       cfg.Presets,
		cache:         cfg.Cache,
		baseURL:       baseURL,
		devUnlockHash: cfg.DevUnlockHash,
		genTimeout:    timeout,
	}
}

// Routes returns the HTTP router with all endpoints registered.
func (s *Server) Routes() *http.ServeMux {
	mux := http.NewServeMux()

	mux.HandleFunc("POST /api/syllabus", s.handleGenerateSyllabus)
	mux.HandleFunc("POST /api/companion", s.handleGenerateCompanion)
	mux.HandleFunc("GET /api/companion/stream", s.handleCompanionStream)
	mux.HandleFunc("POST /api/exam", s.handleGenerateExam)

	mux.HandleFunc("POST /api/export/html", s.handleExportHTML)
	mux.HandleFunc("POST /api/export/csv", s.handleExportCSV)
	mux.HandleFunc("POST /api/export/xlsx", s.handleExportXLSX)
	mux.HandleFunc("POST /api/export/zip", s.handleExportZIP)
	mux.HandleFunc("POST /api/export/exam", s.handleExportExam)
	mux.HandleFunc("POST /api/export/companion", s.handleExportCompanion)

	mux.HandleFunc("GET /api/entitlement", s.handleEntitlement)
	mux.HandleFunc("POST /api/entitlement/reset", s.handleEntitlementReset)

	mux.HandleFunc("GET /api/presets", s.handlePresets)

	mux.HandleFunc("POST /api/handoff", s.handleHandoffPark)
	mux.HandleFunc("POST /api/handoff/consume", s.handleHandoffConsume)
	mux.HandleFunc("GET /payment/return", s.handlePaymentReturn)

	mux.HandleFunc("GET /healthz", s.handleHealthz)
	mux.HandleFunc("GET /readyz", s.handleReadyz)

	return mux
}

// clientID extracts the opaque client identity. Redirect flows cannot set
// headers, so a client query parameter is accepted as fallback.
func clientID(r *http.Request) string {
	if id := r.Header.Get("X-Client-ID"); id != "" {
		return id
	}
	if id := r.URL.Query().Get("client"); id != "" {
		return id
	}
	return anonymousClient
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.Error("encoding response", "error", err)
	}
}

func writeError(w http.ResponseWriter, r *http.Request, status int, key string) {
	msg := i18n.Message(r.Header.Get("Accept-Language"), key)
	writeJSON(w, status, map[string]string{"error": msg})
}

func decodeBody(w http.ResponseWriter, r *http.Request, v any) bool {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		writeError(w, r, http.StatusBadRequest, i18n.MsgInvalidInput)
		return false
	}
	return true
}

func (s *Server) handleGenerateSyllabus(w http.ResponseWriter, r *http.Request) {
	id := clientID(r)

	if !s.gate.CanGenerate(r.Context(), id) {
		msg := i18n.Message(r.Header.Get("Accept-Language"), i18n.MsgFreeLimitReached)
		writeJSON(w, http.StatusForbidden, map[string]any{
			"error":     msg,
			"remaining": 0,
			"premium":   false,
		})
		return
	}

	var input syllabus.CourseInput
	if !decodeBody(w, r, &input) {
		return
	}
	if err := syllabus.CheckInput(&input); err != nil {
		slog.Warn("rejected course input", "client_id", id, "error", err)
		writeError(w, r, http.StatusBadRequest, i18n.MsgInvalidInput)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), s.genTimeout)
	defer cancel()

	syl, err := s.gen.GenerateSyllabus(ctx, input)
	if err != nil {
		s.generationError(w, r, "syllabus", err)
		return
	}

	if err := s.gate.RecordGeneration(r.Context(), id); err != nil {
		slog.Warn("recording generation failed", "client_id", id, "error", err)
	}
	writeJSON(w, http.StatusOK, syl)
}

func (s *Server) handleGenerateCompanion(w http.ResponseWriter, r *http.Request) {
	if !s.requirePremium(w, r) {
		return
	}

	var syl syllabus.Syllabus
	if !decodeBody(w, r, &syl) {
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), s.genTimeout)
	defer cancel()

	fragment, err := s.gen.GenerateCompanion(ctx, syl)
	if err != nil {
		s.generationError(w, r, "companion", err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"fragment": fragment})
}

func (s *Server) handleGenerateExam(w http.ResponseWriter, r *http.Request) {
	if !s.requirePremium(w, r) {
		return
	}

	var syl syllabus.Syllabus
	if !decodeBody(w, r, &syl) {
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), s.genTimeout)
	defer cancel()

	exam, err := s.gen.GenerateFinalExam(ctx, syl)
	if err != nil {
		s.generationError(w, r, "exam", err)
		return
	}
	writeJSON(w, http.StatusOK, exam)
}

// requirePremium writes a 403 and returns false when the client is not
// licensed.
func (s *Server) requirePremium(w http.ResponseWriter, r *http.Request) bool {
	if s.gate.IsPremium(r.Context(), clientID(r)) {
		return true
	}
	writeError(w, r, http.StatusForbidden, i18n.MsgPremiumRequired)
	return false
}

func (s *Server) generationError(w http.ResponseWriter, r *http.Request, kind string, err error) {
	slog.Error("generation failed", "kind", kind, "client_id", clientID(r), "error", err)
	if errors.Is(err, context.DeadlineExceeded) || errors.Is(r.Context().Err(), context.Canceled) {
		writeError(w, r, http.StatusGatewayTimeout, i18n.MsgGenerationFailed)
		return
	}
	writeError(w, r, http.StatusBadGateway, i18n.MsgGenerationFailed)
}

func (s *Server) handleEntitlement(w http.ResponseWriter, r *http.Request) {
	id := clientID(r)
	writeJSON(w, http.StatusOK, map[string]any{
		"premium":   s.gate.IsPremium(r.Context(), id),
		"remaining": s.gate.Remaining(r.Context(), id),
		"limit":     s.gate.FreeLimit(),
	})
}

func (s *Server) handleEntitlementReset(w http.ResponseWriter, r *http.Request) {
	id := clientID(r)
	if err := s.gate.ResetDemo(r.Context(), id); err != nil {
		slog.Error("entitlement reset failed", "client_id", id, "error", err)
		w.WriteHeader(http.StatusInternalServerError)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) handlePresets(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, s.presets.All())
}

func (s *Server) handleHealthz(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(`{"status":"ok"}`))
}

func (s *Server) handleReadyz(w http.ResponseWriter, r *http.Request) {
	if s.cache != nil {
		if err := s.cache.HealthCheck(r.Context()); err != nil {
			slog.Warn("cache not ready", "error", err)
			writeJSON(w, http.StatusServiceUnavailable, map[string]string{"status": "cache unavailable"})
			return
		}
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(`{"status":"ready"}`))
}
