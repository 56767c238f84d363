package httpapi

import (
	"io"
	"log/slog"
	"net/http"
	"net/url"

	"golang.org/x/crypto/bcrypt"

	"github.com/silabogen/silabogen/internal/platform/i18n"
)

// Query flags the payment return URL carries. They are processed and then
// stripped before the redirect back to the application.
const (
	flagPaymentSuccess   = "payment_success"
	flagCompanionSuccess = "companion_success"
	flagDevUnlock        = "dev_unlock"
)

func (s *Server) handleHandoffPark(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
	payload, err := io.ReadAll(r.Body)
	if err != nil || len(payload) == 0 {
		writeError(w, r, http.StatusBadRequest, i18n.MsgInvalidInput)
		return
	}

	id := clientID(r)
	if err := s.mailbox.Park(r.Context(), id, payload); err != nil {
		slog.Error("parking handoff payload", "client_id", id, "error", err)
		w.WriteHeader(http.StatusInternalServerError)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) handleHandoffConsume(w http.ResponseWriter, r *http.Request) {
	id := clientID(r)
	payload, ok, err := s.mailbox.Consume(r.Context(), id)
	if err != nil {
		slog.Error("consuming handoff payload", "client_id", id, "error", err)
		w.WriteHeader(http.StatusInternalServerError)
		return
	}
	if !ok {
		writeError(w, r, http.StatusNotFound, i18n.MsgNothingParked)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write(payload)
}

// handlePaymentReturn processes the flags the payment provider appends to
// its return URL, then redirects to the application with the flags removed.
// The grant is advisory: there is no server-side payment verification.
func (s *Server) handlePaymentReturn(w http.ResponseWriter, r *http.Request) {
	id := clientID(r)
	query := r.URL.Query()

	switch {
	case query.Get(flagPaymentSuccess) == "true":
		s.grantPremium(r, id, "payment")
	case query.Get(flagCompanionSuccess) == "true":
		// The parked syllabus stays in the mailbox for the client to
		// consume after the redirect.
		s.grantPremium(r, id, "companion purchase")
	case query.Get(flagDevUnlock) != "":
		if s.devUnlockMatches(query.Get(flagDevUnlock)) {
			s.grantPremium(r, id, "dev unlock")
		} else {
			slog.Warn("dev unlock rejected", "client_id", id)
		}
	}

	http.Redirect(w, r, s.returnURL(query), http.StatusFound)
}

func (s *Server) grantPremium(r *http.Request, id, via string) {
	if err := s.gate.GrantPremium(r.Context(), id); err != nil {
		slog.Error("granting premium", "client_id", id, "via", via, "error", err)
		return
	}
	slog.Info("premium granted", "client_id", id, "via", via)
}

func (s *Server) devUnlockMatches(token string) bool {
	if s.devUnlockHash == "" {
		return false
	}
	return bcrypt.CompareHashAndPassword([]byte(s.devUnlockHash), []byte(token)) == nil
}

// returnURL builds the redirect target: the app base URL with all processed
// flags stripped and any remaining query parameters preserved.
func (s *Server) returnURL(query url.Values) string {
	query.Del(flagPaymentSuccess)
	query.Del(flagCompanionSuccess)
	query.Del(flagDevUnlock)
	query.Del("client")

	target := s.baseURL
	if encoded := query.Encode(); encoded != "" {
		target += "?" + encoded
	}
	return target
}
