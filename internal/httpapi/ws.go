package httpapi

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/coder/websocket"
	"github.com/coder/websocket/wsjson"

	"github.com/silabogen/silabogen/internal/syllabus"
)

// streamFrame is one message of the companion streaming protocol. The final
// frame carries done=true and may have empty text.
type streamFrame struct {
	Text string `json:"text"`
	Done bool   `json:"done"`
}

// handleCompanionStream upgrades to a websocket, reads the syllabus as the
// first client message and streams companion fragment chunks back.
func (s *Server) handleCompanionStream(w http.ResponseWriter, r *http.Request) {
	if !s.requirePremium(w, r) {
		return
	}

	conn, err := websocket.Accept(w, r, nil)
	if err != nil {
		slog.Warn("websocket accept failed", "error", err)
		return
	}
	defer conn.CloseNow()

	ctx, cancel := context.WithTimeout(r.Context(), s.genTimeout)
	defer cancel()

	var syl syllabus.Syllabus
	if err := wsjson.Read(ctx, conn, &syl); err != nil {
		conn.Close(websocket.StatusInvalidFramePayloadData, "expected syllabus JSON")
		return
	}

	ch, err := s.gen.StreamCompanion(ctx, syl)
	if err != nil {
		slog.Error("companion stream failed", "client_id", clientID(r), "error", err)
		conn.Close(websocket.StatusInternalError, "generation failed")
		return
	}

	for chunk := range ch {
		if chunk.Err != nil {
			slog.Error("companion stream chunk failed", "client_id", clientID(r), "error", chunk.Err)
			conn.Close(websocket.StatusInternalError, "generation failed")
			return
		}
		if err := wsjson.Write(ctx, conn, streamFrame{Text: chunk.Text, Done: chunk.Done}); err != nil {
			slog.Warn("websocket write failed", "error", err)
			return
		}
	}

	conn.Close(websocket.StatusNormalClosure, "")
}
