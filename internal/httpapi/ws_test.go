package httpapi

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/coder/websocket"
	"github.com/coder/websocket/wsjson"

	"github.com/silabogen/silabogen/internal/ai"
	"github.com/silabogen/silabogen/internal/syllabus"
)

func TestCompanionStream(t *testing.T) {
	srv, gate := testServer(t, ai.NewMockProvider("<h2>Sesión 1</h2><p>Contenido.</p>"))
	if err := gate.GrantPremium(t.Context(), "client-1"); err != nil {
		t.Fatalf("GrantPremium: %v", err)
	}

	ts := httptest.NewServer(srv.Routes())
	defer ts.Close()

	ctx := t.Context()
	conn, _, err := websocket.Dial(ctx, "ws"+ts.URL[len("http"):]+"/api/companion/stream", &websocket.DialOptions{
		HTTPHeader: http.Header{"X-Client-ID": []string{"client-1"}},
	})
	if err != nil {
		t.Fatalf("Dial: %v", err)
	}
	defer conn.CloseNow()

	var syl syllabus.Syllabus
	syl.Title = "Seminario"
	syl.Sessions = []syllabus.Session{{Number: 1, Title: "Introducción"}}
	if err := wsjson.Write(ctx, conn, syl); err != nil {
		t.Fatalf("send syllabus: %v", err)
	}

	var got string
	for {
		var frame streamFrame
		if err := wsjson.Read(ctx, conn, &frame); err != nil {
			t.Fatalf("read frame: %v", err)
		}
		got += frame.Text
		if frame.Done {
			break
		}
	}
	if got != "<h2>Sesión 1</h2><p>Contenido.</p>" {
		t.Errorf("streamed fragment = %q, want mock content", got)
	}
}

func TestCompanionStream_PremiumRequired(t *testing.T) {
	srv, _ := testServer(t, ai.NewMockProvider("irrelevante"))

	ts := httptest.NewServer(srv.Routes())
	defer ts.Close()

	_, resp, err := websocket.Dial(t.Context(), "ws"+ts.URL[len("http"):]+"/api/companion/stream", nil)
	if err == nil {
		t.Fatal("Dial should fail for non-premium client")
	}
	if resp == nil || resp.StatusCode != http.StatusForbidden {
		t.Errorf("handshake response = %+v, want status %d", resp, http.StatusForbidden)
	}
}
