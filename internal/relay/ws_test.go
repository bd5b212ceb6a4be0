package relay

import (
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/gorilla/websocket"
)

func TestWebsocketRoundTrip(t *testing.T) {
	hub, _ := newTestHub(t)

	r := chi.NewRouter()
	hub.RegisterRoutes(r)
	srv := httptest.NewServer(r)
	t.Cleanup(srv.Close)

	url := "ws" + strings.TrimPrefix(srv.URL, "http") + "/api/relay/d1"
	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	if err != nil {
		t.Fatalf("dialing relay: %v", err)
	}
	defer conn.Close()

	// Malformed and unknown messages are skipped without killing the
	// connection; the valid message after them still gets its response.
	msgs := []string{
		`garbage`,
		`{"type":"WHO_KNOWS"}`,
		`{"type":"TEXT_CLICKED"}`,
	}
	for _, m := range msgs {
		if err := conn.WriteMessage(websocket.TextMessage, []byte(m)); err != nil {
			t.Fatalf("writing %q: %v", m, err)
		}
	}

	conn.SetReadDeadline(time.Now().Add(5 * time.Second))
	var resp Envelope
	if err := conn.ReadJSON(&resp); err != nil {
		t.Fatalf("reading response: %v", err)
	}
	if resp.Type != TypeHideButtons {
		t.Errorf("response type = %s, want HIDE_BUTTONS", resp.Type)
	}
}

func TestWebsocketImageClick(t *testing.T) {
	hub, _ := newTestHub(t)

	r := chi.NewRouter()
	hub.RegisterRoutes(r)
	srv := httptest.NewServer(r)
	t.Cleanup(srv.Close)

	url := "ws" + strings.TrimPrefix(srv.URL, "http") + "/api/relay/d1"
	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	if err != nil {
		t.Fatalf("dialing relay: %v", err)
	}
	defer conn.Close()

	click := `{"type":"IMAGE_CLICKED","imageIndex":0,"x":400,"y":300,"viewportWidth":800,"viewportHeight":600}`
	if err := conn.WriteMessage(websocket.TextMessage, []byte(click)); err != nil {
		t.Fatalf("writing click: %v", err)
	}

	conn.SetReadDeadline(time.Now().Add(5 * time.Second))
	var resp Envelope
	if err := conn.ReadJSON(&resp); err != nil {
		t.Fatalf("reading response: %v", err)
	}
	if resp.Type != TypeUpdateButtonConfig {
		t.Fatalf("response type = %s, want UPDATE_BUTTON_CONFIG", resp.Type)
	}
	if len(resp.Buttons) != 4 {
		t.Errorf("buttons = %d, want 4", len(resp.Buttons))
	}
}
