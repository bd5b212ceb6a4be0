package server

import (
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/monthlies/bulletin/internal/db"
)

func newTestServer(t *testing.T, allowAll bool) *Server {
	t.Helper()
	database, err := db.OpenMemory()
	if err != nil {
		t.Fatalf("opening memory db: %v", err)
	}
	t.Cleanup(func() { database.Close() })
	return New(Config{Port: 0, AllowAll: allowAll}, database)
}

func TestHealthz(t *testing.T) {
	srv := newTestServer(t, false)

	ts := httptest.NewServer(srv.Router())
	defer ts.Close()

	resp, err := http.Get(ts.URL + "/healthz")
	if err != nil {
		t.Fatalf("GET /healthz: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		t.Errorf("status = %d, want 200", resp.StatusCode)
	}
	body, _ := io.ReadAll(resp.Body)
	if string(body) != `{"status":"ok"}` {
		t.Errorf("body = %q", body)
	}
}

func TestCORSAllowAll(t *testing.T) {
	srv := newTestServer(t, true)

	ts := httptest.NewServer(srv.Router())
	defer ts.Close()

	req, _ := http.NewRequest(http.MethodOptions, ts.URL+"/healthz", nil)
	req.Header.Set("Origin", "https://elsewhere.example")
	req.Header.Set("Access-Control-Request-Method", "PATCH")

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Fatalf("preflight: %v", err)
	}
	defer resp.Body.Close()

	if got := resp.Header.Get("Access-Control-Allow-Origin"); got != "*" && got != "https://elsewhere.example" {
		t.Errorf("Access-Control-Allow-Origin = %q", got)
	}
}

func TestRouterRegistration(t *testing.T) {
	srv := newTestServer(t, false)
	srv.Router().Get("/extra", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTeapot)
	})

	ts := httptest.NewServer(srv.Router())
	defer ts.Close()

	resp, err := http.Get(ts.URL + "/extra")
	if err != nil {
		t.Fatalf("GET /extra: %v", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusTeapot {
		t.Errorf("status = %d, want 418", resp.StatusCode)
	}
}
