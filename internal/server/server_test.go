package server

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/drivescope/drivescope/internal/config"
)

func TestServer_AuthProtectsReport(t *testing.T) {
	cfg := config.Default()
	cfg.Auth.Enabled = true
	cfg.Auth.User = "admin"
	cfg.Auth.Password = "secret"

	srv := New(cfg, &mockSource{report: testReport()}, testLogger(), "test")

	ts := httptest.NewServer(srv.httpServer.Handler)
	defer ts.Close()

	resp, err := http.Get(ts.URL + "/report")
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	resp.Body.Close()
	if resp.StatusCode != http.StatusUnauthorized {
		t.Errorf("expected 401 without credentials, got %d", resp.StatusCode)
	}

	// /health stays open for probes.
	resp, err = http.Get(ts.URL + "/health")
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		t.Errorf("expected 200 for /health, got %d", resp.StatusCode)
	}

	req, _ := http.NewRequest(http.MethodGet, ts.URL+"/report", nil)
	req.SetBasicAuth("admin", "secret")
	resp, err = http.DefaultClient.Do(req)
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		t.Errorf("expected 200 with credentials, got %d", resp.StatusCode)
	}
}

func TestServer_Routes(t *testing.T) {
	srv := testServer(t)

	ts := httptest.NewServer(srv.httpServer.Handler)
	defer ts.Close()

	for _, path := range []string{"/", "/health", "/report", "/drives", "/summary", "/system"} {
		resp, err := http.Get(ts.URL + path)
		if err != nil {
			t.Fatalf("request to %s failed: %v", path, err)
		}
		resp.Body.Close()
		if resp.StatusCode != http.StatusOK {
			t.Errorf("expected 200 for %s, got %d", path, resp.StatusCode)
		}
		if ct := resp.Header.Get("Content-Type"); ct != "application/json" {
			t.Errorf("expected JSON content type for %s, got %s", path, ct)
		}
	}
}

func TestServer_Addr(t *testing.T) {
	cfg := config.Default()
	cfg.Server.Host = "127.0.0.1"
	cfg.Server.Port = 9123

	srv := New(cfg, &mockSource{report: testReport()}, testLogger(), "test")

	if srv.Addr() != "127.0.0.1:9123" {
		t.Errorf("expected 127.0.0.1:9123, got %s", srv.Addr())
	}
}
