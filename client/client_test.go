package client

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"jupyterclient/config"
)

func TestNewInitializesManagers(t *testing.T) {
	c := New(config.Config{BaseURL: "http://localhost:8888", Token: "test-token-123"}, nil)

	if c.Transport == nil {
		t.Fatal("transport not initialized")
	}
	if c.Kernels == nil || c.KernelSpecs == nil || c.Contents == nil || c.Sessions == nil || c.Terminals == nil {
		t.Error("not all managers initialized")
	}
	if c.Execs == nil {
		t.Error("executor not initialized")
	}
}

func TestClientString(t *testing.T) {
	c := New(config.Config{BaseURL: "http://localhost:8888"}, nil)
	s := c.String()
	if !strings.Contains(s, "JupyterClient") || !strings.Contains(s, "http://localhost:8888") {
		t.Errorf("String() = %q", s)
	}
}

func TestGetVersionAndStatus(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /api/", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"version": "2.14.0"}`))
	})
	mux.HandleFunc("GET /api/status", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"started": "2023-12-01T08:00:00Z", "last_activity": "2023-12-01T10:00:00Z", "kernels": 2, "connections": 1}`))
	})
	srv := httptest.NewServer(mux)
	defer srv.Close()

	c := New(config.Config{BaseURL: srv.URL}, nil)
	ctx := context.Background()

	version, err := c.GetVersion(ctx)
	if err != nil {
		t.Fatalf("GetVersion: %v", err)
	}
	if version.Version != "2.14.0" {
		t.Errorf("version = %q", version.Version)
	}

	status, err := c.GetStatus(ctx)
	if err != nil {
		t.Fatalf("GetStatus: %v", err)
	}
	if status.Kernels != 2 {
		t.Errorf("kernels = %d, want 2", status.Kernels)
	}
}
