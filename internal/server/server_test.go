package server

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/agbru/uintcalc/internal/metrics"
)

func newTestServer(t *testing.T) *Server {
	t.Helper()
	registry := metrics.NewRegistry()
	registry.ObserveEvaluation("uintx", time.Millisecond, nil)
	return New("127.0.0.1:0", registry, nil)
}

// TestMetricsEndpoint verifies /metrics serves the registered collectors.
func TestMetricsEndpoint(t *testing.T) {
	srv := newTestServer(t)

	req := httptest.NewRequest(http.MethodGet, "/metrics", http.NoBody)
	rec := httptest.NewRecorder()
	srv.Handler().ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("GET /metrics = %d, want 200", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "uintcalc_evaluations_total") {
		t.Errorf("metrics body missing evaluation counter:\n%s", rec.Body.String())
	}
}

// TestHealthEndpoint verifies the liveness probe.
func TestHealthEndpoint(t *testing.T) {
	srv := newTestServer(t)

	req := httptest.NewRequest(http.MethodGet, "/healthz", http.NoBody)
	rec := httptest.NewRecorder()
	srv.Handler().ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("GET /healthz = %d, want 200", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "ok") {
		t.Errorf("health body = %q", rec.Body.String())
	}
}

// TestMethodRestriction verifies the endpoint is read-only.
func TestMethodRestriction(t *testing.T) {
	srv := newTestServer(t)

	for _, method := range []string{http.MethodPost, http.MethodPut, http.MethodDelete} {
		req := httptest.NewRequest(method, "/metrics", http.NoBody)
		rec := httptest.NewRecorder()
		srv.Handler().ServeHTTP(rec, req)

		if rec.Code != http.StatusMethodNotAllowed {
			t.Errorf("%s /metrics = %d, want 405", method, rec.Code)
		}
		if allow := rec.Header().Get("Allow"); !strings.Contains(allow, "GET") {
			t.Errorf("%s Allow header = %q", method, allow)
		}
	}
}

// TestUnknownPath verifies unregistered paths return 404 rather than
// leaking anything.
func TestUnknownPath(t *testing.T) {
	srv := newTestServer(t)

	req := httptest.NewRequest(http.MethodGet, "/debug/pprof/", http.NoBody)
	rec := httptest.NewRecorder()
	srv.Handler().ServeHTTP(rec, req)

	if rec.Code != http.StatusNotFound {
		t.Errorf("GET /debug/pprof/ = %d, want 404", rec.Code)
	}
}
