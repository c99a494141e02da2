package httpx_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/ghuser/examseats/pkg/httpx"
)

type stubChecker struct{ err error }

func (s *stubChecker) Ping(_ context.Context) error { return s.err }

type healthBody struct {
	Status       string            `json:"status"`
	Dependencies map[string]string `json:"dependencies"`
}

func runHealth(t *testing.T, checks ...httpx.HealthCheck) (*httptest.ResponseRecorder, healthBody) {
	t.Helper()
	rr := httptest.NewRecorder()
	httpx.HealthHandler(checks...).ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/health", http.NoBody))
	var body healthBody
	if err := json.NewDecoder(rr.Body).Decode(&body); err != nil {
		t.Fatalf("decode: %v", err)
	}
	return rr, body
}

func TestHealthHandler_AllHealthy(t *testing.T) {
	rr, body := runHealth(t,
		httpx.HealthCheck{Name: "database", Checker: &stubChecker{}},
		httpx.HealthCheck{Name: "redis", Checker: &stubChecker{}},
		httpx.HealthCheck{Name: "event_bus", Checker: &stubChecker{}},
	)
	if rr.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rr.Code)
	}
	if body.Status != "ok" || body.Dependencies["database"] != "ok" {
		t.Errorf("unexpected response: %+v", body)
	}
}

func TestHealthHandler_RequiredDown(t *testing.T) {
	rr, body := runHealth(t,
		httpx.HealthCheck{Name: "database", Checker: &stubChecker{err: errors.New("conn refused")}},
		httpx.HealthCheck{Name: "redis", Checker: &stubChecker{}},
	)
	if rr.Code != http.StatusServiceUnavailable {
		t.Fatalf("expected 503, got %d", rr.Code)
	}
	if body.Status != "degraded" || body.Dependencies["database"] != "unreachable" || body.Dependencies["redis"] != "ok" {
		t.Errorf("unexpected response: %+v", body)
	}
}

func TestHealthHandler_OptionalDown(t *testing.T) {
	rr, body := runHealth(t,
		httpx.HealthCheck{Name: "database", Checker: &stubChecker{}},
		httpx.HealthCheck{Name: "temporal", Checker: &stubChecker{err: errors.New("timeout")}, Optional: true},
	)
	if rr.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rr.Code)
	}
	if body.Status != "ok" || body.Dependencies["temporal"] != "unreachable" {
		t.Errorf("unexpected response: %+v", body)
	}
}

func TestHealthHandler_NilCheckerDisabled(t *testing.T) {
	rr, body := runHealth(t,
		httpx.HealthCheck{Name: "database", Checker: &stubChecker{}},
		httpx.HealthCheck{Name: "temporal", Checker: nil},
	)
	if rr.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rr.Code)
	}
	if body.Dependencies["temporal"] != "disabled" {
		t.Errorf("expected temporal disabled, got %+v", body)
	}
}

func TestHealthHandler_ContentType(t *testing.T) {
	rr := httptest.NewRecorder()
	httpx.HealthHandler().ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/health", http.NoBody))

	ct := rr.Header().Get("Content-Type")
	if ct != "application/json; charset=utf-8" {
		t.Errorf("Content-Type: got %q, want %q", ct, "application/json; charset=utf-8")
	}
}
