package handlers

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

type pingFunc func(context.Context) error

func (f pingFunc) Ping(ctx context.Context) error { return f(ctx) }

func TestHealth(t *testing.T) {
	ok := Health(pingFunc(func(context.Context) error { return nil }))
	rec := httptest.NewRecorder()
	ok(rec, httptest.NewRequest(http.MethodGet, "/healthz", nil))
	if rec.Code != http.StatusOK {
		t.Fatalf("want 200, got %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), `"status":"success"`) {
		t.Fatalf("unexpected body %q", rec.Body.String())
	}

	down := Health(pingFunc(func(context.Context) error { return errors.New("dial tcp: refused") }))
	rec = httptest.NewRecorder()
	down(rec, httptest.NewRequest(http.MethodGet, "/healthz", nil))
	if rec.Code != http.StatusServiceUnavailable {
		t.Fatalf("want 503, got %d", rec.Code)
	}
	if strings.Contains(rec.Body.String(), "refused") {
		t.Fatal("backend error details must not leak")
	}
}

func TestHome(t *testing.T) {
	rec := httptest.NewRecorder()
	Home(rec, httptest.NewRequest(http.MethodGet, "/", nil))
	if rec.Code != http.StatusFound || rec.Header().Get("Location") != "/books/" {
		t.Fatalf("want redirect to /books/, got %d %q", rec.Code, rec.Header().Get("Location"))
	}
}
