package middlewares_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	mw "github.com/5w1tchy/library-catalog/internal/api/middlewares"
	"github.com/google/uuid"
)

func TestRequestID_GeneratesID(t *testing.T) {
	var seen string
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen = mw.GetRequestID(r)
		w.WriteHeader(http.StatusOK)
	})

	rec := httptest.NewRecorder()
	mw.RequestID(handler).ServeHTTP(rec, httptest.NewRequest("GET", "/test", nil))

	rid := rec.Header().Get("X-Request-ID")
	if rid == "" || rid != seen {
		t.Fatalf("Expected the same request ID in context and response, got %q / %q", seen, rid)
	}
	if _, err := uuid.Parse(rid); err != nil {
		t.Errorf("Expected a UUID, got %q", rid)
	}
}

func TestRequestID_UsesProvidedID(t *testing.T) {
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	req := httptest.NewRequest("GET", "/test", nil)
	req.Header.Set("X-Request-ID", "custom-request-id")
	rec := httptest.NewRecorder()
	mw.RequestID(handler).ServeHTTP(rec, req)

	if rec.Header().Get("X-Request-ID") != "custom-request-id" {
		t.Errorf("Expected custom-request-id, got %s", rec.Header().Get("X-Request-ID"))
	}
}

func TestRequestID_RejectsInvalidID(t *testing.T) {
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	req := httptest.NewRequest("GET", "/test", nil)
	req.Header.Set("X-Request-ID", "invalid@#$%id")
	rec := httptest.NewRecorder()
	mw.RequestID(handler).ServeHTTP(rec, req)

	rid := rec.Header().Get("X-Request-ID")
	if rid == "invalid@#$%id" {
		t.Error("Should have rejected invalid request ID")
	}
	if rid == "" {
		t.Error("Should have generated new request ID")
	}
}
