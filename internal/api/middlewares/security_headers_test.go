package middlewares_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	mw "github.com/5w1tchy/library-catalog/internal/api/middlewares"
)

var okHandler = http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
})

func TestSecurityHeaders(t *testing.T) {
	rec := httptest.NewRecorder()
	mw.SecurityHeaders(false)(okHandler).ServeHTTP(rec, httptest.NewRequest("GET", "/books/", nil))

	tests := []struct {
		header   string
		expected string
	}{
		{"X-Content-Type-Options", "nosniff"},
		{"X-Frame-Options", "DENY"},
		{"X-XSS-Protection", "1; mode=block"},
		{"Referrer-Policy", "no-referrer"},
		{"Content-Security-Policy", "default-src 'self'; form-action 'self'; frame-ancestors 'none'"},
		{"Cache-Control", "no-store, no-cache, must-revalidate, max-age=0"},
		{"Strict-Transport-Security", ""},
		{"Cross-Origin-Opener-Policy", ""},
	}
	for _, tt := range tests {
		if got := rec.Header().Get(tt.header); got != tt.expected {
			t.Errorf("Header %s: expected %q, got %q", tt.header, tt.expected, got)
		}
	}
}

func TestSecurityHeaders_HSTS_OverHTTPS(t *testing.T) {
	// httptest populates r.TLS for https targets
	rec := httptest.NewRecorder()
	mw.SecurityHeaders(false)(okHandler).ServeHTTP(rec, httptest.NewRequest("GET", "https://example.com/books/", nil))

	if rec.Header().Get("Strict-Transport-Security") == "" {
		t.Error("Expected HSTS over TLS")
	}
}

func TestSecurityHeaders_Strict(t *testing.T) {
	rec := httptest.NewRecorder()
	mw.SecurityHeaders(true)(okHandler).ServeHTTP(rec, httptest.NewRequest("GET", "/books/", nil))

	if rec.Header().Get("Cross-Origin-Opener-Policy") != "same-origin" {
		t.Error("Expected COOP in strict mode")
	}
}
