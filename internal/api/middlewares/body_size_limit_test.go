package middlewares_test

import (
	"bytes"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	mw "github.com/5w1tchy/library-catalog/internal/api/middlewares"
)

func readAllHandler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if _, err := io.ReadAll(r.Body); err != nil {
			http.Error(w, "body too large", http.StatusRequestEntityTooLarge)
			return
		}
		w.WriteHeader(http.StatusOK)
	})
}

func TestBodySizeLimit_AcceptsSmallBodies(t *testing.T) {
	wrapped := mw.BodySizeLimit(0)(readAllHandler())

	req := httptest.NewRequest("POST", "/books/", bytes.NewReader([]byte("title=Dune&author=Frank+Herbert")))
	rec := httptest.NewRecorder()
	wrapped.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Errorf("Expected 200, got %d", rec.Code)
	}
}

func TestBodySizeLimit_RejectsLargeBodies(t *testing.T) {
	wrapped := mw.BodySizeLimit(1024)(readAllHandler())

	for _, method := range []string{"POST", "PUT", "PATCH"} {
		req := httptest.NewRequest(method, "/books/", bytes.NewReader(bytes.Repeat([]byte("a"), 2048)))
		rec := httptest.NewRecorder()
		wrapped.ServeHTTP(rec, req)

		if rec.Code != http.StatusRequestEntityTooLarge {
			t.Errorf("%s: expected 413, got %d", method, rec.Code)
		}
	}
}

func TestBodySizeLimit_DefaultLimit(t *testing.T) {
	wrapped := mw.BodySizeLimit(-1)(readAllHandler())

	req := httptest.NewRequest("POST", "/books/", bytes.NewReader(bytes.Repeat([]byte("a"), int(mw.DefaultMaxBodySize)+1)))
	rec := httptest.NewRecorder()
	wrapped.ServeHTTP(rec, req)

	if rec.Code == http.StatusOK {
		t.Error("Expected default limit to reject oversized body")
	}
}

func TestBodySizeLimit_OnlyAppliesToMutatingMethods(t *testing.T) {
	wrapped := mw.BodySizeLimit(4)(readAllHandler())

	req := httptest.NewRequest("GET", "/books/", strings.NewReader("should not matter"))
	rec := httptest.NewRecorder()
	wrapped.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Errorf("Expected 200 for GET, got %d", rec.Code)
	}
}
