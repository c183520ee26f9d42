package middlewares_test

import (
	"compress/gzip"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	mw "github.com/5w1tchy/library-catalog/internal/api/middlewares"
)

func TestCompression(t *testing.T) {
	var innerAccept string
	h := mw.Compression(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		innerAccept = r.Header.Get("Accept-Encoding")
		w.Header().Set("Content-Length", "11")
		w.WriteHeader(http.StatusOK)
		io.WriteString(w, "hello books")
	}))

	req := httptest.NewRequest("GET", "/books/page/1", nil)
	req.Header.Set("Accept-Encoding", "gzip, deflate")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	if rec.Header().Get("Content-Encoding") != "gzip" {
		t.Fatal("Expected gzip encoding")
	}
	if rec.Header().Get("Content-Length") != "" {
		t.Error("Expected Content-Length dropped")
	}
	if innerAccept != "" {
		t.Error("Expected Accept-Encoding removed for inner handlers")
	}
	zr, err := gzip.NewReader(rec.Body)
	if err != nil {
		t.Fatal(err)
	}
	body, _ := io.ReadAll(zr)
	if string(body) != "hello books" {
		t.Errorf("Unexpected body %q", body)
	}
}

func TestCompression_PassThrough(t *testing.T) {
	h := mw.Compression(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		io.WriteString(w, "plain")
	}))

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest("GET", "/", nil))

	if rec.Header().Get("Content-Encoding") != "" || rec.Body.String() != "plain" {
		t.Errorf("Expected uncompressed response, got %q", rec.Body.String())
	}
}
