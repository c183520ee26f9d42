package middlewares

import (
	"bytes"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/5w1tchy/library-catalog/internal/metrics"
	"github.com/prometheus/client_golang/prometheus/testutil"
)

func TestRouteLabel(t *testing.T) {
	cases := map[string]string{
		"/":                    "/",
		"/books/":              "/books/",
		"/books/page/3":        "/books/page/{page}",
		"/books/new":           "/books/new",
		"/books/search":        "/books/search",
		"/books/search/dune/2": "/books/search/{term}",
		"/books/12":            "/books/{id}",
		"/books/12/":           "/books/{id}",
		"/books/12/edit":       "/books/{id}/edit",
		"/books/12/delete":     "/books/{id}/delete",
		"/books/a/b/c":         "other",
		"/wp-login.php":        "other",
	}
	for path, want := range cases {
		if got := routeLabel(path); got != want {
			t.Errorf("routeLabel(%q) = %q, want %q", path, got, want)
		}
	}
}

func TestMetricsCountsRequests(t *testing.T) {
	h := Metrics(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))

	counter := metrics.HTTPRequests.WithLabelValues("GET", "/books/{id}", "404")
	before := testutil.ToFloat64(counter)
	h.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest("GET", "/books/77", nil))

	if got := testutil.ToFloat64(counter) - before; got != 1 {
		t.Errorf("Expected one counted request, got %v", got)
	}
}

func TestRequestLogger(t *testing.T) {
	var buf bytes.Buffer
	h := RequestID(RequestLogger(slog.New(slog.NewTextHandler(&buf, nil)))(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	})))

	req := httptest.NewRequest("POST", "/books/", nil)
	req.Header.Set("X-Request-ID", "abc")
	h.ServeHTTP(httptest.NewRecorder(), req)

	line := buf.String()
	for _, want := range []string{"level=ERROR", "method=POST", "path=/books/", "status=500", "request_id=abc"} {
		if !strings.Contains(line, want) {
			t.Errorf("log line %q missing %q", line, want)
		}
	}
}

func TestChainOrder(t *testing.T) {
	var order []string
	tag := func(name string) func(http.Handler) http.Handler {
		return func(next http.Handler) http.Handler {
			return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				order = append(order, name)
				next.ServeHTTP(w, r)
			})
		}
	}

	h := Chain(http.HandlerFunc(func(http.ResponseWriter, *http.Request) { order = append(order, "handler") }), tag("outer"), tag("inner"))
	h.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest("GET", "/", nil))

	if strings.Join(order, ",") != "outer,inner,handler" {
		t.Errorf("unexpected order %v", order)
	}
}
