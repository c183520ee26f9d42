package middlewares

import (
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/5w1tchy/library-catalog/internal/metrics"
)

// Metrics records request counts and latency per route class.
func Metrics(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		sw := &statusWriter{ResponseWriter: w}
		next.ServeHTTP(sw, r)

		route := routeLabel(r.URL.Path)
		metrics.HTTPRequests.WithLabelValues(r.Method, route, strconv.Itoa(sw.code())).Inc()
		metrics.HTTPDuration.WithLabelValues(r.Method, route).Observe(time.Since(start).Seconds())
	})
}

// routeLabel folds ids and search terms out of the path so label
// cardinality stays bounded.
func routeLabel(path string) string {
	switch path {
	case "/", "/books", "/books/", "/metrics", "/healthz":
		return path
	}
	rest, ok := strings.CutPrefix(path, "/books/")
	if !ok {
		return "other"
	}
	parts := strings.Split(strings.TrimSuffix(rest, "/"), "/")
	switch parts[0] {
	case "page":
		return "/books/page/{page}"
	case "new":
		return "/books/new"
	case "search":
		if len(parts) == 1 {
			return "/books/search"
		}
		return "/books/search/{term}"
	}
	if len(parts) == 2 && (parts[1] == "edit" || parts[1] == "delete") {
		return "/books/{id}/" + parts[1]
	}
	if len(parts) == 1 {
		return "/books/{id}"
	}
	return "other"
}
