package router

import (
	"net/http"

	"github.com/5w1tchy/library-catalog/internal/api/handlers"
	"github.com/5w1tchy/library-catalog/internal/api/handlers/books"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Router mounts the catalog pages under /books next to the operational
// endpoints.
func Router(c *books.Controller, store handlers.Pinger) http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /{$}", handlers.Home)

	// Keep /books -> /books/
	mux.HandleFunc("GET /books", func(w http.ResponseWriter, r *http.Request) {
		http.Redirect(w, r, "/books/", http.StatusMovedPermanently)
	})
	mux.Handle("/books/", http.StripPrefix("/books", c.Routes()))

	mux.Handle("GET /metrics", promhttp.Handler())
	mux.HandleFunc("GET /healthz", handlers.Health(store))

	mux.Handle("/", c.NotFound())
	return mux
}
