package handlers

import (
	"context"
	"net/http"
	"time"

	"github.com/5w1tchy/library-catalog/internal/api/httpx"
)

// Pinger is anything that can tell whether its backend answers.
type Pinger interface {
	Ping(ctx context.Context) error
}

// Health reports 200 when the store answers within two seconds, 503 otherwise.
func Health(p Pinger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
		defer cancel()

		if err := p.Ping(ctx); err != nil {
			httpx.ErrorJSON(w, http.StatusServiceUnavailable, "store unavailable")
			return
		}
		httpx.OKNoData(w)
	}
}

// Home sends the site root to the catalog.
func Home(w http.ResponseWriter, r *http.Request) {
	http.Redirect(w, r, "/books/", http.StatusFound)
}
