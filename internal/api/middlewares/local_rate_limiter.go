package middlewares

import (
	"context"
	"log/slog"
	"math"
	"net/http"
	"strconv"
	"sync"
	"time"

	"github.com/5w1tchy/library-catalog/internal/metrics"
	"golang.org/x/time/rate"
)

type limiterEntry struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// LocalRateLimiter is the single-instance fallback for RedisTokenBucket.
type LocalRateLimiter struct {
	mu      sync.Mutex
	clients map[string]*limiterEntry
	rps     rate.Limit
	burst   int
	keyFn   KeyFunc
	log     *slog.Logger
}

// NewLocalRateLimiter evicts keys idle for three minutes until ctx is done.
func NewLocalRateLimiter(ctx context.Context, ratePerSecond float64, burst int, keyFn KeyFunc, log *slog.Logger) *LocalRateLimiter {
	l := &LocalRateLimiter{
		clients: make(map[string]*limiterEntry),
		rps:     rate.Limit(ratePerSecond),
		burst:   burst,
		keyFn:   keyFn,
		log:     log,
	}
	go l.evictLoop(ctx, time.Minute, 3*time.Minute)
	return l
}

func (l *LocalRateLimiter) evictLoop(ctx context.Context, every, idle time.Duration) {
	t := time.NewTicker(every)
	defer t.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-t.C:
			l.evict(time.Now().Add(-idle))
		}
	}
}

func (l *LocalRateLimiter) evict(before time.Time) {
	l.mu.Lock()
	defer l.mu.Unlock()
	for k, c := range l.clients {
		if c.lastSeen.Before(before) {
			delete(l.clients, k)
		}
	}
}

func (l *LocalRateLimiter) reserve(key string) (ok bool, tokens float64) {
	l.mu.Lock()
	defer l.mu.Unlock()
	c, found := l.clients[key]
	if !found {
		c = &limiterEntry{limiter: rate.NewLimiter(l.rps, l.burst)}
		l.clients[key] = c
	}
	c.lastSeen = time.Now()
	ok = c.limiter.Allow()
	return ok, c.limiter.Tokens()
}

func (l *LocalRateLimiter) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		key := l.keyFn(r)
		allowed, tokens := l.reserve(key)

		w.Header().Set("X-RateLimit-Policy", "token-bucket")
		w.Header().Set("X-RateLimit-Limit", strconv.Itoa(l.burst))
		w.Header().Set("X-RateLimit-Remaining", strconv.Itoa(int(math.Max(0, math.Floor(tokens)))))

		if !allowed {
			retry := int64(math.Ceil((1 - tokens) / float64(l.rps)))
			l.log.Info("[ratelimit] blocked", "policy", "local", "key", key, "retry_after_s", retry)
			metrics.RateLimited.WithLabelValues("local").Inc()
			tooManyRequests(w, retry)
			return
		}
		next.ServeHTTP(w, r)
	})
}
