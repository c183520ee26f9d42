package main

import (
	"context"
	"crypto/tls"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/5w1tchy/library-catalog/internal/api/handlers/books"
	mw "github.com/5w1tchy/library-catalog/internal/api/middlewares"
	"github.com/5w1tchy/library-catalog/internal/api/router"
	"github.com/5w1tchy/library-catalog/internal/view"
	"github.com/spf13/cobra"
)

const hourlyRequestCap = 3000

func newServeCmd(a *app) *cobra.Command {
	var port string
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP server (default)",
		RunE: func(cmd *cobra.Command, args []string) error {
			if port != "" {
				a.cfg.Port = port
			}
			return a.serve(cmd.Context())
		},
	}
	cmd.Flags().StringVar(&port, "port", "", "listen port (overrides PORT)")
	return cmd
}

// rateLimiters returns the Redis limiters when Redis is configured and
// reachable, else the in-process one.
func (a *app) rateLimiters(ctx context.Context) ([]func(http.Handler) http.Handler, func()) {
	if a.cfg.UseRedis() {
		rdb, err := a.newRedis(ctx)
		if err == nil {
			a.log.Info("[ratelimit] using redis")
			tb := mw.NewRedisTokenBucket(rdb, a.cfg.RateLimitRPS, a.cfg.RateLimitBurst, mw.PerIPKey("tb"), a.log)
			sw := mw.NewRedisSlidingWindow(rdb, hourlyRequestCap, time.Hour, mw.PerIPKey("sw"), a.log)
			return []func(http.Handler) http.Handler{tb.Middleware, sw.Middleware}, func() { rdb.Close() }
		}
		a.log.Warn("[ratelimit] redis unavailable, falling back to in-process limiter", "err", err)
	}
	local := mw.NewLocalRateLimiter(ctx, a.cfg.RateLimitRPS, a.cfg.RateLimitBurst, mw.PerIPKey("local"), a.log)
	return []func(http.Handler) http.Handler{local.Middleware}, func() {}
}

func (a *app) handler(ctx context.Context, store catalogStore) (http.Handler, func(), error) {
	renderer, err := view.New()
	if err != nil {
		return nil, nil, err
	}
	ctrl := books.New(store, renderer, a.log, a.cfg.PageSize)

	csrf := mw.DefaultCSRFOptions()
	csrf.CookieSecure = a.cfg.CSRFSecureCookie

	limiters, closeLimiters := a.rateLimiters(ctx)

	chain := []func(http.Handler) http.Handler{
		mw.RequestID,
		mw.RequestLogger(a.log),
		mw.Metrics,
		mw.Recovery(a.log),
		mw.ResponseTime,
		mw.SecurityHeaders(a.cfg.StrictSecurity),
	}
	chain = append(chain, limiters...)
	chain = append(chain,
		mw.BodySizeLimit(a.cfg.MaxBodySize),
		mw.HPP(mw.DefaultHPPOptions()),
		mw.CSRF(csrf),
		mw.Compression,
	)
	return mw.Chain(router.Router(ctrl, store), chain...), closeLimiters, nil
}

// serve starts the server and blocks until SIGINT/SIGTERM, then gives
// in-flight requests 20 seconds to finish.
func (a *app) serve(ctx context.Context) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	store, closeStore, err := a.openStore(ctx)
	if err != nil {
		return err
	}
	defer closeStore()

	h, closeLimiters, err := a.handler(ctx, store)
	if err != nil {
		return err
	}
	defer closeLimiters()

	srv := &http.Server{
		Addr:         ":" + a.cfg.Port,
		Handler:      h,
		IdleTimeout:  time.Minute,
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 10 * time.Second,
		TLSConfig:    &tls.Config{MinVersion: tls.VersionTLS12},
	}

	shutdownErr := make(chan error, 1)
	go func() {
		quit := make(chan os.Signal, 1)
		signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
		defer signal.Stop(quit)

		select {
		case s := <-quit:
			a.log.Info("shutting down server", "signal", s.String())
		case <-ctx.Done():
		}

		sctx, scancel := context.WithTimeout(context.Background(), 20*time.Second)
		defer scancel()
		shutdownErr <- srv.Shutdown(sctx)
	}()

	a.log.Info("starting server", "address", srv.Addr, "environment", a.cfg.Env, "tls", a.cfg.TLSCert != "")

	if a.cfg.TLSCert != "" {
		err = srv.ListenAndServeTLS(a.cfg.TLSCert, a.cfg.TLSKey)
	} else {
		err = srv.ListenAndServe()
	}
	if !errors.Is(err, http.ErrServerClosed) {
		return err
	}

	if err := <-shutdownErr; err != nil {
		return err
	}
	a.log.Info("server stopped", "address", srv.Addr)
	return nil
}
