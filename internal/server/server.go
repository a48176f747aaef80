// Package server assembles the HTTP stack and runs its listeners.
package server

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"time"

	"github.com/danielgtaylor/huma/v2"
	"github.com/danielgtaylor/huma/v2/adapters/humachi"
	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/janisto/hello-devops/internal/http/routes"
	"github.com/janisto/hello-devops/internal/platform/config"
	applog "github.com/janisto/hello-devops/internal/platform/logging"
	"github.com/janisto/hello-devops/internal/platform/metrics"
	appmiddleware "github.com/janisto/hello-devops/internal/platform/middleware"
	"github.com/janisto/hello-devops/internal/platform/respond"
)

// Title is the API title advertised by huma.
const Title = "Hello DevOps"

// NewRouter builds the public handler. rec may be nil to skip metrics.
func NewRouter(cfg *config.Config, version string, rec *metrics.Recorder) http.Handler {
	router := chi.NewRouter()
	router.NotFound(respond.NotFoundHandler())
	router.MethodNotAllowed(respond.MethodNotAllowedHandler())

	router.Use(
		appmiddleware.Security(),
		appmiddleware.Vary(),
		appmiddleware.CORS(),
		appmiddleware.RequestID(),
		// Trust X-Forwarded-For only behind a proxy such as Cloud Run or nginx.
		chimiddleware.RealIP,
		chimiddleware.RequestSize(cfg.RequestMaxBytes),
		applog.RequestLogger(),
		applog.AccessLogger(),
	)
	if rec != nil {
		router.Use(rec.Middleware())
	}
	router.Use(respond.Recoverer())

	routes.Register(humachi.New(router, apiConfig(version)))
	return router
}

// apiConfig disables huma's OpenAPI, docs and schema routes so the public
// surface is only what routes.Register adds.
func apiConfig(version string) huma.Config {
	cfg := huma.DefaultConfig(Title, version)
	cfg.OpenAPIPath = ""
	cfg.DocsPath = ""
	cfg.SchemasPath = ""
	return cfg
}

// NewHTTPServer applies the listener timeouts used in production.
func NewHTTPServer(addr string, h http.Handler) *http.Server {
	return &http.Server{
		Addr:              addr,
		Handler:           h,
		ReadTimeout:       5 * time.Second,
		ReadHeaderTimeout: 2 * time.Second,
		WriteTimeout:      10 * time.Second,
		IdleTimeout:       60 * time.Second,
		MaxHeaderBytes:    64 << 10,
	}
}

// newAdminRouter serves /metrics on the admin listener.
func newAdminRouter(rec *metrics.Recorder) http.Handler {
	router := chi.NewRouter()
	router.NotFound(respond.NotFoundHandler())
	router.MethodNotAllowed(respond.MethodNotAllowedHandler())
	router.Use(respond.Recoverer())
	router.Method(http.MethodGet, "/metrics", rec.Handler())
	return router
}

// Run serves until ctx is cancelled or a listener fails, then shuts every
// listener down within cfg.ShutdownTimeout.
func Run(ctx context.Context, cfg *config.Config, version string) error {
	var rec *metrics.Recorder
	if cfg.MetricsEnabled {
		rec = metrics.NewRecorder()
	}

	servers := []*http.Server{NewHTTPServer(cfg.Addr(), NewRouter(cfg, version, rec))}
	if rec != nil {
		servers = append(servers, NewHTTPServer(cfg.MetricsAddr, newAdminRouter(rec)))
	}

	listeners := make([]net.Listener, 0, len(servers))
	for _, srv := range servers {
		ln, err := net.Listen("tcp", srv.Addr)
		if err != nil {
			for _, l := range listeners {
				_ = l.Close()
			}
			return fmt.Errorf("listen %s: %w", srv.Addr, err)
		}
		listeners = append(listeners, ln)
	}
	return serve(ctx, servers, listeners, cfg.ShutdownTimeout)
}

func serve(ctx context.Context, servers []*http.Server, listeners []net.Listener, timeout time.Duration) error {
	g, gctx := errgroup.WithContext(ctx)
	for i, srv := range servers {
		ln := listeners[i]
		g.Go(func() error {
			applog.LogInfo(ctx, "server listening", zap.String("addr", ln.Addr().String()))
			if err := srv.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
				return fmt.Errorf("serve %s: %w", ln.Addr(), err)
			}
			return nil
		})
	}
	g.Go(func() error {
		<-gctx.Done()
		applog.LogInfo(ctx, "shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), timeout)
		defer cancel()
		var errs []error
		for _, srv := range servers {
			if err := srv.Shutdown(shutdownCtx); err != nil {
				errs = append(errs, fmt.Errorf("shutdown %s: %w", srv.Addr, err))
			}
		}
		return errors.Join(errs...)
	})
	return g.Wait()
}
