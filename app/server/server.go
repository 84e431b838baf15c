// Package server provides the HTTP server for the portfolio page and its JSON API.
package server

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"net/http"
	"time"

	log "github.com/go-pkgz/lgr"
	"github.com/go-pkgz/rest"
	"github.com/go-pkgz/routegroup"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/expensivecode/folio/app/content"
	"github.com/expensivecode/folio/app/enum"
	"github.com/expensivecode/folio/app/server/api"
	"github.com/expensivecode/folio/app/server/internal"
	"github.com/expensivecode/folio/app/server/web"
	"github.com/expensivecode/folio/app/theme"
)

//go:generate moq -out mocks/prefstore.go -pkg mocks -skip-ensure -fmt goimports . PrefStore

// Server represents the HTTP server.
type Server struct {
	cfg        Config
	prefs      PrefStore
	apiHandler *api.Handler
	webHandler *web.Handler
	staticFS   fs.FS // embedded static files
}

// Submitter relays contact submissions, shared by web and api handlers.
type Submitter interface {
	web.Submitter
	api.Submitter
}

// Validator checks contact submissions, shared by web and api handlers.
type Validator interface {
	web.Validator
	api.Validator
}

// PrefStore keeps display-mode preferences for visitors.
// Defined here (consumer side) to allow different store implementations.
type PrefStore interface {
	GetTheme(ctx context.Context, visitorID string) (enum.Theme, error)
	SetTheme(ctx context.Context, visitorID string, th enum.Theme) error
	DeleteTheme(ctx context.Context, visitorID string) error
	Cleanup(ctx context.Context, olderThan time.Time) (int64, error)
}

// Config holds server configuration.
type Config struct {
	Address         string
	ReadTimeout     time.Duration
	WriteTimeout    time.Duration
	IdleTimeout     time.Duration
	ShutdownTimeout time.Duration
	Version         string
	BaseURL         string // base URL path for reverse proxy (e.g., /folio)
	SecureCookies   bool   // set Secure attribute on cookies

	// contact form limits, per client
	ContactInterval time.Duration // one submission per interval after the burst (0 = unlimited)
	ContactBurst    int
	ClientSecret    string // key for hashing client addresses

	// preference retention, used only with a pref store
	PrefsTTL        time.Duration // records not updated for this long are removed (0 = keep forever)
	CleanupInterval time.Duration

	// limits
	BodySizeLimit  int64 // max request body size in bytes
	RequestsPerSec int64 // max requests per second
}

// New creates a new Server instance.
// prefs is optional, pass nil to keep display modes in cookies only.
func New(cnt *content.Content, sub Submitter, val Validator, prefs PrefStore, cfg Config) (*Server, error) {
	staticContent, err := web.StaticFS()
	if err != nil {
		return nil, fmt.Errorf("failed to load static files: %w", err)
	}

	s := &Server{cfg: cfg, prefs: prefs, staticFS: staticContent}

	hasher := internal.NewClientHasher(cfg.ClientSecret)
	// web and api share one limiter so a client can't double its budget by switching surfaces
	limiter := internal.NewLimiter(cfg.ContactInterval, cfg.ContactBurst)
	var themePrefs theme.PrefStore
	if prefs != nil {
		themePrefs = prefs
	}

	webHandler, err := web.New(cnt, sub, val, web.Config{
		BaseURL:       cfg.BaseURL,
		SecureCookies: cfg.SecureCookies,
		Limiter:       limiter,
		Hasher:        hasher,
		Prefs:         themePrefs,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create web handler: %w", err)
	}
	s.webHandler = webHandler

	s.apiHandler = api.New(cnt, sub, val, api.Config{
		CookiePath:    s.cookiePath(),
		SecureCookies: cfg.SecureCookies,
		Limiter:       limiter,
		Hasher:        hasher,
		Prefs:         themePrefs,
	})

	return s, nil
}

// Run starts the HTTP server and blocks until context is canceled.
func (s *Server) Run(ctx context.Context) error {
	httpServer := &http.Server{
		Addr:              s.cfg.Address,
		Handler:           s.handler(),
		ReadHeaderTimeout: s.cfg.ReadTimeout,
		WriteTimeout:      s.cfg.WriteTimeout,
		IdleTimeout:       s.cfg.IdleTimeout,
	}

	if s.prefs != nil && s.cfg.PrefsTTL > 0 {
		go s.cleanupPrefs(ctx)
	}

	// graceful shutdown
	go func() {
		<-ctx.Done()
		log.Printf("[INFO] shutting down server")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), s.cfg.ShutdownTimeout)
		defer cancel()
		if err := httpServer.Shutdown(shutdownCtx); err != nil {
			log.Printf("[WARN] shutdown error: %v", err)
		}
	}()

	log.Printf("[DEBUG] started server on %s", s.cfg.Address)
	if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("server error: %w", err)
	}
	return nil
}

// cleanupPrefs removes stale preferences periodically until ctx is canceled.
func (s *Server) cleanupPrefs(ctx context.Context) {
	interval := s.cfg.CleanupInterval
	if interval <= 0 {
		interval = time.Hour
	}
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			n, err := s.prefs.Cleanup(ctx, time.Now().Add(-s.cfg.PrefsTTL))
			if err != nil {
				log.Printf("[WARN] failed to cleanup preferences: %v", err)
				continue
			}
			if n > 0 {
				log.Printf("[INFO] removed %d stale preferences", n)
			}
		}
	}
}

// handler returns the HTTP handler, wrapping routes with base URL support if configured.
func (s *Server) handler() http.Handler {
	routes := s.routes()
	if s.cfg.BaseURL == "" {
		return routes
	}
	mux := http.NewServeMux()
	// redirect /base to /base/
	mux.HandleFunc(s.cfg.BaseURL, func(w http.ResponseWriter, r *http.Request) {
		http.Redirect(w, r, s.cfg.BaseURL+"/", http.StatusMovedPermanently)
	})
	// strip prefix for all routes under base URL
	mux.Handle(s.cfg.BaseURL+"/", http.StripPrefix(s.cfg.BaseURL, routes))
	return mux
}

// routes configures and returns the HTTP handler with all routes and middleware.
func (s *Server) routes() http.Handler {
	router := routegroup.New(http.NewServeMux())

	// global middleware (applies to all routes)
	router.Use(
		rest.Recoverer(log.Default()),
		rest.RealIP, // must be before Throttle and the contact limiter to see real client IP
		rest.Throttle(s.requestsPerSec()),
		rest.Trace,
		rest.SizeLimit(s.bodySizeLimit()),
		rest.AppInfo("folio", "expensivecode", s.cfg.Version),
		rest.Ping,
		colorSchemeHints,
	)

	router.Handle("GET /static/", http.StripPrefix("/static/", http.FileServer(http.FS(s.staticFS))))
	router.Handle("GET /metrics", promhttp.Handler())

	// web UI routes
	router.Group().Route(s.webHandler.Register)

	// json api routes
	router.Mount("/api/v1").Route(s.apiHandler.Register)

	return router
}

// colorSchemeHints asks browsers to send the colour-scheme client hint on the next requests.
// Responses vary on it since the page is rendered for the hinted theme when nothing is stored.
func colorSchemeHints(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Accept-CH", theme.HintHeader)
		w.Header().Set("Critical-CH", theme.HintHeader)
		w.Header().Add("Vary", theme.HintHeader)
		next.ServeHTTP(w, r)
	})
}

// bodySizeLimit returns the configured body size limit, or default 64KB if not set.
func (s *Server) bodySizeLimit() int64 {
	if s.cfg.BodySizeLimit > 0 {
		return s.cfg.BodySizeLimit
	}
	return 64 * 1024 // 64KB default
}

// requestsPerSec returns the configured requests per second limit, or default 1000 if not set.
func (s *Server) requestsPerSec() int64 {
	if s.cfg.RequestsPerSec > 0 {
		return s.cfg.RequestsPerSec
	}
	return 1000 // default
}

// cookiePath returns the path for cookies (base URL with trailing slash or "/").
func (s *Server) cookiePath() string {
	if s.cfg.BaseURL == "" {
		return "/"
	}
	return s.cfg.BaseURL + "/"
}
