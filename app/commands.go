package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"sort"
	"time"

	log "github.com/go-pkgz/lgr"
	"github.com/google/uuid"

	"github.com/expensivecode/folio/app/contact"
	"github.com/expensivecode/folio/app/content"
	"github.com/expensivecode/folio/app/server"
	"github.com/expensivecode/folio/app/store"
	"github.com/expensivecode/folio/app/validator"
)

// StoreOptions define the optional server-side preference store, shared by commands
type StoreOptions struct {
	DB        string `short:"d" long:"db" env:"DB" description:"preference database URL (sqlite file or postgres://...), empty keeps themes in cookies only"`
	CacheSize int    `long:"cache-size" env:"CACHE_SIZE" default:"1000" description:"max cached preferences"`
}

// ServerCmd implements the server subcommand
type ServerCmd struct {
	Content string `short:"c" long:"content" env:"FOLIO_CONTENT" description:"content YAML file, embedded default when empty"`

	Contact struct {
		Endpoint string        `long:"endpoint" env:"ENDPOINT" default:"https://formspree.io/f/mkgvwbbl" description:"form relay endpoint"`
		Timeout  time.Duration `long:"timeout" env:"TIMEOUT" default:"30s" description:"relay request timeout"`
		Interval time.Duration `long:"interval" env:"INTERVAL" default:"30s" description:"min interval between submissions per client after the burst, 0 disables"`
		Burst    int           `long:"burst" env:"BURST" default:"3" description:"submissions allowed at once per client"`
	} `group:"contact" namespace:"contact" env-namespace:"FOLIO_CONTACT"`

	Store struct {
		StoreOptions
		TTL             time.Duration `long:"ttl" env:"TTL" default:"8760h" description:"remove preferences not updated for this long, 0 keeps forever"`
		CleanupInterval time.Duration `long:"cleanup-interval" env:"CLEANUP_INTERVAL" default:"1h" description:"stale preference cleanup interval"`
	} `group:"store" namespace:"store" env-namespace:"FOLIO_STORE"`

	Server struct {
		Address         string        `long:"address" env:"ADDRESS" default:":8080" description:"server listen address"`
		ReadTimeout     time.Duration `long:"read-timeout" env:"READ_TIMEOUT" default:"5s" description:"read timeout"`
		WriteTimeout    time.Duration `long:"write-timeout" env:"WRITE_TIMEOUT" default:"45s" description:"write timeout, keep above contact timeout"`
		IdleTimeout     time.Duration `long:"idle-timeout" env:"IDLE_TIMEOUT" default:"60s" description:"idle timeout"`
		ShutdownTimeout time.Duration `long:"shutdown-timeout" env:"SHUTDOWN_TIMEOUT" default:"10s" description:"graceful shutdown timeout"`
		BaseURL         string        `long:"base-url" env:"BASE_URL" description:"base URL path for reverse proxy (e.g., /folio)"`
		SecureCookies   bool          `long:"secure-cookies" env:"SECURE_COOKIES" description:"mark cookies Secure (serve over https)"`
		ClientSecret    string        `long:"client-secret" env:"CLIENT_SECRET" description:"key for hashing client addresses, random per start when empty"`
		BodyLimit       int64         `long:"body-limit" env:"BODY_LIMIT" default:"65536" description:"max request body size in bytes"`
		RequestsPerSec  int64         `long:"rps" env:"RPS" default:"1000" description:"max concurrent requests"`
	} `group:"server" namespace:"server" env-namespace:"FOLIO_SERVER"`

	Debug bool `long:"dbg" env:"DEBUG" description:"debug mode"`

	ctx    context.Context
	cancel context.CancelFunc
}

// Execute runs the server command
func (s *ServerCmd) Execute(_ []string) error {
	setupLogs(s.Debug)

	defer func() {
		if x := recover(); x != nil {
			log.Printf("[WARN] run time panic:\n%v", x)
			panic(x)
		}
	}()

	if s.ctx == nil {
		s.ctx, s.cancel = context.WithCancel(context.Background())
		signals(s.cancel)
	}

	return s.run(s.ctx)
}

func (s *ServerCmd) run(ctx context.Context) error {
	baseURL, err := validateBaseURL(s.Server.BaseURL)
	if err != nil {
		return fmt.Errorf("invalid base URL: %w", err)
	}

	cnt, err := content.Load(s.Content)
	if err != nil {
		return fmt.Errorf("failed to load content: %w", err)
	}

	submitter, err := contact.New(contact.Config{Endpoint: s.Contact.Endpoint, Timeout: s.Contact.Timeout})
	if err != nil {
		return fmt.Errorf("failed to initialize contact submitter: %w", err)
	}

	log.Printf("[INFO] starting folio server on %s", s.Server.Address)
	if baseURL != "" {
		log.Printf("[INFO] base URL: %s", baseURL)
	}
	log.Printf("[INFO] contact relay: %s, timeout %v", submitter.Endpoint(), s.Contact.Timeout)

	var prefs server.PrefStore // stays nil without a db, themes live in cookies only
	if s.Store.DB != "" {
		cached, storeErr := openPrefs(s.Store.StoreOptions)
		if storeErr != nil {
			return storeErr
		}
		defer func() {
			log.Printf("[DEBUG] preference cache: %+v", cached.Stats())
			if err := cached.Close(); err != nil {
				log.Printf("[WARN] failed to close preference store: %v", err)
			}
		}()
		prefs = cached
		log.Printf("[INFO] preference store enabled, cache size %d", s.Store.CacheSize)
	}

	secret := s.Server.ClientSecret
	if secret == "" {
		secret = uuid.NewString()
	}

	srv, err := server.New(cnt, submitter, validator.NewService(), prefs, server.Config{
		Address:         s.Server.Address,
		ReadTimeout:     s.Server.ReadTimeout,
		WriteTimeout:    s.Server.WriteTimeout,
		IdleTimeout:     s.Server.IdleTimeout,
		ShutdownTimeout: s.Server.ShutdownTimeout,
		Version:         revision,
		BaseURL:         baseURL,
		SecureCookies:   s.Server.SecureCookies,
		ContactInterval: s.Contact.Interval,
		ContactBurst:    s.Contact.Burst,
		ClientSecret:    secret,
		PrefsTTL:        s.Store.TTL,
		CleanupInterval: s.Store.CleanupInterval,
		BodySizeLimit:   s.Server.BodyLimit,
		RequestsPerSec:  s.Server.RequestsPerSec,
	})
	if err != nil {
		return fmt.Errorf("failed to initialize server: %w", err)
	}

	if err := srv.Run(ctx); err != nil {
		return fmt.Errorf("server failed: %w", err)
	}
	return nil
}

// CheckCmd implements the check subcommand
type CheckCmd struct {
	Content string `short:"c" long:"content" env:"FOLIO_CONTENT" description:"content YAML file, embedded default when empty"`

	out io.Writer
}

// Execute loads and validates the content file, printing a short summary
func (c *CheckCmd) Execute(_ []string) error {
	cnt, err := content.Load(c.Content)
	if err != nil {
		return fmt.Errorf("content is invalid: %w", err)
	}
	out := c.out
	if out == nil {
		out = os.Stdout
	}
	_, _ = fmt.Fprintf(out, "content ok: %s, %d skill groups, %d projects, %d experience entries\n",
		cnt.Profile.Name, len(cnt.Skills), len(cnt.Projects), len(cnt.Experience))
	return nil
}

// PrefsCmd implements the prefs subcommand
type PrefsCmd struct {
	Store   StoreOptions  `group:"store" namespace:"store" env-namespace:"FOLIO_STORE"`
	Cleanup time.Duration `long:"cleanup" description:"remove preferences not updated for this long before reporting"`
	Debug   bool          `long:"dbg" env:"DEBUG" description:"debug mode"`

	out io.Writer
}

// Execute prints stored preference counts per theme, optionally removing stale ones first
func (p *PrefsCmd) Execute(_ []string) error {
	setupLogs(p.Debug)
	if p.Store.DB == "" {
		return errors.New("database URL is required")
	}
	out := p.out
	if out == nil {
		out = os.Stdout
	}

	prefs, err := openPrefs(p.Store)
	if err != nil {
		return err
	}
	defer prefs.Close()

	ctx := context.Background()
	if p.Cleanup > 0 {
		n, cleanErr := prefs.Cleanup(ctx, time.Now().Add(-p.Cleanup))
		if cleanErr != nil {
			return fmt.Errorf("failed to cleanup preferences: %w", cleanErr)
		}
		_, _ = fmt.Fprintf(out, "removed %d stale preferences\n", n)
	}

	counts, err := prefs.Counts(ctx)
	if err != nil {
		return fmt.Errorf("failed to count preferences: %w", err)
	}
	names := make([]string, 0, len(counts))
	for name := range counts {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		_, _ = fmt.Fprintf(out, "%s: %d\n", name, counts[name])
	}
	return nil
}

func openPrefs(o StoreOptions) (*store.Cached, error) {
	st, err := store.New(o.DB)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize store: %w", err)
	}
	cached, err := store.NewCached(st, o.CacheSize)
	if err != nil {
		_ = st.Close()
		return nil, fmt.Errorf("failed to initialize store cache: %w", err)
	}
	return cached, nil
}
