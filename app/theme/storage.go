package theme

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/expensivecode/folio/app/enum"
	"github.com/expensivecode/folio/app/store"
)

//go:generate moq -out mocks/prefstore.go -pkg mocks -skip-ensure -fmt goimports . PrefStore

const (
	// CookieName holds the display mode for cookie storage.
	CookieName = "theme"
	// VisitorCookieName holds the anonymous visitor id for store-backed storage.
	VisitorCookieName = "visitor"
)

// CookieOpts defines attributes of the cookies written by storages.
type CookieOpts struct {
	Path   string
	MaxAge time.Duration
	Secure bool
}

// PrefStore persists display modes keyed by visitor id.
type PrefStore interface {
	GetTheme(ctx context.Context, visitorID string) (enum.Theme, error)
	SetTheme(ctx context.Context, visitorID string, th enum.Theme) error
	DeleteTheme(ctx context.Context, visitorID string) error
}

// ForRequest returns the storage for a request: store-backed when prefs is set, cookie otherwise.
func ForRequest(w http.ResponseWriter, r *http.Request, prefs PrefStore, opts CookieOpts) Storage {
	if prefs == nil {
		return NewCookieStorage(w, r, opts)
	}
	return NewVisitorStorage(w, r, prefs, opts)
}

// CookieStorage keeps the display mode in the client's theme cookie.
type CookieStorage struct {
	w    http.ResponseWriter
	r    *http.Request
	opts CookieOpts
}

// NewCookieStorage makes a cookie storage bound to a single request/response pair.
func NewCookieStorage(w http.ResponseWriter, r *http.Request, opts CookieOpts) *CookieStorage {
	return &CookieStorage{w: w, r: r, opts: opts}
}

// Load reads the theme cookie.
func (c *CookieStorage) Load() (enum.Theme, bool, error) {
	cookie, err := c.r.Cookie(CookieName)
	if err != nil || cookie.Value == "" {
		return enum.Theme{}, false, nil
	}
	th, err := enum.ParseTheme(cookie.Value)
	if err != nil {
		return enum.Theme{}, false, nil
	}
	return th, true, nil
}

// Save writes the theme cookie, replacing one already set on this response.
func (c *CookieStorage) Save(th enum.Theme) error {
	setCookie(c.w, newCookie(CookieName, th.String(), c.opts))
	return nil
}

// Remember is Save, the cookie is the only place to keep the mode.
func (c *CookieStorage) Remember(th enum.Theme) error {
	return c.Save(th)
}

// Clear expires the theme cookie.
func (c *CookieStorage) Clear() error {
	cookie := newCookie(CookieName, "", c.opts)
	cookie.MaxAge = -1
	setCookie(c.w, cookie)
	return nil
}

// VisitorStorage keeps explicit choices in a PrefStore under an anonymous visitor id.
// Modes resolved from the ambient signal go to the theme cookie only, so clients that
// never choose a mode never get a visitor id or a store record.
type VisitorStorage struct {
	r      *http.Request
	w      http.ResponseWriter
	prefs  PrefStore
	opts   CookieOpts
	cookie *CookieStorage
	id     string
}

// NewVisitorStorage makes a store-backed storage bound to a single request/response pair.
func NewVisitorStorage(w http.ResponseWriter, r *http.Request, prefs PrefStore, opts CookieOpts) *VisitorStorage {
	vs := &VisitorStorage{w: w, r: r, prefs: prefs, opts: opts, cookie: NewCookieStorage(w, r, opts)}
	if cookie, err := r.Cookie(VisitorCookieName); err == nil {
		if id, perr := uuid.Parse(cookie.Value); perr == nil {
			vs.id = id.String()
		}
	}
	return vs
}

// Load fetches the stored mode for the visitor, falling back to the theme cookie
// when the visitor has no id or no record. Store failures other than a missing record
// are returned as errors.
func (v *VisitorStorage) Load() (enum.Theme, bool, error) {
	if v.id == "" {
		return v.cookie.Load()
	}
	th, err := v.prefs.GetTheme(v.r.Context(), v.id)
	if errors.Is(err, store.ErrNotFound) {
		return v.cookie.Load()
	}
	if err != nil {
		return enum.Theme{}, false, fmt.Errorf("load theme for visitor %s: %w", v.id, err)
	}
	return th, true, nil
}

// Save stores the mode, issuing a visitor id cookie first if the client has none.
func (v *VisitorStorage) Save(th enum.Theme) error {
	if v.id == "" {
		v.id = uuid.NewString()
		setCookie(v.w, newCookie(VisitorCookieName, v.id, v.opts))
	}
	if err := v.prefs.SetTheme(v.r.Context(), v.id, th); err != nil {
		return fmt.Errorf("save theme for visitor %s: %w", v.id, err)
	}
	return nil
}

// Remember keeps an ambient-resolved mode in the theme cookie without touching the store.
func (v *VisitorStorage) Remember(th enum.Theme) error {
	return v.cookie.Save(th)
}

// Clear removes the visitor's record and expires the theme cookie. The visitor id is kept.
func (v *VisitorStorage) Clear() error {
	_ = v.cookie.Clear()
	if v.id == "" {
		return nil
	}
	if err := v.prefs.DeleteTheme(v.r.Context(), v.id); err != nil && !errors.Is(err, store.ErrNotFound) {
		return fmt.Errorf("clear theme for visitor %s: %w", v.id, err)
	}
	return nil
}

func newCookie(name, value string, opts CookieOpts) *http.Cookie {
	path := opts.Path
	if path == "" {
		path = "/"
	}
	maxAge := opts.MaxAge
	if maxAge <= 0 {
		maxAge = 365 * 24 * time.Hour // 1 year
	}
	return &http.Cookie{
		Name:     name,
		Value:    value,
		Path:     path,
		MaxAge:   int(maxAge.Seconds()),
		HttpOnly: true,
		Secure:   opts.Secure,
		SameSite: http.SameSiteLaxMode,
	}
}

// setCookie adds a Set-Cookie header, dropping an earlier one with the same name.
func setCookie(w http.ResponseWriter, cookie *http.Cookie) {
	prefix := cookie.Name + "="
	headers := w.Header()[http.CanonicalHeaderKey("Set-Cookie")]
	kept := headers[:0]
	for _, h := range headers {
		if !strings.HasPrefix(h, prefix) {
			kept = append(kept, h)
		}
	}
	if len(kept) == 0 {
		w.Header().Del("Set-Cookie")
	} else {
		w.Header()["Set-Cookie"] = kept
	}
	http.SetCookie(w, cookie)
}
