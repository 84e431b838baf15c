// Package theme resolves, toggles and persists the light/dark display mode.
//
// A Controller is created per client interaction. On creation it loads the
// stored mode; when nothing is stored it falls back to the ambient colour-scheme
// signal and remembers the resolved value. A failed read also falls back to the
// ambient signal but writes nothing, so a stored choice survives transient errors.
// Persistence is best-effort: storage failures are logged and never surfaced to the caller.
package theme

import (
	log "github.com/go-pkgz/lgr"

	"github.com/expensivecode/folio/app/enum"
)

//go:generate moq -out mocks/storage.go -pkg mocks -skip-ensure -fmt goimports . Storage

// Storage is the client-scoped persistent store for the display mode.
type Storage interface {
	// Load returns the stored mode. Absent or unparsable values report false with nil error.
	Load() (enum.Theme, bool, error)
	// Save persists an explicit choice.
	Save(th enum.Theme) error
	// Remember keeps a mode resolved from the ambient signal, possibly cheaper than Save.
	Remember(th enum.Theme) error
	// Clear drops whatever is stored.
	Clear() error
}

// Ambient reports the operating environment's colour-scheme preference.
type Ambient interface {
	PrefersDark() bool
}

// Controller owns the active display mode of a single client.
type Controller struct {
	storage Storage
	ambient Ambient
	mode    enum.Theme
	stored  bool
}

// New resolves the initial mode: the stored value wins, otherwise dark if the
// ambient signal prefers dark, else light. amb may be nil, treated as no preference.
func New(st Storage, amb Ambient) *Controller {
	c := &Controller{storage: st, ambient: amb}
	th, ok, err := st.Load()
	switch {
	case err != nil:
		log.Printf("[WARN] failed to load theme, using ambient: %v", err)
		c.mode = c.ambientMode()
		return c
	case ok:
		c.mode, c.stored = th, true
		return c
	}

	c.mode = c.ambientMode()
	if err := st.Remember(c.mode); err != nil {
		log.Printf("[DEBUG] failed to remember theme %s: %v", c.mode, err)
	}
	return c
}

// Mode returns the active display mode.
func (c *Controller) Mode() enum.Theme {
	return c.mode
}

// Stored reports whether the initial mode came from storage rather than the ambient signal.
func (c *Controller) Stored() bool {
	return c.stored
}

// Set makes th the active mode and persists it. Anything but dark is stored as light.
func (c *Controller) Set(th enum.Theme) {
	if !th.IsDark() {
		th = enum.ThemeLight
	}
	c.mode = th
	c.persist()
}

// Toggle flips the active mode, persists it and returns the new mode.
func (c *Controller) Toggle() enum.Theme {
	c.Set(c.mode.Toggle())
	return c.mode
}

// Forget drops the stored mode and returns the ambient one. Nothing is persisted,
// the next interaction resolves from the ambient signal again.
func (c *Controller) Forget() enum.Theme {
	if err := c.storage.Clear(); err != nil {
		log.Printf("[WARN] failed to clear theme: %v", err)
	}
	c.mode, c.stored = c.ambientMode(), false
	return c.mode
}

// Class returns the global style-scope marker for the active mode.
func (c *Controller) Class() string {
	if c.mode.IsDark() {
		return "dark"
	}
	return ""
}

func (c *Controller) ambientMode() enum.Theme {
	if c.ambient != nil && c.ambient.PrefersDark() {
		return enum.ThemeDark
	}
	return enum.ThemeLight
}

func (c *Controller) persist() {
	if err := c.storage.Save(c.mode); err != nil {
		log.Printf("[DEBUG] failed to persist theme %s: %v", c.mode, err)
	}
}
