// Package web provides HTTP handlers for the portfolio page, the theme toggle and the contact form.
package web

import (
	"context"
	"embed"
	"fmt"
	"html/template"
	"io/fs"
	"net/http"
	"strings"
	"time"

	"github.com/go-pkgz/routegroup"

	"github.com/expensivecode/folio/app/contact"
	"github.com/expensivecode/folio/app/content"
	"github.com/expensivecode/folio/app/server/internal"
	"github.com/expensivecode/folio/app/theme"
)

//go:generate moq -out mocks/submitter.go -pkg mocks -skip-ensure -fmt goimports . Submitter
//go:generate moq -out mocks/validator.go -pkg mocks -skip-ensure -fmt goimports . Validator
//go:generate moq -out mocks/limiter.go -pkg mocks -skip-ensure -fmt goimports . Limiter

//go:embed static
var staticFS embed.FS

//go:embed templates
var templatesFS embed.FS

// StaticFS returns the embedded static filesystem for external use.
func StaticFS() (fs.FS, error) {
	sub, err := fs.Sub(staticFS, "static")
	if err != nil {
		return nil, fmt.Errorf("failed to get static sub-filesystem: %w", err)
	}
	return sub, nil
}

// Submitter relays contact submissions.
type Submitter interface {
	Submit(ctx context.Context, sub contact.Submission) contact.Result
}

// Validator checks contact submissions before they are relayed.
type Validator interface {
	Validate(sub contact.Submission) error
}

// Limiter decides whether a client may submit the contact form now.
type Limiter interface {
	Allow(clientID string) bool
}

// Config holds web handler configuration.
type Config struct {
	BaseURL       string
	SecureCookies bool
	Limiter       Limiter                // optional, nil disables limiting
	Hasher        *internal.ClientHasher // optional, unkeyed hasher when nil
	Prefs         theme.PrefStore        // optional, cookie storage when nil
}

// Handler handles web UI requests.
type Handler struct {
	content   *content.Content
	submitter Submitter
	validator Validator
	limiter   Limiter
	hasher    *internal.ClientHasher
	prefs     theme.PrefStore
	tmpl      *template.Template
	baseURL   string
	secure    bool
}

// New creates a new web handler.
func New(cnt *content.Content, sub Submitter, val Validator, cfg Config) (*Handler, error) {
	tmpl, err := parseTemplates()
	if err != nil {
		return nil, fmt.Errorf("failed to parse templates: %w", err)
	}

	hasher := cfg.Hasher
	if hasher == nil {
		hasher = internal.NewClientHasher("")
	}

	return &Handler{
		content:   cnt,
		submitter: sub,
		validator: val,
		limiter:   cfg.Limiter,
		hasher:    hasher,
		prefs:     cfg.Prefs,
		tmpl:      tmpl,
		baseURL:   cfg.BaseURL,
		secure:    cfg.SecureCookies,
	}, nil
}

// Register registers web UI routes on the given router.
func (h *Handler) Register(r *routegroup.Bundle) {
	r.HandleFunc("GET /{$}", h.handleIndex)
	r.HandleFunc("POST /web/theme", h.handleThemeToggle)
	r.HandleFunc("POST /web/contact", h.handleContact)
}

// templateFuncs returns custom template functions.
func templateFuncs() template.FuncMap {
	return template.FuncMap{
		"join": strings.Join,
		"telHref": func(phone string) string {
			return "tel:" + strings.Map(func(r rune) rune {
				if r == '+' || (r >= '0' && r <= '9') {
					return r
				}
				return -1
			}, phone)
		},
	}
}

// parseTemplates parses all templates from embedded filesystem.
func parseTemplates() (*template.Template, error) {
	tmpl := template.New("").Funcs(templateFuncs())

	// parse base template
	baseContent, err := templatesFS.ReadFile("templates/base.html")
	if err != nil {
		return nil, fmt.Errorf("read base.html: %w", err)
	}
	tmpl, err = tmpl.Parse(string(baseContent))
	if err != nil {
		return nil, fmt.Errorf("parse base.html: %w", err)
	}

	// parse index template
	indexContent, err := templatesFS.ReadFile("templates/index.html")
	if err != nil {
		return nil, fmt.Errorf("read index.html: %w", err)
	}
	_, err = tmpl.New("index.html").Parse(string(indexContent))
	if err != nil {
		return nil, fmt.Errorf("parse index.html: %w", err)
	}

	// parse partials
	partials := []string{"contact-form"}
	for _, name := range partials {
		data, readErr := templatesFS.ReadFile("templates/partials/" + name + ".html")
		if readErr != nil {
			return nil, fmt.Errorf("read partial %s: %w", name, readErr)
		}
		_, parseErr := tmpl.New(name).Parse(string(data))
		if parseErr != nil {
			return nil, fmt.Errorf("parse partial %s: %w", name, parseErr)
		}
	}

	return tmpl, nil
}

// notice kinds rendered by the contact-form partial
const (
	noticeSuccess = "success"
	noticeError   = "error"
)

// formData holds the contact form fields and the notice shown above them.
type formData struct {
	Name       string
	Phone      string
	Email      string
	Message    string
	Notice     string
	NoticeKind string
}

// templateData holds data passed to templates.
type templateData struct {
	Content    *content.Content
	HeroSkills []content.SkillGroup
	Theme      string // active display mode, light or dark
	DarkClass  string // style-scope marker for the root element
	BaseURL    string
	Year       int
	Form       formData
}

// themeController resolves the display mode for the request, persisting it via the response.
func (h *Handler) themeController(w http.ResponseWriter, r *http.Request) *theme.Controller {
	opts := theme.CookieOpts{Path: h.cookiePath(), Secure: h.secure}
	return theme.New(theme.ForRequest(w, r, h.prefs, opts), theme.HintAmbient{Request: r})
}

// pageData builds template data for a full page render.
func (h *Handler) pageData(ctrl *theme.Controller, form formData) templateData {
	return templateData{
		Content:    h.content,
		HeroSkills: h.content.HeroSkills(4, 6),
		Theme:      ctrl.Mode().String(),
		DarkClass:  ctrl.Class(),
		BaseURL:    h.baseURL,
		Year:       time.Now().Year(),
		Form:       form,
	}
}

// url returns a URL path with the base URL prefix.
func (h *Handler) url(path string) string {
	return h.baseURL + path
}

// cookiePath returns the path for cookies (base URL with trailing slash or "/").
func (h *Handler) cookiePath() string {
	if h.baseURL == "" {
		return "/"
	}
	return h.baseURL + "/"
}
