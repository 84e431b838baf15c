// Package api provides JSON handlers for content, theme and contact endpoints.
package api

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	log "github.com/go-pkgz/lgr"
	"github.com/go-pkgz/rest"
	"github.com/go-pkgz/routegroup"

	"github.com/expensivecode/folio/app/contact"
	"github.com/expensivecode/folio/app/content"
	"github.com/expensivecode/folio/app/enum"
	"github.com/expensivecode/folio/app/server/internal"
	"github.com/expensivecode/folio/app/theme"
	"github.com/expensivecode/folio/app/validator"
)

//go:generate moq -out mocks/submitter.go -pkg mocks -skip-ensure -fmt goimports . Submitter
//go:generate moq -out mocks/validator.go -pkg mocks -skip-ensure -fmt goimports . Validator
//go:generate moq -out mocks/limiter.go -pkg mocks -skip-ensure -fmt goimports . Limiter

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

// Config holds api handler configuration.
type Config struct {
	CookiePath    string
	SecureCookies bool
	Limiter       Limiter                // optional, nil disables limiting
	Hasher        *internal.ClientHasher // optional, unkeyed hasher when nil
	Prefs         theme.PrefStore        // optional, cookie storage when nil
}

// Handler handles API requests for /api/v1/* endpoints.
type Handler struct {
	content   *content.Content
	submitter Submitter
	validator Validator
	limiter   Limiter
	hasher    *internal.ClientHasher
	prefs     theme.PrefStore
	cookies   theme.CookieOpts
}

// New creates a new API handler.
func New(cnt *content.Content, sub Submitter, val Validator, cfg Config) *Handler {
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
		cookies:   theme.CookieOpts{Path: cfg.CookiePath, Secure: cfg.SecureCookies},
	}
}

// Register registers API routes on the given router.
func (h *Handler) Register(r *routegroup.Bundle) {
	r.HandleFunc("GET /content", h.handleContent)
	r.HandleFunc("GET /theme", h.handleThemeGet)
	r.HandleFunc("PUT /theme", h.handleThemeSet)
	r.HandleFunc("DELETE /theme", h.handleThemeForget)
	r.HandleFunc("POST /theme/toggle", h.handleThemeToggle)
	r.HandleFunc("POST /contact", h.handleContact)
}

// themeResponse is the body of all theme endpoints.
type themeResponse struct {
	Theme  enum.Theme `json:"theme"`
	Stored bool       `json:"stored"` // initial mode came from storage, not the ambient hint
}

// contactResponse is the body of a relayed contact submission.
type contactResponse struct {
	Outcome enum.Outcome `json:"outcome"`
	Message string       `json:"message"`
}

// handleContent returns the page content.
// GET /api/v1/content
func (h *Handler) handleContent(w http.ResponseWriter, _ *http.Request) {
	rest.RenderJSON(w, h.content)
}

// handleThemeGet returns the resolved display mode.
// GET /api/v1/theme
func (h *Handler) handleThemeGet(w http.ResponseWriter, r *http.Request) {
	ctrl := h.themeController(w, r)
	rest.RenderJSON(w, themeResponse{Theme: ctrl.Mode(), Stored: ctrl.Stored()})
}

// handleThemeToggle flips the display mode.
// POST /api/v1/theme/toggle
func (h *Handler) handleThemeToggle(w http.ResponseWriter, r *http.Request) {
	ctrl := h.themeController(w, r)
	th := ctrl.Toggle()
	internal.ObserveThemeChange(th)
	rest.RenderJSON(w, themeResponse{Theme: th, Stored: ctrl.Stored()})
}

// handleThemeSet sets the display mode explicitly.
// PUT /api/v1/theme with {"theme":"dark"}
func (h *Handler) handleThemeSet(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Theme string `json:"theme"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		rest.SendErrorJSON(w, r, log.Default(), http.StatusBadRequest, err, "invalid request body")
		return
	}
	th, err := enum.ParseTheme(req.Theme)
	if err != nil {
		rest.SendErrorJSON(w, r, log.Default(), http.StatusBadRequest, err, "theme must be light or dark")
		return
	}

	ctrl := h.themeController(w, r)
	if ctrl.Mode() != th {
		internal.ObserveThemeChange(th)
	}
	ctrl.Set(th)
	rest.RenderJSON(w, themeResponse{Theme: ctrl.Mode(), Stored: ctrl.Stored()})
}

// handleThemeForget drops the stored display mode and reports the ambient one.
// DELETE /api/v1/theme
func (h *Handler) handleThemeForget(w http.ResponseWriter, r *http.Request) {
	ctrl := h.themeController(w, r)
	th := ctrl.Forget()
	rest.RenderJSON(w, themeResponse{Theme: th, Stored: ctrl.Stored()})
}

// handleContact validates and relays a contact submission.
// POST /api/v1/contact with {"name":..., "phone":..., "email":..., "message":...}
// Responds 200 when delivered, 502 when the relay rejected it, 503 when the relay was unreachable.
func (h *Handler) handleContact(w http.ResponseWriter, r *http.Request) {
	var sub contact.Submission
	if err := json.NewDecoder(r.Body).Decode(&sub); err != nil {
		rest.SendErrorJSON(w, r, log.Default(), http.StatusBadRequest, err, "invalid request body")
		return
	}
	sub = sub.Trim()

	if err := h.validator.Validate(sub); err != nil {
		var fe *validator.FieldError
		if errors.As(err, &fe) {
			rest.EncodeJSON(w, http.StatusBadRequest, rest.JSON{"error": fe.Error(), "field": fe.Field})
			return
		}
		rest.SendErrorJSON(w, r, log.Default(), http.StatusBadRequest, err, err.Error())
		return
	}

	clientID := h.hasher.ClientID(r)
	if h.limiter != nil && !h.limiter.Allow(clientID) {
		log.Printf("[INFO] api contact submission from %s rate limited", clientID)
		rest.SendErrorJSON(w, r, log.Default(), http.StatusTooManyRequests, nil, "too many requests")
		return
	}

	res := h.submitter.Submit(r.Context(), sub)
	internal.ObserveContact(res.Outcome)
	log.Printf("[INFO] api contact submission from %s: %s", clientID, res.Outcome)

	status := http.StatusOK
	switch res.Outcome {
	case enum.OutcomeRejected:
		status = http.StatusBadGateway
	case enum.OutcomeUnreachable:
		status = http.StatusServiceUnavailable
	}
	rest.EncodeJSON(w, status, contactResponse{Outcome: res.Outcome, Message: res.Notice(sub)})
}

func (h *Handler) themeController(w http.ResponseWriter, r *http.Request) *theme.Controller {
	return theme.New(theme.ForRequest(w, r, h.prefs, h.cookies), theme.HintAmbient{Request: r})
}
