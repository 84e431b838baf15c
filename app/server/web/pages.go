package web

import (
	"errors"
	"net/http"

	log "github.com/go-pkgz/lgr"

	"github.com/expensivecode/folio/app/contact"
	"github.com/expensivecode/folio/app/enum"
	"github.com/expensivecode/folio/app/server/internal"
	"github.com/expensivecode/folio/app/validator"
)

const rateLimitedNotice = "Too many messages. Please wait a moment and try again."

// handleIndex renders the main page.
func (h *Handler) handleIndex(w http.ResponseWriter, r *http.Request) {
	ctrl := h.themeController(w, r)
	h.render(w, "base.html", h.pageData(ctrl, formData{}), http.StatusOK)
}

// handleThemeToggle toggles the theme between light and dark.
func (h *Handler) handleThemeToggle(w http.ResponseWriter, r *http.Request) {
	ctrl := h.themeController(w, r)
	newTheme := ctrl.Toggle()
	internal.ObserveThemeChange(newTheme)
	log.Printf("[DEBUG] theme toggled to %s for %s", newTheme, h.hasher.ClientID(r))

	if !internal.IsHTMX(r) {
		http.Redirect(w, r, h.url("/"), http.StatusSeeOther)
		return
	}
	// trigger full page refresh
	w.Header().Set("HX-Refresh", "true")
	w.WriteHeader(http.StatusOK)
}

// handleContact validates and relays the contact form, then renders the form with a notice.
// htmx does not swap 4xx/5xx responses, so htmx requests always get 200 with the notice inside.
func (h *Handler) handleContact(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		h.renderContact(w, r, formData{Notice: "Invalid form data", NoticeKind: noticeError}, http.StatusBadRequest)
		return
	}

	sub := contact.Submission{
		Name:    r.PostForm.Get("name"),
		Phone:   r.PostForm.Get("phone"),
		Email:   r.PostForm.Get("email"),
		Message: r.PostForm.Get("message"),
	}.Trim()
	form := formData{Name: sub.Name, Phone: sub.Phone, Email: sub.Email, Message: sub.Message}

	if err := h.validator.Validate(sub); err != nil {
		var fe *validator.FieldError
		if !errors.As(err, &fe) {
			log.Printf("[WARN] unexpected validation error: %v", err)
		}
		form.Notice, form.NoticeKind = err.Error(), noticeError
		h.renderContact(w, r, form, http.StatusUnprocessableEntity)
		return
	}

	clientID := h.hasher.ClientID(r)
	if h.limiter != nil && !h.limiter.Allow(clientID) {
		log.Printf("[INFO] contact submission from %s rate limited", clientID)
		form.Notice, form.NoticeKind = rateLimitedNotice, noticeError
		h.renderContact(w, r, form, http.StatusTooManyRequests)
		return
	}

	res := h.submitter.Submit(r.Context(), sub)
	internal.ObserveContact(res.Outcome)
	log.Printf("[INFO] contact submission from %s: %s", clientID, res.Outcome)

	if res.ClearForm() {
		form = formData{NoticeKind: noticeSuccess}
	} else {
		form.NoticeKind = noticeError
	}
	form.Notice = res.Notice(sub)
	h.renderContact(w, r, form, outcomeStatus(res.Outcome))
}

// renderContact writes the contact-form partial for htmx, or the full page otherwise.
func (h *Handler) renderContact(w http.ResponseWriter, r *http.Request, form formData, status int) {
	if internal.IsHTMX(r) {
		h.render(w, "contact-form", templateData{BaseURL: h.baseURL, Form: form}, http.StatusOK)
		return
	}
	ctrl := h.themeController(w, r)
	h.render(w, "base.html", h.pageData(ctrl, form), status)
}

func (h *Handler) render(w http.ResponseWriter, name string, data templateData, status int) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	if err := h.tmpl.ExecuteTemplate(w, name, data); err != nil {
		log.Printf("[ERROR] failed to execute template %s: %v", name, err)
	}
}

// outcomeStatus maps a relay outcome to the status of a full-page response.
func outcomeStatus(o enum.Outcome) int {
	switch o {
	case enum.OutcomeDelivered:
		return http.StatusOK
	case enum.OutcomeRejected:
		return http.StatusBadGateway
	default:
		return http.StatusServiceUnavailable
	}
}
