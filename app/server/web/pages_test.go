package web

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/expensivecode/folio/app/contact"
	"github.com/expensivecode/folio/app/enum"
	"github.com/expensivecode/folio/app/server/web/mocks"
	"github.com/expensivecode/folio/app/theme"
	"github.com/expensivecode/folio/app/validator"
)

func TestHandler_HandleIndex(t *testing.T) {
	h := newTestHandler(t)

	t.Run("light by default", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/", http.NoBody)
		rec := httptest.NewRecorder()
		h.handleIndex(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
		body := rec.Body.String()
		assert.Contains(t, body, "Expensive Code")
		assert.Contains(t, body, `<html lang="en" class="" data-theme="light">`)
		assert.Contains(t, body, `id="contact-form"`)
		assert.Contains(t, rec.Header().Get("Set-Cookie"), "theme=light")
	})

	t.Run("dark from cookie", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/", http.NoBody)
		req.AddCookie(&http.Cookie{Name: theme.CookieName, Value: "dark"})
		rec := httptest.NewRecorder()
		h.handleIndex(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), `<html lang="en" class="dark" data-theme="dark">`)
		assert.Empty(t, rec.Header().Get("Set-Cookie"), "stored value is not rewritten")
	})

	t.Run("stored light wins over dark hint", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/", http.NoBody)
		req.AddCookie(&http.Cookie{Name: theme.CookieName, Value: "light"})
		req.Header.Set(theme.HintHeader, "dark")
		rec := httptest.NewRecorder()
		h.handleIndex(rec, req)

		assert.Contains(t, rec.Body.String(), `data-theme="light"`)
	})

	t.Run("base url prefixes links", func(t *testing.T) {
		hb := newTestHandlerWithConfig(t, &mocks.SubmitterMock{}, &mocks.ValidatorMock{}, Config{BaseURL: "/folio"})
		req := httptest.NewRequest(http.MethodGet, "/", http.NoBody)
		rec := httptest.NewRecorder()
		hb.handleIndex(rec, req)

		assert.Contains(t, rec.Body.String(), `href="/folio/static/style.css"`)
		assert.Contains(t, rec.Body.String(), `hx-post="/folio/web/contact"`)
		assert.Contains(t, rec.Header().Get("Set-Cookie"), "Path=/folio/")
	})
}

func TestHandler_HandleThemeToggle(t *testing.T) {
	h := newTestHandler(t)

	tests := []struct {
		name   string
		cookie string
		hint   string
		want   string
	}{
		{name: "light to dark", cookie: "light", want: "theme=dark"},
		{name: "dark to light", cookie: "dark", want: "theme=light"},
		{name: "nothing stored, no hint", want: "theme=dark"},
		{name: "nothing stored, dark hint", hint: "dark", want: "theme=light"},
		{name: "garbage cookie treated as absent", cookie: "blue", want: "theme=dark"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodPost, "/web/theme", http.NoBody)
			req.Header.Set("HX-Request", "true")
			if tc.cookie != "" {
				req.AddCookie(&http.Cookie{Name: theme.CookieName, Value: tc.cookie})
			}
			if tc.hint != "" {
				req.Header.Set(theme.HintHeader, tc.hint)
			}
			rec := httptest.NewRecorder()
			h.handleThemeToggle(rec, req)

			assert.Equal(t, http.StatusOK, rec.Code)
			assert.Equal(t, "true", rec.Header().Get("HX-Refresh"))
			cookies := rec.Header().Values("Set-Cookie")
			require.Len(t, cookies, 1, "only the final value is sent")
			assert.Contains(t, cookies[0], tc.want)
		})
	}

	t.Run("plain form post redirects", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/web/theme", http.NoBody)
		rec := httptest.NewRecorder()
		h.handleThemeToggle(rec, req)

		assert.Equal(t, http.StatusSeeOther, rec.Code)
		assert.Equal(t, "/", rec.Header().Get("Location"))
		assert.Contains(t, rec.Header().Get("Set-Cookie"), "theme=dark")
	})
}

func TestHandler_HandleContact(t *testing.T) {
	form := url.Values{
		"name":    {" Ada "},
		"phone":   {"+1 555 0100"},
		"email":   {"ada@example.com"},
		"message": {"hello there"},
	}

	newReq := func(htmx bool) *http.Request {
		req := httptest.NewRequest(http.MethodPost, "/web/contact", strings.NewReader(form.Encode()))
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
		req.RemoteAddr = "10.1.2.3:4567"
		if htmx {
			req.Header.Set("HX-Request", "true")
		}
		return req
	}

	t.Run("delivered clears the form", func(t *testing.T) {
		sub := &mocks.SubmitterMock{SubmitFunc: func(context.Context, contact.Submission) contact.Result {
			return contact.Result{Outcome: enum.OutcomeDelivered, Status: http.StatusOK}
		}}
		h := newTestHandlerWithConfig(t, sub, acceptingValidator(), Config{})

		rec := httptest.NewRecorder()
		h.handleContact(rec, newReq(true))

		assert.Equal(t, http.StatusOK, rec.Code)
		body := rec.Body.String()
		assert.Contains(t, body, "Thanks, Ada!")
		assert.Contains(t, body, "notice-success")
		assert.NotContains(t, body, `value="ada@example.com"`)
		assert.NotContains(t, body, "<html", "htmx gets the partial only")

		require.Len(t, sub.SubmitCalls(), 1)
		assert.Equal(t, contact.Submission{Name: "Ada", Phone: "+1 555 0100", Email: "ada@example.com",
			Message: "hello there"}, sub.SubmitCalls()[0].Sub)
	})

	t.Run("rejected keeps the fields", func(t *testing.T) {
		sub := &mocks.SubmitterMock{SubmitFunc: func(context.Context, contact.Submission) contact.Result {
			return contact.Result{Outcome: enum.OutcomeRejected, Status: http.StatusUnprocessableEntity}
		}}
		h := newTestHandlerWithConfig(t, sub, acceptingValidator(), Config{})

		rec := httptest.NewRecorder()
		h.handleContact(rec, newReq(true))

		assert.Equal(t, http.StatusOK, rec.Code)
		body := rec.Body.String()
		assert.Contains(t, body, "Oops! Something went wrong. Please try again.")
		assert.Contains(t, body, "notice-error")
		assert.Contains(t, body, `value="ada@example.com"`)
		assert.Contains(t, body, "hello there")
	})

	t.Run("unreachable keeps the fields", func(t *testing.T) {
		sub := &mocks.SubmitterMock{SubmitFunc: func(context.Context, contact.Submission) contact.Result {
			return contact.Result{Outcome: enum.OutcomeUnreachable, Err: errors.New("connection refused")}
		}}
		h := newTestHandlerWithConfig(t, sub, acceptingValidator(), Config{})

		rec := httptest.NewRecorder()
		h.handleContact(rec, newReq(true))

		assert.Contains(t, rec.Body.String(), "Network error. Please try again later.")
		assert.Contains(t, rec.Body.String(), `value="ada@example.com"`)
	})

	t.Run("full page for plain post with outcome status", func(t *testing.T) {
		sub := &mocks.SubmitterMock{SubmitFunc: func(context.Context, contact.Submission) contact.Result {
			return contact.Result{Outcome: enum.OutcomeUnreachable, Err: errors.New("timeout")}
		}}
		h := newTestHandlerWithConfig(t, sub, acceptingValidator(), Config{})

		rec := httptest.NewRecorder()
		h.handleContact(rec, newReq(false))

		assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
		assert.Contains(t, rec.Body.String(), "<html")
		assert.Contains(t, rec.Body.String(), "Network error. Please try again later.")
	})

	t.Run("invalid submission is not relayed", func(t *testing.T) {
		sub := &mocks.SubmitterMock{}
		val := &mocks.ValidatorMock{ValidateFunc: func(contact.Submission) error {
			return &validator.FieldError{Field: "email", Reason: "is not a valid address"}
		}}
		h := newTestHandlerWithConfig(t, sub, val, Config{})

		rec := httptest.NewRecorder()
		h.handleContact(rec, newReq(true))

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), "email is not a valid address")
		assert.Empty(t, sub.SubmitCalls())

		rec = httptest.NewRecorder()
		h.handleContact(rec, newReq(false))
		assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	})

	t.Run("rate limited is not relayed", func(t *testing.T) {
		sub := &mocks.SubmitterMock{}
		lim := &mocks.LimiterMock{AllowFunc: func(string) bool { return false }}
		h := newTestHandlerWithConfig(t, sub, acceptingValidator(), Config{Limiter: lim})

		rec := httptest.NewRecorder()
		h.handleContact(rec, newReq(true))

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), "Too many messages")
		assert.Empty(t, sub.SubmitCalls())
		require.Len(t, lim.AllowCalls(), 1)
		assert.NotContains(t, lim.AllowCalls()[0].ClientID, "10.1.2.3", "limiter sees hashed ids only")

		rec = httptest.NewRecorder()
		h.handleContact(rec, newReq(false))
		assert.Equal(t, http.StatusTooManyRequests, rec.Code)
	})
}

func TestOutcomeStatus(t *testing.T) {
	assert.Equal(t, http.StatusOK, outcomeStatus(enum.OutcomeDelivered))
	assert.Equal(t, http.StatusBadGateway, outcomeStatus(enum.OutcomeRejected))
	assert.Equal(t, http.StatusServiceUnavailable, outcomeStatus(enum.OutcomeUnreachable))
}
