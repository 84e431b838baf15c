package server

import (
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/expensivecode/folio/app/contact"
	"github.com/expensivecode/folio/app/content"
	"github.com/expensivecode/folio/app/enum"
	"github.com/expensivecode/folio/app/server/mocks"
	webmocks "github.com/expensivecode/folio/app/server/web/mocks"
	"github.com/expensivecode/folio/app/theme"
)

func TestServer_Routes(t *testing.T) {
	srv := newTestServer(t, nil, Config{Version: "test"})
	h := srv.routes()

	t.Run("index page with client hint headers", func(t *testing.T) {
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", http.NoBody))

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), "Expensive Code")
		assert.Equal(t, theme.HintHeader, rec.Header().Get("Accept-CH"))
		assert.Equal(t, theme.HintHeader, rec.Header().Get("Critical-CH"))
		assert.Contains(t, rec.Header().Values("Vary"), theme.HintHeader)
	})

	t.Run("ping", func(t *testing.T) {
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/ping", http.NoBody))
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "pong", rec.Body.String())
	})

	t.Run("app info headers", func(t *testing.T) {
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/ping", http.NoBody))
		assert.Equal(t, "folio", rec.Header().Get("App-Name"))
		assert.Equal(t, "test", rec.Header().Get("App-Version"))
	})

	t.Run("static files", func(t *testing.T) {
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/static/style.css", http.NoBody))
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), "html.dark")
	})

	t.Run("metrics", func(t *testing.T) {
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/web/theme", http.NoBody))
		require.Equal(t, http.StatusSeeOther, rec.Code)

		rec = httptest.NewRecorder()
		h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", http.NoBody))
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), `folio_theme_changes_total{theme="dark"}`)
	})

	t.Run("api theme", func(t *testing.T) {
		rec := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/api/v1/theme", http.NoBody)
		req.AddCookie(&http.Cookie{Name: theme.CookieName, Value: "dark"})
		h.ServeHTTP(rec, req)
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.JSONEq(t, `{"theme":"dark","stored":true}`, rec.Body.String())
	})

	t.Run("unknown route", func(t *testing.T) {
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/nope", http.NoBody))
		assert.Equal(t, http.StatusNotFound, rec.Code)
	})
}

func TestServer_ContactRateLimitShared(t *testing.T) {
	sub := &webmocks.SubmitterMock{SubmitFunc: func(context.Context, contact.Submission) contact.Result {
		return contact.Result{Outcome: enum.OutcomeDelivered, Status: http.StatusOK}
	}}
	srv := newTestServerWith(t, sub, nil, Config{ContactInterval: time.Hour, ContactBurst: 1})
	h := srv.routes()

	form := url.Values{"name": {"Ada"}, "phone": {"555 0100"}, "email": {"ada@example.com"}, "message": {"hi"}}
	req := httptest.NewRequest(http.MethodPost, "/web/contact", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.RemoteAddr = "10.0.0.1:1000"
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusOK, rec.Code)

	body := `{"name":"Ada","phone":"555 0100","email":"ada@example.com","message":"hi"}`
	req = httptest.NewRequest(http.MethodPost, "/api/v1/contact", strings.NewReader(body))
	req.RemoteAddr = "10.0.0.1:2000"
	rec = httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusTooManyRequests, rec.Code)

	assert.Len(t, sub.SubmitCalls(), 1)
}

func TestServer_Handler_BaseURL(t *testing.T) {
	srv := newTestServer(t, nil, Config{BaseURL: "/folio"})
	h := srv.handler()

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/folio", http.NoBody))
	assert.Equal(t, http.StatusMovedPermanently, rec.Code)
	assert.Equal(t, "/folio/", rec.Header().Get("Location"))

	rec = httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/folio/", http.NoBody))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `href="/folio/static/style.css"`)

	rec = httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", http.NoBody))
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestServer_PrefStore(t *testing.T) {
	prefs := &mocks.PrefStoreMock{
		GetThemeFunc: func(context.Context, string) (enum.Theme, error) { return enum.ThemeDark, nil },
		SetThemeFunc: func(context.Context, string, enum.Theme) error { return nil },
	}
	srv := newTestServer(t, prefs, Config{})

	req := httptest.NewRequest(http.MethodGet, "/", http.NoBody)
	req.AddCookie(&http.Cookie{Name: theme.VisitorCookieName, Value: "7f9c2ba4-e88f-4d9a-9f39-7c1b1a0bc0de"})
	rec := httptest.NewRecorder()
	srv.routes().ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `class="dark"`)
	assert.Len(t, prefs.GetThemeCalls(), 1)
	assert.Empty(t, prefs.SetThemeCalls())
}

func TestServer_PrefStore_CookielessVisitsWriteNothing(t *testing.T) {
	prefs := &mocks.PrefStoreMock{
		SetThemeFunc: func(context.Context, string, enum.Theme) error { return nil },
	}
	srv := newTestServer(t, prefs, Config{})
	h := srv.routes()

	for range 3 {
		req := httptest.NewRequest(http.MethodGet, "/", http.NoBody)
		req.Header.Set(theme.HintHeader, "dark")
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), `class="dark"`)
		for _, c := range rec.Result().Cookies() {
			assert.NotEqual(t, theme.VisitorCookieName, c.Name)
		}
	}
	assert.Empty(t, prefs.SetThemeCalls(), "page views without a choice add no records")
	assert.Empty(t, prefs.GetThemeCalls())

	// an explicit toggle creates the record
	req := httptest.NewRequest(http.MethodPost, "/web/theme", http.NoBody)
	req.Header.Set(theme.HintHeader, "dark")
	req.Header.Set("HX-Request", "true")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	require.Len(t, prefs.SetThemeCalls(), 1)
	assert.Equal(t, enum.ThemeLight, prefs.SetThemeCalls()[0].Th)
}

func TestServer_CleanupPrefs(t *testing.T) {
	var calls atomic.Int32
	prefs := &mocks.PrefStoreMock{
		CleanupFunc: func(_ context.Context, olderThan time.Time) (int64, error) {
			calls.Add(1)
			assert.WithinDuration(t, time.Now().Add(-time.Hour), olderThan, time.Minute)
			return 1, nil
		},
	}
	srv := newTestServer(t, prefs, Config{PrefsTTL: time.Hour, CleanupInterval: 10 * time.Millisecond})

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		srv.cleanupPrefs(ctx)
		close(done)
	}()

	require.Eventually(t, func() bool { return calls.Load() >= 2 }, time.Second, 5*time.Millisecond)
	cancel()
	<-done
}

func TestServer_Run(t *testing.T) {
	srv := newTestServer(t, nil, Config{Address: "127.0.0.1:0", ShutdownTimeout: time.Second})
	ctx, cancel := context.WithCancel(context.Background())
	errCh := make(chan error, 1)
	go func() { errCh <- srv.Run(ctx) }()

	time.Sleep(50 * time.Millisecond)
	cancel()
	select {
	case err := <-errCh:
		require.NoError(t, err)
	case <-time.After(2 * time.Second):
		t.Fatal("server did not stop")
	}
}

func TestServer_Defaults(t *testing.T) {
	s := &Server{}
	assert.Equal(t, int64(64*1024), s.bodySizeLimit())
	assert.Equal(t, int64(1000), s.requestsPerSec())
	assert.Equal(t, "/", s.cookiePath())

	s = &Server{cfg: Config{BodySizeLimit: 10, RequestsPerSec: 5, BaseURL: "/x"}}
	assert.Equal(t, int64(10), s.bodySizeLimit())
	assert.Equal(t, int64(5), s.requestsPerSec())
	assert.Equal(t, "/x/", s.cookiePath())
}

func newTestServer(t *testing.T, prefs PrefStore, cfg Config) *Server {
	t.Helper()
	return newTestServerWith(t, &webmocks.SubmitterMock{}, prefs, cfg)
}

func newTestServerWith(t *testing.T, sub Submitter, prefs PrefStore, cfg Config) *Server {
	t.Helper()
	cnt, err := content.Default()
	require.NoError(t, err)
	val := &webmocks.ValidatorMock{ValidateFunc: func(contact.Submission) error { return nil }}
	srv, err := New(cnt, sub, val, prefs, cfg)
	require.NoError(t, err)
	return srv
}
