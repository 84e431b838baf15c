// Package contact relays contact-form submissions to an external form relay.
//
// Each Submit makes exactly one POST and maps it to one of three outcomes:
// delivered (2xx), rejected (any other status) or unreachable (transport failure).
// There are no retries.
package contact

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	log "github.com/go-pkgz/lgr"

	"github.com/expensivecode/folio/app/enum"
)

// maxDrain limits how much of a relay response is read before closing it.
const maxDrain = 64 * 1024

// Submission is a single contact-form entry.
type Submission struct {
	Name    string `json:"name"`
	Phone   string `json:"phone"`
	Email   string `json:"email"`
	Message string `json:"message"`
}

// Form returns the submission as form fields.
func (s Submission) Form() url.Values {
	return url.Values{
		"name":    {s.Name},
		"phone":   {s.Phone},
		"email":   {s.Email},
		"message": {s.Message},
	}
}

// Trim returns a copy with surrounding whitespace removed from every field.
func (s Submission) Trim() Submission {
	return Submission{
		Name:    strings.TrimSpace(s.Name),
		Phone:   strings.TrimSpace(s.Phone),
		Email:   strings.TrimSpace(s.Email),
		Message: strings.TrimSpace(s.Message),
	}
}

// Result is the tagged outcome of a submission.
type Result struct {
	Outcome enum.Outcome
	Status  int   // relay HTTP status, zero when unreachable
	Err     error // transport error, set only for unreachable
}

// ClearForm reports whether the form fields should be reset after this result.
func (r Result) ClearForm() bool {
	return !r.Outcome.Failed()
}

// Notice returns the user-facing message for the result.
func (r Result) Notice(sub Submission) string {
	switch r.Outcome {
	case enum.OutcomeDelivered:
		name := sub.Name
		if name == "" {
			name = "there"
		}
		email := sub.Email
		if email == "" {
			email = "your email"
		}
		return fmt.Sprintf("Thanks, %s! I'll get back to you at %s or %s.", name, email, sub.Phone)
	case enum.OutcomeRejected:
		return "Oops! Something went wrong. Please try again."
	default:
		return "Network error. Please try again later."
	}
}

// Config defines the relay endpoint and transport for a Submitter.
type Config struct {
	Endpoint string        // relay URL, e.g. https://formspree.io/f/<id>
	Timeout  time.Duration // applies to the default client only
	Client   *http.Client  // optional, replaces the default client
}

// Submitter posts submissions to a fixed relay endpoint.
type Submitter struct {
	endpoint string
	client   *http.Client
}

// New makes a Submitter. The endpoint must be an absolute http(s) URL.
func New(cfg Config) (*Submitter, error) {
	u, err := url.Parse(cfg.Endpoint)
	if err != nil {
		return nil, fmt.Errorf("invalid relay endpoint %q: %w", cfg.Endpoint, err)
	}
	if (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return nil, fmt.Errorf("invalid relay endpoint %q: absolute http(s) url required", cfg.Endpoint)
	}

	client := cfg.Client
	if client == nil {
		client = &http.Client{
			Timeout: cfg.Timeout,
			Transport: &http.Transport{
				Proxy:               http.ProxyFromEnvironment,
				MaxIdleConns:        10,
				MaxIdleConnsPerHost: 2,
				IdleConnTimeout:     90 * time.Second,
			},
		}
	}
	return &Submitter{endpoint: u.String(), client: client}, nil
}

// Endpoint returns the relay URL.
func (s *Submitter) Endpoint() string {
	return s.endpoint
}

// Submit makes a single attempt to deliver sub to the relay. It never returns an error;
// failures are reported through the Result outcome.
func (s *Submitter) Submit(ctx context.Context, sub Submission) Result {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.endpoint, strings.NewReader(sub.Form().Encode()))
	if err != nil {
		log.Printf("[WARN] failed to create relay request: %v", err)
		return Result{Outcome: enum.OutcomeUnreachable, Err: err}
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.Header.Set("Accept", "application/json")

	resp, err := s.client.Do(req)
	if err != nil {
		if errors.Is(err, context.Canceled) {
			log.Printf("[DEBUG] relay request canceled: %v", err)
		} else {
			log.Printf("[WARN] contact relay unreachable: %v", err)
		}
		return Result{Outcome: enum.OutcomeUnreachable, Err: err}
	}
	defer resp.Body.Close()
	_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, maxDrain))

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		log.Printf("[WARN] contact relay rejected submission, status %d", resp.StatusCode)
		return Result{Outcome: enum.OutcomeRejected, Status: resp.StatusCode}
	}

	log.Printf("[DEBUG] contact submission delivered, status %d", resp.StatusCode)
	return Result{Outcome: enum.OutcomeDelivered, Status: resp.StatusCode}
}
