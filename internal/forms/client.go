package forms

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"strings"
	"time"

	"github.com/oklog/ulid/v2"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"

	"github.com/development-sample/eceta.com/internal/i18n"
	"github.com/development-sample/eceta.com/internal/observability"
)

const defaultTimeout = 8 * time.Second

// SubmissionIDHeader carries a fresh identifier for every submission.
const SubmissionIDHeader = "X-Submission-ID"

type localeKey struct{}

// ContextWithLocale records the locale of the page a form was posted from. Client sends it as
// Content-Language.
func ContextWithLocale(ctx context.Context, l i18n.Locale) context.Context {
	return context.WithValue(ctx, localeKey{}, l)
}

// LocaleFromContext returns the locale stored by ContextWithLocale.
func LocaleFromContext(ctx context.Context) (i18n.Locale, bool) {
	l, ok := ctx.Value(localeKey{}).(i18n.Locale)
	return l, ok
}

// Headers carrying the browser that posted the form. The intake records them in place of the
// peer of the relayed request.
const (
	VisitorIPHeader        = "X-Visitor-IP"
	VisitorUserAgentHeader = "X-Visitor-User-Agent"
)

// Visitor identifies the browser a form was posted from.
type Visitor struct {
	IP        string
	UserAgent string
}

// VisitorFromRequest reads the visitor from an incoming page request. RemoteAddr is expected to
// be resolved by the proxy middleware already.
func VisitorFromRequest(r *http.Request) Visitor {
	ip, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		ip = r.RemoteAddr
	}
	return Visitor{IP: ip, UserAgent: r.UserAgent()}
}

type visitorKey struct{}

// ContextWithVisitor records the visitor so Client can forward it.
func ContextWithVisitor(ctx context.Context, v Visitor) context.Context {
	return context.WithValue(ctx, visitorKey{}, v)
}

// VisitorFromContext returns the visitor stored by ContextWithVisitor.
func VisitorFromContext(ctx context.Context) (Visitor, bool) {
	v, ok := ctx.Value(visitorKey{}).(Visitor)
	return v, ok
}

// Client posts form values as JSON to the lead intake endpoints.
type Client struct {
	baseURL     string
	http        *http.Client
	newID       func() string
	submissions metric.Int64Counter
}

// ClientOption customises a Client.
type ClientOption func(*Client)

// WithIDGenerator overrides the submission id source.
func WithIDGenerator(fn func() string) ClientOption {
	return func(c *Client) {
		if fn != nil {
			c.newID = fn
		}
	}
}

// NewClient returns a client for the given base URL. A nil http client gets a default with an
// 8 second timeout.
func NewClient(baseURL string, httpClient *http.Client, opts ...ClientOption) *Client {
	if httpClient == nil {
		httpClient = &http.Client{Timeout: defaultTimeout}
	}
	c := &Client{
		baseURL:     strings.TrimRight(strings.TrimSpace(baseURL), "/"),
		http:        httpClient,
		newID:       func() string { return ulid.Make().String() },
		submissions: observability.Counter("eceta.forms.submissions", "Form submissions by kind and outcome."),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Submit sends v to its kind's endpoint. Any status outside 2xx is an error.
func (c *Client) Submit(ctx context.Context, v Values) (err error) {
	if c == nil || c.baseURL == "" {
		return errors.New("forms: client not configured")
	}
	kind := v.Kind()
	endpoint := kind.Endpoint()
	if endpoint == "" {
		return fmt.Errorf("forms: unknown kind %q", kind)
	}
	id := c.newID()

	ctx, span := observability.StartSpan(ctx, "forms.Submit", trace.WithAttributes(
		attribute.String("form.kind", string(kind)),
		attribute.String("form.submission_id", id),
	))
	defer func() {
		outcome := "success"
		if err != nil {
			outcome = "error"
		}
		c.submissions.Add(ctx, 1, metric.WithAttributes(
			attribute.String("kind", string(kind)),
			attribute.String("outcome", outcome),
		))
		observability.EndSpan(span, err)
	}()

	body, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("forms: encode %s: %w", kind, err)
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+endpoint, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("forms: build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	req.Header.Set(SubmissionIDHeader, id)
	if l, ok := LocaleFromContext(ctx); ok {
		req.Header.Set("Content-Language", l.String())
	}
	if v, ok := VisitorFromContext(ctx); ok {
		if v.IP != "" {
			req.Header.Set(VisitorIPHeader, v.IP)
		}
		if v.UserAgent != "" {
			req.Header.Set(VisitorUserAgentHeader, v.UserAgent)
		}
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("forms: post %s: %w", kind, err)
	}
	defer resp.Body.Close()
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return &RejectedError{Kind: kind, Status: resp.StatusCode, Body: drainError(resp.Body)}
	}
	_, _ = io.Copy(io.Discard, resp.Body)
	return nil
}

// RejectedError reports a non-2xx response from a submission endpoint.
type RejectedError struct {
	Kind   Kind
	Status int
	Body   string
}

func (e *RejectedError) Error() string {
	return fmt.Sprintf("forms: %s rejected with status %d: %s", e.Kind, e.Status, e.Body)
}

func drainError(r io.Reader) string {
	if r == nil {
		return ""
	}
	b, _ := io.ReadAll(io.LimitReader(r, 256))
	return strings.TrimSpace(string(b))
}
