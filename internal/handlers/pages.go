package handlers

import (
	"bytes"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
	g "maragu.dev/gomponents"

	"github.com/development-sample/eceta.com/internal/forms"
	"github.com/development-sample/eceta.com/internal/i18n"
	"github.com/development-sample/eceta.com/internal/middleware"
	"github.com/development-sample/eceta.com/internal/observability"
	"github.com/development-sample/eceta.com/internal/router"
	"github.com/development-sample/eceta.com/internal/views"
)

// Site serves the localized pages, the form posts and the crawler endpoints.
type Site struct {
	router    *router.Router
	content   router.ContentSource
	dict      router.DictionarySource
	baseURL   string
	analytics views.Analytics
	submitter forms.Submitter
	now       func() time.Time
}

// Option customises a Site.
type Option func(*Site)

// WithAnalytics enables the analytics tags in the layout.
func WithAnalytics(a views.Analytics) Option {
	return func(s *Site) { s.analytics = a }
}

// WithSubmitter sets where form posts are delivered, normally a *forms.Client.
func WithSubmitter(sub forms.Submitter) Option {
	return func(s *Site) { s.submitter = sub }
}

// WithClock overrides the footer clock.
func WithClock(now func() time.Time) Option {
	return func(s *Site) {
		if now != nil {
			s.now = now
		}
	}
}

// NewSite wires the page handlers. content and dict are the router's own sources, used again
// to dress the not-found and unavailable pages.
func NewSite(r *router.Router, content router.ContentSource, dict router.DictionarySource, baseURL string, opts ...Option) *Site {
	s := &Site{
		router:  r,
		content: content,
		dict:    dict,
		baseURL: strings.TrimRight(baseURL, "/"),
		now:     time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Page renders the route under /{locale}/*.
func (s *Site) Page(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	l, ok := middleware.LocaleFromContext(ctx)
	if !ok {
		s.NotFound(w, r)
		return
	}
	segments := splitSegments(chi.URLParam(r, "*"))
	res, err := s.router.Resolve(ctx, l, segments)
	if err != nil {
		s.resolveFailed(w, r, l, segments, err)
		return
	}
	c := s.viewContext(r, res)
	c.TaxExcluded = r.URL.Query().Get("tax") == "excluded"
	node, err := views.Build(c)
	if err != nil {
		observability.FromContext(ctx).Error("build view", zap.Error(err), zap.String("route", string(res.Tag)))
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}
	s.write(w, r, http.StatusOK, node)
}

func (s *Site) resolveFailed(w http.ResponseWriter, r *http.Request, l i18n.Locale, segments []string, err error) {
	if errors.Is(err, router.ErrNotFound) {
		s.notFound(w, r, l, segments)
		return
	}
	fields := []zap.Field{zap.Error(err), zap.String("locale", l.String()), zap.String("path", router.Path(segments))}
	var fe *router.FetchError
	if errors.As(err, &fe) {
		fields = append(fields, zap.String("source", fe.Source))
	}
	observability.FromContext(r.Context()).Error("resolve route", fields...)
	s.unavailable(w, r, l, segments)
}

// NotFound renders the localized 404 page. The locale comes from the context when the
// request passed the locale middleware, else from the first path segment, else the default.
func (s *Site) NotFound(w http.ResponseWriter, r *http.Request) {
	l, ok := middleware.LocaleFromContext(r.Context())
	if !ok {
		first, _, _ := strings.Cut(strings.TrimPrefix(r.URL.Path, "/"), "/")
		if l, ok = i18n.Parse(first); !ok || first != l.String() {
			l = i18n.Default
		}
	}
	s.notFound(w, r, l, nil)
}

func (s *Site) notFound(w http.ResponseWriter, r *http.Request, l i18n.Locale, segments []string) {
	c := s.viewContext(r, s.chrome(r, l, segments))
	s.write(w, r, http.StatusNotFound, views.NotFound(c))
}

func (s *Site) unavailable(w http.ResponseWriter, r *http.Request, l i18n.Locale, segments []string) {
	c := s.viewContext(r, s.chrome(r, l, segments))
	w.Header().Set("Retry-After", "30")
	s.write(w, r, http.StatusServiceUnavailable, views.Unavailable(c))
}

// chrome fetches what the status pages need. Missing Site Copy degrades to the bare shell.
func (s *Site) chrome(r *http.Request, l i18n.Locale, segments []string) router.Resolution {
	ctx := r.Context()
	res := router.Resolution{Locale: l, Segments: segments}
	d, err := s.dict.Dictionary(ctx, l)
	if err != nil {
		observability.FromContext(ctx).Error("load dictionary", zap.Error(err), zap.String("locale", l.String()))
	}
	res.Data.Dictionary = d
	if cp, err := s.content.SiteCopy(ctx, l); err == nil {
		res.Data.Copy = cp
	}
	return res
}

func (s *Site) viewContext(r *http.Request, res router.Resolution) views.Context {
	_, err := r.Cookie(views.ConsentCookie)
	return views.Context{
		Resolution:    res,
		BaseURL:       s.baseURL,
		CSRFToken:     middleware.CSRFToken(r.Context()),
		CookieConsent: err == nil,
		Analytics:     s.analytics,
		Now:           s.now(),
	}
}

// write renders into a buffer before committing the status.
func (s *Site) write(w http.ResponseWriter, r *http.Request, status int, node g.Node) {
	var buf bytes.Buffer
	if err := node.Render(&buf); err != nil {
		observability.FromContext(r.Context()).Error("render page", zap.Error(err))
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	if r.Method != http.MethodHead {
		_, _ = buf.WriteTo(w)
	}
}

func splitSegments(p string) []string {
	p = strings.Trim(p, "/")
	if p == "" {
		return nil
	}
	return strings.Split(p, "/")
}
