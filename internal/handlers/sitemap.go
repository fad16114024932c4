package handlers

import (
	"bytes"
	"fmt"
	"net/http"

	"go.uber.org/zap"

	"github.com/development-sample/eceta.com/internal/i18n"
	"github.com/development-sample/eceta.com/internal/observability"
	"github.com/development-sample/eceta.com/internal/seo"
)

// Sitemap lists every static path of every locale, with hreflang alternates.
func (s *Site) Sitemap(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	var entries []seo.SitemapEntry
	for _, l := range i18n.Supported() {
		paths, err := s.router.StaticPaths(ctx, l)
		if err != nil {
			observability.FromContext(ctx).Error("sitemap paths", zap.Error(err), zap.String("locale", l.String()))
			w.Header().Set("Retry-After", "30")
			http.Error(w, http.StatusText(http.StatusServiceUnavailable), http.StatusServiceUnavailable)
			return
		}
		for _, p := range paths {
			entries = append(entries, seo.SitemapEntry{Locale: l, Segments: p})
		}
	}
	var buf bytes.Buffer
	if err := seo.WriteSitemap(&buf, s.baseURL, entries); err != nil {
		observability.FromContext(ctx).Error("write sitemap", zap.Error(err))
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/xml; charset=utf-8")
	w.Header().Set("Cache-Control", "public, max-age=3600")
	_, _ = buf.WriteTo(w)
}

// Robots allows everything and points crawlers at the sitemap.
func (s *Site) Robots(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	_, _ = fmt.Fprintf(w, "User-agent: *\nAllow: /\n\nSitemap: %s/sitemap.xml\n", s.baseURL)
}

// Healthz reports liveness.
func Healthz(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.Header().Set("Cache-Control", "no-store")
	_, _ = w.Write([]byte("ok"))
}
