package middleware

import (
	"net/http"

	"github.com/development-sample/eceta.com/internal/i18n"
)

// PreferredLocale picks the locale for a request without a locale segment: the hl query
// override, then the hl cookie, then Accept-Language, then the bundle fallback.
func PreferredLocale(bundle *i18n.Bundle, r *http.Request) i18n.Locale {
	if l, ok := i18n.Parse(r.URL.Query().Get(LocaleCookie)); ok {
		return l
	}
	if c, err := r.Cookie(LocaleCookie); err == nil {
		if l, ok := i18n.Parse(c.Value); ok {
			return l
		}
	}
	return bundle.Resolve(r.Header.Get("Accept-Language"))
}

// RootRedirect sends "/" to the preferred locale's home page with a 302.
func RootRedirect(bundle *i18n.Bundle) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Add("Vary", "Accept-Language")
		w.Header().Add("Vary", "Cookie")
		w.Header().Set("Cache-Control", "private, no-store")
		http.Redirect(w, r, "/"+PreferredLocale(bundle, r).String(), http.StatusFound)
	}
}
