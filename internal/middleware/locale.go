package middleware

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/development-sample/eceta.com/internal/i18n"
)

// LocaleCookie remembers the last locale a visitor browsed.
const LocaleCookie = "hl"

// LocaleParam is the chi URL parameter holding the locale segment.
const LocaleParam = "locale"

// VaryLocale sets Vary header for Accept-Language on dynamic responses
func VaryLocale(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Add("Vary", "Accept-Language")
		next.ServeHTTP(w, r)
	})
}

// Locale validates the {locale} URL segment. Unsupported locales are passed to notFound;
// supported ones are stored on the context, echoed as Content-Language and remembered in
// the hl cookie.
func Locale(notFound http.Handler, secure bool) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			raw := chi.URLParam(r, LocaleParam)
			l, ok := i18n.Parse(raw)
			if !ok || raw != l.String() {
				notFound.ServeHTTP(w, r)
				return
			}
			w.Header().Set("Content-Language", l.String())
			if c, err := r.Cookie(LocaleCookie); err != nil || c.Value != l.String() {
				http.SetCookie(w, &http.Cookie{
					Name:     LocaleCookie,
					Value:    l.String(),
					Path:     "/",
					MaxAge:   365 * 24 * 60 * 60,
					Secure:   secure,
					SameSite: http.SameSiteLaxMode,
				})
			}
			next.ServeHTTP(w, r.WithContext(WithLocale(r.Context(), l)))
		})
	}
}
