package middleware

import (
	"crypto/hmac"
	"crypto/rand"
	"crypto/sha256"
	"crypto/subtle"
	"encoding/base64"
	"net/http"
	"strings"
	"time"

	"github.com/development-sample/eceta.com/internal/forms"
)

const (
	csrfCookieName = "eceta_csrf"
	csrfHeader     = "X-CSRF-Token"
	csrfTTL        = 24 * time.Hour
)

// CSRFConfig configures the double-submit cookie.
type CSRFConfig struct {
	// Key signs tokens so a cookie planted by a sibling subdomain is rejected.
	Key    []byte
	Secure bool
	Domain string
}

// CSRF issues a signed token cookie and verifies that unsafe requests echo it back in the
// X-CSRF-Token header or the _csrf form field.
func CSRF(cfg CSRFConfig) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token := ""
			if c, err := r.Cookie(csrfCookieName); err == nil && verifyCSRFToken(cfg.Key, c.Value) {
				token = c.Value
			}
			if token == "" {
				if !isSafeMethod(r.Method) {
					writeError(w, r, http.StatusForbidden, "csrf_invalid", "invalid CSRF token")
					return
				}
				token = newCSRFToken(cfg.Key)
				http.SetCookie(w, &http.Cookie{
					Name:     csrfCookieName,
					Value:    token,
					Path:     "/",
					Domain:   cfg.Domain,
					HttpOnly: true,
					Secure:   cfg.Secure,
					SameSite: http.SameSiteLaxMode,
					Expires:  time.Now().Add(csrfTTL),
				})
			}

			if !isSafeMethod(r.Method) {
				sent := r.Header.Get(csrfHeader)
				if sent == "" {
					sent = r.PostFormValue(forms.CSRFField)
				}
				if subtle.ConstantTimeCompare([]byte(sent), []byte(token)) != 1 {
					writeError(w, r, http.StatusForbidden, "csrf_invalid", "invalid CSRF token")
					return
				}
			}

			next.ServeHTTP(w, r.WithContext(WithCSRFToken(r.Context(), token)))
		})
	}
}

// newCSRFToken returns nonce "." HMAC(nonce), both base64url.
func newCSRFToken(key []byte) string {
	nonce := make([]byte, 18)
	_, _ = rand.Read(nonce)
	n := base64.RawURLEncoding.EncodeToString(nonce)
	return n + "." + signCSRF(key, n)
}

func verifyCSRFToken(key []byte, token string) bool {
	n, sig, ok := strings.Cut(token, ".")
	if !ok || n == "" || sig == "" {
		return false
	}
	return hmac.Equal([]byte(sig), []byte(signCSRF(key, n)))
}

func signCSRF(key []byte, nonce string) string {
	mac := hmac.New(sha256.New, key)
	mac.Write([]byte(nonce))
	return base64.RawURLEncoding.EncodeToString(mac.Sum(nil))
}

func isSafeMethod(m string) bool {
	switch m {
	case http.MethodGet, http.MethodHead, http.MethodOptions, http.MethodTrace:
		return true
	default:
		return false
	}
}
