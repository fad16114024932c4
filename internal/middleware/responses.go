package middleware

import (
	"net/http"
	"strings"

	"github.com/development-sample/eceta.com/internal/httpx"
)

// writeError answers htmx and API callers with the JSON envelope and browsers with plain text.
func writeError(w http.ResponseWriter, r *http.Request, code int, errCode, msg string) {
	if IsHTMX(r.Context()) || wantsJSON(r) {
		httpx.WriteError(r.Context(), w, httpx.NewError(errCode, msg, code))
		return
	}
	http.Error(w, msg, code)
}

func wantsJSON(r *http.Request) bool {
	return strings.HasPrefix(r.Header.Get("Content-Type"), "application/json")
}
