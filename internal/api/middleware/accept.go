package middleware

import (
	"net/http"
	"strings"

	"github.com/tsimard/playerdex/internal/api/apierr"
)

// Accepts creates middleware rejecting requests whose Accept header rules out
// the endpoint's only media type
func Accepts(mimeType string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if !accepts(r.Header.Get("Accept"), mimeType) {
				apierr.WriteError(w, apierr.NewNotAcceptableError(mimeType))
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

// accepts reports whether an Accept header admits the given media type. An
// absent header admits everything; quality factors are ignored.
func accepts(header, mimeType string) bool {
	if header == "" {
		return true
	}

	prefix, _, _ := strings.Cut(mimeType, "/")

	for _, part := range strings.Split(header, ",") {
		entry, _, _ := strings.Cut(strings.TrimSpace(part), ";")
		entry = strings.TrimSpace(entry)

		if entry == "*/*" || entry == mimeType || entry == prefix+"/*" {
			return true
		}
	}

	return false
}
