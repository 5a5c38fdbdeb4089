package middleware

import (
	"context"
	"net/http"

	"github.com/tsimard/playerdex/internal/api/apierr"
	"github.com/tsimard/playerdex/internal/schema"
)

const schemeContextKey contextKey = "scheme"

// Scheme resolves the external scheme of the request for link building. A
// fronting proxy's X-Forwarded-Proto wins over the connection itself, but a
// value other than http or https is a client error.
func Scheme(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		scheme := "http"
		if r.TLS != nil {
			scheme = "https"
		}

		if forwarded := r.Header.Get("X-Forwarded-Proto"); forwarded != "" {
			proto, err := schema.ParseProtocol(forwarded)
			if err != nil {
				apierr.WriteError(w, err)
				return
			}
			scheme = proto
		}

		ctx := context.WithValue(r.Context(), schemeContextKey, scheme)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// GetScheme returns the resolved request scheme from the context
func GetScheme(ctx context.Context) string {
	if scheme, ok := ctx.Value(schemeContextKey).(string); ok {
		return scheme
	}
	return "http"
}
