package chi

import (
	"context"
	"net/http"
	"strings"
)

// exemptPaths are routes that bypass authentication (health, metrics).
var exemptPaths = map[string]struct{}{
	"/health":  {},
	"/metrics": {},
}

type privilegedKey struct{}

// WithPrivileged marks ctx as carrying the privileged listing capability.
func WithPrivileged(ctx context.Context) context.Context {
	return context.WithValue(ctx, privilegedKey{}, true)
}

// Privileged reports whether the caller may see non-public listings.
func Privileged(ctx context.Context) bool {
	v, _ := ctx.Value(privilegedKey{}).(bool)
	return v
}

// BearerAuthMiddleware returns a middleware that validates Bearer tokens.
// Premium keys are valid keys that also grant the privileged capability.
// If no keys are configured, authentication is disabled (pass-through) and no caller is privileged.
func BearerAuthMiddleware(apiKeys, premiumKeys []string) func(http.Handler) http.Handler {
	validKeys := make(map[string]bool, len(apiKeys)+len(premiumKeys))
	for _, k := range apiKeys {
		if k != "" {
			validKeys[k] = false
		}
	}
	for _, k := range premiumKeys {
		if k != "" {
			validKeys[k] = true
		}
	}

	return func(next http.Handler) http.Handler {
		// Auth disabled, pass everything through
		if len(validKeys) == 0 {
			return next
		}

		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if _, ok := exemptPaths[r.URL.Path]; ok {
				next.ServeHTTP(w, r)
				return
			}

			auth := r.Header.Get("Authorization")
			if auth == "" {
				writeError(w, http.StatusUnauthorized, ErrorCodeUnauthorized, "missing authorization header")
				return
			}

			const bearerPrefix = "Bearer "
			if !strings.HasPrefix(auth, bearerPrefix) {
				writeError(w, http.StatusUnauthorized,
					ErrorCodeUnauthorized, "authorization header must use Bearer scheme")
				return
			}

			token := auth[len(bearerPrefix):]
			premium, ok := validKeys[token]
			if !ok {
				writeError(w, http.StatusUnauthorized, ErrorCodeUnauthorized, "invalid api key")
				return
			}

			if premium {
				r = r.WithContext(WithPrivileged(r.Context()))
			}
			next.ServeHTTP(w, r)
		})
	}
}
