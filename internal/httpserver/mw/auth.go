package mw

import (
	"context"
	"net/http"
	"strings"

	"github.com/MrSnakeDoc/backoffice/internal/auth"
	"github.com/MrSnakeDoc/backoffice/internal/logger"
)

type claimsKey struct{}

// ClaimsFrom returns the verified token claims of the request.
func ClaimsFrom(ctx context.Context) (auth.Claims, bool) {
	c, ok := ctx.Value(claimsKey{}).(auth.Claims)
	return c, ok
}

// Verifier checks bearer tokens.
type Verifier interface {
	Verify(token string) (auth.Claims, error)
}

// RequireAuth rejects requests without a valid "Authorization: Bearer"
// header with 401.
func RequireAuth(v Verifier, log logger.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			raw, ok := bearer(r.Header.Get("Authorization"))
			if !ok {
				WriteMessage(w, http.StatusUnauthorized, "Unauthorized. Please log in again.")
				return
			}
			claims, err := v.Verify(raw)
			if err != nil {
				log.Debug("bearer token rejected", logger.String("path", r.URL.Path), logger.Error(err))
				WriteMessage(w, http.StatusUnauthorized, "Unauthorized. Please log in again.")
				return
			}
			next.ServeHTTP(w, r.WithContext(context.WithValue(r.Context(), claimsKey{}, claims)))
		})
	}
}

func bearer(h string) (string, bool) {
	scheme, token, ok := strings.Cut(strings.TrimSpace(h), " ")
	if !ok || !strings.EqualFold(scheme, "Bearer") {
		return "", false
	}
	token = strings.TrimSpace(token)
	return token, token != ""
}
