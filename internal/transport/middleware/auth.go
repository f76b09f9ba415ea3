package middleware

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/heartmarshall/lingreader-backend/internal/domain"
	"github.com/heartmarshall/lingreader-backend/pkg/ctxutil"
)

// tokenVerifier checks an access token and returns the identity it carries.
type tokenVerifier interface {
	Verify(token string) (domain.ClaimsUser, error)
}

// Auth returns middleware that resolves the Bearer token into a user
// identity stored in the request context. Requests without credentials pass
// through anonymous; each handler decides whether identity is required. A
// present but unverifiable token is rejected here, so a stale session never
// falls back to anonymous access.
func Auth(verifier tokenVerifier) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token := extractBearerToken(r)
			if token == "" {
				next.ServeHTTP(w, r) // Anonymous
				return
			}

			claims, err := verifier.Verify(token)
			if err != nil {
				message := "token invalid"
				if errors.Is(err, domain.ErrTokenExpired) {
					message = "token expired"
				}
				writeUnauthorized(w, message)
				return
			}

			ctx := ctxutil.WithUserID(r.Context(), claims.ID)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// extractBearerToken returns the credential from an "Authorization: Bearer"
// header, or "" when the header is absent or uses another scheme. The scheme
// name is case-insensitive.
func extractBearerToken(r *http.Request) string {
	h := r.Header.Get("Authorization")
	if h == "" {
		return ""
	}
	parts := strings.SplitN(h, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return ""
	}
	return parts[1]
}

// writeUnauthorized emits the same JSON error envelope the REST handlers use.
func writeUnauthorized(w http.ResponseWriter, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusUnauthorized)
	json.NewEncoder(w).Encode(map[string]string{"error": message}) //nolint:errcheck
}
