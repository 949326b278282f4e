package httpx

import (
	"net/http"
	"strings"

	"github.com/aussiebroadwan/myvehicles/pkg/jwtx"
	"github.com/aussiebroadwan/myvehicles/pkg/slogx"
)

// AuthnMiddleware rejects requests without a valid bearer token. On success
// the token subject and claims are injected into the request context.
func AuthnMiddleware(v jwtx.Verifier) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := r.Context()
			log := slogx.FromContext(ctx)

			authz := r.Header.Get("Authorization")
			if authz == "" || !strings.HasPrefix(authz, "Bearer ") {
				writeBearerError(w, "missing bearer token", "Token de acesso não informado")
				return
			}
			raw := strings.TrimSpace(strings.TrimPrefix(authz, "Bearer"))

			claims, err := v.Verify(raw)
			if err != nil {
				log.Warn("jwt verify failed", "err", err)
				writeBearerError(w, "token verification failed", "Token de acesso inválido ou expirado")
				return
			}

			if claims.UserID() == "" {
				writeBearerError(w, "token has no subject", "Token de acesso inválido ou expirado")
				return
			}

			ctx = contextWithAuth(ctx, claims)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// RFC 6750-compliant error response for bearer auth, with the usual error
// envelope as body.
func writeBearerError(w http.ResponseWriter, desc, msg string) {
	w.Header().Set("WWW-Authenticate", `Bearer error="invalid_token", error_description="`+desc+`"`)
	WriteError(w, http.StatusUnauthorized, "", msg, "token")
}
