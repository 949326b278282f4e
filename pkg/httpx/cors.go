package httpx

import (
	"net/http"
	"strings"
)

var (
	corsAllowedMethods = []string{"GET", "POST", "PUT", "DELETE", "PATCH", "OPTIONS"}
	corsAllowedHeaders = []string{"Accept", "Authorization", "Content-Type", "X-Request-ID"}
	corsExposedHeaders = []string{"X-Request-ID", "Retry-After"}
)

// CORS handles Cross-Origin Resource Sharing for the given origins. An empty
// list or "*" allows any origin; entries like "*.example.com" match
// subdomains only.
func CORS(allowedOrigins []string) Middleware {
	if len(allowedOrigins) == 0 {
		allowedOrigins = []string{"*"}
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			origin := r.Header.Get("Origin")
			allowed := IsOriginAllowed(origin, allowedOrigins)

			if allowed {
				w.Header().Set("Access-Control-Allow-Origin", origin)
				w.Header().Add("Vary", "Origin")
			}

			// Preflight
			if r.Method == http.MethodOptions && r.Header.Get("Access-Control-Request-Method") != "" {
				w.Header().Set("Access-Control-Allow-Methods", strings.Join(corsAllowedMethods, ", "))
				w.Header().Set("Access-Control-Allow-Headers", strings.Join(corsAllowedHeaders, ", "))
				w.Header().Set("Access-Control-Max-Age", "3600")
				w.WriteHeader(http.StatusNoContent)
				return
			}

			if allowed {
				w.Header().Set("Access-Control-Expose-Headers", strings.Join(corsExposedHeaders, ", "))
			}

			next.ServeHTTP(w, r)
		})
	}
}

// IsOriginAllowed reports whether origin matches one of the allowed entries.
func IsOriginAllowed(origin string, allowedOrigins []string) bool {
	if origin == "" {
		return false
	}

	for _, allowed := range allowedOrigins {
		if allowed == "*" || allowed == origin {
			return true
		}
		// *.example.com matches app.example.com but not example.com
		if domain, ok := strings.CutPrefix(allowed, "*."); ok {
			prefix, found := strings.CutSuffix(origin, domain)
			if found && prefix != "" && strings.HasSuffix(prefix, ".") {
				return true
			}
		}
	}

	return false
}

// ParseOrigins splits a comma separated origin list.
func ParseOrigins(s string) []string {
	var out []string
	for _, o := range strings.Split(s, ",") {
		if o = strings.TrimSpace(o); o != "" {
			out = append(out, o)
		}
	}
	return out
}
