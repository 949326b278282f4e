package httpx

import "net/http"

// DefaultMaxBodyBytes is used when BodyLimit is given a non-positive limit.
const DefaultMaxBodyBytes int64 = 1 << 20

// BodyLimit caps request bodies at maxBytes.
func BodyLimit(maxBytes int64) Middleware {
	if maxBytes <= 0 {
		maxBytes = DefaultMaxBodyBytes
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.ContentLength > maxBytes {
				WriteError(w, http.StatusRequestEntityTooLarge, r.ContentLength,
					"O corpo da requisição é muito grande", "body")
				return
			}

			r.Body = http.MaxBytesReader(w, r.Body, maxBytes)
			next.ServeHTTP(w, r)
		})
	}
}
