package middleware

import (
	"crypto/subtle"
	"net/http"
)

// APIKeyHeader carries the administration key
const APIKeyHeader = "X-API-Key"

// APIKey requires the X-API-Key header to match apiKey
//
// An empty apiKey rejects every request.
func APIKey(apiKey string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			provided := r.Header.Get(APIKeyHeader)
			if apiKey == "" || provided == "" || subtle.ConstantTimeCompare([]byte(provided), []byte(apiKey)) != 1 {
				writeError(w, http.StatusUnauthorized, "invalid or missing API key")
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
