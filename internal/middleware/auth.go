package middleware

import (
	"context"
	"net/http"
	"strings"
)

// AccessTokenCookie is the cookie read when no Authorization header is sent
const AccessTokenCookie = "access_token"

// TokenValidator validates an access token and returns the student ID it was issued for
type TokenValidator interface {
	ValidateAccessToken(token string) (int, error)
}

// Auth requires a valid JWT access token and stores the student ID in the request context
//
// The token is read from a "Bearer" Authorization header, then from the access_token cookie.
func Auth(validator TokenValidator) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token := bearerToken(r)
			if token == "" {
				writeError(w, http.StatusUnauthorized, "authentication required")
				return
			}

			studentID, err := validator.ValidateAccessToken(token)
			if err != nil {
				writeError(w, http.StatusUnauthorized, "invalid or expired token")
				return
			}

			ctx := context.WithValue(r.Context(), studentIDKey, studentID)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// OptionalAuth stores the student ID in the request context when a valid access token is sent
//
// Requests without a token, or with a token that fails validation, are served anonymously.
func OptionalAuth(validator TokenValidator) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token := bearerToken(r)
			if token == "" {
				next.ServeHTTP(w, r)
				return
			}

			studentID, err := validator.ValidateAccessToken(token)
			if err != nil {
				next.ServeHTTP(w, r)
				return
			}

			next.ServeHTTP(w, r.WithContext(WithStudentID(r.Context(), studentID)))
		})
	}
}

// GetStudentID retrieves the authenticated student ID from context
func GetStudentID(ctx context.Context) (int, bool) {
	studentID, ok := ctx.Value(studentIDKey).(int)
	return studentID, ok
}

// WithStudentID returns a copy of ctx carrying studentID
func WithStudentID(ctx context.Context, studentID int) context.Context {
	return context.WithValue(ctx, studentIDKey, studentID)
}

func bearerToken(r *http.Request) string {
	scheme, token, ok := strings.Cut(r.Header.Get("Authorization"), " ")
	if ok && strings.EqualFold(scheme, "bearer") && token != "" {
		return strings.TrimSpace(token)
	}

	if cookie, err := r.Cookie(AccessTokenCookie); err == nil {
		return cookie.Value
	}
	return ""
}
