package middleware

import (
	"log/slog"
	"net/http"

	"github.com/iudanet/snipkeeper/internal/server/handlers"
)

// Auth проверяет JWT access token и кладёт пользователя в контекст запроса
func Auth(logger *slog.Logger, jwtConfig handlers.JWTConfig) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			tokenString, err := handlers.BearerToken(r)
			if err != nil {
				logger.WarnContext(r.Context(), "missing bearer token", "path", r.URL.Path)
				writeError(w, "missing or malformed bearer token", http.StatusUnauthorized)
				return
			}

			claims, err := handlers.ValidateAccessToken(jwtConfig, tokenString)
			if err != nil {
				logger.WarnContext(r.Context(), "invalid access token", "error", err)
				writeError(w, "invalid or expired access token", http.StatusUnauthorized)
				return
			}

			setRequestUser(r.Context(), claims.UserID)
			ctx := handlers.WithUser(r.Context(), claims.UserID, claims.Username)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
