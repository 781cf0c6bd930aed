package middleware

import (
	"context"
	"net/http"
	"strings"

	"healthsync-backend/internal/config"
	"healthsync-backend/internal/utils"
)

type contextKey string

const (
	// PatientIDKey holds the authenticated patient id in the request context
	PatientIDKey contextKey = "patient_id"
	// PatientNameKey holds the authenticated patient's name, if present in the token
	PatientNameKey contextKey = "patient_name"
)

// PatientIDFromContext returns the authenticated patient id bound by
// AuthMiddleware.
func PatientIDFromContext(ctx context.Context) (string, bool) {
	id, ok := ctx.Value(PatientIDKey).(string)
	return id, ok
}

// AuthMiddleware gates a handler behind a Bearer token in the
// Authorization header. On success the verified patient identity is bound
// into the request context for downstream handlers.
func AuthMiddleware(next http.HandlerFunc, cfg *config.JWTConfig) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		authHeader := r.Header.Get("Authorization")
		if authHeader == "" {
			utils.WriteErrorResponse(w, http.StatusUnauthorized, "Token missing", "Authorization header required")
			return
		}

		// Extract token from "Bearer <token>"
		tokenParts := strings.Split(authHeader, " ")
		if len(tokenParts) != 2 || tokenParts[0] != "Bearer" {
			utils.WriteErrorResponse(w, http.StatusUnauthorized, "Token missing", "Expected Authorization: Bearer <token>")
			return
		}

		claims, err := ValidateToken(tokenParts[1], cfg)
		if err != nil {
			utils.WriteErrorResponse(w, http.StatusUnauthorized, "Invalid or expired token", "")
			return
		}

		ctx := context.WithValue(r.Context(), PatientIDKey, claims.PatientID)
		ctx = context.WithValue(ctx, PatientNameKey, claims.Name)

		next.ServeHTTP(w, r.WithContext(ctx))
	}
}
