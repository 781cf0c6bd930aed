package middleware

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"healthsync-backend/internal/config"
)

// ErrInvalidOrExpiredToken covers every verification failure: bad signature,
// malformed token, or past expiry. The cases are deliberately not
// distinguishable to the caller.
var ErrInvalidOrExpiredToken = errors.New("invalid or expired token")

// TokenClaims represents the claims in the access token
type TokenClaims struct {
	PatientID string `json:"patient_id"`
	Name      string `json:"name,omitempty"`
	jwt.RegisteredClaims
}

// GenerateToken mints an HS256 access token for the given patient,
// expiring AccessTokenTTL after issuance.
func GenerateToken(patientID, name string, cfg *config.JWTConfig) (string, error) {
	claims := TokenClaims{
		PatientID: patientID,
		Name:      name,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(cfg.AccessTokenTTL)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(cfg.Secret))
}

// ValidateToken checks signature and expiry and returns the claims.
func ValidateToken(tokenString string, cfg *config.JWTConfig) (*TokenClaims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &TokenClaims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrInvalidOrExpiredToken
		}
		return []byte(cfg.Secret), nil
	})

	if err != nil {
		return nil, ErrInvalidOrExpiredToken
	}

	claims, ok := token.Claims.(*TokenClaims)
	if !ok || !token.Valid {
		return nil, ErrInvalidOrExpiredToken
	}

	return claims, nil
}
