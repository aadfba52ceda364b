// internals/features/users/auth/service/token_service.go
package service

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"

	"elevencentral_backend/internals/configs"
	userModel "elevencentral_backend/internals/features/users/user/model"
)

const (
	AccessTokenTTL  = 15 * time.Minute
	RefreshTokenTTL = 7 * 24 * time.Hour
)

var ErrInvalidToken = errors.New("invalid token")

// CreateAccessToken signs a short-lived access token carrying the identity
// claims the middleware and /me fallback rely on.
func CreateAccessToken(u *userModel.UserModel) (string, error) {
	now := time.Now()
	claims := jwt.MapClaims{
		"sub":       u.UserID.String(),
		"user_id":   u.UserID.String(),
		"role":      u.UserRole,
		"full_name": u.UserFullName,
		"typ":       "access",
		"iat":       now.Unix(),
		"exp":       now.Add(AccessTokenTTL).Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(configs.JWTSecret))
}

func CreateRefreshToken(u *userModel.UserModel) (string, time.Time, error) {
	now := time.Now()
	expiresAt := now.Add(RefreshTokenTTL)
	claims := jwt.MapClaims{
		"sub":     u.UserID.String(),
		"user_id": u.UserID.String(),
		"typ":     "refresh",
		"jti":     uuid.NewString(),
		"iat":     now.Unix(),
		"exp":     expiresAt.Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(configs.JWTRefreshSecret))
	return signed, expiresAt, err
}

// ParseRefreshToken verifies the signature and expiry of a refresh token
// and returns the user ID it was issued to.
func ParseRefreshToken(raw string) (uuid.UUID, error) {
	claims := jwt.MapClaims{}
	token, err := jwt.ParseWithClaims(raw, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrInvalidToken
		}
		return []byte(configs.JWTRefreshSecret), nil
	})
	if err != nil || !token.Valid {
		return uuid.Nil, ErrInvalidToken
	}
	if typ, _ := claims["typ"].(string); typ != "refresh" {
		return uuid.Nil, ErrInvalidToken
	}
	raw, ok := claims["user_id"].(string)
	if !ok {
		return uuid.Nil, ErrInvalidToken
	}
	id, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, ErrInvalidToken
	}
	return id, nil
}
