package service

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v4"

	"mudarris_backend/internals/configs"
	authModel "mudarris_backend/internals/features/users/auth/model"
)

const AccessTokenTTL = 12 * time.Hour

// IssueAccessToken signs an access JWT for a teacher account. The middleware
// expects `id` and `exp`; `user_name` is carried for display.
func IssueAccessToken(user *authModel.UserModel) (string, error) {
	if configs.JWTSecret == "" {
		return "", errors.New("JWT secret not configured")
	}
	claims := jwt.MapClaims{
		"id":        user.ID.String(),
		"user_name": user.UserName,
		"exp":       time.Now().Add(AccessTokenTTL).Unix(),
		"iat":       time.Now().Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(configs.JWTSecret))
}
