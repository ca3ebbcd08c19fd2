// file: internals/features/users/auth/service/token_service.go
package service

import (
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"soundgalore_backend/internals/apperr"
	"soundgalore_backend/internals/configs"
	authModel "soundgalore_backend/internals/features/users/auth/model"
)

const (
	AccessTTL  = 24 * time.Hour
	RefreshTTL = 7 * 24 * time.Hour
)

func getJWTSecret() (string, error) {
	secret := strings.TrimSpace(configs.JWTSecret)
	if secret == "" {
		return "", fiber.NewError(fiber.StatusInternalServerError, "JWT_SECRET is not set")
	}
	return secret, nil
}

func getRefreshSecret() (string, error) {
	secret := strings.TrimSpace(configs.JWTRefreshSecret)
	if secret == "" {
		return "", fiber.NewError(fiber.StatusInternalServerError, "JWT_REFRESH_SECRET is not set")
	}
	return secret, nil
}

// CreateAccessToken issues the short-lived HMAC token the auth middleware
// verifies. Session/cookie plumbing beyond this is the client's concern.
func CreateAccessToken(userID uuid.UUID, username string) (string, error) {
	secret, err := getJWTSecret()
	if err != nil {
		return "", err
	}
	now := time.Now().UTC()
	claims := jwt.MapClaims{
		"id":        userID.String(),
		"user_name": username,
		"iat":       now.Unix(),
		"exp":       now.Add(AccessTTL).Unix(),
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
}

func CreateRefreshToken(userID uuid.UUID) (string, error) {
	secret, err := getRefreshSecret()
	if err != nil {
		return "", err
	}
	now := time.Now().UTC()
	claims := jwt.MapClaims{
		"id":  userID.String(),
		"typ": "refresh",
		"iat": now.Unix(),
		"exp": now.Add(RefreshTTL).Unix(),
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
}

// BlacklistToken revokes an access token until its natural expiry; the
// cleanup scheduler removes stale rows afterwards.
func BlacklistToken(db *gorm.DB, raw string, expiredAt time.Time) error {
	row := authModel.TokenBlacklistModel{Token: raw, ExpiredAt: expiredAt}
	if err := db.Create(&row).Error; err != nil {
		if apperr.IsUniqueViolation(err) {
			return nil // already revoked
		}
		return apperr.Internal(err)
	}
	return nil
}

func IsTokenBlacklisted(db *gorm.DB, raw string) (bool, error) {
	var n int64
	if err := db.Model(&authModel.TokenBlacklistModel{}).
		Where("token = ?", raw).Count(&n).Error; err != nil {
		return false, err
	}
	return n > 0, nil
}
