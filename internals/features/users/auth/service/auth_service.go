// file: internals/features/users/auth/service/auth_service.go
package service

import (
	"strings"
	"time"

	googleAuthIDTokenVerifier "github.com/futurenda/google-auth-id-token-verifier"
	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"
	"gorm.io/gorm"

	"soundgalore_backend/internals/apperr"
	"soundgalore_backend/internals/configs"
	authHelper "soundgalore_backend/internals/features/users/auth/helper"
	userModel "soundgalore_backend/internals/features/users/user/model"
	userRepo "soundgalore_backend/internals/features/users/user/repository"
)

/* ==========================
   Identity Store operations
========================== */

// RegisterUser creates one identity row. Field validation has already run at
// the DTO; here the only failure modes are uniqueness conflicts and storage
// errors. The raw secret is hashed before it touches the store and is never
// logged.
func RegisterUser(db *gorm.DB, username, email, password string) (*userModel.UserModel, error) {
	hash, err := authHelper.HashPassword(password)
	if err != nil {
		return nil, apperr.Internal(err)
	}
	return userRepo.CreateUser(db, username, email, hash)
}

// VerifyCredentials: AuthError on unknown username as well as on a wrong
// secret, so the response does not reveal which one was off.
func VerifyCredentials(db *gorm.DB, username, password string) (*userModel.UserModel, error) {
	user, err := userRepo.FindUserByUsername(db, username)
	if err != nil {
		if apperr.Is(err, apperr.KindNotFound) {
			return nil, apperr.Auth("invalid credentials")
		}
		return nil, err
	}
	if err := authHelper.CheckPasswordHash(user.Password, password); err != nil {
		return nil, apperr.Auth("invalid credentials")
	}
	return user, nil
}

// RotatePassword is the one mutation an identity permits after creation.
func RotatePassword(db *gorm.DB, user *userModel.UserModel, current, next string) error {
	if err := authHelper.CheckPasswordHash(user.Password, current); err != nil {
		return apperr.Auth("current password incorrect")
	}
	hash, err := authHelper.HashPassword(next)
	if err != nil {
		return apperr.Internal(err)
	}
	return userRepo.UpdateUserPassword(db, user.ID, hash)
}

/* ==========================
   Google sign-in
========================== */

// VerifyGoogleIDToken checks the client-supplied Google ID token and returns
// the matching identity. Accounts are keyed by email here; registration
// still goes through RegisterUser.
func VerifyGoogleIDToken(db *gorm.DB, idToken string) (*userModel.UserModel, error) {
	clientID := strings.TrimSpace(configs.GoogleClientID)
	if clientID == "" {
		return nil, apperr.Auth("google sign-in is not configured")
	}

	v := googleAuthIDTokenVerifier.Verifier{}
	if err := v.VerifyIDToken(idToken, []string{clientID}); err != nil {
		return nil, apperr.Auth("invalid google token")
	}
	claims, err := googleAuthIDTokenVerifier.Decode(idToken)
	if err != nil || strings.TrimSpace(claims.Email) == "" {
		return nil, apperr.Auth("invalid google token")
	}

	var user userModel.UserModel
	if err := db.First(&user, "user_email = ?", claims.Email).Error; err != nil {
		return nil, apperr.NotFound("no account for this google identity")
	}
	return &user, nil
}

/* ==========================
   Logout
========================== */

// RevokeAccessToken parses the raw token just far enough to learn its expiry
// and blacklists it until then.
func RevokeAccessToken(db *gorm.DB, raw string) error {
	secret, err := getJWTSecret()
	if err != nil {
		return err
	}
	tok, err := jwt.Parse(raw, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fiber.NewError(fiber.StatusUnauthorized, "invalid signing method")
		}
		return []byte(secret), nil
	})
	if err != nil || !tok.Valid {
		return apperr.Auth("invalid token")
	}

	expiredAt := time.Now().UTC().Add(AccessTTL)
	if claims, ok := tok.Claims.(jwt.MapClaims); ok {
		if exp, ok := claims["exp"].(float64); ok {
			expiredAt = time.Unix(int64(exp), 0).UTC()
		}
	}
	return BlacklistToken(db, raw, expiredAt)
}
