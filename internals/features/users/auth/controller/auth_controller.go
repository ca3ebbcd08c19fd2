// file: internals/features/users/auth/controller/auth_controller.go
package controller

import (
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"soundgalore_backend/internals/features/users/auth/dto"
	authService "soundgalore_backend/internals/features/users/auth/service"
	userDTO "soundgalore_backend/internals/features/users/user/dto"
	userRepo "soundgalore_backend/internals/features/users/user/repository"
	helper "soundgalore_backend/internals/helpers"
)

type AuthController struct {
	DB        *gorm.DB
	Validator *validator.Validate
}

func NewAuthController(db *gorm.DB) *AuthController {
	return &AuthController{DB: db, Validator: validator.New()}
}

func fieldErrors(err error) map[string][]string {
	out := map[string][]string{}
	if ve, ok := err.(validator.ValidationErrors); ok {
		for _, fe := range ve {
			out[fe.Field()] = append(out[fe.Field()], fe.Tag())
		}
	}
	return out
}

// =====================================================
// POST /auth/register
// =====================================================
func (ctl *AuthController) Register(c *fiber.Ctx) error {
	var req dto.RegisterRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := ctl.Validator.Struct(&req); err != nil {
		return helper.JsonValidationError(c, fieldErrors(err))
	}

	user, err := authService.RegisterUser(
		ctl.DB.WithContext(c.Context()),
		strings.TrimSpace(req.UserName),
		strings.TrimSpace(req.Email),
		req.Password,
	)
	if err != nil {
		return helper.JsonAppError(c, err)
	}
	return helper.JsonCreated(c, "User registered", userDTO.ToUserDTO(*user))
}

// =====================================================
// POST /auth/login
// =====================================================
func (ctl *AuthController) Login(c *fiber.Ctx) error {
	var req dto.LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := ctl.Validator.Struct(&req); err != nil {
		return helper.JsonValidationError(c, fieldErrors(err))
	}

	user, err := authService.VerifyCredentials(ctl.DB.WithContext(c.Context()), req.UserName, req.Password)
	if err != nil {
		return helper.JsonAppError(c, err)
	}
	return ctl.issueTokens(c, user.ID, user.UserName)
}

// =====================================================
// POST /auth/login-google — ID token from the client SDK
// =====================================================
func (ctl *AuthController) GoogleLogin(c *fiber.Ctx) error {
	var req dto.GoogleLoginRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := ctl.Validator.Struct(&req); err != nil {
		return helper.JsonValidationError(c, fieldErrors(err))
	}

	user, err := authService.VerifyGoogleIDToken(ctl.DB.WithContext(c.Context()), req.IDToken)
	if err != nil {
		return helper.JsonAppError(c, err)
	}
	return ctl.issueTokens(c, user.ID, user.UserName)
}

func (ctl *AuthController) issueTokens(c *fiber.Ctx, userID uuid.UUID, username string) error {
	access, err := authService.CreateAccessToken(userID, username)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "failed to issue access token")
	}
	refresh, err := authService.CreateRefreshToken(userID)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "failed to issue refresh token")
	}
	return helper.JsonOK(c, "Logged in", dto.TokenPairDTO{
		AccessToken:  access,
		RefreshToken: refresh,
	})
}

// =====================================================
// POST /auth/logout — blacklist the presented token
// =====================================================
func (ctl *AuthController) Logout(c *fiber.Ctx) error {
	raw := ""
	if authz := strings.TrimSpace(c.Get(fiber.HeaderAuthorization)); strings.HasPrefix(strings.ToLower(authz), "bearer ") {
		raw = strings.TrimSpace(authz[7:])
	}
	if raw == "" {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Unauthorized")
	}
	if err := authService.RevokeAccessToken(ctl.DB.WithContext(c.Context()), raw); err != nil {
		return helper.JsonAppError(c, err)
	}
	return helper.JsonOK(c, "Logged out", nil)
}

// =====================================================
// GET /api/u/me
// =====================================================
func (ctl *AuthController) Me(c *fiber.Ctx) error {
	uid, err := helper.GetUserUUID(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Unauthorized")
	}
	user, err := userRepo.FindUserByID(ctl.DB.WithContext(c.Context()), uid)
	if err != nil {
		return helper.JsonAppError(c, err)
	}
	return helper.JsonOK(c, "", userDTO.ToUserDTO(*user))
}
