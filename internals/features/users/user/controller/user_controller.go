// file: internals/features/users/user/controller/user_controller.go
package controller

import (
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	authService "soundgalore_backend/internals/features/users/auth/service"
	"soundgalore_backend/internals/features/users/user/dto"
	userRepo "soundgalore_backend/internals/features/users/user/repository"
	helper "soundgalore_backend/internals/helpers"
)

type UserController struct {
	DB        *gorm.DB
	Validator *validator.Validate
}

func NewUserController(db *gorm.DB) *UserController {
	return &UserController{DB: db, Validator: validator.New()}
}

func parseUUIDParam(c *fiber.Ctx, name string) (uuid.UUID, error) {
	idStr := strings.TrimSpace(c.Params(name))
	if idStr == "" {
		return uuid.Nil, fiber.NewError(fiber.StatusBadRequest, name+" is required")
	}
	return uuid.Parse(idStr)
}

// =====================================================
// GET /api/u/users/:id
// =====================================================
func (ctl *UserController) GetByID(c *fiber.Ctx) error {
	id, err := parseUUIDParam(c, "id")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid user id")
	}
	user, err := userRepo.FindUserByID(ctl.DB.WithContext(c.Context()), id)
	if err != nil {
		return helper.JsonAppError(c, err)
	}
	return helper.JsonOK(c, "", dto.ToUserDTO(*user))
}

// =====================================================
// GET /api/u/users/by-username/:username
// =====================================================
func (ctl *UserController) GetByUsername(c *fiber.Ctx) error {
	username := strings.TrimSpace(c.Params("username"))
	if username == "" {
		return helper.JsonError(c, fiber.StatusBadRequest, "username is required")
	}
	user, err := userRepo.FindUserByUsername(ctl.DB.WithContext(c.Context()), username)
	if err != nil {
		return helper.JsonAppError(c, err)
	}
	return helper.JsonOK(c, "", dto.ToUserDTO(*user))
}

// =====================================================
// POST /api/u/users/change-password — verifier rotation, the
// one permitted identity mutation
// =====================================================
func (ctl *UserController) ChangePassword(c *fiber.Ctx) error {
	uid, err := helper.GetUserUUID(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Unauthorized")
	}

	var req dto.ChangePasswordRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := ctl.Validator.Struct(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	db := ctl.DB.WithContext(c.Context())
	user, err := userRepo.FindUserByID(db, uid)
	if err != nil {
		return helper.JsonAppError(c, err)
	}
	if err := authService.RotatePassword(db, user, req.CurrentPassword, req.NewPassword); err != nil {
		return helper.JsonAppError(c, err)
	}
	return helper.JsonUpdated(c, "Password changed", nil)
}

// =====================================================
// DELETE /api/u/users/me — account removal, full cascade
// =====================================================
func (ctl *UserController) DeleteMe(c *fiber.Ctx) error {
	uid, err := helper.GetUserUUID(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Unauthorized")
	}
	if err := userRepo.DeleteUserCascade(ctl.DB.WithContext(c.Context()), uid); err != nil {
		return helper.JsonAppError(c, err)
	}
	return helper.JsonDeleted(c, "Account deleted", fiber.Map{"user_id": uid})
}
