// file: internals/features/social/follows/controller/follow_controller.go
package controller

import (
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"soundgalore_backend/internals/features/social/follows/dto"
	followRepo "soundgalore_backend/internals/features/social/follows/repository"
	helper "soundgalore_backend/internals/helpers"
)

type FollowController struct {
	DB        *gorm.DB
	Validator *validator.Validate
}

func NewFollowController(db *gorm.DB) *FollowController {
	return &FollowController{DB: db, Validator: validator.New()}
}

func parseUUIDParam(c *fiber.Ctx, name string) (uuid.UUID, error) {
	idStr := strings.TrimSpace(c.Params(name))
	if idStr == "" {
		return uuid.Nil, fiber.NewError(fiber.StatusBadRequest, name+" is required")
	}
	return uuid.Parse(idStr)
}

// =====================================================
// POST /api/u/follows — follow the requested user
// =====================================================
func (ctl *FollowController) Follow(c *fiber.Ctx) error {
	uid, err := helper.GetUserUUID(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Unauthorized")
	}

	var req dto.FollowRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := ctl.Validator.Struct(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	edge, err := followRepo.Follow(ctl.DB.WithContext(c.Context()), uid, req.FolloweeID)
	if err != nil {
		return helper.JsonAppError(c, err)
	}
	return helper.JsonCreated(c, "Followed", dto.ToFollowDTO(*edge))
}

// =====================================================
// DELETE /api/u/follows/:followee_id
// =====================================================
func (ctl *FollowController) Unfollow(c *fiber.Ctx) error {
	uid, err := helper.GetUserUUID(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Unauthorized")
	}
	followeeID, err := parseUUIDParam(c, "followee_id")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid followee id")
	}

	if err := followRepo.Unfollow(ctl.DB.WithContext(c.Context()), uid, followeeID); err != nil {
		return helper.JsonAppError(c, err)
	}
	return helper.JsonDeleted(c, "Unfollowed", fiber.Map{
		"follow_follower_id": uid,
		"follow_followee_id": followeeID,
	})
}

// =====================================================
// GET /api/u/follows/:followee_id/status — O(1) edge check
// =====================================================
func (ctl *FollowController) Status(c *fiber.Ctx) error {
	uid, err := helper.GetUserUUID(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Unauthorized")
	}
	followeeID, err := parseUUIDParam(c, "followee_id")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid followee id")
	}

	following, err := followRepo.ExistsEdge(ctl.DB.WithContext(c.Context()), uid, followeeID)
	if err != nil {
		return helper.JsonAppError(c, err)
	}
	return helper.JsonOK(c, "Follow status", fiber.Map{"is_following": following})
}

// =====================================================
// GET /api/u/followees — fan-out, newest edge first
// =====================================================
func (ctl *FollowController) ListFollowees(c *fiber.Ctx) error {
	uid, err := helper.GetUserUUID(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Unauthorized")
	}
	db := ctl.DB.WithContext(c.Context())

	rows, err := followRepo.ListFollowees(db, uid)
	if err != nil {
		return helper.JsonAppError(c, err)
	}
	total, err := followRepo.CountFollowees(db, uid)
	if err != nil {
		return helper.JsonAppError(c, err)
	}
	return helper.JsonList(c, "Followees", rows, fiber.Map{"total": total})
}

// =====================================================
// GET /api/u/followers — fan-in, newest edge first
// =====================================================
func (ctl *FollowController) ListFollowers(c *fiber.Ctx) error {
	uid, err := helper.GetUserUUID(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Unauthorized")
	}
	db := ctl.DB.WithContext(c.Context())

	rows, err := followRepo.ListFollowers(db, uid)
	if err != nil {
		return helper.JsonAppError(c, err)
	}
	total, err := followRepo.CountFollowers(db, uid)
	if err != nil {
		return helper.JsonAppError(c, err)
	}
	return helper.JsonList(c, "Followers", rows, fiber.Map{"total": total})
}
