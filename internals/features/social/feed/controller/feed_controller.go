// file: internals/features/social/feed/controller/feed_controller.go
package controller

import (
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"soundgalore_backend/internals/features/social/feed/dto"
	"soundgalore_backend/internals/features/social/feed/service"
	helper "soundgalore_backend/internals/helpers"
)

/* ==============================
   Controller
============================== */

type FeedController struct {
	DB *gorm.DB
}

func NewFeedController(db *gorm.DB) *FeedController {
	return &FeedController{DB: db}
}

/* ==============================
   Handlers
============================== */

// GET /api/u/feed?limit=&cursor= — reverse-chronological home feed
func (ctl *FeedController) GetFeed(c *fiber.Ctx) error {
	uid, err := helper.GetUserUUID(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Unauthorized")
	}

	limit := 0
	if raw := strings.TrimSpace(c.Query("limit")); raw != "" {
		limit, err = strconv.Atoi(raw)
		if err != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, "Invalid limit")
		}
	}

	cursor, err := helper.ParseFeedCursor(c.Query("cursor"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	q := dto.FeedQuery{ViewerID: uid, Limit: limit, Cursor: cursor}
	q.Normalize()

	page, err := service.NewFeedService(ctl.DB.WithContext(c.Context())).GetFeed(q)
	if err != nil {
		return helper.JsonAppError(c, err)
	}
	return helper.JsonOK(c, "Feed", page)
}
