package details

import (
	feedRoute "soundgalore_backend/internals/features/social/feed/route"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func FeedRoutes(userGroup fiber.Router, db *gorm.DB) {
	feedRoute.FeedUserRoutes(userGroup, db)
}
