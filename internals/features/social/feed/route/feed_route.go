// file: internals/features/social/feed/route/feed_route.go
package route

import (
	controller "soundgalore_backend/internals/features/social/feed/controller"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// FeedUserRoutes mounts the home feed.
// Base: /api/u
func FeedUserRoutes(userGroup fiber.Router, db *gorm.DB) {
	feedController := controller.NewFeedController(db)

	userGroup.Get("/feed", feedController.GetFeed)
}
