// file: internals/features/social/follows/route/follow_route.go
package route

import (
	controller "soundgalore_backend/internals/features/social/follows/controller"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// FollowUserRoutes mounts the follow-graph endpoints.
// Base: /api/u
func FollowUserRoutes(userGroup fiber.Router, db *gorm.DB) {
	followController := controller.NewFollowController(db)

	userGroup.Post("/follows", followController.Follow)
	userGroup.Delete("/follows/:followee_id", followController.Unfollow)
	userGroup.Get("/follows/:followee_id/status", followController.Status)
	userGroup.Get("/followees", followController.ListFollowees)
	userGroup.Get("/followers", followController.ListFollowers)
}
