// file: internals/features/social/media/route/media_route.go
package route

import (
	controller "soundgalore_backend/internals/features/social/media/controller"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// MediaUserRoutes mounts the media library endpoints.
// Base: /api/u
func MediaUserRoutes(userGroup fiber.Router, db *gorm.DB) {
	mediaController := controller.NewMediaController(db)

	userGroup.Post("/media", mediaController.Attach)
	userGroup.Get("/media", mediaController.ListMine)
	userGroup.Get("/media/:id", mediaController.GetByID)
}
