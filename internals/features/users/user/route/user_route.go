// file: internals/features/users/user/route/user_route.go
package route

import (
	controller "soundgalore_backend/internals/features/users/user/controller"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// UserUserRoutes mounts profile endpoints for logged-in users.
// Base: /api/u
func UserUserRoutes(userGroup fiber.Router, db *gorm.DB) {
	userController := controller.NewUserController(db)

	userGroup.Get("/users/by-username/:username", userController.GetByUsername)
	userGroup.Get("/users/:id", userController.GetByID)
	userGroup.Post("/users/change-password", userController.ChangePassword)
	userGroup.Delete("/users/me", userController.DeleteMe)
}
