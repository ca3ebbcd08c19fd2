package details

import (
	authRoute "soundgalore_backend/internals/features/users/auth/route"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func AuthRoutes(app *fiber.App, db *gorm.DB) {
	authRoute.AuthRoutes(app, db)
}

func AuthUserRoutes(userGroup fiber.Router, db *gorm.DB) {
	authRoute.AuthUserRoutes(userGroup, db)
}
