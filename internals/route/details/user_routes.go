package details

import (
	userRoute "soundgalore_backend/internals/features/users/user/route"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func UserRoutes(userGroup fiber.Router, db *gorm.DB) {
	userRoute.UserUserRoutes(userGroup, db)
}
