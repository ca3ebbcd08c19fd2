package details

import (
	followRoute "soundgalore_backend/internals/features/social/follows/route"
	mediaRoute "soundgalore_backend/internals/features/social/media/route"
	postRoute "soundgalore_backend/internals/features/social/posts/route"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func SocialRoutes(userGroup fiber.Router, db *gorm.DB) {
	followRoute.FollowUserRoutes(userGroup, db)
	postRoute.PostUserRoutes(userGroup, db)
	mediaRoute.MediaUserRoutes(userGroup, db)
}
