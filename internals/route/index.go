// file: internals/route/index.go
package routes

import (
	"log"

	rateLimiter "soundgalore_backend/internals/middlewares"
	authMiddleware "soundgalore_backend/internals/middlewares/auth"
	routeDetails "soundgalore_backend/internals/route/details"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func SetupRoutes(app *fiber.App, db *gorm.DB) {
	// ===================== PUBLIC =====================
	log.Println("[INFO] Setting up AuthRoutes...")
	routeDetails.AuthRoutes(app, db)

	// ===================== PRIVATE (USER) =====================
	log.Println("[INFO] Setting up PRIVATE group /api/u ...")
	userGroup := app.Group("/api/u",
		rateLimiter.GlobalRateLimiter(),
		authMiddleware.AuthMiddleware(db),
	)

	log.Println("[INFO] Mounting identity routes...")
	routeDetails.AuthUserRoutes(userGroup, db)
	routeDetails.UserRoutes(userGroup, db)

	log.Println("[INFO] Mounting social routes...")
	routeDetails.SocialRoutes(userGroup, db)

	log.Println("[INFO] Mounting feed routes...")
	routeDetails.FeedRoutes(userGroup, db)
}
