// file: internals/features/users/auth/route/auth_route.go
package route

import (
	controller "soundgalore_backend/internals/features/users/auth/controller"
	rateLimiter "soundgalore_backend/internals/middlewares"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// AuthRoutes mounts the public auth surface.
// Base: /auth
func AuthRoutes(app *fiber.App, db *gorm.DB) {
	authController := controller.NewAuthController(db)

	baseAuth := app.Group("/auth", rateLimiter.GlobalRateLimiter())

	baseAuth.Post("/register", rateLimiter.RegisterRateLimiter(), authController.Register)
	baseAuth.Post("/login", rateLimiter.LoginRateLimiter(), authController.Login)
	baseAuth.Post("/login-google", rateLimiter.LoginRateLimiter(), authController.GoogleLogin)

	// Logout reads its own bearer token, so it stays on the public group.
	baseAuth.Post("/logout", authController.Logout)
}

// AuthUserRoutes mounts the authenticated identity endpoints.
// Base: /api/u
func AuthUserRoutes(userGroup fiber.Router, db *gorm.DB) {
	authController := controller.NewAuthController(db)

	userGroup.Get("/me", authController.Me)
}
