package authRoutes

import (
	controllers "placementpulse/controllers/auth"
	"placementpulse/middleware"
	validators "placementpulse/validators/auth"

	"github.com/gofiber/fiber/v2"
)

// SetupAuthRoutes sets up student session routes
func SetupAuthRoutes(app *fiber.App) {
	authGroup := app.Group("/api/auth")

	authGroup.Post("/signup", validators.Signup(), controllers.Signup)
	authGroup.Post("/login", validators.Login(), controllers.Login)
	authGroup.Post("/logout", controllers.Logout)
	authGroup.Get("/me", middleware.JWTMiddleware, controllers.Me)
}
