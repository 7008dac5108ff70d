package courseRoutes

import (
	controllers "placementpulse/controllers/course"
	"placementpulse/middleware"
	validators "placementpulse/validators/course"

	"github.com/gofiber/fiber/v2"
)

// SetupCourseRoutes sets up the public catalog and enrolled-student content
// routes
func SetupCourseRoutes(app *fiber.App) {
	courseGroup := app.Group("/api/courses")

	// Catalog (public)
	courseGroup.Get("/", controllers.GetAllCourses)
	courseGroup.Get("/:id", validators.CourseID(), controllers.GetCourseDetails)
	courseGroup.Get("/:id/price", validators.CourseID(), controllers.GetCoursePrice)

	// Content for enrolled students
	courseGroup.Get("/:id/materials", middleware.JWTMiddleware, validators.CourseID(), controllers.GetCourseMaterials)
	courseGroup.Get("/:id/announcements", middleware.JWTMiddleware, validators.CourseID(), controllers.GetCourseAnnouncements)
}
