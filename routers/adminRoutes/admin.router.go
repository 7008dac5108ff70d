package adminRoutes

import (
	adminController "placementpulse/controllers/admin"
	authController "placementpulse/controllers/auth"
	"placementpulse/middleware"
	adminValidator "placementpulse/validators/admin"
	authValidator "placementpulse/validators/auth"
	courseValidator "placementpulse/validators/course"

	"github.com/gofiber/fiber/v2"
)

// SetupAdminRoutes sets up all admin panel routes. Everything except login is
// gated by the admin session check.
func SetupAdminRoutes(app *fiber.App) {
	adminGroup := app.Group("/api/admin")

	// Session
	adminGroup.Post("/login", authValidator.AdminLogin(), authController.AdminLogin)
	adminGroup.Post("/logout", authController.AdminLogout)

	// Course CRUD
	courseGroup := adminGroup.Group("/courses", middleware.AdminMiddleware)
	courseGroup.Post("/", adminValidator.CreateCourse(), adminController.CreateCourse)
	courseGroup.Get("/", adminValidator.ListQuery(), adminController.GetAllCourses)
	courseGroup.Get("/:id", courseValidator.CourseID(), adminController.GetCourse)
	courseGroup.Put("/:id", courseValidator.CourseID(), adminValidator.UpdateCourse(), adminController.UpdateCourse)
	courseGroup.Delete("/:id", courseValidator.CourseID(), adminController.DeleteCourse)

	// Materials
	courseGroup.Post("/:id/materials", courseValidator.CourseID(), adminValidator.CreateMaterial(), adminController.CreateMaterial)
	courseGroup.Get("/:id/materials", courseValidator.CourseID(), adminController.GetCourseMaterials)

	materialGroup := adminGroup.Group("/materials", middleware.AdminMiddleware)
	materialGroup.Put("/:id", adminValidator.EntityID("id", "materialID"), adminValidator.UpdateMaterial(), adminController.UpdateMaterial)
	materialGroup.Delete("/:id", adminValidator.EntityID("id", "materialID"), adminController.DeleteMaterial)

	// Announcements
	announcementGroup := adminGroup.Group("/announcements", middleware.AdminMiddleware)
	announcementGroup.Post("/", adminValidator.CreateAnnouncement(), adminController.CreateAnnouncement)
	announcementGroup.Get("/", adminController.GetAnnouncements)
	announcementGroup.Delete("/:id", adminValidator.EntityID("id", "announcementID"), adminController.DeactivateAnnouncement)

	// GD topics
	topicGroup := adminGroup.Group("/gd-topics", middleware.AdminMiddleware)
	topicGroup.Post("/", adminValidator.GDTopic(), adminController.CreateGDTopic)
	topicGroup.Put("/:id", adminValidator.EntityID("id", "topicID"), adminValidator.GDTopic(), adminController.UpdateGDTopic)
	topicGroup.Delete("/:id", adminValidator.EntityID("id", "topicID"), adminController.DeleteGDTopic)

	// Students
	studentGroup := adminGroup.Group("/students", middleware.AdminMiddleware)
	studentGroup.Get("/", adminValidator.ListQuery(), adminController.GetStudents)
	studentGroup.Get("/:id", adminValidator.EntityID("id", "studentID"), adminController.GetStudent)
	studentGroup.Put("/:id", adminValidator.EntityID("id", "studentID"), adminValidator.UpdateStudent(), adminController.UpdateStudent)
	studentGroup.Delete("/:id", adminValidator.EntityID("id", "studentID"), adminController.DeleteStudent)
	studentGroup.Post("/:id/enrollments", adminValidator.EntityID("id", "studentID"), adminValidator.EnrollStudent(), adminController.EnrollStudent)

	// Payments and reconciliation
	adminGroup.Get("/payments", middleware.AdminMiddleware, adminValidator.ListQuery(), adminController.GetPayments)
	adminGroup.Get("/pending-enrollments", middleware.AdminMiddleware, adminValidator.ListQuery(), adminController.GetPendingEnrollments)

	// Uploads
	adminGroup.Post("/upload", middleware.AdminMiddleware, adminController.UploadImage)
}
