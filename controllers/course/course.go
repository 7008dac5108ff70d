package courseController

import (
	"placementpulse/database"
	"placementpulse/middleware"
	"placementpulse/models"

	"github.com/gofiber/fiber/v2"
)

// GetAllCourses lists the active catalog.
func GetAllCourses(c *fiber.Ctx) error {
	var courses []models.Course
	err := database.Database.Db.
		Where("is_active = ? AND is_deleted = ?", true, false).
		Order("created_at desc").
		Find(&courses).Error
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch courses!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Courses fetched successfully!", courses)
}

// GetCourseDetails returns one catalog entry. Inactive courses are never
// served to students.
func GetCourseDetails(c *fiber.Ctx) error {
	courseID := c.Locals("courseID").(uint)

	var course models.Course
	if err := database.Database.Db.Where("id = ? AND is_deleted = ?", courseID, false).First(&course).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Course not found!", nil)
	}

	if !course.IsActive {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Course is not available!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Course fetched successfully!", course)
}

// GetCoursePrice returns the authoritative price projection for checkout.
func GetCoursePrice(c *fiber.Ctx) error {
	courseID := c.Locals("courseID").(uint)

	var course models.Course
	if err := database.Database.Db.Where("id = ? AND is_deleted = ?", courseID, false).First(&course).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Course not found!", nil)
	}

	if !course.IsActive {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Course is not available!", nil)
	}

	// The checkout page must always see the current price
	c.Set("Cache-Control", "no-store, no-cache, must-revalidate, proxy-revalidate")
	c.Set("Pragma", "no-cache")
	c.Set("Expires", "0")

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Course price fetched!", fiber.Map{
		"id":            course.ID,
		"title":         course.Title,
		"price":         course.Price,
		"originalPrice": course.OriginalPrice,
		"discount":      course.Discount,
		"currency":      "INR",
	})
}

// isEnrolled reports whether the user has an enrollment record for the course.
func isEnrolled(userID, courseID uint) bool {
	var count int64
	database.Database.Db.Model(&models.Enrollment{}).
		Where("user_id = ? AND course_id = ?", userID, courseID).
		Count(&count)
	return count > 0
}

// GetCourseMaterials lists study materials for enrolled students.
func GetCourseMaterials(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}
	courseID := c.Locals("courseID").(uint)

	if !isEnrolled(userID, courseID) {
		return middleware.JsonResponse(c, fiber.StatusForbidden, false, "You are not enrolled in this course!", nil)
	}

	var materials []models.Material
	err := database.Database.Db.
		Where("course_id = ? AND is_active = ? AND is_deleted = ?", courseID, true, false).
		Order("created_at desc").
		Find(&materials).Error
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch materials!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Materials fetched successfully!", materials)
}

// GetCourseAnnouncements lists course-scoped plus broadcast announcements for
// enrolled students, newest first.
func GetCourseAnnouncements(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}
	courseID := c.Locals("courseID").(uint)

	if !isEnrolled(userID, courseID) {
		return middleware.JsonResponse(c, fiber.StatusForbidden, false, "You are not enrolled in this course!", nil)
	}

	var announcements []models.Announcement
	err := database.Database.Db.
		Where("(course_id = ? OR course_id IS NULL) AND is_active = ?", courseID, true).
		Order("created_at desc").
		Find(&announcements).Error
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch announcements!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Announcements fetched successfully!", announcements)
}
