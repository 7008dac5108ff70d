package adminController

import (
	"placementpulse/database"
	"placementpulse/middleware"
	"placementpulse/models"

	"github.com/gofiber/fiber/v2"
)

// GetPayments lists observed payment records, newest first, for support and
// reconciliation work.
func GetPayments(c *fiber.Ctx) error {
	page := c.Locals("validatedPage").(int)
	limit := c.Locals("validatedLimit").(int)
	offset := (page - 1) * limit

	db := database.Database.Db.Model(&models.Payment{})

	if email := c.Query("email"); email != "" {
		db = db.Where("email = ?", email)
	}

	var total int64
	db.Count(&total)

	var payments []models.Payment
	if err := db.Order("created_at desc").Offset(offset).Limit(limit).Find(&payments).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch payments!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Payments fetched successfully!", fiber.Map{
		"payments": payments,
		"pagination": fiber.Map{
			"total": total,
			"page":  page,
			"limit": limit,
		},
	})
}

// GetPendingEnrollments lists checkout descriptors the recovery sweep is
// still tracking.
func GetPendingEnrollments(c *fiber.Ctx) error {
	page := c.Locals("validatedPage").(int)
	limit := c.Locals("validatedLimit").(int)
	offset := (page - 1) * limit

	db := database.Database.Db.Model(&models.PendingEnrollment{})

	if status := c.Query("status"); status != "" {
		db = db.Where("status = ?", status)
	}

	var total int64
	db.Count(&total)

	var pending []models.PendingEnrollment
	if err := db.Order("created_at desc").Offset(offset).Limit(limit).Find(&pending).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch pending enrollments!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Pending enrollments fetched successfully!", fiber.Map{
		"pending": pending,
		"pagination": fiber.Map{
			"total": total,
			"page":  page,
			"limit": limit,
		},
	})
}
