package adminController

import (
	"time"

	"placementpulse/database"
	"placementpulse/middleware"
	"placementpulse/models"
	adminValidator "placementpulse/validators/admin"

	"github.com/gofiber/fiber/v2"
)

func GetStudents(c *fiber.Ctx) error {
	page := c.Locals("validatedPage").(int)
	limit := c.Locals("validatedLimit").(int)
	offset := (page - 1) * limit

	db := database.Database.Db.Model(&models.User{}).Where("is_deleted = ?", false)

	if search := c.Query("search"); search != "" {
		db = db.Where("email LIKE ?", "%"+search+"%")
	}

	var total int64
	db.Count(&total)

	var students []models.User
	err := db.Preload("EnrolledCourses").
		Order("created_at desc").
		Offset(offset).Limit(limit).
		Find(&students).Error
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch students!", nil)
	}

	projections := make([]models.UserProjection, 0, len(students))
	for i := range students {
		projections = append(projections, students[i].Projection())
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Students fetched successfully!", fiber.Map{
		"students": projections,
		"pagination": fiber.Map{
			"total": total,
			"page":  page,
			"limit": limit,
		},
	})
}

func GetStudent(c *fiber.Ctx) error {
	studentID := c.Locals("studentID").(uint)

	var student models.User
	err := database.Database.Db.Preload("EnrolledCourses").
		Where("id = ? AND is_deleted = ?", studentID, false).
		First(&student).Error
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Student not found!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Student fetched successfully!", student.Projection())
}

func UpdateStudent(c *fiber.Ctx) error {
	studentID := c.Locals("studentID").(uint)
	reqData, ok := c.Locals("validatedStudentUpdate").(*adminValidator.UpdateStudentRequest)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	var student models.User
	if err := database.Database.Db.Where("id = ? AND is_deleted = ?", studentID, false).First(&student).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Student not found!", nil)
	}

	updates := map[string]interface{}{}
	if reqData.Name != nil {
		updates["name"] = *reqData.Name
	}
	if reqData.Mobile != nil {
		updates["mobile"] = *reqData.Mobile
	}
	if reqData.City != nil {
		updates["city"] = *reqData.City
	}
	if reqData.State != nil {
		updates["state"] = *reqData.State
	}
	if reqData.Country != nil {
		updates["country"] = *reqData.Country
	}
	if reqData.Zip != nil {
		updates["zip"] = *reqData.Zip
	}

	if len(updates) > 0 {
		if err := database.Database.Db.Model(&student).Updates(updates).Error; err != nil {
			return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to update student!", nil)
		}
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Student updated successfully!", student.Projection())
}

func DeleteStudent(c *fiber.Ctx) error {
	studentID := c.Locals("studentID").(uint)

	result := database.Database.Db.Model(&models.User{}).
		Where("id = ? AND is_deleted = ?", studentID, false).
		Update("is_deleted", true)
	if result.Error != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to delete student!", nil)
	}
	if result.RowsAffected == 0 {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Student not found!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Student deleted successfully!", nil)
}

// EnrollStudent pushes an enrollment record directly, bypassing payment.
func EnrollStudent(c *fiber.Ctx) error {
	studentID := c.Locals("studentID").(uint)
	reqData, ok := c.Locals("validatedAdminEnroll").(*adminValidator.EnrollStudentRequest)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	var student models.User
	if err := database.Database.Db.Where("id = ? AND is_deleted = ?", studentID, false).First(&student).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Student not found!", nil)
	}

	if err := database.Database.Db.Where("id = ? AND is_deleted = ?", reqData.CourseID, false).First(&models.Course{}).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Course not found!", nil)
	}

	var existing models.Enrollment
	if err := database.Database.Db.Where("user_id = ? AND course_id = ?", studentID, reqData.CourseID).First(&existing).Error; err == nil {
		return middleware.JsonResponse(c, fiber.StatusConflict, false, "Student is already enrolled in this course!", nil)
	}

	enrollment := models.Enrollment{
		UserID:        studentID,
		CourseID:      reqData.CourseID,
		EnrolledAt:    time.Now(),
		Progress:      0,
		TransactionID: models.AdminEnrolledTxn,
		Status:        models.EnrollmentActive,
	}

	tx := database.Database.Db.Begin()
	if err := tx.Create(&enrollment).Error; err != nil {
		tx.Rollback()
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to enroll student!", nil)
	}
	err := tx.Model(&student).Updates(map[string]interface{}{
		"enrolled_course": true,
		"bypass_payment":  true,
		"progress":        0,
		"transaction_id":  models.AdminEnrolledTxn,
	}).Error
	if err != nil {
		tx.Rollback()
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to enroll student!", nil)
	}
	tx.Commit()

	var updated models.User
	database.Database.Db.Preload("EnrolledCourses").First(&updated, studentID)

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Student enrolled successfully!", updated.Projection())
}
