package adminController

import (
	"encoding/json"

	"placementpulse/database"
	"placementpulse/middleware"
	"placementpulse/models"
	adminValidator "placementpulse/validators/admin"

	"github.com/gofiber/fiber/v2"
	"gorm.io/datatypes"
)

func CreateMaterial(c *fiber.Ctx) error {
	courseID := c.Locals("courseID").(uint)
	reqData, ok := c.Locals("validatedMaterial").(*adminValidator.MaterialRequest)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	if err := database.Database.Db.Where("id = ? AND is_deleted = ?", courseID, false).First(&models.Course{}).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Course not found!", nil)
	}

	isActive := true
	if reqData.IsActive != nil {
		isActive = *reqData.IsActive
	}

	material := models.Material{
		CourseID:    courseID,
		Title:       reqData.Title,
		Description: reqData.Description,
		FileURL:     reqData.FileURL,
		Content:     reqData.Content,
		IsActive:    isActive,
	}

	if err := database.Database.Db.Create(&material).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to create material!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Material created successfully!", material)
}

func UpdateMaterial(c *fiber.Ctx) error {
	materialID := c.Locals("materialID").(uint)
	reqData, ok := c.Locals("validatedMaterialUpdate").(*adminValidator.UpdateMaterialRequest)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	var material models.Material
	if err := database.Database.Db.Where("id = ? AND is_deleted = ?", materialID, false).First(&material).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Material not found!", nil)
	}

	updates := map[string]interface{}{}
	if reqData.Title != nil {
		updates["title"] = *reqData.Title
	}
	if reqData.Description != nil {
		updates["description"] = *reqData.Description
	}
	if reqData.FileURL != nil {
		updates["file_url"] = *reqData.FileURL
	}
	if reqData.Content != nil {
		updates["content"] = *reqData.Content
	}
	if reqData.IsActive != nil {
		updates["is_active"] = *reqData.IsActive
	}

	if len(updates) > 0 {
		if err := database.Database.Db.Model(&material).Updates(updates).Error; err != nil {
			return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to update material!", nil)
		}
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Material updated successfully!", material)
}

func DeleteMaterial(c *fiber.Ctx) error {
	materialID := c.Locals("materialID").(uint)

	result := database.Database.Db.Model(&models.Material{}).
		Where("id = ? AND is_deleted = ?", materialID, false).
		Updates(map[string]interface{}{"is_deleted": true, "is_active": false})
	if result.Error != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to delete material!", nil)
	}
	if result.RowsAffected == 0 {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Material not found!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Material deleted successfully!", nil)
}

func GetCourseMaterials(c *fiber.Ctx) error {
	courseID := c.Locals("courseID").(uint)

	var materials []models.Material
	err := database.Database.Db.
		Where("course_id = ? AND is_deleted = ?", courseID, false).
		Order("created_at desc").
		Find(&materials).Error
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch materials!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Materials fetched successfully!", materials)
}

func CreateAnnouncement(c *fiber.Ctx) error {
	reqData, ok := c.Locals("validatedAnnouncement").(*adminValidator.AnnouncementRequest)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	if reqData.CourseID != nil {
		if err := database.Database.Db.Where("id = ? AND is_deleted = ?", *reqData.CourseID, false).First(&models.Course{}).Error; err != nil {
			return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Course not found!", nil)
		}
	}

	announcement := models.Announcement{
		CourseID: reqData.CourseID,
		Title:    reqData.Title,
		Message:  reqData.Message,
		IsActive: true,
	}

	if err := database.Database.Db.Create(&announcement).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to create announcement!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Announcement created successfully!", announcement)
}

func GetAnnouncements(c *fiber.Ctx) error {
	var announcements []models.Announcement
	err := database.Database.Db.Order("created_at desc").Find(&announcements).Error
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch announcements!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Announcements fetched successfully!", announcements)
}

func DeactivateAnnouncement(c *fiber.Ctx) error {
	announcementID := c.Locals("announcementID").(uint)

	result := database.Database.Db.Model(&models.Announcement{}).
		Where("id = ?", announcementID).
		Update("is_active", false)
	if result.Error != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to deactivate announcement!", nil)
	}
	if result.RowsAffected == 0 {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Announcement not found!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Announcement deactivated!", nil)
}

func toJSONList(items []string) datatypes.JSON {
	if items == nil {
		items = []string{}
	}
	raw, err := json.Marshal(items)
	if err != nil {
		return nil
	}
	return datatypes.JSON(raw)
}

func CreateGDTopic(c *fiber.Ctx) error {
	reqData, ok := c.Locals("validatedGDTopic").(*adminValidator.GDTopicRequest)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	adminEmail, _ := c.Locals("adminEmail").(string)

	topic := models.GDTopic{
		Title:            reqData.Title,
		Description:      reqData.Description,
		Category:         reqData.Category,
		Difficulty:       reqData.Difficulty,
		Tags:             toJSONList(reqData.Tags),
		DiscussionPoints: toJSONList(reqData.DiscussionPoints),
		Tips:             toJSONList(reqData.Tips),
		RelatedTopics:    toJSONList(reqData.RelatedTopics),
		ImageURL:         reqData.ImageURL,
		IsActive:         true,
		IsTrending:       reqData.IsTrending,
		CreatedBy:        adminEmail,
	}

	if err := database.Database.Db.Create(&topic).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to create GD topic!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "GD topic created successfully!", topic)
}

func UpdateGDTopic(c *fiber.Ctx) error {
	topicID := c.Locals("topicID").(uint)
	reqData, ok := c.Locals("validatedGDTopic").(*adminValidator.GDTopicRequest)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	var topic models.GDTopic
	if err := database.Database.Db.First(&topic, topicID).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "GD topic not found!", nil)
	}

	updates := map[string]interface{}{
		"title":             reqData.Title,
		"description":       reqData.Description,
		"category":          reqData.Category,
		"difficulty":        reqData.Difficulty,
		"tags":              toJSONList(reqData.Tags),
		"discussion_points": toJSONList(reqData.DiscussionPoints),
		"tips":              toJSONList(reqData.Tips),
		"related_topics":    toJSONList(reqData.RelatedTopics),
		"image_url":         reqData.ImageURL,
		"is_trending":       reqData.IsTrending,
	}

	if err := database.Database.Db.Model(&topic).Updates(updates).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to update GD topic!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "GD topic updated successfully!", topic)
}

func DeleteGDTopic(c *fiber.Ctx) error {
	topicID := c.Locals("topicID").(uint)

	result := database.Database.Db.Model(&models.GDTopic{}).
		Where("id = ?", topicID).
		Update("is_active", false)
	if result.Error != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to delete GD topic!", nil)
	}
	if result.RowsAffected == 0 {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "GD topic not found!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "GD topic deleted!", nil)
}
