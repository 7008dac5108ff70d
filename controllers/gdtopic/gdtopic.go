package gdTopicController

import (
	"strings"

	"placementpulse/database"
	"placementpulse/middleware"
	"placementpulse/models"
	gdTopicValidator "placementpulse/validators/gdtopic"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// GetGDTopics lists active group-discussion topics with filtering, trending
// topics first.
func GetGDTopics(c *fiber.Ctx) error {
	reqData, ok := c.Locals("validatedTopicList").(*gdTopicValidator.ListRequest)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid query parameters!", nil)
	}

	db := database.Database.Db.Model(&models.GDTopic{}).Where("is_active = ?", true)

	if reqData.Category != "" && reqData.Category != "all" {
		db = db.Where("category = ?", reqData.Category)
	}
	if reqData.Difficulty != "" && reqData.Difficulty != "all" {
		db = db.Where("difficulty = ?", reqData.Difficulty)
	}
	if reqData.Trending {
		db = db.Where("is_trending = ?", true)
	}
	if reqData.Search != "" {
		pattern := "%" + strings.ToLower(reqData.Search) + "%"
		db = db.Where("LOWER(title) LIKE ? OR LOWER(description) LIKE ?", pattern, pattern)
	}

	var total int64
	db.Count(&total)

	offset := (reqData.Page - 1) * reqData.Limit

	var topics []models.GDTopic
	err := db.Order("is_trending desc, created_at desc").
		Offset(offset).Limit(reqData.Limit).
		Find(&topics).Error
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch GD topics!", nil)
	}

	pages := (total + int64(reqData.Limit) - 1) / int64(reqData.Limit)

	return middleware.JsonResponse(c, fiber.StatusOK, true, "GD topics fetched successfully!", fiber.Map{
		"topics": topics,
		"pagination": fiber.Map{
			"page":  reqData.Page,
			"limit": reqData.Limit,
			"total": total,
			"pages": pages,
		},
	})
}

// LikeGDTopic atomically bumps the like counter.
func LikeGDTopic(c *fiber.Ctx) error {
	topicID := c.Locals("topicID").(uint)

	result := database.Database.Db.Model(&models.GDTopic{}).
		Where("id = ? AND is_active = ?", topicID, true).
		Update("likes", gorm.Expr("likes + 1"))
	if result.Error != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to like topic!", nil)
	}
	if result.RowsAffected == 0 {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Topic not found!", nil)
	}

	var topic models.GDTopic
	if err := database.Database.Db.First(&topic, topicID).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch topic!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Topic liked!", fiber.Map{
		"likes": topic.Likes,
	})
}
