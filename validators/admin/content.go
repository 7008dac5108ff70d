package adminValidator

import (
	"strings"

	"placementpulse/middleware"
	"placementpulse/models"

	"github.com/gofiber/fiber/v2"
)

type MaterialRequest struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	FileURL     string `json:"fileUrl"`
	Content     string `json:"content"`
	IsActive    *bool  `json:"isActive"`
}

type UpdateMaterialRequest struct {
	Title       *string `json:"title"`
	Description *string `json:"description"`
	FileURL     *string `json:"fileUrl"`
	Content     *string `json:"content"`
	IsActive    *bool   `json:"isActive"`
}

type AnnouncementRequest struct {
	CourseID *uint  `json:"courseId"` // nil broadcasts to all students
	Title    string `json:"title"`
	Message  string `json:"message"`
}

type GDTopicRequest struct {
	Title            string   `json:"title"`
	Description      string   `json:"description"`
	Category         string   `json:"category"`
	Difficulty       string   `json:"difficulty"`
	Tags             []string `json:"tags"`
	DiscussionPoints []string `json:"discussionPoints"`
	Tips             []string `json:"tips"`
	RelatedTopics    []string `json:"relatedTopics"`
	ImageURL         string   `json:"imageUrl"`
	IsTrending       bool     `json:"isTrending"`
}

func CreateMaterial() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(MaterialRequest)

		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		if strings.TrimSpace(reqData.Title) == "" {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Title is required!", nil)
		}

		c.Locals("validatedMaterial", reqData)
		return c.Next()
	}
}

func UpdateMaterial() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(UpdateMaterialRequest)

		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		if reqData.Title != nil && strings.TrimSpace(*reqData.Title) == "" {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Title cannot be empty!", nil)
		}

		c.Locals("validatedMaterialUpdate", reqData)
		return c.Next()
	}
}

func CreateAnnouncement() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(AnnouncementRequest)

		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		if strings.TrimSpace(reqData.Title) == "" {
			errors["title"] = "Title is required!"
		}
		if strings.TrimSpace(reqData.Message) == "" {
			errors["message"] = "Message is required!"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedAnnouncement", reqData)
		return c.Next()
	}
}

func contains(list []string, value string) bool {
	for _, item := range list {
		if item == value {
			return true
		}
	}
	return false
}

func GDTopic() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(GDTopicRequest)

		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		if strings.TrimSpace(reqData.Title) == "" {
			errors["title"] = "Title is required!"
		}
		if strings.TrimSpace(reqData.Description) == "" {
			errors["description"] = "Description is required!"
		}
		if !contains(models.GDTopicCategories, reqData.Category) {
			errors["category"] = "Invalid category!"
		}
		if reqData.Difficulty == "" {
			reqData.Difficulty = "Medium"
		} else if !contains(models.GDTopicDifficulties, reqData.Difficulty) {
			errors["difficulty"] = "Invalid difficulty!"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedGDTopic", reqData)
		return c.Next()
	}
}
