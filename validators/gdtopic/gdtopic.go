package gdTopicValidator

import (
	"strconv"
	"strings"

	"placementpulse/middleware"

	"github.com/gofiber/fiber/v2"
)

type ListRequest struct {
	Page       int    `json:"page"`
	Limit      int    `json:"limit"`
	Category   string `json:"category"`
	Difficulty string `json:"difficulty"`
	Trending   bool   `json:"trending"`
	Search     string `json:"search"`
}

func List() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := &ListRequest{
			Page:       1,
			Limit:      10,
			Category:   c.Query("category"),
			Difficulty: c.Query("difficulty"),
			Trending:   c.Query("trending") == "true",
			Search:     strings.TrimSpace(c.Query("search")),
		}

		if page, err := strconv.Atoi(c.Query("page", "1")); err == nil && page > 0 {
			reqData.Page = page
		}
		if limit, err := strconv.Atoi(c.Query("limit", "10")); err == nil && limit > 0 && limit <= 100 {
			reqData.Limit = limit
		}

		c.Locals("validatedTopicList", reqData)
		return c.Next()
	}
}

func TopicID() fiber.Handler {
	return func(c *fiber.Ctx) error {
		idStr := strings.TrimSpace(c.Params("id"))
		id, err := strconv.Atoi(idStr)
		if err != nil || id <= 0 {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid topic ID!", nil)
		}

		c.Locals("topicID", uint(id))
		return c.Next()
	}
}
