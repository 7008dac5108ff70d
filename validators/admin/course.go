package adminValidator

import (
	"strings"

	"placementpulse/middleware"

	"github.com/gofiber/fiber/v2"
)

type CreateCourseRequest struct {
	Title         string `json:"title"`
	Description   string `json:"description"`
	Price         uint   `json:"price"` // paise
	OriginalPrice uint   `json:"originalPrice"`
	Discount      uint   `json:"discount"`
	ImageURL      string `json:"imageUrl"`
	Duration      string `json:"duration"`
	IsActive      *bool  `json:"isActive"`
}

type UpdateCourseRequest struct {
	Title         *string `json:"title"`
	Description   *string `json:"description"`
	Price         *uint   `json:"price"`
	OriginalPrice *uint   `json:"originalPrice"`
	Discount      *uint   `json:"discount"`
	ImageURL      *string `json:"imageUrl"`
	Duration      *string `json:"duration"`
	IsActive      *bool   `json:"isActive"`
}

func CreateCourse() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(CreateCourseRequest)

		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		if strings.TrimSpace(reqData.Title) == "" {
			errors["title"] = "Title is required!"
		} else if len(strings.TrimSpace(reqData.Title)) < 3 {
			errors["title"] = "Title must be at least 3 characters long!"
		}

		if reqData.Price == 0 {
			errors["price"] = "Price is required!"
		}

		if reqData.Discount > 100 {
			errors["discount"] = "Discount must be between 0 and 100!"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedCourse", reqData)
		return c.Next()
	}
}

func UpdateCourse() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(UpdateCourseRequest)

		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		if reqData.Title != nil && len(strings.TrimSpace(*reqData.Title)) < 3 {
			errors["title"] = "Title must be at least 3 characters long!"
		}
		if reqData.Price != nil && *reqData.Price == 0 {
			errors["price"] = "Price must be greater than 0!"
		}
		if reqData.Discount != nil && *reqData.Discount > 100 {
			errors["discount"] = "Discount must be between 0 and 100!"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedCourseUpdate", reqData)
		return c.Next()
	}
}

// ListQuery validates optional page/limit query params with defaults.
func ListQuery() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(struct {
			Page  int `query:"page"`
			Limit int `query:"limit"`
		})

		if err := c.QueryParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid query parameters!", nil)
		}

		if reqData.Page < 1 {
			reqData.Page = 1
		}
		if reqData.Limit < 1 || reqData.Limit > 100 {
			reqData.Limit = 20
		}

		c.Locals("validatedPage", reqData.Page)
		c.Locals("validatedLimit", reqData.Limit)
		return c.Next()
	}
}
