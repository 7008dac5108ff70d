package adminValidator

import (
	"strconv"
	"strings"

	"placementpulse/middleware"

	"github.com/gofiber/fiber/v2"
)

type UpdateStudentRequest struct {
	Name    *string `json:"name"`
	Mobile  *string `json:"mobile"`
	City    *string `json:"city"`
	State   *string `json:"state"`
	Country *string `json:"country"`
	Zip     *string `json:"zip"`
}

type EnrollStudentRequest struct {
	CourseID uint `json:"courseId"`
}

// EntityID validates a positive integer route param and stores it under the
// given locals key.
func EntityID(param, localsKey string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		idStr := strings.TrimSpace(c.Params(param))
		id, err := strconv.Atoi(idStr)
		if err != nil || id <= 0 {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid ID!", nil)
		}

		c.Locals(localsKey, uint(id))
		return c.Next()
	}
}

func UpdateStudent() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(UpdateStudentRequest)

		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		c.Locals("validatedStudentUpdate", reqData)
		return c.Next()
	}
}

func EnrollStudent() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(EnrollStudentRequest)

		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		if reqData.CourseID == 0 {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "courseId is required!", nil)
		}

		c.Locals("validatedAdminEnroll", reqData)
		return c.Next()
	}
}
