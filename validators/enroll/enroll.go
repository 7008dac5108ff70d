package enrollValidator

import (
	"placementpulse/middleware"

	"github.com/gofiber/fiber/v2"
)

// UserRef is the client-supplied identity of the enrolling user. ID is
// preferred, email is the fallback key.
type UserRef struct {
	ID    uint   `json:"id"`
	Email string `json:"email"`
	Name  string `json:"name"`
}

type Verification struct {
	OrderID string `json:"order_id"`
}

type EnrollRequest struct {
	User         UserRef      `json:"user"`
	CourseID     uint         `json:"courseId"`
	Verification Verification `json:"verification"`
}

type EnrollMultiRequest struct {
	User         UserRef      `json:"user"`
	CourseIDs    []uint       `json:"courseIds"`
	Verification Verification `json:"verification"`
}

func Enroll() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(EnrollRequest)

		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		if reqData.User.Email == "" && reqData.User.ID == 0 {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Missing user email!", nil)
		}
		if reqData.CourseID == 0 {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Missing course ID!", nil)
		}
		if reqData.Verification.OrderID == "" {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Missing payment verification!", nil)
		}

		c.Locals("validatedEnroll", reqData)
		return c.Next()
	}
}

func EnrollMulti() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(EnrollMultiRequest)

		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		if reqData.User.Email == "" && reqData.User.ID == 0 {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Missing user email!", nil)
		}
		if len(reqData.CourseIDs) == 0 {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Missing or invalid course IDs!", nil)
		}
		for _, id := range reqData.CourseIDs {
			if id == 0 {
				return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid course ID!", nil)
			}
		}
		if reqData.Verification.OrderID == "" {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Missing payment verification!", nil)
		}

		c.Locals("validatedEnrollMulti", reqData)
		return c.Next()
	}
}
