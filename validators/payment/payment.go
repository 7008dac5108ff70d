package paymentValidator

import (
	"placementpulse/middleware"

	"github.com/gofiber/fiber/v2"
)

type CustomerDetails struct {
	CustomerID    string `json:"customer_id"`
	CustomerName  string `json:"customer_name"`
	CustomerEmail string `json:"customer_email"`
	CustomerPhone string `json:"customer_phone"`
}

type CreateOrderRequest struct {
	Amount          uint            `json:"amount"` // paise; ignored when courseId is given
	Currency        string          `json:"currency"`
	CourseID        uint            `json:"courseId"`
	CustomerDetails CustomerDetails `json:"customerDetails"`
}

type CreateOrderBulkRequest struct {
	Currency        string          `json:"currency"`
	CourseIDs       []uint          `json:"courseIds"`
	CustomerDetails CustomerDetails `json:"customerDetails"`
}

type VerifyOrderRequest struct {
	OrderID string `json:"order_id"`
}

func CreateOrder() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(CreateOrderRequest)

		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		if reqData.Currency == "" {
			reqData.Currency = "INR"
		}

		c.Locals("validatedOrder", reqData)
		return c.Next()
	}
}

func CreateOrderBulk() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(CreateOrderBulkRequest)

		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		if len(reqData.CourseIDs) == 0 {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Missing course IDs!", nil)
		}
		for _, id := range reqData.CourseIDs {
			if id == 0 {
				return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid course ID!", nil)
			}
		}

		if reqData.Currency == "" {
			reqData.Currency = "INR"
		}

		c.Locals("validatedOrderBulk", reqData)
		return c.Next()
	}
}

func VerifyOrder() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(VerifyOrderRequest)

		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		if reqData.OrderID == "" {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Missing order ID!", nil)
		}

		c.Locals("validatedVerify", reqData)
		return c.Next()
	}
}
