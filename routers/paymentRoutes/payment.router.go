package paymentRoutes

import (
	enrollController "placementpulse/controllers/enroll"
	paymentController "placementpulse/controllers/payment"
	enrollValidator "placementpulse/validators/enroll"
	paymentValidator "placementpulse/validators/payment"

	"github.com/gofiber/fiber/v2"
)

// SetupPaymentRoutes sets up checkout, verification, webhook and enrollment
// routes. Controllers carry the injected gateway client.
func SetupPaymentRoutes(app *fiber.App, payCtrl *paymentController.Controller, enrollCtrl *enrollController.Controller) {
	cashfreeGroup := app.Group("/api/cashfree")

	cashfreeGroup.Post("/order", paymentValidator.CreateOrder(), payCtrl.CreateOrder)
	cashfreeGroup.Post("/order-bulk", paymentValidator.CreateOrderBulk(), payCtrl.CreateOrderBulk)
	cashfreeGroup.Post("/verify", paymentValidator.VerifyOrder(), payCtrl.VerifyOrder)
	cashfreeGroup.Post("/webhook", payCtrl.Webhook)

	enrollGroup := app.Group("/api/enroll")

	enrollGroup.Post("/", enrollValidator.Enroll(), enrollCtrl.Enroll)
	enrollGroup.Post("/multi-course", enrollValidator.EnrollMulti(), enrollCtrl.EnrollMulti)
}
