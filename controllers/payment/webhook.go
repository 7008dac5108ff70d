package paymentController

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"log"
	"math"
	"time"

	"placementpulse/config"
	"placementpulse/middleware"
	"placementpulse/models"

	"github.com/gofiber/fiber/v2"
	"gorm.io/datatypes"
)

type webhookOrder struct {
	OrderID         string      `json:"order_id"`
	OrderAmount     json.Number `json:"order_amount"`
	OrderCurrency   string      `json:"order_currency"`
	OrderNote       string      `json:"order_note"`
	CustomerDetails struct {
		CustomerName  string `json:"customer_name"`
		CustomerEmail string `json:"customer_email"`
		CustomerPhone string `json:"customer_phone"`
	} `json:"customer_details"`
}

type webhookPayment struct {
	CFPaymentID   json.Number     `json:"cf_payment_id"`
	PaymentStatus string          `json:"payment_status"`
	PaymentMethod json.RawMessage `json:"payment_method"`
	PaymentTime   string          `json:"payment_time"`
}

type webhookEvent struct {
	Type string `json:"type"`
	Data struct {
		Order   *webhookOrder   `json:"order"`
		Payment *webhookPayment `json:"payment"`
	} `json:"data"`
}

// Webhook handles POST /api/cashfree/webhook, the gateway's server-to-server
// payment notification. The signature must match an HMAC-SHA256 of the raw
// request body keyed by the gateway secret; nothing is persisted otherwise.
func (ct *Controller) Webhook(c *fiber.Ctx) error {
	rawBody := c.Body()
	signature := c.Get("x-webhook-signature")
	secretKey := config.AppConfig.CashfreeSecretKey

	if signature == "" || secretKey == "" {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Missing signature or secret key!", nil)
	}

	mac := hmac.New(sha256.New, []byte(secretKey))
	mac.Write(rawBody)
	expected := hex.EncodeToString(mac.Sum(nil))

	if !hmac.Equal([]byte(signature), []byte(expected)) {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Invalid signature!", nil)
	}

	var event webhookEvent
	if err := json.Unmarshal(rawBody, &event); err != nil {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid webhook payload!", nil)
	}

	if event.Type == "PAYMENT_SUCCESS_WEBHOOK" && event.Data.Order != nil && event.Data.Payment != nil {
		order := event.Data.Order
		paymentData := event.Data.Payment

		email := order.CustomerDetails.CustomerEmail
		if email == "" {
			email = "unknown@example.com"
		}

		amount, err := order.OrderAmount.Float64()
		if err != nil {
			log.Printf("CashFree webhook: unparseable amount %q for order %s: %v", order.OrderAmount.String(), order.OrderID, err)
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid webhook payload!", nil)
		}

		notes, _ := json.Marshal(map[string]interface{}{
			"course":          order.OrderNote,
			"customer_name":   order.CustomerDetails.CustomerName,
			"customer_phone":  order.CustomerDetails.CustomerPhone,
			"original_status": paymentData.PaymentStatus,
		})

		payment := models.Payment{
			Email:     email,
			OrderID:   order.OrderID,
			PaymentID: paymentData.CFPaymentID.String(),
			Signature: signature,
			Amount:    uint(math.Round(amount * 100)), // rupees to paise
			Currency:  order.OrderCurrency,
			Status:    models.PaymentStatusPaid,
			Method:    string(paymentData.PaymentMethod),
			Notes:     datatypes.JSON(notes),
			Raw:       datatypes.JSON(append([]byte(nil), rawBody...)),
		}

		if t, err := time.Parse(time.RFC3339, paymentData.PaymentTime); err == nil {
			payment.CreatedAt = t
		}

		if err := ct.db.Create(&payment).Error; err != nil {
			log.Printf("CashFree webhook: error saving payment for order %s: %v", order.OrderID, err)
			return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Webhook processing failed!", nil)
		}
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Webhook processed!", nil)
}
