package paymentController

import (
	"errors"
	"fmt"
	"log"

	"placementpulse/config"
	"placementpulse/gateway"
	"placementpulse/middleware"
	"placementpulse/models"
	paymentValidator "placementpulse/validators/payment"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// defaultOrderAmount is the fallback program price in paise when no course id
// is supplied.
const defaultOrderAmount = 29900

const defaultCourseTitle = "MBA Placement Mastery Program"

// Controller holds the checkout dependencies. The gateway client is injected
// at startup.
type Controller struct {
	db *gorm.DB
	gw *gateway.Client
}

func NewController(db *gorm.DB, gw *gateway.Client) *Controller {
	return &Controller{db: db, gw: gw}
}

// CreateOrder handles POST /api/cashfree/order: registers a hosted-checkout
// session for one course and records a pending-enrollment descriptor for the
// recovery sweep.
func (ct *Controller) CreateOrder(c *fiber.Ctx) error {
	reqData, ok := c.Locals("validatedOrder").(*paymentValidator.CreateOrderRequest)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	if !ct.gw.Configured() {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Missing CashFree credentials!", nil)
	}

	finalAmount := uint(defaultOrderAmount)
	courseTitle := defaultCourseTitle
	var courseIDs []uint

	// The price always comes from the catalog, never from the client, when a
	// course id is given.
	if reqData.CourseID != 0 {
		var course models.Course
		err := ct.db.Where("id = ? AND is_active = ? AND is_deleted = ?", reqData.CourseID, true, false).
			First(&course).Error
		if err == nil {
			finalAmount = course.Price
			courseTitle = course.Title
			courseIDs = []uint{course.ID}
		} else {
			log.Printf("Error fetching course price for course %d: %v", reqData.CourseID, err)
		}
	} else if reqData.Amount != 0 {
		finalAmount = reqData.Amount
	}

	orderID := "order_" + uuid.NewString()

	resp, err := ct.gw.CreateOrder(gateway.CreateOrderRequest{
		OrderID:       orderID,
		OrderAmount:   float64(finalAmount) / 100, // paise to rupees
		OrderCurrency: reqData.Currency,
		CustomerDetails: gateway.CustomerDetails{
			CustomerID:    defaulted(reqData.CustomerDetails.CustomerID, "customer_"+uuid.NewString()),
			CustomerName:  defaulted(reqData.CustomerDetails.CustomerName, "Customer"),
			CustomerEmail: defaulted(reqData.CustomerDetails.CustomerEmail, "customer@example.com"),
			CustomerPhone: defaulted(reqData.CustomerDetails.CustomerPhone, "9999999999"),
		},
		OrderMeta: gateway.OrderMeta{
			ReturnURL: config.AppConfig.BaseURL + "/payment/success?order_id=" + orderID,
			NotifyURL: config.AppConfig.BaseURL + "/api/cashfree/webhook",
		},
		OrderNote: "Payment for " + courseTitle,
	})
	if err != nil {
		return respondGatewayError(c, "Failed to create order!", err)
	}

	ct.savePendingEnrollment(orderID, reqData.CustomerDetails.CustomerEmail, courseIDs, finalAmount)

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Order created successfully!", fiber.Map{
		"order_id":           resp.OrderID,
		"payment_session_id": resp.PaymentSessionID,
		"order_amount":       finalAmount,
		"order_currency":     reqData.Currency,
		"course_title":       courseTitle,
	})
}

// CreateOrderBulk handles POST /api/cashfree/order-bulk for a multi-course
// checkout. Every course id must resolve to an active course.
func (ct *Controller) CreateOrderBulk(c *fiber.Ctx) error {
	reqData, ok := c.Locals("validatedOrderBulk").(*paymentValidator.CreateOrderBulkRequest)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	if !ct.gw.Configured() {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Missing CashFree credentials!", nil)
	}

	var courses []models.Course
	if err := ct.db.Where("id IN ? AND is_active = ? AND is_deleted = ?", reqData.CourseIDs, true, false).
		Find(&courses).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch courses!", nil)
	}
	if len(courses) != len(reqData.CourseIDs) {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "One or more courses not found or inactive!", nil)
	}

	var totalAmount uint
	for _, course := range courses {
		totalAmount += course.Price
	}

	orderID := "order_" + uuid.NewString()

	resp, err := ct.gw.CreateOrder(gateway.CreateOrderRequest{
		OrderID:       orderID,
		OrderAmount:   float64(totalAmount) / 100,
		OrderCurrency: reqData.Currency,
		CustomerDetails: gateway.CustomerDetails{
			CustomerID:    defaulted(reqData.CustomerDetails.CustomerID, "customer_"+uuid.NewString()),
			CustomerName:  defaulted(reqData.CustomerDetails.CustomerName, "Customer"),
			CustomerEmail: defaulted(reqData.CustomerDetails.CustomerEmail, "customer@example.com"),
			CustomerPhone: defaulted(reqData.CustomerDetails.CustomerPhone, "9999999999"),
		},
		OrderMeta: gateway.OrderMeta{
			ReturnURL: config.AppConfig.BaseURL + "/payment/success?order_id=" + orderID,
			NotifyURL: config.AppConfig.BaseURL + "/api/cashfree/webhook",
		},
		OrderNote: fmt.Sprintf("Payment for %d courses", len(courses)),
	})
	if err != nil {
		return respondGatewayError(c, "Failed to create order!", err)
	}

	ct.savePendingEnrollment(orderID, reqData.CustomerDetails.CustomerEmail, reqData.CourseIDs, totalAmount)

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Order created successfully!", fiber.Map{
		"order_id":           resp.OrderID,
		"payment_session_id": resp.PaymentSessionID,
		"order_amount":       totalAmount,
		"order_currency":     reqData.Currency,
		"course_count":       len(courses),
	})
}

// VerifyOrder handles POST /api/cashfree/verify: a read-only status
// projection of a gateway order.
func (ct *Controller) VerifyOrder(c *fiber.Ctx) error {
	reqData, ok := c.Locals("validatedVerify").(*paymentValidator.VerifyOrderRequest)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	if !ct.gw.Configured() {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Missing CashFree credentials!", nil)
	}

	order, err := ct.gw.FetchOrder(reqData.OrderID)
	if err != nil {
		return respondGatewayError(c, "Failed to verify payment!", err)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Payment status fetched!", fiber.Map{
		"success":         order.IsPaid(),
		"order_id":        order.OrderID,
		"order_status":    order.OrderStatus,
		"payment_status":  order.PaymentStatus,
		"order_amount":    order.OrderAmount,
		"order_currency":  order.OrderCurrency,
		"payment_details": order.PaymentDetails,
	})
}

func (ct *Controller) savePendingEnrollment(orderID, email string, courseIDs []uint, amount uint) {
	if len(courseIDs) == 0 || email == "" {
		return
	}

	pe := models.PendingEnrollment{
		OrderID: orderID,
		Email:   email,
		Amount:  amount,
		Status:  models.PendingEnrollmentPending,
	}
	if err := pe.SetCourseIDs(courseIDs); err != nil {
		log.Printf("Error encoding course ids for order %s: %v", orderID, err)
		return
	}

	var user models.User
	if err := ct.db.Where("email = ? AND is_deleted = ?", email, false).First(&user).Error; err == nil {
		pe.UserID = &user.ID
	}

	if err := ct.db.Create(&pe).Error; err != nil {
		// The descriptor only powers the recovery sweep; checkout proceeds
		log.Printf("Error saving pending enrollment for order %s: %v", orderID, err)
	}
}

func respondGatewayError(c *fiber.Ctx, message string, err error) error {
	if errors.Is(err, gateway.ErrNotConfigured) {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Missing CashFree credentials!", nil)
	}

	var gwErr *gateway.GatewayError
	if errors.As(err, &gwErr) {
		log.Printf("CashFree error: %v", gwErr)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, message, fiber.Map{
			"details": gwErr.Body,
		})
	}

	log.Printf("CashFree error: %v", err)
	return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, message, nil)
}

func defaulted(value, fallback string) string {
	if value == "" {
		return fallback
	}
	return value
}
