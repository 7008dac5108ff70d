package enrollController

import (
	"errors"
	"log"

	"placementpulse/gateway"
	"placementpulse/middleware"
	"placementpulse/models"
	enrollValidator "placementpulse/validators/enroll"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// Controller exposes the enrollment reconciler over HTTP. The gateway client
// is injected at startup rather than pulled from a global.
type Controller struct {
	db  *gorm.DB
	rec *Reconciler
}

func NewController(db *gorm.DB, gw *gateway.Client) *Controller {
	return &Controller{db: db, rec: NewReconciler(db, gw)}
}

// Enroll handles POST /api/enroll for a single course.
func (ct *Controller) Enroll(c *fiber.Ctx) error {
	reqData, ok := c.Locals("validatedEnroll").(*enrollValidator.EnrollRequest)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	ref := UserRef{ID: reqData.User.ID, Email: reqData.User.Email, Name: reqData.User.Name}
	result, err := ct.rec.Reconcile(ref, []uint{reqData.CourseID}, reqData.Verification.OrderID)
	if err != nil {
		return respondEnrollError(c, err)
	}

	if result.AlreadyEnrolled {
		return middleware.JsonResponse(c, fiber.StatusOK, true, "User already enrolled in this course!", fiber.Map{
			"user": result.User,
		})
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Enrolled in course successfully!", fiber.Map{
		"user": result.User,
	})
}

// EnrollMulti handles POST /api/enroll/multi-course.
func (ct *Controller) EnrollMulti(c *fiber.Ctx) error {
	reqData, ok := c.Locals("validatedEnrollMulti").(*enrollValidator.EnrollMultiRequest)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	// All requested courses must exist and be active for the bulk path
	var activeCount int64
	if err := ct.db.Model(&models.Course{}).
		Where("id IN ? AND is_active = ? AND is_deleted = ?", reqData.CourseIDs, true, false).
		Count(&activeCount).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to verify courses!", nil)
	}
	if activeCount != int64(len(reqData.CourseIDs)) {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "One or more courses not found or inactive!", nil)
	}

	ref := UserRef{ID: reqData.User.ID, Email: reqData.User.Email, Name: reqData.User.Name}
	result, err := ct.rec.Reconcile(ref, reqData.CourseIDs, reqData.Verification.OrderID)
	if err != nil {
		return respondEnrollError(c, err)
	}

	if result.AlreadyEnrolled {
		return middleware.JsonResponse(c, fiber.StatusOK, true, "User already enrolled in all courses!", fiber.Map{
			"user": result.User,
		})
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Enrolled in courses successfully!", fiber.Map{
		"user":       result.User,
		"newCourses": result.NewCourses,
	})
}

// respondEnrollError maps reconciler failures onto the HTTP surface.
func respondEnrollError(c *fiber.Ctx, err error) error {
	var notPaid *NotPaidError
	if errors.As(err, &notPaid) {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false,
			"Payment not completed. Status: "+notPaid.OrderStatus, fiber.Map{
				"order_status":   notPaid.OrderStatus,
				"payment_status": notPaid.PaymentStatus,
			})
	}

	if errors.Is(err, gateway.ErrNotConfigured) {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Missing CashFree config!", nil)
	}

	var gwErr *gateway.GatewayError
	if errors.As(err, &gwErr) {
		log.Printf("Payment verification error: %v", gwErr)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to verify payment with payment gateway!", nil)
	}

	if errors.Is(err, ErrUserNotFound) {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "User not found. Please sign up before enrolling!", nil)
	}

	if errors.Is(err, ErrCourseNotFound) {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "One or more courses not found!", nil)
	}

	log.Printf("Enrollment error: %v", err)
	return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to enroll!", nil)
}
