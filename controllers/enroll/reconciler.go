package enrollController

import (
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"time"

	"placementpulse/gateway"
	"placementpulse/models"
	"placementpulse/utils"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// ErrUserNotFound is returned when no account exists for the given identity.
// Enrollment requires a signed-up user; the reconciler never creates one.
var ErrUserNotFound = errors.New("user not found")

// ErrCourseNotFound is returned when a requested course id does not resolve.
var ErrCourseNotFound = errors.New("course not found")

// NotPaidError reports a gateway order that is not in a paid state. The
// literal status string goes back to the caller.
type NotPaidError struct {
	OrderStatus   string
	PaymentStatus string
}

func (e *NotPaidError) Error() string {
	return fmt.Sprintf("payment not completed. Status: %s", e.OrderStatus)
}

// UserRef identifies the enrolling user. ID is preferred; Email is the
// fallback lookup key.
type UserRef struct {
	ID    uint
	Email string
	Name  string
}

// Result is what a successful reconciliation returns.
type Result struct {
	User            models.UserProjection
	NewCourses      []models.Course
	AlreadyEnrolled bool
}

// Reconciler turns a verified gateway payment into persisted enrollments.
// The payment row, the enrollment rows, the legacy user fields and the
// pending-descriptor update are written in one transaction, so a failure
// cannot leave an orphaned payment or a payment-less enrollment behind.
type Reconciler struct {
	DB      *gorm.DB
	Gateway *gateway.Client
}

func NewReconciler(db *gorm.DB, gw *gateway.Client) *Reconciler {
	return &Reconciler{DB: db, Gateway: gw}
}

// Reconcile verifies the order with the gateway and enrolls the user in every
// requested course they are not enrolled in yet. Safe to call repeatedly for
// the same order: the advisory pre-check answers the common retry cheaply, and
// the unique index on (user_id, course_id) settles concurrent races.
func (r *Reconciler) Reconcile(ref UserRef, courseIDs []uint, orderID string) (*Result, error) {
	order, err := r.Gateway.FetchOrder(orderID)
	if err != nil {
		return nil, err
	}
	if !order.IsPaid() {
		return nil, &NotPaidError{OrderStatus: order.OrderStatus, PaymentStatus: order.PaymentStatus}
	}

	user, err := r.findUser(ref)
	if err != nil {
		return nil, err
	}

	courses, err := r.findCourses(courseIDs)
	if err != nil {
		return nil, err
	}

	newIDs := r.unenrolledSubset(user.ID, courseIDs)
	if len(newIDs) == 0 {
		return r.alreadyEnrolledResult(user.ID)
	}

	paymentID := order.CFPaymentID()
	now := time.Now()

	err = r.DB.Transaction(func(tx *gorm.DB) error {
		payment := models.Payment{
			Email:     user.Email,
			UserID:    &user.ID,
			OrderID:   orderID,
			PaymentID: paymentID,
			Signature: "cashfree_verified",
			Amount:    order.AmountPaise(),
			Currency:  order.OrderCurrency,
			Status:    models.PaymentStatusPaid,
			Method:    order.PaymentMethod(),
			Notes:     paymentNotes(order),
			Raw:       datatypes.JSON(order.Raw),
		}
		if err := tx.Create(&payment).Error; err != nil {
			return err
		}

		for _, courseID := range newIDs {
			enrollment := models.Enrollment{
				UserID:        user.ID,
				CourseID:      courseID,
				EnrolledAt:    now,
				Progress:      0,
				TransactionID: paymentID,
				PaymentID:     paymentID,
				OrderID:       orderID,
				Status:        models.EnrollmentActive,
			}
			if err := tx.Create(&enrollment).Error; err != nil {
				return err
			}
		}

		updates := map[string]interface{}{
			"enrolled_course": true,
			"progress":        0,
			"transaction_id":  paymentID,
		}
		if ref.Name != "" {
			updates["name"] = ref.Name
		}
		if err := tx.Model(&models.User{}).Where("id = ?", user.ID).Updates(updates).Error; err != nil {
			return err
		}

		// Backfill userId on webhook-created payments for the same email
		if err := tx.Model(&models.Payment{}).
			Where("email = ? AND user_id IS NULL", user.Email).
			Update("user_id", user.ID).Error; err != nil {
			return err
		}

		return tx.Model(&models.PendingEnrollment{}).
			Where("order_id = ? AND status = ?", orderID, models.PendingEnrollmentPending).
			Update("status", models.PendingEnrollmentCompleted).Error
	})
	if err != nil {
		// A concurrent retry won the race on the unique index; the user is
		// enrolled either way.
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return r.alreadyEnrolledResult(user.ID)
		}
		return nil, err
	}

	newCourses := make([]models.Course, 0, len(newIDs))
	for _, course := range courses {
		for _, id := range newIDs {
			if course.ID == id {
				newCourses = append(newCourses, course)
			}
		}
	}

	go r.sendConfirmation(user.Email, user.Name, newCourses)

	result, err := r.loadResult(user.ID)
	if err != nil {
		return nil, err
	}
	result.NewCourses = newCourses
	return result, nil
}

func (r *Reconciler) findUser(ref UserRef) (*models.User, error) {
	var user models.User
	query := r.DB.Where("is_deleted = ?", false)
	if ref.ID != 0 {
		query = query.Where("id = ?", ref.ID)
	} else {
		query = query.Where("email = ?", ref.Email)
	}
	if err := query.First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return &user, nil
}

func (r *Reconciler) findCourses(courseIDs []uint) ([]models.Course, error) {
	var courses []models.Course
	if err := r.DB.Where("id IN ? AND is_active = ? AND is_deleted = ?", courseIDs, true, false).Find(&courses).Error; err != nil {
		return nil, err
	}
	if len(courses) != len(courseIDs) {
		return nil, ErrCourseNotFound
	}
	return courses, nil
}

// unenrolledSubset returns the requested ids the user is not yet enrolled in.
func (r *Reconciler) unenrolledSubset(userID uint, courseIDs []uint) []uint {
	var enrolled []uint
	r.DB.Model(&models.Enrollment{}).
		Where("user_id = ?", userID).
		Pluck("course_id", &enrolled)

	enrolledSet := make(map[uint]bool, len(enrolled))
	for _, id := range enrolled {
		enrolledSet[id] = true
	}

	var newIDs []uint
	for _, id := range courseIDs {
		if !enrolledSet[id] {
			newIDs = append(newIDs, id)
		}
	}
	return newIDs
}

func (r *Reconciler) alreadyEnrolledResult(userID uint) (*Result, error) {
	result, err := r.loadResult(userID)
	if err != nil {
		return nil, err
	}
	result.AlreadyEnrolled = true
	return result, nil
}

func (r *Reconciler) loadResult(userID uint) (*Result, error) {
	var user models.User
	if err := r.DB.Preload("EnrolledCourses").First(&user, userID).Error; err != nil {
		return nil, err
	}
	return &Result{User: user.Projection()}, nil
}

func (r *Reconciler) sendConfirmation(email, name string, courses []models.Course) {
	titles := make([]string, 0, len(courses))
	for _, course := range courses {
		titles = append(titles, course.Title)
	}
	if err := utils.SendEnrollmentConfirmation(email, name, titles); err != nil {
		log.Printf("Error sending enrollment confirmation to %s: %v", email, err)
	}
}

func paymentNotes(order *gateway.Order) datatypes.JSON {
	notes := map[string]interface{}{
		"order_note":       order.OrderNote,
		"customer_details": order.CustomerDetails,
		"original_status":  order.PaymentStatus,
	}
	raw, err := json.Marshal(notes)
	if err != nil {
		return nil
	}
	return datatypes.JSON(raw)
}
