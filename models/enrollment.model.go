package models

import (
	"time"

	"gorm.io/gorm"
)

const (
	EnrollmentActive    = "active"
	EnrollmentCompleted = "completed"
	EnrollmentCancelled = "cancelled"
)

// AdminEnrolledTxn marks enrollments pushed by an admin without a payment.
const AdminEnrolledTxn = "ADMIN_ENROLLED"

// Enrollment is one course registration for a user, including payment linkage.
// The unique index on (user_id, course_id) is what makes re-running the
// enrollment flow for the same order safe under concurrent retries.
type Enrollment struct {
	gorm.Model
	UserID        uint      `json:"user_id" gorm:"not null;uniqueIndex:idx_enrollment_user_course"`
	CourseID      uint      `json:"courseId" gorm:"not null;uniqueIndex:idx_enrollment_user_course"`
	EnrolledAt    time.Time `json:"enrolledAt"`
	Progress      float64   `json:"progress" gorm:"default:0"` // 0-100
	TransactionID string    `json:"transactionId"`
	PaymentID     string    `json:"paymentId"`
	OrderID       string    `json:"orderId" gorm:"index"`
	Status        string    `json:"status" gorm:"default:'active'"`

	Course *Course `json:"course,omitempty" gorm:"foreignKey:CourseID"`
}
