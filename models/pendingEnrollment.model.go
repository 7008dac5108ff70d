package models

import (
	"encoding/json"
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

const (
	PendingEnrollmentPending   = "pending"
	PendingEnrollmentCompleted = "completed"
	PendingEnrollmentAbandoned = "abandoned"
)

// PendingEnrollment is the server-side record of a checkout that has not been
// reconciled into enrollments yet. One row is written per created gateway
// order; the recovery scheduler re-verifies stale rows so a buyer who never
// returns from the hosted checkout page still gets enrolled.
type PendingEnrollment struct {
	gorm.Model
	OrderID       string         `json:"orderId" gorm:"uniqueIndex;not null"`
	Email         string         `json:"email" gorm:"index;not null"`
	UserID        *uint          `json:"userId"`
	CourseIDs     datatypes.JSON `json:"courseIds"`
	Amount        uint           `json:"amount"` // paise
	Status        string         `json:"status" gorm:"default:'pending';index"`
	Attempts      int            `json:"attempts" gorm:"default:0"`
	LastAttemptAt *time.Time     `json:"lastAttemptAt"`
}

func (p *PendingEnrollment) SetCourseIDs(ids []uint) error {
	raw, err := json.Marshal(ids)
	if err != nil {
		return err
	}
	p.CourseIDs = datatypes.JSON(raw)
	return nil
}

func (p *PendingEnrollment) GetCourseIDs() ([]uint, error) {
	var ids []uint
	if len(p.CourseIDs) == 0 {
		return ids, nil
	}
	err := json.Unmarshal(p.CourseIDs, &ids)
	return ids, err
}
