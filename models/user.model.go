package models

import (
	"gorm.io/gorm"
)

type User struct {
	gorm.Model
	Name         string `gorm:"default:''" json:"name"`
	Email        string `gorm:"unique;not null" json:"email"`
	PasswordHash string `gorm:"not null" json:"-"`
	Mobile       string `gorm:"default:''" json:"mobile"`
	AvatarURL    string `gorm:"default:''" json:"avatarUrl"`
	City         string `json:"city"`
	State        string `json:"state"`
	Country      string `json:"country"`
	Zip          string `json:"zip"`

	// Legacy scalar fields kept for backward compatibility with the
	// single-course era. EnrolledCourses is the source of truth.
	EnrolledCourse bool    `gorm:"default:false" json:"enrolledCourse"`
	Progress       int     `gorm:"default:0" json:"progress"`
	TransactionID  *string `json:"transactionId"`
	BypassPayment  bool    `gorm:"default:false" json:"bypassPayment"`

	EnrolledCourses []Enrollment `gorm:"foreignKey:UserID" json:"enrolledCourses"`
	IsDeleted       bool         `gorm:"default:false" json:"-"`
}

// Projection is the password-free shape returned to clients.
type UserProjection struct {
	ID              uint         `json:"id"`
	Email           string       `json:"email"`
	Name            string       `json:"name"`
	Mobile          string       `json:"mobile,omitempty"`
	EnrolledCourse  bool         `json:"enrolledCourse"`
	EnrolledCourses []Enrollment `json:"enrolledCourses"`
	Progress        int          `json:"progress"`
	TransactionID   *string      `json:"transactionId"`
}

func (u *User) Projection() UserProjection {
	enrollments := u.EnrolledCourses
	if enrollments == nil {
		enrollments = []Enrollment{}
	}
	return UserProjection{
		ID:              u.ID,
		Email:           u.Email,
		Name:            u.Name,
		Mobile:          u.Mobile,
		EnrolledCourse:  u.EnrolledCourse,
		EnrolledCourses: enrollments,
		Progress:        u.Progress,
		TransactionID:   u.TransactionID,
	}
}
