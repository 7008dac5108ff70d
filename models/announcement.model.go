package models

import "gorm.io/gorm"

// Announcement is a broadcast message. CourseID nil means it goes to all
// students; otherwise only to students enrolled in that course.
type Announcement struct {
	gorm.Model
	CourseID *uint  `json:"courseId" gorm:"index"`
	Title    string `json:"title" gorm:"not null"`
	Message  string `json:"message" gorm:"not null"`
	IsActive bool   `json:"isActive" gorm:"default:true"`
}
