package models

import "gorm.io/gorm"

// Material is a study resource attached to a course, visible to enrolled
// students only.
type Material struct {
	gorm.Model
	CourseID    uint   `json:"courseId" gorm:"index;not null"`
	Title       string `json:"title" gorm:"not null"`
	Description string `json:"description"`
	FileURL     string `json:"fileUrl"`
	Content     string `json:"content"` // optional rich text / URL
	IsActive    bool   `json:"isActive" gorm:"default:true"`
	IsDeleted   bool   `json:"-" gorm:"default:false"`
}
