package models

import "gorm.io/gorm"

type Course struct {
	gorm.Model
	Title         string `json:"title" gorm:"not null"`
	Description   string `json:"description"`
	Price         uint   `json:"price" gorm:"not null"` // paise
	OriginalPrice uint   `json:"originalPrice"`
	Discount      uint   `json:"discount"` // percent
	ImageURL      string `json:"imageUrl"`
	Duration      string `json:"duration"`
	IsActive      bool   `json:"isActive" gorm:"default:true"`
	IsDeleted     bool   `json:"-" gorm:"default:false"`
}
