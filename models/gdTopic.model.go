package models

import (
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

var GDTopicCategories = []string{
	"Business", "Technology", "Social Issues", "Economics", "Politics",
	"Environment", "Education", "Healthcare", "Sports", "Entertainment",
	"General Knowledge",
}

var GDTopicDifficulties = []string{"Easy", "Medium", "Hard"}

// GDTopic is a group-discussion practice topic shown on the prep pages.
type GDTopic struct {
	gorm.Model
	Title            string         `json:"title" gorm:"not null"`
	Description      string         `json:"description" gorm:"not null"`
	Category         string         `json:"category" gorm:"index;not null"`
	Difficulty       string         `json:"difficulty" gorm:"default:'Medium'"`
	Tags             datatypes.JSON `json:"tags"`
	DiscussionPoints datatypes.JSON `json:"discussionPoints"`
	Tips             datatypes.JSON `json:"tips"`
	RelatedTopics    datatypes.JSON `json:"relatedTopics"`
	ImageURL         string         `json:"imageUrl"`
	IsActive         bool           `json:"isActive" gorm:"default:true;index"`
	IsTrending       bool           `json:"isTrending" gorm:"default:false"`
	Likes            uint           `json:"likes" gorm:"default:0"`
	CreatedBy        string         `json:"createdBy"`
}
