package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// LessonModel is the JSON shape of a lesson inside the courses.lessons column.
type LessonModel struct {
	Title     string   `json:"title"`
	Duration  string   `json:"duration,omitempty"`
	VideoURL  string   `json:"videoUrl,omitempty"`
	Resources []string `json:"resources,omitempty"`
}

// CourseModel mirrors the 'courses' table. IDs are generated by the application.
type CourseModel struct {
	ID               uuid.UUID                        `gorm:"type:uuid;primaryKey"`
	Name             string                           `gorm:"type:varchar(100);not null"`
	Title            string                           `gorm:"type:varchar(255);not null"`
	Description      string                           `gorm:"type:text;not null"`
	Price            string                           `gorm:"type:varchar(50);not null"`
	OriginalPrice    float64                          `gorm:"not null;default:0;index"`
	Category         string                           `gorm:"type:varchar(32);not null;index"`
	Level            string                           `gorm:"type:varchar(32);not null;default:'Beginner'"`
	Duration         string                           `gorm:"type:varchar(64)"`
	Instructor       string                           `gorm:"type:varchar(100)"`
	Image            string                           `gorm:"type:text"`
	Lessons          datatypes.JSONSlice[LessonModel] `gorm:"type:json"`
	Requirements     datatypes.JSONSlice[string]      `gorm:"type:json"`
	LearningOutcomes datatypes.JSONSlice[string]      `gorm:"type:json"`
	Tags             datatypes.JSONSlice[string]      `gorm:"type:json"`
	RatingAverage    float64                          `gorm:"not null;default:0"`
	RatingCount      int                              `gorm:"not null;default:0"`
	StudentsEnrolled int                              `gorm:"not null;default:0;index"`
	IsActive         bool                             `gorm:"not null;index"`
	IsFree           bool                             `gorm:"not null;default:false"`
	CreatedAt        time.Time                        `gorm:"index"`
	UpdatedAt        time.Time
}

// TableName explicitly sets the table name for GORM.
func (CourseModel) TableName() string {
	return "courses"
}
