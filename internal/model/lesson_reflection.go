package model

import (
	"time"
)

type ReflectionStatus string

const (
	ReflectionDraft     ReflectionStatus = "draft"
	ReflectionSubmitted ReflectionStatus = "submitted"
	ReflectionMarked    ReflectionStatus = "marked"
	ReflectionRejected  ReflectionStatus = "rejected"
)

// LessonReflection is the one entity with lifecycle state:
// draft -> submitted -> marked|rejected, and back to submitted via resubmit.
// There is no terminal state.
// swagger:model LessonReflection
type LessonReflection struct {
	BaseModel
	UserID         uint             `gorm:"not null;uniqueIndex:idx_reflection_user_lesson" json:"user_id"`
	LessonID       uint             `gorm:"not null;uniqueIndex:idx_reflection_user_lesson" json:"lesson_id"`
	ReflectionText string           `gorm:"type:text" json:"reflection_text"`
	Status         ReflectionStatus `gorm:"size:20;default:'draft'" json:"status"`
	Score          *int             `json:"score"`
	AdminFeedback  *string          `gorm:"type:text" json:"admin_feedback"`
	SubmittedAt    *time.Time       `json:"submitted_at"`
	MarkedAt       *time.Time       `json:"marked_at"`

	User   *User   `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"user,omitempty"`
	Lesson *Lesson `gorm:"foreignKey:LessonID;constraint:OnDelete:CASCADE" json:"lesson,omitempty"`
}

func (LessonReflection) TableName() string {
	return "lesson_reflections"
}
