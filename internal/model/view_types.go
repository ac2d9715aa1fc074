package model

import (
	"time"
)

// ProgressEntry is the per-sprint value in the GET /api/progress map.
type ProgressEntry struct {
	Progress  int  `json:"progress"`
	Completed bool `json:"completed"`
}

// SubmittedReflection is a grading-queue row: a submitted reflection joined
// with the user and lesson display fields an admin needs to mark it.
type SubmittedReflection struct {
	ID             uint             `json:"id"`
	UserID         uint             `json:"user_id"`
	LessonID       uint             `json:"lesson_id"`
	ReflectionText string           `json:"reflection_text"`
	Status         ReflectionStatus `json:"status"`
	SubmittedAt    *time.Time       `json:"submitted_at"`
	UserName       string           `json:"user_name"`
	UserEmail      string           `json:"user_email"`
	LessonTitle    string           `json:"lesson_title"`
}
