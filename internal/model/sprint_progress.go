package model

// SprintProgress is an idempotent key-value row per (user, sprint): upserted
// on every save, last write wins, no history. Progress and Completed are
// stored exactly as the client sent them.
// swagger:model SprintProgress
type SprintProgress struct {
	BaseModel
	UserID    uint `gorm:"not null;uniqueIndex:idx_progress_user_sprint" json:"user_id"`
	SprintID  uint `gorm:"not null;uniqueIndex:idx_progress_user_sprint" json:"sprint_id"`
	Progress  int  `gorm:"default:0" json:"progress_percentage"`
	Completed bool `gorm:"default:false" json:"is_completed"`

	User   *User   `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"-"`
	Sprint *Sprint `gorm:"foreignKey:SprintID;constraint:OnDelete:CASCADE" json:"-"`
}

func (SprintProgress) TableName() string {
	return "sprint_progresses"
}
