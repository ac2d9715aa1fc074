package model

// MaxSprintDuration is the upper bound for a sprint video, in seconds.
const MaxSprintDuration = 3600

// Sprint is a time-boxed video lesson unit. At most one sprint is active at a
// time; the service layer enforces that, not the schema.
// swagger:model Sprint
type Sprint struct {
	BaseModel
	Title        string `gorm:"size:200;not null" json:"title"`
	Description  string `gorm:"type:text" json:"description"`
	VideoURL     string `gorm:"size:500;not null" json:"video_url"`
	MaxDuration  int    `gorm:"default:300" json:"max_duration"`
	IsActive     bool   `gorm:"default:false;index" json:"is_active"`
	ThumbnailURL string `gorm:"size:500" json:"thumbnail_url"`
}

func (Sprint) TableName() string {
	return "sprints"
}
