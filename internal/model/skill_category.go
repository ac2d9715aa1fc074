package model

// swagger:model SkillCategory
type SkillCategory struct {
	BaseModel
	Name string `gorm:"size:100;uniqueIndex;not null" json:"name"`
}

func (SkillCategory) TableName() string {
	return "skill_categories"
}
