package model

type LessonLevel string

const (
	LevelBeginner     LessonLevel = "beginner"
	LevelIntermediate LessonLevel = "intermediate"
	LevelAdvanced     LessonLevel = "advanced"
)

// Lesson is a text-based learning unit with an associated reflection prompt.
// swagger:model Lesson
type Lesson struct {
	BaseModel
	Title            string      `gorm:"size:200;not null" json:"title"`
	CodeSnippet      string      `gorm:"type:text" json:"code_snippet"`
	Description      string      `gorm:"type:text" json:"description"`
	Challenge        string      `gorm:"type:text" json:"challenge"`
	ReflectionPrompt string      `gorm:"type:text" json:"reflection_prompt"`
	SkillCategoryID  uint        `gorm:"index;not null" json:"skill_category_id"`
	Level            LessonLevel `gorm:"size:20;default:'beginner'" json:"level"`

	SkillCategory *SkillCategory `gorm:"foreignKey:SkillCategoryID" json:"skill_category,omitempty"`
}

func (Lesson) TableName() string {
	return "lessons"
}
