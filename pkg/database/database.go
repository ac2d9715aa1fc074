package database

import (
	"fmt"
	"log"

	"sprint_edu_backend/internal/config"
	"sprint_edu_backend/internal/model"

	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func InitDB(cfg *config.DatabaseConfig) (*gorm.DB, error) {
	dsn := fmt.Sprintf("%s:%s@tcp(%s:%d)/%s?charset=%s&parseTime=%t&loc=Local",
		cfg.User,
		cfg.Password,
		cfg.Host,
		cfg.Port,
		cfg.DBName,
		cfg.Charset,
		cfg.ParseTime,
	)

	db, err := gorm.Open(mysql.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Warn),
	})
	if err != nil {
		return nil, err
	}

	log.Println("Database connection established")

	return db, nil
}

// Migrate creates or updates the schema. The composite unique indexes on
// (user_id, sprint_id), (user_id, content_type, content_id) and
// (user_id, lesson_id) are load-bearing: every progress/note/reflection write
// is an upsert keyed on them.
func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(
		&model.User{},
		&model.SkillCategory{},
		&model.Sprint{},
		&model.Lesson{},
		&model.SprintProgress{},
		&model.UserNote{},
		&model.LessonReflection{},
	); err != nil {
		return err
	}

	seedSkillCategories(db)
	return nil
}

func seedSkillCategories(db *gorm.DB) {
	var count int64
	db.Model(&model.SkillCategory{}).Count(&count)
	if count > 0 {
		return
	}

	defaults := []string{
		"Fundamentals",
		"Data Structures",
		"Algorithms",
		"Debugging",
		"Testing",
	}
	for _, name := range defaults {
		db.Create(&model.SkillCategory{Name: name})
	}
}
