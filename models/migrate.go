package models

import "gorm.io/gorm"

// Migrate runs the schema migrations for all persisted entities.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(&User{}, &Job{}, &AppliedJob{})
}
