package schema

import (
	"gorm.io/gorm"
)

// Migrate runs GORM AutoMigrate for all models on the PostgreSQL
// engine. AutoMigrate is idempotent: existing compatible tables are
// left alone, missing ones are created.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&Movie{},
		&Rating{},
	)
}
