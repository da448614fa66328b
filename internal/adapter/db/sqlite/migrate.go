// Package sqlite stores users and posts through GORM on an SQLite database.
package sqlite

import "gorm.io/gorm"

// AutoMigrate creates the users and posts tables if they are missing.
func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(&UserSchema{}, &PostSchema{})
}
