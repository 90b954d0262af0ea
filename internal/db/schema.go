package db

import "gorm.io/gorm"

// EnsureSchema creates the named Postgres schema if it does not exist yet.
// AutoMigrate creates tables, not schemas.
func EnsureSchema(d *gorm.DB, schema string) error {
	return d.Exec(`CREATE SCHEMA IF NOT EXISTS "` + schema + `"`).Error
}
