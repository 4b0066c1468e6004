// Package repository implements the data access layer for the application.
package repository

import (
	"strings"

	"vybe/internal/database"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

func readDB(primary *gorm.DB) *gorm.DB {
	if db := database.GetReadDB(); db != nil {
		return db
	}
	return primary
}

// ensureID assigns a fresh UUID when the caller did not supply one. Seed
// data and imports pass explicit IDs; everything else gets a generated one.
func ensureID(id *string) {
	if *id == "" {
		*id = uuid.NewString()
	}
}

// isUniqueConstraintError checks if a DB error is a unique constraint violation.
func isUniqueConstraintError(err error) bool {
	if err == nil {
		return false
	}
	msg := strings.ToLower(err.Error())
	// PostgreSQL unique violation SQLSTATE 23505, sqlite "UNIQUE constraint failed"
	return strings.Contains(msg, "duplicate key") ||
		strings.Contains(msg, "unique constraint") ||
		strings.Contains(msg, "23505")
}
