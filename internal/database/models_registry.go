package database

import "vybe/internal/models"

// PersistentModels returns the authoritative set of schema-managed GORM models.
func PersistentModels() []interface{} {
	return []interface{}{
		&models.User{},
		&models.Event{},
		&models.CheckIn{},
		&models.Message{},
		&models.Notification{},
		&models.Platform{},
	}
}
