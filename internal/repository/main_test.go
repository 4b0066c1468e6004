package repository

import (
	"os"
	"testing"

	"vybe/internal/database"

	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func TestMain(m *testing.M) {
	os.Setenv("APP_ENV", "test")
	os.Exit(m.Run())
}

// setupDB opens a fresh in-memory database with the full schema migrated.
// Each call gets its own database, so tests can run in parallel.
func setupDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := database.ConnectTest()
	require.NoError(t, err)
	return db
}
