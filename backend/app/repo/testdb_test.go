package repo

import (
	"path/filepath"
	"testing"

	"fleetd/backend/app/db"
	"fleetd/backend/app/models"

	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

// setupTestDB opens a throwaway sqlite database migrated with the full
// schema.
func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	gdb, err := db.Connect(db.Config{Driver: "sqlite", DSN: filepath.Join(t.TempDir(), "fleetd_test.db")})
	require.NoError(t, err)
	require.NoError(t, gdb.AutoMigrate(
		&models.Agent{},
		&models.Command{},
		&models.CommandResponse{},
		&models.AuditEvent{},
		&models.User{},
	))
	return gdb
}
