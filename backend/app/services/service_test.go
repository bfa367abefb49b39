package services

import (
	"path/filepath"
	"testing"
	"time"

	"fleetd/backend/app/db"
	"fleetd/backend/app/models"
	"fleetd/backend/app/repo"

	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

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

func newFleetService(t *testing.T, gdb *gorm.DB) *FleetService {
	t.Helper()
	return NewFleetService(repo.NewAgentRepository(gdb), 30*time.Second)
}

func newCommandService(t *testing.T, gdb *gorm.DB) *CommandService {
	t.Helper()
	return NewCommandService(
		repo.NewCommandRepository(gdb),
		repo.NewResponseRepository(gdb),
		repo.NewAuditRepository(gdb),
	)
}
