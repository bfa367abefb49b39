package services

import (
	"testing"
	"time"

	"fleetd/backend/app/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFleetService_CheckinValidation(t *testing.T) {
	gdb := setupTestDB(t)
	svc := newFleetService(t, gdb)

	assert.ErrorIs(t, svc.Checkin("", "10.0.0.1", 10, "5ms"), ErrInvalidRequest)
	assert.ErrorIs(t, svc.Checkin("hostA", "", 10, "5ms"), ErrInvalidRequest)

	// validation failures must not touch storage
	var count int64
	require.NoError(t, gdb.Model(&models.Agent{}).Count(&count).Error)
	assert.EqualValues(t, 0, count)
}

func TestFleetService_CheckinCreatesOnlineAgent(t *testing.T) {
	gdb := setupTestDB(t)
	svc := newFleetService(t, gdb)

	require.NoError(t, svc.Checkin("hostA", "10.0.0.1", 10, "5ms"))

	agents, err := svc.ListAgents()
	require.NoError(t, err)
	require.Len(t, agents, 1)
	assert.Equal(t, models.StatusOnline, agents[0].Status)
	assert.NotNil(t, agents[0].LastCheckin)
}

func TestFleetService_StaleAgentGoesOfflineOnList(t *testing.T) {
	gdb := setupTestDB(t)
	svc := newFleetService(t, gdb)

	require.NoError(t, svc.Checkin("hostA", "10.0.0.1", 10, "5ms"))

	// age the check-in past the threshold without any new writes
	stale := time.Now().Add(-time.Minute)
	require.NoError(t, gdb.Model(&models.Agent{}).
		Where("name = ?", "hostA").
		Update("last_checkin", stale).Error)

	agents, err := svc.ListAgents()
	require.NoError(t, err)
	require.Len(t, agents, 1)
	assert.Equal(t, models.StatusOffline, agents[0].Status)
}

func TestFleetService_CheckinResurrectsOfflineAgent(t *testing.T) {
	gdb := setupTestDB(t)
	svc := newFleetService(t, gdb)

	require.NoError(t, svc.Checkin("hostA", "10.0.0.1", 10, "5ms"))
	stale := time.Now().Add(-time.Minute)
	require.NoError(t, gdb.Model(&models.Agent{}).
		Where("name = ?", "hostA").
		Update("last_checkin", stale).Error)

	flipped, err := svc.EvaluateLiveness(time.Now())
	require.NoError(t, err)
	assert.EqualValues(t, 1, flipped)

	require.NoError(t, svc.Checkin("hostA", "10.0.0.1", 10, "6ms"))
	agents, err := svc.ListAgents()
	require.NoError(t, err)
	require.Len(t, agents, 1)
	assert.Equal(t, models.StatusOnline, agents[0].Status)
}
