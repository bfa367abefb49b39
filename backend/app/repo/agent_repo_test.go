package repo

import (
	"testing"
	"time"

	"fleetd/backend/app/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func checkinRow(name string, last *time.Time) *models.Agent {
	return &models.Agent{
		Name:        name,
		Address:     "10.0.0.1",
		Status:      models.StatusOnline,
		LastCheckin: last,
	}
}

func TestAgentRepo_UpsertIsIdempotentPerName(t *testing.T) {
	gdb := setupTestDB(t)
	r := NewAgentRepository(gdb)

	now := time.Now()
	for i := 0; i < 3; i++ {
		require.NoError(t, r.Upsert(checkinRow("hostA", &now)))
	}

	count, err := r.CountByName("hostA")
	require.NoError(t, err)
	assert.EqualValues(t, 1, count)
}

func TestAgentRepo_UpsertOverwritesAttributes(t *testing.T) {
	gdb := setupTestDB(t)
	r := NewAgentRepository(gdb)

	now := time.Now()
	first := checkinRow("hostA", &now)
	first.Ping = "5ms"
	require.NoError(t, r.Upsert(first))

	later := time.Now().Add(time.Second)
	second := &models.Agent{Name: "hostA", Address: "10.0.0.9", Ping: "40ms", Freq: 15, Status: models.StatusOnline, LastCheckin: &later}
	require.NoError(t, r.Upsert(second))

	got, err := r.FindByName("hostA")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, "10.0.0.9", got.Address)
	assert.Equal(t, "40ms", got.Ping)
	assert.Equal(t, 15, got.Freq)
}

func TestAgentRepo_MarkOfflineBefore(t *testing.T) {
	gdb := setupTestDB(t)
	r := NewAgentRepository(gdb)

	now := time.Now()
	stale := now.Add(-2 * time.Minute)
	require.NoError(t, r.Upsert(checkinRow("fresh", &now)))
	require.NoError(t, r.Upsert(checkinRow("stale", &stale)))
	require.NoError(t, r.Upsert(checkinRow("silent", nil)))

	flipped, err := r.MarkOfflineBefore(now.Add(-30 * time.Second))
	require.NoError(t, err)
	assert.EqualValues(t, 1, flipped)

	status := func(name string) models.AgentStatus {
		a, err := r.FindByName(name)
		require.NoError(t, err)
		require.NotNil(t, a)
		return a.Status
	}
	assert.Equal(t, models.StatusOnline, status("fresh"))
	assert.Equal(t, models.StatusOffline, status("stale"))
	// never checked in: no freshness signal, left as is
	assert.Equal(t, models.StatusOnline, status("silent"))

	// already-offline rows are not flipped again
	flipped, err = r.MarkOfflineBefore(now.Add(-30 * time.Second))
	require.NoError(t, err)
	assert.EqualValues(t, 0, flipped)
}
