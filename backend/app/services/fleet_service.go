package services

import (
	"fmt"
	"time"

	"fleetd/backend/app/models"
	"fleetd/backend/app/repo"
)

// FleetService owns the agent registry and the liveness rule.
type FleetService struct {
	agents    *repo.AgentRepository
	threshold time.Duration
}

func NewFleetService(agents *repo.AgentRepository, threshold time.Duration) *FleetService {
	return &FleetService{agents: agents, threshold: threshold}
}

// Checkin upserts the agent row and forces it online with a fresh
// last-checkin timestamp.
func (s *FleetService) Checkin(name, address string, freq int, ping string) error {
	if name == "" || address == "" {
		return fmt.Errorf("%w: name and address are required", ErrInvalidRequest)
	}
	now := time.Now()
	a := models.Agent{
		Name:        name,
		Address:     address,
		Freq:        freq,
		Ping:        ping,
		Status:      models.StatusOnline,
		LastCheckin: &now,
	}
	return s.agents.Upsert(&a)
}

// EvaluateLiveness marks agents offline whose last check-in is older than
// the configured threshold, and returns how many were flipped. There is
// no background timer; staleness is corrected lazily on read.
func (s *FleetService) EvaluateLiveness(now time.Time) (int64, error) {
	return s.agents.MarkOfflineBefore(now.Add(-s.threshold))
}

// ListAgents runs the liveness sweep and returns every registry row with
// its derived status.
func (s *FleetService) ListAgents() ([]models.Agent, error) {
	if _, err := s.EvaluateLiveness(time.Now()); err != nil {
		return nil, err
	}
	return s.agents.ListAll()
}
