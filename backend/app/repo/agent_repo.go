package repo

import (
	"errors"
	"time"

	"fleetd/backend/app/models"

	"gorm.io/gorm"
)

type AgentRepository struct{ db *gorm.DB }

func NewAgentRepository(db *gorm.DB) *AgentRepository { return &AgentRepository{db: db} }

func (r *AgentRepository) FindByName(name string) (*models.Agent, error) {
	var a models.Agent
	if err := r.db.Where("name = ?", name).First(&a).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &a, nil
}

// Upsert writes the check-in row: create on first sight, otherwise
// overwrite the mutable attributes. Concurrent check-ins for the same
// name are last-writer-wins, which is acceptable for a liveness signal.
func (r *AgentRepository) Upsert(a *models.Agent) error {
	var existing models.Agent
	if err := r.db.Where("name = ?", a.Name).First(&existing).Error; err == nil {
		a.ID = existing.ID
		a.CreatedAt = existing.CreatedAt
		return r.db.Save(a).Error
	}
	return r.db.Create(a).Error
}

func (r *AgentRepository) ListAll() ([]models.Agent, error) {
	var agents []models.Agent
	if err := r.db.Order("name ASC").Find(&agents).Error; err != nil {
		return nil, err
	}
	return agents, nil
}

func (r *AgentRepository) CountByName(name string) (int64, error) {
	var count int64
	return count, r.db.Model(&models.Agent{}).Where("name = ?", name).Count(&count).Error
}

// MarkOfflineBefore flips agents whose last check-in predates the cutoff
// to offline. Agents that never checked in (NULL last_checkin) have no
// freshness signal and are left alone.
func (r *AgentRepository) MarkOfflineBefore(cutoff time.Time) (int64, error) {
	res := r.db.Model(&models.Agent{}).
		Where("last_checkin IS NOT NULL AND last_checkin < ? AND status <> ?", cutoff, models.StatusOffline).
		Update("status", models.StatusOffline)
	return res.RowsAffected, res.Error
}
