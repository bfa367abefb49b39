package repo

import (
	"fleetd/backend/app/models"

	"gorm.io/gorm"
)

type AuditRepository struct{ db *gorm.DB }

func NewAuditRepository(db *gorm.DB) *AuditRepository { return &AuditRepository{db: db} }

func (r *AuditRepository) Append(ev *models.AuditEvent) error { return r.db.Create(ev).Error }

func (r *AuditRepository) LatestByAgent(agentName string, limit int) ([]models.AuditEvent, error) {
	if limit <= 0 {
		limit = 1
	}
	var events []models.AuditEvent
	err := r.db.Where("agent_name = ?", agentName).Order("id DESC").Limit(limit).Find(&events).Error
	return events, err
}
