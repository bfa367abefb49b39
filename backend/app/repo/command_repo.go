package repo

import (
	"errors"

	"fleetd/backend/app/models"

	"gorm.io/gorm"
)

type CommandRepository struct{ db *gorm.DB }

func NewCommandRepository(db *gorm.DB) *CommandRepository { return &CommandRepository{db: db} }

// Enqueue inserts the command and its dispatch audit event in a single
// transaction so a storage fault cannot leave one without the other.
func (r *CommandRepository) Enqueue(cmd *models.Command, ev *models.AuditEvent) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(cmd).Error; err != nil {
			return err
		}
		ev.CommandID = cmd.ID
		return tx.Create(ev).Error
	})
}

// ClaimNext removes and returns the oldest pending command for the agent,
// or nil if the mailbox is empty. The conditional delete arbitrates
// concurrent pollers: two claims may read the same row, but only the one
// whose delete affects a row owns the command; the loser moves on to the
// next oldest. Claimed commands are gone for good; there is no requeue.
func (r *CommandRepository) ClaimNext(agentName string) (*models.Command, error) {
	for {
		var cmd models.Command
		err := r.db.Where("agent_name = ?", agentName).Order("id ASC").First(&cmd).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		if err != nil {
			return nil, err
		}
		res := r.db.Where("id = ?", cmd.ID).Delete(&models.Command{})
		if res.Error != nil {
			return nil, res.Error
		}
		if res.RowsAffected == 1 {
			return &cmd, nil
		}
	}
}

func (r *CommandRepository) CountByAgent(agentName string) (int64, error) {
	var count int64
	return count, r.db.Model(&models.Command{}).Where("agent_name = ?", agentName).Count(&count).Error
}
