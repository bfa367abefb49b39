package repo

import (
	"errors"

	"fleetd/backend/app/models"

	"gorm.io/gorm"
)

type ResponseRepository struct{ db *gorm.DB }

func NewResponseRepository(db *gorm.DB) *ResponseRepository { return &ResponseRepository{db: db} }

func (r *ResponseRepository) Create(resp *models.CommandResponse) error {
	return r.db.Create(resp).Error
}

// FirstByCommandID returns the earliest stored response for the id, or
// nil if none exists. Callers must not assume "most recent" when an id
// carries duplicates.
func (r *ResponseRepository) FirstByCommandID(commandID uint) (*models.CommandResponse, error) {
	var resp models.CommandResponse
	err := r.db.Where("command_id = ?", commandID).Order("id ASC").First(&resp).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &resp, nil
}
