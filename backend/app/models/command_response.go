package models

import "time"

// CommandResponse correlates agent output back to a command id. The id is
// an opaque key: the command row was already deleted when it was claimed,
// so no foreign key is enforced and duplicates may accumulate.
type CommandResponse struct {
	ID        uint   `gorm:"primaryKey"`
	AgentName string `gorm:"index;size:191;not null"`
	CommandID uint   `gorm:"index"`
	Text      string `gorm:"type:text"`
	CreatedAt time.Time
}
