package models

import "time"

// Command is a queued instruction for one agent. A row exists only while
// the command is pending: the claiming fetch deletes it, so there is no
// delivered/acknowledged state to track here.
type Command struct {
	ID        uint      `gorm:"primaryKey"`
	AgentName string    `gorm:"index;size:191;not null"`
	Text      string    `gorm:"type:text;not null"`
	CreatedAt time.Time `gorm:"autoCreateTime"`
	UpdatedAt time.Time `gorm:"autoUpdateTime"`
}
