package models

import "time"

const EventCommandSent = "command_sent"

// AuditEvent is an append-only dispatch record. Rows are never updated
// or deleted.
type AuditEvent struct {
	ID        uint   `gorm:"primaryKey"`
	AgentName string `gorm:"index;size:191;not null"`
	CommandID uint   `gorm:"index"`
	EventType string `gorm:"size:64;not null"`
	Detail    string `gorm:"size:512"`
	CreatedAt time.Time
}
