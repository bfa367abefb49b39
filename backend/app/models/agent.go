package models

import "time"

// AgentStatus is the liveness state of a fleet member. Transitions are
// narrow: a check-in forces StatusOnline, the staleness sweep forces
// StatusOffline. StatusBusy is reserved for external schedulers and is
// never written by this server.
type AgentStatus string

const (
	StatusOnline  AgentStatus = "online"
	StatusOffline AgentStatus = "offline"
	StatusBusy    AgentStatus = "busy"
)

type Agent struct {
	ID          uint        `gorm:"primaryKey"`
	Name        string      `gorm:"uniqueIndex;size:191;not null"`
	Address     string      `gorm:"size:255;not null"`
	Ping        string      `gorm:"size:64"`
	Freq        int         // declared polling interval, seconds
	Status      AgentStatus `gorm:"size:16;not null"`
	LastCheckin *time.Time  // nil until the first check-in
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
