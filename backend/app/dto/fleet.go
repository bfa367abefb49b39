package dto

import "time"

type CheckinRequest struct {
	Name    string `json:"name"`
	Address string `json:"address"`
	Freq    int    `json:"freq,omitempty"`
	Ping    string `json:"ping,omitempty"`
}

type AgentEntry struct {
	Name        string     `json:"name"`
	Address     string     `json:"address"`
	Status      string     `json:"status"`
	Freq        int        `json:"freq"`
	Ping        string     `json:"ping"`
	LastCheckin *time.Time `json:"last_checkin"`
}
