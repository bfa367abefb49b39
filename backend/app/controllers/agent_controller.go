package controllers

import (
	"encoding/json"
	"errors"
	"net/http"

	"fleetd/backend/app/dto"
	"fleetd/backend/app/services"
)

// AgentController serves the agent-facing surface: check-ins, order
// polling and the registry listing.
type AgentController struct {
	Fleet    *services.FleetService
	Commands *services.CommandService
}

func NewAgentController(fleet *services.FleetService, commands *services.CommandService) *AgentController {
	return &AgentController{Fleet: fleet, Commands: commands}
}

func (c *AgentController) Checkin(w http.ResponseWriter, r *http.Request) {
	var req dto.CheckinRequest
	_ = json.NewDecoder(r.Body).Decode(&req)
	if err := c.Fleet.Checkin(req.Name, req.Address, req.Freq, req.Ping); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, dto.MessageResponse{Message: "check-in recorded"})
}

// FetchOrder claims the oldest pending command for the agent. An empty
// mailbox is a 200 with the sentinel body, not an error.
func (c *AgentController) FetchOrder(w http.ResponseWriter, r *http.Request) {
	name := r.URL.Query().Get("name")
	cmd, err := c.Commands.ClaimNext(name)
	if errors.Is(err, services.ErrNoOrders) {
		writeJSON(w, http.StatusOK, dto.OrderResponse{CommandID: nil, CommandText: dto.NoOrdersText})
		return
	}
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, dto.OrderResponse{CommandID: &cmd.ID, CommandText: cmd.Text})
}

func (c *AgentController) List(w http.ResponseWriter, r *http.Request) {
	agents, err := c.Fleet.ListAgents()
	if err != nil {
		writeError(w, err)
		return
	}
	out := make([]dto.AgentEntry, 0, len(agents))
	for _, a := range agents {
		out = append(out, dto.AgentEntry{
			Name:        a.Name,
			Address:     a.Address,
			Status:      string(a.Status),
			Freq:        a.Freq,
			Ping:        a.Ping,
			LastCheckin: a.LastCheckin,
		})
	}
	writeJSON(w, http.StatusOK, out)
}
