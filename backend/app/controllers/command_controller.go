package controllers

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"

	"fleetd/backend/app/dto"
	"fleetd/backend/app/middleware"
	"fleetd/backend/app/services"
)

// CommandController serves the operator surface: enqueueing commands and
// the response store.
type CommandController struct {
	Commands *services.CommandService
}

func NewCommandController(commands *services.CommandService) *CommandController {
	return &CommandController{Commands: commands}
}

func (c *CommandController) Enqueue(w http.ResponseWriter, r *http.Request) {
	var req dto.EnqueueRequest
	_ = json.NewDecoder(r.Body).Decode(&req)
	issuer := ""
	if claims := middleware.GetClaims(r.Context()); claims != nil {
		issuer = claims.Username
	}
	id, err := c.Commands.Enqueue(req.Name, req.CommandText, issuer)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, dto.EnqueueResponse{Message: "command queued", CommandID: id})
}

// Responses dispatches on method: POST stores a response, GET fetches one
// by command id.
func (c *CommandController) Responses(w http.ResponseWriter, r *http.Request) {
	if r.Method == http.MethodGet {
		c.fetchResponse(w, r)
		return
	}
	c.storeResponse(w, r)
}

func (c *CommandController) storeResponse(w http.ResponseWriter, r *http.Request) {
	var req dto.StoreResponseRequest
	_ = json.NewDecoder(r.Body).Decode(&req)
	if err := c.Commands.StoreResponse(req.Name, req.CommandID, req.ResponseText); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, dto.MessageResponse{Message: "response stored"})
}

func (c *CommandController) fetchResponse(w http.ResponseWriter, r *http.Request) {
	raw := r.URL.Query().Get("command_id")
	id, err := strconv.ParseUint(raw, 10, 32)
	if err != nil || id == 0 {
		writeError(w, fmt.Errorf("%w: command_id must be a positive integer", services.ErrInvalidRequest))
		return
	}
	text, err := c.Commands.FetchResponse(uint(id))
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, dto.ResponsePayload{ResponseText: text})
}
