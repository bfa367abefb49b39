package services

import (
	"fmt"

	"fleetd/backend/app/models"
	"fleetd/backend/app/repo"
)

// CommandService owns the per-agent command queue, the response store and
// the dispatch audit trail.
type CommandService struct {
	commands  *repo.CommandRepository
	responses *repo.ResponseRepository
	audit     *repo.AuditRepository
}

func NewCommandService(commands *repo.CommandRepository, responses *repo.ResponseRepository, audit *repo.AuditRepository) *CommandService {
	return &CommandService{commands: commands, responses: responses, audit: audit}
}

// Enqueue appends a pending command for the named agent and records the
// dispatch audit event, noting who issued it. The agent does not have to
// exist in the registry; the command simply waits under that name.
func (s *CommandService) Enqueue(agentName, text, issuer string) (uint, error) {
	if agentName == "" || text == "" {
		return 0, fmt.Errorf("%w: agent name and command text are required", ErrInvalidRequest)
	}
	detail := "command queued for delivery"
	if issuer != "" {
		detail = fmt.Sprintf("command queued by %s", issuer)
	}
	cmd := &models.Command{AgentName: agentName, Text: text}
	ev := &models.AuditEvent{
		AgentName: agentName,
		EventType: models.EventCommandSent,
		Detail:    detail,
	}
	if err := s.commands.Enqueue(cmd, ev); err != nil {
		return 0, err
	}
	return cmd.ID, nil
}

// ClaimNext atomically removes and returns the oldest pending command for
// the agent. ErrNoOrders signals an empty mailbox. Delivery is
// at-most-once: a claimed command is never requeued, even if the agent
// dies before reporting back.
func (s *CommandService) ClaimNext(agentName string) (*models.Command, error) {
	if agentName == "" {
		return nil, fmt.Errorf("%w: agent name is required", ErrInvalidRequest)
	}
	cmd, err := s.commands.ClaimNext(agentName)
	if err != nil {
		return nil, err
	}
	if cmd == nil {
		return nil, ErrNoOrders
	}
	return cmd, nil
}

// StoreResponse appends a response row under the given command id. The id
// is a free-form correlation key; the command row it answers was already
// deleted when it was claimed.
func (s *CommandService) StoreResponse(agentName string, commandID uint, text string) error {
	if agentName == "" || commandID == 0 || text == "" {
		return fmt.Errorf("%w: agent name, command id and response text are required", ErrInvalidRequest)
	}
	return s.responses.Create(&models.CommandResponse{AgentName: agentName, CommandID: commandID, Text: text})
}

// FetchResponse returns the stored response text for the command id. When
// duplicates exist the earliest row wins.
func (s *CommandService) FetchResponse(commandID uint) (string, error) {
	resp, err := s.responses.FirstByCommandID(commandID)
	if err != nil {
		return "", err
	}
	if resp == nil {
		return "", fmt.Errorf("%w: no response for command %d", ErrNotFound, commandID)
	}
	return resp.Text, nil
}
