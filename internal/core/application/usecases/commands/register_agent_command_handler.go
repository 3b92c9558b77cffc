package commands

import (
	"context"

	"fulfillment/internal/core/domain/model/agent"
)

// RegisterAgentCommandHandler handles the business logic for agent registration.
// Creates and persists new delivery agent entities with their contact details
// and registration location.
//
// Example:
//
//	handler := NewRegisterAgentCommandHandler(uowFactory)
//	loc, _ := kernel.NewGeoLocation(31.2001, 29.9187)
//	cmd, _ := NewRegisterAgentCommand(agentID, "Sara Ahmed", "sara@example.com", "+201001234567", loc)
//
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("agent registration failed: %w", err)
//	}
type RegisterAgentCommandHandler struct {
	uowFactory AgentUoWFactory
}

// NewRegisterAgentCommandHandler creates a handler for agent registration.
// Requires an AgentUoWFactory for transactional persistence operations.
func NewRegisterAgentCommandHandler(uowFactory AgentUoWFactory) RegisterAgentCommandHandler {
	return RegisterAgentCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the agent registration command.
// Creates a new agent entity and persists it within a transaction.
// Automatically rolls back on any error to prevent partial data.
func (h *RegisterAgentCommandHandler) Handle(ctx context.Context, cmd RegisterAgentCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	agentRepo := uow.AgentRepository()
	agentEntity, err := agent.NewAgent(cmd.AgentID(), cmd.Name(), cmd.Email(), cmd.Phone(), cmd.Location())
	if err != nil {
		return err
	}

	if err = agentRepo.Add(ctx, agentEntity); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
