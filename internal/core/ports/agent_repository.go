package ports

import (
	"context"

	"fulfillment/internal/core/domain/model/agent"
	"fulfillment/internal/core/domain/model/kernel"
)

// AgentRepository defines the persistence contract for delivery agent aggregates.
type AgentRepository interface {
	// Add persists a newly registered agent.
	// The agent must be valid and not already exist in the repository.
	Add(ctx context.Context, aggregate *agent.Agent) error

	// Get retrieves an agent by identifier.
	// Returns errs.ErrObjectNotFound (wrapped) when the agent does not exist.
	Get(ctx context.Context, id kernel.AgentID) (*agent.Agent, error)
}
