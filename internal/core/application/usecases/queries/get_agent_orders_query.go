package queries

import (
	"errors"
	"time"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/order"
	"fulfillment/internal/pkg/guard"
)

var (
	ErrGetAgentOrdersQueryIsNotConstructed = errors.New(
		"GetAgentOrdersQuery must be created via NewGetAgentOrdersQuery constructor",
	)
)

// GetAgentOrdersQuery retrieves all orders assigned to one delivery agent,
// most recent first. This backs the agent's work list in the client app.
//
// Example:
//
//	query, _ := NewGetAgentOrdersQuery(agentID)
//	handler := NewGetAgentOrdersQueryHandler(db)
//
//	orders, err := handler.Handle(ctx, query)
//	if err != nil {
//	    return fmt.Errorf("failed to get agent orders: %w", err)
//	}
//	fmt.Printf("%d orders assigned\n", len(orders))
type GetAgentOrdersQuery struct { //nolint:recvcheck //using for validation
	agentID kernel.AgentID

	guard guard.ConstructorGuard
}

// NewGetAgentOrdersQuery creates a query for an agent's assigned orders.
func NewGetAgentOrdersQuery(agentID kernel.AgentID) (GetAgentOrdersQuery, error) {
	q := GetAgentOrdersQuery{
		guard: guard.NewConstructorGuard(),
	}

	if err := q.setAgentID(agentID); err != nil {
		return GetAgentOrdersQuery{}, err
	}

	return q, nil
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetAgentOrdersQueryIsNotConstructed if validation fails.
func (q GetAgentOrdersQuery) Validate() error {
	return q.guard.Validate(ErrGetAgentOrdersQueryIsNotConstructed)
}

// AgentID returns the agent whose orders are requested.
func (q GetAgentOrdersQuery) AgentID() kernel.AgentID {
	return q.agentID
}

func (q *GetAgentOrdersQuery) setAgentID(agentID kernel.AgentID) error {
	if err := agentID.Validate(); err != nil {
		return err
	}

	q.agentID = agentID
	return nil
}

// GetAgentOrdersQueryResponse represents one order in an agent's work list.
type GetAgentOrdersQueryResponse struct {
	ID          kernel.UUID
	Status      order.Status
	DeliveredAt *time.Time
	CreatedAt   time.Time
}
