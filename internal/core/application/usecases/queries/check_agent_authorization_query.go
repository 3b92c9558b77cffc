package queries

import (
	"errors"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/guard"
)

var (
	ErrCheckAgentAuthorizationQueryIsNotConstructed = errors.New(
		"CheckAgentAuthorizationQuery must be created via NewCheckAgentAuthorizationQuery constructor",
	)
)

// CheckAgentAuthorizationQuery asks whether an agent is allowed to act on an
// order, meaning the order exists and is assigned to that agent. Clients use
// it to enable or disable status controls before attempting an update.
type CheckAgentAuthorizationQuery struct { //nolint:recvcheck //using for validation
	orderID kernel.UUID
	agentID kernel.AgentID

	guard guard.ConstructorGuard
}

// NewCheckAgentAuthorizationQuery creates an authorization check query.
func NewCheckAgentAuthorizationQuery(
	orderID kernel.UUID,
	agentID kernel.AgentID,
) (CheckAgentAuthorizationQuery, error) {
	q := CheckAgentAuthorizationQuery{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		q.setOrderID(orderID),
		q.setAgentID(agentID),
	); err != nil {
		return CheckAgentAuthorizationQuery{}, err
	}

	return q, nil
}

// Validate ensures the query was created through the constructor.
// Returns ErrCheckAgentAuthorizationQueryIsNotConstructed if validation fails.
func (q CheckAgentAuthorizationQuery) Validate() error {
	return q.guard.Validate(ErrCheckAgentAuthorizationQueryIsNotConstructed)
}

// OrderID returns the order being checked.
func (q CheckAgentAuthorizationQuery) OrderID() kernel.UUID {
	return q.orderID
}

// AgentID returns the agent whose authorization is being checked.
func (q CheckAgentAuthorizationQuery) AgentID() kernel.AgentID {
	return q.agentID
}

func (q *CheckAgentAuthorizationQuery) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	q.orderID = orderID
	return nil
}

func (q *CheckAgentAuthorizationQuery) setAgentID(agentID kernel.AgentID) error {
	if err := agentID.Validate(); err != nil {
		return err
	}

	q.agentID = agentID
	return nil
}

// CheckAgentAuthorizationQueryResponse reports the authorization outcome.
// Authorized is true only when the order exists and is assigned to the agent;
// a missing order reports OrderFound false rather than an error.
type CheckAgentAuthorizationQueryResponse struct {
	OrderFound bool
	Authorized bool
}
