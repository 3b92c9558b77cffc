package commands

import (
	"errors"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/order"
	"fulfillment/internal/pkg/guard"
)

var (
	ErrUpdateOrderStatusCommandIsNotConstructed = errors.New(
		"UpdateOrderStatusCommand must be created via NewUpdateOrderStatusCommand constructor",
	)
)

// UpdateOrderStatusCommand represents a delivery agent's request to advance an
// order to the next lifecycle status. The optional location is carried for
// audit/telemetry only and never affects whether the transition is accepted.
//
// Example:
//
//	cmd, err := NewUpdateOrderStatusCommand(orderID, order.OnRoute, agentID, nil)
//	if err != nil {
//	    return fmt.Errorf("invalid request: %w", err)
//	}
//
//	result := handler.Handle(ctx, cmd)
//	if !result.Success {
//	    log.Printf("update rejected: %s", result.Message)
//	}
type UpdateOrderStatusCommand struct { //nolint:recvcheck //using for validation
	orderID   kernel.UUID
	newStatus order.Status
	agentID   kernel.AgentID
	location  *kernel.GeoLocation

	guard guard.ConstructorGuard
}

// NewUpdateOrderStatusCommand creates a command to advance an order's status.
// Validates that the order ID, requested status, and agent ID are all valid,
// and, when a location is supplied, that its coordinates are in range.
func NewUpdateOrderStatusCommand(
	orderID kernel.UUID,
	newStatus order.Status,
	agentID kernel.AgentID,
	location *kernel.GeoLocation,
) (UpdateOrderStatusCommand, error) {
	cmd := UpdateOrderStatusCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setNewStatus(newStatus),
		cmd.setAgentID(agentID),
		cmd.setLocation(location),
	); err != nil {
		return UpdateOrderStatusCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrUpdateOrderStatusCommandIsNotConstructed if validation fails.
func (c UpdateOrderStatusCommand) Validate() error {
	return c.guard.Validate(ErrUpdateOrderStatusCommandIsNotConstructed)
}

// OrderID returns the identifier of the order to advance.
func (c UpdateOrderStatusCommand) OrderID() kernel.UUID {
	return c.orderID
}

// NewStatus returns the requested target status.
func (c UpdateOrderStatusCommand) NewStatus() order.Status {
	return c.newStatus
}

// AgentID returns the identifier of the requesting agent.
func (c UpdateOrderStatusCommand) AgentID() kernel.AgentID {
	return c.agentID
}

// Location returns the agent's reported location, or nil when none was supplied.
func (c UpdateOrderStatusCommand) Location() *kernel.GeoLocation {
	return c.location
}

func (c *UpdateOrderStatusCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}
	c.orderID = orderID
	return nil
}

func (c *UpdateOrderStatusCommand) setNewStatus(newStatus order.Status) error {
	if err := newStatus.Validate(); err != nil {
		return err
	}
	c.newStatus = newStatus
	return nil
}

func (c *UpdateOrderStatusCommand) setAgentID(agentID kernel.AgentID) error {
	if err := agentID.Validate(); err != nil {
		return err
	}
	c.agentID = agentID
	return nil
}

func (c *UpdateOrderStatusCommand) setLocation(location *kernel.GeoLocation) error {
	if location == nil {
		return nil
	}
	if err := location.Validate(); err != nil {
		return err
	}
	c.location = location
	return nil
}
