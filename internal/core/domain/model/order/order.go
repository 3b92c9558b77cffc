package order

import (
	"errors"
	"time"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/errs"
)

var (
	// ErrOrderIsNotConstructed is returned when an Order instance was not created through
	// the NewOrder or RestoreOrder factory methods. This ensures all orders are properly validated.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder or RestoreOrder constructor")

	// ErrDeliveredAtInconsistent is returned when restoring an order whose
	// delivered timestamp does not match its status. DeliveredAt must be set
	// if and only if the status is Delivered.
	ErrDeliveredAtInconsistent = errors.New("DeliveredAt must be set if and only if status is Delivered")
)

// Order represents a customer purchase tracked through the delivery lifecycle.
// It is the aggregate root that manages the order's status progression from
// preparation through delivery.
//
// Order follows these invariants:
//   - Must have a valid unique identifier
//   - Status transitions follow the fixed sequence Preparing -> OnRoute -> Delivered
//   - DeliveredAt is set exactly once, when and only when the order transitions to Delivered
//   - Only the assigned agent is permitted to advance the order
//   - Can only be created through NewOrder or RestoreOrder
//
// The Order struct uses private fields to ensure encapsulation and maintains
// its invariants through validated methods.
type Order struct {
	// id is the unique identifier for the order
	id kernel.UUID

	// agentID is the assigned delivery agent (nil if unassigned)
	agentID *kernel.AgentID

	// status is the current state in the fulfillment lifecycle
	status Status

	// deliveredAt is set exactly once, on the transition to Delivered
	deliveredAt *time.Time

	// createdAt is when the order was placed; used for most-recent-first listings
	createdAt time.Time

	// isConstructed ensures the order was created via a constructor
	isConstructed bool
}

// NewOrder creates a new Order in Preparing status.
// This is the entry point of the order-placement flow; the order starts
// unassigned and must be assigned to an agent before it can be advanced.
//
// Parameters:
//   - id: Unique identifier for the order (must be valid)
//   - createdAt: When the order was placed (must be non-zero)
//
// Returns the created order, or a validation error if any parameter is invalid.
func NewOrder(id kernel.UUID, createdAt time.Time) (*Order, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}
	if createdAt.IsZero() {
		return nil, errs.NewValueIsRequiredError("createdAt")
	}

	return &Order{
		id:            id,
		status:        Preparing,
		createdAt:     createdAt,
		isConstructed: true,
	}, nil
}

// RestoreOrder reconstructs an Order from its persisted state.
// Used by repositories when loading aggregates; enforces the same invariants
// as NewOrder plus the DeliveredAt/status consistency rule.
func RestoreOrder(
	id kernel.UUID,
	agentID *kernel.AgentID,
	status Status,
	deliveredAt *time.Time,
	createdAt time.Time,
) (*Order, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}
	if err := status.Validate(); err != nil {
		return nil, err
	}
	if agentID != nil {
		if err := agentID.Validate(); err != nil {
			return nil, err
		}
	}
	if (deliveredAt != nil) != (status == Delivered) {
		return nil, ErrDeliveredAtInconsistent
	}

	return &Order{
		id:            id,
		agentID:       agentID,
		status:        status,
		deliveredAt:   deliveredAt,
		createdAt:     createdAt,
		isConstructed: true,
	}, nil
}

// Validate ensures the Order instance was properly constructed through a factory method.
// This prevents bypassing validation by directly instantiating the struct.
func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}

	return nil
}

// IsEqual compares two orders by their unique identifiers.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

// ID returns the order's unique identifier.
func (o *Order) ID() kernel.UUID {
	return o.id
}

// Status returns the current status of the order.
func (o *Order) Status() Status {
	return o.status
}

// AssignedAgent returns the assigned agent's ID.
// Returns nil if no agent is assigned.
func (o *Order) AssignedAgent() *kernel.AgentID {
	return o.agentID
}

// DeliveredAt returns the delivery timestamp.
// Returns nil unless the order has been delivered.
func (o *Order) DeliveredAt() *time.Time {
	return o.deliveredAt
}

// CreatedAt returns when the order was placed.
func (o *Order) CreatedAt() time.Time {
	return o.createdAt
}

// IsAssignedTo reports whether the given agent is the order's assigned agent.
// Returns false when the order has no assigned agent.
func (o *Order) IsAssignedTo(agentID kernel.AgentID) bool {
	return o.agentID != nil && o.agentID.IsEqual(agentID)
}

// AssignAgent assigns the order to a delivery agent.
//
// Business rules:
//   - The agent ID must be valid
//   - Delivered orders cannot be reassigned
//
// Reassignment of an in-flight order is allowed; dispatch may hand an order
// to a different agent before it leaves the restaurant.
func (o *Order) AssignAgent(agentID kernel.AgentID) error {
	if err := agentID.Validate(); err != nil {
		return err
	}
	if o.status.IsTerminal() {
		return errs.NewValueIsInvalidErrorWithCause("status is invalid",
			errors.New("cannot reassign a delivered order"))
	}

	o.agentID = &agentID
	return nil
}

// Advance moves the order to the requested status.
//
// Business rules:
//   - The requested status must be the legal immediate successor of the current status
//   - Transitioning to Delivered records the delivery timestamp exactly once
//
// Parameters:
//   - requested: The target status
//   - now: The processing time, recorded as DeliveredAt on the final transition
//
// Returns an error naming both statuses if the transition is not allowed;
// the order is left unchanged on failure.
func (o *Order) Advance(requested Status, now time.Time) error {
	newStatus, err := o.status.Next(requested)
	if err != nil {
		return err
	}

	o.status = newStatus
	if newStatus == Delivered {
		deliveredAt := now
		o.deliveredAt = &deliveredAt
	}
	return nil
}
