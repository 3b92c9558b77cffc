// Package ports defines repository interfaces for the fulfillment domain.
// These interfaces establish contracts between the domain layer and infrastructure,
// enabling dependency inversion and testability.
package ports

import (
	"context"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/order"
)

// OrderRepository defines the persistence contract for order aggregates.
// The repository is the sole writer to the underlying order storage; all
// mutation flows through Update and is all-or-nothing.
type OrderRepository interface {
	// Add persists a new order aggregate to storage.
	// The order must be valid and not already exist in the repository.
	Add(ctx context.Context, aggregate *order.Order) error

	// Update persists changes to an existing order aggregate.
	// The write is atomic: the new status and, when applicable, the delivery
	// timestamp become durably visible together or not at all.
	Update(ctx context.Context, aggregate *order.Order) error

	// Get retrieves an order aggregate by its unique identifier.
	// Returns errs.ErrObjectNotFound (wrapped) when the order does not exist.
	Get(ctx context.Context, id kernel.UUID) (*order.Order, error)

	// GetForUpdate retrieves an order and locks its row for the duration of
	// the enclosing transaction. Used by the status-update workflow so the
	// authorization check, validation, and write happen against one
	// serialized view of the order, closing the read-then-write race between
	// concurrent updates of the same order.
	GetForUpdate(ctx context.Context, id kernel.UUID) (*order.Order, error)

	// IsAssignedTo reports whether the order exists and is assigned to the
	// given agent. A missing order yields false, not an error.
	IsAssignedTo(ctx context.Context, id kernel.UUID, agentID kernel.AgentID) (bool, error)

	// GetAllByAgent retrieves all orders assigned to the given agent,
	// ordered most-recent-first by creation time.
	GetAllByAgent(ctx context.Context, agentID kernel.AgentID) ([]*order.Order, error)
}
