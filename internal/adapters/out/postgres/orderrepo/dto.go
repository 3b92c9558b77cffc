// Package orderrepo provides data transfer objects and mapping functions for order persistence.
// This package implements the repository pattern for the order domain aggregate, handling
// the conversion between domain entities and database representations.
package orderrepo

import (
	"time"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/order"

	"github.com/google/uuid"
)

// OrderDTO represents the database structure for persisting order aggregates.
// Maps order domain entities to relational database tables with proper indexing
// for efficient querying by status and agent assignment.
//
// Status is stored as text ("Preparing", "OnRoute", "Delivered") and resolved
// back through order.ParseStatus, so an unrecognized stored value surfaces as
// an error at load time instead of flowing into the domain.
type OrderDTO struct {
	ID          uuid.UUID  `gorm:"type:uuid;primaryKey"`
	AgentID     *string    `gorm:"type:varchar(255);index"`
	Status      string     `gorm:"type:varchar(32);not null;index"`
	DeliveredAt *time.Time `gorm:"type:timestamptz"`
	CreatedAt   time.Time  `gorm:"type:timestamptz;not null"`
}

// TableName specifies the database table name for order entities.
// Overrides GORM's default naming convention to use "orders".
func (OrderDTO) TableName() string {
	return "orders"
}

// fromDomain converts an order domain aggregate to its database representation.
// Maps all order attributes including optional agent assignment.
func fromDomain(aggregate *order.Order) OrderDTO {
	var agentID *string
	if id := aggregate.AssignedAgent(); id != nil {
		raw := id.String()
		agentID = &raw
	}

	return OrderDTO{
		ID:          aggregate.ID().Bytes(),
		AgentID:     agentID,
		Status:      aggregate.Status().String(),
		DeliveredAt: aggregate.DeliveredAt(),
		CreatedAt:   aggregate.CreatedAt(),
	}
}

// toDomain converts a database DTO to an order domain aggregate.
// Reconstructs the complete aggregate including status and agent assignment using RestoreOrder.
func toDomain(dto OrderDTO) (*order.Order, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	status, err := order.ParseStatus(dto.Status)
	if err != nil {
		return nil, err
	}

	var agentID *kernel.AgentID
	if dto.AgentID != nil {
		aID, agentErr := kernel.NewAgentID(*dto.AgentID)
		if agentErr != nil {
			return nil, agentErr
		}

		agentID = &aID
	}

	return order.RestoreOrder(id, agentID, status, dto.DeliveredAt, dto.CreatedAt)
}
