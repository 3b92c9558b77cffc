package queries

import (
	"context"
	"time"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/order"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetAgentOrdersQueryHandler retrieves an agent's assigned orders from the database.
//
// Example:
//
//	handler := NewGetAgentOrdersQueryHandler(db)
//	query, _ := NewGetAgentOrdersQuery(agentID)
//
//	orders, err := handler.Handle(ctx, query)
//	if err != nil {
//	    log.Printf("Failed to get agent orders: %v", err)
//	    return err
//	}
type GetAgentOrdersQueryHandler struct {
	db *gorm.DB
}

// NewGetAgentOrdersQueryHandler creates a handler for agent work-list queries.
// Requires a GORM database connection for query execution.
func NewGetAgentOrdersQueryHandler(db *gorm.DB) GetAgentOrdersQueryHandler {
	return GetAgentOrdersQueryHandler{db: db}
}

// Handle executes the query to retrieve all orders assigned to the agent.
// Results are sorted newest first by creation time.
func (h GetAgentOrdersQueryHandler) Handle(
	ctx context.Context,
	query GetAgentOrdersQuery,
) ([]GetAgentOrdersQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	orders := make([]GetAgentOrdersQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			status,
			delivered_at,
			created_at
		FROM orders
		WHERE agent_id = ?
		ORDER BY created_at DESC
	`, query.AgentID().String()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var id uuid.UUID
		var status string
		var deliveredAt *time.Time
		var createdAt time.Time

		err = rows.Scan(
			&id,
			&status,
			&deliveredAt,
			&createdAt,
		)
		if err != nil {
			return nil, err
		}

		orderID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}

		orderStatus, statusErr := order.ParseStatus(status)
		if statusErr != nil {
			return nil, statusErr
		}

		orders = append(orders, GetAgentOrdersQueryResponse{
			ID:          orderID,
			Status:      orderStatus,
			DeliveredAt: deliveredAt,
			CreatedAt:   createdAt,
		})
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return orders, nil
}
