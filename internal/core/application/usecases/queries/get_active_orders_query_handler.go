package queries

import (
	"context"
	"time"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/order"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetActiveOrdersQueryHandler retrieves in-flight orders from the database.
// Filters out delivered orders to provide active workload visibility.
type GetActiveOrdersQueryHandler struct {
	db *gorm.DB
}

// NewGetActiveOrdersQueryHandler creates a handler for in-flight order queries.
// Requires a GORM database connection for query execution.
func NewGetActiveOrdersQueryHandler(db *gorm.DB) GetActiveOrdersQueryHandler {
	return GetActiveOrdersQueryHandler{db: db}
}

// Handle executes the query to retrieve all orders not yet delivered.
// Results are sorted oldest first so the longest-waiting orders lead.
func (h GetActiveOrdersQueryHandler) Handle(
	ctx context.Context,
	query GetActiveOrdersQuery,
) ([]GetActiveOrdersQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	orders := make([]GetActiveOrdersQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			agent_id,
			status,
			created_at
		FROM orders
		WHERE status != ?
		ORDER BY created_at
	`, order.Delivered.String()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var id uuid.UUID
		var agentID *string
		var status string
		var createdAt time.Time

		err = rows.Scan(
			&id,
			&agentID,
			&status,
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

		var assignedAgent *kernel.AgentID
		if agentID != nil {
			aID, agentErr := kernel.NewAgentID(*agentID)
			if agentErr != nil {
				return nil, agentErr
			}
			assignedAgent = &aID
		}

		orders = append(orders, GetActiveOrdersQueryResponse{
			ID:        orderID,
			AgentID:   assignedAgent,
			Status:    orderStatus,
			CreatedAt: createdAt,
		})
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return orders, nil
}
