package queries

import (
	"context"
	"database/sql"
	"errors"

	"gorm.io/gorm"
)

// CheckAgentAuthorizationQueryHandler resolves agent authorization checks
// against the orders table.
type CheckAgentAuthorizationQueryHandler struct {
	db *gorm.DB
}

// NewCheckAgentAuthorizationQueryHandler creates a handler for authorization checks.
// Requires a GORM database connection for query execution.
func NewCheckAgentAuthorizationQueryHandler(db *gorm.DB) CheckAgentAuthorizationQueryHandler {
	return CheckAgentAuthorizationQueryHandler{db: db}
}

// Handle looks up the order's assigned agent and compares it to the requester.
// A missing order yields OrderFound false, not an error; an unassigned order
// yields Authorized false.
func (h CheckAgentAuthorizationQueryHandler) Handle(
	ctx context.Context,
	query CheckAgentAuthorizationQuery,
) (CheckAgentAuthorizationQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return CheckAgentAuthorizationQueryResponse{}, err
	}

	var assignedAgent *string
	row := h.db.WithContext(ctx).Raw(`
		SELECT agent_id
		FROM orders
		WHERE id = ?
	`, query.OrderID().Bytes()).Row()

	err := row.Scan(&assignedAgent)
	if errors.Is(err, sql.ErrNoRows) {
		return CheckAgentAuthorizationQueryResponse{}, nil
	}
	if err != nil {
		return CheckAgentAuthorizationQueryResponse{}, err
	}

	return CheckAgentAuthorizationQueryResponse{
		OrderFound: true,
		Authorized: assignedAgent != nil && *assignedAgent == query.AgentID().String(),
	}, nil
}
