package queries

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"fulfillment/internal/core/domain/model/order"
	"fulfillment/internal/core/domain/services"

	"gorm.io/gorm"
)

// ValidateStatusTransitionQueryHandler answers dry-run transition checks
// against the current stored status of an order.
//
// The answer is advisory: it reflects the status at read time and carries no
// lock, so a concurrent update can still win the race. The authoritative check
// happens inside the update workflow's transaction.
type ValidateStatusTransitionQueryHandler struct {
	db        *gorm.DB
	validator services.TransitionValidator
}

// NewValidateStatusTransitionQueryHandler creates a handler for dry-run
// transition checks. Requires a GORM database connection for query execution.
func NewValidateStatusTransitionQueryHandler(db *gorm.DB) ValidateStatusTransitionQueryHandler {
	return ValidateStatusTransitionQueryHandler{
		db:        db,
		validator: services.NewTransitionValidator(),
	}
}

// Handle resolves the order's stored status and judges the requested
// transition against it.
//
// Verdict cases mirror the update workflow: a missing order reports
// "Order not found", an unusable stored status reports
// "Invalid current order status", an unrecognized requested status names it,
// and a skipped step restates the required sequence.
func (h ValidateStatusTransitionQueryHandler) Handle(
	ctx context.Context,
	query ValidateStatusTransitionQuery,
) (ValidateStatusTransitionQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return ValidateStatusTransitionQueryResponse{}, err
	}

	requested, parseErr := order.ParseStatus(query.NewStatus())

	var storedStatus string
	row := h.db.WithContext(ctx).Raw(`
		SELECT status
		FROM orders
		WHERE id = ?
	`, query.OrderID().Bytes()).Row()

	err := row.Scan(&storedStatus)
	if errors.Is(err, sql.ErrNoRows) {
		return h.respond(query, services.NotFoundVerdict(requested)), nil
	}
	if err != nil {
		return ValidateStatusTransitionQueryResponse{}, err
	}

	if parseErr != nil {
		return ValidateStatusTransitionQueryResponse{
			OrderID:         query.OrderID(),
			IsValid:         false,
			Reason:          fmt.Sprintf("Requested status %s is not a valid order status", query.NewStatus()),
			CurrentStatus:   storedStatus,
			RequestedStatus: query.NewStatus(),
		}, nil
	}

	current, err := order.ParseStatus(storedStatus)
	if err != nil {
		return h.respond(query, services.InvalidCurrentStatusVerdict(requested)), nil
	}

	return h.respond(query, h.validator.ValidateStatuses(current, requested)), nil
}

func (h ValidateStatusTransitionQueryHandler) respond(
	query ValidateStatusTransitionQuery,
	verdict services.ValidationVerdict,
) ValidateStatusTransitionQueryResponse {
	currentStatus := ""
	if verdict.CurrentStatus != order.Unknown {
		currentStatus = verdict.CurrentStatus.String()
	}

	return ValidateStatusTransitionQueryResponse{
		OrderID:         query.OrderID(),
		IsValid:         verdict.IsValid,
		Reason:          verdict.Reason,
		CurrentStatus:   currentStatus,
		RequestedStatus: query.NewStatus(),
	}
}
