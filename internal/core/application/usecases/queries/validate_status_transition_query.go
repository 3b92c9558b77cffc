// Package queries contains read-only operations in the CQRS architecture.
// Query handlers read the database directly, bypassing the aggregate
// repositories, and return plain response structures.
package queries

import (
	"errors"
	"strings"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/errs"
	"fulfillment/internal/pkg/guard"
)

var (
	ErrValidateStatusTransitionQueryIsNotConstructed = errors.New(
		"ValidateStatusTransitionQuery must be created via NewValidateStatusTransitionQuery constructor",
	)
)

// ValidateStatusTransitionQuery asks whether moving an order to the requested
// status would be accepted, without changing anything. The requested status is
// carried as raw text so an unrecognized value produces a verdict naming it
// instead of an error.
//
// Example:
//
//	query, _ := NewValidateStatusTransitionQuery(orderID, "OnRoute")
//	handler := NewValidateStatusTransitionQueryHandler(db)
//
//	verdict, err := handler.Handle(ctx, query)
//	if err != nil {
//	    return err
//	}
//	fmt.Printf("valid=%v reason=%q\n", verdict.IsValid, verdict.Reason)
type ValidateStatusTransitionQuery struct { //nolint:recvcheck //using for validation
	orderID   kernel.UUID
	newStatus string

	guard guard.ConstructorGuard
}

// NewValidateStatusTransitionQuery creates a dry-run transition check.
// The order ID must be valid and the requested status non-empty; whether the
// status text names a real lifecycle state is the handler's call to judge.
func NewValidateStatusTransitionQuery(orderID kernel.UUID, newStatus string) (ValidateStatusTransitionQuery, error) {
	q := ValidateStatusTransitionQuery{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		q.setOrderID(orderID),
		q.setNewStatus(newStatus),
	); err != nil {
		return ValidateStatusTransitionQuery{}, err
	}

	return q, nil
}

// Validate ensures the query was created through the constructor.
// Returns ErrValidateStatusTransitionQueryIsNotConstructed if validation fails.
func (q ValidateStatusTransitionQuery) Validate() error {
	return q.guard.Validate(ErrValidateStatusTransitionQueryIsNotConstructed)
}

// OrderID returns the order whose transition is being checked.
func (q ValidateStatusTransitionQuery) OrderID() kernel.UUID {
	return q.orderID
}

// NewStatus returns the requested status as raw text.
func (q ValidateStatusTransitionQuery) NewStatus() string {
	return q.newStatus
}

func (q *ValidateStatusTransitionQuery) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	q.orderID = orderID
	return nil
}

func (q *ValidateStatusTransitionQuery) setNewStatus(newStatus string) error {
	if strings.TrimSpace(newStatus) == "" {
		return errs.NewValueIsRequiredError("newStatus")
	}

	q.newStatus = newStatus
	return nil
}

// ValidateStatusTransitionQueryResponse reports the dry-run verdict.
// CurrentStatus is empty when the order was not found or its stored status
// is unusable.
type ValidateStatusTransitionQueryResponse struct {
	OrderID         kernel.UUID
	IsValid         bool
	Reason          string
	CurrentStatus   string
	RequestedStatus string
}
