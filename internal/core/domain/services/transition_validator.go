package services

import (
	"fmt"

	"fulfillment/internal/core/domain/model/order"
)

// Verdict messages reported for the fixed failure classes.
const (
	reasonOrderNotFound        = "Order not found"
	reasonInvalidCurrentStatus = "Invalid current order status"
)

// ValidationVerdict is the structured outcome of validating a proposed status
// transition. It is returned both by the standalone dry-run query and embedded
// in the update workflow's failure results.
//
// CurrentStatus is Unknown when the order could not be found or its stored
// status did not resolve to a valid lifecycle state.
type ValidationVerdict struct {
	IsValid         bool
	Reason          string
	CurrentStatus   order.Status
	RequestedStatus order.Status
}

// TransitionValidator is a domain service that decides whether a requested
// status transition is legal for a given order.
//
// The validator is pure: it inspects the aggregate and the status policy and
// produces a verdict without side effects, so it can be used both as a
// pre-flight dry-run check and inside the update workflow. Calling it
// repeatedly with the same inputs always produces the same verdict.
//
// Example:
//
//	validator := services.NewTransitionValidator()
//	verdict := validator.Validate(o, order.OnRoute)
//	if !verdict.IsValid {
//	    return fmt.Errorf("transition rejected: %s", verdict.Reason)
//	}
type TransitionValidator struct{}

// NewTransitionValidator creates a new TransitionValidator instance.
func NewTransitionValidator() TransitionValidator {
	return TransitionValidator{}
}

// Validate judges the transition of o to the requested status.
//
// Verdict cases:
//   - o is nil (order not found): invalid, "Order not found", no current status
//   - o's status is not a recognized lifecycle state: invalid,
//     "Invalid current order status" (guards against storage corruption;
//     ParseStatus at the storage boundary should make this unreachable)
//   - requested is not the immediate successor: invalid, with a reason naming
//     both statuses and restating the required sequence
//   - otherwise: valid, echoing current and requested status
func (v TransitionValidator) Validate(o *order.Order, requested order.Status) ValidationVerdict {
	if o == nil {
		return NotFoundVerdict(requested)
	}
	return v.ValidateStatuses(o.Status(), requested)
}

// ValidateStatuses judges the transition from a bare current status to the
// requested one. Used directly by read paths that resolve the current status
// from storage without reconstructing the full aggregate.
func (v TransitionValidator) ValidateStatuses(current order.Status, requested order.Status) ValidationVerdict {
	if err := current.Validate(); err != nil {
		return InvalidCurrentStatusVerdict(requested)
	}

	if err := requested.Validate(); err != nil {
		return ValidationVerdict{
			IsValid:         false,
			Reason:          fmt.Sprintf("Requested status %s is not a valid order status", requested),
			CurrentStatus:   current,
			RequestedStatus: requested,
		}
	}

	if !current.IsValidNext(requested) {
		return ValidationVerdict{
			IsValid: false,
			Reason: fmt.Sprintf(
				"Cannot transition from %s to %s. Status must follow the sequence: Preparing -> OnRoute -> Delivered",
				current, requested),
			CurrentStatus:   current,
			RequestedStatus: requested,
		}
	}

	return ValidationVerdict{
		IsValid:         true,
		CurrentStatus:   current,
		RequestedStatus: requested,
	}
}

// NotFoundVerdict builds the verdict reported when the referenced order does
// not exist. Exposed so application handlers produce an identical verdict
// without fabricating a nil aggregate.
func NotFoundVerdict(requested order.Status) ValidationVerdict {
	return ValidationVerdict{
		IsValid:         false,
		Reason:          reasonOrderNotFound,
		RequestedStatus: requested,
	}
}

// InvalidCurrentStatusVerdict builds the verdict reported when the stored
// status of an order does not resolve to a valid lifecycle state.
func InvalidCurrentStatusVerdict(requested order.Status) ValidationVerdict {
	return ValidationVerdict{
		IsValid:         false,
		Reason:          reasonInvalidCurrentStatus,
		RequestedStatus: requested,
	}
}
