package order

import (
	"fmt"

	"fulfillment/internal/pkg/errs"
)

// Status represents the lifecycle state of an order.
// It implements a strictly linear, one-directional state machine: an order
// moves through the fulfillment sequence one step at a time and can never
// move backwards.
//
// State transitions:
//
//	Preparing ──> OnRoute ──> Delivered
//
// There are no retries, rollbacks, or cancellation paths; Delivered is a
// terminal state and orders frozen there accept no further transitions.
//
// Status is a value object that validates state transitions and provides
// string representations for persistence and display.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	Unknown Status = iota

	// Preparing is the initial status when an order is first created.
	// The restaurant is still preparing the order for pickup.
	Preparing

	// OnRoute indicates the assigned agent has picked up the order
	// and is on the way to the customer.
	OnRoute

	// Delivered indicates the order has reached the customer.
	// This is a final state with no further transitions allowed.
	Delivered
)

// getStatusStrings returns a map of Status values to their string representations.
// All statuses are included for string conversion.
func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:   "Unknown",
		Preparing: "Preparing",
		OnRoute:   "OnRoute",
		Delivered: "Delivered",
	}
}

// getValidStatusStrings returns a map of only valid Status values.
// Only valid statuses are included to support validation and parsing.
func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // Unknown is intentionally excluded as it's invalid
	return map[Status]string{
		Preparing: "Preparing",
		OnRoute:   "OnRoute",
		Delivered: "Delivered",
	}
}

// ParseStatus converts a stored string representation back into a Status.
// Only the three valid lifecycle states parse successfully; any other value
// is rejected at the storage boundary so corrupt status text never enters
// the domain.
//
// Example:
//
//	status, err := order.ParseStatus("OnRoute")
//	if err != nil {
//	    return fmt.Errorf("corrupt status column: %w", err)
//	}
func ParseStatus(s string) (Status, error) {
	for status, str := range getValidStatusStrings() {
		if str == s {
			return status, nil
		}
	}
	return Unknown, errs.NewValueIsInvalidErrorWithCause("status",
		fmt.Errorf("%q is not a valid status", s))
}

// Validate checks if the Status value is valid.
//
// Valid statuses are: Preparing, OnRoute, Delivered.
// Unknown (0) and any other values are invalid.
//
// This method is used to ensure Status values from external sources
// (e.g., database, API) are valid before use.
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status is invalid", fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// String returns the human-readable name of the status.
//
// Returns "Preparing", "OnRoute", or "Delivered" for valid statuses and
// "Unknown" for invalid status values. Implements the fmt.Stringer interface
// and is safe to call on any Status value, including invalid ones.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "Unknown"
}

// IsValidNext reports whether requested is the legal immediate successor of
// the current status.
//
// The only legal transitions are:
//   - Preparing -> OnRoute
//   - OnRoute -> Delivered
//
// Every other pair is illegal, including self-transitions, skips
// (Preparing -> Delivered), and any transition out of Delivered.
// The function is pure, total, and side-effect free.
func (s Status) IsValidNext(requested Status) bool {
	switch s {
	case Preparing:
		return requested == OnRoute
	case OnRoute:
		return requested == Delivered
	case Delivered:
		return false
	default:
		return false
	}
}

// IsTerminal reports whether the status accepts no further transitions.
func (s Status) IsTerminal() bool {
	return s == Delivered
}

// Next transitions the status to the requested value.
//
// Returns:
//   - (requested, nil) when requested is the legal immediate successor
//   - (0, error) when the transition is not allowed from the current status;
//     the error names both statuses and restates the required sequence
//
// This method is used by Order.Advance() to enforce state transitions.
func (s Status) Next(requested Status) (Status, error) {
	if err := requested.Validate(); err != nil {
		return 0, err
	}

	if !s.IsValidNext(requested) {
		return 0, errs.NewValueIsInvalidErrorWithCause(
			"status transition is invalid",
			fmt.Errorf("cannot transition from %s to %s, status must follow the sequence: Preparing -> OnRoute -> Delivered",
				s.String(), requested.String()),
		)
	}

	return requested, nil
}
