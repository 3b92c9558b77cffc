// Package order provides domain entities and business logic for order management
// in the fulfillment service. It implements the Order aggregate root with lifecycle
// management and state transitions.
//
// The package includes:
//   - Order: The aggregate root that manages order identity, assignment, and lifecycle
//   - Status: A state machine that enforces valid order status transitions
//
// Key business rules:
//   - Orders must have a valid unique identifier
//   - Order status follows a fixed linear workflow: Preparing -> OnRoute -> Delivered
//   - Only the assigned delivery agent may advance an order
//   - The delivery timestamp is recorded exactly once, on the transition to Delivered
//   - Delivered is terminal; no transitions leave it
//
// The package follows Domain-Driven Design principles, providing rich domain
// behavior, encapsulation, and validation to ensure business rules are enforced.
package order
