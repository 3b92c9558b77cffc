// Package services provides domain services that implement business decisions
// spanning the order aggregate and its callers in the fulfillment service.
//
// The package includes:
//   - TransitionValidator: A domain service that judges whether a requested
//     status transition is legal and reports a structured verdict
//
// Domain services here are pure: they take domain objects as input, perform
// no I/O, and are safe to call repeatedly with identical inputs.
package services
