// Package errs provides the error types shared across the fulfillment service.
// It establishes one pattern for creating, formatting, and unwrapping errors so
// callers can classify failures with errors.Is instead of string matching.
//
// Error types covered:
//   - ValueIsRequiredError: a required value is missing
//   - ValueIsInvalidError: a value is present but unacceptable
//   - ObjectNotFoundError: a requested object does not exist
//
// Each type follows the same shape:
//   - a sentinel error variable (e.g., ErrValueIsRequired) to match against
//   - a struct carrying the failure details
//   - constructors with and without an underlying cause
//   - Error() for the message, Unwrap() chaining to the sentinel and cause
//
// The update workflow relies on this: a repository translates a missing row
// into ObjectNotFoundError, and the handler matches errs.ErrObjectNotFound to
// produce the "Order not found" result.
package errs
