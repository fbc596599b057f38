// Package errs provides the standardized error types used throughout the
// shopfloor application.
//
// Each error type follows the same pattern:
//   - a sentinel error variable (e.g. ErrValueIsRequired)
//   - a struct type carrying the error details
//   - constructor functions with and without an underlying cause
//   - Error() for formatting and Unwrap() for errors.Is classification
//
// The HTTP adapter maps these categories onto response codes: required and
// invalid values become 400s, out-of-range values 422s, missing objects 404s
// and version conflicts 409s. Domain packages therefore never need to know
// about transport concerns to report a failure precisely.
package errs
