// Package errs provides the error types shared by the hub.
//
// Every error type pairs a sentinel (ErrValueIsRequired, ErrValueIsInvalid,
// ErrObjectNotFound) with a struct carrying details, so callers can classify a
// failure with errors.Is while still logging the parameter that caused it:
//   - ValueIsRequiredError: a required payload field is missing
//   - ValueIsInvalidError: a field is present but not acceptable
//   - ObjectNotFoundError: a lookup in the ledger found nothing
package errs
