package creation

import "errors"

// ErrBusy is returned when a submission arrives while a generation is
// already in flight.
var ErrBusy = errors.New("subject creation already in progress")

// ErrNotSubmitted is returned by Run when no form has been accepted.
var ErrNotSubmitted = errors.New("no accepted submission to run")

// ValidationError reports a missing required field.
type ValidationError struct {
	MissingName     bool
	MissingSyllabus bool
}

func (e *ValidationError) Error() string {
	return ValidationMessage
}

// GenerationError reports a failed learning path request. Error returns
// the static user-facing message; the cause is kept for logs.
type GenerationError struct {
	Err error
}

func (e *GenerationError) Error() string {
	return GenerationFailedMessage
}

func (e *GenerationError) Unwrap() error { return e.Err }
