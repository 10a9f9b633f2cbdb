package errs

import "strings"

type ErrorMessage struct {
	Message string
}

func (e *ErrorMessage) Error() string { return e.Message }

type NotFoundError struct {
	ErrorMessage
}

// DuplicateBudgetError reports a violation of the one-budget-per-(month, category)
// invariant.
type DuplicateBudgetError struct {
	ErrorMessage
}

// ValidationError carries one message per violated field so callers can report
// all of them at once.
type ValidationError struct {
	ErrorMessage
	Fields []string
}

// StoreUnavailableError reports that the persistence layer could not be reached.
// The core does not retry; retry policy belongs to the caller.
type StoreUnavailableError struct {
	ErrorMessage
}

func NewNotFoundError(message string) *NotFoundError {
	return &NotFoundError{
		ErrorMessage: ErrorMessage{Message: message},
	}
}

func NewDuplicateBudgetError(month, category string) *DuplicateBudgetError {
	return &DuplicateBudgetError{
		ErrorMessage: ErrorMessage{Message: "a budget for category " + category + " in " + month + " already exists"},
	}
}

func NewValidationError(fields ...string) *ValidationError {
	return &ValidationError{
		ErrorMessage: ErrorMessage{Message: strings.Join(fields, ", ")},
		Fields:       fields,
	}
}

func NewStoreUnavailableError(message string) *StoreUnavailableError {
	return &StoreUnavailableError{
		ErrorMessage: ErrorMessage{Message: message},
	}
}
