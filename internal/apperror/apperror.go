package apperror

import (
	"github.com/pkg/errors"
	"go.mongodb.org/mongo-driver/mongo"
)

// Kind classifies an error for the HTTP layer. The translator maps each
// kind to a status and body deterministically; nothing downstream inspects
// ad hoc error fields.
type Kind int

const (
	KindUnclassified Kind = iota
	KindValidation
	KindConflict
	KindMalformed
)

// Error is a tagged error produced at the point of failure.
type Error struct {
	Kind    Kind
	Message string
	// Status overrides the default 500 for unclassified errors when set.
	Status int
	// Details holds the field -> message mapping for validation errors.
	Details map[string]string
	Err     error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Validation builds a ValidationFailed error from a field error mapping.
func Validation(details map[string]string) *Error {
	return &Error{
		Kind:    KindValidation,
		Message: "Validation failed",
		Details: details,
	}
}

// Conflict marks a uniqueness violation reported by the store.
func Conflict(err error) *Error {
	return &Error{
		Kind:    KindConflict,
		Message: "Resource already exists",
		Err:     err,
	}
}

// Malformed marks structurally invalid input: an unparseable body or a
// value the store rejects outright.
func Malformed(err error) *Error {
	return &Error{
		Kind:    KindMalformed,
		Message: "Invalid data",
		Err:     err,
	}
}

// badValueCode is the server code Mongo returns for values it cannot
// interpret, such as a broken filter document.
const badValueCode = 2

// FromStore classifies an error returned by the record store. Duplicate
// keys become conflicts, rejected values become malformed input, and
// everything else passes through wrapped with its call stack.
func FromStore(err error) error {
	if err == nil {
		return nil
	}
	if mongo.IsDuplicateKeyError(err) {
		return Conflict(err)
	}
	var cmdErr mongo.CommandError
	if errors.As(err, &cmdErr) && cmdErr.Code == badValueCode {
		return Malformed(err)
	}
	return errors.Wrap(err, "store")
}
