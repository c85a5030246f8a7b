package aggregates

import (
	"errors"
	"fmt"
	"strings"
)

// NotFoundError reports a lookup by id that matched no row. The message
// format is part of the repository contract and asserted by callers.
type NotFoundError struct {
	Entity string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s not found", e.Entity)
}

// NewNotFound builds the canonical not-found error for an entity kind
// ("Customer", "Product", "Order").
func NewNotFound(entity string) error {
	return &NotFoundError{Entity: strings.TrimSpace(entity)}
}

// InvalidAggregateStateError reports a constructor or mutation that would
// leave an aggregate violating one of its own invariants. It is raised
// before any persistence happens.
type InvalidAggregateStateError struct {
	Aggregate string
	Reason    string
}

func (e *InvalidAggregateStateError) Error() string {
	if e.Reason == "" {
		return fmt.Sprintf("%s: invalid aggregate state", e.Aggregate)
	}
	return fmt.Sprintf("%s: invalid aggregate state: %s", e.Aggregate, e.Reason)
}

// NewInvalidState builds an invariant-violation error for an aggregate.
func NewInvalidState(aggregate, reason string) error {
	return &InvalidAggregateStateError{
		Aggregate: strings.TrimSpace(aggregate),
		Reason:    strings.TrimSpace(reason),
	}
}

// ValidationError reports a single field value rejected by an entity
// constructor or mutator.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Reason)
}

// NewValidation builds a field-level validation error.
func NewValidation(field, reason string) error {
	return &ValidationError{
		Field:  strings.TrimSpace(field),
		Reason: strings.TrimSpace(reason),
	}
}

// PersistenceError wraps a storage failure. By the time it is returned the
// enclosing transaction has rolled back; no partial writes survive.
type PersistenceError struct {
	Op  string
	Err error
}

func (e *PersistenceError) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("%s: persistence failure", e.Op)
	}
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e *PersistenceError) Unwrap() error { return e.Err }

// NewPersistence wraps a storage error with the failing operation name.
func NewPersistence(op string, err error) error {
	if err == nil {
		return nil
	}
	return &PersistenceError{Op: strings.TrimSpace(op), Err: err}
}

// IsNotFound checks whether err (or a wrapped err) is a not-found failure.
func IsNotFound(err error) bool {
	var nf *NotFoundError
	return errors.As(err, &nf)
}

// IsInvalidState checks for an aggregate invariant violation.
func IsInvalidState(err error) bool {
	var ias *InvalidAggregateStateError
	return errors.As(err, &ias)
}

// IsValidation checks for a field-level rejection.
func IsValidation(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}

// IsPersistence checks for a storage failure.
func IsPersistence(err error) bool {
	var pe *PersistenceError
	return errors.As(err, &pe)
}
