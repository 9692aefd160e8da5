// Package errors provides the consumer-side error taxonomy for the Workgrid
// core. The dispatcher's retry policy keys off the Class of an error:
// transient errors are retried with backoff, poison errors go to the
// dead-letter sink, and policy violations are the only class surfaced
// synchronously to an end-user-facing caller.
package errors

import (
	"errors"
	"fmt"
)

// Class partitions consumer errors by how they propagate.
type Class string

const (
	// ClassTransient covers store/bus unavailability. Retry with backoff;
	// never mark the event processed.
	ClassTransient Class = "TRANSIENT"

	// ClassPoison covers malformed or unsupported payloads. Dead-letter
	// after bounded retries and continue with the next message.
	ClassPoison Class = "POISON"

	// ClassPolicyViolation covers fail-closed cache misses on authorization
	// checks. Surfaced to the caller as a rejection, not a system error.
	ClassPolicyViolation Class = "POLICY_VIOLATION"

	// ClassSagaStepFailure is a participant reporting permanent failure.
	// Triggers compensation, not a crash.
	ClassSagaStepFailure Class = "SAGA_STEP_FAILURE"

	// ClassCompensationFailure means a compensation itself failed. The saga
	// is marked FAILED and surfaced on the operator channel, never dropped.
	ClassCompensationFailure Class = "COMPENSATION_FAILURE"
)

// ConsumerError is a structured error carrying its propagation class and a
// machine-readable code.
type ConsumerError struct {
	Class   Class  `json:"class"`
	Code    string `json:"code"`
	Message string `json:"message"`
	Err     error  `json:"-"`
}

// Error implements the error interface.
func (e *ConsumerError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s/%s: %s: %v", e.Class, e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("%s/%s: %s", e.Class, e.Code, e.Message)
}

// Unwrap returns the underlying error for errors.Is/As support.
func (e *ConsumerError) Unwrap() error {
	return e.Err
}

// Transient creates a transient infrastructure error.
func Transient(code, message string, err error) *ConsumerError {
	return &ConsumerError{Class: ClassTransient, Code: code, Message: message, Err: err}
}

// Poison creates a poison-message error.
func Poison(code, message string, err error) *ConsumerError {
	return &ConsumerError{Class: ClassPoison, Code: code, Message: message, Err: err}
}

// PolicyViolation creates a fail-closed rejection.
func PolicyViolation(code, message string) *ConsumerError {
	return &ConsumerError{Class: ClassPolicyViolation, Code: code, Message: message}
}

// SagaStepFailure creates a permanent step failure.
func SagaStepFailure(code, message string, err error) *ConsumerError {
	return &ConsumerError{Class: ClassSagaStepFailure, Code: code, Message: message, Err: err}
}

// CompensationFailure creates a failed-compensation error.
func CompensationFailure(code, message string, err error) *ConsumerError {
	return &ConsumerError{Class: ClassCompensationFailure, Code: code, Message: message, Err: err}
}

// ClassOf returns the class of err, or ClassTransient when err carries no
// class. Defaulting unknown errors to transient keeps at-least-once delivery:
// an unclassified failure is retried rather than silently dropped.
func ClassOf(err error) Class {
	var ce *ConsumerError
	if errors.As(err, &ce) {
		return ce.Class
	}
	return ClassTransient
}

// IsPoison reports whether err should skip further retries and go straight
// to the dead-letter sink.
func IsPoison(err error) bool {
	return ClassOf(err) == ClassPoison
}

// IsTransient reports whether err should be retried with backoff.
func IsTransient(err error) bool {
	return ClassOf(err) == ClassTransient
}

// IsPolicyViolation reports whether err is a fail-closed rejection.
func IsPolicyViolation(err error) bool {
	return ClassOf(err) == ClassPolicyViolation
}

// AsConsumerError checks if an error is a ConsumerError and returns it.
func AsConsumerError(err error) (*ConsumerError, bool) {
	var ce *ConsumerError
	if errors.As(err, &ce) {
		return ce, true
	}
	return nil, false
}
