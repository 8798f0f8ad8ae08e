package engine

import (
	"errors"
	"fmt"
)

// Failure categories. Every *OpError matches exactly one of these.
var (
	ErrCapacityExceeded = errors.New("capacity exceeded")
	ErrUnderflow        = errors.New("underflow")
	ErrIndexOutOfRange  = errors.New("index out of range")
	ErrNotFound         = errors.New("not found")
	ErrDuplicateKey     = errors.New("duplicate key")
	ErrDuplicateVertex  = errors.New("duplicate vertex")
)

// OpError is a failed structure operation. Error returns the learner-facing
// message unchanged.
type OpError struct {
	Op      string
	Kind    error
	Message string
}

func (e *OpError) Error() string {
	return e.Message
}

// Is matches the failure category
func (e *OpError) Is(target error) bool {
	return target == e.Kind
}

// Unwrap exposes the failure category
func (e *OpError) Unwrap() error {
	return e.Kind
}

func opError(op string, kind error, format string, args ...any) *OpError {
	return &OpError{Op: op, Kind: kind, Message: fmt.Sprintf(format, args...)}
}

// KindName returns the taxonomy name of an engine failure, or "" when err
// is not one.
func KindName(err error) string {
	switch {
	case errors.Is(err, ErrCapacityExceeded):
		return "CapacityExceeded"
	case errors.Is(err, ErrUnderflow):
		return "Underflow"
	case errors.Is(err, ErrIndexOutOfRange):
		return "IndexOutOfRange"
	case errors.Is(err, ErrNotFound):
		return "NotFound"
	case errors.Is(err, ErrDuplicateKey):
		return "DuplicateKey"
	case errors.Is(err, ErrDuplicateVertex):
		return "DuplicateVertex"
	}
	return ""
}
