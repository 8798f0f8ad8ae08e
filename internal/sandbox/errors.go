package sandbox

import (
	"errors"
	"fmt"
	"time"
)

var (
	ErrExecutionTimeout   = errors.New("execution timeout")
	ErrExecutionCancelled = errors.New("execution cancelled")
	ErrScriptFault        = errors.New("script fault")
	ErrRuntimeClosed      = errors.New("sandbox runtime is closed")
)

// unknownErrorMessage is reported when a script throws a value with no message
const unknownErrorMessage = "An unknown error occurred"

// ScriptError is a failed run. Error returns the learner-facing message.
// Cause is the engine failure or limit that stopped the run; a nil Cause
// is a plain script fault.
type ScriptError struct {
	Message string
	Cause   error
}

func (e *ScriptError) Error() string {
	return e.Message
}

// Is matches ErrScriptFault for faults with no more specific cause
func (e *ScriptError) Is(target error) bool {
	return target == ErrScriptFault && e.Cause == nil
}

func (e *ScriptError) Unwrap() error {
	return e.Cause
}

func timeoutError(limit time.Duration) *ScriptError {
	return &ScriptError{
		Message: fmt.Sprintf("Execution timeout: Code took too long to execute (max %s)", describeLimit(limit)),
		Cause:   ErrExecutionTimeout,
	}
}

func cancelledError() *ScriptError {
	return &ScriptError{Message: "Execution cancelled", Cause: ErrExecutionCancelled}
}

func describeLimit(d time.Duration) string {
	if d%time.Second == 0 {
		s := int(d / time.Second)
		if s == 1 {
			return "1 second"
		}
		return fmt.Sprintf("%d seconds", s)
	}
	return d.String()
}
