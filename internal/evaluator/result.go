package evaluator

import (
	"context"
	"errors"

	"github.com/GriffinCanCode/dsaviz/internal/engine"
	"github.com/GriffinCanCode/dsaviz/internal/sandbox"
	"github.com/GriffinCanCode/dsaviz/internal/shared/types"
	"github.com/GriffinCanCode/dsaviz/internal/visual"
)

// ErrorKind classifies a failed run
type ErrorKind string

const (
	KindCapacityExceeded   ErrorKind = "CapacityExceeded"
	KindUnderflow          ErrorKind = "Underflow"
	KindIndexOutOfRange    ErrorKind = "IndexOutOfRange"
	KindNotFound           ErrorKind = "NotFound"
	KindDuplicateKey       ErrorKind = "DuplicateKey"
	KindDuplicateVertex    ErrorKind = "DuplicateVertex"
	KindExecutionTimeout   ErrorKind = "ExecutionTimeout"
	KindExecutionCancelled ErrorKind = "ExecutionCancelled"
	KindScriptFault        ErrorKind = "ScriptFault"
)

// ExecutionResult is the outcome of one run
type ExecutionResult struct {
	Output             []string      `json:"output"`
	Error              string        `json:"error,omitempty"`
	ErrorKind          ErrorKind     `json:"errorKind,omitempty"`
	VisualizationState visual.State  `json:"visualizationState"`
	Kind               types.Capture `json:"kind,omitempty"`
	DurationMs         float64       `json:"durationMs"`
}

// Failed reports whether the run ended with an error
func (r ExecutionResult) Failed() bool {
	return r.ErrorKind != ""
}

// Classify maps a run error to its kind. Engine failures keep their
// taxonomy even when they surfaced as thrown script errors.
func Classify(err error) ErrorKind {
	if err == nil {
		return ""
	}
	if name := engine.KindName(err); name != "" {
		return ErrorKind(name)
	}
	switch {
	case errors.Is(err, sandbox.ErrExecutionTimeout):
		return KindExecutionTimeout
	case errors.Is(err, sandbox.ErrExecutionCancelled),
		errors.Is(err, context.Canceled),
		errors.Is(err, context.DeadlineExceeded):
		return KindExecutionCancelled
	}
	return KindScriptFault
}

// message returns the learner-facing text of a run error
func message(err error) string {
	var se *sandbox.ScriptError
	if errors.As(err, &se) {
		return se.Message
	}
	var oe *engine.OpError
	if errors.As(err, &oe) {
		return oe.Message
	}
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return "Execution cancelled"
	}
	return err.Error()
}
