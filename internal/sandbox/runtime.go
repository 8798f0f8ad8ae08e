package sandbox

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/dop251/goja"

	"github.com/GriffinCanCode/dsaviz/internal/facade"
	"github.com/GriffinCanCode/dsaviz/internal/shared/types"
)

// Runtime wraps goja VM with execution limits
type Runtime struct {
	vm     *goja.Runtime
	config Config
	mu     sync.Mutex

	// abandoned is set when a run outlived deadline + grace; the VM may still
	// be executing on its own goroutine and must not be reused
	abandoned bool
}

// run is the per-execution state shared by the injected globals
type run struct {
	vm   *goja.Runtime
	kind types.Kind

	// Console output
	console   []LogEntry
	truncated bool
	maxLines  int
	consoleMu sync.Mutex

	// Facade instances by their script object, in construction order
	adapters map[*goja.Object]facade.Adapter
	created  []facade.Adapter

	// Error objects thrown for engine failures
	thrown map[*goja.Object]error
}

type outcome struct {
	capture Capture
	err     error
}

// New creates a new sandboxed runtime
func New(config Config) (*Runtime, error) {
	if config.Timeout <= 0 {
		return nil, fmt.Errorf("sandbox timeout must be positive, got %s", config.Timeout)
	}
	r := &Runtime{config: config}
	r.vm = r.newVM()
	return r, nil
}

func (r *Runtime) newVM() *goja.Runtime {
	vm := goja.New()
	vm.SetFieldNameMapper(goja.TagFieldNameMapper("json", true))
	if r.config.MaxCallStackSize > 0 {
		vm.SetMaxCallStackSize(r.config.MaxCallStackSize)
	}
	return vm
}

// Execute evaluates source and captures the resulting structure. The
// returned error is also stored in Result.Error.
func (r *Runtime) Execute(ctx context.Context, source string, kind types.Kind) (*Result, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.vm == nil || r.abandoned {
		return nil, ErrRuntimeClosed
	}

	start := time.Now()
	if ctx.Err() != nil {
		err := cancelledError()
		return &Result{Console: []LogEntry{}, Duration: time.Since(start), Error: err}, err
	}

	rn := &run{
		vm:       r.vm,
		kind:     kind,
		console:  []LogEntry{},
		maxLines: r.config.MaxOutputLines,
		adapters: make(map[*goja.Object]facade.Adapter),
		thrown:   make(map[*goja.Object]error),
	}
	r.vm.ClearInterrupt()
	rn.install(r.config.EnableConsole)

	done := make(chan outcome, 1)
	go func() {
		done <- rn.evaluate(source)
	}()

	// Setup timeout
	timer := time.NewTimer(r.config.Timeout)
	defer timer.Stop()

	var out outcome
	select {
	case out = <-done:
	case <-timer.C:
		out = r.stop(done, timeoutError(r.config.Timeout))
	case <-ctx.Done():
		out = r.stop(done, cancelledError())
	}

	console, truncated := rn.output()
	result := &Result{
		Console:   console,
		Truncated: truncated,
		Capture:   out.capture,
		Duration:  time.Since(start),
		Error:     out.err,
	}
	return result, out.err
}

// stop interrupts the VM and waits up to the grace period for the
// evaluation goroutine to unwind
func (r *Runtime) stop(done <-chan outcome, reason *ScriptError) outcome {
	r.vm.Interrupt(reason)

	grace := time.NewTimer(r.config.Grace)
	defer grace.Stop()

	select {
	case out := <-done:
		if out.err == nil {
			// finished between the deadline and the interrupt
			return out
		}
		return outcome{err: reason}
	case <-grace.C:
		r.abandoned = true
		return outcome{err: reason}
	}
}

// evaluate runs on its own goroutine and owns the VM until it returns
func (rn *run) evaluate(source string) (out outcome) {
	defer func() {
		if p := recover(); p != nil {
			out = outcome{err: &ScriptError{Message: fmt.Sprint(p)}}
		}
	}()

	val, err := rn.vm.RunString(wrap(source))
	if err != nil {
		return outcome{err: rn.classify(err)}
	}
	return outcome{capture: rn.capture(val)}
}

// wrap turns source into a function body ending with the capture probe.
// The source starts on the first line so reported line numbers match.
func wrap(source string) string {
	var sb strings.Builder
	sb.WriteString("(function() {")
	sb.WriteString(source)
	sb.WriteString("\n;")
	for _, b := range types.Bindings {
		fmt.Fprintf(&sb, "if (typeof %[1]s !== 'undefined') return {binding: '%[1]s', data: %[1]s};\n", b.Name)
	}
	sb.WriteString("return null;\n})()")
	return sb.String()
}

// classify converts a goja failure into a ScriptError
func (rn *run) classify(err error) error {
	var interrupted *goja.InterruptedError
	if errors.As(err, &interrupted) {
		if reason, ok := interrupted.Value().(*ScriptError); ok {
			return reason
		}
		return &ScriptError{Message: interrupted.Error()}
	}

	var exc *goja.Exception
	if errors.As(err, &exc) {
		if obj, ok := exc.Value().(*goja.Object); ok {
			if cause, ok := rn.thrown[obj]; ok {
				return &ScriptError{Message: cause.Error(), Cause: cause}
			}
		}
		return &ScriptError{Message: exceptionMessage(exc.Value())}
	}

	return &ScriptError{Message: err.Error()}
}

func exceptionMessage(v goja.Value) string {
	if v == nil || goja.IsUndefined(v) || goja.IsNull(v) {
		return unknownErrorMessage
	}
	msg := v.String()
	if obj, ok := v.(*goja.Object); ok {
		if m := obj.Get("message"); m != nil && !goja.IsUndefined(m) {
			msg = m.String()
		}
	}
	if msg == "" {
		return unknownErrorMessage
	}
	return msg
}

// Reset replaces the VM with a fresh one
func (r *Runtime) Reset() error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.vm == nil {
		return ErrRuntimeClosed
	}
	r.vm = r.newVM()
	r.abandoned = false
	return nil
}

// Abandoned reports whether a run outlived its grace period
func (r *Runtime) Abandoned() bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.abandoned
}

// Close releases resources
func (r *Runtime) Close() error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.vm != nil {
		r.vm.Interrupt(cancelledError())
	}
	r.vm = nil
	return nil
}
