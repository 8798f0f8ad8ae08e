package sandbox

import (
	"context"
	"time"

	"github.com/GriffinCanCode/dsaviz/internal/facade"
	"github.com/GriffinCanCode/dsaviz/internal/shared/types"
)

// Config defines sandbox configuration
type Config struct {
	Timeout          time.Duration // Execution deadline
	Grace            time.Duration // Extra wait after the deadline before abandoning the VM
	MaxCallStackSize int           // Maximum JS call depth
	MaxOutputLines   int           // Console lines kept per run
	EnableConsole    bool          // Inject console.log/info/warn/error
}

// Result holds execution result
type Result struct {
	Console   []LogEntry    // Console output
	Truncated bool          // Console hit the line cap
	Capture   Capture       // Structure found after the run
	Duration  time.Duration // Execution time
	Error     error         // Execution error
}

// LogEntry represents console output
type LogEntry struct {
	Level   string    // log, info, warn, error
	Message string    // Formatted line
	Time    time.Time // Timestamp
}

// Entry is one key/value pair of a captured map
type Entry struct {
	Key   string
	Value any
	// Label is key:String(value) as rendered by the VM
	Label string
}

// Capture is the structure located at the end of a run
type Capture struct {
	Tag types.Capture
	// Binding is the variable name the value was found under; empty when
	// the structure came from the constructor registry
	Binding   string
	Items     []any          // arr, stack, queue
	Entries   []Entry        // map
	Structure facade.Adapter // list, bst, graph
	// Message explains why a binding could not be visualized
	Message string
}

// Sandbox defines the JavaScript execution interface
type Sandbox interface {
	Execute(ctx context.Context, source string, kind types.Kind) (*Result, error)
	Reset() error
	Close() error
}

// Executor runs one script; implemented by Runtime and Pool
type Executor interface {
	Execute(ctx context.Context, source string, kind types.Kind) (*Result, error)
}

// Default configuration
func DefaultConfig() Config {
	return Config{
		Timeout:          5 * time.Second,
		Grace:            time.Second,
		MaxCallStackSize: 1024,
		MaxOutputLines:   1000,
		EnableConsole:    true,
	}
}
