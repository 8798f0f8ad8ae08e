package replay

import (
	"fmt"
	"sort"

	"go.uber.org/zap"

	"github.com/GriffinCanCode/dsaviz/internal/engine"
	"github.com/GriffinCanCode/dsaviz/internal/infrastructure/logging"
	"github.com/GriffinCanCode/dsaviz/internal/infrastructure/monitoring"
	"github.com/GriffinCanCode/dsaviz/internal/shared/types"
	"github.com/GriffinCanCode/dsaviz/internal/utils"
	"github.com/GriffinCanCode/dsaviz/internal/visual"
)

// Op is one requested operation
type Op struct {
	Op   string `json:"op"`
	Args []any  `json:"args,omitempty"`
}

// Step is the outcome of one applied operation
type Step struct {
	Op      string `json:"op"`
	Message string `json:"message"`
	Data    any    `json:"data,omitempty"`
}

// Result is the outcome of a replay
type Result struct {
	Kind  types.Kind `json:"kind"`
	Steps []Step     `json:"steps"`
	// FailedAt is the index of the failing operation
	FailedAt           *int         `json:"failedAt,omitempty"`
	Error              string       `json:"error,omitempty"`
	ErrorKind          string       `json:"errorKind,omitempty"`
	Summary            string       `json:"summary"`
	VisualizationState visual.State `json:"visualizationState"`
}

// Failed reports whether an operation failed
func (r Result) Failed() bool {
	return r.FailedAt != nil
}

// Replayer applies operation lists to fresh engines
type Replayer struct {
	logger  *logging.Logger
	metrics *monitoring.Metrics
}

// New creates a replayer. metrics may be nil.
func New(logger *logging.Logger, metrics *monitoring.Metrics) *Replayer {
	if logger == nil {
		logger = logging.NewNop()
	}
	return &Replayer{logger: logger.Named("replay"), metrics: metrics}
}

// Ops lists the operation names accepted for kind in sorted order
func Ops(kind types.Kind) ([]string, error) {
	m, err := newMachine(kind)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", utils.ErrInvalidInput, err)
	}
	names := make([]string, 0, len(m.ops))
	for name := range m.ops {
		names = append(names, name)
	}
	sort.Strings(names)
	return names, nil
}

// Validate checks kind, every op name and every argument list
func Validate(kind types.Kind, ops []Op) error {
	_, err := prepare(kind, ops)
	return err
}

type prepared struct {
	machine *machine
	args    []args
}

func prepare(kind types.Kind, ops []Op) (*prepared, error) {
	if err := utils.ValidateOpCount(len(ops)); err != nil {
		return nil, err
	}
	m, err := newMachine(kind)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", utils.ErrInvalidInput, err)
	}

	p := &prepared{machine: m, args: make([]args, len(ops))}
	for i, op := range ops {
		def, ok := m.ops[op.Op]
		if !ok {
			return nil, fmt.Errorf("%w: operation %d: unknown operation %q for %s", utils.ErrInvalidInput, i, op.Op, kind)
		}
		a, err := check(op.Op, def.params, op.Args)
		if err != nil {
			return nil, fmt.Errorf("operation %d: %w", i, err)
		}
		p.args[i] = a
	}
	return p, nil
}

// Replay applies ops in order to a new engine of kind. A returned error
// means the request was invalid and nothing ran; an engine failure stops
// the replay and is reported inside the result.
func (r *Replayer) Replay(kind types.Kind, ops []Op) (Result, error) {
	p, err := prepare(kind, ops)
	if err != nil {
		return Result{}, err
	}

	result := Result{Kind: kind, Steps: make([]Step, 0, len(ops))}
	for i, op := range ops {
		res, err := p.machine.ops[op.Op].apply(p.args[i])
		if err != nil {
			at := i
			result.FailedAt = &at
			result.Error = err.Error()
			result.ErrorKind = engine.KindName(err)
			break
		}
		result.Steps = append(result.Steps, Step{Op: op.Op, Message: res.Message, Data: res.Data})
	}

	result.Summary = p.machine.structure.Traverse()
	result.VisualizationState = p.machine.structure.Snapshot().Normalize()

	outcome := monitoring.OutcomeSuccess
	if result.Failed() {
		outcome = monitoring.OutcomeError
	}
	if r.metrics != nil {
		r.metrics.RecordReplay(kind.String(), outcome)
	}
	r.logger.Debug("replay completed",
		zap.String("kind", kind.String()),
		zap.Int("ops", len(ops)),
		zap.Int("applied", len(result.Steps)),
		zap.String("error_kind", result.ErrorKind),
	)

	return result, nil
}
