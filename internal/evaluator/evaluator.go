package evaluator

import (
	"context"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/GriffinCanCode/dsaviz/internal/infrastructure/logging"
	"github.com/GriffinCanCode/dsaviz/internal/infrastructure/monitoring"
	"github.com/GriffinCanCode/dsaviz/internal/infrastructure/tracing"
	"github.com/GriffinCanCode/dsaviz/internal/projector"
	"github.com/GriffinCanCode/dsaviz/internal/sandbox"
	"github.com/GriffinCanCode/dsaviz/internal/shared/id"
	"github.com/GriffinCanCode/dsaviz/internal/shared/types"
	"github.com/GriffinCanCode/dsaviz/internal/utils"
	"github.com/GriffinCanCode/dsaviz/internal/visual"
)

// poolStater is implemented by executors backed by a runtime pool
type poolStater interface {
	Stats() sandbox.PoolStats
}

// Evaluator runs scripts on an executor and reports each run
type Evaluator struct {
	executor  sandbox.Executor
	logger    *logging.Logger
	metrics   *monitoring.Metrics
	tracer    *tracing.Tracer
	durations *window

	mu        sync.Mutex
	discarded int
}

// New creates an evaluator. metrics and tracer may be nil.
func New(executor sandbox.Executor, logger *logging.Logger, metrics *monitoring.Metrics, tracer *tracing.Tracer) *Evaluator {
	if logger == nil {
		logger = logging.NewNop()
	}
	return &Evaluator{
		executor:  executor,
		logger:    logger.Named("evaluator"),
		metrics:   metrics,
		tracer:    tracer,
		durations: newWindow(statsWindow),
	}
}

// Run evaluates source for the selected kind. It never returns an error:
// every failure is reported inside the result. An empty kind means array.
func (e *Evaluator) Run(ctx context.Context, source string, kind types.Kind) ExecutionResult {
	if kind == "" {
		kind = types.KindArray
	}
	runID := id.NewRunID()

	var span *tracing.Span
	if e.tracer != nil {
		span, ctx = e.tracer.StartSpan(ctx, "run")
		span.SetTag("run_id", runID.String())
		span.SetTag("kind", kind.String())
	}

	start := time.Now()
	res, err := e.executor.Execute(ctx, source, kind)
	duration := time.Since(start)
	if res != nil {
		duration = res.Duration
	}

	result := build(res, err)
	result.DurationMs = float64(duration) / float64(time.Millisecond)
	e.durations.add(duration)

	e.record(kind, res, result, duration)

	if span != nil {
		span.SetTag("capture", string(result.Kind))
		if err != nil {
			span.SetTag("error_kind", string(result.ErrorKind))
			span.SetError(err)
		}
		span.Finish()
		e.tracer.Submit(span)
	}

	log := e.logger.ForRun(runID.String(), kind.String())
	fields := []zap.Field{
		zap.String("capture", string(result.Kind)),
		zap.Duration("duration", duration),
		zap.Int("output_lines", len(result.Output)),
		zap.String("source", utils.Fingerprint(source)),
	}
	if tid := tracing.GetTraceID(ctx); tid != "" {
		fields = append(fields, zap.String("trace_id", string(tid)))
	}
	if result.Failed() {
		fields = append(fields, zap.String("error_kind", string(result.ErrorKind)))
		log.Info("run failed", fields...)
	} else {
		log.Debug("run completed", fields...)
	}

	return result
}

// build assembles the result. A failed run shows no structure.
func build(res *sandbox.Result, err error) ExecutionResult {
	out := ExecutionResult{Output: []string{}}
	if res != nil {
		out.Output = make([]string, len(res.Console))
		for i, line := range res.Console {
			out.Output[i] = line.Message
		}
	}

	if err != nil {
		out.Error = message(err)
		out.ErrorKind = Classify(err)
		out.VisualizationState = visual.Empty()
		return out
	}

	out.VisualizationState = projector.Project(res.Capture)
	out.Kind = res.Capture.Tag
	return out
}

func (e *Evaluator) record(kind types.Kind, res *sandbox.Result, result ExecutionResult, duration time.Duration) {
	if e.metrics == nil {
		return
	}

	outcome := monitoring.OutcomeSuccess
	if result.Failed() {
		outcome = monitoring.OutcomeError
	}
	e.metrics.RecordRun(kind.String(), outcome, duration)
	if res != nil && res.Truncated {
		e.metrics.IncOutputTruncated()
	}

	ps, ok := e.executor.(poolStater)
	if !ok {
		return
	}
	stats := ps.Stats()
	e.metrics.SetPoolAvailable(stats.Available)

	e.mu.Lock()
	for ; e.discarded < stats.Discarded; e.discarded++ {
		e.metrics.IncPoolDiscarded()
	}
	e.mu.Unlock()
}

// Stats summarizes the durations of recent runs
func (e *Evaluator) Stats() DurationStats {
	return e.durations.summary()
}

// PoolStats reports the runtime pool, when the executor is one
func (e *Evaluator) PoolStats() (sandbox.PoolStats, bool) {
	ps, ok := e.executor.(poolStater)
	if !ok {
		return sandbox.PoolStats{}, false
	}
	return ps.Stats(), true
}
