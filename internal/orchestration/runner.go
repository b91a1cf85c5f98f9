package orchestration

import (
	"context"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	apperrors "github.com/agbru/bigdemo/internal/errors"
	"github.com/agbru/bigdemo/internal/logging"
	"github.com/agbru/bigdemo/internal/metrics"
)

const tracerName = "github.com/agbru/bigdemo/internal/orchestration"

// Stage is a single named step of the pipeline.
type Stage interface {
	Name() string
	Run(ctx context.Context) error
}

type funcStage struct {
	name string
	fn   func(ctx context.Context) error
}

func (s funcStage) Name() string                  { return s.name }
func (s funcStage) Run(ctx context.Context) error { return s.fn(ctx) }

// NewStage adapts a function into a Stage.
func NewStage(name string, fn func(ctx context.Context) error) Stage {
	return funcStage{name: name, fn: fn}
}

// StageResult records the outcome of one executed stage.
type StageResult struct {
	// Name is the stage identifier (e.g., "factorial").
	Name string
	// Duration is the wall-clock time spent in the stage.
	Duration time.Duration
	// Err is the error returned by the stage, if any.
	Err error
}

// Runner executes stages sequentially.
type Runner struct {
	logger   logging.Logger
	recorder *metrics.Recorder
	tracer   trace.Tracer
	runID    string
	onStart  func(stage string)
}

// RunnerOption configures a Runner during construction.
type RunnerOption func(*Runner)

// WithTracerProvider makes the runner create spans from tp instead of the
// global provider.
func WithTracerProvider(tp trace.TracerProvider) RunnerOption {
	return func(r *Runner) { r.tracer = tp.Tracer(tracerName) }
}

// WithRunID tags the pipeline span and every log entry with id.
func WithRunID(id string) RunnerOption {
	return func(r *Runner) { r.runID = id }
}

// NewRunner creates a Runner. A nil logger discards log output and a nil
// recorder disables metrics.
func NewRunner(logger logging.Logger, recorder *metrics.Recorder, opts ...RunnerOption) *Runner {
	if logger == nil {
		logger = logging.Nop()
	}
	r := &Runner{
		logger:   logger,
		recorder: recorder,
		tracer:   otel.Tracer(tracerName),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// OnStageStart registers fn to be called with the stage name before each
// stage runs. It replaces any previously registered function.
func (r *Runner) OnStageStart(fn func(stage string)) {
	r.onStart = fn
}

// Run executes the stages in order and returns one StageResult per stage
// that was started. Execution stops at the first failure; the returned
// error is a CalculationError naming the stage, so callers can still match
// the underlying cause with errors.As.
//
// Parameters:
//   - ctx: The context for cancellation and deadlines. It is checked before
//     every stage.
//   - stages: The stages to execute, in order.
//
// Returns:
//   - []StageResult: The results of the stages that were started.
//   - error: The first stage failure, or nil.
func (r *Runner) Run(ctx context.Context, stages []Stage) ([]StageResult, error) {
	ctx, span := r.tracer.Start(ctx, "pipeline", trace.WithAttributes(
		attribute.String("run.id", r.runID),
		attribute.Int("stages", len(stages)),
	))
	defer span.End()

	results := make([]StageResult, 0, len(stages))
	for _, stage := range stages {
		if err := ctx.Err(); err != nil {
			span.SetStatus(codes.Error, err.Error())
			return results, apperrors.CalculationError{Stage: stage.Name(), Cause: err}
		}

		res := r.runStage(ctx, stage)
		results = append(results, res)
		if res.Err != nil {
			span.SetStatus(codes.Error, res.Err.Error())
			return results, apperrors.CalculationError{Stage: res.Name, Cause: res.Err}
		}
	}
	return results, nil
}

func (r *Runner) runStage(ctx context.Context, stage Stage) StageResult {
	name := stage.Name()
	ctx, span := r.tracer.Start(ctx, name, trace.WithAttributes(attribute.String("stage", name)))
	defer span.End()

	r.logger.Debug("stage started", logging.String("run_id", r.runID), logging.String("stage", name))
	if r.onStart != nil {
		r.onStart(name)
	}
	start := time.Now()
	err := stage.Run(ctx)
	elapsed := time.Since(start)

	if r.recorder != nil {
		r.recorder.ObserveStage(name, elapsed, err)
	}
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		// Failures are surfaced by the caller; log them at debug only.
		r.logger.Debug("stage failed", logging.String("run_id", r.runID), logging.String("stage", name),
			logging.Duration("duration", elapsed), logging.Err(err))
	} else {
		r.logger.Debug("stage completed", logging.String("run_id", r.runID), logging.String("stage", name),
			logging.Duration("duration", elapsed))
	}
	return StageResult{Name: name, Duration: elapsed, Err: err}
}
