package app

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os/signal"
	"syscall"

	"github.com/google/uuid"

	"github.com/agbru/bigdemo/internal/cli"
	apperrors "github.com/agbru/bigdemo/internal/errors"
	"github.com/agbru/bigdemo/internal/logging"
	"github.com/agbru/bigdemo/internal/metrics"
	"github.com/agbru/bigdemo/internal/orchestration"
	"github.com/agbru/bigdemo/internal/precision"
)

// Result digit gauge labels.
const (
	resultFactorial  = "factorial"
	resultDatasetSum = "dataset_sum"
)

// runCompute builds the engines, runs the pipeline under the configured
// timeout and signal handling, and presents the outcome.
func (a *Application) runCompute(ctx context.Context, out io.Writer) int {
	ctx, cancelTimeout := context.WithTimeout(ctx, a.Config.Timeout)
	defer cancelTimeout()
	ctx, stopSignals := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stopSignals()

	backend, err := a.Factory.Get(a.Config.Backend)
	if err != nil {
		return a.fail(apperrors.NewConfigError("%v", err))
	}
	engine, err := precision.NewEngine(a.Config.Precision)
	if err != nil {
		return a.fail(err)
	}

	runID := uuid.NewString()
	a.Logger.Debug("starting run",
		logging.String("run_id", runID),
		logging.String("backend", backend.Name()),
		logging.Int("n", int(a.Config.N)),
		logging.Uint64("precision", uint64(engine.Precision())),
		logging.Duration("timeout", a.Config.Timeout))

	recorder := metrics.NewRecorder()
	runner := orchestration.NewRunner(a.Logger, recorder, orchestration.WithRunID(runID))
	pipeline := orchestration.Pipeline{
		N:               a.Config.N,
		Backend:         backend,
		Engine:          engine,
		DatasetExponent: a.Config.DatasetExponent,
		DatasetSize:     a.Config.DatasetSize,
		MaxDigits:       a.Config.MaxDigits,
	}

	var progress *cli.ProgressIndicator
	if a.Config.Progress {
		progress = cli.NewProgressIndicator(a.ErrWriter)
		runner.OnStageStart(progress.StageStarted)
		progress.Start()
	}

	memCollector := metrics.NewMemoryCollector()
	before := memCollector.Snapshot()
	res, stages, err := pipeline.Execute(ctx, runner)
	mem := memCollector.Snapshot().Sub(before)

	if progress != nil {
		progress.Stop()
	}
	recorder.RecordMemory(mem)

	if a.Config.Details {
		cli.DisplayStageSummary(a.ErrWriter, stages)
	}
	if err != nil {
		if apperrors.IsContextError(err) {
			a.Logger.Debug("run interrupted", logging.String("run_id", runID), logging.Err(err))
		}
		if errors.Is(err, context.DeadlineExceeded) {
			err = fmt.Errorf("%w: %w", apperrors.TimeoutError{Operation: "pipeline", Limit: a.Config.Timeout}, err)
		}
		a.dumpMetrics(recorder)
		return a.fail(err)
	}

	recorder.SetResultDigits(resultFactorial, res.FactorialDigits)
	recorder.SetResultDigits(resultDatasetSum, res.DatasetSumDigits)

	if err := cli.DisplayReport(out, cli.NewReport(res)); err != nil {
		return a.fail(err)
	}
	if a.Config.Details {
		cli.DisplayResultDetails(a.ErrWriter, res)
		cli.DisplayMemoryStats(a.ErrWriter, mem)
	}
	a.dumpMetrics(recorder)
	return apperrors.ExitSuccess
}

// fail reports err once on the error writer and maps it to an exit code.
func (a *Application) fail(err error) int {
	cli.DisplayError(a.ErrWriter, err)
	return apperrors.ExitCodeFor(err)
}

func (a *Application) dumpMetrics(recorder *metrics.Recorder) {
	if !a.Config.Metrics {
		return
	}
	if err := recorder.WriteText(a.ErrWriter); err != nil {
		a.Logger.Warn("could not write metrics", logging.Err(err))
	}
}
