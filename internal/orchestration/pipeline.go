package orchestration

import (
	"context"
	"math/big"

	"github.com/agbru/bigdemo/internal/bignum"
	"github.com/agbru/bigdemo/internal/dataset"
	"github.com/agbru/bigdemo/internal/precision"
)

// Stage names, also used as metric and span labels.
const (
	StageFactorial  = "factorial"
	StageReciprocal = "reciprocal"
	StagePi         = "pi"
	StageDataset    = "dataset"
)

// Pipeline holds the inputs and engines of one computation run.
type Pipeline struct {
	N               int64
	Backend         bignum.Backend
	Engine          *precision.Engine
	DatasetExponent int
	DatasetSize     int
	// MaxDigits bounds base-10 conversion of integer results. Zero disables
	// the check.
	MaxDigits int
}

// Results carries the values computed by a pipeline run.
type Results struct {
	N                int64
	FactorialDigits  int
	Reciprocal       string
	PiApprox         string
	DatasetSum       string
	DatasetSumDigits int
}

// Stages returns the pipeline stages in execution order. Each stage writes
// its output into res.
func (p Pipeline) Stages(res *Results) []Stage {
	res.N = p.N
	return []Stage{
		NewStage(StageFactorial, func(ctx context.Context) error {
			f, err := p.Backend.Factorial(ctx, p.N)
			if err != nil {
				return err
			}
			res.FactorialDigits = bignum.DigitCount(f)
			return nil
		}),
		NewStage(StageReciprocal, func(context.Context) error {
			d, err := p.Engine.QuoInt64(1, 7)
			if err != nil {
				return err
			}
			res.Reciprocal = precision.Format(d)
			return nil
		}),
		NewStage(StagePi, func(context.Context) error {
			d, err := p.Engine.Quo(big.NewInt(355), big.NewInt(113))
			if err != nil {
				return err
			}
			res.PiApprox = precision.Format(d)
			return nil
		}),
		NewStage(StageDataset, func(context.Context) error {
			ds, err := dataset.Build(p.DatasetExponent, p.DatasetSize)
			if err != nil {
				return err
			}
			sum := ds.Sum()
			s, err := bignum.FormatInt(sum, p.MaxDigits)
			if err != nil {
				return err
			}
			res.DatasetSum = s
			res.DatasetSumDigits = bignum.DigitCount(sum)
			return nil
		}),
	}
}

// Execute runs every stage of the pipeline with runner.
func (p Pipeline) Execute(ctx context.Context, runner *Runner) (Results, []StageResult, error) {
	var res Results
	stageResults, err := runner.Run(ctx, p.Stages(&res))
	if err != nil {
		return Results{}, stageResults, err
	}
	return res, stageResults, nil
}
