// Package precision divides exact integers into decimals rounded to a fixed
// number of significant digits.
//
// Every Engine owns its own apd.Context, so the precision in effect is a
// property of the engine value rather than process-wide state: two engines
// with different precisions can be used side by side.
package precision

import (
	"fmt"
	"math/big"

	"github.com/cockroachdb/apd/v3"

	apperrors "github.com/agbru/bigdemo/internal/errors"
)

const (
	// DefaultPrecision is the number of significant digits used when no
	// precision is configured.
	DefaultPrecision uint32 = 50

	// MaxPrecision is the largest precision an Engine accepts.
	MaxPrecision uint32 = 5000
)

// Engine performs decimal divisions at a fixed precision with
// round-half-even tie breaking.
type Engine struct {
	ctx apd.Context
}

// NewEngine returns an Engine rounding to prec significant digits.
// prec must be in [1, MaxPrecision].
func NewEngine(prec uint32) (*Engine, error) {
	if prec == 0 || prec > MaxPrecision {
		return nil, apperrors.ValidationError{
			Field:   "precision",
			Message: fmt.Sprintf("must be between 1 and %d, got %d", MaxPrecision, prec),
		}
	}
	return &Engine{ctx: apd.Context{
		Precision:   prec,
		Rounding:    apd.RoundHalfEven,
		MaxExponent: apd.MaxExponent,
		MinExponent: apd.MinExponent,
		Traps:       apd.DefaultTraps,
	}}, nil
}

// Precision returns the number of significant digits the engine rounds to.
func (e *Engine) Precision() uint32 { return e.ctx.Precision }

// Quo returns x / y rounded to the engine's precision. Exact quotients keep
// their shortest form (1/8 is 0.125, 100/4 is 25).
func (e *Engine) Quo(x, y *big.Int) (*apd.Decimal, error) {
	if y.Sign() == 0 {
		return nil, fmt.Errorf("dividing %s by zero: %w", x, ErrDivisionByZero)
	}
	dx := apd.NewWithBigInt(new(apd.BigInt).SetMathBigInt(x), 0)
	dy := apd.NewWithBigInt(new(apd.BigInt).SetMathBigInt(y), 0)
	d := new(apd.Decimal)
	cond, err := e.ctx.Quo(d, dx, dy)
	if err != nil {
		return nil, fmt.Errorf("dividing %s by %s: %w", x, y, err)
	}
	if !cond.Inexact() {
		if err := e.shorten(d); err != nil {
			return nil, fmt.Errorf("dividing %s by %s: %w", x, y, err)
		}
	}
	return d, nil
}

// shorten strips the zero padding apd adds to an exact quotient. Trailing
// zeros are dropped down to the units digit, so 100/1 stays 100 rather than
// becoming 1E+2, unless the integer needs more digits than the precision.
func (e *Engine) shorten(d *apd.Decimal) error {
	d.Reduce(d)
	if d.Exponent > 0 && d.NumDigits()+int64(d.Exponent) <= int64(e.ctx.Precision) {
		if _, err := e.ctx.Quantize(d, d, 0); err != nil {
			return err
		}
	}
	return nil
}

// QuoInt64 is Quo for machine-sized operands.
func (e *Engine) QuoInt64(x, y int64) (*apd.Decimal, error) {
	return e.Quo(big.NewInt(x), big.NewInt(y))
}

// Format renders d in positional notation, never in scientific notation.
func Format(d *apd.Decimal) string {
	return d.Text('f')
}

// SignificantDigits returns the number of digits in d's coefficient.
func SignificantDigits(d *apd.Decimal) int64 {
	return d.NumDigits()
}
