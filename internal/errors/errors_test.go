package apperrors

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"
)

func TestCalculationError(t *testing.T) {
	t.Parallel()
	limit := DigitLimitError{Digits: 51, Limit: 50}
	tests := []struct {
		name string
		err  CalculationError
		want string
	}{
		{"with stage", CalculationError{Stage: "dataset", Cause: limit}, "dataset: integer has 51 decimal digits, exceeds conversion limit of 50"},
		{"without stage", CalculationError{Cause: limit}, "integer has 51 decimal digits, exceeds conversion limit of 50"},
		{"canceled before stage", CalculationError{Stage: "reciprocal", Cause: context.Canceled}, "reciprocal: context canceled"},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := tt.err.Error(); got != tt.want {
				t.Errorf("Error() = %q, want %q", got, tt.want)
			}
			if !errors.Is(tt.err, tt.err.Cause) {
				t.Errorf("errors.Is should reach the cause %v", tt.err.Cause)
			}
		})
	}
}

func TestCalculationError_AsThroughWrapping(t *testing.T) {
	t.Parallel()
	err := fmt.Errorf("run failed: %w", CalculationError{Stage: "dataset", Cause: DigitLimitError{Digits: 51, Limit: 50}})

	var calcErr CalculationError
	if !errors.As(err, &calcErr) || calcErr.Stage != "dataset" {
		t.Fatalf("errors.As(CalculationError) failed for %v", err)
	}
	var limitErr DigitLimitError
	if !errors.As(err, &limitErr) {
		t.Fatalf("errors.As(DigitLimitError) failed for %v", err)
	}
	if limitErr.Digits != 51 || limitErr.Limit != 50 {
		t.Errorf("DigitLimitError = %+v, want {51 50}", limitErr)
	}
}

func TestErrorMessages(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name string
		err  error
		want string
	}{
		{"digit limit", DigitLimitError{Digits: 16326, Limit: 4300}, "integer has 16326 decimal digits, exceeds conversion limit of 4300"},
		{"config", NewConfigError("unknown factorial backend %q", "fft"), `unknown factorial backend "fft"`},
		{"validation", ValidationError{Field: "precision", Message: "must be between 1 and 5000, got 0"}, `validation error for "precision": must be between 1 and 5000, got 0`},
		{"timeout", TimeoutError{Operation: "pipeline", Limit: 2 * time.Second}, `operation "pipeline" timed out after 2s`},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := tt.err.Error(); got != tt.want {
				t.Errorf("Error() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestIsContextError(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name string
		err  error
		want bool
	}{
		{"deadline in stage", CalculationError{Stage: "factorial", Cause: context.DeadlineExceeded}, true},
		{"canceled in stage", CalculationError{Stage: "pi", Cause: context.Canceled}, true},
		{"digit limit", CalculationError{Stage: "dataset", Cause: DigitLimitError{Digits: 51, Limit: 50}}, false},
		{"nil", nil, false},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := IsContextError(tt.err); got != tt.want {
				t.Errorf("IsContextError(%v) = %v, want %v", tt.err, got, tt.want)
			}
		})
	}
}

// TestExitCodeFor maps the error chains the pipeline and the application
// actually return to process exit codes.
func TestExitCodeFor(t *testing.T) {
	t.Parallel()
	deadline := CalculationError{Stage: "factorial", Cause: context.DeadlineExceeded}
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"success", nil, ExitSuccess},
		{"digit limit in dataset stage", CalculationError{Stage: "dataset", Cause: DigitLimitError{Digits: 51, Limit: 50}}, ExitErrorLimit},
		{"negative n", CalculationError{Stage: "factorial", Cause: ValidationError{Field: "n", Message: "must be non-negative, got -1"}}, ExitErrorConfig},
		{"precision out of range", ValidationError{Field: "precision", Message: "must be between 1 and 5000, got 0"}, ExitErrorConfig},
		{"unknown backend", NewConfigError("unknown factorial backend %q", "fft"), ExitErrorConfig},
		{"timeout wrapping deadline", fmt.Errorf("%w: %w", TimeoutError{Operation: "pipeline", Limit: time.Second}, deadline), ExitErrorTimeout},
		{"bare deadline", deadline, ExitErrorTimeout},
		{"interrupted", CalculationError{Stage: "reciprocal", Cause: context.Canceled}, ExitErrorCanceled},
		{"division failure", CalculationError{Stage: "pi", Cause: errors.New("dividing 1 by 0: division by zero")}, ExitErrorGeneric},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := ExitCodeFor(tt.err); got != tt.want {
				t.Errorf("ExitCodeFor(%v) = %d, want %d", tt.err, got, tt.want)
			}
		})
	}
}
