// Package config holds the application configuration. Every setting has a
// default that reproduces the canonical run, so the binary needs neither
// flags nor environment variables; both may still override the defaults.
package config

import (
	"flag"
	"fmt"
	"io"
	"time"

	"github.com/agbru/bigdemo/internal/bignum"
	"github.com/agbru/bigdemo/internal/dataset"
	apperrors "github.com/agbru/bigdemo/internal/errors"
	"github.com/agbru/bigdemo/internal/precision"
)

// EnvPrefix is prepended to every environment variable the application reads.
const EnvPrefix = "BIGDEMO_"

// Defaults for the canonical run.
const (
	DefaultN       int64 = 5000
	DefaultTimeout       = time.Minute
)

// AppConfig aggregates all configuration parameters of the application.
type AppConfig struct {
	// N is the factorial argument.
	N int64
	// Precision is the number of significant digits of the decimal quotients.
	Precision uint32
	// DatasetSize is the number of elements in the dataset.
	DatasetSize int
	// DatasetExponent is the power of ten the dataset elements are offset from.
	DatasetExponent int
	// MaxDigits bounds base-10 conversion of integers; 0 disables the check.
	MaxDigits int
	// Backend is the factorial backend key.
	Backend string
	// Timeout bounds the whole pipeline.
	Timeout time.Duration
	// Verbose lowers the log level to debug.
	Verbose bool
	// Details prints a stage timing summary on stderr.
	Details bool
	// Progress shows a spinner on stderr while the pipeline runs.
	Progress bool
	// Metrics dumps the metrics registry on stderr after the run.
	Metrics bool
	// NoColor disables colours in stderr output.
	NoColor bool
}

// Default returns the configuration of the canonical run.
func Default() AppConfig {
	return AppConfig{
		N:               DefaultN,
		Precision:       precision.DefaultPrecision,
		DatasetSize:     dataset.DefaultSize,
		DatasetExponent: dataset.DefaultExponent,
		MaxDigits:       bignum.DefaultMaxDigits,
		Backend:         bignum.DefaultBackend,
		Timeout:         DefaultTimeout,
	}
}

// ParseConfig parses command-line arguments, applies BIGDEMO_ environment
// overrides for flags that were not set, and validates the result.
// Priority: CLI flags > environment variables > defaults.
//
// Parameters:
//   - programName: The name used in usage messages.
//   - args: The arguments, without the program name.
//   - errWriter: Where usage and parse errors are written.
//   - availableBackends: The factorial backend keys accepted by --backend.
//
// Returns:
//   - AppConfig: The resulting configuration.
//   - error: flag.ErrHelp for --help, or a ConfigError.
func ParseConfig(programName string, args []string, errWriter io.Writer, availableBackends []string) (AppConfig, error) {
	cfg := Default()
	fs := flag.NewFlagSet(programName, flag.ContinueOnError)
	fs.SetOutput(errWriter)

	var prec uint
	fs.Int64Var(&cfg.N, "n", cfg.N, "Factorial argument.")
	fs.UintVar(&prec, "precision", uint(cfg.Precision), "Significant digits of the decimal quotients.")
	fs.IntVar(&cfg.DatasetSize, "dataset-size", cfg.DatasetSize, "Number of huge integers in the dataset.")
	fs.IntVar(&cfg.DatasetExponent, "dataset-exponent", cfg.DatasetExponent, "Dataset elements are 10^exponent + i.")
	fs.IntVar(&cfg.MaxDigits, "max-digits", cfg.MaxDigits, "Maximum digits of an integer converted to text (0 disables the check).")
	fs.StringVar(&cfg.Backend, "backend", cfg.Backend, fmt.Sprintf("Factorial backend %v.", availableBackends))
	fs.DurationVar(&cfg.Timeout, "timeout", cfg.Timeout, "Maximum duration of the whole run.")
	fs.BoolVar(&cfg.Verbose, "v", false, "Verbose logging on stderr (shorthand).")
	fs.BoolVar(&cfg.Verbose, "verbose", false, "Verbose logging on stderr.")
	fs.BoolVar(&cfg.Details, "d", false, "Print stage timings on stderr (shorthand).")
	fs.BoolVar(&cfg.Details, "details", false, "Print stage timings on stderr.")
	fs.BoolVar(&cfg.Progress, "progress", false, "Show a spinner on stderr while computing.")
	fs.BoolVar(&cfg.Metrics, "metrics", false, "Dump Prometheus metrics on stderr after the run.")
	fs.BoolVar(&cfg.NoColor, "no-color", false, "Disable colours in stderr output (also honours NO_COLOR).")

	if err := fs.Parse(args); err != nil {
		return AppConfig{}, err
	}
	if fs.NArg() > 0 {
		return AppConfig{}, apperrors.NewConfigError("unexpected arguments: %v", fs.Args())
	}
	if prec > uint(precision.MaxPrecision) {
		return AppConfig{}, apperrors.NewConfigError("--precision must be between 1 and %d, got %d", precision.MaxPrecision, prec)
	}
	cfg.Precision = uint32(prec)

	if err := applyEnvOverrides(&cfg, fs); err != nil {
		return AppConfig{}, err
	}

	if err := cfg.Validate(availableBackends); err != nil {
		return AppConfig{}, err
	}
	return cfg, nil
}

// Validate checks the semantic consistency of the configuration.
//
// Returns:
//   - error: A ConfigError describing the first invalid setting, or nil.
func (c AppConfig) Validate(availableBackends []string) error {
	if c.N < 0 {
		return apperrors.NewConfigError("-n must be non-negative, got %d", c.N)
	}
	if c.Precision == 0 || c.Precision > precision.MaxPrecision {
		return apperrors.NewConfigError("--precision must be between 1 and %d, got %d", precision.MaxPrecision, c.Precision)
	}
	if c.DatasetSize < 0 {
		return apperrors.NewConfigError("--dataset-size must be non-negative, got %d", c.DatasetSize)
	}
	if c.DatasetExponent < 0 {
		return apperrors.NewConfigError("--dataset-exponent must be non-negative, got %d", c.DatasetExponent)
	}
	if c.MaxDigits < 0 {
		return apperrors.NewConfigError("--max-digits must be non-negative, got %d", c.MaxDigits)
	}
	if c.Timeout <= 0 {
		return apperrors.NewConfigError("--timeout must be positive, got %s", c.Timeout)
	}
	for _, b := range availableBackends {
		if b == c.Backend {
			return nil
		}
	}
	return apperrors.NewConfigError("unknown backend %q, available: %v", c.Backend, availableBackends)
}
