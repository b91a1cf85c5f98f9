// This file contains environment variable utilities for configuration override.

package config

import (
	"errors"
	"flag"
	"os"
	"strconv"
	"strings"
	"time"

	apperrors "github.com/agbru/bigdemo/internal/errors"
)

// ─────────────────────────────────────────────────────────────────────────────
// Environment Variable Utilities
// ─────────────────────────────────────────────────────────────────────────────

// isFlagSet checks if a flag was explicitly set on the command line.
// This is used to determine whether to apply environment variable overrides.
func isFlagSet(fs *flag.FlagSet, name string) bool {
	found := false
	fs.Visit(func(f *flag.Flag) {
		if f.Name == name {
			found = true
		}
	})
	return found
}

// isFlagSetAny checks if any of the specified flags were explicitly set.
// This is useful for aliased flags where either the short or long form may be used.
func isFlagSetAny(fs *flag.FlagSet, names ...string) bool {
	for _, name := range names {
		if isFlagSet(fs, name) {
			return true
		}
	}
	return false
}

// envOverride declares a single environment variable override.
// Each entry maps an env key (without the BIGDEMO_ prefix) to the CLI flag
// name(s) it corresponds to and a function that applies the env value.
type envOverride struct {
	envKey string
	flags  []string
	apply  func(*AppConfig, string) error
}

// envOverrides is the declarative table of all environment variable overrides.
var envOverrides = []envOverride{
	// Numeric overrides
	{"N", []string{"n"}, func(c *AppConfig, v string) error {
		return parseInto(&c.N, v, func(s string) (int64, error) { return strconv.ParseInt(s, 10, 64) })
	}},
	{"PRECISION", []string{"precision"}, func(c *AppConfig, v string) error {
		return parseInto(&c.Precision, v, func(s string) (uint32, error) {
			parsed, err := strconv.ParseUint(s, 10, 32)
			return uint32(parsed), err
		})
	}},
	{"DATASET_SIZE", []string{"dataset-size"}, func(c *AppConfig, v string) error {
		return parseInto(&c.DatasetSize, v, strconv.Atoi)
	}},
	{"DATASET_EXPONENT", []string{"dataset-exponent"}, func(c *AppConfig, v string) error {
		return parseInto(&c.DatasetExponent, v, strconv.Atoi)
	}},
	{"MAX_DIGITS", []string{"max-digits"}, func(c *AppConfig, v string) error {
		return parseInto(&c.MaxDigits, v, strconv.Atoi)
	}},

	// Duration overrides
	{"TIMEOUT", []string{"timeout"}, func(c *AppConfig, v string) error {
		return parseInto(&c.Timeout, v, time.ParseDuration)
	}},

	// String overrides
	{"BACKEND", []string{"backend"}, func(c *AppConfig, v string) error {
		c.Backend = v
		return nil
	}},

	// Boolean overrides
	{"VERBOSE", []string{"v", "verbose"}, func(c *AppConfig, v string) error {
		return parseInto(&c.Verbose, v, parseBoolEnv)
	}},
	{"DETAILS", []string{"d", "details"}, func(c *AppConfig, v string) error {
		return parseInto(&c.Details, v, parseBoolEnv)
	}},
	{"PROGRESS", []string{"progress"}, func(c *AppConfig, v string) error {
		return parseInto(&c.Progress, v, parseBoolEnv)
	}},
	{"METRICS", []string{"metrics"}, func(c *AppConfig, v string) error {
		return parseInto(&c.Metrics, v, parseBoolEnv)
	}},
	{"NO_COLOR", []string{"no-color"}, func(c *AppConfig, v string) error {
		return parseInto(&c.NoColor, v, parseBoolEnv)
	}},
}

// parseInto stores parse(v) in dst, leaving dst untouched on error.
func parseInto[T any](dst *T, v string, parse func(string) (T, error)) error {
	parsed, err := parse(v)
	if err != nil {
		return err
	}
	*dst = parsed
	return nil
}

// parseBoolEnv parses a boolean environment variable value.
// Accepts "true", "1", "yes" as true; "false", "0", "no" as false (case-insensitive).
func parseBoolEnv(val string) (bool, error) {
	switch strings.ToLower(val) {
	case "true", "1", "yes":
		return true, nil
	case "false", "0", "no":
		return false, nil
	}
	return false, errors.New("not a boolean")
}

// applyEnvOverrides applies environment variable values to the configuration
// for any flags that were not explicitly set on the command line.
// This implements the priority: CLI flags > Environment variables > Defaults.
//
// Returns:
//   - error: A ConfigError naming the first variable whose value cannot be
//     parsed, or nil.
func applyEnvOverrides(config *AppConfig, fs *flag.FlagSet) error {
	for _, o := range envOverrides {
		if isFlagSetAny(fs, o.flags...) {
			continue
		}
		key := EnvPrefix + o.envKey
		if val := os.Getenv(key); val != "" {
			if err := o.apply(config, val); err != nil {
				return apperrors.NewConfigError("invalid value %q for %s", val, key)
			}
		}
	}
	return nil
}
