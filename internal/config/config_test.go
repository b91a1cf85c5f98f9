package config

import (
	"errors"
	"flag"
	"io"
	"strings"
	"testing"
	"time"

	apperrors "github.com/agbru/bigdemo/internal/errors"
)

var testBackends = []string{"iterative", "mulrange", "split"}

func TestParseConfig_Defaults(t *testing.T) {
	cfg, err := ParseConfig("bigdemo", nil, io.Discard, testBackends)
	if err != nil {
		t.Fatalf("ParseConfig error: %v", err)
	}
	want := Default()
	if cfg != want {
		t.Errorf("ParseConfig() = %+v, want %+v", cfg, want)
	}
	if cfg.N != 5000 || cfg.Precision != 50 || cfg.DatasetSize != 5 || cfg.DatasetExponent != 50 {
		t.Errorf("unexpected canonical values: %+v", cfg)
	}
	if cfg.MaxDigits < 16326 {
		t.Errorf("MaxDigits = %d cannot hold 5000!", cfg.MaxDigits)
	}
}

func TestParseConfig_Flags(t *testing.T) {
	args := []string{"-n", "100", "--precision", "1", "--dataset-size", "3", "--dataset-exponent", "10",
		"--max-digits", "0", "--backend", "split", "--timeout", "5s", "-v", "-d", "--progress", "--metrics", "--no-color"}
	cfg, err := ParseConfig("bigdemo", args, io.Discard, testBackends)
	if err != nil {
		t.Fatalf("ParseConfig error: %v", err)
	}
	want := AppConfig{
		N: 100, Precision: 1, DatasetSize: 3, DatasetExponent: 10, MaxDigits: 0,
		Backend: "split", Timeout: 5 * time.Second, Verbose: true, Details: true, Progress: true, Metrics: true, NoColor: true,
	}
	if cfg != want {
		t.Errorf("ParseConfig() = %+v, want %+v", cfg, want)
	}
}

func TestParseConfig_Help(t *testing.T) {
	_, err := ParseConfig("bigdemo", []string{"--help"}, io.Discard, testBackends)
	if !errors.Is(err, flag.ErrHelp) {
		t.Errorf("expected flag.ErrHelp, got %v", err)
	}
}

func TestParseConfig_Invalid(t *testing.T) {
	tests := []struct {
		name string
		args []string
	}{
		{"negative n", []string{"-n", "-1"}},
		{"zero precision", []string{"--precision", "0"}},
		{"huge precision", []string{"--precision", "5001"}},
		{"negative dataset size", []string{"--dataset-size", "-2"}},
		{"negative exponent", []string{"--dataset-exponent", "-2"}},
		{"negative max digits", []string{"--max-digits", "-1"}},
		{"zero timeout", []string{"--timeout", "0s"}},
		{"unknown backend", []string{"--backend", "fft"}},
		{"positional argument", []string{"extra"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseConfig("bigdemo", tt.args, io.Discard, testBackends)
			var configErr apperrors.ConfigError
			if !errors.As(err, &configErr) {
				t.Errorf("expected ConfigError, got %v", err)
			}
		})
	}
}

func TestApplyEnvOverrides(t *testing.T) {
	t.Setenv("BIGDEMO_N", "20")
	t.Setenv("BIGDEMO_PRECISION", "10")
	t.Setenv("BIGDEMO_DATASET_SIZE", "7")
	t.Setenv("BIGDEMO_DATASET_EXPONENT", "30")
	t.Setenv("BIGDEMO_MAX_DIGITS", "100")
	t.Setenv("BIGDEMO_BACKEND", "iterative")
	t.Setenv("BIGDEMO_TIMEOUT", "2s")
	t.Setenv("BIGDEMO_VERBOSE", "yes")
	t.Setenv("BIGDEMO_DETAILS", "1")
	t.Setenv("BIGDEMO_PROGRESS", "TRUE")
	t.Setenv("BIGDEMO_METRICS", "true")
	t.Setenv("BIGDEMO_NO_COLOR", "yes")

	cfg, err := ParseConfig("bigdemo", nil, io.Discard, testBackends)
	if err != nil {
		t.Fatalf("ParseConfig error: %v", err)
	}
	want := AppConfig{
		N: 20, Precision: 10, DatasetSize: 7, DatasetExponent: 30, MaxDigits: 100,
		Backend: "iterative", Timeout: 2 * time.Second, Verbose: true, Details: true, Progress: true, Metrics: true, NoColor: true,
	}
	if cfg != want {
		t.Errorf("ParseConfig() = %+v, want %+v", cfg, want)
	}
}

func TestApplyEnvOverrides_FlagWins(t *testing.T) {
	t.Setenv("BIGDEMO_N", "20")
	t.Setenv("BIGDEMO_VERBOSE", "true")

	cfg, err := ParseConfig("bigdemo", []string{"-n", "30", "--verbose=false"}, io.Discard, testBackends)
	if err != nil {
		t.Fatalf("ParseConfig error: %v", err)
	}
	if cfg.N != 30 {
		t.Errorf("N = %d, want flag value 30", cfg.N)
	}
	if cfg.Verbose {
		t.Error("Verbose should keep the explicit flag value")
	}
}

func TestApplyEnvOverrides_RejectsGarbage(t *testing.T) {
	tests := []struct {
		key, val string
	}{
		{"BIGDEMO_N", "many"},
		{"BIGDEMO_PRECISION", "abc"},
		{"BIGDEMO_PRECISION", "-3"},
		{"BIGDEMO_MAX_DIGITS", "lots"},
		{"BIGDEMO_TIMEOUT", "soon"},
		{"BIGDEMO_DETAILS", "perhaps"},
	}
	for _, tt := range tests {
		t.Run(tt.key+"="+tt.val, func(t *testing.T) {
			t.Setenv(tt.key, tt.val)

			_, err := ParseConfig("bigdemo", nil, io.Discard, testBackends)
			var configErr apperrors.ConfigError
			if !errors.As(err, &configErr) {
				t.Fatalf("expected ConfigError, got %v", err)
			}
			if !strings.Contains(err.Error(), tt.key) {
				t.Errorf("error %q should name %s", err, tt.key)
			}
			if got := apperrors.ExitCodeFor(err); got != apperrors.ExitErrorConfig {
				t.Errorf("exit code = %d, want %d", got, apperrors.ExitErrorConfig)
			}
		})
	}
}

func TestApplyEnvOverrides_FlagShadowsGarbage(t *testing.T) {
	t.Setenv("BIGDEMO_PRECISION", "abc")

	cfg, err := ParseConfig("bigdemo", []string{"--precision", "10"}, io.Discard, testBackends)
	if err != nil {
		t.Fatalf("ParseConfig error: %v", err)
	}
	if cfg.Precision != 10 {
		t.Errorf("Precision = %d, want 10", cfg.Precision)
	}
}

func TestParseBoolEnv(t *testing.T) {
	tests := []struct {
		val     string
		want    bool
		wantErr bool
	}{
		{"true", true, false},
		{"Yes", true, false},
		{"1", true, false},
		{"0", false, false},
		{"NO", false, false},
		{"maybe", false, true},
	}
	for _, tt := range tests {
		got, err := parseBoolEnv(tt.val)
		if (err != nil) != tt.wantErr {
			t.Errorf("parseBoolEnv(%q) error = %v, wantErr %v", tt.val, err, tt.wantErr)
			continue
		}
		if got != tt.want {
			t.Errorf("parseBoolEnv(%q) = %v, want %v", tt.val, got, tt.want)
		}
	}
}
