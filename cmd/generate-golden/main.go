// Command generate-golden regenerates the factorial golden table used by the
// bignum tests. Values are computed with the iterative backend, which is
// independent of the product-tree backends under test.
//
//	go run ./cmd/generate-golden -out internal/bignum/testdata/factorial_golden.json
package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"math/big"
	"os"

	"github.com/agbru/bigdemo/internal/bignum"
	"github.com/agbru/bigdemo/internal/logging"
)

// leadingDigits is the number of leading decimal digits stored per entry.
const leadingDigits = 12

// goldenNs lists the factorial arguments in the table.
var goldenNs = []int64{0, 1, 2, 3, 5, 10, 20, 25, 50, 100, 170, 171, 500, 1000, 2000, 3000, 5000}

type goldenEntry struct {
	N        int64  `json:"n"`
	Digits   int    `json:"digits"`
	Leading  string `json:"leading"`
	DigitSum int    `json:"digit_sum"`
}

func newEntry(n int64, f *big.Int) goldenEntry {
	s := f.String()
	return goldenEntry{
		N:        n,
		Digits:   len(s),
		Leading:  s[:min(len(s), leadingDigits)],
		DigitSum: bignum.DigitSum(f),
	}
}

func buildTable(ctx context.Context, backend bignum.Backend, ns []int64) ([]goldenEntry, error) {
	entries := make([]goldenEntry, 0, len(ns))
	for _, n := range ns {
		f, err := backend.Factorial(ctx, n)
		if err != nil {
			return nil, fmt.Errorf("computing %d!: %w", n, err)
		}
		entries = append(entries, newEntry(n, f))
	}
	return entries, nil
}

func encodeTable(entries []goldenEntry) ([]byte, error) {
	data, err := json.MarshalIndent(entries, "", "  ")
	if err != nil {
		return nil, err
	}
	return append(data, '\n'), nil
}

func main() {
	out := flag.String("out", "internal/bignum/testdata/factorial_golden.json", "Output path of the golden table.")
	flag.Parse()

	logger := logging.NewLogger(os.Stderr, "generate-golden")

	entries, err := buildTable(context.Background(), bignum.IterativeBackend{}, goldenNs)
	if err != nil {
		logger.Error("building golden table", err)
		os.Exit(1)
	}
	data, err := encodeTable(entries)
	if err != nil {
		logger.Error("encoding golden table", err)
		os.Exit(1)
	}
	if err := os.WriteFile(*out, data, 0o644); err != nil {
		logger.Error("writing golden table", err, logging.String("path", *out))
		os.Exit(1)
	}
	logger.Info("golden table written", logging.String("path", *out), logging.Int("entries", len(entries)))
}
