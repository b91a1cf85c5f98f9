package bignum

import (
	"errors"
	"math/big"
	"strings"
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"

	apperrors "github.com/agbru/bigdemo/internal/errors"
)

func TestDigitCount_Boundaries(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name string
		x    string
		want int
	}{
		{"zero", "0", 1},
		{"one", "1", 1},
		{"nine", "9", 1},
		{"ten", "10", 2},
		{"negative", "-12345", 5},
		{"2^63-1", "9223372036854775807", 19},
		{"2^64", "18446744073709551616", 20},
		{"10^50-1", strings.Repeat("9", 50), 50},
		{"10^50", "1" + strings.Repeat("0", 50), 51},
		{"10^50+4", "1" + strings.Repeat("0", 49) + "4", 51},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			x, ok := new(big.Int).SetString(tt.x, 10)
			if !ok {
				t.Fatalf("bad test input %q", tt.x)
			}
			if got := DigitCount(x); got != tt.want {
				t.Errorf("DigitCount(%s) = %d, want %d", tt.x, got, tt.want)
			}
		})
	}
}

func TestDigitCount_PowersOfTen(t *testing.T) {
	t.Parallel()
	p := big.NewInt(1)
	below := new(big.Int)
	for k := 1; k <= 400; k++ {
		below.Sub(p.Mul(p, bigTen), big.NewInt(1))
		if got := DigitCount(p); got != k+1 {
			t.Fatalf("DigitCount(10^%d) = %d, want %d", k, got, k+1)
		}
		if got := DigitCount(below); got != k {
			t.Fatalf("DigitCount(10^%d-1) = %d, want %d", k, got, k)
		}
	}
}

// TestDigitCount_MatchesString_PropertyBased checks that counting digits
// from the bit length agrees with the length of the decimal string for
// arbitrary products of random words.
func TestDigitCount_MatchesString_PropertyBased(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 200
	properties := gopter.NewProperties(parameters)

	properties.Property("DigitCount(x) == len(x.String())", prop.ForAll(
		func(words []uint64, neg bool) bool {
			x := big.NewInt(1)
			f := new(big.Int)
			for _, w := range words {
				x.Mul(x, f.SetUint64(w|1))
			}
			if neg {
				x.Neg(x)
			}
			return DigitCount(x) == len(new(big.Int).Abs(x).String())
		},
		gen.SliceOfN(40, gen.UInt64()),
		gen.Bool(),
	))

	properties.TestingRun(t)
}

// TestFactorialDigits_PropertyBased verifies, for random n, that the digit
// count of n! equals floor(log10(n!)) + 1 as established by the bracketing
// 10^(d-1) <= n! < 10^d, and equals the length of its decimal string.
func TestFactorialDigits_PropertyBased(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 100
	properties := gopter.NewProperties(parameters)

	properties.Property("DigitCount(n!) = floor(log10(n!)) + 1 = len(n!)", prop.ForAll(
		func(n int64) bool {
			f, err := Factorial(n)
			if err != nil {
				return false
			}
			d := DigitCount(f)
			lower := new(big.Int).Exp(bigTen, big.NewInt(int64(d-1)), nil)
			upper := new(big.Int).Mul(lower, bigTen)
			return f.Cmp(lower) >= 0 && f.Cmp(upper) < 0 && d == len(f.String())
		},
		gen.Int64Range(0, 3000),
	))

	properties.TestingRun(t)
}

func TestFormatInt(t *testing.T) {
	t.Parallel()
	f5000, err := Factorial(5000)
	if err != nil {
		t.Fatalf("Factorial(5000) error: %v", err)
	}

	tests := []struct {
		name      string
		x         *big.Int
		maxDigits int
		wantErr   bool
		wantLen   int
	}{
		{"within default limit", f5000, DefaultMaxDigits, false, 16326},
		{"exactly at limit", f5000, 16326, false, 16326},
		{"one below required", f5000, 16325, true, 0},
		{"far below required", f5000, 4300, true, 0},
		{"limit disabled", f5000, 0, false, 16326},
		{"small negative", big.NewInt(-42), 2, false, 3},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			s, err := FormatInt(tt.x, tt.maxDigits)
			if tt.wantErr {
				var limitErr apperrors.DigitLimitError
				if !errors.As(err, &limitErr) {
					t.Fatalf("expected DigitLimitError, got %v", err)
				}
				if limitErr.Digits != 16326 || limitErr.Limit != tt.maxDigits {
					t.Errorf("unexpected error contents: %+v", limitErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if len(s) != tt.wantLen {
				t.Errorf("len = %d, want %d", len(s), tt.wantLen)
			}
		})
	}
}

func TestDigitSum(t *testing.T) {
	t.Parallel()
	tests := []struct {
		x    int64
		want int
	}{
		{0, 0},
		{120, 3},
		{-3628800, 27},
	}
	for _, tt := range tests {
		if got := DigitSum(big.NewInt(tt.x)); got != tt.want {
			t.Errorf("DigitSum(%d) = %d, want %d", tt.x, got, tt.want)
		}
	}
}

func FuzzDigitCount(f *testing.F) {
	f.Add([]byte{0})
	f.Add([]byte{9})
	f.Add([]byte{10})
	f.Add([]byte{0x03, 0xe8})
	f.Add([]byte{0x8a, 0xc7, 0x23, 0x04, 0x89, 0xe8, 0x00, 0x00})

	f.Fuzz(func(t *testing.T, data []byte) {
		if len(data) > 4096 {
			return
		}
		x := new(big.Int).SetBytes(data)
		if got, want := DigitCount(x), len(x.String()); got != want {
			t.Errorf("DigitCount(%s) = %d, want %d", x, got, want)
		}
	})
}
