package bignum

import (
	"math"
	"math/big"

	apperrors "github.com/agbru/bigdemo/internal/errors"
)

// DefaultMaxDigits is the default upper bound on the number of digits
// FormatInt is willing to materialise.
const DefaultMaxDigits = 1_000_000

var (
	bigTen   = big.NewInt(10)
	log10Of2 = math.Log10(2)
)

// DigitCount returns the number of decimal digits of |x| without converting
// x to a string. DigitCount(0) is 1.
//
// The bit length gives an estimate floor((bitlen-1)*log10(2))+1 that is
// exact or off by one; the estimate is then corrected by comparing |x| with
// the neighbouring powers of ten.
func DigitCount(x *big.Int) int {
	if x.Sign() == 0 {
		return 1
	}
	abs := new(big.Int).Abs(x)
	k := int(float64(abs.BitLen()-1)*log10Of2) + 1

	// lower = 10^(k-1); shrink k while |x| < lower.
	lower := new(big.Int).Exp(bigTen, big.NewInt(int64(k-1)), nil)
	for k > 1 && abs.Cmp(lower) < 0 {
		k--
		lower.Quo(lower, bigTen)
	}
	// upper = 10^k; grow k while |x| >= upper.
	upper := lower.Mul(lower, bigTen)
	for abs.Cmp(upper) >= 0 {
		k++
		upper.Mul(upper, bigTen)
	}
	return k
}

// FormatInt returns the base-10 representation of x, refusing to build it
// when x has more than maxDigits digits. A maxDigits <= 0 disables the
// check.
func FormatInt(x *big.Int, maxDigits int) (string, error) {
	if maxDigits > 0 {
		if d := DigitCount(x); d > maxDigits {
			return "", apperrors.DigitLimitError{Digits: d, Limit: maxDigits}
		}
	}
	return x.Text(10), nil
}

// DigitSum returns the sum of the decimal digits of |x|.
func DigitSum(x *big.Int) int {
	sum := 0
	for _, c := range new(big.Int).Abs(x).Text(10) {
		sum += int(c - '0')
	}
	return sum
}
