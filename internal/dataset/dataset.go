// Package dataset builds the fixed list of huge integers and sums it
// exactly.
package dataset

import (
	"fmt"
	"math/big"

	apperrors "github.com/agbru/bigdemo/internal/errors"
)

const (
	// DefaultExponent is the power of ten every element is offset from.
	DefaultExponent = 50
	// DefaultSize is the number of elements in the default dataset.
	DefaultSize = 5
)

// Dataset is an ordered sequence of arbitrary-precision integers.
type Dataset []*big.Int

// Build returns {10^exponent + i : i = 0..size-1}.
func Build(exponent, size int) (Dataset, error) {
	if exponent < 0 {
		return nil, apperrors.ValidationError{Field: "dataset-exponent", Message: fmt.Sprintf("must be non-negative, got %d", exponent)}
	}
	if size < 0 {
		return nil, apperrors.ValidationError{Field: "dataset-size", Message: fmt.Sprintf("must be non-negative, got %d", size)}
	}
	base := pow10(exponent)
	ds := make(Dataset, size)
	for i := range ds {
		ds[i] = new(big.Int).Add(base, big.NewInt(int64(i)))
	}
	return ds, nil
}

// Sum returns the exact sum of the elements. The empty dataset sums to 0.
func (ds Dataset) Sum() *big.Int {
	sum := new(big.Int)
	for _, v := range ds {
		sum.Add(sum, v)
	}
	return sum
}

// ExpectedSum returns size*10^exponent + size*(size-1)/2, the closed form
// of Build(exponent, size).Sum().
func ExpectedSum(exponent, size int) *big.Int {
	n := big.NewInt(int64(size))
	total := new(big.Int).Mul(n, pow10(exponent))
	tri := new(big.Int).Mul(n, big.NewInt(int64(size-1)))
	tri.Rsh(tri, 1)
	return total.Add(total, tri)
}

func pow10(exponent int) *big.Int {
	return new(big.Int).Exp(big.NewInt(10), big.NewInt(int64(exponent)), nil)
}
