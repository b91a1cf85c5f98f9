package bignum

import (
	"context"
	"math/big"

	apperrors "github.com/agbru/bigdemo/internal/errors"
)

const (
	// splitLeafSize is the width of a factor range below which the
	// binary-splitting backend falls back to a running product.
	splitLeafSize = 64

	// cancelCheckInterval is the number of multiplications the iterative
	// backend performs between two context checks.
	cancelCheckInterval = 256

	// mulRangeBlock is the width of the factor ranges the MulRange backend
	// hands to big.Int.MulRange in one call.
	mulRangeBlock = 1 << 12
)

// Backend computes n! for a non-negative n.
type Backend interface {
	// Name returns a human-readable description of the backend.
	Name() string
	// Factorial returns n! exactly. It returns a ValidationError for a
	// negative n and the context error if ctx is done before completion.
	Factorial(ctx context.Context, n int64) (*big.Int, error)
}

// Factorial returns n! using math/big's product tree.
func Factorial(n int64) (*big.Int, error) {
	return MulRangeBackend{}.Factorial(context.Background(), n)
}

func validateN(n int64) error {
	if n < 0 {
		return apperrors.ValidationError{Field: "n", Message: "factorial is undefined for negative numbers"}
	}
	return nil
}

// MulRangeBackend delegates to big.Int.MulRange, which already splits the
// range recursively. MulRange cannot be interrupted, so above mulRangeBlock
// factors the range is cut into blocks, the context is checked between
// blocks, and the block products are combined pairwise.
type MulRangeBackend struct{}

// Name implements Backend.
func (MulRangeBackend) Name() string { return "math/big MulRange" }

// Factorial implements Backend.
func (MulRangeBackend) Factorial(ctx context.Context, n int64) (*big.Int, error) {
	if err := validateN(n); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if n <= mulRangeBlock {
		// MulRange(1, 0) is the empty product 1, which covers 0!.
		return new(big.Int).MulRange(1, n), nil
	}
	parts := make([]*big.Int, 0, n/mulRangeBlock+1)
	for lo := int64(1); lo <= n; lo += mulRangeBlock {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		parts = append(parts, new(big.Int).MulRange(lo, min(lo+mulRangeBlock-1, n)))
	}
	return multiplyPairwise(ctx, parts)
}

// multiplyPairwise returns the product of parts, multiplying neighbours
// level by level. parts is overwritten.
func multiplyPairwise(ctx context.Context, parts []*big.Int) (*big.Int, error) {
	for len(parts) > 1 {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		half := len(parts) / 2
		for i := 0; i < half; i++ {
			parts[i] = parts[2*i].Mul(parts[2*i], parts[2*i+1])
		}
		if len(parts)%2 == 1 {
			parts[half] = parts[len(parts)-1]
			half++
		}
		parts = parts[:half]
	}
	return parts[0], nil
}

// SplitBackend multiplies the factors 2..n as a balanced binary tree, so
// that the expensive multiplications happen between operands of similar
// size. The context is checked at every internal node.
type SplitBackend struct{}

// Name implements Backend.
func (SplitBackend) Name() string { return "Binary Splitting" }

// Factorial implements Backend.
func (SplitBackend) Factorial(ctx context.Context, n int64) (*big.Int, error) {
	if err := validateN(n); err != nil {
		return nil, err
	}
	if n < 2 {
		return big.NewInt(1), nil
	}
	return productRange(ctx, 2, n)
}

// productRange returns lo * (lo+1) * ... * hi for lo <= hi.
func productRange(ctx context.Context, lo, hi int64) (*big.Int, error) {
	if hi-lo < splitLeafSize {
		z := big.NewInt(lo)
		f := new(big.Int)
		for i := lo + 1; i <= hi; i++ {
			z.Mul(z, f.SetInt64(i))
		}
		return z, nil
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	mid := lo + (hi-lo)/2
	left, err := productRange(ctx, lo, mid)
	if err != nil {
		return nil, err
	}
	right, err := productRange(ctx, mid+1, hi)
	if err != nil {
		return nil, err
	}
	return left.Mul(left, right), nil
}

// IterativeBackend keeps a single running product. It is quadratic in the
// size of the result and serves as the reference implementation in tests
// and golden-file generation.
type IterativeBackend struct{}

// Name implements Backend.
func (IterativeBackend) Name() string { return "Iterative Product" }

// Factorial implements Backend.
func (IterativeBackend) Factorial(ctx context.Context, n int64) (*big.Int, error) {
	if err := validateN(n); err != nil {
		return nil, err
	}
	z := big.NewInt(1)
	f := new(big.Int)
	for i := int64(2); i <= n; i++ {
		if i%cancelCheckInterval == 0 {
			if err := ctx.Err(); err != nil {
				return nil, err
			}
		}
		z.Mul(z, f.SetInt64(i))
	}
	return z, nil
}
