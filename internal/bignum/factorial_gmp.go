//go:build gmp

package bignum

import (
	"context"
	"math/big"

	"github.com/ncw/gmp"
)

func init() {
	optionalBackends = append(optionalBackends, namedBackend{key: "gmp", backend: GMPBackend{}})
}

// GMPBackend computes n! with libgmp through cgo. It is only built with the
// gmp build tag.
type GMPBackend struct{}

// Name implements Backend.
func (GMPBackend) Name() string { return "GMP (cgo)" }

// Factorial implements Backend.
func (GMPBackend) Factorial(ctx context.Context, n int64) (*big.Int, error) {
	if err := validateN(n); err != nil {
		return nil, err
	}
	z := gmp.NewInt(1)
	f := new(gmp.Int)
	for i := int64(2); i <= n; i++ {
		if i%cancelCheckInterval == 0 {
			if err := ctx.Err(); err != nil {
				return nil, err
			}
		}
		z.Mul(z, f.SetInt64(i))
	}
	// n! is positive, so the magnitude bytes carry the whole value.
	return new(big.Int).SetBytes(z.Bytes()), nil
}
