package interp

import (
	"math/big"

	"golang.org/x/xerrors"

	"go.dedis.ch/sssrecover/types"
)

// absRat returns |r| as a new value.
func absRat(r *big.Rat) *big.Rat {
	return new(big.Rat).Abs(r)
}

// roundRat rounds r to the nearest integer, halves away from zero.
func roundRat(r *big.Rat) *big.Int {
	num := new(big.Int).Abs(r.Num())
	den := r.Denom()

	q, m := new(big.Int).QuoRem(num, den, new(big.Int))
	m.Lsh(m, 1)
	if m.Cmp(den) >= 0 {
		q.Add(q, big.NewInt(1))
	}
	if r.Sign() < 0 {
		q.Neg(q)
	}
	return q
}

// toInteger returns r as an integer. A fractional r is an error unless
// rounding is allowed.
func toInteger(r *big.Rat, rounding bool) (*big.Int, error) {
	if r.IsInt() {
		return new(big.Int).Set(r.Num()), nil
	}
	if !rounding {
		return nil, xerrors.Errorf("got %s: %w", r.RatString(), types.ErrNonIntegral)
	}
	return roundRat(r), nil
}
