package interp

import (
	"math/big"

	"go.dedis.ch/sssrecover/types"
)

// Lagrange computes f(0) = sum_i y_i * prod_{j != i} (-x_j) / (x_i - x_j)
// over the rationals.
type Lagrange struct {
	rounding bool
}

// NewLagrange returns the exact Lagrange interpolator. With rounding set, a
// fractional result is rounded instead of rejected.
func NewLagrange(rounding bool) *Lagrange {
	return &Lagrange{rounding: rounding}
}

// Name implements Interpolator.
func (l *Lagrange) Name() string {
	return "lagrange"
}

// Secret implements Interpolator.
func (l *Lagrange) Secret(points types.PointSet) (*big.Int, error) {
	if len(points) == 0 {
		return nil, types.ErrNoPoints
	}
	err := checkDistinct(points)
	if err != nil {
		return nil, err
	}

	sum := new(big.Rat)
	for i, pi := range points {
		xi := big.NewInt(pi.X)
		num := new(big.Int).Set(pi.Y)
		den := big.NewInt(1)

		for j, pj := range points {
			if i == j {
				continue
			}
			xj := big.NewInt(pj.X)
			num.Mul(num, new(big.Int).Neg(xj))
			den.Mul(den, new(big.Int).Sub(xi, xj))
		}

		sum.Add(sum, new(big.Rat).SetFrac(num, den))
	}

	return toInteger(sum, l.rounding)
}
