package interp

import (
	"math/big"

	"go.dedis.ch/sssrecover/types"
)

// LagrangeZp is Lagrange interpolation at x = 0 in Z_p.
type LagrangeZp struct {
	prime *big.Int
}

// NewLagrangeZp returns an interpolator working modulo the prime p.
func NewLagrangeZp(p *big.Int) (*LagrangeZp, error) {
	err := checkModulus(p)
	if err != nil {
		return nil, err
	}
	return &LagrangeZp{prime: new(big.Int).Set(p)}, nil
}

// Name implements Interpolator.
func (l *LagrangeZp) Name() string {
	return "lagrange-zp"
}

// Secret implements Interpolator. The result lies in [0, p).
func (l *LagrangeZp) Secret(points types.PointSet) (*big.Int, error) {
	if len(points) == 0 {
		return nil, types.ErrNoPoints
	}
	p := l.prime

	xs, ys, err := reduceZp(points, p)
	if err != nil {
		return nil, err
	}

	result := big.NewInt(0)
	for i, y := range ys {
		w := big.NewInt(1)
		for j, x := range xs {
			if i == j {
				continue
			}
			denominator := subZp(x, xs[i], p)
			w = multZp(w, divZp(x, denominator, p), p)
		}
		result = addZp(result, multZp(w, y, p), p)
	}
	return result, nil
}
