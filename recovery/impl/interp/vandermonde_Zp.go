package interp

import (
	"math/big"

	"go.dedis.ch/sssrecover/types"
)

// VandermondeZp solves the Vandermonde system by Gaussian elimination in Z_p.
// Magnitude has no meaning in a field, so the first non-zero entry of the
// column is taken as pivot.
type VandermondeZp struct {
	prime *big.Int
}

// NewVandermondeZp returns a linear-system interpolator modulo the prime p.
func NewVandermondeZp(p *big.Int) (*VandermondeZp, error) {
	err := checkModulus(p)
	if err != nil {
		return nil, err
	}
	return &VandermondeZp{prime: new(big.Int).Set(p)}, nil
}

// Name implements Interpolator.
func (v *VandermondeZp) Name() string {
	return "vandermonde-zp"
}

// Secret implements Interpolator.
func (v *VandermondeZp) Secret(points types.PointSet) (*big.Int, error) {
	coefficients, err := v.Coefficients(points)
	if err != nil {
		return nil, err
	}
	return coefficients[0], nil
}

// Coefficients returns the coefficients in Z_p, ascending power order.
func (v *VandermondeZp) Coefficients(points types.PointSet) ([]*big.Int, error) {
	k := len(points)
	if k == 0 {
		return nil, types.ErrNoPoints
	}
	p := v.prime

	m := make([][]*big.Int, k)
	for row, pt := range points {
		m[row] = make([]*big.Int, k+1)
		x := modZp(big.NewInt(pt.X), p)
		power := big.NewInt(1)
		for c := 0; c < k; c++ {
			m[row][c] = power
			power = multZp(power, x, p)
		}
		m[row][k] = modZp(pt.Y, p)
	}

	for col := 0; col < k; col++ {
		pivot := -1
		for row := col; row < k; row++ {
			if m[row][col].Sign() != 0 {
				pivot = row
				break
			}
		}
		if pivot < 0 {
			return nil, types.ErrSingularSystem
		}
		m[col], m[pivot] = m[pivot], m[col]

		for row := col + 1; row < k; row++ {
			if m[row][col].Sign() == 0 {
				continue
			}
			factor := divZp(m[row][col], m[col][col], p)
			for c := col; c <= k; c++ {
				m[row][c] = subZp(m[row][c], multZp(factor, m[col][c], p), p)
			}
		}
	}

	coefficients := make([]*big.Int, k)
	for row := k - 1; row >= 0; row-- {
		acc := m[row][k]
		for c := row + 1; c < k; c++ {
			acc = subZp(acc, multZp(m[row][c], coefficients[c], p), p)
		}
		coefficients[row] = divZp(acc, m[row][row], p)
	}

	return coefficients, nil
}
