package interp

import (
	"math/big"

	"go.dedis.ch/sssrecover/types"
)

// Vandermonde solves A.c = y with A[row][p] = x_row^p by Gaussian elimination
// with partial pivoting over the rationals. The secret is c[0].
type Vandermonde struct {
	rounding bool
}

// NewVandermonde returns the exact linear-system interpolator.
func NewVandermonde(rounding bool) *Vandermonde {
	return &Vandermonde{rounding: rounding}
}

// Name implements Interpolator.
func (v *Vandermonde) Name() string {
	return "vandermonde"
}

// Secret implements Interpolator.
func (v *Vandermonde) Secret(points types.PointSet) (*big.Int, error) {
	coefficients, err := v.Coefficients(points)
	if err != nil {
		return nil, err
	}
	return toInteger(coefficients[0], v.rounding)
}

// Coefficients returns the polynomial coefficients in ascending power order.
func (v *Vandermonde) Coefficients(points types.PointSet) ([]*big.Rat, error) {
	k := len(points)
	if k == 0 {
		return nil, types.ErrNoPoints
	}

	m := augmentedMatrix(points)

	for col := 0; col < k; col++ {
		pivot := col
		for row := col + 1; row < k; row++ {
			if absRat(m[row][col]).Cmp(absRat(m[pivot][col])) > 0 {
				pivot = row
			}
		}
		if m[pivot][col].Sign() == 0 {
			return nil, types.ErrSingularSystem
		}
		m[col], m[pivot] = m[pivot], m[col]

		for row := col + 1; row < k; row++ {
			if m[row][col].Sign() == 0 {
				continue
			}
			factor := new(big.Rat).Quo(m[row][col], m[col][col])
			for c := col; c <= k; c++ {
				m[row][c].Sub(m[row][c], new(big.Rat).Mul(factor, m[col][c]))
			}
		}
	}

	// back substitution
	coefficients := make([]*big.Rat, k)
	for row := k - 1; row >= 0; row-- {
		acc := new(big.Rat).Set(m[row][k])
		for c := row + 1; c < k; c++ {
			acc.Sub(acc, new(big.Rat).Mul(m[row][c], coefficients[c]))
		}
		coefficients[row] = acc.Quo(acc, m[row][row])
	}

	return coefficients, nil
}

// augmentedMatrix builds [A | y] with one row per point.
func augmentedMatrix(points types.PointSet) [][]*big.Rat {
	k := len(points)
	m := make([][]*big.Rat, k)
	for row, p := range points {
		m[row] = make([]*big.Rat, k+1)
		x := big.NewInt(p.X)
		power := big.NewInt(1)
		for c := 0; c < k; c++ {
			m[row][c] = new(big.Rat).SetInt(power)
			power = new(big.Int).Mul(power, x)
		}
		m[row][k] = new(big.Rat).SetInt(p.Y)
	}
	return m
}
