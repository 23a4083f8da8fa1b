// Package interp recovers the constant term of the polynomial through a set
// of points. All arithmetic is exact: over the rationals by default, or over
// Z_p when a prime modulus is given.
package interp

import (
	"math/big"

	"go.dedis.ch/sssrecover/types"
)

// Interpolator evaluates at x = 0 the unique polynomial of degree
// len(points)-1 passing through points.
type Interpolator interface {
	Secret(points types.PointSet) (*big.Int, error)
	Name() string
}

// checkDistinct fails with ErrDuplicateAbscissa if two points share an x.
func checkDistinct(points types.PointSet) error {
	seen := make(map[int64]struct{}, len(points))
	for _, p := range points {
		_, ok := seen[p.X]
		if ok {
			return types.ErrDuplicateAbscissa
		}
		seen[p.X] = struct{}{}
	}
	return nil
}
