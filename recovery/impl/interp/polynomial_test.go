package interp

import (
	"crypto/rand"
	"math/big"
	mrand "math/rand"
	"testing"

	"github.com/stretchr/testify/require"

	"go.dedis.ch/sssrecover/types"
)

// polynomial holds coefficients in ascending power order.
type polynomial []*big.Int

// evaluate computes p(x) with Horner's rule.
func (p polynomial) evaluate(x int64) *big.Int {
	bx := big.NewInt(x)
	value := new(big.Int)
	for i := len(p) - 1; i >= 0; i-- {
		value.Mul(value, bx)
		value.Add(value, p[i])
	}
	return value
}

// sample returns the points of p at the given abscissas.
func (p polynomial) sample(xs ...int64) types.PointSet {
	points := make(types.PointSet, len(xs))
	for i, x := range xs {
		points[i] = types.CoordinatePoint{X: x, Y: p.evaluate(x)}
	}
	return points
}

// sampleZp returns the points of p reduced mod prime.
func (p polynomial) sampleZp(prime *big.Int, xs ...int64) types.PointSet {
	points := p.sample(xs...)
	for i := range points {
		points[i].Y.Mod(points[i].Y, prime)
	}
	return points
}

// randomPolynomial returns a polynomial of the given degree with signed
// coefficients of up to bits bits, drawn from r.
func randomPolynomial(r *mrand.Rand, degree int, bits uint) polynomial {
	p := make(polynomial, degree+1)
	limit := new(big.Int).Lsh(big.NewInt(1), bits)
	for i := range p {
		c := new(big.Int).Rand(r, limit)
		if r.Intn(2) == 0 {
			c.Neg(c)
		}
		p[i] = c
	}
	return p
}

// randomPolynomialZp returns a polynomial with f(0) = secret and random
// coefficients in Z_p.
func randomPolynomialZp(t *testing.T, secret *big.Int, degree int, prime *big.Int) polynomial {
	p := make(polynomial, degree+1)
	p[0] = new(big.Int).Set(secret)
	for i := 1; i <= degree; i++ {
		n, err := rand.Int(rand.Reader, prime)
		require.NoError(t, err)
		p[i] = n
	}
	return p
}

// generatePrime returns a random prime of the given size.
func generatePrime(t *testing.T, bits int) *big.Int {
	prime, err := rand.Prime(rand.Reader, bits)
	require.NoError(t, err)
	return prime
}

// shuffled returns a permuted copy of points.
func shuffled(r *mrand.Rand, points types.PointSet) types.PointSet {
	out := make(types.PointSet, len(points))
	for i, j := range r.Perm(len(points)) {
		out[i] = points[j]
	}
	return out
}

func ints(values ...int64) polynomial {
	p := make(polynomial, len(values))
	for i, v := range values {
		p[i] = big.NewInt(v)
	}
	return p
}

func bigPoint(x int64, y string) types.CoordinatePoint {
	v, ok := new(big.Int).SetString(y, 10)
	if !ok {
		panic("invalid test value " + y)
	}
	return types.CoordinatePoint{X: x, Y: v}
}
