package interp

import (
	"math/big"

	"golang.org/x/xerrors"

	"go.dedis.ch/sssrecover/types"
)

// primalityRounds is the number of Miller-Rabin rounds used to check a
// modulus.
const primalityRounds = 20

// checkModulus fails unless p is a prime greater than 1.
func checkModulus(p *big.Int) error {
	if p == nil || p.Cmp(big.NewInt(1)) <= 0 || !p.ProbablyPrime(primalityRounds) {
		return xerrors.Errorf("got %v: %w", p, types.ErrInvalidModulus)
	}
	return nil
}

// modZp reduces a into [0, p).
func modZp(a, p *big.Int) *big.Int {
	return new(big.Int).Mod(a, p)
}

// addZp returns a + b mod p
func addZp(a, b, p *big.Int) *big.Int {
	sum := new(big.Int).Add(a, b)
	return sum.Mod(sum, p)
}

// subZp returns a - b mod p
func subZp(a, b, p *big.Int) *big.Int {
	dif := new(big.Int).Sub(a, b)
	return dif.Mod(dif, p)
}

// multZp returns a * b mod p
func multZp(a, b, p *big.Int) *big.Int {
	prod := new(big.Int).Mul(a, b)
	return prod.Mod(prod, p)
}

// divZp returns a * b^-1 mod p. Callers make sure b != 0 mod p.
func divZp(a, b, p *big.Int) *big.Int {
	inverse := new(big.Int).ModInverse(b, p)
	if inverse == nil {
		// p is prime and b is non-zero, cannot happen
		panic("divide by zero")
	}
	return multZp(a, inverse, p)
}

// reduceZp maps the points into Z_p and checks that their x coordinates stay
// distinct there.
func reduceZp(points types.PointSet, p *big.Int) (xs, ys []*big.Int, err error) {
	xs = make([]*big.Int, len(points))
	ys = make([]*big.Int, len(points))
	seen := make(map[string]struct{}, len(points))

	for i, pt := range points {
		xs[i] = modZp(big.NewInt(pt.X), p)
		ys[i] = modZp(pt.Y, p)

		key := xs[i].String()
		_, ok := seen[key]
		if ok {
			return nil, nil, types.ErrDuplicateAbscissa
		}
		seen[key] = struct{}{}
	}
	return xs, ys, nil
}
