package interp

import (
	"math/big"
	mrand "math/rand"
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
	"github.com/stretchr/testify/require"
	"golang.org/x/xerrors"

	"go.dedis.ch/sssrecover/types"
)

func Test_Vandermonde_quadratic(t *testing.T) {
	points := types.PointSet{bigPoint(1, "4"), bigPoint(2, "7"), bigPoint(3, "12")}

	secret, err := NewVandermonde(false).Secret(points)
	require.NoError(t, err)
	require.Equal(t, "3", secret.String())
}

func Test_Vandermonde_coefficients(t *testing.T) {
	poly := ints(3, 2, 1)

	coefficients, err := NewVandermonde(false).Coefficients(poly.sample(1, 2, 3))
	require.NoError(t, err)
	require.Len(t, coefficients, 3)
	for i, c := range poly {
		require.Equal(t, 0, coefficients[i].Cmp(new(big.Rat).SetInt(c)), "coefficient %d", i)
	}
}

func Test_Vandermonde_singular(t *testing.T) {
	points := types.PointSet{bigPoint(1, "4"), bigPoint(1, "4"), bigPoint(3, "12")}

	_, err := NewVandermonde(false).Secret(points)
	require.True(t, xerrors.Is(err, types.ErrSingularSystem))
}

func Test_Vandermonde_non_integral(t *testing.T) {
	points := types.PointSet{bigPoint(1, "1"), bigPoint(3, "2")}

	_, err := NewVandermonde(false).Secret(points)
	require.True(t, xerrors.Is(err, types.ErrNonIntegral))

	secret, err := NewVandermonde(true).Secret(points)
	require.NoError(t, err)
	require.Equal(t, int64(1), secret.Int64())
}

func Test_Vandermonde_no_points(t *testing.T) {
	_, err := NewVandermonde(false).Secret(types.PointSet{})
	require.True(t, xerrors.Is(err, types.ErrNoPoints))
}

func Test_Vandermonde_matches_Lagrange(t *testing.T) {
	params := gopter.DefaultTestParameters()
	params.MinSuccessfulTests = 50
	properties := gopter.NewProperties(params)

	properties.Property("both forms give the same exact secret", prop.ForAll(
		func(k int, seed int64) bool {
			r := mrand.New(mrand.NewSource(seed))
			poly := randomPolynomial(r, k-1, 512)

			xs := make([]int64, 0, k)
			for _, i := range r.Perm(3 * k)[:k] {
				xs = append(xs, int64(i+1))
			}
			points := poly.sample(xs...)

			a, err := NewLagrange(false).Secret(points)
			if err != nil {
				return false
			}
			b, err := NewVandermonde(false).Secret(shuffled(r, points))
			if err != nil {
				return false
			}
			return a.Cmp(b) == 0 && a.Cmp(poly[0]) == 0
		},
		gen.IntRange(1, 10),
		gen.Int64(),
	))

	properties.TestingRun(t)
}
