package decode

import (
	"sort"

	"golang.org/x/xerrors"

	"go.dedis.ch/sssrecover/types"
)

// Extract takes the keys of input in 1..n in ascending order and decodes the
// first k points it finds. The key of a point is its x coordinate. Only keys
// present in input are visited, so n and k do not bound the work.
func Extract(input map[int]types.EncodedPoint, n, k int) (types.PointSet, error) {
	if k < 1 || n < 0 {
		return nil, xerrors.Errorf("n=%d, k=%d: %w", n, k, types.ErrInvalidThreshold)
	}

	keys := make([]int, 0, len(input))
	for key := range input {
		if key >= 1 && key <= n {
			keys = append(keys, key)
		}
	}
	if len(keys) < k {
		return nil, &types.InsufficientPointsError{Needed: k, Found: len(keys)}
	}
	sort.Ints(keys)

	points := make(types.PointSet, 0, k)
	for _, key := range keys[:k] {
		encoded := input[key]
		y, err := Convert(encoded.Value, encoded.Base)
		if err != nil {
			return nil, xerrors.Errorf("point %d: %w", key, err)
		}
		points = append(points, types.CoordinatePoint{X: int64(key), Y: y})
	}

	return points, nil
}
