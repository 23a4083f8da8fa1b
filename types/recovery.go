package types

import (
	"encoding/json"
	"fmt"
	"sort"
	"strings"
)

// -----------------------------------------------------------------------------
// EncodedPoint

// String implements fmt.Stringer.
func (p EncodedPoint) String() string {
	return fmt.Sprintf("{%s in base %d}", p.Value, p.Base)
}

// -----------------------------------------------------------------------------
// CoordinatePoint

// String implements fmt.Stringer.
func (p CoordinatePoint) String() string {
	return fmt.Sprintf("(%d, %s)", p.X, p.Y.String())
}

// -----------------------------------------------------------------------------
// PointSet

// Xs returns the x coordinates in order.
func (ps PointSet) Xs() []int64 {
	xs := make([]int64, len(ps))
	for i, p := range ps {
		xs[i] = p.X
	}
	return xs
}

// String implements fmt.Stringer.
func (ps PointSet) String() string {
	out := make([]string, len(ps))
	for i, p := range ps {
		out[i] = p.String()
	}
	return "[" + strings.Join(out, " ") + "]"
}

// -----------------------------------------------------------------------------
// TestCase

// SortedKeys returns the keys that carry a point, in ascending order.
func (tc TestCase) SortedKeys() []int {
	keys := make([]int, 0, len(tc.Points))
	for k := range tc.Points {
		keys = append(keys, k)
	}
	sort.Ints(keys)
	return keys
}

// String implements fmt.Stringer.
func (tc TestCase) String() string {
	return fmt.Sprintf("{n=%d k=%d points=%d}", tc.Keys.N, tc.Keys.K, len(tc.Points))
}

// -----------------------------------------------------------------------------
// SolveResult

type solveResultJSON struct {
	RequestID   string `json:"requestId,omitempty"`
	Method      string `json:"method"`
	Secret      string `json:"secret"`
	Degree      int    `json:"degree"`
	PointsUsed  int    `json:"pointsUsed"`
	TotalPoints int    `json:"totalPoints"`
	Keys        []int  `json:"keys"`
}

// MarshalJSON encodes the secret as a decimal string so that no precision is
// lost in JSON consumers.
func (r SolveResult) MarshalJSON() ([]byte, error) {
	secret := ""
	if r.Secret != nil {
		secret = r.Secret.String()
	}
	return json.Marshal(solveResultJSON{
		RequestID:   r.RequestID,
		Method:      r.Method,
		Secret:      secret,
		Degree:      r.Degree,
		PointsUsed:  r.PointsUsed,
		TotalPoints: r.TotalPoints,
		Keys:        r.Keys,
	})
}

// String implements fmt.Stringer.
func (r SolveResult) String() string {
	return fmt.Sprintf("{secret %s: degree %d, %d/%d points, method %s}",
		r.Secret, r.Degree, r.PointsUsed, r.TotalPoints, r.Method)
}
