package types

import "math/big"

// EncodedPoint describes a y value as it appears in the input: a digit
// string in a given base.
type EncodedPoint struct {
	Base  int
	Value string
}

// CoordinatePoint is a decoded share. X is the key the point was supplied
// under.
type CoordinatePoint struct {
	X int64
	Y *big.Int
}

// PointSet is the ordered list of points handed to the interpolation engine.
type PointSet []CoordinatePoint

// Threshold holds the "keys" entry of a test case.
type Threshold struct {
	N int `json:"n" yaml:"n"`
	K int `json:"k" yaml:"k"`
}

// TestCase is a parsed input: the threshold plus the encoded points indexed
// by their key.
type TestCase struct {
	Keys   Threshold
	Points map[int]EncodedPoint
}

// SolveResult describes a recovered secret together with how it was obtained.
type SolveResult struct {
	RequestID   string
	Method      string
	Secret      *big.Int
	Degree      int
	PointsUsed  int
	TotalPoints int
	Keys        []int
}
